package log

import (
	"bytes"
	"context"
	"io"
	"testing"
)

// emit calls every output method once with the same kind of content a
// loader or command would produce.
func emit(l *Logger) {
	l.Printf("Created config file: %s\n", "/tmp/config.toml")
	l.Println("3 hosts")
	l.Warn("skipped include %s", "conf.d/broken (included from config): cyclic include")
	l.Debug("loading ssh config", "path", "/home/me/.ssh/config")
}

func TestLoggerModes(t *testing.T) {
	t.Parallel()

	const (
		printed = "Created config file: /tmp/config.toml\n"
		line    = "3 hosts\n"
		warning = "Warning: skipped include conf.d/broken (included from config): cyclic include\n"
		debug   = "loading ssh config path=/home/me/.ssh/config\n"
	)

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    string
	}{
		{"default shows all but debug", false, false, printed + line + warning},
		{"verbose adds debug", true, false, printed + line + warning + debug},
		{"quiet suppresses everything", false, true, ""},
		{"quiet wins over verbose", true, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			emit(New(&buf, tt.verbose, tt.quiet))
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDebugKeyvals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		keyvals []any
		want    string
	}{
		{"no pairs", nil, "skipping block without host\n"},
		{"one pair", []any{"file", "config"}, "skipping block without host file=config\n"},
		{"non-string values", []any{"depth", 2, "skipped", true}, "skipping block without host depth=2 skipped=true\n"},
		{"odd trailing key dropped", []any{"file", "config", "line"}, "skipping block without host file=config\n"},
		{"lone key dropped", []any{"file"}, "skipping block without host\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			New(&buf, true, false).Debug("skipping block without host", tt.keyvals...)
			if got := buf.String(); got != tt.want {
				t.Errorf("Debug output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsVerbose(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		verbose, quiet, want bool
	}{
		{true, false, true},
		{false, true, false},
		{true, true, false},
		{false, false, false},
	} {
		if got := New(io.Discard, tt.verbose, tt.quiet).IsVerbose(); got != tt.want {
			t.Errorf("New(verbose=%v, quiet=%v).IsVerbose() = %v, want %v", tt.verbose, tt.quiet, got, tt.want)
		}
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, false)
	if got := FromContext(WithLogger(context.Background(), l)); got != l {
		t.Error("FromContext did not return the attached logger")
	}
	if l.Writer() != &buf {
		t.Error("Writer() did not return the underlying writer")
	}

	// Library code logs through FromContext without checking for nil.
	fallback := FromContext(context.Background())
	emit(fallback)
	if fallback.Writer() != io.Discard {
		t.Error("fallback logger should write to io.Discard")
	}
	if fallback.IsVerbose() {
		t.Error("fallback logger should not be verbose")
	}
}
