package sshconfig

import (
	"maps"
	"slices"
	"testing"
)

func TestExtractAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		block    string
		values   map[Attribute]string
		settings []string
	}{
		{
			name:     "host and hostname",
			block:    "Host foo\nHostName bar",
			values:   map[Attribute]string{AttrHost: "foo", AttrHostName: "bar"},
			settings: []string{},
		},
		{
			name:     "comment dropped and unknown directive kept",
			block:    "Host a\nUser root\n# comment\nServerAliveInterval 30",
			values:   map[Attribute]string{AttrHost: "a", AttrUser: "root"},
			settings: []string{"ServerAliveInterval 30"},
		},
		{
			name:  "keywords are case-insensitive",
			block: "HOST x\nhostname y\nUSER z\nidentityFile ~/.ssh/id\nPORT 2222",
			values: map[Attribute]string{
				AttrHost:         "x",
				AttrHostName:     "y",
				AttrUser:         "z",
				AttrIdentityFile: "~/.ssh/id",
				AttrPort:         "2222",
			},
			settings: []string{},
		},
		{
			name:     "indentation is trimmed",
			block:    "Host a\n    Port 22\n\tUser\troot",
			values:   map[Attribute]string{AttrHost: "a", AttrPort: "22", AttrUser: "root"},
			settings: []string{},
		},
		{
			name:     "value with spaces is an optional setting",
			block:    "Host a\nIdentityFile \"~/.ssh/my key\"",
			values:   map[Attribute]string{AttrHost: "a"},
			settings: []string{"IdentityFile \"~/.ssh/my key\""},
		},
		{
			name:     "keyword without value is an optional setting",
			block:    "Host\nUser root",
			values:   map[Attribute]string{AttrUser: "root"},
			settings: []string{"Host"},
		},
		{
			name:     "multiple host patterns are an optional setting",
			block:    "Host a b",
			values:   map[Attribute]string{},
			settings: []string{"Host a b"},
		},
		{
			name:     "keyword prefix of another directive",
			block:    "Host a\nUserKnownHostsFile /dev/null\nPortForwarding no",
			values:   map[Attribute]string{AttrHost: "a"},
			settings: []string{"UserKnownHostsFile /dev/null", "PortForwarding no"},
		},
		{
			name:     "last occurrence wins",
			block:    "Host a\nUser first\nUser second",
			values:   map[Attribute]string{AttrHost: "a", AttrUser: "second"},
			settings: []string{},
		},
		{
			name:     "optional settings keep order",
			block:    "Host a\nForwardAgent yes\nCompression yes\nLocalForward 8080 localhost:80",
			values:   map[Attribute]string{AttrHost: "a"},
			settings: []string{"ForwardAgent yes", "Compression yes", "LocalForward 8080 localhost:80"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractAttributes(tt.block)
			if !maps.Equal(got.Values, tt.values) {
				t.Errorf("Values = %v, want %v", got.Values, tt.values)
			}
			if !slices.Equal(got.OptionalSettings, tt.settings) {
				t.Errorf("OptionalSettings = %q, want %q", got.OptionalSettings, tt.settings)
			}
		})
	}
}

func TestAttributesGet(t *testing.T) {
	t.Parallel()

	attrs := ExtractAttributes("Host a")
	if got := attrs.Get(AttrHost); got != "a" {
		t.Errorf("Get(host) = %q, want %q", got, "a")
	}
	if got := attrs.Get(AttrPort); got != "" {
		t.Errorf("Get(port) = %q, want empty", got)
	}
}
