package sshconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/valetsshing/internal/log"
)

// DefaultMaxDepth limits include nesting, matching OpenSSH's own limit.
const DefaultMaxDepth = 16

// SkipReason tells why an include was not followed.
type SkipReason int

const (
	SkipUnreadable SkipReason = iota + 1 // missing, a directory, or permission denied
	SkipCyclic                           // file is already on the include chain
	SkipTooDeep                          // nesting exceeds the max depth
	SkipBadPattern                       // glob pattern could not be expanded
)

func (r SkipReason) String() string {
	switch r {
	case SkipUnreadable:
		return "unreadable"
	case SkipCyclic:
		return "cyclic include"
	case SkipTooDeep:
		return "include too deep"
	case SkipBadPattern:
		return "bad pattern"
	default:
		return "unknown"
	}
}

// SkippedInclude records an include that was not followed.
type SkippedInclude struct {
	Path   string // included file, or the include line for SkipBadPattern
	From   string // file containing the include line
	Reason SkipReason
	Err    error
}

func (s SkippedInclude) String() string {
	if s.Err != nil {
		return fmt.Sprintf("%s (included from %s): %s: %v", s.Path, s.From, s.Reason, s.Err)
	}
	return fmt.Sprintf("%s (included from %s): %s", s.Path, s.From, s.Reason)
}

// Result is the flattened output of Load.
type Result struct {
	// Hosts in file-then-block order, includes spliced in depth-first.
	Hosts   []Host
	Skipped []SkippedInclude
}

// Option configures Load.
type Option func(*loader)

// WithMaxDepth sets how deep includes may nest. Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(l *loader) {
		if depth > 0 {
			l.maxDepth = depth
		}
	}
}

type loader struct {
	log      *log.Logger
	maxDepth int
	chain    map[string]bool // canonical paths of files currently being loaded
	skipped  []SkippedInclude
	err      error
}

// Load reads the SSH config at path and every file it includes.
//
// Only a failure to read path itself is returned as an error. Problems with
// included files are collected in Result.Skipped.
func Load(ctx context.Context, path string, opts ...Option) (*Result, error) {
	l := &loader{
		log:      log.FromContext(ctx),
		maxDepth: DefaultMaxDepth,
		chain:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ssh config %s: %w", path, err)
	}

	l.log.Debug("loading ssh config", "path", path)

	root := canonicalPath(path)
	l.chain[root] = true
	hosts := l.parse(ctx, path, string(data), 0)
	delete(l.chain, root)

	if l.err != nil {
		return nil, l.err
	}

	return &Result{Hosts: hosts, Skipped: l.skipped}, nil
}

// parse turns the text of one file into hosts, following include blocks.
func (l *loader) parse(ctx context.Context, path, text string, depth int) []Host {
	hosts := []Host{}
	baseDir := filepath.Dir(path)

	for raw := range Blocks(text) {
		if l.err != nil {
			break
		}

		block := Classify(ExtractAttributes(raw))
		switch block.Kind {
		case KindHost:
			h := block.Host
			h.Source = path
			hosts = append(hosts, h)
		case KindIncludeOnly:
			for _, line := range block.Includes {
				hosts = append(hosts, l.include(ctx, line, path, baseDir, depth)...)
			}
		default:
			l.log.Debug("skipping block without host", "file", path)
		}
	}

	return hosts
}

func (l *loader) include(ctx context.Context, line, from, baseDir string, depth int) []Host {
	paths, err := ResolveInclude(line, baseDir)
	if err != nil {
		l.skip(SkippedInclude{Path: line, From: from, Reason: SkipBadPattern, Err: err})
	}
	if len(paths) == 0 {
		l.log.Debug("include matched no files", "file", from, "line", line)
	}

	var hosts []Host
	for _, p := range paths {
		hosts = append(hosts, l.loadIncluded(ctx, p, from, depth+1)...)
	}
	return hosts
}

func (l *loader) loadIncluded(ctx context.Context, path, from string, depth int) []Host {
	if err := ctx.Err(); err != nil {
		l.err = err
		return nil
	}

	if depth > l.maxDepth {
		l.skip(SkippedInclude{Path: path, From: from, Reason: SkipTooDeep})
		return nil
	}

	canonical := canonicalPath(path)
	if l.chain[canonical] {
		l.skip(SkippedInclude{Path: path, From: from, Reason: SkipCyclic})
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		l.skip(SkippedInclude{Path: path, From: from, Reason: SkipUnreadable, Err: err})
		return nil
	}

	l.log.Debug("loading included file", "path", path, "depth", depth)

	l.chain[canonical] = true
	defer delete(l.chain, canonical)

	return l.parse(ctx, path, string(data), depth)
}

func (l *loader) skip(s SkippedInclude) {
	l.log.Debug("skipping include", "path", s.Path, "from", s.From, "reason", s.Reason)
	l.skipped = append(l.skipped, s)
}

// canonicalPath returns an absolute, symlink-free form of path used to
// detect cycles. It falls back to the cleaned absolute path when symlinks
// cannot be evaluated; the subsequent read reports the real problem.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
