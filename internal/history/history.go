// Package history tracks which hosts were recently picked.
// "valetsshing pick" uses it to rank recent hosts first.
package history

import (
	"errors"
	"os"
	"slices"
	"time"

	"github.com/raphi011/valetsshing/internal/storage"
)

// Entry records picks of one host pattern.
type Entry struct {
	Host        string    `json:"host"`
	AccessCount int       `json:"access_count"`
	LastAccess  time.Time `json:"last_access"`
}

// History holds entries, most recent first.
type History struct {
	Entries []Entry `json:"entries"`
}

// Load reads the history from path.
// A missing or corrupted file yields an empty history.
func Load(path string) (*History, error) {
	var h History
	if err := storage.LoadJSON(path, &h); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &History{}, nil
		}
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, err
		}
		// Corrupted - start fresh
		return &History{}, nil
	}
	return &h, nil
}

// Save writes the history to path atomically.
func (h *History) Save(path string) error {
	return storage.SaveJSON(path, h)
}

// Record moves host to the front, bumping its count, and keeps at most
// limit entries. A limit below 1 keeps everything.
func (h *History) Record(host string, at time.Time, limit int) {
	entry := Entry{Host: host}
	if i := slices.IndexFunc(h.Entries, func(e Entry) bool { return e.Host == host }); i >= 0 {
		entry = h.Entries[i]
		h.Entries = slices.Delete(h.Entries, i, i+1)
	}
	entry.AccessCount++
	entry.LastAccess = at

	h.Entries = slices.Insert(h.Entries, 0, entry)
	if limit > 0 && len(h.Entries) > limit {
		h.Entries = h.Entries[:limit]
	}
}

// RecordAccess loads the history at path, records host and saves it back.
func RecordAccess(path, host string, limit int) error {
	h, err := Load(path)
	if err != nil {
		return err
	}
	h.Record(host, time.Now(), limit)
	return h.Save(path)
}

// Rank orders names so that hosts in the history come first, most recent
// first. The rest keep their relative order.
func (h *History) Rank(names []string) []string {
	pos := make(map[string]int, len(h.Entries))
	for i, e := range h.Entries {
		pos[e.Host] = i
	}

	ranked := slices.Clone(names)
	slices.SortStableFunc(ranked, func(a, b string) int {
		pa, okA := pos[a]
		pb, okB := pos[b]
		switch {
		case okA && okB:
			return pa - pb
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})
	return ranked
}

// MostRecent returns the most recently picked host, or "" when empty.
func (h *History) MostRecent() string {
	if len(h.Entries) == 0 {
		return ""
	}
	return h.Entries[0].Host
}
