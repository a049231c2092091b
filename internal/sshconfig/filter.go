package sshconfig

import "github.com/sahilm/fuzzy"

// hostSource implements fuzzy.Source over host patterns.
type hostSource []Host

func (s hostSource) String(i int) string { return s[i].Host }
func (s hostSource) Len() int            { return len(s) }

// FilterHosts returns the hosts whose pattern fuzzy-matches query, best
// match first. An empty query returns hosts unchanged.
func FilterHosts(hosts []Host, query string) []Host {
	if query == "" {
		return hosts
	}

	matches := fuzzy.FindFrom(query, hostSource(hosts))
	filtered := make([]Host, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, hosts[m.Index])
	}
	return filtered
}
