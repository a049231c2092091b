package sshconfig

import (
	"slices"
	"testing"
)

func TestFilterHosts(t *testing.T) {
	t.Parallel()

	hosts := []Host{
		{Host: "web-prod"},
		{Host: "web-staging"},
		{Host: "db-prod"},
	}

	t.Run("empty query returns all", func(t *testing.T) {
		t.Parallel()
		if got := Names(FilterHosts(hosts, "")); !slices.Equal(got, Names(hosts)) {
			t.Errorf("FilterHosts(\"\") = %q, want all", got)
		}
	})

	t.Run("fuzzy subset", func(t *testing.T) {
		t.Parallel()
		got := Names(FilterHosts(hosts, "web"))
		if len(got) != 2 || !slices.Contains(got, "web-prod") || !slices.Contains(got, "web-staging") {
			t.Errorf("FilterHosts(web) = %q, want both web hosts", got)
		}
	})

	t.Run("best match first", func(t *testing.T) {
		t.Parallel()
		got := Names(FilterHosts(hosts, "dbp"))
		if len(got) == 0 || got[0] != "db-prod" {
			t.Errorf("FilterHosts(dbp) = %q, want db-prod first", got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()
		if got := FilterHosts(hosts, "zzz"); len(got) != 0 {
			t.Errorf("FilterHosts(zzz) = %v, want none", got)
		}
	})
}

func TestFindHost(t *testing.T) {
	t.Parallel()

	hosts := []Host{{Host: "a", User: "first"}, {Host: "b"}, {Host: "a", User: "second"}}

	h, ok := FindHost(hosts, "a")
	if !ok || h.User != "first" {
		t.Errorf("FindHost(a) = %+v, %v, want first a", h, ok)
	}
	if _, ok := FindHost(hosts, "missing"); ok {
		t.Error("FindHost(missing) found a host")
	}
}
