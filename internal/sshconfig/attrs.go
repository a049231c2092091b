package sshconfig

import (
	"regexp"
	"strings"
)

// Attribute is a directive keyword modeled as a Host field.
type Attribute string

// Recognized attributes, in matching order.
const (
	AttrHost         Attribute = "host"
	AttrHostName     Attribute = "hostname"
	AttrUser         Attribute = "user"
	AttrIdentityFile Attribute = "identityfile"
	AttrPort         Attribute = "port"
)

type attributeMatcher struct {
	attr    Attribute
	keyword *regexp.Regexp
}

// attributeMatchers is tried in order; the first keyword that matches wins.
// "host" cannot shadow "hostname" because the keyword must be followed by whitespace.
var attributeMatchers = []attributeMatcher{
	{AttrHost, regexp.MustCompile(`(?i)^host\s`)},
	{AttrHostName, regexp.MustCompile(`(?i)^hostname\s`)},
	{AttrUser, regexp.MustCompile(`(?i)^user\s`)},
	{AttrIdentityFile, regexp.MustCompile(`(?i)^identityfile\s`)},
	{AttrPort, regexp.MustCompile(`(?i)^port\s`)},
}

// Attributes is the raw result of scanning one block.
type Attributes struct {
	Values           map[Attribute]string
	OptionalSettings []string
}

// Get returns the value of attr, or "" when it is absent.
func (a Attributes) Get(attr Attribute) string {
	return a.Values[attr]
}

// ExtractAttributes scans the lines of a single block.
//
// Lines are trimmed first. Comments and empty lines are dropped. A line is
// an attribute only if it starts with a recognized keyword and has exactly one
// value token; later occurrences of the same attribute overwrite earlier ones.
// All other lines are kept verbatim as optional settings.
func ExtractAttributes(block string) Attributes {
	attrs := Attributes{
		Values:           make(map[Attribute]string),
		OptionalSettings: []string{},
	}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if attr, value, ok := matchAttribute(line); ok {
			attrs.Values[attr] = value
			continue
		}
		attrs.OptionalSettings = append(attrs.OptionalSettings, line)
	}

	return attrs
}

// matchAttribute reports the attribute and value a trimmed line sets.
// A keyword match with the wrong number of tokens is not retried against
// the remaining keywords.
func matchAttribute(line string) (Attribute, string, bool) {
	for _, m := range attributeMatchers {
		if !m.keyword.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			return "", "", false
		}
		return m.attr, parts[1], true
	}
	return "", "", false
}
