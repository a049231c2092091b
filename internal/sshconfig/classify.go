package sshconfig

import "regexp"

// BlockKind tells what a config block turned out to be.
type BlockKind int

const (
	// KindUnparseable is a block with no host and no include line.
	KindUnparseable BlockKind = iota
	// KindHost is a block that produced a host record.
	KindHost
	// KindIncludeOnly is a block without a host that has include lines.
	KindIncludeOnly
)

func (k BlockKind) String() string {
	switch k {
	case KindHost:
		return "host"
	case KindIncludeOnly:
		return "include"
	default:
		return "unparseable"
	}
}

var includeLine = regexp.MustCompile(`(?i)^include\s`)

// Block is a classified config block.
// Host is set only for KindHost, Includes only for KindIncludeOnly.
type Block struct {
	Kind     BlockKind
	Host     Host
	Includes []string
}

// Classify turns extracted attributes into a host record or an include
// fragment. Include lines inside a host block are not followed; they stay
// in the host's optional settings.
func Classify(attrs Attributes) Block {
	if name := attrs.Get(AttrHost); name != "" {
		settings := make([]string, len(attrs.OptionalSettings))
		copy(settings, attrs.OptionalSettings)

		return Block{
			Kind: KindHost,
			Host: Host{
				Host:             name,
				HostName:         attrs.Get(AttrHostName),
				User:             attrs.Get(AttrUser),
				IdentityFile:     attrs.Get(AttrIdentityFile),
				Port:             attrs.Get(AttrPort),
				OptionalSettings: settings,
			},
		}
	}

	var includes []string
	for _, line := range attrs.OptionalSettings {
		if includeLine.MatchString(line) {
			includes = append(includes, line)
		}
	}
	if len(includes) > 0 {
		return Block{Kind: KindIncludeOnly, Includes: includes}
	}

	return Block{Kind: KindUnparseable}
}
