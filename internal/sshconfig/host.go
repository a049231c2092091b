package sshconfig

// Host is one parsed "Host" stanza.
// Empty string fields mean the directive was absent.
type Host struct {
	Host             string   `json:"host" yaml:"host"`
	HostName         string   `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	User             string   `json:"user,omitempty" yaml:"user,omitempty"`
	IdentityFile     string   `json:"identity_file,omitempty" yaml:"identity_file,omitempty"`
	Port             string   `json:"port,omitempty" yaml:"port,omitempty"` // kept as text
	OptionalSettings []string `json:"optional_settings" yaml:"optional_settings"`
	Source           string   `json:"source,omitempty" yaml:"source,omitempty"` // file the block was read from
}

// FindHost returns the first host whose pattern equals name.
func FindHost(hosts []Host, name string) (Host, bool) {
	for _, h := range hosts {
		if h.Host == name {
			return h, true
		}
	}
	return Host{}, false
}

// Names returns the host patterns in order.
func Names(hosts []Host) []string {
	names := make([]string, 0, len(hosts))
	for _, h := range hosts {
		names = append(names, h.Host)
	}
	return names
}
