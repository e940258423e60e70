package model

// Profile is a normalized host connection profile extracted from the
// profiles file. All fields are stored as written; Port in particular is an
// opaque token, not a validated number.
type Profile struct {
	Alias    string `json:"alias" yaml:"alias"`
	HostName string `json:"host_name" yaml:"host_name"`
	User     string `json:"user,omitempty" yaml:"user,omitempty"`
	Port     string `json:"port,omitempty" yaml:"port,omitempty"`
}

func (p Profile) DisplayTarget() string {
	if p.HostName != "" {
		return p.HostName
	}
	return p.Alias
}

// Columns projects the profile into the fixed list/table column order.
func (p Profile) Columns() []string {
	return []string{p.Alias, p.HostName, p.User, p.Port}
}
