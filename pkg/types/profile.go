package types

// AWSProfile is a named profile discovered in ~/.aws/credentials or ~/.aws/config.
// The aws CLI is invoked with --profile <Name> when one is selected.
type AWSProfile struct {
	Name   string
	Region string // region = ... from the config file, if any
	Source string // "credentials" or "config"
}

// Label renders the profile for tables and pickers
func (p AWSProfile) Label() string {
	if p.Region == "" {
		return p.Name
	}
	return p.Name + " (" + p.Region + ")"
}
