package types

// Secret is a single entry as reported by `aws secretsmanager`.
// Description and Value are nil when the CLI reports null or omits them.
type Secret struct {
	ARN         string  `json:"ARN"`                    // Unique identifier
	Name        string  `json:"Name"`                   // Not guaranteed unique
	Description *string `json:"Description,omitempty"`  // Free-form description
	Value       *string `json:"SecretString,omitempty"` // Opaque payload, may be JSON
}

// SecretList is the list-secrets response. Order is whatever the CLI returned.
type SecretList struct {
	Secrets []Secret `json:"SecretList"`
}

// DescriptionOrEmpty returns the description, or "" when absent
func (s Secret) DescriptionOrEmpty() string {
	if s.Description == nil {
		return ""
	}
	return *s.Description
}

// ValueOrEmpty returns the secret string, or "" when absent
func (s Secret) ValueOrEmpty() string {
	if s.Value == nil {
		return ""
	}
	return *s.Value
}

// Names returns the secret names in list order
func (l SecretList) Names() []string {
	names := make([]string, len(l.Secrets))
	for i, s := range l.Secrets {
		names[i] = s.Name
	}
	return names
}
