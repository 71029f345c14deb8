package secrets

import "fmt"

// NoMatchError is returned when a search finds nothing. It is a user-facing
// condition, not a failure of the CLI.
type NoMatchError struct {
	Query string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("there are no secrets matching %q", e.Query)
}
