package geom

import "fmt"

// ParseError reports a move token that could not be understood.
type ParseError struct {
	Token  string // offending input
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Token)
}
