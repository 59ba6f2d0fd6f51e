package stmt

import (
	"errors"
	"fmt"
)

var (
	ErrStructural = errors.New("structural error")
)

// StructuralError reports an edit or an input shape that makes the current
// pass impossible, such as a cycle-creating move or a module without a
// prefix.
type StructuralError struct {
	Path string
	Msg  string
}

func (e *StructuralError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrStructural, e.Msg)
	}
	return fmt.Sprintf("%s at %s: %s", ErrStructural, e.Path, e.Msg)
}

func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

func structErr(s *Statement, format string, args ...any) error {
	path := ""
	if s != nil {
		path = s.Path()
	}
	return &StructuralError{Path: path, Msg: fmt.Sprintf(format, args...)}
}

// Structuralf is the error constructor used by passes for malformed input.
func Structuralf(s *Statement, format string, args ...any) error {
	return structErr(s, format, args...)
}
