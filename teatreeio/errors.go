package teatreeio

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidInputError reports a malformed particle line (spec.md §7's
// InvalidInput(line)).
type InvalidInputError struct {
	Line int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("teatreeio: invalid input at line %d", e.Line)
}

func invalidInput(line int) error {
	return errors.WithStack(&InvalidInputError{Line: line})
}
