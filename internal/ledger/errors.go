package ledger

import (
	"errors"
	"fmt"
)

// ErrImportFormat is returned when an import payload parses but is not a list.
var ErrImportFormat = errors.New("invalid file format, please import a valid JSON array")

// ImportParseError wraps the parser failure of an unreadable import payload.
type ImportParseError struct {
	Err error
}

func (e *ImportParseError) Error() string {
	return fmt.Sprintf("error reading or parsing file: %v", e.Err)
}

func (e *ImportParseError) Unwrap() error {
	return e.Err
}
