package validation

import (
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ValidationError collects every failed rule of a single validation pass.
// Error() joins the messages with a single space, in rule order.
type ValidationError struct {
	errs *multierror.Error
}

func NewValidationError(messages ...string) *ValidationError {
	merr := &multierror.Error{ErrorFormat: joinWithSpace}
	for _, msg := range messages {
		merr = multierror.Append(merr, ruleError(msg))
	}
	return &ValidationError{errs: merr}
}

func (e *ValidationError) Error() string {
	return e.errs.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.errs
}

// Messages returns the individual rule messages.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, e.errs.Len())
	for _, err := range e.errs.Errors {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

type ruleError string

func (r ruleError) Error() string {
	return string(r)
}

func joinWithSpace(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, " ")
}
