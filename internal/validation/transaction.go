package validation

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
)

const (
	MsgDescriptionRequired = "Description is required."
	MsgAmountInvalid       = "Amount must be a positive number."
	MsgCategoryRequired    = "Category is required."
	MsgDateRequired        = "Date is required."
	MsgDateFormat          = "Date must use the YYYY-MM-DD format."
	MsgTypeInvalid         = "Type must be income or expense."
	MsgCategoryMismatch    = "Category does not belong to the selected type."
)

// Result is the outcome of validating a candidate transaction.
type Result struct {
	Valid  bool
	Errors []string
}

// Message joins all failed rule messages for display.
func (r Result) Message() string {
	return strings.Join(r.Errors, " ")
}

// Err returns nil for a valid result, otherwise a *ValidationError.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return NewValidationError(r.Errors...)
}

// ValidateTransaction checks every rule independently and collects all
// violations in rule order.
func ValidateTransaction(c model.Candidate) Result {
	var errs []string

	if strings.TrimSpace(c.Description) == "" {
		errs = append(errs, MsgDescriptionRequired)
	}

	if !isPositiveAmount(c.Amount) {
		errs = append(errs, MsgAmountInvalid)
	}

	category := strings.TrimSpace(c.Category)
	if category == "" {
		errs = append(errs, MsgCategoryRequired)
	}

	date := strings.TrimSpace(c.Date)
	if date == "" {
		errs = append(errs, MsgDateRequired)
	}

	// Follow-up rules only run on fields that are present, so a missing
	// field never reports twice.
	if date != "" {
		if _, err := time.Parse(constants.DateFormat, date); err != nil {
			errs = append(errs, MsgDateFormat)
		}
	}

	txType, err := model.ParseType(c.Type)
	if err != nil {
		errs = append(errs, MsgTypeInvalid)
	} else if category != "" && !model.IsValidCategory(txType, category) {
		errs = append(errs, MsgCategoryMismatch)
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateImported applies the entry rules to an already decoded transaction.
func ValidateImported(tx model.Transaction) Result {
	c := model.CandidateFrom(tx)
	if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
		c.Amount = ""
	}
	return ValidateTransaction(c)
}

func isPositiveAmount(raw string) bool {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return false
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	return amount > 0
}
