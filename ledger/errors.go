package ledger

// ValidationError is returned when user input is rejected. Its message is
// meant to be shown to the user as-is.
//
// The exported values below are sentinels; compare with errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// ErrItemOrPriceMissing is returned when the item is blank or no price was given.
	ErrItemOrPriceMissing = &ValidationError{Message: "Please enter item and price"}

	// ErrPriceNotPositive is returned when a new expense has a zero or negative price.
	ErrPriceNotPositive = &ValidationError{Message: "Price must be greater than 0"}

	// ErrNotANumber is returned when an amount cannot be parsed.
	ErrNotANumber = &ValidationError{Message: "Enter a number"}

	// ErrUnknownCategory is returned for a category outside Categories.
	ErrUnknownCategory = &ValidationError{Message: "Unknown category"}
)
