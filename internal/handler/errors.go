package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgBodyTooLarge          = "Request body too large"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"

	// Parameter error messages
	ErrMsgInvalidYear  = "Year must be an integer"
	ErrMsgInvalidCode  = "Era code is not a valid path segment"
	ErrMsgInvalidStyle = "Style must be 'letter' or 'digit'"
	ErrMsgInvalidBool  = "Invalid boolean for %s query parameter"

	// Batch error messages
	ErrMsgEmptyBatch    = "At least one code is required"
	ErrMsgBatchTooLarge = "Too many codes in one request"
)

// Prefix style query values
const (
	StyleLetter = "letter"
	StyleDigit  = "digit"
)

// Query parameter names
const (
	QueryLenient = "lenient"
	QueryStyle   = "style"
)
