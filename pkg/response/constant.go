package response

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"
	// DefaultErrorMessage is returned for unexpected internal errors.
	DefaultErrorMessage = "Something went wrong"
	// ValidationErrorMsg is returned for request validation failures.
	ValidationErrorMsg = "Validation error"
)

const (
	// InternalServerErrorCode is the error code for unexpected internal errors.
	InternalServerErrorCode = 500
	// ValidationErrorCode is the error code for validation failures.
	ValidationErrorCode = 400
)
