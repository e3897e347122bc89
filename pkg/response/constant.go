package response

const (
	MessageSuccess = "Success"

	DateTimeFormat = "2006-01-02 15:04:05"

	// ValidationErrorCode is used for errors without an HTTP mapping.
	ValidationErrorCode     = 1
	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong"
)
