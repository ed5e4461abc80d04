package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnimplemented      Code = "UNIMPLEMENTED"

	// Codes raised by the data pipeline
	CodeSchemaViolation Code = "SCHEMA_VIOLATION"
	CodeMissingField    Code = "MISSING_FIELD"
	CodeInvalidVariant  Code = "INVALID_VARIANT"
	CodePackagingFailed Code = "PACKAGING_FAILED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
