package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsSchemaViolation checks if an error reports a malformed record
func IsSchemaViolation(err error) bool {
	return GetCode(err) == CodeSchemaViolation
}

// IsMissingField checks if an error reports a missing render field
func IsMissingField(err error) bool {
	return GetCode(err) == CodeMissingField
}

// IsInvalidVariant checks if an error reports an unrecognized discriminator
func IsInvalidVariant(err error) bool {
	return GetCode(err) == CodeInvalidVariant
}

// IsPackagingFailed checks if an error reports an archive assembly failure
func IsPackagingFailed(err error) bool {
	return GetCode(err) == CodePackagingFailed
}

// FieldName extracts the field metadata from schema and render errors.
// Returns an empty string when the error carries none.
func FieldName(err error) string {
	meta := GetMeta(err)
	if meta == nil {
		return ""
	}
	if f, ok := meta["field"].(string); ok {
		return f
	}
	return ""
}
