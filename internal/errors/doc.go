// Package errors provides structured error handling for the gm tool.
//
// Errors carry a string Code, a human-readable Message, an optional
// wrapped Cause, and a metadata map. Codes split into general ones
// (NOT_FOUND, INVALID_ARGUMENT, ...) and pipeline ones raised while
// parsing and rendering game data:
//
//   - SCHEMA_VIOLATION: a record's tagged-union field had zero or more
//     than one payload, or an unknown kind discriminator
//   - MISSING_FIELD: a field required by the selected render path was
//     empty or absent
//   - INVALID_VARIANT: a union carried an unrecognized discriminator at
//     render time
//   - PACKAGING_FAILED: archive assembly failed
//
// Schema and render errors carry the offending field name in metadata
// so callers can build user-facing messages:
//
//	if errors.IsMissingField(err) {
//		fmt.Printf("missing %s\n", errors.FieldName(err))
//	}
//
// Use the ValidationBuilder for multi-field input validation:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Repo == nil {
//		vb.RequiredField("Repo")
//	}
//	return vb.Build()
package errors
