package errors

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Code     int
	Field    string
	Messages []string
}

// ValidationErrorCollector accumulates validation errors across fields.
type ValidationErrorCollector struct {
	errors []*ValidationError
}
