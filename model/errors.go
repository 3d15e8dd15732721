package model

// FormatError reports a structural or type violation found while parsing
// wire data: a missing field, a wrong JSON type, or unparsable text.
type FormatError struct {
	Field string
	Msg   string
	Cause error
}

func (e *FormatError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Msg
	}
	return e.Msg
}

func (e *FormatError) Unwrap() error { return e.Cause }

func formatErr(field, msg string) *FormatError {
	return &FormatError{Field: field, Msg: msg}
}
