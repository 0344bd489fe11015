package parser

// ParseErrorKind distinguishes the fatal failures Parse can return.
type ParseErrorKind int

const (
	// KindEmptyContent means the input text was empty or whitespace-only.
	KindEmptyContent ParseErrorKind = iota
	// KindInvalidYAML means the YAML decoder itself failed.
	KindInvalidYAML
	// KindWrongShape means the decoded root was not a mapping.
	KindWrongShape
)

// ParseError is returned when spec text cannot be turned into a Spec.
// Everything below the root shape is tolerated and never produces one.
type ParseError struct {
	Kind    ParseErrorKind
	Message string
	// Err holds the underlying decoder error for KindInvalidYAML.
	Err error
}

func (e *ParseError) Error() string { return e.Message }

func (e *ParseError) Unwrap() error { return e.Err }
