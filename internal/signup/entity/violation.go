package entity

// Kind classifies why a field failed.
type Kind int

const (
	KindRequired Kind = iota + 1
	KindLengthOutOfRange
	KindPatternMismatch
	KindFormatInvalid
	KindMismatch
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindLengthOutOfRange:
		return "length_out_of_range"
	case KindPatternMismatch:
		return "pattern_mismatch"
	case KindFormatInvalid:
		return "format_invalid"
	case KindMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Violation is one failed rule on one field.
type Violation struct {
	Field   string
	Kind    Kind
	Message string
}
