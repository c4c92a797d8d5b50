package types

// Kind identifies which RuntimeValue variant a Value holds
type Kind int

const (
	KIND_INVALID     Kind = 0
	KIND_DOUBLE      Kind = 1
	KIND_BOOL        Kind = 2
	KIND_STRING      Kind = 3
	KIND_STRING_LIST Kind = 4
	KIND_RANGE       Kind = 5
)

// String returns the human-readable kind name used in error messages
func (k Kind) String() string {
	switch k {
	case KIND_INVALID:
		return "invalid"
	case KIND_DOUBLE:
		return "double"
	case KIND_BOOL:
		return "bool"
	case KIND_STRING:
		return "string"
	case KIND_STRING_LIST:
		return "list of string"
	case KIND_RANGE:
		return "range"
	default:
		return "unknown"
	}
}
