package datatype

const (
	typeInvalid = "invalid"
)

// DataType represents the semantic type of a column value.
type DataType uint32

const (
	Invalid DataType = iota // zero-value is an invalid type

	Null      // NULL-only value
	Bool      // Boolean value
	Integer   // Signed 64bit integer value
	Float     // 64bit floating point value
	Timestamp // Nanosecond timestamp value
	String    // String value
	Bytes     // Byte-slice value
)

// String returns the string representation of the [DataType].
func (t DataType) String() string {
	switch t {
	case Invalid:
		return typeInvalid
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Integer:
		return "int"
	case Float:
		return "float"
	case Timestamp:
		return "timestamp"
	case String:
		return "string"
	case Bytes:
		return "[]byte"
	default:
		return typeInvalid
	}
}
