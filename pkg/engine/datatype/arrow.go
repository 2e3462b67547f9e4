package datatype

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

var (
	ArrowType = struct {
		Null      arrow.DataType
		Bool      arrow.DataType
		Integer   arrow.DataType
		Float     arrow.DataType
		Timestamp arrow.DataType
		String    arrow.DataType
		Bytes     arrow.DataType
	}{
		Null:      arrow.Null,
		Bool:      arrow.FixedWidthTypes.Boolean,
		Integer:   arrow.PrimitiveTypes.Int64,
		Float:     arrow.PrimitiveTypes.Float64,
		Timestamp: arrow.FixedWidthTypes.Timestamp_ns,
		String:    arrow.BinaryTypes.String,
		Bytes:     arrow.BinaryTypes.Binary,
	}

	ToArrow = map[DataType]arrow.DataType{
		Null:      ArrowType.Null,
		Bool:      ArrowType.Bool,
		Integer:   ArrowType.Integer,
		Float:     ArrowType.Float,
		Timestamp: ArrowType.Timestamp,
		String:    ArrowType.String,
		Bytes:     ArrowType.Bytes,
	}
)

// FromArrow converts an Arrow data type into the matching [DataType].
// It returns an error for Arrow types the engine has no equivalent for.
func FromArrow(t arrow.DataType) (DataType, error) {
	switch t.ID() {
	case arrow.NULL:
		return Null, nil
	case arrow.BOOL:
		return Bool, nil
	case arrow.INT64:
		return Integer, nil
	case arrow.FLOAT64:
		return Float, nil
	case arrow.TIMESTAMP:
		return Timestamp, nil
	case arrow.STRING:
		return String, nil
	case arrow.BINARY:
		return Bytes, nil
	default:
		return Invalid, fmt.Errorf("unsupported arrow type %s", t)
	}
}
