package courier

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"
)

// valueKind enumerates the JSON shapes a Value can hold.
type valueKind uint8

const (
	nullValue valueKind = iota
	stringValue
	numberValue
	boolValue
	objectValue
	arrayValue
)

// Value is a closed JSON value used for request parameters.
//
// Rather than accepting arbitrary interface values and reflecting over
// them, parameter bodies are built from this small variant: string,
// number, bool, null, object, or array. Each case encodes explicitly,
// so the set of possible bodies is known up front.
//
//	req := courier.NewRequest[CreateUserResponse]("https://api.example.com/users").
//	    Method(courier.MethodPost).
//	    Param("name", courier.String("jane")).
//	    Param("age", courier.Number(34)).
//	    Param("tags", courier.Array(courier.String("admin")))
type Value struct {
	kind valueKind
	str  string
	num  float64
	b    bool
	obj  map[string]Value
	arr  []Value
}

// String returns a JSON string value.
func String(s string) Value {
	return Value{kind: stringValue, str: s}
}

// Number returns a JSON number value. Non-finite values (NaN, ±Inf)
// are representable here but fail at encoding time.
func Number(f float64) Value {
	return Value{kind: numberValue, num: f}
}

// Bool returns a JSON boolean value.
func Bool(b bool) Value {
	return Value{kind: boolValue, b: b}
}

// Null returns the JSON null value.
func Null() Value {
	return Value{kind: nullValue}
}

// Object returns a JSON object value from the given fields.
func Object(fields map[string]Value) Value {
	return Value{kind: objectValue, obj: fields}
}

// Array returns a JSON array value from the given items.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: arrayValue, arr: items}
}

// MarshalJSON encodes the value case by case.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case stringValue:
		return json.Marshal(v.str)
	case numberValue:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return nil, fmt.Errorf("value %v is not representable in JSON", v.num)
		}
		return json.Marshal(v.num)
	case boolValue:
		return json.Marshal(v.b)
	case objectValue:
		if v.obj == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.obj)
	case arrayValue:
		return json.Marshal(v.arr)
	default:
		return []byte("null"), nil
	}
}
