package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Recognized type names a schema can declare for a field.
const (
	TypeStr   = "str"
	TypeInt   = "int"
	TypeFloat = "float"
	TypeBool  = "bool"
	TypeList  = "list"
	TypeDict  = "dict"

	// TypeNull is reported for JSON null values. It is never a valid
	// declaration; a field declared "null" is simply unchecked.
	TypeNull = "null"
)

// RecognizedTypes returns the declarable type names in a stable order.
func RecognizedTypes() []string {
	return []string{TypeStr, TypeInt, TypeFloat, TypeBool, TypeList, TypeDict}
}

// IsRecognized reports whether typeName is one of the declarable types.
// Unrecognized names are not an error; they produce no check.
func IsRecognized(typeName string) bool {
	switch typeName {
	case TypeStr, TypeInt, TypeFloat, TypeBool, TypeList, TypeDict:
		return true
	}
	return false
}

// TypeName reports the dynamic type name of a decoded JSON value.
// Values must come from a json.Decoder with UseNumber() enabled, so
// numeric literals keep their int/float distinction: 3 is an int,
// 3.0 and 3e2 are floats, exactly as their literals say.
func TypeName(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return TypeNull
	case bool:
		return TypeBool
	case string:
		return TypeStr
	case json.Number:
		if isIntegerLiteral(string(val)) {
			return TypeInt
		}
		return TypeFloat
	case float64:
		// Decoded without UseNumber the literal is gone; all that is
		// left is a float.
		return TypeFloat
	case []interface{}:
		return TypeList
	case map[string]interface{}:
		return TypeDict
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Matches reports whether a decoded value satisfies the declared type
// name. Unrecognized names match everything (silently unchecked).
func Matches(typeName string, v interface{}) bool {
	switch typeName {
	case TypeStr:
		_, ok := v.(string)
		return ok
	case TypeInt:
		n, ok := v.(json.Number)
		return ok && isIntegerLiteral(string(n))
	case TypeFloat:
		n, ok := v.(json.Number)
		return ok && !isIntegerLiteral(string(n))
	case TypeBool:
		_, ok := v.(bool)
		return ok
	case TypeList:
		_, ok := v.([]interface{})
		return ok
	case TypeDict:
		_, ok := v.(map[string]interface{})
		return ok
	}
	return true
}

// isIntegerLiteral classifies a JSON number literal: a fraction or an
// exponent makes it a float, anything else is an int.
func isIntegerLiteral(lit string) bool {
	return !strings.ContainsAny(lit, ".eE")
}
