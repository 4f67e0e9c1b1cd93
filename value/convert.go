/*
File    : jmespath/value/convert.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

// FromInterface converts a native Go value produced by encoding/json
// (map[string]interface{}, []interface{}, float64, string, bool, nil)
// into the internal Value tree. This is the narrow adapter spec.md §6
// calls out as an external collaborator concern ("how a caller wraps a
// native map or JSON document as an internal value"); it is kept here,
// grounded on the teacher's std/json.go convertToGoMix, because this
// module has no larger host application to own it instead.
func FromInterface(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case bool:
		return Bool{Val: t}
	case float64:
		return Number{Val: t}
	case string:
		return String{Val: t}
	case []interface{}:
		elements := make([]Value, len(t))
		for i, e := range t {
			elements[i] = FromInterface(e)
		}
		return Array{Elements: elements}
	case map[string]interface{}:
		obj := NewObject()
		for k, e := range t {
			obj.Set(k, FromInterface(e))
		}
		return obj
	default:
		return Null{}
	}
}

// ToInterface converts a Value back into plain Go data suitable for
// encoding/json.Marshal, the mirror of FromInterface, grounded on the
// teacher's std/json.go convertFromGoMix.
func ToInterface(v Value) interface{} {
	switch t := v.(type) {
	case Null:
		return nil
	case Bool:
		return t.Val
	case Number:
		return t.Val
	case String:
		return t.Val
	case Array:
		out := make([]interface{}, len(t.Elements))
		for i, e := range t.Elements {
			out[i] = ToInterface(e)
		}
		return out
	case *Object:
		out := make(map[string]interface{}, t.Len())
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			out[k] = ToInterface(val)
		}
		return out
	case ExprRef:
		return nil
	default:
		return nil
	}
}
