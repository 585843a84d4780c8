package runtime

import (
	"math"
	"strconv"
)

// Truthy reports whether v counts as true in a condition: nil and false
// are falsy, everything else — including 0 and the empty string — is
// truthy.
func Truthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal compares two values by variant: booleans, numbers, and strings
// compare by value (with NaN deliberately treated as equal to itself,
// contrary to IEEE-754); callables, classes, and instances compare by
// identity.
func Equal(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return false
		}
		if math.IsNaN(av) && math.IsNaN(bv) {
			return true
		}
		return av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case *Function:
		bv, ok := b.(*Function)
		return ok && av.id == bv.id
	case *BoundMethod:
		bv, ok := b.(*BoundMethod)
		return ok && av.id == bv.id
	case *NativeFunction:
		bv, ok := b.(*NativeFunction)
		return ok && av.id == bv.id
	case *Class:
		bv, ok := b.(*Class)
		return ok && av.id == bv.id
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av.id == bv.id
	default:
		return false
	}
}

// Stringify renders v the way a print statement displays it.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(val)
	case string:
		return val
	case Callable:
		return val.String()
	case *Class:
		return val.String()
	case *Instance:
		return val.String()
	default:
		return "nil"
	}
}

// formatNumber drops a trailing ".0" for integral values, matching the
// classic Lox display rule and keeping parser-literal round-trips stable.
func formatNumber(n float64) string {
	text := strconv.FormatFloat(n, 'g', -1, 64)
	if math.Trunc(n) == n && !math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return text
}

// TypeName names v's runtime kind ("nil", "boolean", "number", and so
// on).
func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case Callable, *Class:
		return "callable"
	case *Instance:
		return "instance"
	default:
		return "value"
	}
}
