package executor

import (
	"fmt"

	"github.com/minipg/minipg/plan"
)

// matchesFilter evaluates the plan's filter condition against one row.
func matchesFilter(row map[string]interface{}, f *plan.FilterCondition) (bool, error) {
	value, ok := row[f.Column]
	if !ok {
		return false, fmt.Errorf("filter column %q not found", f.Column)
	}
	if f.Operator != plan.OpEquals {
		return false, fmt.Errorf("unsupported filter operator %v", f.Operator)
	}
	return equal(value, f.Value), nil
}

// equal compares a stored value against a filter literal. Numeric values
// are coerced to float64 first so that an int64 read from storage matches
// a numeric literal; mixed incomparable types are simply unequal.
func equal(left, right interface{}) bool {
	if left == nil || right == nil {
		return left == right
	}

	leftNum, leftIsNum := toFloat64(left)
	rightNum, rightIsNum := toFloat64(right)
	if leftIsNum && rightIsNum {
		return leftNum == rightNum
	}

	leftStr, leftIsStr := left.(string)
	rightStr, rightIsStr := right.(string)
	if leftIsStr && rightIsStr {
		return leftStr == rightStr
	}

	leftBool, leftIsBool := left.(bool)
	rightBool, rightIsBool := right.(bool)
	if leftIsBool && rightIsBool {
		return leftBool == rightBool
	}

	return false
}

// toFloat64 converts any numeric value to float64.
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}
