package param

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// Value is a sealed interface representing a parameter value.
// Only String, Int, Float, Bool, and Array implement this.
type Value interface {
	paramValue() // Sealed - only these types implement it
}

// String is a text parameter, e.g. an initial condition name.
type String string

func (String) paramValue() {}

// Int is an integer parameter, e.g. a grid resolution.
type Int int64

func (Int) paramValue() {}

// Float is a real-valued parameter, e.g. a viscosity or box length.
type Float float64

func (Float) paramValue() {}

// Bool is a logical switch parameter.
type Bool bool

func (Bool) paramValue() {}

// Array is an ordered list of values, e.g. a per-axis vector.
type Array []Value

func (Array) paramValue() {}

// Params maps parameter names to values.
// Use SortedKeys() for deterministic iteration.
type Params map[string]Value

// Get looks up a parameter by exact name.
func (p Params) Get(name string) (Value, bool) {
	v, ok := p[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// SortedKeys returns parameter names in bytewise order.
func (p Params) SortedKeys() []string {
	return slices.Sorted(maps.Keys(p))
}

// FromAny converts a decoded Go value (from yaml.v3, encoding/json with
// UseNumber, or plain Go literals) into a Value.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("null is not a valid parameter value")
	case Value:
		return val, nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case int:
		return Int(val), nil
	case int8:
		return Int(val), nil
	case int16:
		return Int(val), nil
	case int32:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint8:
		return Int(val), nil
	case uint16:
		return Int(val), nil
	case uint32:
		return Int(val), nil
	case uint:
		if uint64(val) > math.MaxInt64 {
			return nil, fmt.Errorf("integer out of int64 range: %d", val)
		}
		return Int(val), nil
	case uint64:
		if val > math.MaxInt64 {
			return nil, fmt.Errorf("integer out of int64 range: %d", val)
		}
		return Int(val), nil
	case float32:
		return newFloat(float64(val))
	case float64:
		return newFloat(val)
	case json.Number:
		return fromNumber(val)
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			pv, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr[i] = pv
		}
		return arr, nil
	case []float64:
		arr := make(Array, len(val))
		for i, elem := range val {
			pv, err := newFloat(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr[i] = pv
		}
		return arr, nil
	case map[string]any:
		return nil, fmt.Errorf("nested mappings are not supported as parameter values")
	default:
		return nil, fmt.Errorf("unsupported parameter type: %T", v)
	}
}

// FromMap converts a decoded mapping into Params.
// Keys are visited in sorted order so the first error reported is stable.
func FromMap(m map[string]any) (Params, error) {
	params := make(Params, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v, err := FromAny(m[k])
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", k, err)
		}
		params[k] = v
	}
	return params, nil
}

// fromNumber decodes a json.Number. Numbers with a fraction or exponent
// become Float; everything else must fit in int64.
func fromNumber(n json.Number) (Value, error) {
	s := string(n)
	if strings.ContainsAny(s, ".eE") {
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %s: %w", s, err)
		}
		return newFloat(f)
	}
	i, err := n.Int64()
	if err != nil {
		return nil, fmt.Errorf("number out of int64 range: %s", s)
	}
	return Int(i), nil
}

func newFloat(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("non-finite float is not a valid parameter value: %v", f)
	}
	return Float(f), nil
}
