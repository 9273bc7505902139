package stackitem

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
)

// MaxAllowedInteger is the largest integer ToJSON will render as a bare
// JSON number; beyond it a C#-compatible decoder would lose precision.
const MaxAllowedInteger = 1<<53 - 1

// MaxJSONDepth bounds the nesting level ToJSON/FromJSON will walk.
const MaxJSONDepth = 10

// ErrInvalidValue is returned when an item's value doesn't fit JSON's
// constraints (an integer too large to round-trip, a malformed encoding).
var ErrInvalidValue = errors.New("invalid value")

// ErrTooDeep is returned when encoding or decoding exceeds MaxJSONDepth.
var ErrTooDeep = errors.New("too deep")

// ToJSON encodes item the way RPC results render stack items: Buffer as a
// base64 string, Integer as a bare number, Boolean as bool, Array/Struct as
// a JSON array. Object has no JSON projection and is rejected.
func ToJSON(item Item) ([]byte, error) {
	v, err := toJSON(item, 0)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func toJSON(item Item, depth int) (interface{}, error) {
	if depth > MaxJSONDepth {
		return nil, ErrTooDeep
	}
	switch it := item.(type) {
	case *Boolean:
		return bool(*it), nil
	case *Integer:
		n, _ := it.AsBigInteger()
		if n.CmpAbs(big.NewInt(MaxAllowedInteger)) > 0 {
			return nil, fmt.Errorf("%w (exceeds MaxAllowedInteger)", ErrInvalidValue)
		}
		return json.Number(n.String()), nil
	case *Buffer:
		return base64.StdEncoding.EncodeToString(*it), nil
	case *Array:
		out := make([]interface{}, len(it.items))
		for i, v := range it.items {
			sub, err := toJSON(v, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = sub
		}
		return out, nil
	case *Struct:
		out := make([]interface{}, len(it.items))
		for i, v := range it.items {
			sub, err := toJSON(v, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = sub
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnserializable, item)
	}
}

// FromJSON decodes an Item the way ToJSON rendered it: string -> Buffer
// (base64), number -> Integer, bool -> Boolean, array -> Array.
func FromJSON(data []byte) (Item, error) {
	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return fromJSON(raw, 0)
}

func fromJSON(raw interface{}, depth int) (Item, error) {
	if depth > MaxJSONDepth {
		return nil, ErrTooDeep
	}
	switch v := raw.(type) {
	case nil:
		return NewBuffer(nil), nil
	case bool:
		return NewBoolean(v), nil
	case json.Number:
		f, _, err := new(big.Float).Parse(v.String(), 10)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidValue, v)
		}
		if !f.IsInt() {
			return nil, fmt.Errorf("%w (real value for integer)", ErrInvalidValue)
		}
		n, _ := f.Int(nil)
		return NewInteger(n), nil
	case string:
		b, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return NewBuffer(b), nil
	case []interface{}:
		items := make([]Item, len(v))
		for i, e := range v {
			it, err := fromJSON(e, depth+1)
			if err != nil {
				return nil, err
			}
			items[i] = it
		}
		return NewArray(items), nil
	default:
		return nil, fmt.Errorf("%w: unsupported JSON value %T", ErrInvalidValue, v)
	}
}
