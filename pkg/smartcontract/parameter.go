package smartcontract

import (
	"encoding/hex"
	"encoding/json"
)

// Parameter is a serializable projection of a VM stack item, the shape
// emitted as the payload of a Notify action and as the value tree returned
// to an external caller (spec §3, "toContractParameter").
type Parameter struct {
	Type  ParamType   `json:"type"`
	Value interface{} `json:"value,omitempty"`
}

// NewBoolParameter builds a Boolean contract parameter.
func NewBoolParameter(b bool) Parameter {
	return Parameter{Type: BoolType, Value: b}
}

// NewIntegerParameter builds an Integer contract parameter.
func NewIntegerParameter(v int64) Parameter {
	return Parameter{Type: IntegerType, Value: v}
}

// NewByteArrayParameter builds a ByteArray contract parameter.
func NewByteArrayParameter(b []byte) Parameter {
	return Parameter{Type: ByteArrayType, Value: b}
}

// NewArrayParameter builds an Array contract parameter.
func NewArrayParameter(items []Parameter) Parameter {
	return Parameter{Type: ArrayType, Value: items}
}

type parameterAux struct {
	Type  ParamType       `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface, hex-encoding byte
// payloads the way the RPC layer this VM feeds expects.
func (p Parameter) MarshalJSON() ([]byte, error) {
	var raw interface{} = p.Value
	if b, ok := p.Value.([]byte); ok {
		raw = hex.EncodeToString(b)
	}
	val, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return json.Marshal(parameterAux{Type: p.Type, Value: val})
}
