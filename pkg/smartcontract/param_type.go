package smartcontract

// ParamType represents the type tag of a contract parameter, used when
// projecting a stack item into the tree a Notify action carries (spec
// §4.1's toContractParameter).
type ParamType byte

// The full set of contract parameter types the classic ABI recognizes.
const (
	SignatureType ParamType = 0x00
	BoolType      ParamType = 0x01
	IntegerType   ParamType = 0x02
	Hash160Type   ParamType = 0x03
	Hash256Type   ParamType = 0x04
	ByteArrayType ParamType = 0x05
	PublicKeyType ParamType = 0x06
	StringType    ParamType = 0x07
	ArrayType     ParamType = 0x10
	InteropType   ParamType = 0xf0
	VoidType      ParamType = 0xff
)

// String implements the fmt.Stringer interface.
func (t ParamType) String() string {
	switch t {
	case SignatureType:
		return "Signature"
	case BoolType:
		return "Boolean"
	case IntegerType:
		return "Integer"
	case Hash160Type:
		return "Hash160"
	case Hash256Type:
		return "Hash256"
	case ByteArrayType:
		return "ByteArray"
	case PublicKeyType:
		return "PublicKey"
	case StringType:
		return "String"
	case ArrayType:
		return "Array"
	case InteropType:
		return "InteropInterface"
	default:
		return "Void"
	}
}
