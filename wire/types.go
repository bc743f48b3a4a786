package wire

// FieldType is the closed set of field types a UMB schema may declare.
//
// A small packed enum with a String() method, following the usual
// convention for wire-level enums in this codebase.
type FieldType uint8

const (
	// TypeInvalid is the zero value; never a valid field type.
	TypeInvalid FieldType = iota
	TypeByte
	TypeInt
	TypeBool
	TypeFloat
	TypeString
	TypeBytes
)

func (t FieldType) String() string {
	switch t {
	case TypeByte:
		return "byte"
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeBytes:
		return "bytes"
	default:
		return "invalid"
	}
}

// IsStatic reports whether the type has a wire size fixed by the schema
// alone, independent of field values (byte, int, bool).
func (t FieldType) IsStatic() bool {
	switch t {
	case TypeByte, TypeInt, TypeBool:
		return true
	default:
		return false
	}
}

// IsDynamic reports whether the type is variable-length on the wire
// (string, bytes, or float's decimal text).
func (t FieldType) IsDynamic() bool {
	switch t {
	case TypeString, TypeBytes, TypeFloat:
		return true
	default:
		return false
	}
}

// ParseFieldType maps a schema document's type string to a FieldType.
func ParseFieldType(s string) (FieldType, bool) {
	switch s {
	case "byte":
		return TypeByte, true
	case "int":
		return TypeInt, true
	case "bool":
		return TypeBool, true
	case "float":
		return TypeFloat, true
	case "string":
		return TypeString, true
	case "bytes":
		return TypeBytes, true
	default:
		return TypeInvalid, false
	}
}

// PartKind classifies a packet header's Part byte into the three roles the
// framing protocol distinguishes. It never appears on the wire itself — the
// raw byte value is what is transmitted — but gives the transport state
// machine a named way to branch on it.
type PartKind uint8

const (
	// PartKindIntermediate is an interior packet of a multipart message
	// (Part in [0, 253]).
	PartKindIntermediate PartKind = iota
	// PartKindFinal is the last packet of a multipart message (Part == 254).
	PartKindFinal
	// PartKindSole is the only packet of a single-part message (Part == 255).
	PartKindSole
)

func (k PartKind) String() string {
	switch k {
	case PartKindFinal:
		return "final"
	case PartKindSole:
		return "sole"
	default:
		return "intermediate"
	}
}

// ClassifyPart returns the PartKind for a raw header Part byte.
func ClassifyPart(part uint8) PartKind {
	switch part {
	case PartSolePart:
		return PartKindSole
	case PartFinal:
		return PartKindFinal
	default:
		return PartKindIntermediate
	}
}
