// Package rtype defines the closed enumerations of the .NET Binary Format:
// record tags, primitive type codes and binary type codes. They are typed
// integers rather than plain constants so a decoder can dispatch on them
// exhaustively and print them meaningfully in error messages.
package rtype

import "fmt"

// RecordTag identifies the kind of record a single leading byte introduces.
// https://learn.microsoft.com/openspecs/windows_protocols/ms-nrbf
type RecordTag byte

const (
	SerializationHeader            RecordTag = 0x00
	ClassWithId                    RecordTag = 0x01
	SystemClassWithMembers         RecordTag = 0x02 // unhandled, see DESIGN.md open questions
	ClassWithMembers               RecordTag = 0x03 // unhandled, see DESIGN.md open questions
	SystemClassWithMembersAndTypes RecordTag = 0x04
	ClassWithMembersAndTypes       RecordTag = 0x05
	BinaryObjectString             RecordTag = 0x06
	BinaryArray                    RecordTag = 0x07
	MemberPrimitiveTyped           RecordTag = 0x08 // unhandled, see DESIGN.md open questions
	MemberReference                RecordTag = 0x09
	ObjectNull                     RecordTag = 0x0A
	MessageEnd                     RecordTag = 0x0B
	BinaryLibrary                  RecordTag = 0x0C
	ObjectNullMultiple256          RecordTag = 0x0D
	ObjectNullMultiple             RecordTag = 0x0E // unhandled, see DESIGN.md open questions
	ArraySinglePrimitive           RecordTag = 0x0F
	ArraySingleObject              RecordTag = 0x10 // unhandled, see DESIGN.md open questions
	ArraySingleString              RecordTag = 0x11 // unhandled, see DESIGN.md open questions
)

func (t RecordTag) String() string {
	switch t {
	case SerializationHeader:
		return "SerializationHeader"
	case ClassWithId:
		return "ClassWithId"
	case SystemClassWithMembers:
		return "SystemClassWithMembers"
	case ClassWithMembers:
		return "ClassWithMembers"
	case SystemClassWithMembersAndTypes:
		return "SystemClassWithMembersAndTypes"
	case ClassWithMembersAndTypes:
		return "ClassWithMembersAndTypes"
	case BinaryObjectString:
		return "BinaryObjectString"
	case BinaryArray:
		return "BinaryArray"
	case MemberPrimitiveTyped:
		return "MemberPrimitiveTyped"
	case MemberReference:
		return "MemberReference"
	case ObjectNull:
		return "ObjectNull"
	case MessageEnd:
		return "MessageEnd"
	case BinaryLibrary:
		return "BinaryLibrary"
	case ObjectNullMultiple256:
		return "ObjectNullMultiple256"
	case ObjectNullMultiple:
		return "ObjectNullMultiple"
	case ArraySinglePrimitive:
		return "ArraySinglePrimitive"
	case ArraySingleObject:
		return "ArraySingleObject"
	case ArraySingleString:
		return "ArraySingleString"
	default:
		return fmt.Sprintf("RecordTag(0x%02X)", byte(t))
	}
}

// PrimitiveTypeCode identifies a scalar's wire representation. Codes 0 and
// 4 are reserved and never valid on the wire.
type PrimitiveTypeCode byte

const (
	Boolean  PrimitiveTypeCode = 1
	Byte     PrimitiveTypeCode = 2
	Char     PrimitiveTypeCode = 3
	Decimal  PrimitiveTypeCode = 5
	Double   PrimitiveTypeCode = 6
	Int16    PrimitiveTypeCode = 7
	Int32    PrimitiveTypeCode = 8
	Int64    PrimitiveTypeCode = 9
	SByte    PrimitiveTypeCode = 10
	Single   PrimitiveTypeCode = 11
	TimeSpan PrimitiveTypeCode = 12
	DateTime PrimitiveTypeCode = 13
	UInt16   PrimitiveTypeCode = 14
	UInt32   PrimitiveTypeCode = 15
	UInt64   PrimitiveTypeCode = 16
	Null     PrimitiveTypeCode = 17
	String   PrimitiveTypeCode = 18
)

func (c PrimitiveTypeCode) String() string {
	switch c {
	case Boolean:
		return "Boolean"
	case Byte:
		return "Byte"
	case Char:
		return "Char"
	case Decimal:
		return "Decimal"
	case Double:
		return "Double"
	case Int16:
		return "Int16"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case SByte:
		return "SByte"
	case Single:
		return "Single"
	case TimeSpan:
		return "TimeSpan"
	case DateTime:
		return "DateTime"
	case UInt16:
		return "UInt16"
	case UInt32:
		return "UInt32"
	case UInt64:
		return "UInt64"
	case Null:
		return "Null"
	case String:
		return "String"
	default:
		return fmt.Sprintf("PrimitiveTypeCode(%d)", byte(c))
	}
}

// Valid reports whether c is one of the assigned primitive codes; 0 and 4
// are reserved and unmapped.
func (c PrimitiveTypeCode) Valid() bool {
	return c >= 1 && c <= 18 && c != 4
}

// BinaryTypeCode classifies a member's declared type in a class descriptor.
type BinaryTypeCode byte

const (
	Primitive      BinaryTypeCode = 0
	StringType     BinaryTypeCode = 1
	Object         BinaryTypeCode = 2
	SystemClass    BinaryTypeCode = 3
	Class          BinaryTypeCode = 4
	ObjectArray    BinaryTypeCode = 5
	StringArray    BinaryTypeCode = 6
	PrimitiveArray BinaryTypeCode = 7
)

func (c BinaryTypeCode) String() string {
	switch c {
	case Primitive:
		return "Primitive"
	case StringType:
		return "String"
	case Object:
		return "Object"
	case SystemClass:
		return "SystemClass"
	case Class:
		return "Class"
	case ObjectArray:
		return "ObjectArray"
	case StringArray:
		return "StringArray"
	case PrimitiveArray:
		return "PrimitiveArray"
	default:
		return fmt.Sprintf("BinaryTypeCode(%d)", byte(c))
	}
}
