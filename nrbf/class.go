package nrbf

import "github.com/jasperfirecai2/ngu-decoder/nrbf/rtype"

// Library is a stream-scoped entry in the assembly/library table, referenced
// by user-defined class members via libraryID.
type Library struct {
	ID   uint32
	Name string
}

// classAddInfo is the additional-info payload for a BTC Class member: the
// referenced class's name plus the library it lives in.
type classAddInfo struct {
	className string
	libraryID uint32
}

// classDescriptor describes a class's member layout. It is immutable once
// parsed; ClassWithId records clone one to introduce a new instance sharing
// the same layout.
type classDescriptor struct {
	name            string
	memberNames     []string
	memberTypes     []rtype.BinaryTypeCode
	additionalInfos []any // nil | rtype.PrimitiveTypeCode | string | classAddInfo
	libraryID       *uint32
	systemClass     bool
}

func (d *classDescriptor) clone() *classDescriptor {
	c := *d
	c.memberNames = append([]string(nil), d.memberNames...)
	c.memberTypes = append([]rtype.BinaryTypeCode(nil), d.memberTypes...)
	c.additionalInfos = append([]any(nil), d.additionalInfos...)
	return &c
}

// composite is an open (or completed) object instance being filled member
// by member: either a class instance backed by a classDescriptor, or a
// BinaryArray backed by a single homogeneous item type standing in for
// totalLength synthetic members.
type composite struct {
	objectID uint32

	desc *classDescriptor // nil for arrays

	isArray     bool
	rank        uint32
	lengths     []uint32
	lowerBounds []uint32
	itemType    rtype.BinaryTypeCode
	itemAddInfo any
	totalLength uint32

	memberValues []any
}

func (c *composite) memberCount() int {
	if c.isArray {
		return int(c.totalLength)
	}
	return len(c.desc.memberTypes)
}

func (c *composite) memberType(i int) rtype.BinaryTypeCode {
	if c.isArray {
		return c.itemType
	}
	return c.desc.memberTypes[i]
}

func (c *composite) additionalInfo(i int) any {
	if c.isArray {
		return c.itemAddInfo
	}
	return c.desc.additionalInfos[i]
}

func (c *composite) filled() bool {
	return len(c.memberValues) >= c.memberCount()
}

func (c *composite) append(v any) {
	c.memberValues = append(c.memberValues, v)
}

// ref is the deferred placeholder written into a slot by a MemberReference
// record. It is always replaced by a fix-up before Deserialize returns.
type ref struct {
	id uint32
}
