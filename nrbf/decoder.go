package nrbf

import (
	"fmt"

	"github.com/jasperfirecai2/ngu-decoder/internal/bitio"
	"github.com/jasperfirecai2/ngu-decoder/nrbf/rtype"
)

// Header carries the four fixed fields of the SerializationHeaderRecord.
// It is parsed and kept for inspection but never inserted into the object
// table; the actual root is whichever record is registered first.
type Header struct {
	RootID       uint32
	HeaderID     uint32
	MajorVersion uint32
	MinorVersion uint32
}

// slotFixup is a deferred write: at MessageEnd, objects[refID] is written
// into parent.memberValues[index], resolving a MemberReference recorded
// while parent was the open composite at the top of the stack.
type slotFixup struct {
	parent *composite
	index  int
	refID  uint32
}

// Decoder drives the record-parser state machine over a single buffered
// input. It is not safe for concurrent use and is meant to be discarded
// after one Decode call.
type Decoder struct {
	r *bitio.Reader

	Header    Header
	Libraries []Library

	objects map[uint32]any
	stack   []*composite
	fixups  []slotFixup
	rootID  *uint32
}

// NewDecoder wraps data for a single decode pass.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		r:       bitio.New(data),
		objects: make(map[uint32]any),
	}
}

// Deserialize decodes a complete NRBF byte stream and projects the result
// into a plain Value tree. It is the package's single entry point.
func Deserialize(data []byte) (Value, error) {
	return NewDecoder(data).Decode()
}

// Decode runs the parser to completion, returning the projected root value.
func (d *Decoder) Decode() (Value, error) {
	if err := d.readHeader(); err != nil {
		return nil, err
	}
	for {
		if top := d.top(); top != nil {
			if !top.filled() {
				i := len(top.memberValues)
				if top.memberType(i) == rtype.Primitive {
					ptc, ok := top.additionalInfo(i).(rtype.PrimitiveTypeCode)
					if !ok {
						return nil, fmt.Errorf("nrbf: member %d has no primitive type code", i)
					}
					v, err := d.decodePrimitive(ptc)
					if err != nil {
						return nil, err
					}
					top.append(v)
					continue
				}
				// Non-primitive member: the next record on the wire fills
				// this slot. Fall through to record dispatch.
			} else {
				d.stack = d.stack[:len(d.stack)-1]
				continue
			}
		}

		done, v, err := d.readRecord()
		if err != nil {
			return nil, err
		}
		if done {
			return v, nil
		}
	}
}

func (d *Decoder) top() *composite {
	if len(d.stack) == 0 {
		return nil
	}
	return d.stack[len(d.stack)-1]
}

func (d *Decoder) readHeader() error {
	tagByte, err := d.r.ReadU8()
	if err != nil || rtype.RecordTag(tagByte) != rtype.SerializationHeader {
		return ErrInvalidHeader
	}
	fields := []*uint32{&d.Header.RootID, &d.Header.HeaderID, &d.Header.MajorVersion, &d.Header.MinorVersion}
	for _, f := range fields {
		v, err := d.r.ReadU32()
		if err != nil {
			return err
		}
		*f = v
	}
	return nil
}

// readRecord reads one leading tag byte and dispatches per the record
// table. It returns done=true only for MessageEnd, at which point v is the
// fully projected root.
func (d *Decoder) readRecord() (done bool, v Value, err error) {
	tagByte, err := d.r.ReadU8()
	if err != nil {
		return false, nil, err
	}
	tag := rtype.RecordTag(tagByte)
	switch tag {
	case rtype.ClassWithId:
		return false, nil, d.readClassWithId()
	case rtype.SystemClassWithMembersAndTypes:
		return false, nil, d.readClassWithMembersAndTypes(false)
	case rtype.ClassWithMembersAndTypes:
		return false, nil, d.readClassWithMembersAndTypes(true)
	case rtype.BinaryObjectString:
		return false, nil, d.readBinaryObjectString()
	case rtype.BinaryArray:
		return false, nil, d.readBinaryArray()
	case rtype.MemberReference:
		return false, nil, d.readMemberReference()
	case rtype.ObjectNull:
		d.appendToParent(nil)
		return false, nil, nil
	case rtype.ObjectNullMultiple256:
		return false, nil, d.readObjectNullMultiple256()
	case rtype.BinaryLibrary:
		return false, nil, d.readBinaryLibrary()
	case rtype.ArraySinglePrimitive:
		return false, nil, d.readArraySinglePrimitive()
	case rtype.MessageEnd:
		root, err := d.finish()
		return true, root, err
	default:
		return false, nil, errUnknownRecord(tag)
	}
}

func (d *Decoder) currentParent() *composite {
	return d.top()
}

func (d *Decoder) appendToParent(v any) {
	if p := d.currentParent(); p != nil {
		p.append(v)
	}
}

func (d *Decoder) registerObject(id uint32, v any) {
	d.objects[id] = v
	if d.rootID == nil {
		rootID := id
		d.rootID = &rootID
	}
}

func (d *Decoder) readClassWithId() error {
	objectID, err := d.r.ReadU32()
	if err != nil {
		return err
	}
	metadataID, err := d.r.ReadU32()
	if err != nil {
		return err
	}
	srcAny, ok := d.objects[metadataID]
	if !ok {
		return errDanglingReference(metadataID)
	}
	src, ok := srcAny.(*composite)
	if !ok || src.desc == nil {
		return fmt.Errorf("nrbf: ClassWithId metadataId=%d does not refer to a class descriptor", metadataID)
	}
	inst := &composite{objectID: objectID, desc: src.desc.clone()}
	d.registerObject(objectID, inst)
	d.appendToParent(inst)
	d.stack = append(d.stack, inst)
	return nil
}

// readClassWithMembersAndTypes reads a class descriptor plus its inline
// additional-info, shared by the system-class and user-class record tags.
// hasLibrary is false for the system-class tag (no trailing libraryId).
func (d *Decoder) readClassWithMembersAndTypes(hasLibrary bool) error {
	objectID, err := d.r.ReadU32()
	if err != nil {
		return err
	}
	name, err := d.r.ReadLengthPrefixedString()
	if err != nil {
		return err
	}
	memberCount, err := d.r.ReadU32()
	if err != nil {
		return err
	}
	memberNames := make([]string, memberCount)
	for i := range memberNames {
		if memberNames[i], err = d.r.ReadLengthPrefixedString(); err != nil {
			return err
		}
	}
	memberTypes := make([]rtype.BinaryTypeCode, memberCount)
	for i := range memberTypes {
		b, err := d.r.ReadU8()
		if err != nil {
			return err
		}
		memberTypes[i] = rtype.BinaryTypeCode(b)
	}
	additionalInfos := make([]any, memberCount)
	for i, t := range memberTypes {
		info, err := d.readAdditionalInfo(t)
		if err != nil {
			return err
		}
		additionalInfos[i] = info
	}
	var libraryID *uint32
	if hasLibrary {
		lib, err := d.r.ReadU32()
		if err != nil {
			return err
		}
		libraryID = &lib
	}
	desc := &classDescriptor{
		name:            name,
		memberNames:     memberNames,
		memberTypes:     memberTypes,
		additionalInfos: additionalInfos,
		libraryID:       libraryID,
		systemClass:     !hasLibrary,
	}
	inst := &composite{objectID: objectID, desc: desc}
	d.registerObject(objectID, inst)
	d.appendToParent(inst)
	d.stack = append(d.stack, inst)
	return nil
}

func (d *Decoder) readAdditionalInfo(t rtype.BinaryTypeCode) (any, error) {
	switch t {
	case rtype.Primitive, rtype.PrimitiveArray:
		b, err := d.r.ReadU8()
		if err != nil {
			return nil, err
		}
		ptc := rtype.PrimitiveTypeCode(b)
		if !ptc.Valid() {
			return nil, errUnsupportedPrimitive(ptc)
		}
		return ptc, nil
	case rtype.StringType, rtype.Object, rtype.ObjectArray, rtype.StringArray:
		return nil, nil
	case rtype.SystemClass:
		return d.r.ReadLengthPrefixedString()
	case rtype.Class:
		className, err := d.r.ReadLengthPrefixedString()
		if err != nil {
			return nil, err
		}
		libraryID, err := d.r.ReadU32()
		if err != nil {
			return nil, err
		}
		return classAddInfo{className: className, libraryID: libraryID}, nil
	default:
		return nil, fmt.Errorf("nrbf: unrecognized binary type code %d", byte(t))
	}
}

func (d *Decoder) readBinaryObjectString() error {
	objectID, err := d.r.ReadU32()
	if err != nil {
		return err
	}
	s, err := d.r.ReadLengthPrefixedString()
	if err != nil {
		return err
	}
	d.registerObject(objectID, s)
	d.appendToParent(s)
	return nil
}

// sumOfLengths computes totalLength as the observed source behavior does:
// the sum, not the product, of the per-rank dimension lengths. Canonical
// .NET BinaryFormatter uses the product; this is tracked as a likely bug
// inherited from the reference implementation (see DESIGN.md).
func sumOfLengths(lengths []uint32) uint32 {
	var sum uint32
	for _, l := range lengths {
		sum += l
	}
	return sum
}

func (d *Decoder) readBinaryArray() error {
	objectID, err := d.r.ReadU32()
	if err != nil {
		return err
	}
	binaryArrayType, err := d.r.ReadU8()
	if err != nil {
		return err
	}
	rank, err := d.r.ReadU32()
	if err != nil {
		return err
	}
	lengths := make([]uint32, rank)
	for i := range lengths {
		if lengths[i], err = d.r.ReadU32(); err != nil {
			return err
		}
	}
	var lowerBounds []uint32
	if binaryArrayType > 2 {
		lowerBounds = make([]uint32, rank)
		for i := range lowerBounds {
			if lowerBounds[i], err = d.r.ReadU32(); err != nil {
				return err
			}
		}
	}
	itemTypeByte, err := d.r.ReadU8()
	if err != nil {
		return err
	}
	itemType := rtype.BinaryTypeCode(itemTypeByte)
	itemAddInfo, err := d.readAdditionalInfo(itemType)
	if err != nil {
		return err
	}
	inst := &composite{
		objectID:    objectID,
		isArray:     true,
		rank:        rank,
		lengths:     lengths,
		lowerBounds: lowerBounds,
		itemType:    itemType,
		itemAddInfo: itemAddInfo,
		totalLength: sumOfLengths(lengths),
	}
	d.registerObject(objectID, inst)
	// BinaryArray is reached only via reference: the source never appends
	// it to a parent's memberValues, even when one is open.
	d.stack = append(d.stack, inst)
	return nil
}

func (d *Decoder) readMemberReference() error {
	refID, err := d.r.ReadU32()
	if err != nil {
		return err
	}
	if parent := d.currentParent(); parent != nil {
		d.fixups = append(d.fixups, slotFixup{parent: parent, index: len(parent.memberValues), refID: refID})
		parent.append(ref{id: refID})
	}
	return nil
}

func (d *Decoder) readObjectNullMultiple256() error {
	count, err := d.r.ReadU8()
	if err != nil {
		return err
	}
	for i := 0; i < int(count); i++ {
		d.appendToParent(nil)
	}
	return nil
}

func (d *Decoder) readBinaryLibrary() error {
	libraryID, err := d.r.ReadU32()
	if err != nil {
		return err
	}
	name, err := d.r.ReadLengthPrefixedString()
	if err != nil {
		return err
	}
	d.Libraries = append(d.Libraries, Library{ID: libraryID, Name: name})
	return nil
}

func (d *Decoder) readArraySinglePrimitive() error {
	objectID, err := d.r.ReadU32()
	if err != nil {
		return err
	}
	length, err := d.r.ReadU32()
	if err != nil {
		return err
	}
	typeByte, err := d.r.ReadU8()
	if err != nil {
		return err
	}
	ptc := rtype.PrimitiveTypeCode(typeByte)
	if !ptc.Valid() {
		return errUnsupportedPrimitive(ptc)
	}
	values := make([]any, length)
	for i := range values {
		v, err := d.decodePrimitive(ptc)
		if err != nil {
			return err
		}
		values[i] = v
	}
	d.registerObject(objectID, values)
	// Complete on creation: not pushed to the stack, not appended to a
	// parent (reached via reference, like BinaryArray).
	return nil
}

func (d *Decoder) decodePrimitive(ptc rtype.PrimitiveTypeCode) (any, error) {
	switch ptc {
	case rtype.Boolean:
		b, err := d.r.ReadU8()
		return b != 0, err
	case rtype.Byte:
		return d.r.ReadU8()
	case rtype.Char:
		return d.r.ReadU8()
	case rtype.Decimal:
		return d.r.ReadLengthPrefixedString()
	case rtype.Double:
		return d.r.ReadF64()
	case rtype.Int16:
		v, err := d.r.ReadU16()
		return int16(v), err
	case rtype.Int32:
		v, err := d.r.ReadU32()
		return int32(v), err
	case rtype.Int64:
		v, err := d.r.ReadU64()
		return int64(v), err
	case rtype.SByte:
		return d.r.ReadI8()
	case rtype.Single:
		return d.r.ReadF32()
	case rtype.TimeSpan, rtype.DateTime:
		// Raw tick counts: no calendar conversion, per the decoder's
		// non-goals.
		return d.r.ReadU64()
	case rtype.UInt16:
		return d.r.ReadU16()
	case rtype.UInt32:
		return d.r.ReadU32()
	case rtype.UInt64:
		return d.r.ReadU64()
	case rtype.Null:
		return nil, nil
	case rtype.String:
		return d.r.ReadLengthPrefixedString()
	default:
		return nil, errUnsupportedPrimitive(ptc)
	}
}

func (d *Decoder) finish() (Value, error) {
	for _, c := range d.stack {
		if !c.filled() {
			return nil, errIncompleteObject(c.objectID)
		}
	}
	for _, fx := range d.fixups {
		v, ok := d.objects[fx.refID]
		if !ok {
			return nil, errDanglingReference(fx.refID)
		}
		fx.parent.memberValues[fx.index] = v
	}
	if d.rootID == nil {
		return nil, ErrNoRoot
	}
	root, ok := d.objects[*d.rootID]
	if !ok {
		return nil, ErrNoRoot
	}
	return project(root), nil
}
