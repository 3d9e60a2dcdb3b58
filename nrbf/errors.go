package nrbf

import (
	"errors"
	"fmt"

	"github.com/jasperfirecai2/ngu-decoder/internal/bitio"
	"github.com/jasperfirecai2/ngu-decoder/nrbf/rtype"
)

// Sentinel error kinds. All of them are fatal to the decode in progress;
// Deserialize never returns a partial tree alongside an error.
//
// ErrTruncatedInput and ErrMalformedLength alias the bitio reader's own
// sentinels so errors.Is works whether the caller is looking at a raw
// bitio error or one that surfaced through the decoder.
var (
	ErrInvalidHeader        = errors.New("nrbf: first byte is not a SerializationHeaderRecord tag")
	ErrTruncatedInput       = bitio.ErrTruncated
	ErrDanglingReference    = errors.New("nrbf: reference does not resolve to any object")
	ErrMalformedLength      = bitio.ErrMalformedLength
	ErrNoRoot               = errors.New("nrbf: stream contains no object before MessageEnd")
	ErrUnknownRecord        = errors.New("nrbf: unknown record tag")
	ErrUnsupportedPrimitive = errors.New("nrbf: unsupported primitive type code")
	ErrIncompleteObject     = errors.New("nrbf: MessageEnd reached with an unfilled object still open")
)

func errUnknownRecord(tag rtype.RecordTag) error {
	return fmt.Errorf("%w: %s", ErrUnknownRecord, tag)
}

func errUnsupportedPrimitive(code rtype.PrimitiveTypeCode) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedPrimitive, code)
}

func errDanglingReference(id uint32) error {
	return fmt.Errorf("%w: id=%d", ErrDanglingReference, id)
}

func errIncompleteObject(objectID uint32) error {
	return fmt.Errorf("%w: objectId=%d", ErrIncompleteObject, objectID)
}
