package bitio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jasperfirecai2/ngu-decoder/internal/bitio"
)

func TestReadU32LittleEndian(t *testing.T) {
	r := bitio.New([]byte{0x00, 0x00, 0x00, 0x01})
	v, err := r.ReadU32()
	require.NoError(t, err)
	require.EqualValues(t, 16777216, v)
}

func TestReadLengthPrefixedStringVarint(t *testing.T) {
	// Group 1: 0x81 = continuation set, data 1. Group 2: 0x02 = no
	// continuation, data 2. length = 1 + (2<<7) = 257.
	r := bitio.New([]byte{0x81, 0x02})
	// Not enough payload bytes follow to satisfy length=257, so the string
	// body read fails; the length computation itself is exercised by lr,
	// which carries the two length bytes followed by 257 payload bytes.
	lr := bitio.New(append([]byte{0x81, 0x02}, make([]byte, 257)...))
	s, err := lr.ReadLengthPrefixedString()
	require.NoError(t, err)
	require.Len(t, s, 257)

	_, err = r.ReadLengthPrefixedString()
	require.ErrorIs(t, err, bitio.ErrMalformedLength)
}

func TestReadI8SignBit(t *testing.T) {
	cases := []struct {
		in   byte
		want int8
	}{
		{0x80, -128},
		{0xFF, -1},
		{0x7F, 127},
		{0x00, 0},
	}
	for _, c := range cases {
		r := bitio.New([]byte{c.in})
		v, err := r.ReadI8()
		require.NoError(t, err)
		require.Equal(t, c.want, v, "input 0x%02X", c.in)
	}
}

func TestReadBitsCrossesByteBoundary(t *testing.T) {
	// 0b1_11110000 across two bytes, LSB-first within each byte.
	r := bitio.New([]byte{0xF0, 0x01})
	v, err := r.ReadBits(9)
	require.NoError(t, err)
	require.EqualValues(t, 0x1F0, v)
}

func TestReadBytesRequiresAlignment(t *testing.T) {
	r := bitio.New([]byte{0xFF})
	_, err := r.ReadBits(3)
	require.NoError(t, err)
	_, err = r.ReadBytes(1)
	require.Error(t, err)
}

func TestPeekBitsDoesNotAdvance(t *testing.T) {
	r := bitio.New([]byte{0x2A})
	peeked, err := r.PeekBits(8)
	require.NoError(t, err)
	read, err := r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, peeked, read)
}

func TestReadTruncated(t *testing.T) {
	r := bitio.New([]byte{0x01})
	_, err := r.ReadU32()
	require.ErrorIs(t, err, bitio.ErrTruncated)
}
