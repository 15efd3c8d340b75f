package bytebuffer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_ReadBigEndian(t *testing.T) {
	b := New([]byte{
		0x01,
		0x00, 0x02,
		0x00, 0x00, 0x01, 0x00,
		0x3F, 0x80, 0x00, 0x00, // 1.0
		0x03, 'a', 'b', 'c',
	})

	v, err := b.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(1), v)

	i16, err := b.ReadInt16()
	require.NoError(t, err)
	assert.Equal(t, int16(2), i16)

	i32, err := b.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(256), i32)

	f, err := b.ReadFloat32()
	require.NoError(t, err)
	assert.Equal(t, float32(1), f)

	s, err := b.ReadStringByteLength()
	require.NoError(t, err)
	assert.Equal(t, "abc", s)

	assert.Equal(t, int64(15), b.Offset())
	assert.Equal(t, 0, b.Len())
}

func TestBuffer_UnexpectedEOF(t *testing.T) {
	b := New([]byte{0x00, 0x01, 0x02})

	require.NoError(t, b.Skip(2))

	_, err := b.ReadInt32()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))
	assert.Contains(t, err.Error(), "offset 2")

	_, err = b.ReadString(10)
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))
}

func TestBuffer_HasPrefix(t *testing.T) {
	b := New([]byte("PK\x03\x04rest"))

	assert.True(t, b.HasPrefix([]byte("PK\x03\x04")))
	assert.False(t, b.HasPrefix([]byte("BCFZ")))
	assert.Equal(t, int64(0), b.Offset())

	require.NoError(t, b.Skip(4))
	assert.True(t, b.HasPrefix([]byte("rest")))
	assert.False(t, b.HasPrefix([]byte("restmore")))
}
