package bytebuffer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	// ErrUnexpectedEOF is reported when a read runs past the end of the buffer.
	ErrUnexpectedEOF = errors.New("unexpected end of buffer")
)

// Buffer is a sequential big-endian cursor over an in-memory byte slice.
// Offset always points at the next unread byte.
type Buffer struct {
	r      *bytes.Reader
	offset int64
}

func New(data []byte) *Buffer {
	return &Buffer{r: bytes.NewReader(data)}
}

// Offset returns the position of the next byte to be read.
func (b *Buffer) Offset() int64 {
	return b.offset
}

// Len returns the number of unread bytes.
func (b *Buffer) Len() int {
	return b.r.Len()
}

func (b *Buffer) read(v interface{}, size int64) error {
	if err := binary.Read(b.r, binary.BigEndian, v); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return fmt.Errorf("%w - reading %d bytes at offset %d", ErrUnexpectedEOF, size, b.offset)
		}
		return err
	}
	b.offset += size
	return nil
}

func (b *Buffer) ReadByte() (byte, error) {
	var v byte
	err := b.read(&v, 1)
	return v, err
}

func (b *Buffer) ReadBool() (bool, error) {
	v, err := b.ReadByte()
	return v == 1, err
}

func (b *Buffer) ReadInt16() (int16, error) {
	var v int16
	err := b.read(&v, 2)
	return v, err
}

func (b *Buffer) ReadInt32() (int32, error) {
	var v int32
	err := b.read(&v, 4)
	return v, err
}

func (b *Buffer) ReadFloat32() (float32, error) {
	var bits uint32
	if err := b.read(&bits, 4); err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// ReadBytes returns the next n bytes.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > b.r.Len() {
		return nil, fmt.Errorf("%w - reading %d bytes at offset %d, %d left", ErrUnexpectedEOF, n, b.offset, b.r.Len())
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return nil, err
	}
	b.offset += int64(n)
	return buf, nil
}

// ReadString reads n bytes as UTF-8 text.
func (b *Buffer) ReadString(n int) (string, error) {
	buf, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadStringByteLength reads a string prefixed by a single length byte.
func (b *Buffer) ReadStringByteLength() (string, error) {
	l, err := b.ReadByte()
	if err != nil {
		return "", err
	}
	return b.ReadString(int(l))
}

// ReadStringInt16Length reads a string prefixed by a big-endian int16 length.
func (b *Buffer) ReadStringInt16Length() (string, error) {
	l, err := b.ReadInt16()
	if err != nil {
		return "", err
	}
	return b.ReadString(int(l))
}

func (b *Buffer) Skip(n int) error {
	if n < 0 || n > b.r.Len() {
		return fmt.Errorf("%w - skipping %d bytes at offset %d", ErrUnexpectedEOF, n, b.offset)
	}
	if _, err := b.r.Seek(int64(n), io.SeekCurrent); err != nil {
		return err
	}
	b.offset += int64(n)
	return nil
}

// HasPrefix reports whether the unread bytes start with magic without consuming them.
func (b *Buffer) HasPrefix(magic []byte) bool {
	if b.r.Len() < len(magic) {
		return false
	}
	buf := make([]byte, len(magic))
	n, _ := b.r.ReadAt(buf, b.offset)
	return n == len(magic) && bytes.Equal(buf, magic)
}
