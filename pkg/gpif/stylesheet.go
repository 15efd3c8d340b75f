package gpif

import (
	"fmt"

	"github.com/Garik-/gpscore/pkg/bytebuffer"
)

// DataType is the value kind of a stylesheet record.
type DataType byte

const (
	DataBoolean DataType = iota
	DataInteger
	DataFloat
	DataString
	DataPoint
	DataSize
	DataRectangle
	DataColor
)

const HideDynamicsKey = "StandardNotation/hideDynamics"

type Point struct{ X, Y int32 }

type Size struct{ Width, Height float32 }

type Rectangle struct{ X, Y, Width, Height float32 }

type Color struct{ R, G, B, A byte }

// Stylesheet is the decoded BinaryStylesheet entry.
type Stylesheet struct {
	Values map[string]interface{}
}

// ReadStylesheet decodes a big-endian list of key/value records.
func ReadStylesheet(data []byte) (*Stylesheet, error) {
	buf := bytebuffer.New(data)
	count, err := buf.ReadInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("stylesheet: negative record count %d", count)
	}

	s := &Stylesheet{Values: make(map[string]interface{})}
	for i := int32(0); i < count; i++ {
		key, err := buf.ReadStringByteLength()
		if err != nil {
			return nil, err
		}
		kind, err := buf.ReadByte()
		if err != nil {
			return nil, err
		}
		value, err := readValue(buf, DataType(kind))
		if err != nil {
			return nil, fmt.Errorf("stylesheet %s: %w", key, err)
		}
		s.Values[key] = value
	}
	return s, nil
}

func readValue(buf *bytebuffer.Buffer, kind DataType) (interface{}, error) {
	switch kind {
	case DataBoolean:
		return buf.ReadBool()
	case DataInteger:
		return buf.ReadInt32()
	case DataFloat:
		return buf.ReadFloat32()
	case DataString:
		return buf.ReadStringInt16Length()
	case DataPoint:
		x, err := buf.ReadInt32()
		if err != nil {
			return nil, err
		}
		y, err := buf.ReadInt32()
		return Point{x, y}, err
	case DataSize:
		v, err := readFloats(buf, 2)
		if err != nil {
			return nil, err
		}
		return Size{v[0], v[1]}, nil
	case DataRectangle:
		v, err := readFloats(buf, 4)
		if err != nil {
			return nil, err
		}
		return Rectangle{v[0], v[1], v[2], v[3]}, nil
	case DataColor:
		c, err := buf.ReadBytes(4)
		if err != nil {
			return nil, err
		}
		return Color{c[0], c[1], c[2], c[3]}, nil
	}
	return nil, fmt.Errorf("unknown data type %d at offset %d", kind, buf.Offset())
}

func readFloats(buf *bytebuffer.Buffer, n int) ([]float32, error) {
	out := make([]float32, n)
	for i := range out {
		f, err := buf.ReadFloat32()
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// Bool returns the boolean stored under key.
func (s *Stylesheet) Bool(key string) (bool, bool) {
	v, ok := s.Values[key].(bool)
	return v, ok
}
