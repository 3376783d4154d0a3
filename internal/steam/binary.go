package steam

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Binary VDF field types.
const (
	binMap     byte = 0x00
	binString  byte = 0x01
	binInt32   byte = 0x02
	binFloat32 byte = 0x03
	binPointer byte = 0x04
	binWString byte = 0x05
	binColor   byte = 0x06
	binUint64  byte = 0x07
	binEnd     byte = 0x08
	binInt64   byte = 0x0a
	binEndAlt  byte = 0x0b
)

// binaryReader decodes the binary KeyValues format used by shortcuts.vdf.
type binaryReader struct {
	data []byte
	pos  int
}

// parseBinary decodes a binary VDF document. Int32 fields are returned as
// uint32, strings as string and sections as map[string]interface{}.
func parseBinary(data []byte) (node, error) {
	r := &binaryReader{data: data}
	m, err := r.readMap(true)
	if err != nil {
		return nil, err
	}
	return node(m), nil
}

func (r *binaryReader) readMap(top bool) (map[string]interface{}, error) {
	m := make(map[string]interface{})
	for {
		if r.pos >= len(r.data) {
			if top {
				return m, nil
			}
			return nil, fmt.Errorf("unexpected end of data at offset %d", r.pos)
		}

		typ := r.data[r.pos]
		r.pos++
		if typ == binEnd || typ == binEndAlt {
			return m, nil
		}

		key, err := r.readString()
		if err != nil {
			return nil, err
		}

		switch typ {
		case binMap:
			child, err := r.readMap(false)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			m[key] = child
		case binString:
			s, err := r.readString()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			m[key] = s
		case binWString:
			// Wide strings are not used by shortcuts; skip the UTF-16 payload.
			if err := r.skipWString(); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
		case binInt32, binPointer, binColor:
			b, err := r.take(4)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			m[key] = binary.LittleEndian.Uint32(b)
		case binFloat32:
			b, err := r.take(4)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			m[key] = math.Float32frombits(binary.LittleEndian.Uint32(b))
		case binUint64, binInt64:
			b, err := r.take(8)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			m[key] = binary.LittleEndian.Uint64(b)
		default:
			return nil, fmt.Errorf("unknown field type 0x%02x for %q at offset %d", typ, key, r.pos-1)
		}
	}
}

func (r *binaryReader) readString() (string, error) {
	end := bytes.IndexByte(r.data[r.pos:], 0)
	if end < 0 {
		return "", fmt.Errorf("unterminated string at offset %d", r.pos)
	}
	s := string(r.data[r.pos : r.pos+end])
	r.pos += end + 1
	return s, nil
}

func (r *binaryReader) skipWString() error {
	for {
		b, err := r.take(2)
		if err != nil {
			return err
		}
		if b[0] == 0 && b[1] == 0 {
			return nil
		}
	}
}

func (r *binaryReader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, fmt.Errorf("unexpected end of data at offset %d", r.pos)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}
