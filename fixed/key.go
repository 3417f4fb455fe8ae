package fixed

import (
	"bytes"
	"cmp"
	"encoding/binary"
)

// MaxWidth is the maximum key width in bytes.
const MaxWidth = 64

// Key stores a byte key inline. Keys are values and comparable with ==.
type Key struct {
	buf [MaxWidth]byte
	n   uint8
}

// NewKey copies b into a key.
//
// Returns an error if b exceeds MaxWidth bytes.
func NewKey(b []byte) (Key, error) {
	if len(b) > MaxWidth {
		return Key{}, ErrKeyTooLarge
	}
	var k Key
	copy(k.buf[:], b)
	k.n = uint8(len(b))
	return k, nil
}

// Len returns the key width in bytes.
func (k Key) Len() int {
	return int(k.n)
}

// Bytes returns a copy of the key bytes.
func (k Key) Bytes() []byte {
	return bytes.Clone(k.buf[:k.n])
}

func (k *Key) view() []byte {
	return k.buf[:k.n]
}

// Comparator is a three-way comparison over two key buffers of equal width.
type Comparator func(a, b []byte) int

// CompareBytes orders keys lexicographically.
func CompareBytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

// CompareInt32LE orders 4-byte keys holding little-endian signed integers.
func CompareInt32LE(a, b []byte) int {
	return cmp.Compare(Int32(a), Int32(b))
}

// CompareUint64BE orders 8-byte keys holding big-endian unsigned integers.
func CompareUint64BE(a, b []byte) int {
	return cmp.Compare(binary.BigEndian.Uint64(a), binary.BigEndian.Uint64(b))
}

// PutInt32 encodes v as a 4-byte little-endian key.
func PutInt32(v int32) []byte {
	return binary.LittleEndian.AppendUint32(make([]byte, 0, 4), uint32(v))
}

// Int32 decodes a 4-byte little-endian key.
func Int32(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b))
}
