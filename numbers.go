package wary

import (
	"encoding/binary"
	"math"
)

// Fixed-width numeric reads. Each consumes exactly the encoded size or
// fails with a LengthShortfall stating it, so a streaming caller knows
// precisely how many bytes short it came up.

// fixed consumes exactly n bytes for the named operation and returns
// them raw.
func (r *Reader[E]) fixed(n int, operation string) ([]byte, error) {
	head, tail, k := r.input.splitAt(n, operation)
	if k != nil {
		return nil, raiseShortfall[E](k)
	}
	r.input = tail
	return head.Raw(), nil
}

// U8 consumes one byte as an unsigned integer.
func (r *Reader[E]) U8() (uint8, error) {
	b, err := r.fixed(1, "read u8")
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16LE consumes a little-endian uint16.
func (r *Reader[E]) U16LE() (uint16, error) {
	b, err := r.fixed(2, "read u16-le")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// U16BE consumes a big-endian uint16.
func (r *Reader[E]) U16BE() (uint16, error) {
	b, err := r.fixed(2, "read u16-be")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// U32LE consumes a little-endian uint32.
func (r *Reader[E]) U32LE() (uint32, error) {
	b, err := r.fixed(4, "read u32-le")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// U32BE consumes a big-endian uint32.
func (r *Reader[E]) U32BE() (uint32, error) {
	b, err := r.fixed(4, "read u32-be")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// U64LE consumes a little-endian uint64.
func (r *Reader[E]) U64LE() (uint64, error) {
	b, err := r.fixed(8, "read u64-le")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// U64BE consumes a big-endian uint64.
func (r *Reader[E]) U64BE() (uint64, error) {
	b, err := r.fixed(8, "read u64-be")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// I8 consumes one byte as a signed integer.
func (r *Reader[E]) I8() (int8, error) {
	b, err := r.fixed(1, "read i8")
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// I16LE consumes a little-endian int16.
func (r *Reader[E]) I16LE() (int16, error) {
	v, err := r.U16LE()
	return int16(v), err
}

// I16BE consumes a big-endian int16.
func (r *Reader[E]) I16BE() (int16, error) {
	v, err := r.U16BE()
	return int16(v), err
}

// I32LE consumes a little-endian int32.
func (r *Reader[E]) I32LE() (int32, error) {
	v, err := r.U32LE()
	return int32(v), err
}

// I32BE consumes a big-endian int32.
func (r *Reader[E]) I32BE() (int32, error) {
	v, err := r.U32BE()
	return int32(v), err
}

// I64LE consumes a little-endian int64.
func (r *Reader[E]) I64LE() (int64, error) {
	v, err := r.U64LE()
	return int64(v), err
}

// I64BE consumes a big-endian int64.
func (r *Reader[E]) I64BE() (int64, error) {
	v, err := r.U64BE()
	return int64(v), err
}

// F32LE consumes a little-endian IEEE 754 float32.
func (r *Reader[E]) F32LE() (float32, error) {
	v, err := r.U32LE()
	return math.Float32frombits(v), err
}

// F32BE consumes a big-endian IEEE 754 float32.
func (r *Reader[E]) F32BE() (float32, error) {
	v, err := r.U32BE()
	return math.Float32frombits(v), err
}

// F64LE consumes a little-endian IEEE 754 float64.
func (r *Reader[E]) F64LE() (float64, error) {
	v, err := r.U64LE()
	return math.Float64frombits(v), err
}

// F64BE consumes a big-endian IEEE 754 float64.
func (r *Reader[E]) F64BE() (float64, error) {
	v, err := r.U64BE()
	return math.Float64frombits(v), err
}
