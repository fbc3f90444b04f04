package ber

import (
	"math/big"

	"strix.dev/der/asn1"
)

// DefaultIntegerTag is the identifier [DecodeInteger] and
// [Serializer.AppendInteger] use.
var DefaultIntegerTag = universal(asn1.TagInteger)

// DecodeInteger decodes n as an INTEGER under [DefaultIntegerTag] into an
// arbitrary-precision [*big.Int].
func DecodeInteger(n Node) (*big.Int, error) {
	return DecodeIntegerTag(n, DefaultIntegerTag)
}

// DecodeIntegerTag decodes n as an INTEGER tagged tag. The content must be
// the minimal two's-complement big-endian encoding of the value: no
// redundant leading 0x00 (unless the value is exactly the single byte 0x00)
// and no redundant leading 0xFF.
func DecodeIntegerTag(n Node, tag asn1.Tag) (*big.Int, error) {
	if err := checkTag(n, tag); err != nil {
		return nil, err
	}
	if err := checkPrimitive(n); err != nil {
		return nil, err
	}
	data := n.Data()
	if len(data) == 0 {
		return nil, asn1.NewError(asn1.ErrorKindInvalidInteger, "INTEGER content must not be empty")
	}
	if len(data) > 1 {
		if (data[0] == 0x00 && data[1]&0x80 == 0) || (data[0] == 0xFF && data[1]&0x80 != 0) {
			return nil, asn1.NewError(asn1.ErrorKindInvalidInteger, "INTEGER content is not minimally encoded")
		}
	}
	if data[0]&0x80 == 0 {
		return new(big.Int).SetBytes(data), nil
	}
	// Negative: data is the two's-complement bit pattern. Interpret it as an
	// unsigned magnitude and subtract 2^(8*len(data)) to recover the signed
	// value.
	v := new(big.Int).SetBytes(data)
	full := new(big.Int).Lsh(big.NewInt(1), uint(8*len(data)))
	v.Sub(v, full)
	return v, nil
}

// DecodeInt64 decodes n as an INTEGER under [DefaultIntegerTag] into an
// int64, failing with [asn1.ErrorKindValueOutOfRange] if the value does not
// fit.
func DecodeInt64(n Node) (int64, error) {
	v, err := DecodeInteger(n)
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, asn1.NewError(asn1.ErrorKindValueOutOfRange, "INTEGER does not fit in int64")
	}
	return v.Int64(), nil
}

// AppendInteger appends v as an INTEGER under [DefaultIntegerTag].
func (s *Serializer) AppendInteger(v *big.Int) {
	s.AppendIntegerTag(v, DefaultIntegerTag)
}

// AppendIntegerTag appends v as an INTEGER tagged tag, using the minimal
// two's-complement big-endian encoding.
func (s *Serializer) AppendIntegerTag(v *big.Int, tag asn1.Tag) {
	s.AppendPrimitive(tag, encodeTwosComplement(v))
}

// AppendInt64 appends v as an INTEGER under [DefaultIntegerTag].
func (s *Serializer) AppendInt64(v int64) {
	s.AppendInteger(big.NewInt(v))
}

// encodeTwosComplement returns the minimal two's-complement big-endian
// encoding of v.
func encodeTwosComplement(v *big.Int) []byte {
	switch v.Sign() {
	case 0:
		return []byte{0x00}
	case 1:
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	default:
		// bitLen of the magnitude, rounded up to a whole byte, plus one
		// extra bit of headroom so the sign bit has somewhere to live.
		nbits := v.BitLen()
		nbytes := nbits/8 + 1
		full := new(big.Int).Lsh(big.NewInt(1), uint(8*nbytes))
		twos := new(big.Int).Add(full, v)
		b := twos.Bytes()
		for len(b) < nbytes {
			b = append([]byte{0x00}, b...)
		}
		// Trim redundant leading 0xFF bytes, keeping at least one byte and
		// keeping the sign bit set.
		for len(b) > 1 && b[0] == 0xFF && b[1]&0x80 != 0 {
			b = b[1:]
		}
		return b
	}
}
