package ber

import (
	"math"
	"math/big"

	"strix.dev/der/asn1"
)

// DefaultRealTag is the identifier [DecodeReal] and [Serializer.AppendReal]
// use.
var DefaultRealTag = universal(asn1.TagReal)

const (
	realBinaryBit  = 0x80
	realSpecialBit = 0x40
	realSignBit    = 0x40
	realBaseMask   = 0x30
	realScaleMask  = 0x0C
	realExpLenMask = 0x03
)

// DecodeReal decodes n as a REAL under [DefaultRealTag], per Rec. ITU-T
// X.690 §8.5. The special-value bytes 0x40-0x43 decode to +Inf, -Inf, NaN
// and -0. The decimal form (first content byte with bit 7 clear and not one
// of the special-value bytes) is not supported.
func DecodeReal(n Node) (float64, error) {
	return DecodeRealTag(n, DefaultRealTag)
}

// DecodeRealTag decodes n as a REAL tagged tag.
func DecodeRealTag(n Node, tag asn1.Tag) (float64, error) {
	if err := checkTag(n, tag); err != nil {
		return 0, err
	}
	if err := checkPrimitive(n); err != nil {
		return 0, err
	}
	data := n.Data()
	if len(data) == 0 {
		return 0, nil
	}
	first := data[0]
	if first&realBinaryBit == 0 {
		if first&realSpecialBit != 0 {
			switch first {
			case 0x40:
				return math.Inf(1), nil
			case 0x41:
				return math.Inf(-1), nil
			case 0x42:
				return math.NaN(), nil
			case 0x43:
				return math.Copysign(0, -1), nil
			}
		}
		return 0, asn1.NewError(asn1.ErrorKindInvalidObject, "decimal-form REAL is not supported")
	}

	rest := data[1:]
	expLenField := first & realExpLenMask
	var expLen int
	if expLenField == 3 {
		if len(rest) == 0 {
			return 0, asn1.WrapError(asn1.ErrorKindTruncatedField, "REAL exponent length octet", nil)
		}
		expLen = int(rest[0])
		rest = rest[1:]
	} else {
		expLen = int(expLenField) + 1
	}
	if len(rest) < expLen {
		return 0, asn1.WrapError(asn1.ErrorKindTruncatedField, "REAL exponent octets", nil)
	}
	exponent := decodeSignedBigEndian(rest[:expLen])
	mantissaBytes := rest[expLen:]
	if len(mantissaBytes) == 0 {
		return 0, asn1.NewError(asn1.ErrorKindInvalidObject, "REAL content missing mantissa")
	}
	mantissa := new(big.Int).SetBytes(mantissaBytes)

	base := 2
	switch (first & realBaseMask) >> 4 {
	case 0:
		base = 2
	case 1:
		base = 8
	case 2:
		base = 16
	default:
		return 0, asn1.NewError(asn1.ErrorKindInvalidObject, "REAL base value 3 is reserved")
	}
	scale := (first & realScaleMask) >> 2

	m := new(big.Float).SetInt(mantissa)
	m.SetPrec(200)
	if scale != 0 {
		m.Mul(m, new(big.Float).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(scale))))
	}
	baseToExp := new(big.Float).SetPrec(200)
	if exponent >= 0 {
		baseToExp.SetInt(new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exponent)), nil))
	} else {
		inv := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(-exponent)), nil)
		baseToExp.SetInt(inv)
		baseToExp.Quo(big.NewFloat(1).SetPrec(200), baseToExp)
	}
	m.Mul(m, baseToExp)
	if first&realSignBit != 0 {
		m.Neg(m)
	}
	f, _ := m.Float64()
	return f, nil
}

// decodeSignedBigEndian interprets b as a two's-complement signed integer.
func decodeSignedBigEndian(b []byte) int {
	v := 0
	for _, c := range b {
		v = v<<8 | int(c)
	}
	if len(b) > 0 && b[0]&0x80 != 0 {
		v -= 1 << (8 * len(b))
	}
	return v
}

// AppendReal appends v as a REAL under [DefaultRealTag].
func (s *Serializer) AppendReal(v float64) {
	s.AppendRealTag(v, DefaultRealTag)
}

// AppendRealTag appends v as a REAL tagged tag, using the minimal binary
// form with base 2 and scale factor 0. AppendRealTag panics if v is NaN; it
// never emits the 0x42 NaN byte that [DecodeRealTag] accepts.
func (s *Serializer) AppendRealTag(v float64, tag asn1.Tag) {
	if math.IsNaN(v) {
		panic("ber: cannot encode NaN as REAL")
	}
	switch {
	case v == 0:
		if math.Signbit(v) {
			s.AppendPrimitive(tag, []byte{0x43})
		} else {
			s.AppendPrimitive(tag, nil)
		}
		return
	case math.IsInf(v, 1):
		s.AppendPrimitive(tag, []byte{0x40})
		return
	case math.IsInf(v, -1):
		s.AppendPrimitive(tag, []byte{0x41})
		return
	}

	sign := byte(0)
	if v < 0 {
		sign = realSignBit
		v = -v
	}
	bits := math.Float64bits(v)
	biasedExp := int((bits >> 52) & 0x7FF)
	frac := bits & ((1 << 52) - 1)

	var mantissa uint64
	var exponent int
	if biasedExp == 0 {
		mantissa = frac
		exponent = -1022 - 52
	} else {
		mantissa = frac | (1 << 52)
		exponent = biasedExp - 1023 - 52
	}
	for mantissa != 0 && mantissa&1 == 0 {
		mantissa >>= 1
		exponent++
	}

	mantissaBytes := big.NewInt(0).SetUint64(mantissa).Bytes()
	expBytes := encodeSignedBigEndian(exponent)

	first := byte(realBinaryBit) | sign
	switch {
	case len(expBytes) == 1:
		first |= 0
	case len(expBytes) == 2:
		first |= 1
	case len(expBytes) == 3:
		first |= 2
	default:
		first |= 3
	}

	content := make([]byte, 0, 2+len(expBytes)+len(mantissaBytes))
	content = append(content, first)
	if len(expBytes) > 3 {
		content = append(content, byte(len(expBytes)))
	}
	content = append(content, expBytes...)
	content = append(content, mantissaBytes...)
	s.AppendPrimitive(tag, content)
}

// encodeSignedBigEndian returns the minimal two's-complement big-endian
// encoding of v.
func encodeSignedBigEndian(v int) []byte {
	if v == 0 {
		return []byte{0x00}
	}
	b := big.NewInt(int64(v))
	return encodeTwosComplement(b)
}
