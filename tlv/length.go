package tlv

import "strix.dev/der/asn1"

// DecodeLength parses the length octets at the front of b under rule. It
// returns the decoded length, or [LengthIndefinite] if b encodes the
// constructed indefinite-length form, plus the number of bytes consumed.
//
// Under [Distinguished] rules the indefinite form and any non-minimal
// long-form encoding are rejected with [asn1.ErrUnsupportedLength]. Under
// [Basic] rules both are accepted.
func DecodeLength(b []byte, rule RuleSet) (length int, n int, err error) {
	if len(b) == 0 {
		return 0, 0, asn1.WrapError(asn1.ErrorKindTruncatedField, "length: empty input", nil)
	}
	first := b[0]
	if first == 0x80 {
		if rule == Distinguished {
			return 0, 0, asn1.NewError(asn1.ErrorKindUnsupportedLength, "length: indefinite form forbidden under DER")
		}
		return LengthIndefinite, 1, nil
	}
	if first < 0x80 {
		return int(first), 1, nil
	}

	count := int(first &^ 0x80)
	if count > 8 {
		return 0, 0, asn1.NewError(asn1.ErrorKindValueOutOfRange, "length: long form too wide")
	}
	if len(b) < 1+count {
		return 0, 0, asn1.WrapError(asn1.ErrorKindTruncatedField, "length: truncated long form", nil)
	}
	octets := b[1 : 1+count]
	if rule == Distinguished && octets[0] == 0x00 {
		return 0, 0, asn1.NewError(asn1.ErrorKindUnsupportedLength, "length: non-minimal long form")
	}

	length = 0
	for _, c := range octets {
		length = length<<8 | int(c)
		if length < 0 {
			return 0, 0, asn1.NewError(asn1.ErrorKindValueOutOfRange, "length: overflow")
		}
	}
	if rule == Distinguished && length < 0x80 {
		return 0, 0, asn1.NewError(asn1.ErrorKindUnsupportedLength, "length: long form used where short form suffices")
	}
	return length, 1 + count, nil
}

// EncodeLength appends the length octets for length to dst and returns the
// extended slice. Values up to 127 use the short form; all others use the
// minimal long form. Indefinite length is never emitted; callers that need
// it write the literal 0x80 byte themselves.
func EncodeLength(dst []byte, length int) []byte {
	if length < 0 {
		panic("tlv: negative length")
	}
	if length < 0x80 {
		return append(dst, byte(length))
	}
	var buf [8]byte
	n := 0
	for v := length; v > 0; v >>= 8 {
		buf[n] = byte(v)
		n++
	}
	dst = append(dst, 0x80|byte(n))
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, buf[i])
	}
	return dst
}
