package ber

import "strix.dev/der/asn1"

// DefaultBitStringTag is the identifier [DecodeBitString] and
// [Serializer.AppendBitString] use.
var DefaultBitStringTag = universal(asn1.TagBitString)

// DecodeBitString decodes n as a BIT STRING under [DefaultBitStringTag].
func DecodeBitString(n Node) (asn1.BitString, error) {
	return DecodeBitStringTag(n, DefaultBitStringTag)
}

// DecodeBitStringTag decodes n as a BIT STRING tagged tag. The leading
// content octet gives the number of unused bits in the final byte, 0-7; it
// must be 0 when there are no content bytes to pad.
func DecodeBitStringTag(n Node, tag asn1.Tag) (asn1.BitString, error) {
	if err := checkTag(n, tag); err != nil {
		return asn1.BitString{}, err
	}
	if err := checkPrimitive(n); err != nil {
		return asn1.BitString{}, err
	}
	data := n.Data()
	if len(data) == 0 {
		return asn1.BitString{}, asn1.NewError(asn1.ErrorKindInvalidObject, "BIT STRING content missing unused-bits octet")
	}
	unused := data[0]
	if unused > 7 {
		return asn1.BitString{}, asn1.NewError(asn1.ErrorKindInvalidObject, "BIT STRING unused-bit count out of range")
	}
	if len(data) == 1 && unused != 0 {
		return asn1.BitString{}, asn1.NewError(asn1.ErrorKindInvalidObject, "BIT STRING has unused bits but no content bytes")
	}
	if last := data[len(data)-1]; unused > 0 && last&(1<<unused-1) != 0 {
		return asn1.BitString{}, asn1.NewError(asn1.ErrorKindInvalidObject, "BIT STRING padding bits must be zero")
	}
	bits := (len(data)-1)*8 - int(unused)
	return asn1.BitString{Bytes: data[1:], BitLength: bits}, nil
}

// AppendBitString appends v as a BIT STRING under [DefaultBitStringTag].
func (s *Serializer) AppendBitString(v asn1.BitString) {
	s.AppendBitStringTag(v, DefaultBitStringTag)
}

// AppendBitStringTag appends v as a BIT STRING tagged tag.
func (s *Serializer) AppendBitStringTag(v asn1.BitString, tag asn1.Tag) {
	nbytes := (v.BitLength + 7) / 8
	unused := byte(nbytes*8 - v.BitLength)
	content := make([]byte, 0, 1+nbytes)
	content = append(content, unused)
	content = append(content, v.Bytes[:nbytes]...)
	if unused > 0 {
		content[len(content)-1] &^= 1<<unused - 1
	}
	s.AppendPrimitive(tag, content)
}
