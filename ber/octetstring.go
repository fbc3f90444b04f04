package ber

import "strix.dev/der/asn1"

// DefaultOctetStringTag is the identifier [DecodeOctetString] and
// [Serializer.AppendOctetString] use.
var DefaultOctetStringTag = universal(asn1.TagOctetString)

// DecodeOctetString decodes n as an OCTET STRING under
// [DefaultOctetStringTag]. The returned slice aliases n's underlying flat
// vector and must be copied before the caller mutates it.
func DecodeOctetString(n Node) ([]byte, error) {
	return DecodeOctetStringTag(n, DefaultOctetStringTag)
}

// DecodeOctetStringTag decodes n as an OCTET STRING tagged tag.
func DecodeOctetStringTag(n Node, tag asn1.Tag) ([]byte, error) {
	if err := checkTag(n, tag); err != nil {
		return nil, err
	}
	if err := checkPrimitive(n); err != nil {
		return nil, err
	}
	return n.Data(), nil
}

// AppendOctetString appends v as an OCTET STRING under
// [DefaultOctetStringTag].
func (s *Serializer) AppendOctetString(v []byte) {
	s.AppendOctetStringTag(v, DefaultOctetStringTag)
}

// AppendOctetStringTag appends v as an OCTET STRING tagged tag.
func (s *Serializer) AppendOctetStringTag(v []byte, tag asn1.Tag) {
	s.AppendPrimitive(tag, v)
}
