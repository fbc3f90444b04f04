package ber

import "strix.dev/der/asn1"

// DefaultBooleanTag is the identifier [DecodeBoolean] and
// [Serializer.AppendBoolean] use.
var DefaultBooleanTag = universal(asn1.TagBoolean)

// DecodeBoolean decodes n as a BOOLEAN under [DefaultBooleanTag].
func DecodeBoolean(n Node) (bool, error) {
	return DecodeBooleanTag(n, DefaultBooleanTag)
}

// DecodeBooleanTag decodes n as a BOOLEAN tagged tag, which lets a caller
// decode an implicitly-tagged BOOLEAN. Per DER, content must be exactly
// 0x00 (false) or 0xFF (true); any other byte is rejected.
func DecodeBooleanTag(n Node, tag asn1.Tag) (bool, error) {
	if err := checkTag(n, tag); err != nil {
		return false, err
	}
	if err := checkPrimitive(n); err != nil {
		return false, err
	}
	data := n.Data()
	if len(data) != 1 {
		return false, asn1.NewError(asn1.ErrorKindInvalidObject, "BOOLEAN content must be exactly one octet")
	}
	switch data[0] {
	case 0x00:
		return false, nil
	case 0xFF:
		return true, nil
	default:
		return false, asn1.NewError(asn1.ErrorKindInvalidObject, "BOOLEAN content must be 0x00 or 0xFF")
	}
}

// AppendBoolean appends v as a BOOLEAN under [DefaultBooleanTag].
func (s *Serializer) AppendBoolean(v bool) {
	s.AppendBooleanTag(v, DefaultBooleanTag)
}

// AppendBooleanTag appends v as a BOOLEAN tagged tag.
func (s *Serializer) AppendBooleanTag(v bool, tag asn1.Tag) {
	b := byte(0x00)
	if v {
		b = 0xFF
	}
	s.AppendPrimitive(tag, []byte{b})
}
