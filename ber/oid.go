package ber

import (
	"strix.dev/der/asn1"
	"strix.dev/der/internal/vlq"
)

// DefaultOIDTag is the identifier [DecodeObjectIdentifier] and
// [Serializer.AppendObjectIdentifier] use.
var DefaultOIDTag = universal(asn1.TagOID)

// DefaultRelativeOIDTag is the identifier [DecodeRelativeOID] and
// [Serializer.AppendRelativeOID] use.
var DefaultRelativeOIDTag = universal(asn1.TagRelativeOID)

// DecodeObjectIdentifier decodes n as an OBJECT IDENTIFIER under
// [DefaultOIDTag]. The first sub-identifier is split into the first two
// components by plain division: c0, c1 = firstVal/40, firstVal%40. This
// matches the behavior of encoders that never produce a first
// sub-identifier of 80 or more through any other means, but — unlike
// [DecodeObjectIdentifierStrict] — it does not special-case values of 80 or
// above, so a first sub-identifier of, say, 120 decodes as (3, 0) rather
// than the (2, 40) that Rec. ITU-T X.690 §8.19.4 specifies. Use
// [DecodeObjectIdentifierStrict] when decoding untrusted input that must be
// rejected or reinterpreted per the standard.
func DecodeObjectIdentifier(n Node) (asn1.ObjectIdentifier, error) {
	return decodeOID(n, DefaultOIDTag, false)
}

// DecodeObjectIdentifierStrict decodes n as an OBJECT IDENTIFIER under
// [DefaultOIDTag], splitting the first sub-identifier per Rec. ITU-T X.690
// §8.19.4: if the value is below 80, c0, c1 = value/40, value%40;
// otherwise c0, c1 = 2, value-80.
func DecodeObjectIdentifierStrict(n Node) (asn1.ObjectIdentifier, error) {
	return decodeOID(n, DefaultOIDTag, true)
}

func decodeOID(n Node, tag asn1.Tag, strict bool) (asn1.ObjectIdentifier, error) {
	if err := checkTag(n, tag); err != nil {
		return nil, err
	}
	if err := checkPrimitive(n); err != nil {
		return nil, err
	}
	data := n.Data()
	if len(data) == 0 {
		return nil, asn1.NewError(asn1.ErrorKindTooFewOIDComponents, "OBJECT IDENTIFIER content must not be empty")
	}

	first, n1, err := readSubIdentifier(data)
	if err != nil {
		return nil, err
	}
	var c0, c1 uint
	if strict && first >= 80 {
		c0, c1 = 2, first-80
	} else {
		c0, c1 = first/40, first%40
	}
	oid := asn1.ObjectIdentifier{c0, c1}

	rest := data[n1:]
	for len(rest) > 0 {
		v, m, err := readSubIdentifier(rest)
		if err != nil {
			return nil, err
		}
		oid = append(oid, v)
		rest = rest[m:]
	}
	return oid, nil
}

// readSubIdentifier reads one base-128 VLQ sub-identifier from the front of
// b, translating vlq errors into the asn1.Error taxonomy.
func readSubIdentifier(b []byte) (uint, int, error) {
	v, n, err := vlq.Read(b)
	if err != nil {
		switch err {
		case vlq.ErrTruncated:
			return 0, 0, asn1.WrapError(asn1.ErrorKindTruncatedField, "OBJECT IDENTIFIER sub-identifier", err)
		case vlq.ErrNotMinimal:
			return 0, 0, asn1.WrapError(asn1.ErrorKindInvalidObject, "OBJECT IDENTIFIER sub-identifier not minimally encoded", err)
		default:
			return 0, 0, asn1.WrapError(asn1.ErrorKindValueOutOfRange, "OBJECT IDENTIFIER sub-identifier", err)
		}
	}
	return v, n, nil
}

// AppendObjectIdentifier appends oid as an OBJECT IDENTIFIER under
// [DefaultOIDTag]. oid must satisfy [asn1.ObjectIdentifier.IsValid];
// AppendObjectIdentifier panics otherwise.
func (s *Serializer) AppendObjectIdentifier(oid asn1.ObjectIdentifier) {
	s.AppendObjectIdentifierTag(oid, DefaultOIDTag)
}

// AppendObjectIdentifierTag appends oid as an OBJECT IDENTIFIER tagged tag.
func (s *Serializer) AppendObjectIdentifierTag(oid asn1.ObjectIdentifier, tag asn1.Tag) {
	if !oid.IsValid() {
		panic("ber: invalid ObjectIdentifier")
	}
	var content []byte
	content = vlq.Append(content, 40*oid[0]+oid[1])
	for _, v := range oid[2:] {
		content = vlq.Append(content, v)
	}
	s.AppendPrimitive(tag, content)
}

// DecodeRelativeOID decodes n as a RELATIVE-OID under
// [DefaultRelativeOIDTag]. Unlike OBJECT IDENTIFIER, every sub-identifier
// maps to exactly one component; there is no first-sub-identifier packing.
func DecodeRelativeOID(n Node) (asn1.RelativeOID, error) {
	return DecodeRelativeOIDTag(n, DefaultRelativeOIDTag)
}

// DecodeRelativeOIDTag decodes n as a RELATIVE-OID tagged tag.
func DecodeRelativeOIDTag(n Node, tag asn1.Tag) (asn1.RelativeOID, error) {
	if err := checkTag(n, tag); err != nil {
		return nil, err
	}
	if err := checkPrimitive(n); err != nil {
		return nil, err
	}
	var oid asn1.RelativeOID
	rest := n.Data()
	for len(rest) > 0 {
		v, m, err := readSubIdentifier(rest)
		if err != nil {
			return nil, err
		}
		oid = append(oid, v)
		rest = rest[m:]
	}
	return oid, nil
}

// AppendRelativeOID appends oid as a RELATIVE-OID under
// [DefaultRelativeOIDTag].
func (s *Serializer) AppendRelativeOID(oid asn1.RelativeOID) {
	s.AppendRelativeOIDTag(oid, DefaultRelativeOIDTag)
}

// AppendRelativeOIDTag appends oid as a RELATIVE-OID tagged tag.
func (s *Serializer) AppendRelativeOIDTag(oid asn1.RelativeOID, tag asn1.Tag) {
	var content []byte
	for _, v := range oid {
		content = vlq.Append(content, v)
	}
	s.AppendPrimitive(tag, content)
}
