package ber

import "strix.dev/der/asn1"

// DefaultUTF8StringTag is the identifier [DecodeUTF8String] and
// [Serializer.AppendUTF8String] use.
var DefaultUTF8StringTag = universal(asn1.TagUTF8String)

// DefaultIA5StringTag is the identifier [DecodeIA5String] and
// [Serializer.AppendIA5String] use.
var DefaultIA5StringTag = universal(asn1.TagIA5String)

// DefaultPrintableStringTag is the identifier [DecodePrintableString] and
// [Serializer.AppendPrintableString] use.
var DefaultPrintableStringTag = universal(asn1.TagPrintableString)

// DefaultNumericStringTag is the identifier [DecodeNumericString] and
// [Serializer.AppendNumericString] use.
var DefaultNumericStringTag = universal(asn1.TagNumericString)

// DefaultVisibleStringTag is the identifier [DecodeVisibleString] and
// [Serializer.AppendVisibleString] use.
var DefaultVisibleStringTag = universal(asn1.TagVisibleString)

// UTF8String, IA5String, PrintableString, NumericString, and VisibleString
// share one encoding: primitive form, raw bytes as content. This codec
// layer does not enforce the character-set restriction each type implies;
// callers that need it call the corresponding IsValid method on the
// asn1 package's string types themselves.

// DecodeUTF8String decodes n as a UTF8String under [DefaultUTF8StringTag].
func DecodeUTF8String(n Node) (asn1.UTF8String, error) {
	s, err := decodeRawString(n, DefaultUTF8StringTag)
	return asn1.UTF8String(s), err
}

// AppendUTF8String appends v as a UTF8String under [DefaultUTF8StringTag].
func (s *Serializer) AppendUTF8String(v asn1.UTF8String) {
	s.AppendPrimitive(DefaultUTF8StringTag, []byte(v))
}

// DecodeIA5String decodes n as an IA5String under [DefaultIA5StringTag].
func DecodeIA5String(n Node) (asn1.IA5String, error) {
	s, err := decodeRawString(n, DefaultIA5StringTag)
	return asn1.IA5String(s), err
}

// AppendIA5String appends v as an IA5String under [DefaultIA5StringTag].
func (s *Serializer) AppendIA5String(v asn1.IA5String) {
	s.AppendPrimitive(DefaultIA5StringTag, []byte(v))
}

// DecodePrintableString decodes n as a PrintableString under
// [DefaultPrintableStringTag].
func DecodePrintableString(n Node) (asn1.PrintableString, error) {
	s, err := decodeRawString(n, DefaultPrintableStringTag)
	return asn1.PrintableString(s), err
}

// AppendPrintableString appends v as a PrintableString under
// [DefaultPrintableStringTag].
func (s *Serializer) AppendPrintableString(v asn1.PrintableString) {
	s.AppendPrimitive(DefaultPrintableStringTag, []byte(v))
}

// DecodeNumericString decodes n as a NumericString under
// [DefaultNumericStringTag].
func DecodeNumericString(n Node) (asn1.NumericString, error) {
	s, err := decodeRawString(n, DefaultNumericStringTag)
	return asn1.NumericString(s), err
}

// AppendNumericString appends v as a NumericString under
// [DefaultNumericStringTag].
func (s *Serializer) AppendNumericString(v asn1.NumericString) {
	s.AppendPrimitive(DefaultNumericStringTag, []byte(v))
}

// DecodeVisibleString decodes n as a VisibleString under
// [DefaultVisibleStringTag].
func DecodeVisibleString(n Node) (asn1.VisibleString, error) {
	s, err := decodeRawString(n, DefaultVisibleStringTag)
	return asn1.VisibleString(s), err
}

// AppendVisibleString appends v as a VisibleString under
// [DefaultVisibleStringTag].
func (s *Serializer) AppendVisibleString(v asn1.VisibleString) {
	s.AppendPrimitive(DefaultVisibleStringTag, []byte(v))
}

func decodeRawString(n Node, tag asn1.Tag) (string, error) {
	if err := checkTag(n, tag); err != nil {
		return "", err
	}
	if err := checkPrimitive(n); err != nil {
		return "", err
	}
	return string(n.Data()), nil
}
