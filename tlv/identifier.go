package tlv

import (
	"strix.dev/der/internal/vlq"

	"strix.dev/der/asn1"
)

// constructedBit is bit 5 of the first identifier octet, set when the
// content octets hold a constructed (nested TLV) encoding rather than a
// primitive value.
const constructedBit = 0x20

// highTagNumber is the reserved value of the low 5 bits of the first
// identifier octet that signals a long-form tag number follows.
const highTagNumber = 0x1F

// DecodeIdentifier parses the identifier octets at the front of b. It returns
// the decoded tag, whether the constructed bit was set, and the number of
// bytes consumed.
//
// A long-form tag number below 31 (which the short form can already
// represent) or one whose first continuation byte is 0x80 (a redundant
// leading zero subidentifier) is rejected with [asn1.ErrMalformedIdentifier]
// regardless of rule set; DER and BER agree on identifier syntax.
func DecodeIdentifier(b []byte) (tag asn1.Tag, constructed bool, n int, err error) {
	if len(b) == 0 {
		return asn1.Tag{}, false, 0, asn1.WrapError(asn1.ErrorKindTruncatedField, "identifier: empty input", nil)
	}
	class := asn1.Class(b[0] >> 6 & 0x3)
	constructed = b[0]&constructedBit != 0
	low := uint(b[0] & highTagNumber)
	if low != highTagNumber {
		return asn1.Tag{Class: class, Number: low}, constructed, 1, nil
	}

	rest := b[1:]
	if len(rest) > 0 && rest[0] == 0x80 {
		return asn1.Tag{}, false, 0, asn1.NewError(asn1.ErrorKindMalformedIdentifier, "identifier: non-minimal long-form tag number")
	}
	number, m, verr := vlq.Read(rest)
	if verr != nil {
		return asn1.Tag{}, false, 0, vlqError(verr, "identifier: long-form tag number", asn1.ErrorKindMalformedIdentifier)
	}
	if number < highTagNumber {
		return asn1.Tag{}, false, 0, asn1.NewError(asn1.ErrorKindMalformedIdentifier, "identifier: long-form tag number below 31")
	}
	if number >= maxBase128Tag {
		return asn1.Tag{}, false, 0, asn1.NewError(asn1.ErrorKindValueOutOfRange, "identifier: tag number too large")
	}
	return asn1.Tag{Class: class, Number: number}, constructed, 1 + m, nil
}

// EncodeIdentifier appends the identifier octets for tag to dst and returns
// the extended slice. Tag numbers below 31 use the short form; all others
// use the long form.
func EncodeIdentifier(dst []byte, tag asn1.Tag, constructed bool) []byte {
	first := byte(tag.Class) << 6
	if constructed {
		first |= constructedBit
	}
	if tag.Number < highTagNumber {
		return append(dst, first|byte(tag.Number))
	}
	dst = append(dst, first|highTagNumber)
	return vlq.Append(dst, tag.Number)
}

// vlqError translates a sentinel error from the vlq package into the
// asn1.Error taxonomy used throughout this module. notMinimalKind lets each
// caller pick the ErrorKind that applies when the VLQ has a redundant
// leading continuation byte, since the same malformation means something
// different for a tag number than for a length.
func vlqError(err error, context string, notMinimalKind asn1.ErrorKind) error {
	switch err {
	case vlq.ErrTruncated:
		return asn1.WrapError(asn1.ErrorKindTruncatedField, context, err)
	case vlq.ErrNotMinimal:
		return asn1.WrapError(notMinimalKind, context, err)
	case vlq.ErrOverflow:
		return asn1.WrapError(asn1.ErrorKindValueOutOfRange, context, err)
	default:
		return asn1.WrapError(asn1.ErrorKindInvalidObject, context, err)
	}
}
