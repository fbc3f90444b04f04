package ber

import "strix.dev/der/asn1"

// DefaultSequenceTag is the identifier [DecodeSequence] expects and
// [Serializer.WriteSequence] emits.
var DefaultSequenceTag = universal(asn1.TagSequence)

// DefaultSetTag is the identifier [DecodeSet] expects and
// [Serializer.WriteSet] emits.
var DefaultSetTag = universal(asn1.TagSet)

// Sequence runs build over an iterator of n's children and requires build to
// consume every one of them; a child build does not read is a loud error
// (*asn1.ErrInvalidObject), not silently dropped data. n must be
// constructed.
func Sequence(n Node, build func(*Iterator) error) error {
	if err := checkConstructed(n); err != nil {
		return err
	}
	it := n.Children()
	if err := build(it); err != nil {
		return err
	}
	if !it.Done() {
		return asn1.NewError(asn1.ErrorKindInvalidObject, "sequence has unconsumed trailing elements")
	}
	return nil
}

// SequenceOf decodes every child of n with decode and returns the results in
// order. n must be constructed.
func SequenceOf[T any](n Node, decode func(Node) (T, error)) ([]T, error) {
	if err := checkConstructed(n); err != nil {
		return nil, err
	}
	it := n.Children()
	out := make([]T, 0, it.Len())
	for !it.Done() {
		v, err := decode(it.Next())
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// DecodeSequence verifies that n is tagged [DefaultSequenceTag] and
// constructed, then runs build over its children exactly like [Sequence].
func DecodeSequence(n Node, build func(*Iterator) error) error {
	if err := checkTag(n, DefaultSequenceTag); err != nil {
		return err
	}
	return Sequence(n, build)
}

// DecodeSet verifies that n is tagged [DefaultSetTag] and constructed, then
// runs build over its children exactly like [Sequence].
func DecodeSet(n Node, build func(*Iterator) error) error {
	if err := checkTag(n, DefaultSetTag); err != nil {
		return err
	}
	return Sequence(n, build)
}
