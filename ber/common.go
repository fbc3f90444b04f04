package ber

import "strix.dev/der/asn1"

// checkTag verifies that n's identifier equals want. Every Decode function
// in this package calls this before looking at content, so a mismatched
// identifier always reports [asn1.ErrorKindUnexpectedType] rather than some
// more confusing downstream failure.
func checkTag(n Node, want asn1.Tag) error {
	if n.Tag() != want {
		return asn1.NewError(asn1.ErrorKindUnexpectedType, "want identifier "+want.String()+", got "+n.Tag().String())
	}
	return nil
}

// checkPrimitive verifies that n is primitive.
func checkPrimitive(n Node) error {
	if n.Constructed() {
		return asn1.NewError(asn1.ErrorKindUnexpectedType, "want primitive "+n.Tag().String()+", got constructed")
	}
	return nil
}

// checkConstructed verifies that n is constructed.
func checkConstructed(n Node) error {
	if !n.Constructed() {
		return asn1.NewError(asn1.ErrorKindUnexpectedType, "want constructed "+n.Tag().String()+", got primitive")
	}
	return nil
}

func universal(number uint) asn1.Tag {
	return asn1.Tag{Class: asn1.ClassUniversal, Number: number}
}
