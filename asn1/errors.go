package asn1

// ErrorKind identifies one member of the closed set of error categories that
// can occur while parsing or serializing ASN.1 data in this module. Every
// error returned by the [strix.dev/der/ber] and [strix.dev/der/tlv] packages
// carries one of these kinds, so callers can branch on the category without
// parsing the message text.
//
//go:generate stringer -type=ErrorKind -trimprefix=ErrorKind
type ErrorKind uint8

const (
	// ErrorKindInvalidObject covers structural or constraint violations that
	// do not fit a more specific kind: EOC misuse, excessive depth or node
	// count, trailing bytes after the root value, an illegal BOOLEAN byte, an
	// out-of-range OID component, a NaN REAL, or a decimal-form REAL.
	ErrorKindInvalidObject ErrorKind = iota + 1
	// ErrorKindTruncatedField indicates the input ran out in the middle of a
	// tag, length, or content octet sequence.
	ErrorKindTruncatedField
	// ErrorKindUnsupportedLength indicates a length encoding that is
	// syntactically well-formed but forbidden by the active rule set: an
	// indefinite length under DER, a long form used where the short form was
	// required, or non-minimal length octets.
	ErrorKindUnsupportedLength
	// ErrorKindUnexpectedType indicates that a value codec's expected
	// identifier did not match the node's identifier, or that the node's
	// primitive/constructed shape did not match what the codec requires.
	ErrorKindUnexpectedType
	// ErrorKindValueOutOfRange indicates a syntactically valid value that does
	// not fit the target numeric range requested by the caller.
	ErrorKindValueOutOfRange
	// ErrorKindMalformedIdentifier indicates an identifier octet sequence that
	// violates the tag-encoding rules, such as a non-minimal long-form tag
	// number.
	ErrorKindMalformedIdentifier
	// ErrorKindInvalidInteger indicates an INTEGER content octet sequence with
	// a redundant leading 0x00 or 0xFF byte.
	ErrorKindInvalidInteger
	// ErrorKindTooFewOIDComponents indicates an attempt to construct an
	// OBJECT IDENTIFIER from fewer than two components.
	ErrorKindTooFewOIDComponents
)

// Error is the concrete error type returned from this module's packages. Its
// Kind is always one of the [ErrorKind] constants and never changes once
// constructed; Msg supplies the human-readable detail and Err, if non-nil, is
// the underlying cause.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	s := e.Kind.String() + ": " + e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the underlying cause of e, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same [ErrorKind] as e,
// ignoring message and cause. This lets callers test with
// errors.Is(err, asn1.ErrTruncatedField) without matching on message text.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// NewError constructs an *Error of the given kind with msg as its detail and
// no wrapped cause.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// WrapError constructs an *Error of the given kind with msg as its detail,
// wrapping err as the underlying cause.
func WrapError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Sentinel values for use with errors.Is. Only the Kind field is compared; Msg
// and Err are ignored by [Error.Is].
var (
	ErrInvalidObject       = &Error{Kind: ErrorKindInvalidObject}
	ErrTruncatedField      = &Error{Kind: ErrorKindTruncatedField}
	ErrUnsupportedLength   = &Error{Kind: ErrorKindUnsupportedLength}
	ErrUnexpectedType      = &Error{Kind: ErrorKindUnexpectedType}
	ErrValueOutOfRange     = &Error{Kind: ErrorKindValueOutOfRange}
	ErrMalformedIdentifier = &Error{Kind: ErrorKindMalformedIdentifier}
	ErrInvalidInteger      = &Error{Kind: ErrorKindInvalidInteger}
	ErrTooFewOIDComponents = &Error{Kind: ErrorKindTooFewOIDComponents}
)
