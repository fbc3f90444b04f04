package ber

import (
	"bytes"
	"errors"
	"testing"

	"strix.dev/der/asn1"
)

func TestDecodeBoolean(t *testing.T) {
	tests := map[string]struct {
		data []byte
		want bool
	}{
		"false":     {[]byte{0x01, 0x01, 0x00}, false},
		"true 0xFF": {[]byte{0x01, 0x01, 0xFF}, true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := DecodeBoolean(mustParse(t, tt.data))
			if err != nil {
				t.Fatalf("DecodeBoolean() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeBoolean() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeBoolean_WrongLength(t *testing.T) {
	_, err := DecodeBoolean(mustParse(t, []byte{0x01, 0x02, 0x00, 0x00}))
	var e *asn1.Error
	if !errors.As(err, &e) || e.Kind != asn1.ErrorKindInvalidObject {
		t.Fatalf("DecodeBoolean() error = %v, want InvalidObject", err)
	}
}

func TestDecodeBoolean_NonStandardByte(t *testing.T) {
	_, err := DecodeBoolean(mustParse(t, []byte{0x01, 0x01, 0x01}))
	var e *asn1.Error
	if !errors.As(err, &e) || e.Kind != asn1.ErrorKindInvalidObject {
		t.Fatalf("DecodeBoolean() error = %v, want InvalidObject", err)
	}
}

func TestDecodeNull(t *testing.T) {
	if _, err := DecodeNull(mustParse(t, []byte{0x05, 0x00})); err != nil {
		t.Errorf("DecodeNull() error = %v", err)
	}
}

func TestDecodeOctetString(t *testing.T) {
	got, err := DecodeOctetString(mustParse(t, []byte{0x04, 0x03, 'a', 'b', 'c'}))
	if err != nil {
		t.Fatalf("DecodeOctetString() error = %v", err)
	}
	if !bytes.Equal(got, []byte("abc")) {
		t.Errorf("DecodeOctetString() = %q, want %q", got, "abc")
	}
}

func TestDecodeEnumerated(t *testing.T) {
	got, err := DecodeEnumerated(mustParse(t, []byte{0x0A, 0x01, 0x02}))
	if err != nil {
		t.Fatalf("DecodeEnumerated() error = %v", err)
	}
	if got != asn1.Enumerated(2) {
		t.Errorf("DecodeEnumerated() = %v, want 2", got)
	}
}

func TestDecodeUTF8String(t *testing.T) {
	got, err := DecodeUTF8String(mustParse(t, []byte{0x0C, 0x05, 'h', 'e', 'l', 'l', 'o'}))
	if err != nil {
		t.Fatalf("DecodeUTF8String() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("DecodeUTF8String() = %q, want %q", got, "hello")
	}
}

func TestDecode_WrongTag(t *testing.T) {
	_, err := DecodeBoolean(mustParse(t, []byte{0x02, 0x01, 0x00}))
	var e *asn1.Error
	if !errors.As(err, &e) || e.Kind != asn1.ErrorKindUnexpectedType {
		t.Fatalf("DecodeBoolean() on INTEGER error = %v, want UnexpectedType", err)
	}
}

func TestDecode_ImplicitTag(t *testing.T) {
	implicit := asn1.Tag{Class: asn1.ClassContextSpecific, Number: 0}
	got, err := DecodeBooleanTag(mustParse(t, []byte{0x80, 0x01, 0xFF}), implicit)
	if err != nil {
		t.Fatalf("DecodeBooleanTag() error = %v", err)
	}
	if !got {
		t.Error("DecodeBooleanTag() = false, want true")
	}
}
