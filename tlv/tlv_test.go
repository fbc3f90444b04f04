package tlv

import (
	"errors"
	"testing"

	"strix.dev/der/asn1"
)

func TestDecodeIdentifier(t *testing.T) {
	tests := map[string]struct {
		in          []byte
		tag         asn1.Tag
		constructed bool
		n           int
		wantErr     asn1.ErrorKind
	}{
		"universal primitive short":      {[]byte{0x02}, asn1.Tag{Class: asn1.ClassUniversal, Number: 2}, false, 1, 0},
		"context constructed short":      {[]byte{0xA0}, asn1.Tag{Class: asn1.ClassContextSpecific, Number: 0}, true, 1, 0},
		"application primitive short":   {[]byte{0x41}, asn1.Tag{Class: asn1.ClassApplication, Number: 1}, false, 1, 0},
		"long form single byte":          {[]byte{0x1F, 0x22}, asn1.Tag{Class: asn1.ClassUniversal, Number: 34}, false, 2, 0},
		"long form multi byte":           {[]byte{0x3F, 0x86, 0x48}, asn1.Tag{Class: asn1.ClassUniversal, Number: 840}, true, 3, 0},
		"long form below 31 rejected":    {[]byte{0x1F, 0x1E}, asn1.Tag{}, false, 0, asn1.ErrorKindMalformedIdentifier},
		"long form leading 0x80 rejected": {[]byte{0x1F, 0x80, 0x01}, asn1.Tag{}, false, 0, asn1.ErrorKindMalformedIdentifier},
		"truncated":                      {[]byte{0x1F}, asn1.Tag{}, false, 0, asn1.ErrorKindTruncatedField},
		"empty":                          {nil, asn1.Tag{}, false, 0, asn1.ErrorKindTruncatedField},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tag, constructed, n, err := DecodeIdentifier(tt.in)
			if tt.wantErr != 0 {
				var e *asn1.Error
				if !errors.As(err, &e) || e.Kind != tt.wantErr {
					t.Fatalf("DecodeIdentifier() error = %v, want kind %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeIdentifier() unexpected error: %v", err)
			}
			if tag != tt.tag || constructed != tt.constructed || n != tt.n {
				t.Errorf("DecodeIdentifier() = (%v, %v, %d), want (%v, %v, %d)", tag, constructed, n, tt.tag, tt.constructed, tt.n)
			}
		})
	}
}

func TestEncodeIdentifier(t *testing.T) {
	tests := map[string]struct {
		tag         asn1.Tag
		constructed bool
		want        []byte
	}{
		"universal primitive short": {asn1.Tag{Class: asn1.ClassUniversal, Number: 2}, false, []byte{0x02}},
		"context constructed short": {asn1.Tag{Class: asn1.ClassContextSpecific, Number: 0}, true, []byte{0xA0}},
		"long form single byte":     {asn1.Tag{Class: asn1.ClassUniversal, Number: 34}, false, []byte{0x1F, 0x22}},
		"long form multi byte":      {asn1.Tag{Class: asn1.ClassUniversal, Number: 840}, false, []byte{0x1F, 0x86, 0x48}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := EncodeIdentifier(nil, tt.tag, tt.constructed)
			if string(got) != string(tt.want) {
				t.Errorf("EncodeIdentifier() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestIdentifierRoundTrip(t *testing.T) {
	tags := []asn1.Tag{
		{Class: asn1.ClassUniversal, Number: 0},
		{Class: asn1.ClassUniversal, Number: 30},
		{Class: asn1.ClassUniversal, Number: 31},
		{Class: asn1.ClassContextSpecific, Number: 840},
		{Class: asn1.ClassPrivate, Number: 113549},
	}
	for _, tag := range tags {
		for _, constructed := range []bool{false, true} {
			b := EncodeIdentifier(nil, tag, constructed)
			gotTag, gotConstructed, n, err := DecodeIdentifier(b)
			if err != nil {
				t.Fatalf("DecodeIdentifier(%x) error = %v", b, err)
			}
			if gotTag != tag || gotConstructed != constructed || n != len(b) {
				t.Errorf("round trip %v: got (%v, %v, %d), want (%v, %v, %d)", tag, gotTag, gotConstructed, n, tag, constructed, len(b))
			}
		}
	}
}

func TestDecodeLength(t *testing.T) {
	tests := map[string]struct {
		in      []byte
		rule    RuleSet
		length  int
		n       int
		wantErr asn1.ErrorKind
	}{
		"short form zero":                {[]byte{0x00}, Distinguished, 0, 1, 0},
		"short form max":                 {[]byte{0x7F}, Distinguished, 127, 1, 0},
		"long form":                      {[]byte{0x82, 0x01, 0x00}, Distinguished, 256, 3, 0},
		"indefinite under BER":           {[]byte{0x80}, Basic, LengthIndefinite, 1, 0},
		"indefinite under DER rejected":  {[]byte{0x80}, Distinguished, 0, 0, asn1.ErrorKindUnsupportedLength},
		"non-minimal long form rejected": {[]byte{0x81, 0x05}, Distinguished, 0, 0, asn1.ErrorKindUnsupportedLength},
		"non-minimal accepted under BER": {[]byte{0x81, 0x05}, Basic, 5, 2, 0},
		"leading zero accepted under BER": {[]byte{0x82, 0x00, 0xC8}, Basic, 200, 3, 0},
		"truncated long form":            {[]byte{0x82, 0x01}, Distinguished, 0, 0, asn1.ErrorKindTruncatedField},
		"empty":                          {nil, Distinguished, 0, 0, asn1.ErrorKindTruncatedField},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			length, n, err := DecodeLength(tt.in, tt.rule)
			if tt.wantErr != 0 {
				var e *asn1.Error
				if !errors.As(err, &e) || e.Kind != tt.wantErr {
					t.Fatalf("DecodeLength() error = %v, want kind %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeLength() unexpected error: %v", err)
			}
			if length != tt.length || n != tt.n {
				t.Errorf("DecodeLength() = (%d, %d), want (%d, %d)", length, n, tt.length, tt.n)
			}
		})
	}
}

func TestEncodeLength(t *testing.T) {
	tests := map[string]struct {
		length int
		want   []byte
	}{
		"zero":      {0, []byte{0x00}},
		"max short": {127, []byte{0x7F}},
		"min long":  {128, []byte{0x81, 0x80}},
		"two bytes": {256, []byte{0x82, 0x01, 0x00}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := EncodeLength(nil, tt.length)
			if string(got) != string(tt.want) {
				t.Errorf("EncodeLength() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestLengthRoundTrip(t *testing.T) {
	lengths := []int{0, 1, 127, 128, 255, 256, 65535, 1 << 20}
	for _, l := range lengths {
		b := EncodeLength(nil, l)
		got, n, err := DecodeLength(b, Distinguished)
		if err != nil {
			t.Fatalf("DecodeLength(%x) error = %v", b, err)
		}
		if got != l || n != len(b) {
			t.Errorf("round trip %d: got (%d, %d), want (%d, %d)", l, got, n, l, len(b))
		}
	}
}
