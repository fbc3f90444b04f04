package ber

import (
	"errors"
	"testing"

	"strix.dev/der/asn1"
)

func TestBitStringRoundTrip(t *testing.T) {
	tests := map[string]asn1.BitString{
		"empty":       {Bytes: nil, BitLength: 0},
		"exact fit":   {Bytes: []byte{0xFF}, BitLength: 8},
		"three bits":  {Bytes: []byte{0b1010_0000}, BitLength: 3},
		"two bytes":   {Bytes: []byte{0xDE, 0xA0}, BitLength: 12},
	}
	for name, bs := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewSerializer()
			s.AppendBitString(bs)
			got, err := DecodeBitString(mustParse(t, s.Bytes()))
			if err != nil {
				t.Fatalf("DecodeBitString() error = %v", err)
			}
			if got.BitLength != bs.BitLength {
				t.Errorf("BitLength = %d, want %d", got.BitLength, bs.BitLength)
			}
			for i := 0; i < bs.BitLength; i++ {
				if got.At(i) != bs.At(i) {
					t.Errorf("bit %d = %d, want %d", i, got.At(i), bs.At(i))
				}
			}
		})
	}
}

func TestDecodeBitString_NonZeroPadding(t *testing.T) {
	// unused=3, final byte 0xA1 = 1010_0001 has a bit set among its low 3 bits, must fail.
	_, err := DecodeBitString(mustParse(t, []byte{0x03, 0x02, 0x03, 0xA1}))
	var e *asn1.Error
	if !errors.As(err, &e) || e.Kind != asn1.ErrorKindInvalidObject {
		t.Fatalf("DecodeBitString() error = %v, want InvalidObject", err)
	}
}
