package ber

import (
	"errors"
	"testing"

	"strix.dev/der/asn1"
)

func TestDecodeSequence(t *testing.T) {
	data := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	var a, b int64
	err := DecodeSequence(mustParse(t, data), func(it *Iterator) error {
		var err error
		a, err = DecodeInt64(it.Next())
		if err != nil {
			return err
		}
		b, err = DecodeInt64(it.Next())
		return err
	})
	if err != nil {
		t.Fatalf("DecodeSequence() error = %v", err)
	}
	if a != 1 || b != 2 {
		t.Errorf("a, b = %d, %d, want 1, 2", a, b)
	}
}

func TestDecodeSequence_UnconsumedTrailing(t *testing.T) {
	data := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	err := DecodeSequence(mustParse(t, data), func(it *Iterator) error {
		it.Next()
		return nil
	})
	var e *asn1.Error
	if !errors.As(err, &e) || e.Kind != asn1.ErrorKindInvalidObject {
		t.Fatalf("DecodeSequence() error = %v, want InvalidObject", err)
	}
}

func TestSequenceOf(t *testing.T) {
	data := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	got, err := SequenceOf(mustParse(t, data), DecodeInt64)
	if err != nil {
		t.Fatalf("SequenceOf() error = %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("SequenceOf() = %v, want [1 2]", got)
	}
}

func TestDecodeSet(t *testing.T) {
	data := []byte{0x31, 0x03, 0x02, 0x01, 0x09}
	err := DecodeSet(mustParse(t, data), func(it *Iterator) error {
		v, err := DecodeInt64(it.Next())
		if err != nil {
			return err
		}
		if v != 9 {
			t.Errorf("v = %d, want 9", v)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("DecodeSet() error = %v", err)
	}
}
