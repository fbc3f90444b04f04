package ber

import (
	"math"
	"testing"
)

func TestRealRoundTrip(t *testing.T) {
	values := []float64{0, 3.14, -0.5, 2.0, 1e10, -1e-10, 1, -1}
	for _, v := range values {
		s := NewSerializer()
		s.AppendReal(v)
		got, err := DecodeReal(mustParse(t, s.Bytes()))
		if err != nil {
			t.Fatalf("round trip %v: DecodeReal() error = %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %v: got %v", v, got)
		}
	}
}

func TestRealSpecialValues(t *testing.T) {
	s := NewSerializer()
	s.AppendReal(math.Inf(1))
	got, err := DecodeReal(mustParse(t, s.Bytes()))
	if err != nil || !math.IsInf(got, 1) {
		t.Errorf("+Inf round trip: got (%v, %v)", got, err)
	}

	s = NewSerializer()
	s.AppendReal(math.Inf(-1))
	got, err = DecodeReal(mustParse(t, s.Bytes()))
	if err != nil || !math.IsInf(got, -1) {
		t.Errorf("-Inf round trip: got (%v, %v)", got, err)
	}

	s = NewSerializer()
	s.AppendReal(math.Copysign(0, -1))
	got, err = DecodeReal(mustParse(t, s.Bytes()))
	if err != nil || got != 0 || !math.Signbit(got) {
		t.Errorf("-0.0 round trip: got (%v, %v), want negative zero", got, err)
	}

	s = NewSerializer()
	s.AppendReal(0)
	got, err = DecodeReal(mustParse(t, s.Bytes()))
	if err != nil || got != 0 || math.Signbit(got) {
		t.Errorf("+0.0 round trip: got (%v, %v), want positive zero", got, err)
	}
	if len(s.Bytes()) != 2 {
		t.Errorf("+0.0 must encode as empty content, got %d content bytes", len(s.Bytes())-2)
	}
}

func TestAppendReal_NaNPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AppendReal(NaN) did not panic")
		}
	}()
	NewSerializer().AppendReal(math.NaN())
}

func TestDecodeReal_DecimalFormRejected(t *testing.T) {
	// First content byte with bit 7 clear and not a special value: decimal
	// form, unsupported.
	data := []byte{0x09, 0x03, 0x01, '1', '0'}
	_, err := DecodeReal(mustParse(t, data))
	if err == nil {
		t.Error("DecodeReal() on decimal-form content did not error")
	}
}

func TestDecodeReal_NonZeroScaleAndBase(t *testing.T) {
	// base=8 (bits 5-4 = 01), scale=2 (bits 3-2 = 10), exponent length 1.
	// first byte: 1 0 01 10 00 = 0x98. exponent = 1, mantissa = 1.
	// value = 1 * 2^2 * 8^1 = 32.
	data := []byte{0x09, 0x03, 0x98, 0x01, 0x01}
	got, err := DecodeReal(mustParse(t, data))
	if err != nil {
		t.Fatalf("DecodeReal() error = %v", err)
	}
	if got != 32 {
		t.Errorf("DecodeReal() = %v, want 32", got)
	}
}
