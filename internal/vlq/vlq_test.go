package vlq

import (
	"bytes"
	"errors"
	"testing"
)

func TestRead(t *testing.T) {
	tests := map[string]struct {
		in      []byte
		value   uint
		n       int
		wantErr error
	}{
		"zero":         {[]byte{0x00}, 0, 1, nil},
		"single byte":  {[]byte{0x7f}, 0x7f, 1, nil},
		"two bytes":    {[]byte{0x86, 0x48}, 840, 2, nil},
		"trailing":     {[]byte{0x86, 0x48, 0xff}, 840, 2, nil},
		"non-minimal":  {[]byte{0x80, 0x01}, 0, 0, ErrNotMinimal},
		"truncated":    {[]byte{0x80 | 0x7f}, 0, 0, ErrTruncated},
		"empty input":  {nil, 0, 0, ErrTruncated},
		"large value":  {[]byte{0x87, 0xf7, 0x0d}, 2097549, 3, nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			value, n, err := Read(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Read() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if value != tt.value || n != tt.n {
				t.Errorf("Read() = (%d, %d), want (%d, %d)", value, n, tt.value, tt.n)
			}
		})
	}
}

func TestAppend(t *testing.T) {
	tests := map[string]struct {
		value uint
		want  []byte
	}{
		"zero":        {0, []byte{0x00}},
		"single byte": {0x7f, []byte{0x7f}},
		"two bytes":   {840, []byte{0x86, 0x48}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Append(nil, tt.value)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Append() = %x, want %x", got, tt.want)
			}
			if l := Len(tt.value); l != len(tt.want) {
				t.Errorf("Len() = %d, want %d", l, len(tt.want))
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	values := []uint{0, 1, 127, 128, 840, 113549, 1 << 20, 1<<32 - 1}
	for _, v := range values {
		b := Append(nil, v)
		got, n, err := Read(b)
		if err != nil {
			t.Fatalf("Read(%x) error = %v", b, err)
		}
		if got != v || n != len(b) {
			t.Errorf("round trip %d: got (%d, %d), want (%d, %d)", v, got, n, v, len(b))
		}
	}
}
