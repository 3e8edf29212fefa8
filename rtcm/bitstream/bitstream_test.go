package bitstream

import "testing"

func TestReadUint(t *testing.T) {
	// 1011 1000 -> first 4 bits as uint is 0b1011 = 11.
	buf := []byte{0xb8}
	r := NewReader(buf)
	got, err := r.ReadUint(4)
	if err != nil {
		t.Fatal(err)
	}
	if got != 11 {
		t.Errorf("got %d, want 11", got)
	}
	if r.BitPosition() != 4 {
		t.Errorf("bit position %d, want 4", r.BitPosition())
	}
}

func TestReadIntSignExtends(t *testing.T) {
	// 4-bit two's complement 1011 == -5.
	buf := []byte{0xb0}
	r := NewReader(buf)
	got, err := r.ReadInt(4)
	if err != nil {
		t.Fatal(err)
	}
	if got != -5 {
		t.Errorf("got %d, want -5", got)
	}
}

func TestReadSignMagnitude(t *testing.T) {
	// 4-bit sign-magnitude 1011: sign bit set, magnitude 011 = 3, so -3.
	buf := []byte{0xb0}
	r := NewReader(buf)
	got, err := r.ReadSignMagnitude(4)
	if err != nil {
		t.Fatal(err)
	}
	if got != -3 {
		t.Errorf("got %d, want -3", got)
	}
}

func TestReadIncomplete(t *testing.T) {
	r := NewReader([]byte{0xff})
	if _, err := r.ReadUint(9); err != ErrIncomplete {
		t.Errorf("got %v, want ErrIncomplete", err)
	}
}

func TestWriteReadRoundTripUint(t *testing.T) {
	w := NewWriter()
	if err := w.WriteUint(0x1a5, 12); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w.Bytes())
	got, err := r.ReadUint(12)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x1a5 {
		t.Errorf("got %#x, want %#x", got, 0x1a5)
	}
}

func TestWriteReadRoundTripInt(t *testing.T) {
	for _, want := range []int64{0, 1, -1, 63, -64} {
		w := NewWriter()
		if err := w.WriteInt(want, 7); err != nil {
			t.Fatal(err)
		}
		r := NewReader(w.Bytes())
		got, err := r.ReadInt(7)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("I7(%d): got %d", want, got)
		}
	}
}

func TestSignMagnitudeZeroIsCanonical(t *testing.T) {
	w := NewWriter()
	if err := w.WriteSignMagnitude(0, 11); err != nil {
		t.Fatal(err)
	}
	bytes := w.Bytes()
	// Sign bit is the top bit of the 11-bit field, which is the MSB
	// of the first byte here since the field starts at bit 0.
	if bytes[0]&0x80 != 0 {
		t.Errorf("sign bit set for zero: %08b", bytes[0])
	}
	r := NewReader(bytes)
	got, err := r.ReadSignMagnitude(11)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestWriteReadRoundTripSignMagnitude(t *testing.T) {
	for _, want := range []int64{0, 1, -1, 127, -127} {
		w := NewWriter()
		if err := w.WriteSignMagnitude(want, 8); err != nil {
			t.Fatal(err)
		}
		r := NewReader(w.Bytes())
		got, err := r.ReadSignMagnitude(8)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("IS8(%d): got %d", want, got)
		}
	}
}

func TestBitsRemaining(t *testing.T) {
	r := NewReader([]byte{0, 0})
	if r.BitsRemaining() != 16 {
		t.Errorf("got %d, want 16", r.BitsRemaining())
	}
	r.ReadUint(5)
	if r.BitsRemaining() != 11 {
		t.Errorf("got %d, want 11", r.BitsRemaining())
	}
}
