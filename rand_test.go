package tuuid

import "testing"

func TestMathSource_Bits(t *testing.T) {
	src := newMathSource()

	for _, width := range []int{1, 4, 8, 16, 30, 31, 32, 48, 53} {
		limit := uint64(1) << width
		for i := 0; i < 200; i++ {
			v, err := src.Bits(width)
			if err != nil {
				t.Fatalf("Bits(%d) error = %v", width, err)
			}
			if v >= limit {
				t.Fatalf("Bits(%d) = %#x, out of range [0, %#x)", width, v, limit)
			}
		}
	}
}

func TestMathSource_BitsZeroWidth(t *testing.T) {
	src := newMathSource()
	v, err := src.Bits(0)
	if err != nil {
		t.Fatalf("Bits(0) error = %v", err)
	}
	if v != 0 {
		t.Errorf("Bits(0) = %d, want 0", v)
	}
}

func TestMathSource_BitsInvalidWidth(t *testing.T) {
	src := newMathSource()

	for _, width := range []int{-1, 54, 64} {
		if _, err := src.Bits(width); err != ErrBitWidth {
			t.Errorf("Bits(%d) error = %v, want %v", width, err, ErrBitWidth)
		}
	}
}

func TestMathSource_WideDrawsVary(t *testing.T) {
	src := newMathSource()

	// 53-bit draws should not all collide; a frozen high or low half would
	// betray a broken two-draw assembly.
	seen := make(map[uint64]bool)
	for i := 0; i < 50; i++ {
		v, err := src.Bits(53)
		if err != nil {
			t.Fatalf("Bits(53) error = %v", err)
		}
		seen[v] = true
	}
	if len(seen) < 45 {
		t.Errorf("Bits(53) produced only %d distinct values in 50 draws", len(seen))
	}
}
