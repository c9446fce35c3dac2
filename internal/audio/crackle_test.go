package audio

import "testing"

func TestCrackleSilentAtZeroLevel(t *testing.T) {
	c := NewCrackle(1)
	samples := make([][2]float64, 4096)
	n, ok := c.Stream(samples)
	if n != len(samples) || !ok {
		t.Fatalf("Stream returned (%d, %v), want (%d, true)", n, ok, len(samples))
	}
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, want silence at level 0", i, s)
		}
	}
}

func TestCrackleProducesOutputAtFullLevel(t *testing.T) {
	c := NewCrackle(1)
	c.SetLevel(1)
	samples := make([][2]float64, 44100)
	c.Stream(samples)

	nonzero := 0
	for _, s := range samples {
		if s[0] != 0 {
			nonzero++
		}
		if s[0] < -1 || s[0] > 1 {
			t.Fatalf("sample %v out of range", s)
		}
		if s[0] != s[1] {
			t.Fatal("channels diverged; crackle is mono")
		}
	}
	if nonzero == 0 {
		t.Fatal("a full-level crackle produced a second of pure silence")
	}
}

func TestCrackleLevelClamped(t *testing.T) {
	c := NewCrackle(1)
	c.SetLevel(5)
	if c.level != 1 {
		t.Fatalf("level = %v, want clamped to 1", c.level)
	}
	c.SetLevel(-2)
	if c.level != 0 {
		t.Fatalf("level = %v, want clamped to 0", c.level)
	}
}
