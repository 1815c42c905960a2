package audio

import "testing"

func TestGainMapping(t *testing.T) {
	if gain(1) != 0 {
		t.Fatalf("gain(1) = %v, want 0", gain(1))
	}
	if gain(0.5) != -1 {
		t.Fatalf("gain(0.5) = %v, want -1", gain(0.5))
	}
	if gain(0.25) >= gain(0.5) {
		t.Fatal("gain not monotonic")
	}
}

func TestDisabledClickerIsNoop(t *testing.T) {
	c := NewClicker(false, 1)
	if err := c.Init(); err != nil {
		t.Fatalf("disabled Init: %v", err)
	}
	// No speaker was brought up; these must be safe no-ops.
	c.Click()
	c.Close()
}

func TestUninitializedClickDoesNotPanic(t *testing.T) {
	c := NewClicker(true, 1)
	c.Click() // Init never called
	c.Close()
}
