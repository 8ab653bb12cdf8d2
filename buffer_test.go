package glint

import "testing"

func TestBuffer_New(t *testing.T) {
	b := NewBuffer(10, 5)

	if b.Width() != 10 || b.Height() != 5 {
		t.Errorf("Size() = (%d, %d), want (10, 5)", b.Width(), b.Height())
	}
	if b.Rect() != NewRect(0, 0, 10, 5) {
		t.Errorf("Rect() = %+v", b.Rect())
	}
	if got := b.Get(0, 0); got.Rune != ' ' || !got.Style.Equal(NewStyle()) {
		t.Errorf("new buffer cell = %+v, want blank", got)
	}
}

func TestBuffer_New_NegativeDimensions(t *testing.T) {
	b := NewBuffer(-3, -1)
	if b.Width() != 0 || b.Height() != 0 {
		t.Errorf("Size() = (%d, %d), want (0, 0)", b.Width(), b.Height())
	}
}

func TestBuffer_SetGet(t *testing.T) {
	b := NewBuffer(10, 5)
	style := NewStyle().Foreground(Red)

	b.Set(2, 3, 'X', style)

	got := b.Get(2, 3)
	if got.Rune != 'X' {
		t.Errorf("Get(2, 3).Rune = %q, want 'X'", got.Rune)
	}
	if !got.Style.Equal(style) {
		t.Errorf("Get(2, 3).Style = %+v, want red fg", got.Style)
	}
	if b.Get(0, 0).Rune != ' ' {
		t.Error("untouched cell mutated")
	}
}

func TestBuffer_Set_OutOfBoundsIgnored(t *testing.T) {
	b := NewBuffer(10, 5)

	// None of these may panic or write anything.
	b.Set(10, 0, 'X', NewStyle())
	b.Set(0, 5, 'X', NewStyle())
	b.Set(-1, 0, 'X', NewStyle())
	b.Set(0, -1, 'X', NewStyle())

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if b.Get(x, y).Rune != ' ' {
				t.Fatalf("cell (%d, %d) mutated by out-of-bounds write", x, y)
			}
		}
	}
}

func TestBuffer_Get_OutOfBoundsPanics(t *testing.T) {
	b := NewBuffer(10, 5)
	defer func() {
		if recover() == nil {
			t.Error("Get(10, 5) did not panic")
		}
	}()
	b.Get(10, 5)
}
