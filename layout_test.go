package glint

import "testing"

func TestLayout_Split_Vertical(t *testing.T) {
	l := NewLayout(Vertical, Length(2), Percentage(50))
	rects := l.Split(NewRect(0, 0, 10, 10))

	if len(rects) != 2 {
		t.Fatalf("Split() returned %d rects, want 2", len(rects))
	}
	if rects[0] != NewRect(0, 0, 10, 2) {
		t.Errorf("rects[0] = %+v, want {0 0 10 2}", rects[0])
	}
	if rects[1] != NewRect(0, 2, 10, 5) {
		t.Errorf("rects[1] = %+v, want {0 2 10 5}", rects[1])
	}
}

func TestLayout_Split_Fill(t *testing.T) {
	l := NewLayout(Vertical, Length(2), Fill(), Fill())
	rects := l.Split(NewRect(0, 0, 10, 10))

	if len(rects) != 3 {
		t.Fatalf("Split() returned %d rects, want 3", len(rects))
	}
	if rects[0].Height != 2 {
		t.Errorf("rects[0].Height = %d, want 2", rects[0].Height)
	}
	// (10 - 2) / 2 = 4 each
	if rects[1].Height != 4 {
		t.Errorf("rects[1].Height = %d, want 4", rects[1].Height)
	}
	if rects[2].Height != 4 {
		t.Errorf("rects[2].Height = %d, want 4", rects[2].Height)
	}
	if rects[2].Y != 6 {
		t.Errorf("rects[2].Y = %d, want 6", rects[2].Y)
	}
}

func TestLayout_Split_Percentages(t *testing.T) {
	l := NewLayout(Horizontal, Percentage(50), Percentage(50))
	rects := l.Split(NewRect(0, 0, 100, 10))

	if rects[0].Width != 50 {
		t.Errorf("rects[0].Width = %d, want 50", rects[0].Width)
	}
	if rects[1].Width != 50 {
		t.Errorf("rects[1].Width = %d, want 50", rects[1].Width)
	}
	if rects[1].X != 50 {
		t.Errorf("rects[1].X = %d, want 50", rects[1].X)
	}
	if rects[0].Height != 10 || rects[1].Height != 10 {
		t.Error("horizontal split must leave heights unchanged")
	}
}

func TestLayout_Split_Ratio(t *testing.T) {
	l := NewLayout(Vertical, Ratio(1, 4), Ratio(3, 4))
	rects := l.Split(NewRect(0, 0, 100, 100))

	if rects[0].Height != 25 {
		t.Errorf("rects[0].Height = %d, want 25", rects[0].Height)
	}
	if rects[1].Height != 75 {
		t.Errorf("rects[1].Height = %d, want 75", rects[1].Height)
	}
}

func TestLayout_Split_MinMax(t *testing.T) {
	rect := NewRect(0, 0, 100, 100)

	// flex unit is 50; Min(60) must win.
	rects := NewLayout(Vertical, Fill(), Min(60)).Split(rect)
	if rects[1].Height != 60 {
		t.Errorf("Min segment height = %d, want 60", rects[1].Height)
	}

	// flex unit is 50; Max(40) must cap it.
	rects = NewLayout(Vertical, Fill(), Max(40)).Split(rect)
	if rects[1].Height != 40 {
		t.Errorf("Max segment height = %d, want 40", rects[1].Height)
	}
}

func TestLayout_Split_RemainderDropped(t *testing.T) {
	// 10 cells over 3 Fill segments: 3 each, remainder 1 dropped.
	l := NewLayout(Vertical, Fill(), Fill(), Fill())
	rects := l.Split(NewRect(0, 0, 10, 10))

	for i, r := range rects {
		if r.Height != 3 {
			t.Errorf("rects[%d].Height = %d, want 3", i, r.Height)
		}
	}
	if rects[2].Bottom() != 9 {
		t.Errorf("last segment ends at %d, want 9 (remainder is not redistributed)", rects[2].Bottom())
	}
}

func TestLayout_Split_Overconstrained(t *testing.T) {
	// Fixed sizes exceed the extent: flexible segments collapse to zero.
	l := NewLayout(Vertical, Length(20), Fill())
	rects := l.Split(NewRect(0, 0, 10, 10))

	if rects[1].Height != 0 {
		t.Errorf("flex segment height = %d, want 0", rects[1].Height)
	}
}

func TestLayout_SplitN(t *testing.T) {
	l := NewLayout(Horizontal, Percentage(50), Percentage(50))
	rects := l.SplitN(NewRect(0, 0, 100, 10), 2)
	if len(rects) != 2 {
		t.Fatalf("SplitN() returned %d rects, want 2", len(rects))
	}
}

func TestLayout_SplitN_ArityMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SplitN with wrong arity did not panic")
		}
	}()
	NewLayout(Vertical, Fill()).SplitN(NewRect(0, 0, 10, 10), 2)
}
