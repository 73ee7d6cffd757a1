package curve3

import "testing"

func TestRectAbs(t *testing.T) {
	f := func(r, want Rect) {
		if got := r.Abs(); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	f(Rect{1.0, 2.0, 3.0, 4.0}, Rect{1.0, 2.0, 3.0, 4.0})
	f(Rect{3.0, 4.0, 1.0, 2.0}, Rect{1.0, 2.0, 3.0, 4.0})
	f(Rect{3.0, 2.0, 1.0, 4.0}, Rect{1.0, 2.0, 3.0, 4.0})
}

func TestRectDimensions(t *testing.T) {
	r := Rect{-1.0, -2.0, 3.0, 4.0}
	if w := r.Width(); w != 4 {
		t.Errorf("got width %v, want 4", w)
	}
	if h := r.Height(); h != 6 {
		t.Errorf("got height %v, want 6", h)
	}

	// Unnormalized rectangles have negative dimensions.
	flip := Rect{3.0, 4.0, -1.0, -2.0}
	if w := flip.Width(); w != -4 {
		t.Errorf("got width %v, want -4", w)
	}
}

func TestRectUnion(t *testing.T) {
	r := Rect{-1.0, -1.0, 1.0, 1.0}
	o := Rect{0.0, -3.0, 4.0, 0.0}
	if got, want := r.Union(o), (Rect{-1.0, -3.0, 4.0, 1.0}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRectInflate(t *testing.T) {
	r := Rect{-1.0, -2.0, 1.0, 2.0}
	if got, want := r.Inflate(0.5, 1), (Rect{-1.5, -3.0, 1.5, 3.0}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRectIsEmpty(t *testing.T) {
	if (Rect{-1.0, -1.0, 1.0, 1.0}).IsEmpty() {
		t.Error("rectangle with positive area reported as empty")
	}
	if !(Rect{1.0, 1.0, 1.0, 2.0}).IsEmpty() {
		t.Error("zero-width rectangle not reported as empty")
	}
	if !(Rect{}).IsEmpty() {
		t.Error("zero rectangle not reported as empty")
	}
}
