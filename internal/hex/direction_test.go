package hex

import (
	"errors"
	"testing"
)

func TestDirectionOffsets(t *testing.T) {
	seen := make(map[Cube]Direction)
	for _, d := range Directions {
		off := d.Offset()
		if off.X+off.Y+off.Z != 0 {
			t.Errorf("%v offset %v violates zero sum", d, off)
		}
		if Distance(Cube{}, off) != 1 {
			t.Errorf("%v offset %v is not a unit step", d, off)
		}
		if prev, dup := seen[off]; dup {
			t.Errorf("%v and %v share offset %v", d, prev, off)
		}
		seen[off] = d
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, expected Direction
	}{
		{North, South},
		{Northeast, Southwest},
		{Southeast, Northwest},
		{South, North},
		{Southwest, Northeast},
		{Northwest, Southeast},
	}

	for _, tc := range tests {
		if got := tc.d.Opposite(); got != tc.expected {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.d, got, tc.expected)
		}
		if got := tc.d.Opposite().Opposite(); got != tc.d {
			t.Errorf("%v.Opposite().Opposite() = %v", tc.d, got)
		}
		if sum := tc.d.Offset().Add(tc.d.Opposite().Offset()); sum != (Cube{}) {
			t.Errorf("%v offset plus opposite offset = %v, expected origin", tc.d, sum)
		}
	}
}

func TestDirectionRotation(t *testing.T) {
	if North.Prev() != Northwest {
		t.Errorf("North.Prev() = %v, expected Northwest", North.Prev())
	}
	if Northwest.Next() != North {
		t.Errorf("Northwest.Next() = %v, expected North", Northwest.Next())
	}
	for _, d := range Directions {
		if d.Next().Prev() != d {
			t.Errorf("%v.Next().Prev() = %v", d, d.Next().Prev())
		}
	}
}

func TestInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Offset() of invalid direction should panic")
		}
	}()
	Direction(6).Offset()
}

func TestDiagonalOffsets(t *testing.T) {
	for _, g := range Diagonals {
		a, b := g.Bounds()
		if want := a.Offset().Add(b.Offset()); g.Offset() != want {
			t.Errorf("%v.Offset() = %v, expected %v", g, g.Offset(), want)
		}
		if Distance(Cube{}, g.Offset()) != 2 {
			t.Errorf("%v offset should be two steps away", g)
		}
	}
}

func TestResolveDiagonal(t *testing.T) {
	found := 0
	for _, a := range Directions {
		for _, b := range Directions {
			g, ok := ResolveDiagonal(a, b)
			adjacent := a.Next() == b || b.Next() == a
			if ok != adjacent {
				t.Errorf("ResolveDiagonal(%v, %v) ok = %v, expected %v", a, b, ok, adjacent)
				continue
			}
			if !ok {
				continue
			}
			found++
			lo, hi := g.Bounds()
			if !((lo == a && hi == b) || (lo == b && hi == a)) {
				t.Errorf("ResolveDiagonal(%v, %v) = %v bounded by %v/%v", a, b, g, lo, hi)
			}
			if rev, _ := ResolveDiagonal(b, a); rev != g {
				t.Errorf("ResolveDiagonal not order independent for %v, %v", a, b)
			}
		}
	}
	// 6 adjacent pairs, each seen in both orders.
	if found != 12 {
		t.Errorf("resolved %d ordered pairs, expected 12", found)
	}

	if _, ok := ResolveDiagonal(Direction(9), North); ok {
		t.Error("ResolveDiagonal with invalid direction should fail")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
	}{
		{"north", North},
		{"NE", Northeast},
		{"South-East", Southeast},
		{"s", South},
		{"south_west", Southwest},
		{" Northwest ", Northwest},
	}

	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseDirection(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}

	if _, err := ParseDirection("east"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("ParseDirection(east) error = %v, expected ErrUnknownDirection", err)
	}
}
