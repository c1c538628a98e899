package hex

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBackDirections(t *testing.T) {
	tests := []struct {
		m    Movement
		a, b Direction
	}{
		{LeftToRight, Southwest, Northwest},
		{RightToLeft, Northeast, Southeast},
		{TopLeftToBottomRight, Northwest, North},
		{BottomRightToTopLeft, Southeast, South},
		{TopRightToBottomLeft, North, Northeast},
		{BottomLeftToTopRight, South, Southwest},
	}

	for _, tc := range tests {
		t.Run(tc.m.String(), func(t *testing.T) {
			a, b := tc.m.BackDirections()
			if a != tc.a || b != tc.b {
				t.Errorf("BackDirections() = (%v, %v), expected (%v, %v)", a, b, tc.a, tc.b)
			}
			// The two back directions are always neighbours in the cycle.
			if _, ok := ResolveDiagonal(a, b); !ok {
				t.Errorf("back directions %v and %v are not adjacent", a, b)
			}
		})
	}
}

func TestBehindHalfPlane(t *testing.T) {
	center := MustCube(1, -3, 2)

	for _, m := range Movements {
		t.Run(m.String(), func(t *testing.T) {
			if m.Behind(center, center) {
				t.Error("center must not be behind itself")
			}

			back := make(map[Direction]bool)
			a, b := m.BackDirections()
			back[a], back[b] = true, true

			// Both back directions land in the backward half-plane; their
			// opposites never do.
			for _, d := range Directions {
				step := center.Add(d.Offset())
				if back[d] && !m.Behind(center, step) {
					t.Errorf("step %v should be behind", d)
				}
				if back[d.Opposite()] && m.Behind(center, step) {
					t.Errorf("step %v should not be behind", d)
				}
			}
		})
	}
}

func TestBehindLeftToRight(t *testing.T) {
	center := A(0, 0).ToCube()
	tests := []struct {
		cand     Axial
		expected bool
	}{
		{A(-1, 0), true},
		{A(-2, 2), true},
		{A(-1, 1), true},
		{A(0, -2), false},
		{A(0, 2), false},
		{A(1, -1), false},
	}
	for _, tc := range tests {
		if got := LeftToRight.Behind(center, tc.cand.ToCube()); got != tc.expected {
			t.Errorf("LeftToRight.Behind(%v) = %v, expected %v", tc.cand, got, tc.expected)
		}
	}
}

func TestParseMovement(t *testing.T) {
	for _, m := range Movements {
		got, err := ParseMovement(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMovement(%q) = %v, %v", m.String(), got, err)
		}
	}

	if got, err := ParseMovement("LEFT_TO_RIGHT"); err != nil || got != LeftToRight {
		t.Errorf("ParseMovement(LEFT_TO_RIGHT) = %v, %v", got, err)
	}
	if _, err := ParseMovement("sideways"); !errors.Is(err, ErrUnknownMovement) {
		t.Errorf("ParseMovement(sideways) error = %v, expected ErrUnknownMovement", err)
	}
}

func TestMovementYAML(t *testing.T) {
	type team struct {
		Movement Movement `yaml:"movement"`
	}

	var got team
	if err := yaml.Unmarshal([]byte("movement: top-right-to-bottom-left\n"), &got); err != nil {
		t.Fatalf("yaml.Unmarshal() failed: %v", err)
	}
	if got.Movement != TopRightToBottomLeft {
		t.Errorf("Movement = %v, expected TopRightToBottomLeft", got.Movement)
	}

	out, err := yaml.Marshal(team{Movement: RightToLeft})
	if err != nil {
		t.Fatalf("yaml.Marshal() failed: %v", err)
	}
	if string(out) != "movement: right-to-left\n" {
		t.Errorf("yaml.Marshal() = %q", out)
	}

	if err := yaml.Unmarshal([]byte("movement: diagonal\n"), &got); err == nil {
		t.Error("expected error for unknown movement")
	}
}
