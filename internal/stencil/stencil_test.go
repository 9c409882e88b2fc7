package stencil

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"sphereflake/internal/model"
	"sphereflake/internal/view"
)

type pen [4]float32

func (p *pen) SetColor(r, g, b, a float32) {
	*p = pen{r, g, b, a}
}

func colorAt(s view.Stencil, depth int) pen {
	var p pen
	s.Apply(model.NewSphere(depth, mgl64.Ident4(), 1), &p)
	return p
}

func TestGold(t *testing.T) {
	if got := colorAt(Gold, 0); got != (pen{1, 0.9, 0.1, 1}) {
		t.Fatalf("depth 0: %v", got)
	}
	if colorAt(Gold, 6) != colorAt(Gold, 0) {
		t.Fatal("gold should repeat every six generations")
	}
	prev := colorAt(Gold, 0)
	for d := 1; d < 6; d++ {
		c := colorAt(Gold, d)
		if c[0] >= prev[0] {
			t.Fatalf("depth %d: intensity %v not below %v", d, c[0], prev[0])
		}
		prev = c
	}
}

func TestPierrot(t *testing.T) {
	tests := []struct {
		depth int
		want  pen
	}{
		{0, pen{1, 0.1, 0.1, 1}},
		{1, pen{0.1, 1, 0.1, 1}},
		{2, pen{0.1, 0.1, 1, 1}},
		{3, pen{1, 0.1, 0.1, 1}},
	}
	for _, tt := range tests {
		if got := colorAt(Pierrot, tt.depth); got != tt.want {
			t.Fatalf("depth %d: got %v, want %v", tt.depth, got, tt.want)
		}
	}
}

func TestVitro(t *testing.T) {
	if got := colorAt(Vitro, 4); got != (pen{0.5, 0.5, 0.5, 1}) {
		t.Fatalf("even depth: %v", got)
	}
	if got := colorAt(Vitro, 5); got != (pen{0.2, 0.2, 0.2, 0.99}) {
		t.Fatalf("odd depth: %v", got)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		s, err := ByName(name)
		if err != nil || s == nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if _, err := ByName("plaid"); err == nil {
		t.Fatal("expected an error for an unknown stencil")
	}
	if got := Names(); len(got) != 3 || got[0] != "gold" {
		t.Fatalf("names: %v", got)
	}
}
