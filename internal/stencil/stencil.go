// Package stencil provides the depth-based color schemes of the viewer.
package stencil

import (
	"fmt"
	"sort"

	"sphereflake/internal/model"
	"sphereflake/internal/view"
)

// Gold fades a gold tint over six generations.
var Gold = view.StencilFunc(func(e model.Element, pen view.Pen) {
	i := float32(1 - float64(e.Depth()%6)/6)
	pen.SetColor(i, 0.9*i, 0.1*i, 1)
})

// Pierrot cycles red, green and blue by generation.
var Pierrot = view.StencilFunc(func(e model.Element, pen view.Pen) {
	switch e.Depth() % 3 {
	case 0:
		pen.SetColor(1, 0.1, 0.1, 1)
	case 1:
		pen.SetColor(0.1, 1, 0.1, 1)
	default:
		pen.SetColor(0.1, 0.1, 1, 1)
	}
})

// Vitro alternates opaque light grey with slightly translucent dark grey.
var Vitro = view.StencilFunc(func(e model.Element, pen view.Pen) {
	if e.Depth()%2 == 0 {
		pen.SetColor(0.5, 0.5, 0.5, 1)
	} else {
		pen.SetColor(0.2, 0.2, 0.2, 0.99)
	}
})

var byName = map[string]view.Stencil{
	"gold":    Gold,
	"pierrot": Pierrot,
	"vitro":   Vitro,
}

// ByName looks a stencil up by its lower case name.
func ByName(name string) (view.Stencil, error) {
	s, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown stencil %q, expected one of %v", name, Names())
	}
	return s, nil
}

// Names returns the registered stencil names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
