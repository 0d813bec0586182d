// Package display lists the Looking Glass displays quilter can target and
// the quilt grid each one expects.
package display

// Display is a named display and its quilt layout.
type Display struct {
	Name   string
	Layout [2]int
}

// Rows returns the first layout dimension.
func (d Display) Rows() int {
	return d.Layout[0]
}

// Columns returns the second layout dimension.
func (d Display) Columns() int {
	return d.Layout[1]
}

// Views returns how many views one quilt in this layout holds.
func (d Display) Views() int {
	return d.Layout[0] * d.Layout[1]
}

var displays = []Display{
	{Name: "Looking Glass Go", Layout: [2]int{11, 6}},
	{Name: "Portrait", Layout: [2]int{8, 6}},
	{Name: `16" Landscape`, Layout: [2]int{7, 7}},
	{Name: `16" Portrait`, Layout: [2]int{11, 6}},
	{Name: `32" Landscape`, Layout: [2]int{7, 7}},
	{Name: `32" Portrait`, Layout: [2]int{11, 6}},
	{Name: `65"`, Layout: [2]int{8, 9}},
}

// All returns the displays in declaration order. The slice is a copy.
func All() []Display {
	out := make([]Display, len(displays))
	copy(out, displays)
	return out
}

// Len returns the number of known displays.
func Len() int {
	return len(displays)
}

// Lookup returns the first display with the given name.
func Lookup(name string) (Display, bool) {
	for _, d := range displays {
		if d.Name == name {
			return d, true
		}
	}
	return Display{}, false
}
