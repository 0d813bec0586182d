package display

import "testing"

func TestAll(t *testing.T) {
	want := []Display{
		{"Looking Glass Go", [2]int{11, 6}},
		{"Portrait", [2]int{8, 6}},
		{`16" Landscape`, [2]int{7, 7}},
		{`16" Portrait`, [2]int{11, 6}},
		{`32" Landscape`, [2]int{7, 7}},
		{`32" Portrait`, [2]int{11, 6}},
		{`65"`, [2]int{8, 9}},
	}

	got := All()
	if len(got) != 7 || Len() != 7 {
		t.Fatalf("All() has %d entries, Len() = %d, want 7", len(got), Len())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLayoutsArePositive(t *testing.T) {
	for _, d := range All() {
		if d.Rows() <= 0 || d.Columns() <= 0 {
			t.Errorf("%s has non-positive layout %v", d.Name, d.Layout)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].Name = "mutated"
	first[0].Layout[0] = -1

	again := All()
	if again[0].Name != "Looking Glass Go" || again[0].Layout[0] != 11 {
		t.Errorf("registry was mutated through All(): %+v", again[0])
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		wantFound bool
		wantViews int
	}{
		{"Looking Glass Go", true, 66},
		{`65"`, true, 72},
		{`16" Landscape`, true, 49},
		{"Looking Glass Portrait", false, 0},
		{"", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Lookup(tt.name)
			if ok != tt.wantFound {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.name, ok, tt.wantFound)
			}
			if ok && d.Views() != tt.wantViews {
				t.Errorf("Views() = %d, want %d", d.Views(), tt.wantViews)
			}
		})
	}
}
