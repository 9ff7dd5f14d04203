package catalog

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestDefaultCatalogSane(t *testing.T) {
	cat := DefaultCatalog()
	if len(cat.Stars) < 100 {
		t.Fatalf("catalog has %d stars, want at least 100", len(cat.Stars))
	}

	seen := map[string]bool{}
	for _, s := range cat.Stars {
		if s.Name == "" {
			t.Error("star with empty name")
		}
		if seen[s.Name] {
			t.Errorf("duplicate star %q", s.Name)
		}
		seen[s.Name] = true
		if s.RADeg < 0 || s.RADeg >= 360 {
			t.Errorf("%s: RA %v out of [0,360)", s.Name, s.RADeg)
		}
		if s.DecDeg < -90 || s.DecDeg > 90 {
			t.Errorf("%s: Dec %v out of [-90,90]", s.Name, s.DecDeg)
		}
	}
}

func TestConstellationStarsTagged(t *testing.T) {
	cat := DefaultCatalog()
	byCon := map[string]int{}
	for _, s := range cat.Stars {
		if s.Con != "" {
			byCon[s.Con]++
		}
	}
	for _, c := range DefaultConstellations() {
		if byCon[c.Abbr] < 4 {
			t.Errorf("%s: only %d tagged stars", c.Name, byCon[c.Abbr])
		}
	}
}

func TestTableRoundTrip(t *testing.T) {
	cons := DefaultConstellations()

	var buf bytes.Buffer
	if err := WriteTable(&buf, cons); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	got, err := ReadTable(&buf)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(got) != len(cons) {
		t.Fatalf("read %d constellations, want %d", len(got), len(cons))
	}

	for i, want := range cons {
		g := got[i]
		if g.Name != want.Name || g.Abbr != want.Abbr {
			t.Errorf("entry %d: got %s/%s, want %s/%s", i, g.Name, g.Abbr, want.Name, want.Abbr)
		}
		if len(g.Lines) != len(want.Lines) {
			t.Errorf("%s: %d lines, want %d", want.Name, len(g.Lines), len(want.Lines))
			continue
		}
		for j := range want.Lines {
			if len(g.Lines[j]) != len(want.Lines[j]) {
				t.Errorf("%s line %d: %d points, want %d", want.Name, j, len(g.Lines[j]), len(want.Lines[j]))
				continue
			}
			for k, p := range want.Lines[j] {
				q := g.Lines[j][k]
				// float32 storage loses precision past ~1e-4 degrees.
				if math.Abs(q.RADeg-p.RADeg) > 1e-3 || math.Abs(q.DecDeg-p.DecDeg) > 1e-3 {
					t.Errorf("%s line %d point %d: got %+v, want %+v", want.Name, j, k, q, p)
				}
			}
		}
		if len(g.Boundary) != len(want.Boundary) {
			t.Errorf("%s: %d boundary points, want %d", want.Name, len(g.Boundary), len(want.Boundary))
		}
	}
}

func TestReadTableRejectsGarbage(t *testing.T) {
	if _, err := ReadTable(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})); !errors.Is(err, ErrBadTable) {
		t.Errorf("bad magic: got %v, want ErrBadTable", err)
	}

	var buf bytes.Buffer
	if err := WriteTable(&buf, DefaultConstellations()); err != nil {
		t.Fatal(err)
	}
	truncated := buf.Bytes()[:buf.Len()/2]
	if _, err := ReadTable(bytes.NewReader(truncated)); err == nil {
		t.Error("truncated table: want error, got nil")
	}
}
