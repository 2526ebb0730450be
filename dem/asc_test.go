package dem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
)

const tinyASC = `ncols 4
nrows 3
xllcorner 1000
yllcorner 2000
cellsize 10
NODATA_value -9999
1 2 3 4
5 6 7 8
9 10 -9999 12
`

func TestReadASC(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "t.asc")
	if err := os.WriteFile(fp, []byte(tinyASC), 0644); err != nil {
		t.Fatal(err)
	}
	g, err := ReadASC(fp)
	if err != nil {
		t.Fatal(err)
	}
	if g.Name() != "t" {
		t.Errorf("name %q", g.Name())
	}
	dx, dy := g.Resolution()
	if dx != 10. || dy != 10. {
		t.Errorf("resolution %v %v", dx, dy)
	}
	want := orb.Bound{Min: orb.Point{1000., 2000.}, Max: orb.Point{1040., 2030.}}
	if g.Bound() != want {
		t.Errorf("bound %+v", g.Bound())
	}
	if v, ok := g.Value(orb.Point{1005., 2025.}); !ok || v != 1. { // north-west cell
		t.Errorf("nw cell: %v %v", v, ok)
	}
	if v, ok := g.Value(orb.Point{1035., 2005.}); !ok || v != 12. { // south-east cell
		t.Errorf("se cell: %v %v", v, ok)
	}
	if _, ok := g.Value(orb.Point{1025., 2005.}); ok {
		t.Error("nodata cell returned a value")
	}
	if _, ok := g.Value(orb.Point{999., 2005.}); ok {
		t.Error("out-of-extent point returned a value")
	}
}

func TestReadASCCentreRegistered(t *testing.T) {
	body := `ncols 2
nrows 2
xllcenter 105
yllcenter 205
cellsize 10
7 8
9 10
`
	fp := filepath.Join(t.TempDir(), "c.asc")
	if err := os.WriteFile(fp, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	g, err := ReadASC(fp)
	if err != nil {
		t.Fatal(err)
	}
	want := orb.Bound{Min: orb.Point{100., 200.}, Max: orb.Point{120., 220.}}
	if g.Bound() != want {
		t.Errorf("bound %+v", g.Bound())
	}
	if v, ok := g.Value(orb.Point{101., 201.}); !ok || v != 9. { // south-west cell
		t.Errorf("sw cell: %v %v", v, ok)
	}
}

func TestReadASCBad(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"nohdr.asc":  "1 2 3\n4 5 6\n7 8 9\n1 2 3\n4 5 6\n7 8 9\n",
		"short.asc":  "ncols 3\nnrows 3\nxllcorner 0\nyllcorner 0\ncellsize 1\n1 2 3\n4 5\n",
		"badval.asc": "ncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 1\n1 x\n3 4\n",
	} {
		fp := filepath.Join(dir, name)
		if err := os.WriteFile(fp, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := ReadASC(fp); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
