package dem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"b.asc", "a.asc"} { // written out of order
		if err := os.WriteFile(filepath.Join(dir, n), []byte(tinyASC), 0644); err != nil {
			t.Fatal(err)
		}
	}
	surfs, err := LoadAll(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(surfs) != 2 {
		t.Fatalf("got %d surfaces, want 2", len(surfs))
	}
	if surfs[0].Name() != "a" || surfs[1].Name() != "b" {
		t.Errorf("surface order: %s, %s", surfs[0].Name(), surfs[1].Name())
	}
}

func TestLoadAllEmpty(t *testing.T) {
	if _, err := LoadAll(t.TempDir(), false); err == nil {
		t.Error("expected error for a rasterless directory")
	}
	if _, err := LoadAll(filepath.Join(t.TempDir(), "nodir"), false); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestLoadAllBadRaster(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.asc"), []byte("garbage\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAll(dir, false); err == nil {
		t.Error("expected error for an unreadable raster")
	}
}
