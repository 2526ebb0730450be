// Package dem loads gridded elevation models as sampling surfaces.
package dem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/maseology/hammer"
	"github.com/maseology/mmio"
)

// LoadAll loads every supported raster found in dir, ordered by filename so
// that first-match surface selection stays deterministic. Supported formats:
// ESRI ASCII (.asc) and goHydro grid definitions (.gdef paired with a .real
// or .bil companion).
func LoadAll(dir string, prnt bool) ([]hammer.Surface, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(" dem.LoadAll: %v", err)
	}
	type job struct{ fp, companion string }
	var jobs []job
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		fp := filepath.Join(dir, de.Name())
		switch strings.ToLower(filepath.Ext(de.Name())) {
		case ".asc":
			jobs = append(jobs, job{fp: fp})
		case ".gdef":
			base := mmio.RemoveExtension(fp)
			for _, x := range []string{".real", ".bil"} {
				if _, ok := mmio.FileExists(base + x); ok {
					jobs = append(jobs, job{fp: fp, companion: base + x})
					break
				}
			}
		}
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf(" dem.LoadAll %s: no .asc or .gdef rasters found", dir)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].fp < jobs[j].fp })

	surfs := make([]hammer.Surface, len(jobs))
	errs := make([]error, len(jobs))
	var wg sync.WaitGroup
	for k, j := range jobs {
		wg.Add(1)
		go func(k int, j job) {
			defer wg.Done()
			if j.companion == "" {
				if g, err := ReadASC(j.fp); err != nil {
					errs[k] = err
				} else {
					surfs[k] = g
				}
			} else {
				if g, err := ReadGDEF(j.fp, j.companion, false); err != nil {
					errs[k] = err
				} else {
					surfs[k] = g
				}
			}
			if prnt && errs[k] == nil {
				fmt.Printf("  %s\n", j.fp)
			}
		}(k, j)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return surfs, nil
}
