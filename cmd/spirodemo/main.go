// Command spirodemo renders families to PNG files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/internal/raster"
)

func main() {
	var (
		family  = flag.String("family", "all", "family to render, or \"all\"")
		presets = flag.String("presets", "", "TOML presets file")
		preset  = flag.String("preset", "", "preset to render instead of family defaults")
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		tick    = flag.Float64("tick", 0, "animation time in seconds")
		output  = flag.String("output", "spiro.png", "output file; with -family all, one file per family")
	)
	flag.Parse()

	jobs, err := plan(*family, *presets, *preset, *output)
	if err != nil {
		log.Fatal(err)
	}

	opts := raster.DefaultOptions()
	opts.Width, opts.Height = *width, *height
	gen := spiro.NewGenerator()
	for _, j := range jobs {
		if err := render(gen, j, *tick, opts); err != nil {
			log.Fatalf("Failed to render %s: %v", j.path, err)
		}
		log.Printf("Frame saved to %s (%dx%d)\n", j.path, *width, *height)
	}
}

type job struct {
	vec  spiro.Vector
	path string
}

// plan resolves the flags into one vector per output file.
func plan(family, presetsPath, preset, output string) ([]job, error) {
	if preset != "" {
		ps, err := loadPresets(presetsPath)
		if err != nil {
			return nil, err
		}
		v, ok := ps[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		return []job{{vec: v, path: output}}, nil
	}

	if family != "all" {
		f, err := spiro.ParseFamily(family)
		if err != nil {
			return nil, err
		}
		return []job{{vec: spiro.DefaultVector(f), path: output}}, nil
	}

	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	jobs := make([]job, 0, len(spiro.Families()))
	for _, f := range spiro.Families() {
		jobs = append(jobs, job{vec: spiro.DefaultVector(f), path: base + "_" + f.String() + ext})
	}
	return jobs, nil
}

func render(gen *spiro.Generator, j job, tick float64, opts raster.Options) error {
	buf, err := gen.Generate(j.vec, spiro.Frame{Tick: tick})
	if err != nil {
		return err
	}
	return raster.Render(buf, opts).SavePNG(j.path)
}

func loadPresets(path string) (spiro.Presets, error) {
	if path == "" {
		return nil, fmt.Errorf("-preset needs -presets")
	}
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return spiro.LoadPresets(f)
}
