package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/internal/raster"
)

func TestPlan(t *testing.T) {
	jobs, err := plan("all", "", "", "out/frame.png")
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != len(spiro.Families()) {
		t.Fatalf("got %d jobs", len(jobs))
	}
	if jobs[5].path != "out/frame_nodal.png" || jobs[5].vec.Family != spiro.Nodal {
		t.Errorf("nodal job = %+v", jobs[5])
	}

	jobs, err = plan("Compound3D", "", "", "c.png")
	if err != nil || len(jobs) != 1 || jobs[0].vec.Family != spiro.Compound3D {
		t.Errorf("single family plan = %+v, %v", jobs, err)
	}

	if _, err := plan("lissajous", "", "", "x.png"); err == nil {
		t.Error("unknown family should fail")
	}
	if _, err := plan("all", "", "rose", "x.png"); err == nil {
		t.Error("preset without a presets file should fail")
	}
}

func TestPlan_Preset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.toml")
	if err := os.WriteFile(path, []byte("[presets.rose]\nfamily = \"spirograph\"\nparams = { d = 95.0 }\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	jobs, err := plan("all", path, "rose", "rose.png")
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 || jobs[0].vec.PenOffset != 95 {
		t.Errorf("jobs = %+v", jobs)
	}
}

func TestRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "wire.png")
	opts := raster.DefaultOptions()
	opts.Width, opts.Height = 50, 40

	j := job{vec: spiro.DefaultVector(spiro.Wireframe3D), path: out}
	if err := render(spiro.NewGenerator(), j, 0.5, opts); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 40 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}
