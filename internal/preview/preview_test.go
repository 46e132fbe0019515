package preview

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"rigctl/internal/curve"
	"rigctl/internal/palette"
)

func countOpaque(img *image.NRGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}

func TestRenderCircle(t *testing.T) {
	img := Render([]curve.Record{{Geometry: curve.Circle(1)}}, Options{Size: 64})
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if countOpaque(img) == 0 {
		t.Fatal("render produced an empty image")
	}
	// The circle outline must not cover the center.
	if img.NRGBAAt(32, 32).A != 0 {
		t.Fatal("canvas center should stay transparent for an outline shape")
	}
}

func TestRenderUsesRecordColor(t *testing.T) {
	color := 13 // red
	img := Render([]curve.Record{{Geometry: curve.Circle(1), Color: &color}}, Options{Size: 64, Supersample: 1})
	want := palette.Color(color)
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.NRGBAAt(x, y)
			if px.A == 255 && px.R == want.R && px.G == want.G && px.B == want.B {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("override color not used")
	}
}

func TestRenderEmptyRecords(t *testing.T) {
	img := Render(nil, Options{Size: 32})
	if img.Bounds().Dx() != 32 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if countOpaque(img) != 0 {
		t.Fatal("empty record list should render a blank canvas")
	}
}

func TestEncodeFormats(t *testing.T) {
	img := Render([]curve.Record{{Geometry: curve.Circle(1)}}, Options{Size: 32, Supersample: 1})

	var webp bytes.Buffer
	if err := Encode(&webp, img, FormatWebP); err != nil {
		t.Fatalf("webp: %v", err)
	}
	if webp.Len() == 0 {
		t.Fatal("empty webp output")
	}

	var tgaBuf bytes.Buffer
	if err := Encode(&tgaBuf, img, FormatTGA); err != nil {
		t.Fatalf("tga: %v", err)
	}
	if tgaBuf.Len() == 0 {
		t.Fatal("empty tga output")
	}

	if err := Encode(&bytes.Buffer{}, img, "gif"); err == nil {
		t.Fatal("unknown format accepted")
	}
}

func TestWriteFile(t *testing.T) {
	img := Render([]curve.Record{{Geometry: curve.Circle(1)}}, Options{Size: 32, Supersample: 1})
	path := filepath.Join(t.TempDir(), "circle.webp")
	if err := WriteFile(path, img, FormatWebP); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("output file: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	got, err := LoadOverrides(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil || len(got) != 0 {
		t.Fatalf("missing file: %v, %v", got, err)
	}

	path := filepath.Join(t.TempDir(), "overrides.json")
	if err := os.WriteFile(path, []byte(`{"cube": {"angle": 30, "fill": 0.7}}`), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = LoadOverrides(path)
	if err != nil {
		t.Fatal(err)
	}
	if got["cube"].Angle != 30 || got["cube"].Fill != 0.7 {
		t.Fatalf("overrides %+v", got)
	}
}
