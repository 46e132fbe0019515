// Package preview rasterizes preset curve shapes into square thumbnails
// for a shape-library browser.
package preview

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"rigctl/internal/curve"
	"rigctl/internal/mathutil"
	"rigctl/internal/palette"
)

const (
	DefaultSize        = 256
	DefaultSupersample = 2
	DefaultFillRatio   = 0.85
)

// Options controls one thumbnail render.
type Options struct {
	Size        int     // output edge length in pixels
	Supersample int     // raster at Size*Supersample, then downsample
	Angle       float64 // view-plane rotation in degrees
	Fill        float64 // portion of the canvas the shape may occupy
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	if o.Supersample <= 0 {
		o.Supersample = DefaultSupersample
	}
	if o.Fill <= 0 || o.Fill > 1 {
		o.Fill = DefaultFillRatio
	}
	return o
}

// Render draws the records' curves onto a transparent canvas. Control
// shapes live in the YZ plane (controls face +X), so the projection maps
// world Y right and world Z up. Records with a color override use their
// palette color, the rest the default control color.
func Render(records []curve.Record, opts Options) *image.NRGBA {
	opts = opts.withDefaults()

	lines := make([][][2]float64, 0, len(records))
	colors := make([]color.NRGBA, 0, len(records))
	for _, rec := range records {
		samples := sampleCount(rec.Geometry)
		points := rec.Sample(samples)
		if rec.Form.IsPeriodic() {
			points = append(points, points[0]) // close the drawn loop
		}
		lines = append(lines, project(points, opts.Angle))

		c := palette.DefaultColor
		if rec.Color != nil {
			c = palette.Color(*rec.Color)
		}
		colors = append(colors, c)
	}

	big := opts.Size * opts.Supersample
	canvas := image.NewNRGBA(image.Rect(0, 0, big, big))

	minU, minV, maxU, maxV := bounds(lines)
	w, h := maxU-minU, maxV-minV
	if w <= 0 && h <= 0 {
		return downsample(canvas, opts.Size)
	}
	extent := math.Max(w, h)
	scale := float64(big) * opts.Fill / extent
	// Center of the shape lands on the canvas center.
	cu, cv := (minU+maxU)/2, (minV+maxV)/2
	offset := float64(big) / 2

	width := float64(opts.Supersample)
	for i, line := range lines {
		for j := 1; j < len(line); j++ {
			x0 := (line[j-1][0]-cu)*scale + offset
			y0 := (line[j-1][1]-cv)*scale + offset
			x1 := (line[j][0]-cu)*scale + offset
			y1 := (line[j][1]-cv)*scale + offset
			strokeSegment(canvas, x0, y0, x1, y1, width, colors[i])
		}
	}

	return downsample(canvas, opts.Size)
}

// sampleCount picks a polyline density: linear curves only need their
// control points, smooth curves get a fixed number of samples per span.
func sampleCount(g curve.Geometry) int {
	if g.Degree == 1 {
		return len(g.Points)*2 + 1
	}
	n := len(g.Points) * 16
	if n < 64 {
		n = 64
	}
	return n
}

// project drops the X axis and applies the view-plane rotation. Image V
// grows downward, world Z up, hence the sign flip.
func project(points []mathutil.Vec3, angleDeg float64) [][2]float64 {
	sin, cos := math.Sincos(mathutil.Deg2Rad(angleDeg))
	out := make([][2]float64, len(points))
	for i, p := range points {
		u, v := p[1], -p[2]
		out[i] = [2]float64{u*cos - v*sin, u*sin + v*cos}
	}
	return out
}

func bounds(lines [][][2]float64) (minU, minV, maxU, maxV float64) {
	minU, minV = math.Inf(1), math.Inf(1)
	maxU, maxV = math.Inf(-1), math.Inf(-1)
	for _, line := range lines {
		for _, p := range line {
			minU = math.Min(minU, p[0])
			maxU = math.Max(maxU, p[0])
			minV = math.Min(minV, p[1])
			maxV = math.Max(maxV, p[1])
		}
	}
	return minU, minV, maxU, maxV
}

// strokeSegment plots a line segment as a run of filled discs.
func strokeSegment(img *image.NRGBA, x0, y0, x1, y1, width float64, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	dist := math.Hypot(dx, dy)
	steps := int(dist) + 1
	r := width / 2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		plotDisc(img, x0+dx*t, y0+dy*t, r, c)
	}
}

func plotDisc(img *image.NRGBA, cx, cy, r float64, c color.NRGBA) {
	x0, x1 := int(cx-r), int(cx+r)+1
	y0, y1 := int(cy-r), int(cy+r)+1
	b := img.Bounds()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
				continue
			}
			if math.Hypot(float64(x)-cx, float64(y)-cy) > r+0.5 {
				continue
			}
			img.SetNRGBA(x, y, c)
		}
	}
}

// downsample scales the supersampled canvas to the final size.
func downsample(img *image.NRGBA, size int) *image.NRGBA {
	if img.Bounds().Dx() == size {
		return img
	}
	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return out
}
