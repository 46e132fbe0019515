package main

import (
	"fmt"
	"math"
	"os"

	"rigctl/internal/curve"
	"rigctl/internal/preset"
)

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	} else {
		p, err := preset.DefaultPath()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		path = p
	}

	lib, err := preset.Open(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	names := lib.Names()
	fmt.Printf("Library: %s\n", path)
	fmt.Printf("Presets: %d\n", len(names))

	for _, name := range names {
		records, _ := lib.Get(name)
		fmt.Printf("\n%s: %d shape(s)\n", name, len(records))
		for i, r := range records {
			g := r.Geometry
			fmt.Printf("  Shape[%d]: degree=%d form=%s cvs=%d knots=%d\n",
				i, g.Degree, formName(g.Form), len(g.Points), len(g.Knots))

			minX, minY, minZ := math.Inf(1), math.Inf(1), math.Inf(1)
			maxX, maxY, maxZ := math.Inf(-1), math.Inf(-1), math.Inf(-1)
			for _, p := range g.Points {
				minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
				minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
				minZ, maxZ = math.Min(minZ, p[2]), math.Max(maxZ, p[2])
			}
			fmt.Printf("    BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n",
				minX, maxX, minY, maxY, minZ, maxZ)
		}
	}
}

func formName(f curve.Form) string {
	switch f {
	case curve.Open:
		return "open"
	case curve.Closed:
		return "closed"
	case curve.Periodic:
		return "periodic"
	}
	return fmt.Sprintf("unknown(%d)", f)
}
