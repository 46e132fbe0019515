package rig

import (
	"rigctl/internal/mathutil"
	"rigctl/internal/scene"
)

// TransformShapes rotates and/or scales the control vertices of every curve
// shape of a transform, each shape about its own center, in object space.
// Rotation is in degrees, X-then-Y-then-Z order. Nil arguments skip that
// step; a transform without curve shapes is a no-op.
func TransformShapes(sc *scene.Scene, transform *scene.Node, rotate, scale *mathutil.Vec3) error {
	if rotate == nil && scale == nil {
		return nil
	}
	return sc.Chunk("transformShapes", func() error {
		for _, shape := range sc.CurveShapes(transform) {
			g := shape.Geometry()
			transformPoints(g.Points, rotate, scale)
			if err := sc.SetCurveGeometry(shape, g); err != nil {
				return err
			}
		}
		return nil
	})
}

// TransformShapesOnNodes applies TransformShapes to every node.
func TransformShapesOnNodes(sc *scene.Scene, nodes []*scene.Node, rotate, scale *mathutil.Vec3) error {
	return sc.Chunk("transformShapesOnNodes", func() error {
		for _, n := range nodes {
			if err := TransformShapes(sc, n, rotate, scale); err != nil {
				return err
			}
		}
		return nil
	})
}

func transformPoints(points []mathutil.Vec3, rotate, scale *mathutil.Vec3) {
	center := mathutil.Centroid(points)

	rot := mathutil.Mat3Identity()
	if rotate != nil {
		rot = mathutil.EulerToMat3(
			mathutil.Deg2Rad(rotate[0]),
			mathutil.Deg2Rad(rotate[1]),
			mathutil.Deg2Rad(rotate[2]),
		)
	}
	sc := mathutil.Vec3{1, 1, 1}
	if scale != nil {
		sc = *scale
	}

	for i, p := range points {
		offset := rot.MulVec3(p.Sub(center)).MulElem(sc)
		points[i] = center.Add(offset)
	}
}
