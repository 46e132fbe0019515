package mathutil

import "math"

// EulerToMat3 converts Euler angles (radians, X-then-Y-then-Z rotate order)
// to a rotation matrix, going through the quaternion form.
func EulerToMat3(rx, ry, rz float64) Mat3 {
	return QuatToMat3(EulerToQuat(rx, ry, rz))
}

// Mat3ToEuler extracts Euler angles (radians, X-then-Y-then-Z rotate order)
// from a rotation matrix. Inverse of EulerToMat3 up to angle wrapping; at
// gimbal lock (|sin ry| = 1) rz is fixed to 0.
func Mat3ToEuler(m Mat3) (rx, ry, rz float64) {
	sy := -m[6]
	if sy > 1 {
		sy = 1
	} else if sy < -1 {
		sy = -1
	}
	ry = math.Asin(sy)

	if math.Abs(sy) > 1-1e-9 {
		// cy ~ 0: rx and rz share an axis
		rx = math.Atan2(sy*m[1], sy*m[2])
		rz = 0
		return rx, ry, rz
	}

	rx = math.Atan2(m[7], m[8])
	rz = math.Atan2(m[3], m[0])
	return rx, ry, rz
}

// ComposeTRS builds a local affine matrix from translation, Euler rotation
// (radians) and scale: M = T · R · S.
func ComposeTRS(t, r, s Vec3) Mat4 {
	rot := EulerToMat3(r[0], r[1], r[2])
	m3 := Mat3Mul(rot, Mat3Diag(s[0], s[1], s[2]))
	return FromMat3Translation(m3, t)
}

// DecomposeTRS splits an affine matrix into translation, Euler rotation
// (radians) and scale. Negative determinants fold into the X scale.
func DecomposeTRS(m Mat4) (t, r, s Vec3) {
	t = m.Translation()
	m3 := m.Mat3()

	for j := 0; j < 3; j++ {
		s[j] = m3.Col(j).Len()
	}
	if m3.Det() < 0 {
		s[0] = -s[0]
	}

	rot := m3
	for j := 0; j < 3; j++ {
		if s[j] == 0 {
			continue
		}
		rot[j] /= s[j]
		rot[3+j] /= s[j]
		rot[6+j] /= s[j]
	}

	rx, ry, rz := Mat3ToEuler(rot)
	return t, Vec3{rx, ry, rz}, s
}
