package quatcam

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// poleEpsilon is how small cos(pitch) must get before the decomposition
// treats the rotation as sitting on a gimbal pole.
const poleEpsilon = 1e-12

// QuatFromEuler builds the rotation for the (pitch, yaw, roll) triple e,
// where pitch turns about X, yaw about Y and roll about Z. The result is
// qY(yaw) * qX(pitch) * qZ(roll).
func QuatFromEuler(e mgl64.Vec3) mgl64.Quat {
	qx := mgl64.QuatRotate(e[0], axisX)
	qy := mgl64.QuatRotate(e[1], axisY)
	qz := mgl64.QuatRotate(e[2], axisZ)
	return qy.Mul(qx).Mul(qz)
}

// EulerFromQuat is the inverse of QuatFromEuler. Pitch is recovered through
// asin and lies in [-pi/2, pi/2]; yaw and roll lie in (-pi, pi]. At the
// poles yaw and roll share one degree of freedom, so roll is reported as
// zero and yaw carries the whole turn.
func EulerFromQuat(q mgl64.Quat) mgl64.Vec3 {
	w, x, y, z := q.W, q.V[0], q.V[1], q.V[2]

	sinPitch := mgl64.Clamp(2*(w*x-y*z), -1, 1)
	pitch := math.Asin(sinPitch)

	ry := 2 * (x*y + w*z)
	rx := w*w - x*x + y*y - z*z
	if math.Hypot(ry, rx) < poleEpsilon {
		yy := math.Copysign(1, sinPitch) * 2 * (x*y - w*z)
		yx := w*w + x*x - y*y - z*z
		return mgl64.Vec3{pitch, math.Atan2(yy, yx), 0}
	}

	yaw := math.Atan2(2*(x*z+w*y), w*w-x*x-y*y+z*z)
	roll := math.Atan2(ry, rx)
	return mgl64.Vec3{pitch, yaw, roll}
}
