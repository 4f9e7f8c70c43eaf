// Package quatcam provides a 3D camera that stores its orientation as a
// unit quaternion and keeps a view matrix in step with its pose.
//
// The camera looks down -Z with +Y up when unrotated. The view matrix is
// rotation(orientation) * translation(-position), column-major as used by
// OpenGL style pipelines.
package quatcam

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Canonical camera frame: looking down -Z with +Y up.
var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// Camera holds a position and a unit orientation quaternion and keeps a
// view matrix derived from them. Every mutator recomputes the view matrix
// before returning, so ViewMatrix never observes stale state.
//
// A Camera is not safe for concurrent use.
type Camera struct {
	position    mgl64.Vec3
	orientation mgl64.Quat
	viewMatrix  mgl64.Mat4
}

// NewCamera returns a camera at the origin with the identity orientation.
func NewCamera() *Camera {
	return NewCameraWithOrientation(mgl64.Vec3{}, mgl64.QuatIdent())
}

// NewCameraAt returns a camera at pos with the identity orientation.
func NewCameraAt(pos mgl64.Vec3) *Camera {
	return NewCameraWithOrientation(pos, mgl64.QuatIdent())
}

// NewCameraWithOrientation returns a camera at pos with orientation q.
// q does not need to be unit length.
func NewCameraWithOrientation(pos mgl64.Vec3, q mgl64.Quat) *Camera {
	c := &Camera{
		position:    pos,
		orientation: q.Normalize(),
	}
	c.updateViewMatrix()
	return c
}

// NewCameraLookAt returns a camera whose view matrix matches
// mgl64.LookAtV(eye, target, up). up must not be parallel to target-eye.
func NewCameraLookAt(eye, target, up mgl64.Vec3) *Camera {
	c := &Camera{position: eye}
	c.orientation = lookAtQuat(eye, target, up)
	c.updateViewMatrix()
	return c
}

func lookAtQuat(eye, target, up mgl64.Vec3) mgl64.Quat {
	return mgl64.Mat4ToQuat(mgl64.LookAtV(eye, target, up)).Normalize()
}

func (c *Camera) updateViewMatrix() {
	trans := mgl64.Translate3D(-c.position[0], -c.position[1], -c.position[2])
	c.viewMatrix = c.orientation.Mat4().Mul4(trans)
}

// ViewMatrix returns the world to camera transform.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return c.viewMatrix
}

// ViewMatrix32 returns the view matrix converted to float32 for upload to
// a graphics pipeline.
func (c *Camera) ViewMatrix32() mgl32.Mat4 {
	var m mgl32.Mat4
	for i, v := range c.viewMatrix {
		m[i] = float32(v)
	}
	return m
}

// Rotate post-multiplies the orientation by q, so q is expressed relative to
// the current orientation rather than composed in front of it.
func (c *Camera) Rotate(q mgl64.Quat) {
	c.orientation = c.orientation.Mul(q).Normalize()
	c.updateViewMatrix()
}

// RotateAxis rotates by angle radians around axis.
// axis must not be the zero vector.
func (c *Camera) RotateAxis(angle float64, axis mgl64.Vec3) {
	c.Rotate(mgl64.QuatRotate(angle, axis.Normalize()))
}

// RotateEuler rotates by the (pitch, yaw, roll) triple e.
func (c *Camera) RotateEuler(e mgl64.Vec3) {
	c.Rotate(QuatFromEuler(e))
}

// AddPitch rotates around the X axis of the orientation's frame.
func (c *Camera) AddPitch(angle float64) {
	c.RotateAxis(angle, axisX)
}

// AddYaw rotates around the Y axis of the orientation's frame.
func (c *Camera) AddYaw(angle float64) {
	c.RotateAxis(angle, axisY)
}

// AddRoll rotates around the Z axis of the orientation's frame.
func (c *Camera) AddRoll(angle float64) {
	c.RotateAxis(angle, axisZ)
}

// Translate moves the camera by (x, y, z) expressed in its local frame.
func (c *Camera) Translate(x, y, z float64) {
	c.TranslateV(mgl64.Vec3{x, y, z})
}

// TranslateV moves the camera by v expressed in its local frame, so
// TranslateV(Vec3{0, 0, -1}) always steps along Forward.
func (c *Camera) TranslateV(v mgl64.Vec3) {
	c.position = c.position.Add(c.orientation.Conjugate().Rotate(v))
	c.updateViewMatrix()
}

func (c *Camera) Position() mgl64.Vec3 {
	return c.position
}

func (c *Camera) SetPosition(pos mgl64.Vec3) {
	c.position = pos
	c.updateViewMatrix()
}

func (c *Camera) X() float64 { return c.position[0] }
func (c *Camera) Y() float64 { return c.position[1] }
func (c *Camera) Z() float64 { return c.position[2] }

func (c *Camera) SetX(x float64) {
	c.position[0] = x
	c.updateViewMatrix()
}

func (c *Camera) SetY(y float64) {
	c.position[1] = y
	c.updateViewMatrix()
}

func (c *Camera) SetZ(z float64) {
	c.position[2] = z
	c.updateViewMatrix()
}

func (c *Camera) Orientation() mgl64.Quat {
	return c.orientation
}

// SetOrientation replaces the orientation with q normalized.
func (c *Camera) SetOrientation(q mgl64.Quat) {
	c.orientation = q.Normalize()
	c.updateViewMatrix()
}

// EulerAngles decomposes the orientation into (pitch, yaw, roll).
func (c *Camera) EulerAngles() mgl64.Vec3 {
	return EulerFromQuat(c.orientation)
}

// SetEulerAngles rebuilds the orientation from (pitch, yaw, roll).
func (c *Camera) SetEulerAngles(e mgl64.Vec3) {
	c.SetOrientation(QuatFromEuler(e))
}

func (c *Camera) Pitch() float64 { return c.EulerAngles()[0] }
func (c *Camera) Yaw() float64   { return c.EulerAngles()[1] }
func (c *Camera) Roll() float64  { return c.EulerAngles()[2] }

// SetPitch, SetYaw and SetRoll decompose the orientation, replace one angle
// and rebuild it from the full triple. Near pitch = +/-90 degrees the
// decomposition is not unique, so the other two angles may come back with
// a different but equivalent representation.
func (c *Camera) SetPitch(angle float64) { c.setEulerComponent(0, angle) }
func (c *Camera) SetYaw(angle float64)   { c.setEulerComponent(1, angle) }
func (c *Camera) SetRoll(angle float64)  { c.setEulerComponent(2, angle) }

func (c *Camera) setEulerComponent(i int, angle float64) {
	e := c.EulerAngles()
	e[i] = angle
	c.SetEulerAngles(e)
}

// LookAt re-aims the camera at target without moving it.
func (c *Camera) LookAt(target, up mgl64.Vec3) {
	c.orientation = lookAtQuat(c.position, target, up)
	c.updateViewMatrix()
}

// Forward returns the world-space direction the camera looks along.
func (c *Camera) Forward() mgl64.Vec3 {
	return c.orientation.Conjugate().Rotate(mgl64.Vec3{0, 0, -1})
}

func (c *Camera) Right() mgl64.Vec3 {
	return c.orientation.Conjugate().Rotate(axisX)
}

func (c *Camera) Up() mgl64.Vec3 {
	return c.orientation.Conjugate().Rotate(axisY)
}

// Reset moves the camera back to the origin with the identity orientation.
func (c *Camera) Reset() {
	c.position = mgl64.Vec3{}
	c.orientation = mgl64.QuatIdent()
	c.updateViewMatrix()
}

func (c *Camera) String() string {
	e := c.EulerAngles()
	return fmt.Sprintf("pos(%.2f, %.2f, %.2f) pitch %.1f yaw %.1f roll %.1f",
		c.position[0], c.position[1], c.position[2],
		mgl64.RadToDeg(e[0]), mgl64.RadToDeg(e[1]), mgl64.RadToDeg(e[2]))
}
