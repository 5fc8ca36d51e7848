package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the common interface for cameras a controller can drive.
// A camera owns its world-space position, an up vector fixed at construction,
// and an orientation set by aiming at a point with LookAt. Projection behavior
// is defined by the concrete kind: Perspective or Orthographic.
// Thread-safe for concurrent access.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// SetPosition sets the camera's world-space position directly.
	// The orientation is unchanged until the next LookAt call.
	//
	// Parameters:
	//   - p: world-space coordinates
	SetPosition(p mgl32.Vec3)

	// Up returns the camera's up vector. The up vector is fixed at construction.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// LookAt orients the camera toward a world-space point and recomputes the
	// view matrix and orientation quaternion.
	//
	// Parameters:
	//   - target: world-space point to aim at
	LookAt(target mgl32.Vec3)

	// Quaternion returns the camera's orientation as set by the last LookAt.
	//
	// Returns:
	//   - mgl32.Quat: the orientation quaternion
	Quaternion() mgl32.Quat

	// ViewMatrix returns the current world-to-view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// UpdateProjection recomputes the projection matrix from the camera's
	// current projection parameters. Must be called after any change to those
	// parameters (fov, aspect, frustum bounds, zoom).
	UpdateProjection()
}

// Perspective is a camera with a perspective projection defined by a vertical
// field of view and an aspect ratio. Dolly gestures move a perspective camera
// along its view axis rather than changing a zoom factor.
type Perspective interface {
	Camera

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// SetFov sets the vertical field of view in radians and recomputes the projection.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// SetAspect sets the aspect ratio and recomputes the projection.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32
}

// Orthographic is a camera with an orthographic projection defined by explicit
// frustum bounds and a zoom factor. Dolly gestures change the zoom factor of an
// orthographic camera; moving it along the view axis would not change what it sees.
type Orthographic interface {
	Camera

	// Frustum returns the left, right, top, and bottom frustum bounds at zoom 1.
	//
	// Returns:
	//   - left, right, top, bottom: frustum bounds
	Frustum() (left, right, top, bottom float32)

	// SetFrustum sets the frustum bounds and recomputes the projection.
	//
	// Parameters:
	//   - left, right, top, bottom: frustum bounds at zoom 1
	SetFrustum(left, right, top, bottom float32)

	// Zoom returns the zoom factor. Larger values magnify the view.
	//
	// Returns:
	//   - float32: the zoom factor
	Zoom() float32

	// SetZoom sets the zoom factor. The projection matrix is stale until
	// UpdateProjection is called.
	//
	// Parameters:
	//   - zoom: the zoom factor (must be positive)
	SetZoom(zoom float32)

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32
}

// cameraBase holds the positional state shared by both camera kinds.
// The mutex guards all fields of the embedding struct as well.
type cameraBase struct {
	mu *sync.Mutex

	position   mgl32.Vec3
	up         mgl32.Vec3
	lookTarget mgl32.Vec3

	viewMatrix  mgl32.Mat4
	orientation mgl32.Quat
}

func (c *cameraBase) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraBase) SetPosition(p mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
}

func (c *cameraBase) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraBase) LookAt(target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookTarget = target
	c.updateView()
}

func (c *cameraBase) Quaternion() mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orientation
}

func (c *cameraBase) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

// updateView recomputes the view matrix and orientation from position,
// look target, and up. Caller must hold the mutex.
func (c *cameraBase) updateView() {
	c.viewMatrix = mgl32.LookAtV(c.position, c.lookTarget, c.up)
	c.orientation = mgl32.QuatLookAtV(c.position, c.lookTarget, c.up)
}
