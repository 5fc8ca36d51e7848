package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

type orthographicImpl struct {
	cameraBase

	left   float32
	right  float32
	top    float32
	bottom float32
	near   float32
	far    float32
	zoom   float32

	projectionMatrix mgl32.Mat4
}

var _ Orthographic = &orthographicImpl{}

// NewOrthographic creates an orthographic camera with default settings: a
// symmetric [-1, 1] x [-1, 1] frustum, zoom 1, near plane 0.1, far plane 100,
// placed at (0, 0, 10) looking at the origin with +Y up.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Orthographic: the newly created camera
func NewOrthographic(options ...CameraOption) Orthographic {
	s := defaultSettings()
	for _, option := range options {
		option(&s)
	}
	c := &orthographicImpl{
		cameraBase: cameraBase{
			mu:         &sync.Mutex{},
			position:   s.position,
			up:         s.up,
			lookTarget: s.lookTarget,
		},
		left:   s.left,
		right:  s.right,
		top:    s.top,
		bottom: s.bottom,
		near:   s.near,
		far:    s.far,
		zoom:   s.zoom,
	}
	c.updateView()
	c.updateProjection()
	return c
}

func (c *orthographicImpl) Frustum() (left, right, top, bottom float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left, c.right, c.top, c.bottom
}

func (c *orthographicImpl) SetFrustum(left, right, top, bottom float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left, c.right, c.top, c.bottom = left, right, top, bottom
	c.updateProjection()
}

func (c *orthographicImpl) Zoom() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *orthographicImpl) SetZoom(zoom float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = zoom
}

func (c *orthographicImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *orthographicImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *orthographicImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *orthographicImpl) UpdateProjection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateProjection()
}

// updateProjection recomputes the projection matrix, scaling the frustum extents
// around their center by the zoom factor. Caller must hold the mutex.
func (c *orthographicImpl) updateProjection() {
	dx := (c.right - c.left) / (2 * c.zoom)
	dy := (c.top - c.bottom) / (2 * c.zoom)
	cx := (c.right + c.left) / 2
	cy := (c.top + c.bottom) / 2
	c.projectionMatrix = mgl32.Ortho(cx-dx, cx+dx, cy-dy, cy+dy, c.near, c.far)
}
