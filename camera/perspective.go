package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

type perspectiveImpl struct {
	cameraBase

	fov    float32
	aspect float32
	near   float32
	far    float32

	projectionMatrix mgl32.Mat4
}

var _ Perspective = &perspectiveImpl{}

// NewPerspective creates a perspective camera with default settings: a 45 degree
// vertical field of view, aspect ratio 1, near plane 0.1, far plane 100, placed
// at (0, 0, 10) looking at the origin with +Y up.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Perspective: the newly created camera
func NewPerspective(options ...CameraOption) Perspective {
	s := defaultSettings()
	for _, option := range options {
		option(&s)
	}
	c := &perspectiveImpl{
		cameraBase: cameraBase{
			mu:         &sync.Mutex{},
			position:   s.position,
			up:         s.up,
			lookTarget: s.lookTarget,
		},
		fov:    s.fov,
		aspect: s.aspect,
		near:   s.near,
		far:    s.far,
	}
	c.updateView()
	c.updateProjection()
	return c
}

func (c *perspectiveImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *perspectiveImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateProjection()
}

func (c *perspectiveImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *perspectiveImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateProjection()
}

func (c *perspectiveImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *perspectiveImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *perspectiveImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *perspectiveImpl) UpdateProjection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateProjection()
}

// updateProjection recomputes the projection matrix. Caller must hold the mutex.
func (c *perspectiveImpl) updateProjection() {
	c.projectionMatrix = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
}

// defaultFov is the default vertical field of view in radians.
const defaultFov = float32(45.0 * (math.Pi / 180.0))
