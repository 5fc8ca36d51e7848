package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func almostEqual(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestNewPerspectiveDefaults(t *testing.T) {
	cam := NewPerspective()

	if got := cam.Position(); got != (mgl32.Vec3{0, 0, 10}) {
		t.Errorf("Position() = %v, want (0, 0, 10)", got)
	}
	if got := cam.Up(); got != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Up() = %v, want (0, 1, 0)", got)
	}
	if got := cam.Fov(); !almostEqual(got, float32(45*math.Pi/180), 1e-5) {
		t.Errorf("Fov() = %v, want 45 degrees in radians", got)
	}

	want := mgl32.Perspective(cam.Fov(), 1, 0.1, 100)
	if got := cam.ProjectionMatrix(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("ProjectionMatrix() = %v, want %v", got, want)
	}
}

func TestPerspectiveOptions(t *testing.T) {
	cam := NewPerspective(
		WithPosition(mgl32.Vec3{1, 2, 3}),
		WithFov(math.Pi/3),
		WithAspect(16.0/9.0),
		WithNear(0.5),
		WithFar(500),
	)

	if got := cam.Position(); got != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Position() = %v, want (1, 2, 3)", got)
	}
	want := mgl32.Perspective(math.Pi/3, 16.0/9.0, 0.5, 500)
	if got := cam.ProjectionMatrix(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("ProjectionMatrix() = %v, want %v", got, want)
	}
}

func TestSetAspectRecomputesProjection(t *testing.T) {
	cam := NewPerspective()
	cam.SetAspect(2)

	want := mgl32.Perspective(cam.Fov(), 2, 0.1, 100)
	if got := cam.ProjectionMatrix(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("ProjectionMatrix() after SetAspect = %v, want %v", got, want)
	}
}

func TestLookAtViewMatrixAndOrientation(t *testing.T) {
	cam := NewPerspective(WithPosition(mgl32.Vec3{0, 0, 10}))
	cam.LookAt(mgl32.Vec3{0, 0, 0})

	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	if got := cam.ViewMatrix(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("ViewMatrix() = %v, want %v", got, want)
	}

	// The orientation quaternion must rotate the forward axis onto the
	// direction from the camera to its look target.
	forward := cam.Quaternion().Rotate(mgl32.Vec3{0, 0, -1})
	if !almostEqual(forward.X(), 0, 1e-5) || !almostEqual(forward.Y(), 0, 1e-5) || !almostEqual(forward.Z(), -1, 1e-5) {
		t.Errorf("rotated forward axis = %v, want (0, 0, -1)", forward)
	}
}

func TestSetPositionKeepsOrientationUntilLookAt(t *testing.T) {
	cam := NewPerspective()
	before := cam.ViewMatrix()

	cam.SetPosition(mgl32.Vec3{5, 0, 5})
	if got := cam.ViewMatrix(); !got.ApproxEqualThreshold(before, 1e-6) {
		t.Error("SetPosition alone recomputed the view matrix")
	}

	cam.LookAt(mgl32.Vec3{0, 0, 0})
	want := mgl32.LookAtV(mgl32.Vec3{5, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	if got := cam.ViewMatrix(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("ViewMatrix() after LookAt = %v, want %v", got, want)
	}
}

func TestNewOrthographicDefaults(t *testing.T) {
	cam := NewOrthographic()

	left, right, top, bottom := cam.Frustum()
	if left != -1 || right != 1 || top != 1 || bottom != -1 {
		t.Errorf("Frustum() = %v %v %v %v, want -1 1 1 -1", left, right, top, bottom)
	}
	if got := cam.Zoom(); got != 1 {
		t.Errorf("Zoom() = %v, want 1", got)
	}

	want := mgl32.Ortho(-1, 1, -1, 1, 0.1, 100)
	if got := cam.ProjectionMatrix(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("ProjectionMatrix() = %v, want %v", got, want)
	}
}

func TestOrthographicZoomScalesFrustum(t *testing.T) {
	cam := NewOrthographic(WithFrustum(-4, 4, 2, -2))

	cam.SetZoom(2)
	// SetZoom leaves the projection stale until UpdateProjection.
	stale := mgl32.Ortho(-4, 4, -2, 2, 0.1, 100)
	if got := cam.ProjectionMatrix(); !got.ApproxEqualThreshold(stale, 1e-5) {
		t.Error("SetZoom recomputed the projection before UpdateProjection")
	}

	cam.UpdateProjection()
	want := mgl32.Ortho(-2, 2, -1, 1, 0.1, 100)
	if got := cam.ProjectionMatrix(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("ProjectionMatrix() at zoom 2 = %v, want %v", got, want)
	}
}

func TestOrthographicZoomKeepsFrustumCenter(t *testing.T) {
	// An off-center frustum must scale around its own center, not the origin.
	cam := NewOrthographic(WithFrustum(0, 4, 4, 0), WithZoom(2))

	want := mgl32.Ortho(1, 3, 1, 3, 0.1, 100)
	if got := cam.ProjectionMatrix(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("ProjectionMatrix() = %v, want %v", got, want)
	}
}

func TestSetFrustumRecomputesProjection(t *testing.T) {
	cam := NewOrthographic()
	cam.SetFrustum(-8, 8, 6, -6)

	want := mgl32.Ortho(-8, 8, -6, 6, 0.1, 100)
	if got := cam.ProjectionMatrix(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("ProjectionMatrix() = %v, want %v", got, want)
	}
}
