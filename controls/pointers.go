package controls

import "github.com/go-gl/mathgl/mgl32"

// Multi-pointer tracking. The ordered pointer list decides gesture
// classification (contact count, which contacts participate); the position map
// is the last known screen position per identifier. Only the first two tracked
// pointers participate in gestures; later contacts are tracked but ignored
// until one of the first two lifts.

// addPointer appends a pointer identifier to the ordered active set.
// Callers must have checked isTracked first; identifiers are never duplicated.
func (c *orbitControlsImpl) addPointer(id uint32) {
	c.pointers = append(c.pointers, id)
}

// removePointer removes a pointer from the active set and forgets its position.
// Unknown identifiers are ignored.
func (c *orbitControlsImpl) removePointer(id uint32) {
	delete(c.pointerPositions, id)
	for i, tracked := range c.pointers {
		if tracked == id {
			c.pointers = append(c.pointers[:i], c.pointers[i+1:]...)
			return
		}
	}
}

// trackPointer upserts the last known screen position for a pointer.
func (c *orbitControlsImpl) trackPointer(id uint32, x, y float32) {
	c.pointerPositions[id] = mgl32.Vec2{x, y}
}

// isTracked reports whether the identifier is in the active set.
func (c *orbitControlsImpl) isTracked(id uint32) bool {
	for _, tracked := range c.pointers {
		if tracked == id {
			return true
		}
	}
	return false
}

// isPrimaryPair reports whether the identifier is one of the first two tracked
// pointers, the only ones that participate in gestures.
func (c *orbitControlsImpl) isPrimaryPair(id uint32) bool {
	for i, tracked := range c.pointers {
		if i >= 2 {
			return false
		}
		if tracked == id {
			return true
		}
	}
	return false
}

// secondOf returns the position of the other pointer among the first two
// tracked, given one of them. ok is false when fewer than two pointers are
// tracked or the identifier is not among the first two.
func (c *orbitControlsImpl) secondOf(id uint32) (position mgl32.Vec2, ok bool) {
	if len(c.pointers) < 2 {
		return mgl32.Vec2{}, false
	}
	switch id {
	case c.pointers[0]:
		return c.pointerPositions[c.pointers[1]], true
	case c.pointers[1]:
		return c.pointerPositions[c.pointers[0]], true
	default:
		return mgl32.Vec2{}, false
	}
}

// firstTwoPositions returns the positions of the first two tracked pointers.
func (c *orbitControlsImpl) firstTwoPositions() (a, b mgl32.Vec2, ok bool) {
	if len(c.pointers) < 2 {
		return mgl32.Vec2{}, mgl32.Vec2{}, false
	}
	return c.pointerPositions[c.pointers[0]], c.pointerPositions[c.pointers[1]], true
}

// gestureCentroid returns the point gesture deltas are measured from: the
// pointer position itself for a single contact, the midpoint of the first two
// contacts otherwise. With no contacts tracked it returns the zero vector.
func (c *orbitControlsImpl) gestureCentroid() mgl32.Vec2 {
	switch len(c.pointers) {
	case 0:
		return mgl32.Vec2{}
	case 1:
		return c.pointerPositions[c.pointers[0]]
	default:
		a, b, _ := c.firstTwoPositions()
		return a.Add(b).Mul(0.5)
	}
}
