package models

// Path is one segment of a movement. A nil BezierControlPoint means a
// straight segment.
type Path struct {
	Endpoint           Point2D
	BezierControlPoint *Point2D
}

// StraightPath returns a segment ending at endpoint.
func StraightPath(x, y float64) Path {
	return Path{Endpoint: Point2D{X: x, Y: y}}
}

// CurvedPath returns a segment ending at endpoint and bent toward control.
func CurvedPath(endpoint, control Point2D) Path {
	return Path{Endpoint: endpoint, BezierControlPoint: &control}
}

// IsCurved reports whether the segment has a control point.
func (p Path) IsCurved() bool {
	return p.BezierControlPoint != nil
}

// Clone returns a copy that shares no pointers with p.
func (p Path) Clone() Path {
	if p.BezierControlPoint != nil {
		cp := *p.BezierControlPoint
		p.BezierControlPoint = &cp
	}
	return p
}

// Movement is an ordered list of path segments. Routes and motions are both
// movements.
type Movement struct {
	Paths []Path
}

// AddPath appends a segment.
func (m *Movement) AddPath(p Path) {
	m.Paths = append(m.Paths, p)
}

// Len returns the number of segments.
func (m Movement) Len() int {
	return len(m.Paths)
}

// IsEmpty reports whether the movement has no segments.
func (m Movement) IsEmpty() bool {
	return len(m.Paths) == 0
}

// Clear removes all segments.
func (m *Movement) Clear() {
	m.Paths = nil
}

func (m Movement) Clone() Movement {
	if m.Paths == nil {
		return Movement{}
	}
	paths := make([]Path, len(m.Paths))
	for i, p := range m.Paths {
		paths[i] = p.Clone()
	}
	return Movement{Paths: paths}
}

// Motion is a pre-snap movement. EndPoint tracks the endpoint of the last
// segment added.
type Motion struct {
	Movement Movement
	EndPoint Point2D
}

// NewMotion builds a motion from paths, ending where the last path ends.
func NewMotion(paths ...Path) *Motion {
	m := &Motion{}
	for _, p := range paths {
		m.AddPath(p)
	}
	return m
}

// AddPath appends a segment and moves the end point to its endpoint.
func (m *Motion) AddPath(p Path) {
	m.EndPoint = p.Endpoint
	m.Movement.AddPath(p)
}

func (m *Motion) Clone() *Motion {
	if m == nil {
		return nil
	}
	return &Motion{Movement: m.Movement.Clone(), EndPoint: m.EndPoint}
}
