package models

// Route is a named, reusable movement a player can run.
type Route struct {
	Name     RouteName
	CodeName string
	Movement Movement
}

// NewRoute builds a route from its path segments.
func NewRoute(name RouteName, codeName string, paths ...Path) Route {
	r := Route{Name: name, CodeName: codeName}
	for _, p := range paths {
		r.Movement.AddPath(p.Clone())
	}
	return r
}

// AddPath appends a segment to the route.
func (r *Route) AddPath(p Path) {
	r.Movement.AddPath(p)
}

// Paths returns the route's segments.
func (r Route) Paths() []Path {
	return r.Movement.Paths
}

func (r Route) Clone() Route {
	r.Movement = r.Movement.Clone()
	return r
}

func cloneRoutePtr(r *Route) *Route {
	if r == nil {
		return nil
	}
	c := r.Clone()
	return &c
}
