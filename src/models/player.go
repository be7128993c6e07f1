package models

import "github.com/obraunsdorf/playbook-creator/src/pbcerrors"

// Player is one position inside a formation. Route assignments are copies,
// never shared with the playbook's route library.
type Player struct {
	Role              Role
	Color             Color
	Pos               Point2D
	Route             *Route
	OptionRoutes      []Route
	AlternativeRoute1 *Route
	AlternativeRoute2 *Route
	Motion            *Motion
	Name              string
	Nr                uint32
}

// NewPlayer returns an unnamed player without routes.
func NewPlayer(role Role, color Color, pos Point2D) Player {
	return Player{Role: role, Color: color, Pos: pos}
}

// NewNamedPlayer returns a player with a name and jersey number.
func NewNamedPlayer(role Role, color Color, pos Point2D, name string, nr uint32) Player {
	return Player{Role: role, Color: color, Pos: pos, Name: name, Nr: nr}
}

func (p *Player) SetRoute(r Route) {
	c := r.Clone()
	p.Route = &c
}

func (p *Player) ResetRoute() {
	p.Route = nil
}

func (p *Player) AddOptionRoute(r Route) {
	p.OptionRoutes = append(p.OptionRoutes, r.Clone())
}

func (p *Player) ResetOptionRoutes() {
	p.OptionRoutes = nil
}

// SetAlternativeRoute stores r in slot 1 or 2. Any other version is
// rejected with ErrInvalidInput and leaves the player unchanged.
func (p *Player) SetAlternativeRoute(version int, r Route) error {
	c := r.Clone()
	switch version {
	case 1:
		p.AlternativeRoute1 = &c
	case 2:
		p.AlternativeRoute2 = &c
	default:
		return pbcerrors.InvalidInput("alternative route version must be 1 or 2, got %d", version)
	}
	return nil
}

// AlternativeRoute returns the route in slot version, if any. Versions other
// than 1 and 2 read as empty.
func (p Player) AlternativeRoute(version int) (Route, bool) {
	var r *Route
	switch version {
	case 1:
		r = p.AlternativeRoute1
	case 2:
		r = p.AlternativeRoute2
	}
	if r == nil {
		return Route{}, false
	}
	return r.Clone(), true
}

// ResetAlternativeRoute clears slot 1 or 2. Any other version is rejected
// with ErrInvalidInput.
func (p *Player) ResetAlternativeRoute(version int) error {
	switch version {
	case 1:
		p.AlternativeRoute1 = nil
	case 2:
		p.AlternativeRoute2 = nil
	default:
		return pbcerrors.InvalidInput("alternative route version must be 1 or 2, got %d", version)
	}
	return nil
}

func (p *Player) SetMotion(m Motion) {
	p.Motion = m.Clone()
}

func (p *Player) ResetMotion() {
	p.Motion = nil
}

// HasMovement reports whether any route or motion is assigned.
func (p Player) HasMovement() bool {
	return p.Route != nil || len(p.OptionRoutes) > 0 ||
		p.AlternativeRoute1 != nil || p.AlternativeRoute2 != nil || p.Motion != nil
}

// Clone returns a deep copy of the player.
func (p Player) Clone() Player {
	c := p
	c.Route = cloneRoutePtr(p.Route)
	c.AlternativeRoute1 = cloneRoutePtr(p.AlternativeRoute1)
	c.AlternativeRoute2 = cloneRoutePtr(p.AlternativeRoute2)
	c.Motion = p.Motion.Clone()
	if p.OptionRoutes != nil {
		c.OptionRoutes = make([]Route, len(p.OptionRoutes))
		for i, r := range p.OptionRoutes {
			c.OptionRoutes[i] = r.Clone()
		}
	}
	return c
}

// withoutMovement keeps role, color, position, name and number only.
func (p Player) withoutMovement() Player {
	return NewNamedPlayer(p.Role, p.Color, p.Pos, p.Name, p.Nr)
}
