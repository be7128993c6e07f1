package models

// Formation is a named layout of players. As a playbook entry it is a
// template; inside a play it carries the assigned routes.
type Formation struct {
	Name    FormationName
	Players []Player
}

// NewFormation returns a formation holding the given players.
func NewFormation(name FormationName, players ...Player) Formation {
	f := Formation{Name: name}
	for _, p := range players {
		f.AddPlayer(p)
	}
	return f
}

func (f *Formation) AddPlayer(p Player) {
	f.Players = append(f.Players, p.Clone())
}

func (f Formation) PlayerCount() int {
	return len(f.Players)
}

// Clone returns a deep copy, routes and motions included.
func (f Formation) Clone() Formation {
	c := Formation{Name: f.Name}
	if f.Players != nil {
		c.Players = make([]Player, len(f.Players))
		for i, p := range f.Players {
			c.Players[i] = p.Clone()
		}
	}
	return c
}

// CopyWithoutRoutes instantiates the formation as a template: players keep
// role, color, position, name and number but lose every route and motion.
func (f Formation) CopyWithoutRoutes() Formation {
	c := Formation{Name: f.Name}
	if f.Players != nil {
		c.Players = make([]Player, len(f.Players))
		for i, p := range f.Players {
			c.Players[i] = p.withoutMovement()
		}
	}
	return c
}
