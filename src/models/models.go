package models

// Category tags a group of plays, e.g. "Pass" or "Red Zone".
// Which plays belong to a category is kept by the playbook, not here.
type Category struct {
	Name CategoryName
}

func NewCategory(name CategoryName) Category {
	return Category{Name: name}
}

// Play is a formation instance with routes and motions assigned per player.
// The play owns its formation by value.
type Play struct {
	// Name is the descriptive name, also the playbook key.
	Name PlayName

	// CodeName is the short name shown on diagrams.
	CodeName string

	Formation Formation

	Comment string
}

// NewPlay wraps formation in a new play. The formation is copied as is; use
// Formation.CopyWithoutRoutes first for a fresh play.
func NewPlay(name PlayName, codeName string, formation Formation) Play {
	return Play{
		Name:      name,
		CodeName:  codeName,
		Formation: formation.Clone(),
	}
}

// PlayerCount returns the number of players in the play's formation.
func (p Play) PlayerCount() int {
	return p.Formation.PlayerCount()
}

// Clone returns a deep copy that shares no storage with p.
func (p Play) Clone() Play {
	p.Formation = p.Formation.Clone()
	return p
}
