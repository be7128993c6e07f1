package engine

import (
	"maps"
	"slices"

	"github.com/obraunsdorf/playbook-creator/src/models"
)

// relationTable stores the many-to-many play/category relation apart from
// the entity maps: play name -> set of category names.
type relationTable map[models.PlayName]map[models.CategoryName]struct{}

// ensure creates an empty set for play if it has none yet.
func (r relationTable) ensure(play models.PlayName) {
	if _, ok := r[play]; !ok {
		r[play] = make(map[models.CategoryName]struct{})
	}
}

// reset replaces any set for play with an empty one.
func (r relationTable) reset(play models.PlayName) {
	r[play] = make(map[models.CategoryName]struct{})
}

func (r relationTable) add(play models.PlayName, category models.CategoryName) {
	r.ensure(play)
	r[play][category] = struct{}{}
}

func (r relationTable) remove(play models.PlayName, category models.CategoryName) {
	if set, ok := r[play]; ok {
		delete(set, category)
	}
}

// dropPlay removes every pair that mentions play.
func (r relationTable) dropPlay(play models.PlayName) {
	delete(r, play)
}

// dropCategory removes every pair that mentions category.
func (r relationTable) dropCategory(category models.CategoryName) {
	for _, set := range r {
		delete(set, category)
	}
}

func (r relationTable) has(play models.PlayName, category models.CategoryName) bool {
	_, ok := r[play][category]
	return ok
}

func (r relationTable) categoriesOf(play models.PlayName) []models.CategoryName {
	set, ok := r[play]
	if !ok {
		return []models.CategoryName{}
	}
	return slices.Sorted(maps.Keys(set))
}

func (r relationTable) playsOf(category models.CategoryName) []models.PlayName {
	plays := []models.PlayName{}
	for play, set := range r {
		if _, ok := set[category]; ok {
			plays = append(plays, play)
		}
	}
	slices.Sort(plays)
	return plays
}
