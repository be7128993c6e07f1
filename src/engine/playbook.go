package engine

import (
	"maps"
	"slices"

	"github.com/obraunsdorf/playbook-creator/src/helpers"
	"github.com/obraunsdorf/playbook-creator/src/models"
	"github.com/obraunsdorf/playbook-creator/src/pbcerrors"
)

// BuildVersion is recorded in every playbook created by this build.
var BuildVersion = "0.1.0"

// Playbook is the document: formations, routes, categories and plays keyed
// by name, plus the play/category relation.
//
// Every getter returns a deep copy; the playbook is the only writer of its
// entities. Playbook is not safe for concurrent use, access it through a
// directors.SessionManager.
type Playbook struct {
	// ID identifies this document; it changes on Reset.
	ID string

	// BuiltWithVersion is the BuildVersion that created the document.
	BuiltWithVersion string

	Name string

	playerNumber int

	formations map[models.FormationName]models.Formation
	routes     map[models.RouteName]models.Route
	categories map[models.CategoryName]models.Category
	plays      map[models.PlayName]models.Play

	playCategories relationTable
}

// NewPlaybook returns a playbook seeded with the default routes and the
// default formation for playerNumber players.
func NewPlaybook(name string, playerNumber int) *Playbook {
	pb := &Playbook{}
	pb.Reset(name, playerNumber)
	return pb
}

// Reset empties the document and seeds it again, as if freshly created.
func (pb *Playbook) Reset(name string, playerNumber int) {
	pb.ID = helpers.GenerateUUID()
	pb.BuiltWithVersion = BuildVersion
	pb.Name = name
	pb.playerNumber = playerNumber
	pb.formations = make(map[models.FormationName]models.Formation)
	pb.routes = make(map[models.RouteName]models.Route)
	pb.categories = make(map[models.CategoryName]models.Category)
	pb.plays = make(map[models.PlayName]models.Play)
	pb.playCategories = make(relationTable)

	pb.populateDefaults()
}

// populateDefaults never overwrites an entity that is already present.
func (pb *Playbook) populateDefaults() {
	for _, route := range DefaultRoutes() {
		pb.AddRoute(route, false)
	}
	pb.ReloadDefaultFormations()
}

// ReloadDefaultFormations adds the default formation back if it is missing.
func (pb *Playbook) ReloadDefaultFormations() {
	pb.AddFormation(DefaultFormation(pb.playerNumber), false)
}

// PlayerNumber is the number of players per side the document was made for.
func (pb *Playbook) PlayerNumber() int {
	return pb.playerNumber
}

// insert stores value under key. Without overwrite an existing key is left
// alone and false is returned.
func insert[K comparable, V any](m map[K]V, key K, value V, overwrite bool) bool {
	if _, exists := m[key]; exists && !overwrite {
		return false
	}
	m[key] = value
	return true
}

// ------------------------------------------- formations -------------------------------------------

// AddFormation stores formation under its name. It returns false, without
// touching the store, when the name is taken and overwrite is false.
func (pb *Playbook) AddFormation(formation models.Formation, overwrite bool) bool {
	return insert(pb.formations, formation.Name, formation.Clone(), overwrite)
}

func (pb *Playbook) GetFormation(name models.FormationName) (models.Formation, error) {
	formation, exists := pb.formations[name]
	if !exists {
		return models.Formation{}, pbcerrors.NotFound("Formation", name.String())
	}
	return formation.Clone(), nil
}

func (pb *Playbook) HasFormation(name models.FormationName) bool {
	_, exists := pb.formations[name]
	return exists
}

// DeleteFormation removes the formation. Plays keep their own copy.
func (pb *Playbook) DeleteFormation(name models.FormationName) {
	delete(pb.formations, name)
}

func (pb *Playbook) FormationNames() []models.FormationName {
	return slices.Sorted(maps.Keys(pb.formations))
}

func (pb *Playbook) Formations() []models.Formation {
	formations := make([]models.Formation, 0, len(pb.formations))
	for _, name := range pb.FormationNames() {
		formations = append(formations, pb.formations[name].Clone())
	}
	return formations
}

// ------------------------------------------- routes -------------------------------------------

func (pb *Playbook) AddRoute(route models.Route, overwrite bool) bool {
	return insert(pb.routes, route.Name, route.Clone(), overwrite)
}

func (pb *Playbook) GetRoute(name models.RouteName) (models.Route, error) {
	route, exists := pb.routes[name]
	if !exists {
		return models.Route{}, pbcerrors.NotFound("Route", name.String())
	}
	return route.Clone(), nil
}

func (pb *Playbook) HasRoute(name models.RouteName) bool {
	_, exists := pb.routes[name]
	return exists
}

// DeleteRoute removes the route from the library. Players that were
// assigned the route keep their copy.
func (pb *Playbook) DeleteRoute(name models.RouteName) {
	delete(pb.routes, name)
}

func (pb *Playbook) RouteNames() []models.RouteName {
	return slices.Sorted(maps.Keys(pb.routes))
}

func (pb *Playbook) Routes() []models.Route {
	routes := make([]models.Route, 0, len(pb.routes))
	for _, name := range pb.RouteNames() {
		routes = append(routes, pb.routes[name].Clone())
	}
	return routes
}

// ------------------------------------------- categories -------------------------------------------

func (pb *Playbook) AddCategory(category models.Category, overwrite bool) bool {
	return insert(pb.categories, category.Name, category, overwrite)
}

func (pb *Playbook) GetCategory(name models.CategoryName) (models.Category, error) {
	category, exists := pb.categories[name]
	if !exists {
		return models.Category{}, pbcerrors.NotFound("Category", name.String())
	}
	return category, nil
}

func (pb *Playbook) HasCategory(name models.CategoryName) bool {
	_, exists := pb.categories[name]
	return exists
}

// DeleteCategory removes the category and every play association with it.
func (pb *Playbook) DeleteCategory(name models.CategoryName) {
	pb.playCategories.dropCategory(name)
	delete(pb.categories, name)
}

func (pb *Playbook) CategoryNames() []models.CategoryName {
	return slices.Sorted(maps.Keys(pb.categories))
}

func (pb *Playbook) Categories() []models.Category {
	categories := make([]models.Category, 0, len(pb.categories))
	for _, name := range pb.CategoryNames() {
		categories = append(categories, pb.categories[name])
	}
	return categories
}

// ------------------------------------------- plays -------------------------------------------

// AddPlay stores play under its name. Overwriting keeps the categories the
// play already had; adding a new name starts it with none.
func (pb *Playbook) AddPlay(play models.Play, overwrite bool) bool {
	_, existed := pb.plays[play.Name]
	if !insert(pb.plays, play.Name, play.Clone(), overwrite) {
		return false
	}
	if existed {
		pb.playCategories.ensure(play.Name)
	} else {
		pb.playCategories.reset(play.Name)
	}
	return true
}

func (pb *Playbook) GetPlay(name models.PlayName) (models.Play, error) {
	play, exists := pb.plays[name]
	if !exists {
		return models.Play{}, pbcerrors.NotFound("Play", name.String())
	}
	return play.Clone(), nil
}

func (pb *Playbook) HasPlay(name models.PlayName) bool {
	_, exists := pb.plays[name]
	return exists
}

// DeletePlay removes the play and all of its category associations.
func (pb *Playbook) DeletePlay(name models.PlayName) {
	delete(pb.plays, name)
	pb.playCategories.dropPlay(name)
}

func (pb *Playbook) PlayNames() []models.PlayName {
	return slices.Sorted(maps.Keys(pb.plays))
}

func (pb *Playbook) Plays() []models.Play {
	plays := make([]models.Play, 0, len(pb.plays))
	for _, name := range pb.PlayNames() {
		plays = append(plays, pb.plays[name].Clone())
	}
	return plays
}

// ------------------------------------------- play/category relation -------------------------------------------

// AddPlayToCategory associates an existing play with an existing category.
// Associating the same pair again changes nothing.
func (pb *Playbook) AddPlayToCategory(play models.PlayName, category models.CategoryName) error {
	if !pb.HasPlay(play) {
		return pbcerrors.NotFound("Play", play.String())
	}
	if !pb.HasCategory(category) {
		return pbcerrors.NotFound("Category", category.String())
	}
	pb.playCategories.add(play, category)
	return nil
}

// RemovePlayFromCategory drops the pair if present.
func (pb *Playbook) RemovePlayFromCategory(play models.PlayName, category models.CategoryName) {
	pb.playCategories.remove(play, category)
}

// IsPlayInCategory reports whether the pair is associated.
func (pb *Playbook) IsPlayInCategory(play models.PlayName, category models.CategoryName) bool {
	return pb.playCategories.has(play, category)
}

// CategoriesOfPlay lists the play's categories; unknown plays have none.
func (pb *Playbook) CategoriesOfPlay(play models.PlayName) []models.CategoryName {
	return pb.playCategories.categoriesOf(play)
}

// PlaysInCategory lists the category's plays; unknown categories have none.
func (pb *Playbook) PlaysInCategory(category models.CategoryName) []models.PlayName {
	return pb.playCategories.playsOf(category)
}
