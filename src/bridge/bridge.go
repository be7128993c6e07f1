// Package bridge is the host-facing surface of the edit session. Every call
// runs as one unit of work on a directors.SessionManager and returns
// transfer records, never live playbook values.
package bridge

import (
	"github.com/obraunsdorf/playbook-creator/src/directors"
	"github.com/obraunsdorf/playbook-creator/src/models"
	"github.com/obraunsdorf/playbook-creator/src/pbcerrors"
)

// read runs a lookup that cannot fail.
func read[T any](sm *directors.SessionManager, fn func(c *directors.Controller) T) T {
	result, _ := directors.Query(sm, func(c *directors.Controller) (T, error) {
		return fn(c), nil
	})
	return result
}

// ------------------------------------------- playbook -------------------------------------------

func GetPlaybookInfo(sm *directors.SessionManager) PlaybookInfo {
	return read(sm, func(c *directors.Controller) PlaybookInfo {
		return newPlaybookInfo(c.Playbook())
	})
}

func SetPlaybookName(sm *directors.SessionManager, name string) {
	_ = sm.Do(func(c *directors.Controller) error {
		c.Playbook().Name = name
		return nil
	})
}

// ResetPlaybook replaces the document with a freshly seeded one and drops
// the draft.
func ResetPlaybook(sm *directors.SessionManager, name string, playerNumber int) error {
	if playerNumber < 1 {
		return pbcerrors.InvalidInput("player number must be positive, got %d", playerNumber)
	}
	return sm.Do(func(c *directors.Controller) error {
		c.ResetPlaybook(name, playerNumber)
		return nil
	})
}

// ------------------------------------------- plays -------------------------------------------

func ListPlays(sm *directors.SessionManager) []PlayInfo {
	return read(sm, func(c *directors.Controller) []PlayInfo {
		pb := c.Playbook()
		plays := pb.Plays()
		infos := make([]PlayInfo, 0, len(plays))
		for _, p := range plays {
			infos = append(infos, newPlayInfo(pb, p))
		}
		return infos
	})
}

func GetPlay(sm *directors.SessionManager, name string) (PlayInfo, error) {
	return directors.Query(sm, func(c *directors.Controller) (PlayInfo, error) {
		play, err := c.Playbook().GetPlay(models.PlayName(name))
		if err != nil {
			return PlayInfo{}, err
		}
		return newPlayInfo(c.Playbook(), play), nil
	})
}

func HasPlay(sm *directors.SessionManager, name string) bool {
	return read(sm, func(c *directors.Controller) bool {
		return c.Playbook().HasPlay(models.PlayName(name))
	})
}

// CreateNewPlay builds a play from the named formation and saves it without
// overwriting. created is false, with no error, when the name is taken; the
// new play then stays loaded as the draft.
func CreateNewPlay(sm *directors.SessionManager, name, codeName, formationName string) (created bool, err error) {
	return directors.Query(sm, func(c *directors.Controller) (bool, error) {
		if err := c.CreateAndLoadNewPlay(models.PlayName(name), codeName, models.FormationName(formationName)); err != nil {
			return false, err
		}
		return c.SaveCurrentPlay(false)
	})
}

// DeletePlay removes the play, its category links and a draft of the same name.
func DeletePlay(sm *directors.SessionManager, name string) {
	_ = sm.Do(func(c *directors.Controller) error {
		c.DeletePlay(models.PlayName(name))
		return nil
	})
}

func CategoriesOfPlay(sm *directors.SessionManager, name string) []string {
	return read(sm, func(c *directors.Controller) []string {
		return toStrings(c.Playbook().CategoriesOfPlay(models.PlayName(name)))
	})
}

// ------------------------------------------- formations -------------------------------------------

func ListFormations(sm *directors.SessionManager) []FormationInfo {
	return read(sm, func(c *directors.Controller) []FormationInfo {
		formations := c.Playbook().Formations()
		infos := make([]FormationInfo, 0, len(formations))
		for _, f := range formations {
			infos = append(infos, newFormationInfo(f))
		}
		return infos
	})
}

func GetFormation(sm *directors.SessionManager, name string) (FormationInfo, error) {
	return directors.Query(sm, func(c *directors.Controller) (FormationInfo, error) {
		f, err := c.Playbook().GetFormation(models.FormationName(name))
		if err != nil {
			return FormationInfo{}, err
		}
		return newFormationInfo(f), nil
	})
}

func HasFormation(sm *directors.SessionManager, name string) bool {
	return read(sm, func(c *directors.Controller) bool {
		return c.Playbook().HasFormation(models.FormationName(name))
	})
}

// ------------------------------------------- routes -------------------------------------------

func ListRoutes(sm *directors.SessionManager) []RouteInfo {
	return read(sm, func(c *directors.Controller) []RouteInfo {
		routes := c.Playbook().Routes()
		infos := make([]RouteInfo, 0, len(routes))
		for _, r := range routes {
			infos = append(infos, newRouteInfo(r))
		}
		return infos
	})
}

func GetRoute(sm *directors.SessionManager, name string) (RouteInfo, error) {
	return directors.Query(sm, func(c *directors.Controller) (RouteInfo, error) {
		r, err := c.Playbook().GetRoute(models.RouteName(name))
		if err != nil {
			return RouteInfo{}, err
		}
		return newRouteInfo(r), nil
	})
}

func HasRoute(sm *directors.SessionManager, name string) bool {
	return read(sm, func(c *directors.Controller) bool {
		return c.Playbook().HasRoute(models.RouteName(name))
	})
}

// ------------------------------------------- categories -------------------------------------------

func ListCategories(sm *directors.SessionManager) []CategoryInfo {
	return read(sm, func(c *directors.Controller) []CategoryInfo {
		pb := c.Playbook()
		categories := pb.Categories()
		infos := make([]CategoryInfo, 0, len(categories))
		for _, cat := range categories {
			infos = append(infos, newCategoryInfo(pb, cat))
		}
		return infos
	})
}

func GetCategory(sm *directors.SessionManager, name string) (CategoryInfo, error) {
	return directors.Query(sm, func(c *directors.Controller) (CategoryInfo, error) {
		cat, err := c.Playbook().GetCategory(models.CategoryName(name))
		if err != nil {
			return CategoryInfo{}, err
		}
		return newCategoryInfo(c.Playbook(), cat), nil
	})
}

func HasCategory(sm *directors.SessionManager, name string) bool {
	return read(sm, func(c *directors.Controller) bool {
		return c.Playbook().HasCategory(models.CategoryName(name))
	})
}

// AddCategory creates the category unless it exists; it reports whether it did.
func AddCategory(sm *directors.SessionManager, name string) bool {
	return read(sm, func(c *directors.Controller) bool {
		return c.Playbook().AddCategory(models.NewCategory(models.CategoryName(name)), false)
	})
}

func DeleteCategory(sm *directors.SessionManager, name string) {
	_ = sm.Do(func(c *directors.Controller) error {
		c.Playbook().DeleteCategory(models.CategoryName(name))
		return nil
	})
}

func AssignPlayToCategory(sm *directors.SessionManager, play, category string) error {
	return sm.Do(func(c *directors.Controller) error {
		return c.Playbook().AddPlayToCategory(models.PlayName(play), models.CategoryName(category))
	})
}

func UnassignPlayFromCategory(sm *directors.SessionManager, play, category string) {
	_ = sm.Do(func(c *directors.Controller) error {
		c.Playbook().RemovePlayFromCategory(models.PlayName(play), models.CategoryName(category))
		return nil
	})
}

func PlaysInCategory(sm *directors.SessionManager, category string) []string {
	return read(sm, func(c *directors.Controller) []string {
		return toStrings(c.Playbook().PlaysInCategory(models.CategoryName(category)))
	})
}

// ------------------------------------------- draft -------------------------------------------

func NewDraft(sm *directors.SessionManager, name, codeName, formationName string) error {
	return sm.Do(func(c *directors.Controller) error {
		return c.CreateAndLoadNewPlay(models.PlayName(name), codeName, models.FormationName(formationName))
	})
}

func LoadDraft(sm *directors.SessionManager, name string) error {
	return sm.Do(func(c *directors.Controller) error {
		return c.LoadPlay(models.PlayName(name))
	})
}

func SaveDraft(sm *directors.SessionManager, overwrite bool) (bool, error) {
	return directors.Query(sm, func(c *directors.Controller) (bool, error) {
		return c.SaveCurrentPlay(overwrite)
	})
}

func SaveDraftAs(sm *directors.SessionManager, name, codeName string) error {
	return sm.Do(func(c *directors.Controller) error {
		return c.SaveCurrentPlayAs(models.PlayName(name), codeName)
	})
}

func ClearDraft(sm *directors.SessionManager) {
	_ = sm.Do(func(c *directors.Controller) error {
		c.ClearCurrentPlay()
		return nil
	})
}

// GetDraft returns the current draft, or ErrNoCurrentPlay.
func GetDraft(sm *directors.SessionManager) (PlayInfo, error) {
	return directors.Query(sm, func(c *directors.Controller) (PlayInfo, error) {
		play, ok := c.CurrentPlay()
		if !ok {
			return PlayInfo{}, pbcerrors.ErrNoCurrentPlay
		}
		return newPlayInfo(c.Playbook(), play), nil
	})
}
