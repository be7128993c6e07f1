package bridge

import (
	"fmt"

	"github.com/obraunsdorf/playbook-creator/src/engine"
	"github.com/obraunsdorf/playbook-creator/src/models"
)

// Transfer records handed to the host. They carry plain strings and numbers
// only and never alias playbook storage.

type PlaybookInfo struct {
	ID               string `json:"id" bson:"id"`
	Name             string `json:"name" bson:"name"`
	PlayerNumber     int    `json:"player_number" bson:"player_number"`
	BuiltWithVersion string `json:"built_with_version" bson:"built_with_version"`
	FormationCount   int    `json:"formation_count" bson:"formation_count"`
	RouteCount       int    `json:"route_count" bson:"route_count"`
	CategoryCount    int    `json:"category_count" bson:"category_count"`
	PlayCount        int    `json:"play_count" bson:"play_count"`
}

type PathInfo struct {
	EndX     float64  `json:"end_x" bson:"end_x"`
	EndY     float64  `json:"end_y" bson:"end_y"`
	ControlX *float64 `json:"control_x,omitempty" bson:"control_x,omitempty"`
	ControlY *float64 `json:"control_y,omitempty" bson:"control_y,omitempty"`
}

type RouteInfo struct {
	Name     string     `json:"name" bson:"name"`
	CodeName string     `json:"code_name" bson:"code_name"`
	Paths    []PathInfo `json:"paths" bson:"paths"`
}

type PlayerInfo struct {
	Role      string  `json:"role" bson:"role"`
	ShortName string  `json:"short_name" bson:"short_name"`
	Name      string  `json:"name" bson:"name"`
	Nr        uint32  `json:"nr" bson:"nr"`
	Color     string  `json:"color" bson:"color"`
	X         float64 `json:"x" bson:"x"`
	Y         float64 `json:"y" bson:"y"`
	Route     string  `json:"route,omitempty" bson:"route,omitempty"`
	HasMotion bool    `json:"has_motion" bson:"has_motion"`
}

type FormationInfo struct {
	Name    string       `json:"name" bson:"name"`
	Players []PlayerInfo `json:"players" bson:"players"`
}

type CategoryInfo struct {
	Name  string   `json:"name" bson:"name"`
	Plays []string `json:"plays" bson:"plays"`
}

type PlayInfo struct {
	Name          string       `json:"name" bson:"name"`
	CodeName      string       `json:"code_name" bson:"code_name"`
	Comment       string       `json:"comment" bson:"comment"`
	FormationName string       `json:"formation_name" bson:"formation_name"`
	Players       []PlayerInfo `json:"players" bson:"players"`
	Categories    []string     `json:"categories" bson:"categories"`
}

func colorHex(c models.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func newPlaybookInfo(pb *engine.Playbook) PlaybookInfo {
	return PlaybookInfo{
		ID:               pb.ID,
		Name:             pb.Name,
		PlayerNumber:     pb.PlayerNumber(),
		BuiltWithVersion: pb.BuiltWithVersion,
		FormationCount:   len(pb.FormationNames()),
		RouteCount:       len(pb.RouteNames()),
		CategoryCount:    len(pb.CategoryNames()),
		PlayCount:        len(pb.PlayNames()),
	}
}

func newPathInfo(p models.Path) PathInfo {
	info := PathInfo{EndX: p.Endpoint.X, EndY: p.Endpoint.Y}
	if p.IsCurved() {
		cx, cy := p.BezierControlPoint.X, p.BezierControlPoint.Y
		info.ControlX, info.ControlY = &cx, &cy
	}
	return info
}

func newRouteInfo(r models.Route) RouteInfo {
	paths := make([]PathInfo, 0, r.Movement.Len())
	for _, p := range r.Paths() {
		paths = append(paths, newPathInfo(p))
	}
	return RouteInfo{Name: r.Name.String(), CodeName: r.CodeName, Paths: paths}
}

func newPlayerInfo(p models.Player) PlayerInfo {
	info := PlayerInfo{
		Role:      p.Role.FullName,
		ShortName: p.Role.ShortName(),
		Name:      p.Name,
		Nr:        p.Nr,
		Color:     colorHex(p.Color),
		X:         p.Pos.X,
		Y:         p.Pos.Y,
		HasMotion: p.Motion != nil,
	}
	if p.Route != nil {
		info.Route = p.Route.Name.String()
	}
	return info
}

func newPlayerInfos(players []models.Player) []PlayerInfo {
	infos := make([]PlayerInfo, 0, len(players))
	for _, p := range players {
		infos = append(infos, newPlayerInfo(p))
	}
	return infos
}

func newFormationInfo(f models.Formation) FormationInfo {
	return FormationInfo{Name: f.Name.String(), Players: newPlayerInfos(f.Players)}
}

func newCategoryInfo(pb *engine.Playbook, c models.Category) CategoryInfo {
	return CategoryInfo{Name: c.Name.String(), Plays: toStrings(pb.PlaysInCategory(c.Name))}
}

// newPlayInfo lists the categories stored in pb under the play's name. For a
// draft these are the categories of the play it would be saved over.
func newPlayInfo(pb *engine.Playbook, p models.Play) PlayInfo {
	return PlayInfo{
		Name:          p.Name.String(),
		CodeName:      p.CodeName,
		Comment:       p.Comment,
		FormationName: p.Formation.Name.String(),
		Players:       newPlayerInfos(p.Formation.Players),
		Categories:    toStrings(pb.CategoriesOfPlay(p.Name)),
	}
}

func toStrings[S ~string](names []S) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}
