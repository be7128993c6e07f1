package engine

import "github.com/obraunsdorf/playbook-creator/src/models"

// DefaultFormationName is the formation every new playbook starts with.
const DefaultFormationName models.FormationName = "Spread Right"

// DefaultRoutes returns the built-in route library.
func DefaultRoutes() []models.Route {
	straight := models.StraightPath
	curved := func(ex, ey, cx, cy float64) models.Path {
		return models.CurvedPath(models.Point2D{X: ex, Y: ey}, models.Point2D{X: cx, Y: cy})
	}

	return []models.Route{
		models.NewRoute("Hook", "", straight(0, 6), straight(1, 5)),
		models.NewRoute("Comeback", "", straight(0, 12), straight(-2, 10)),
		models.NewRoute("5 In", "", straight(0, 5), straight(10, 5)),
		models.NewRoute("10 In", "", straight(0, 10), straight(10, 10)),
		models.NewRoute("5 Out", "", straight(0, 5), straight(-10, 5)),
		models.NewRoute("10 Out", "", straight(0, 10), straight(-10, 10)),
		models.NewRoute("Slant", "", straight(0, 2), straight(9, 5)),
		models.NewRoute("Shallow", "", curved(13, 2, 2, 2), straight(15, 2)),
		models.NewRoute("Curl", "", straight(0, 12), straight(2, 10)),
		models.NewRoute("Post", "", straight(0, 7), straight(7, 14)),
		models.NewRoute("Corner", "", straight(0, 7), straight(-7, 14)),
		models.NewRoute("Fly", "", curved(-1, 12, -0.7, 3), straight(-1, 14)),
		models.NewRoute("Seam", "", curved(0.7, 12, -0.3, 3), straight(1, 14)),
		models.NewRoute("Fade", "", curved(-1, 5, -0.7, 1), straight(-1, 7)),
	}
}

type seat struct {
	full, short string
	x, y        float64
}

// Players are added in groups as the player count grows.
var (
	coreSeats   = []seat{{"Center", "C   ", 0, 0}, {"Quarterback", "QB  ", 0, -5}, {"Wide Receiver Left", "WRL ", -10, 0}, {"Wide Receiver Right", "WRR ", 10, 0}, {"Halfback", "HB  ", 5, 0}}
	guardSeats  = []seat{{"Left Guard", "LG  ", -1, 0}, {"Right Guard", "RG  ", 1, 0}}
	backSeats   = []seat{{"Fullback", "FB  ", 0, -3}, {"Tight End", "TE  ", 3, -1}}
	tackleSeats = []seat{{"Left Tackle", "LT  ", -2, 0}, {"Right Tackle", "RT  ", 2, 0}}
)

// DefaultFormation builds "Spread Right" for playerNumber players:
// 5 core players, guards from 7, fullback and tight end from 9, tackles at
// exactly 11. Counts in between round down to the last complete group.
func DefaultFormation(playerNumber int) models.Formation {
	seats := append([]seat{}, coreSeats...)
	if playerNumber >= 7 {
		seats = append(seats, guardSeats...)
	}
	if playerNumber >= 9 {
		seats = append(seats, backSeats...)
	}
	if playerNumber == 11 {
		seats = append(seats, tackleSeats...)
	}

	formation := models.Formation{Name: DefaultFormationName}
	for _, s := range seats {
		formation.AddPlayer(models.NewPlayer(models.MustRole(s.full, s.short), models.Color{}, models.Point2D{X: s.x, Y: s.y}))
	}
	return formation
}
