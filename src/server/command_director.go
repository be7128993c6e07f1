package server

import (
	"strconv"
	"strings"

	"github.com/obraunsdorf/playbook-creator/src/bridge"
	"github.com/obraunsdorf/playbook-creator/src/directors"
	"github.com/obraunsdorf/playbook-creator/src/pbcerrors"
)

// CommandDirector runs one parsed command line against the session. args[0]
// is the entity (PLAYBOOK, PLAY, FORMATION, ROUTE, CATEGORY, DRAFT) and
// args[1] the verb; both are case-insensitive. Names are case-sensitive.
func CommandDirector(sm *directors.SessionManager, args []string) (message string, result any, err error) {
	if len(args) < 2 {
		return "", nil, pbcerrors.InvalidInput("command requires an entity and a verb")
	}

	entity := strings.ToUpper(args[0])
	verb := strings.ToUpper(args[1])
	params := args[2:]

	switch entity {
	case "PLAYBOOK":
		return playbookCommand(sm, verb, params)
	case "PLAY":
		return playCommand(sm, verb, params)
	case "FORMATION":
		return formationCommand(sm, verb, params)
	case "ROUTE":
		return routeCommand(sm, verb, params)
	case "CATEGORY":
		return categoryCommand(sm, verb, params)
	case "DRAFT":
		return draftCommand(sm, verb, params)
	}
	return "", nil, pbcerrors.InvalidInput("unknown command: %s", args[0])
}

// need checks the parameter count of "ENTITY VERB".
func need(params []string, n int, usage string) error {
	if len(params) != n {
		return pbcerrors.InvalidInput("usage: %s", usage)
	}
	return nil
}

func unknownVerb(entity, verb string) error {
	return pbcerrors.InvalidInput("unknown %s command: %s", entity, verb)
}

func playbookCommand(sm *directors.SessionManager, verb string, params []string) (string, any, error) {
	switch verb {
	case "GET":
		return "", bridge.GetPlaybookInfo(sm), nil
	case "RENAME":
		if err := need(params, 1, `PLAYBOOK RENAME "name"`); err != nil {
			return "", nil, err
		}
		bridge.SetPlaybookName(sm, params[0])
		return "Playbook renamed", bridge.GetPlaybookInfo(sm), nil
	case "RESET":
		if err := need(params, 2, `PLAYBOOK RESET "name" playerNumber`); err != nil {
			return "", nil, err
		}
		playerNumber, err := strconv.Atoi(params[1])
		if err != nil {
			return "", nil, pbcerrors.InvalidInput("invalid player number: %s", params[1])
		}
		if err := bridge.ResetPlaybook(sm, params[0], playerNumber); err != nil {
			return "", nil, err
		}
		return "Playbook reset", bridge.GetPlaybookInfo(sm), nil
	}
	return "", nil, unknownVerb("PLAYBOOK", verb)
}

func playCommand(sm *directors.SessionManager, verb string, params []string) (string, any, error) {
	switch verb {
	case "LIST":
		return "", bridge.ListPlays(sm), nil
	case "INFO":
		if err := need(params, 1, `PLAY INFO "name"`); err != nil {
			return "", nil, err
		}
		play, err := bridge.GetPlay(sm, params[0])
		return "", play, err
	case "HAS":
		if err := need(params, 1, `PLAY HAS "name"`); err != nil {
			return "", nil, err
		}
		return "", bridge.HasPlay(sm, params[0]), nil
	case "CREATE":
		if err := need(params, 3, `PLAY CREATE "name" "code" "formation"`); err != nil {
			return "", nil, err
		}
		created, err := bridge.CreateNewPlay(sm, params[0], params[1], params[2])
		if err != nil {
			return "", nil, err
		}
		if !created {
			return "Play already exists, new play kept as draft", created, nil
		}
		return "Play created", created, nil
	case "DELETE":
		if err := need(params, 1, `PLAY DELETE "name"`); err != nil {
			return "", nil, err
		}
		bridge.DeletePlay(sm, params[0])
		return "Play deleted", nil, nil
	case "CATEGORIES":
		if err := need(params, 1, `PLAY CATEGORIES "name"`); err != nil {
			return "", nil, err
		}
		return "", bridge.CategoriesOfPlay(sm, params[0]), nil
	}
	return "", nil, unknownVerb("PLAY", verb)
}

func formationCommand(sm *directors.SessionManager, verb string, params []string) (string, any, error) {
	switch verb {
	case "LIST":
		return "", bridge.ListFormations(sm), nil
	case "INFO":
		if err := need(params, 1, `FORMATION INFO "name"`); err != nil {
			return "", nil, err
		}
		formation, err := bridge.GetFormation(sm, params[0])
		return "", formation, err
	case "HAS":
		if err := need(params, 1, `FORMATION HAS "name"`); err != nil {
			return "", nil, err
		}
		return "", bridge.HasFormation(sm, params[0]), nil
	}
	return "", nil, unknownVerb("FORMATION", verb)
}

func routeCommand(sm *directors.SessionManager, verb string, params []string) (string, any, error) {
	switch verb {
	case "LIST":
		return "", bridge.ListRoutes(sm), nil
	case "INFO":
		if err := need(params, 1, `ROUTE INFO "name"`); err != nil {
			return "", nil, err
		}
		route, err := bridge.GetRoute(sm, params[0])
		return "", route, err
	case "HAS":
		if err := need(params, 1, `ROUTE HAS "name"`); err != nil {
			return "", nil, err
		}
		return "", bridge.HasRoute(sm, params[0]), nil
	}
	return "", nil, unknownVerb("ROUTE", verb)
}

func categoryCommand(sm *directors.SessionManager, verb string, params []string) (string, any, error) {
	switch verb {
	case "LIST":
		return "", bridge.ListCategories(sm), nil
	case "INFO":
		if err := need(params, 1, `CATEGORY INFO "name"`); err != nil {
			return "", nil, err
		}
		category, err := bridge.GetCategory(sm, params[0])
		return "", category, err
	case "HAS":
		if err := need(params, 1, `CATEGORY HAS "name"`); err != nil {
			return "", nil, err
		}
		return "", bridge.HasCategory(sm, params[0]), nil
	case "ADD":
		if err := need(params, 1, `CATEGORY ADD "name"`); err != nil {
			return "", nil, err
		}
		if !bridge.AddCategory(sm, params[0]) {
			return "Category already exists", false, nil
		}
		return "Category added", true, nil
	case "DELETE":
		if err := need(params, 1, `CATEGORY DELETE "name"`); err != nil {
			return "", nil, err
		}
		bridge.DeleteCategory(sm, params[0])
		return "Category deleted", nil, nil
	case "ASSIGN":
		if err := need(params, 2, `CATEGORY ASSIGN "play" "category"`); err != nil {
			return "", nil, err
		}
		if err := bridge.AssignPlayToCategory(sm, params[0], params[1]); err != nil {
			return "", nil, err
		}
		return "Play assigned", nil, nil
	case "UNASSIGN":
		if err := need(params, 2, `CATEGORY UNASSIGN "play" "category"`); err != nil {
			return "", nil, err
		}
		bridge.UnassignPlayFromCategory(sm, params[0], params[1])
		return "Play unassigned", nil, nil
	case "PLAYS":
		if err := need(params, 1, `CATEGORY PLAYS "category"`); err != nil {
			return "", nil, err
		}
		return "", bridge.PlaysInCategory(sm, params[0]), nil
	}
	return "", nil, unknownVerb("CATEGORY", verb)
}

func draftCommand(sm *directors.SessionManager, verb string, params []string) (string, any, error) {
	switch verb {
	case "NEW":
		if err := need(params, 3, `DRAFT NEW "name" "code" "formation"`); err != nil {
			return "", nil, err
		}
		if err := bridge.NewDraft(sm, params[0], params[1], params[2]); err != nil {
			return "", nil, err
		}
		draft, err := bridge.GetDraft(sm)
		return "Draft created", draft, err
	case "LOAD":
		if err := need(params, 1, `DRAFT LOAD "name"`); err != nil {
			return "", nil, err
		}
		if err := bridge.LoadDraft(sm, params[0]); err != nil {
			return "", nil, err
		}
		draft, err := bridge.GetDraft(sm)
		return "Draft loaded", draft, err
	case "SAVE":
		overwrite := false
		switch len(params) {
		case 0:
		case 1:
			if strings.EqualFold(params[0], "overwrite") {
				overwrite = true
				break
			}
			parsed, err := strconv.ParseBool(params[0])
			if err != nil {
				return "", nil, pbcerrors.InvalidInput("usage: DRAFT SAVE [overwrite]")
			}
			overwrite = parsed
		default:
			return "", nil, pbcerrors.InvalidInput("usage: DRAFT SAVE [overwrite]")
		}
		saved, err := bridge.SaveDraft(sm, overwrite)
		if err != nil {
			return "", nil, err
		}
		if !saved {
			return "Play already exists, not saved", saved, nil
		}
		return "Draft saved", saved, nil
	case "SAVEAS":
		if err := need(params, 2, `DRAFT SAVEAS "name" "code"`); err != nil {
			return "", nil, err
		}
		if err := bridge.SaveDraftAs(sm, params[0], params[1]); err != nil {
			return "", nil, err
		}
		draft, err := bridge.GetDraft(sm)
		return "Draft saved", draft, err
	case "CLEAR":
		bridge.ClearDraft(sm)
		return "Draft cleared", nil, nil
	case "GET":
		draft, err := bridge.GetDraft(sm)
		return "", draft, err
	}
	return "", nil, unknownVerb("DRAFT", verb)
}
