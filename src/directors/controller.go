package directors

import (
	"fmt"

	"github.com/obraunsdorf/playbook-creator/src/engine"
	"github.com/obraunsdorf/playbook-creator/src/models"
	"github.com/obraunsdorf/playbook-creator/src/pbcerrors"

	"go.uber.org/zap"
)

const (
	DefaultPlaybookName = "New Playbook"
	DefaultPlayerNumber = 5
)

// Controller is an edit session: one playbook plus an optional draft play.
// The draft never shares storage with the playbook; it only reaches the
// document through SaveCurrentPlay or SaveCurrentPlayAs.
//
// A Controller is not safe for concurrent use. Share it through a
// SessionManager.
type Controller struct {
	playbook *engine.Playbook
	draft    *models.Play
	logger   *zap.SugaredLogger
}

// NewController starts a session on a default playbook.
func NewController(logger *zap.SugaredLogger) *Controller {
	return NewControllerWithPlaybook(engine.NewPlaybook(DefaultPlaybookName, DefaultPlayerNumber), logger)
}

func NewControllerWithPlaybook(playbook *engine.Playbook, logger *zap.SugaredLogger) *Controller {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Controller{
		playbook: playbook,
		logger:   logger,
	}
}

// Playbook returns the document. Mutating it directly bypasses the draft
// bookkeeping; use DeletePlay instead of Playbook().DeletePlay.
func (c *Controller) Playbook() *engine.Playbook {
	return c.playbook
}

// SetPlaybook replaces the whole document and discards the draft.
func (c *Controller) SetPlaybook(playbook *engine.Playbook) {
	c.playbook = playbook
	c.draft = nil
	c.logger.Debugw("Playbook replaced", "playbook", playbook.Name, "id", playbook.ID)
}

// ResetPlaybook replaces the document with a freshly seeded one and
// discards the draft.
func (c *Controller) ResetPlaybook(name string, playerNumber int) {
	c.playbook.Reset(name, playerNumber)
	c.draft = nil
	c.logger.Debugw("Playbook reset", "playbook", name, "playerNumber", playerNumber)
}

func (c *Controller) HasCurrentPlay() bool {
	return c.draft != nil
}

// CurrentPlay returns a copy of the draft.
func (c *Controller) CurrentPlay() (models.Play, bool) {
	if c.draft == nil {
		return models.Play{}, false
	}
	return c.draft.Clone(), true
}

// EditCurrentPlay runs fn on the draft in place.
func (c *Controller) EditCurrentPlay(fn func(play *models.Play) error) error {
	if c.draft == nil {
		return pbcerrors.ErrNoCurrentPlay
	}
	return fn(c.draft)
}

// CreateAndLoadNewPlay installs a new, unsaved draft built on a route-free
// copy of the named formation. Any previous draft is discarded.
func (c *Controller) CreateAndLoadNewPlay(name models.PlayName, codeName string, formationName models.FormationName) error {
	formation, err := c.playbook.GetFormation(formationName)
	if err != nil {
		c.logger.Warnw("Cannot create play", "play", name, "formation", formationName, "error", err)
		return fmt.Errorf("failed to create play %s: %w", name, err)
	}

	play := models.NewPlay(name, codeName, formation.CopyWithoutRoutes())
	c.draft = &play
	c.logger.Debugw("Created new draft", "play", name, "formation", formationName)
	return nil
}

// LoadPlay copies a persisted play into the draft. On error the previous
// draft is kept.
func (c *Controller) LoadPlay(name models.PlayName) error {
	play, err := c.playbook.GetPlay(name)
	if err != nil {
		c.logger.Warnw("Cannot load play", "play", name, "error", err)
		return fmt.Errorf("failed to load play: %w", err)
	}

	c.draft = &play
	c.logger.Debugw("Loaded draft", "play", name)
	return nil
}

// SaveCurrentPlay stores the draft under its own name. The result is the
// playbook's insert outcome: false when the name is taken and overwrite is
// false. The draft stays loaded.
func (c *Controller) SaveCurrentPlay(overwrite bool) (bool, error) {
	if c.draft == nil {
		c.logger.Warnw("Save without current play", "overwrite", overwrite)
		return false, pbcerrors.ErrNoCurrentPlay
	}

	saved := c.playbook.AddPlay(*c.draft, overwrite)
	c.logger.Debugw("Saved draft", "play", c.draft.Name, "overwrite", overwrite, "saved", saved)
	return saved, nil
}

// SaveCurrentPlayAs renames the draft and stores it, replacing any play of
// the new name.
func (c *Controller) SaveCurrentPlayAs(newName models.PlayName, newCodeName string) error {
	if c.draft == nil {
		c.logger.Warnw("Save as without current play", "play", newName)
		return pbcerrors.ErrNoCurrentPlay
	}

	oldName := c.draft.Name
	c.draft.Name = newName
	c.draft.CodeName = newCodeName
	c.playbook.AddPlay(*c.draft, true)
	c.logger.Debugw("Saved draft as", "play", newName, "from", oldName)
	return nil
}

// ClearCurrentPlay discards the draft.
func (c *Controller) ClearCurrentPlay() {
	if c.draft != nil {
		c.logger.Debugw("Cleared draft", "play", c.draft.Name)
	}
	c.draft = nil
}

// DeletePlay removes the play and its category links. A draft of the same
// name is discarded too.
func (c *Controller) DeletePlay(name models.PlayName) {
	c.playbook.DeletePlay(name)
	if c.draft != nil && c.draft.Name == name {
		c.ClearCurrentPlay()
	}
	c.logger.Debugw("Deleted play", "play", name)
}
