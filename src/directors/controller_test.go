package directors

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/obraunsdorf/playbook-creator/src/auth"
	"github.com/obraunsdorf/playbook-creator/src/engine"
	"github.com/obraunsdorf/playbook-creator/src/models"
	"github.com/obraunsdorf/playbook-creator/src/pbcerrors"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewControllerWithPlaybook(engine.NewPlaybook("Test", 5), zaptest.NewLogger(t).Sugar())
}

func TestNewControllerUsesDefaultPlaybook(t *testing.T) {
	c := NewController(nil)

	assert.Equal(t, DefaultPlaybookName, c.Playbook().Name)
	assert.Equal(t, DefaultPlayerNumber, c.Playbook().PlayerNumber())
	assert.False(t, c.HasCurrentPlay())
}

func TestRedZoneFadeScenario(t *testing.T) {
	c := newTestController(t)

	require.NoError(t, c.CreateAndLoadNewPlay("Red Zone Fade", "RZF", "Spread Right"))
	saved, err := c.SaveCurrentPlay(false)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.True(t, c.Playbook().HasPlay("Red Zone Fade"))

	require.NoError(t, c.SaveCurrentPlayAs("RZF v2", "RZF2"))

	draft, ok := c.CurrentPlay()
	require.True(t, ok)
	assert.Equal(t, models.PlayName("RZF v2"), draft.Name)
	assert.Equal(t, "RZF2", draft.CodeName)
	assert.True(t, c.Playbook().HasPlay("Red Zone Fade"))
	assert.True(t, c.Playbook().HasPlay("RZF v2"))
}

func TestCreateAndLoadStripsRoutes(t *testing.T) {
	c := newTestController(t)
	formation, err := c.Playbook().GetFormation("Spread Right")
	require.NoError(t, err)
	post, err := c.Playbook().GetRoute("Post")
	require.NoError(t, err)
	formation.Name = "Routed"
	formation.Players[2].SetRoute(post)
	formation.Players[3].SetMotion(*models.NewMotion(models.StraightPath(2, 0)))
	require.True(t, c.Playbook().AddFormation(formation, false))

	require.NoError(t, c.CreateAndLoadNewPlay("Dive", "D", "Routed"))

	draft, ok := c.CurrentPlay()
	require.True(t, ok)
	assert.Equal(t, 5, draft.PlayerCount())
	for i, p := range draft.Formation.Players {
		assert.False(t, p.HasMovement())
		assert.Equal(t, formation.Players[i].Pos, p.Pos)
		assert.Equal(t, formation.Players[i].Role, p.Role)
	}
}

func TestCreateWithUnknownFormationKeepsDraft(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.CreateAndLoadNewPlay("Dive", "D", "Spread Right"))

	err := c.CreateAndLoadNewPlay("Sweep", "S", "Nope")
	assert.ErrorIs(t, err, pbcerrors.ErrNotFound)

	draft, ok := c.CurrentPlay()
	require.True(t, ok)
	assert.Equal(t, models.PlayName("Dive"), draft.Name)
}

func TestCreateDiscardsUnsavedDraft(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.CreateAndLoadNewPlay("Dive", "D", "Spread Right"))
	require.NoError(t, c.CreateAndLoadNewPlay("Sweep", "S", "Spread Right"))

	assert.False(t, c.Playbook().HasPlay("Dive"))
	draft, _ := c.CurrentPlay()
	assert.Equal(t, models.PlayName("Sweep"), draft.Name)
}

func TestSaveWithoutDraftFails(t *testing.T) {
	c := newTestController(t)

	saved, err := c.SaveCurrentPlay(false)
	assert.False(t, saved)
	assert.ErrorIs(t, err, pbcerrors.ErrNoCurrentPlay)
	assert.EqualError(t, err, "no current play to save")

	assert.ErrorIs(t, c.SaveCurrentPlayAs("X", "X"), pbcerrors.ErrNoCurrentPlay)
	assert.ErrorIs(t, c.EditCurrentPlay(func(*models.Play) error { return nil }), pbcerrors.ErrNoCurrentPlay)
}

func TestSaveWithoutOverwriteOntoExistingName(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.CreateAndLoadNewPlay("Dive", "D", "Spread Right"))
	_, err := c.SaveCurrentPlay(false)
	require.NoError(t, err)

	require.NoError(t, c.EditCurrentPlay(func(p *models.Play) error {
		p.Comment = "changed"
		return nil
	}))

	saved, err := c.SaveCurrentPlay(false)
	require.NoError(t, err)
	assert.False(t, saved)
	stored, _ := c.Playbook().GetPlay("Dive")
	assert.Empty(t, stored.Comment)

	saved, err = c.SaveCurrentPlay(true)
	require.NoError(t, err)
	assert.True(t, saved)
	stored, _ = c.Playbook().GetPlay("Dive")
	assert.Equal(t, "changed", stored.Comment)
	assert.True(t, c.HasCurrentPlay())
}

func TestSaveAsOverwritesExistingPlay(t *testing.T) {
	c := newTestController(t)
	pb := c.Playbook()
	for _, name := range []models.PlayName{"A", "B"} {
		require.NoError(t, c.CreateAndLoadNewPlay(name, string(name), "Spread Right"))
		_, err := c.SaveCurrentPlay(false)
		require.NoError(t, err)
	}
	require.True(t, pb.AddCategory(models.NewCategory("Red Zone"), false))
	require.NoError(t, pb.AddPlayToCategory("B", "Red Zone"))

	require.NoError(t, c.LoadPlay("A"))
	require.NoError(t, c.EditCurrentPlay(func(p *models.Play) error {
		p.Comment = "from A"
		return nil
	}))
	require.NoError(t, c.SaveCurrentPlayAs("B", "B2"))

	b, err := pb.GetPlay("B")
	require.NoError(t, err)
	assert.Equal(t, "from A", b.Comment)
	assert.Equal(t, "B2", b.CodeName)
	assert.Equal(t, []models.CategoryName{"Red Zone"}, pb.CategoriesOfPlay("B"))

	a, err := pb.GetPlay("A")
	require.NoError(t, err)
	assert.Empty(t, a.Comment)
	assert.Equal(t, "A", a.CodeName)
}

func TestLoadUnknownPlayKeepsDraft(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.CreateAndLoadNewPlay("Dive", "D", "Spread Right"))

	err := c.LoadPlay("Nope")
	assert.ErrorIs(t, err, pbcerrors.ErrNotFound)

	draft, ok := c.CurrentPlay()
	require.True(t, ok)
	assert.Equal(t, models.PlayName("Dive"), draft.Name)
}

func TestDraftIsDetachedFromPlaybook(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.CreateAndLoadNewPlay("Dive", "D", "Spread Right"))
	_, err := c.SaveCurrentPlay(false)
	require.NoError(t, err)
	require.NoError(t, c.LoadPlay("Dive"))

	require.NoError(t, c.EditCurrentPlay(func(p *models.Play) error {
		p.Formation.Players[0].Nr = 77
		p.Comment = "draft only"
		return nil
	}))

	stored, err := c.Playbook().GetPlay("Dive")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), stored.Formation.Players[0].Nr)
	assert.Empty(t, stored.Comment)

	// a copy handed out by CurrentPlay is detached too
	draft, _ := c.CurrentPlay()
	draft.Comment = "copy"
	again, _ := c.CurrentPlay()
	assert.Equal(t, "draft only", again.Comment)
}

func TestEditCurrentPlayPassesError(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.CreateAndLoadNewPlay("Dive", "D", "Spread Right"))
	boom := errors.New("boom")

	assert.ErrorIs(t, c.EditCurrentPlay(func(*models.Play) error { return boom }), boom)
}

func TestClearCurrentPlay(t *testing.T) {
	c := newTestController(t)
	c.ClearCurrentPlay()
	require.NoError(t, c.CreateAndLoadNewPlay("Dive", "D", "Spread Right"))

	c.ClearCurrentPlay()

	assert.False(t, c.HasCurrentPlay())
	_, ok := c.CurrentPlay()
	assert.False(t, ok)
	assert.False(t, c.Playbook().HasPlay("Dive"))
}

func TestDeletePlayClearsMatchingDraft(t *testing.T) {
	c := newTestController(t)
	require.True(t, c.Playbook().AddCategory(models.NewCategory("Run"), false))
	require.NoError(t, c.CreateAndLoadNewPlay("Dive", "D", "Spread Right"))
	_, err := c.SaveCurrentPlay(false)
	require.NoError(t, err)
	require.NoError(t, c.Playbook().AddPlayToCategory("Dive", "Run"))

	c.DeletePlay("Dive")

	assert.False(t, c.HasCurrentPlay())
	assert.False(t, c.Playbook().HasPlay("Dive"))
	assert.Empty(t, c.Playbook().PlaysInCategory("Run"))
}

func TestDeleteOtherPlayKeepsDraft(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.CreateAndLoadNewPlay("Dive", "D", "Spread Right"))
	_, err := c.SaveCurrentPlay(false)
	require.NoError(t, err)
	require.NoError(t, c.CreateAndLoadNewPlay("Sweep", "S", "Spread Right"))

	c.DeletePlay("Dive")
	c.DeletePlay("Nope")

	assert.True(t, c.HasCurrentPlay())
}

func TestResetPlaybookClearsDraft(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.CreateAndLoadNewPlay("Dive", "D", "Spread Right"))
	_, err := c.SaveCurrentPlay(false)
	require.NoError(t, err)

	c.ResetPlaybook("Fresh", 7)

	assert.False(t, c.HasCurrentPlay())
	assert.Equal(t, "Fresh", c.Playbook().Name)
	assert.Empty(t, c.Playbook().Plays())
	f, err := c.Playbook().GetFormation("Spread Right")
	require.NoError(t, err)
	assert.Equal(t, 7, f.PlayerCount())
}

func TestSetPlaybookClearsDraft(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.CreateAndLoadNewPlay("Dive", "D", "Spread Right"))

	other := engine.NewPlaybook("Other", 11)
	c.SetPlaybook(other)

	assert.Same(t, other, c.Playbook())
	assert.False(t, c.HasCurrentPlay())
}

func TestSessionManagerSerializesAccess(t *testing.T) {
	sm := NewSessionManager(newTestController(t), zaptest.NewLogger(t).Sugar())
	require.NoError(t, sm.Do(func(c *Controller) error {
		c.Playbook().AddCategory(models.NewCategory("Pass"), false)
		return nil
	}))

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := models.PlayName(string(rune('A' + i)))
			_ = sm.Do(func(c *Controller) error {
				if err := c.CreateAndLoadNewPlay(name, "X", "Spread Right"); err != nil {
					return err
				}
				if _, err := c.SaveCurrentPlay(false); err != nil {
					return err
				}
				return c.Playbook().AddPlayToCategory(name, "Pass")
			})
		}(i)
	}
	wg.Wait()

	plays, err := Query(sm, func(c *Controller) ([]models.PlayName, error) {
		return c.Playbook().PlaysInCategory("Pass"), nil
	})
	require.NoError(t, err)
	assert.Len(t, plays, workers)
}

func TestSessionManagerReleasesLockOnError(t *testing.T) {
	sm := NewSessionManager(newTestController(t), nil)

	err := sm.Do(func(c *Controller) error { return c.LoadPlay("Nope") })
	assert.ErrorIs(t, err, pbcerrors.ErrNotFound)

	name, err := Query(sm, func(c *Controller) (string, error) { return c.Playbook().Name, nil })
	require.NoError(t, err)
	assert.Equal(t, "Test", name)
}

func TestSessionManagerReleasesLockOnPanic(t *testing.T) {
	sm := NewSessionManager(newTestController(t), nil)

	assert.Panics(t, func() {
		_ = sm.Do(func(*Controller) error { panic("boom") })
	})
	assert.NoError(t, sm.Do(func(*Controller) error { return nil }))
}

func TestQueryResultOutlivesLock(t *testing.T) {
	sm := NewSessionManager(newTestController(t), nil)

	formation, err := Query(sm, func(c *Controller) (models.Formation, error) {
		return c.Playbook().GetFormation("Spread Right")
	})
	require.NoError(t, err)
	formation.Players = nil

	count, err := Query(sm, func(c *Controller) (int, error) {
		f, err := c.Playbook().GetFormation("Spread Right")
		return f.PlayerCount(), err
	})
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestUserServiceAuthenticate(t *testing.T) {
	store := auth.NewUserStore(auth.HashParams{Time: 1, Memory: 64, Threads: 1, KeyLen: 16, SaltSize: 8})
	users := NewUserService(store, auth.NewUserFactory(), zaptest.NewLogger(t).Sugar())
	require.NoError(t, users.AddUser("coach", "blitz"))

	err := users.AddUser("coach", "again")
	assert.ErrorIs(t, err, pbcerrors.ErrAlreadyExists)

	user, err := users.Authenticate("coach", "blitz")
	require.NoError(t, err)
	assert.Equal(t, "coach", user.Username)

	_, err = users.Authenticate("coach", "nope")
	assert.ErrorIs(t, err, pbcerrors.ErrUnauthorized)
	assert.Equal(t, pbcerrors.CodeUnauthorized, pbcerrors.CodeOf(err))

	require.NoError(t, users.UpdateUser("coach", "audible"))
	_, err = users.Authenticate("coach", "audible")
	require.NoError(t, err)

	assert.Equal(t, []string{"coach"}, users.ListUsers())
	require.NoError(t, users.DeleteUser("coach"))
	_, err = users.GetUserByName("coach")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
