package directors

import (
	"sync"

	"go.uber.org/zap"
)

// SessionManager is the handle through which every layer reaches the edit
// session. Each unit of work runs with the session locked; reads and writes
// are serialized alike.
//
// Units of work must be short and must not call back into the same
// SessionManager: the lock is not reentrant.
type SessionManager struct {
	mu         sync.Mutex
	controller *Controller
	logger     *zap.SugaredLogger
}

func NewSessionManager(controller *Controller, logger *zap.SugaredLogger) *SessionManager {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	logger.Info("SessionManager initialized")
	return &SessionManager{
		controller: controller,
		logger:     logger,
	}
}

// Do runs fn with exclusive access to the controller. The lock is released
// when fn returns, panics included, and fn's error is passed through.
func (m *SessionManager) Do(fn func(c *Controller) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := fn(m.controller); err != nil {
		m.logger.Debugw("Session operation failed", "error", err)
		return err
	}
	return nil
}

// Query runs fn like Do and returns its value. Values handed out by the
// playbook are copies, so the result stays valid after the lock is released.
func Query[T any](m *SessionManager, fn func(c *Controller) (T, error)) (T, error) {
	var result T
	err := m.Do(func(c *Controller) error {
		var err error
		result, err = fn(c)
		return err
	})
	return result, err
}
