package directors

import (
	"fmt"

	"github.com/obraunsdorf/playbook-creator/src/auth"
	"github.com/obraunsdorf/playbook-creator/src/pbcerrors"

	"go.uber.org/zap"
)

// UserService manages the server's users on top of an auth.UserStore.
type UserService struct {
	store   *auth.UserStore
	factory auth.UserFactory
	logger  *zap.SugaredLogger
}

func NewUserService(store *auth.UserStore, factory auth.UserFactory, logger *zap.SugaredLogger) *UserService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &UserService{
		store:   store,
		factory: factory,
		logger:  logger,
	}
}

func (s *UserService) AddUser(userName string, password string) error {
	user := s.factory.NewUserStruct(userName, password)

	if err := s.store.AddUser(*user); err != nil {
		return fmt.Errorf("failed to add user %s: %w", userName, err)
	}

	s.logger.Infow("User added", "user", userName)
	return nil
}

func (s *UserService) GetUserByName(userName string) (*auth.User, error) {
	return s.store.GetUser(userName)
}

func (s *UserService) ListUsers() []string {
	return s.store.ListUsers()
}

func (s *UserService) UpdateUser(userName string, password string) error {
	updatedUser := s.factory.NewUserStruct(userName, password)
	return s.store.UpdateUser(*updatedUser)
}

func (s *UserService) DeleteUser(userName string) error {
	return s.store.RemoveUser(userName)
}

// Authenticate returns the user for valid credentials and
// pbcerrors.ErrUnauthorized otherwise.
func (s *UserService) Authenticate(userName string, password string) (*auth.User, error) {
	ok, user := s.store.VerifyCredentials(userName, password)
	if !ok {
		s.logger.Warnw("Authentication failed", "user", userName)
		return nil, pbcerrors.Wrap(pbcerrors.CodeUnauthorized, "authentication failed", auth.ErrInvalidCredentials)
	}
	s.logger.Infow("User authenticated", "user", userName)
	return user, nil
}
