package server

import (
	"strings"
	"time"

	"github.com/obraunsdorf/playbook-creator/src/pbcerrors"
)

// UserInfo is the USER INFO record. Password hashes never leave the store.
type UserInfo struct {
	ID             string    `json:"id" bson:"id"`
	Username       string    `json:"username" bson:"username"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	LastModifiedAt time.Time `json:"last_modified_at" bson:"last_modified_at"`
}

// userCommand runs USER LIST|INFO|ADD|PASSWD|DELETE. Users only exist when
// authentication is on.
func (s *Server) userCommand(connection *Connection, args []string) (string, any, error) {
	if !s.AuthEnabled || s.users == nil {
		return "", nil, pbcerrors.InvalidInput("user management requires authentication to be enabled")
	}
	if len(args) == 0 {
		return "", nil, pbcerrors.InvalidInput("command requires an entity and a verb")
	}

	verb := strings.ToUpper(args[0])
	params := args[1:]

	switch verb {
	case "LIST":
		return "", s.users.ListUsers(), nil
	case "INFO":
		if err := need(params, 1, `USER INFO "name"`); err != nil {
			return "", nil, err
		}
		user, err := s.users.GetUserByName(params[0])
		if err != nil {
			return "", nil, err
		}
		return "", UserInfo{
			ID:             user.ID,
			Username:       user.Username,
			CreatedAt:      user.CreatedAt,
			LastModifiedAt: user.LastModifiedAt,
		}, nil
	case "ADD":
		if err := need(params, 2, `USER ADD "name" "password"`); err != nil {
			return "", nil, err
		}
		if params[0] == "" || params[1] == "" {
			return "", nil, pbcerrors.InvalidInput("user name and password must not be empty")
		}
		if err := s.users.AddUser(params[0], params[1]); err != nil {
			return "", nil, err
		}
		connection.Logger.Infow("User added", "target", params[0])
		return "User added", nil, nil
	case "PASSWD":
		if err := need(params, 2, `USER PASSWD "name" "password"`); err != nil {
			return "", nil, err
		}
		if params[1] == "" {
			return "", nil, pbcerrors.InvalidInput("password must not be empty")
		}
		if err := s.users.UpdateUser(params[0], params[1]); err != nil {
			return "", nil, err
		}
		connection.Logger.Infow("Password changed", "target", params[0])
		return "Password changed", nil, nil
	case "DELETE":
		if err := need(params, 1, `USER DELETE "name"`); err != nil {
			return "", nil, err
		}
		if params[0] == connection.User {
			return "", nil, pbcerrors.InvalidInput("cannot delete the user of this connection")
		}
		if err := s.users.DeleteUser(params[0]); err != nil {
			return "", nil, err
		}
		connection.Logger.Infow("User deleted", "target", params[0])
		return "User deleted", nil, nil
	}
	return "", nil, unknownVerb("USER", verb)
}
