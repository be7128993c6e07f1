package auth

import "github.com/obraunsdorf/playbook-creator/src/helpers"

// UserFactory builds NewUser values with fresh IDs.
type UserFactory interface {
	NewUserStruct(userName string, password string) *NewUser
}

type UserFactoryImpl struct{}

func NewUserFactory() UserFactory {
	return &UserFactoryImpl{}
}

func (f *UserFactoryImpl) NewUserStruct(userName string, password string) *NewUser {
	return &NewUser{
		ID:       helpers.GenerateUUID(),
		Username: userName,
		Password: password,
	}
}
