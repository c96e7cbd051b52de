package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Saddickq/TeacherTrek/models"
)

type UserStore struct{ mock.Mock }

func (m *UserStore) Create(u *models.User) error { return m.Called(u).Error(0) }

func (m *UserStore) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserStore) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserStore) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserStore) Save(u *models.User) error { return m.Called(u).Error(0) }
