package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Saddickq/TeacherTrek/models"
)

type RequestStore struct{ mock.Mock }

func (m *RequestStore) Create(r *models.TransferRequest) error { return m.Called(r).Error(0) }

func (m *RequestStore) GetByID(id string) (*models.TransferRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransferRequest), args.Error(1)
}

func (m *RequestStore) FindByOwner(teacherID string) (*models.TransferRequest, error) {
	args := m.Called(teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransferRequest), args.Error(1)
}

func (m *RequestStore) Save(r *models.TransferRequest) error { return m.Called(r).Error(0) }

func (m *RequestStore) Delete(id string) error { return m.Called(id).Error(0) }

func (m *RequestStore) FindByDestination(destination, excludeTeacherID string) ([]models.TransferRequest, error) {
	args := m.Called(destination, excludeTeacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TransferRequest), args.Error(1)
}
