package transfer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Saddickq/TeacherTrek/internal/apperr"
	"github.com/Saddickq/TeacherTrek/internal/mocks"
	"github.com/Saddickq/TeacherTrek/internal/transfer"
	"github.com/Saddickq/TeacherTrek/models"
)

func TestUpdateForbiddenForNonOwner(t *testing.T) {
	requests := new(mocks.RequestStore)
	requests.On("GetByID", "r1").Return(&models.TransferRequest{ID: "r1", TeacherID: "owner"}, nil)

	svc := transfer.NewService(requests)

	_, err := svc.Update("r1", "intruder", transfer.Fields{School: "St. Mary's"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	requests.AssertNotCalled(t, "Save")
}

func TestDeleteForbiddenForNonOwner(t *testing.T) {
	requests := new(mocks.RequestStore)
	requests.On("GetByID", "r1").Return(&models.TransferRequest{ID: "r1", TeacherID: "owner"}, nil)

	svc := transfer.NewService(requests)

	err := svc.Delete("r1", "intruder")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	requests.AssertNotCalled(t, "Delete")
}

func TestUpdateKeepsIdentity(t *testing.T) {
	r := &models.TransferRequest{ID: "r1", TeacherID: "owner", School: "Old School"}
	requests := new(mocks.RequestStore)
	requests.On("GetByID", "r1").Return(r, nil)
	requests.On("Save", r).Return(nil)

	svc := transfer.NewService(requests)

	got, err := svc.Update("r1", "owner", transfer.Fields{
		School:      "New School",
		Subjects:    "Physics",
		County:      "Butula",
		Destination: "Samia",
	})
	assert.NoError(t, err)
	assert.Equal(t, "r1", got.ID)
	assert.Equal(t, "owner", got.TeacherID)
	assert.Equal(t, "New School", got.School)
	requests.AssertExpectations(t)
}

func TestFindMatchesQueriesOwnCounty(t *testing.T) {
	own := &models.TransferRequest{ID: "r1", TeacherID: "owner", County: "Teso South", Destination: "Budalangi"}
	candidates := []models.TransferRequest{
		{ID: "r2", TeacherID: "other", County: "Budalangi", Destination: "Teso South"},
	}

	requests := new(mocks.RequestStore)
	requests.On("FindByOwner", "owner").Return(own, nil)
	requests.On("FindByDestination", "Teso South", "owner").Return(candidates, nil)

	svc := transfer.NewService(requests)

	got, err := svc.FindMatches("owner")
	assert.NoError(t, err)
	assert.Equal(t, candidates, got)
	requests.AssertExpectations(t)
}

func TestFindMatchesWithoutOwnRequest(t *testing.T) {
	requests := new(mocks.RequestStore)
	requests.On("FindByOwner", "owner").Return(nil, apperr.ErrNotFound)

	svc := transfer.NewService(requests)

	_, err := svc.FindMatches("owner")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestVocabulary(t *testing.T) {
	assert.True(t, transfer.IsSubCounty("Teso South"))
	assert.True(t, transfer.IsSubCounty("Bunyala"))
	assert.False(t, transfer.IsSubCounty("Nairobi"))
	assert.True(t, transfer.IsSubject("Physics"))
	assert.False(t, transfer.IsSubject("Alchemy"))
}
