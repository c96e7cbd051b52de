// Package transfer implements the transfer request workflow: one active
// request per teacher, owner-only mutation, and the reciprocal-swap match
// query.
package transfer

import (
	"fmt"

	"github.com/Saddickq/TeacherTrek/internal/apperr"
	"github.com/Saddickq/TeacherTrek/models"
	"github.com/Saddickq/TeacherTrek/stores"
)

// Fields are the mutable attributes of a request.
type Fields struct {
	School      string
	Subjects    string
	County      string
	Destination string
	Purpose     string
}

type Service struct {
	Requests stores.RequestStore
}

func NewService(requests stores.RequestStore) *Service {
	return &Service{Requests: requests}
}

// Create opens a request for the owner. apperr.ErrConflict if one exists.
func (s *Service) Create(ownerID string, f Fields) (*models.TransferRequest, error) {
	r := &models.TransferRequest{
		School:      f.School,
		Subjects:    f.Subjects,
		County:      f.County,
		Destination: f.Destination,
		Purpose:     f.Purpose,
		TeacherID:   ownerID,
	}
	if err := s.Requests.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Get returns a request by id, or apperr.ErrNotFound.
func (s *Service) Get(id string) (*models.TransferRequest, error) {
	return s.Requests.GetByID(id)
}

// Own returns the caller's request, or apperr.ErrNotFound when they have none.
func (s *Service) Own(ownerID string) (*models.TransferRequest, error) {
	return s.Requests.FindByOwner(ownerID)
}

// Update overwrites the mutable fields of a request. Only the owner may do
// this; identity and creation time are untouched.
func (s *Service) Update(id, callerID string, f Fields) (*models.TransferRequest, error) {
	r, err := s.Requests.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r.TeacherID != callerID {
		return nil, apperr.ErrForbidden
	}
	r.School = f.School
	r.Subjects = f.Subjects
	r.County = f.County
	r.Destination = f.Destination
	r.Purpose = f.Purpose
	if err := s.Requests.Save(r); err != nil {
		return nil, fmt.Errorf("save request: %w", err)
	}
	return r, nil
}

// Delete removes a request. Only the owner may do this.
func (s *Service) Delete(id, callerID string) error {
	r, err := s.Requests.GetByID(id)
	if err != nil {
		return err
	}
	if r.TeacherID != callerID {
		return apperr.ErrForbidden
	}
	return s.Requests.Delete(r.ID)
}

// FindMatches lists other teachers' requests whose destination equals the
// caller's current sub-county, i.e. people who want to move into the spot the
// caller wants to leave. The caller's own request is never included. With no
// request of their own the caller gets apperr.ErrNotFound.
func (s *Service) FindMatches(ownerID string) ([]models.TransferRequest, error) {
	own, err := s.Requests.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return s.Requests.FindByDestination(own.County, ownerID)
}
