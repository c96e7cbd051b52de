package stores

import (
	"gorm.io/gorm"

	"github.com/Saddickq/TeacherTrek/internal/apperr"
	"github.com/Saddickq/TeacherTrek/models"
)

// RequestStore abstracts transfer request persistence.
type RequestStore interface {
	// Create persists a new request, or returns apperr.ErrConflict when the
	// owner already has one. The check and the insert run in one transaction
	// so concurrent submissions cannot both pass.
	Create(r *models.TransferRequest) error
	// GetByID returns a request, or apperr.ErrNotFound.
	GetByID(id string) (*models.TransferRequest, error)
	// FindByOwner returns the owner's request, or apperr.ErrNotFound.
	FindByOwner(teacherID string) (*models.TransferRequest, error)
	// Save writes back a mutated request.
	Save(r *models.TransferRequest) error
	Delete(id string) error
	// FindByDestination lists requests heading to a sub-county, excluding
	// those owned by excludeTeacherID.
	FindByDestination(destination, excludeTeacherID string) ([]models.TransferRequest, error)
}

// GormRequestStore implements RequestStore using GORM.
type GormRequestStore struct{ DB *gorm.DB }

func NewGormRequestStore(db *gorm.DB) *GormRequestStore { return &GormRequestStore{DB: db} }

func (s *GormRequestStore) Create(r *models.TransferRequest) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.TransferRequest{}).
			Where("teacher_id = ?", r.TeacherID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return apperr.ErrConflict
		}
		return tx.Create(r).Error
	})
}

func (s *GormRequestStore) GetByID(id string) (*models.TransferRequest, error) {
	var r models.TransferRequest
	if err := s.DB.First(&r, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &r, nil
}

func (s *GormRequestStore) FindByOwner(teacherID string) (*models.TransferRequest, error) {
	var r models.TransferRequest
	if err := s.DB.First(&r, "teacher_id = ?", teacherID).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &r, nil
}

func (s *GormRequestStore) Save(r *models.TransferRequest) error {
	return s.DB.Save(r).Error
}

func (s *GormRequestStore) Delete(id string) error {
	res := s.DB.Delete(&models.TransferRequest{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *GormRequestStore) FindByDestination(destination, excludeTeacherID string) ([]models.TransferRequest, error) {
	var out []models.TransferRequest
	err := s.DB.
		Where("destination = ? AND teacher_id <> ?", destination, excludeTeacherID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}
