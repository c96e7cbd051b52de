package stores

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Saddickq/TeacherTrek/internal/apperr"
	"github.com/Saddickq/TeacherTrek/models"
)

// UserStore abstracts user persistence.
type UserStore interface {
	// Create persists a new user. The unique index on email backstops the
	// duplicate check done at validation time.
	Create(u *models.User) error
	// FindByEmail returns the user for an email, or apperr.ErrNotFound.
	FindByEmail(email string) (*models.User, error)
	// FindByUsername returns any user holding the username, or apperr.ErrNotFound.
	FindByUsername(username string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// Save writes back a mutated user.
	Save(u *models.User) error
}

// GormUserStore implements UserStore using GORM.
type GormUserStore struct{ DB *gorm.DB }

func NewGormUserStore(db *gorm.DB) *GormUserStore { return &GormUserStore{DB: db} }

func (s *GormUserStore) Create(u *models.User) error {
	return s.DB.Create(u).Error
}

func (s *GormUserStore) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &u, nil
}

func (s *GormUserStore) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := s.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &u, nil
}

func (s *GormUserStore) GetByID(id string) (*models.User, error) {
	var u models.User
	if err := s.DB.First(&u, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &u, nil
}

func (s *GormUserStore) Save(u *models.User) error {
	return s.DB.Save(u).Error
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return err
}
