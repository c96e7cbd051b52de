package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransferRequest is a teacher's declared intent to move from their current
// sub-county (County) to another one (Destination). Business rule: a teacher
// holds at most one request at a time; enforced in stores.RequestStore.
type TransferRequest struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt   time.Time `json:"request_made_on"`
	School      string    `json:"school" gorm:"size:60;not null"`
	Subjects    string    `json:"subjects" gorm:"size:60;not null"`
	County      string    `json:"county" gorm:"size:30;not null"`
	Destination string    `json:"destination" gorm:"size:30;not null;index"`
	Purpose     string    `json:"purpose" gorm:"type:text"`
	TeacherID   string    `json:"teacher_id" gorm:"size:36;not null;index"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *TransferRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
