package member

import (
	"time"

	"github.com/google/uuid"
)

// Status classifies a member's standing with the club.
type Status string

const (
	StatusStudent Status = "student"
	StatusAlumni  Status = "alumni"
)

// Member is the subset of the membership record the portal core works with.
// The card generator reads it; only the store and the ID allocator mutate it.
type Member struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	MemberIDNumber  string    `json:"member_id_number" gorm:"size:20;uniqueIndex"`
	FullName        string    `json:"full_name" gorm:"size:200;not null"`
	Course          string    `json:"course" gorm:"size:200"`
	Year            string    `json:"year" gorm:"size:50"`
	Status          Status    `json:"status" gorm:"size:20;not null;default:student"`
	ProfileImageRef string    `json:"profile_image_ref" gorm:"size:500"`
	DigitalIDPath   string    `json:"digital_id_path" gorm:"size:200"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the table name used by the gorm store.
func (Member) TableName() string {
	return "members"
}
