package model

import "time"

// ContactInquiry represents a contact-form submission. UserID is nullable:
// an inquiry outlives its author, the reference is nulled when the user is
// deleted.
type ContactInquiry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    *uint     `json:"user_id" gorm:"index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null;index"`
	Phone     string    `json:"phone,omitempty" gorm:"size:30"`
	Subject   string    `json:"subject,omitempty" gorm:"size:255"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}
