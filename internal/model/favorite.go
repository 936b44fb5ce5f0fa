package model

import "time"

// Favorite links a user to a car they saved. The composite unique index
// guarantees a user cannot favorite the same car twice.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_car"`
	CarID     uint      `json:"car_id" gorm:"not null;uniqueIndex:idx_user_car"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Car  Car  `json:"-" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
}
