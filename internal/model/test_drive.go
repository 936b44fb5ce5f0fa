package model

import "time"

// TestDriveStatus represents the status of a test-drive request.
type TestDriveStatus string

const (
	TestDriveStatusPending   TestDriveStatus = "pending"
	TestDriveStatusApproved  TestDriveStatus = "approved"
	TestDriveStatusCompleted TestDriveStatus = "completed"
	TestDriveStatusCancelled TestDriveStatus = "cancelled"
)

// TestDrive represents a user's request to test drive a car.
type TestDrive struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	UserID        uint            `json:"user_id" gorm:"not null;index"`
	CarID         uint            `json:"car_id" gorm:"not null;index"`
	PreferredDate string          `json:"preferred_date" gorm:"size:20;not null"`
	PreferredTime string          `json:"preferred_time" gorm:"size:20;not null"`
	Phone         string          `json:"phone" gorm:"size:30;not null"`
	Message       string          `json:"message,omitempty" gorm:"type:text"`
	Status        TestDriveStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt     time.Time       `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Car  Car  `json:"-" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
}

// TestDriveResponse is the wire form of a TestDrive with the car embedded.
type TestDriveResponse struct {
	ID            uint            `json:"id"`
	CarID         uint            `json:"car_id"`
	Car           *CarResponse    `json:"car,omitempty"`
	PreferredDate string          `json:"preferred_date"`
	PreferredTime string          `json:"preferred_time"`
	Phone         string          `json:"phone"`
	Message       string          `json:"message,omitempty"`
	Status        TestDriveStatus `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Response converts a stored test drive to its wire form. The car is
// included only when it was preloaded.
func (t *TestDrive) Response() TestDriveResponse {
	resp := TestDriveResponse{
		ID:            t.ID,
		CarID:         t.CarID,
		PreferredDate: t.PreferredDate,
		PreferredTime: t.PreferredTime,
		Phone:         t.Phone,
		Message:       t.Message,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
	}
	if t.Car.ID != 0 {
		car := t.Car.Response()
		resp.Car = &car
	}
	return resp
}

// TestDriveResponses maps a slice of test drives to their wire form.
func TestDriveResponses(drives []TestDrive) []TestDriveResponse {
	out := make([]TestDriveResponse, 0, len(drives))
	for i := range drives {
		out = append(out, drives[i].Response())
	}
	return out
}
