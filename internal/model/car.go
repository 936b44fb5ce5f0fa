package model

import "time"

// Car represents a vehicle listing in the dealership inventory.
// Engine, transmission and fuel are stored as flat columns; they are only
// exposed through the nested specs object in CarResponse.
type Car struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null;index"`
	Price        int       `json:"price" gorm:"not null"`
	Year         int       `json:"year" gorm:"not null"`
	Mileage      int       `json:"mileage" gorm:"not null"`
	Image        string    `json:"image" gorm:"size:500"`
	Featured     bool      `json:"featured" gorm:"default:false;index"`
	Description  string    `json:"description" gorm:"type:text"`
	Color        string    `json:"color,omitempty" gorm:"size:50"`
	Engine       string    `json:"-" gorm:"size:100"`
	Transmission string    `json:"-" gorm:"size:100"`
	Fuel         string    `json:"-" gorm:"size:50"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

// CarSpecs groups the technical columns for API payloads.
type CarSpecs struct {
	Engine       string `json:"engine"`
	Transmission string `json:"transmission"`
	Fuel         string `json:"fuel"`
}

// CarResponse is the wire form of a Car with specs nested.
type CarResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       int       `json:"price"`
	Year        int       `json:"year"`
	Mileage     int       `json:"mileage"`
	Image       string    `json:"image"`
	Featured    bool      `json:"featured"`
	Description string    `json:"description"`
	Color       string    `json:"color,omitempty"`
	Specs       CarSpecs  `json:"specs"`
	CreatedAt   time.Time `json:"created_at"`
}

// Response converts a stored car to its wire form. This is the single place
// car fields are exposed.
func (c *Car) Response() CarResponse {
	return CarResponse{
		ID:          c.ID,
		Name:        c.Name,
		Price:       c.Price,
		Year:        c.Year,
		Mileage:     c.Mileage,
		Image:       c.Image,
		Featured:    c.Featured,
		Description: c.Description,
		Color:       c.Color,
		Specs: CarSpecs{
			Engine:       c.Engine,
			Transmission: c.Transmission,
			Fuel:         c.Fuel,
		},
		CreatedAt: c.CreatedAt,
	}
}

// CarResponses maps a slice of cars to their wire form.
func CarResponses(cars []Car) []CarResponse {
	out := make([]CarResponse, 0, len(cars))
	for i := range cars {
		out = append(out, cars[i].Response())
	}
	return out
}
