package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCarResponse_NestsSpecs(t *testing.T) {
	car := Car{
		ID:           1,
		Name:         "Porsche 911 Carrera",
		Price:        115000,
		Year:         2023,
		Mileage:      4000,
		Image:        "https://example.com/911.jpg",
		Featured:     true,
		Description:  "Iconic sports car",
		Color:        "Guards Red",
		Engine:       "3.0L Twin-Turbo Flat-6",
		Transmission: "PDK",
		Fuel:         "Gasoline",
		CreatedAt:    time.Now(),
	}

	resp := car.Response()
	assert.Equal(t, car.Engine, resp.Specs.Engine)
	assert.Equal(t, car.Transmission, resp.Specs.Transmission)
	assert.Equal(t, car.Fuel, resp.Specs.Fuel)
	assert.Equal(t, car.Color, resp.Color)
	assert.Equal(t, car.CreatedAt, resp.CreatedAt)

	payload, err := json.Marshal(resp)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(payload, &decoded))

	specs, ok := decoded["specs"].(map[string]interface{})
	assert.True(t, ok, "specs must be a nested object")
	assert.Equal(t, car.Engine, specs["engine"])
	assert.Equal(t, car.Transmission, specs["transmission"])
	assert.Equal(t, car.Fuel, specs["fuel"])

	// Flat spec columns must not appear at the top level.
	assert.NotContains(t, decoded, "engine")
	assert.NotContains(t, decoded, "transmission")
	assert.NotContains(t, decoded, "fuel")
}

func TestCar_JSONHidesFlatSpecColumns(t *testing.T) {
	payload, err := json.Marshal(Car{Engine: "V8", Transmission: "Manual", Fuel: "Gasoline"})
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(payload, &decoded))
	assert.NotContains(t, decoded, "engine")
	assert.NotContains(t, decoded, "transmission")
	assert.NotContains(t, decoded, "fuel")
}
