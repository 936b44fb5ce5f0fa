package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleOwner.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestUserProfile_NeverCarriesPasswordHash(t *testing.T) {
	user := User{
		ID:           1,
		Email:        "a@x.com",
		Username:     "a",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         RoleAdmin,
		Active:       true,
	}

	payload, err := json.Marshal(user.Profile())
	assert.NoError(t, err)
	assert.NotContains(t, string(payload), "password")
	assert.NotContains(t, string(payload), user.PasswordHash)

	// The entity itself also hides the hash from JSON.
	raw, err := json.Marshal(user)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), user.PasswordHash)
}
