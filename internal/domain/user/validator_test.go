package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateEmail("alice@example.com"))
	assert.NoError(t, v.ValidateEmail("a.b+tag@sub.example.org"))

	assert.Error(t, v.ValidateEmail(""))
	assert.Error(t, v.ValidateEmail("not-an-email"))
	assert.Error(t, v.ValidateEmail("@example.com"))
}

func TestValidateUsername(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateUsername("alice"))
	assert.NoError(t, v.ValidateUsername("a_l-i.ce42"))

	assert.Error(t, v.ValidateUsername("ab"))
	assert.Error(t, v.ValidateUsername(strings.Repeat("a", MaxUsernameLen+1)))
	assert.Error(t, v.ValidateUsername("has space"))
	assert.Error(t, v.ValidateUsername("semi;colon"))
}

func TestValidatePassword(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidatePassword("longenough"))
	assert.Error(t, v.ValidatePassword("short"))
	assert.Error(t, v.ValidatePassword(""))
}

func TestValidateRegister(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateRegister("alice@example.com", "alice", "longenough"))
	assert.Error(t, v.ValidateRegister("", "alice", "longenough"))
	assert.Error(t, v.ValidateRegister("alice@example.com", "a", "longenough"))
	assert.Error(t, v.ValidateRegister("alice@example.com", "alice", "short"))
}
