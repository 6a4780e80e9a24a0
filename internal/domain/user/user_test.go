package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/traineme-api/internal/models"
)

func TestParseRole(t *testing.T) {
	for in, want := range map[string]models.Role{
		"user": models.RoleUser, "USER": models.RoleUser, "Trainer": models.RoleTrainer, " trainer ": models.RoleTrainer,
	} {
		got, err := ParseRole(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseRole("admin")
	assert.Error(t, err)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
}
