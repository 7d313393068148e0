package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	orgID := uint(1)
	implID := uint(2)

	t.Run("customer organization only", func(t *testing.T) {
		u, err := NewUser("dispatcher1", "hash", "Диспетчер", &orgID, nil)
		require.NoError(t, err)
		require.NotNil(t, u.OrganizationID())
		assert.Nil(t, u.ImplementingOrganizationID())
	})

	t.Run("implementing organization only", func(t *testing.T) {
		u, err := NewUser("executor1", "hash", "Исполнитель", nil, &implID)
		require.NoError(t, err)
		assert.Nil(t, u.OrganizationID())
		require.NotNil(t, u.ImplementingOrganizationID())
	})

	t.Run("both organizations set is permitted", func(t *testing.T) {
		_, err := NewUser("both", "hash", "", &orgID, &implID)
		require.NoError(t, err)
	})

	t.Run("no organization rejected", func(t *testing.T) {
		_, err := NewUser("orphan", "hash", "", nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must belong to an organization")
	})

	t.Run("empty username rejected", func(t *testing.T) {
		_, err := NewUser("", "hash", "", &orgID, nil)
		assert.Error(t, err)
	})

	t.Run("username too long rejected", func(t *testing.T) {
		_, err := NewUser(strings.Repeat("a", 21), "hash", "", &orgID, nil)
		assert.Error(t, err)
	})

	t.Run("empty password hash rejected", func(t *testing.T) {
		_, err := NewUser("nopass", "", "", &orgID, nil)
		assert.Error(t, err)
	})
}
