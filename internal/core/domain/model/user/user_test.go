package user_test

import (
	"testing"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/user"
	"deliveryhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	for _, s := range []string{"MERCHANT", "COURIER", "ADMIN"} {
		role, err := user.RoleFromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.RoleFromString("SUPPORT")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRestoreUser(t *testing.T) {
	now := time.Now()

	t.Run("valid_user", func(t *testing.T) {
		u, err := user.RestoreUser(kernel.NewUUID(), "Ana", "+5511999990000", user.Courier, true, false, now)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, user.Courier, u.Role())
		assert.True(t, u.IsActive())
		assert.False(t, u.IsRoot())
	})

	t.Run("invalid_role_is_rejected", func(t *testing.T) {
		_, err := user.RestoreUser(kernel.NewUUID(), "Ana", "", user.Role("SUPPORT"), true, false, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var u user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}
