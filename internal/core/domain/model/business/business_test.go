package business_test

import (
	"testing"
	"time"

	"deliveryhub/internal/core/domain/model/business"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBusiness(t *testing.T) {
	now := time.Now()

	b, err := business.NewBusiness(kernel.NewUUID(), kernel.NewUUID(), "Padaria Central", "+5511999990000", "Rua A 100", now)

	require.NoError(t, err)
	require.NoError(t, b.Validate())
	assert.Equal(t, business.Pending, b.Status())
	assert.False(t, b.CanOriginateDeliveries())
}

func TestRestoreBusiness(t *testing.T) {
	now := time.Now()
	ownerID := kernel.NewUUID()

	t.Run("active_business_can_originate", func(t *testing.T) {
		b, err := business.RestoreBusiness(kernel.NewUUID(), ownerID, "Padaria Central", "", "", business.Active, now)

		require.NoError(t, err)
		assert.True(t, b.CanOriginateDeliveries())
		assert.True(t, b.IsOwnedBy(ownerID))
		assert.False(t, b.IsOwnedBy(kernel.NewUUID()))
	})

	t.Run("suspended_business_cannot_originate", func(t *testing.T) {
		b, err := business.RestoreBusiness(kernel.NewUUID(), ownerID, "Padaria Central", "", "", business.Suspended, now)

		require.NoError(t, err)
		assert.False(t, b.CanOriginateDeliveries())
	})

	t.Run("missing_name_is_rejected", func(t *testing.T) {
		_, err := business.RestoreBusiness(kernel.NewUUID(), ownerID, "", "", "", business.Active, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_status_is_rejected", func(t *testing.T) {
		_, err := business.RestoreBusiness(kernel.NewUUID(), ownerID, "Padaria Central", "", "", business.Status("CLOSED"), now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestBusinessStatusFromString(t *testing.T) {
	for _, s := range []string{"PENDING", "ACTIVE", "SUSPENDED"} {
		status, err := business.StatusFromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := business.StatusFromString("CLOSED")
	require.Error(t, err)
}
