package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationStatus(t *testing.T) {
	t.Run("переходы из pending", func(t *testing.T) {
		require.True(t, ApplicationStatusPending.CanMoveTo(ApplicationStatusAccepted))
		require.True(t, ApplicationStatusPending.CanMoveTo(ApplicationStatusRejected))
		require.False(t, ApplicationStatusPending.CanMoveTo(ApplicationStatusOfferAccepted))
		require.False(t, ApplicationStatusPending.IsTerminal())
	})

	t.Run("ответ на оффер только из accepted", func(t *testing.T) {
		require.True(t, ApplicationStatusAccepted.CanMoveTo(ApplicationStatusOfferAccepted))
		require.True(t, ApplicationStatusAccepted.CanMoveTo(ApplicationStatusOfferRejected))
		require.False(t, ApplicationStatusAccepted.CanMoveTo(ApplicationStatusRejected))
		require.False(t, ApplicationStatusAccepted.IsTerminal())
	})

	t.Run("конечные статусы", func(t *testing.T) {
		for _, status := range []ApplicationStatus{
			ApplicationStatusRejected,
			ApplicationStatusOfferAccepted,
			ApplicationStatusOfferRejected,
		} {
			require.True(t, status.IsTerminal(), status)
			require.False(t, status.CanMoveTo(ApplicationStatusAccepted), status)
		}
	})

	t.Run("роли", func(t *testing.T) {
		require.True(t, StudentRole.IsValid())
		require.True(t, RecruiterRole.IsValid())
		require.False(t, UserRole("admin").IsValid())
	})
}
