package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHabStatus(t *testing.T) {
	t.Run(`terminal statuses`, func(t *testing.T) {
		require.True(t, HabStatusCompleted.IsTerminal())
		require.True(t, HabStatusRejected.IsTerminal())
		require.False(t, HabStatusApproved.IsTerminal())
		require.False(t, HabStatusDraft.IsTerminal())
	})

	t.Run(`pending stages`, func(t *testing.T) {
		require.True(t, HabStatusPendingN1.IsPendingStage())
		require.True(t, HabStatusPendingN2.IsPendingStage())
		require.True(t, HabStatusPendingControl.IsPendingStage())
		require.False(t, HabStatusInProgress.IsPendingStage())
	})

	t.Run(`human labels`, func(t *testing.T) {
		require.Equal(t, "En attente du Contrôle Permanent", HabStatusPendingControl.ToHuman())
		// statut inconnu rendu tel quel
		require.Equal(t, "autre", HabStatus("autre").ToHuman())
	})
}

func TestRoleSet(t *testing.T) {
	set := NewRoleSet(RoleMetier, RoleControle)
	require.True(t, set.Has(RoleMetier))
	require.False(t, set.Has(RoleRh))
	require.True(t, set.HasAny(RoleRh, RoleControle))
	require.False(t, set.IsAdmin())
	require.True(t, NewRoleSet(RoleSuperAdmin).IsAdmin())
}
