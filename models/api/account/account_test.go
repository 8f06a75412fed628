package accountapimodels

import (
	"testing"
	"time"

	"habilitation-backend/models"
	dbmodels "habilitation-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestUserConvert(t *testing.T) {
	t.Run(`never logged in`, func(t *testing.T) {
		rec := dbmodels.User{Name: "Awa Diallo", Email: "a.diallo@banque.ci", IsActive: true}
		rec.ID = "u1"
		view := UserConvert(rec)
		require.Nil(t, view.LastLogin)
		require.Equal(t, "u1", view.ID)
		require.Equal(t, []models.RoleSlug{}, view.Roles)
	})

	t.Run(`last login and roles carried over`, func(t *testing.T) {
		lastLogin := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
		rec := dbmodels.User{
			Name:      "Awa Diallo",
			Email:     "a.diallo@banque.ci",
			IsActive:  true,
			LastLogin: lastLogin,
			Roles: []dbmodels.Role{
				{Nom: "Ressources Humaines", Slug: string(models.RoleRh), Actif: true},
			},
		}
		view := UserConvert(rec)
		require.NotNil(t, view.LastLogin)
		require.Equal(t, lastLogin, *view.LastLogin)
		require.Equal(t, []models.RoleSlug{models.RoleRh}, view.Roles)
	})
}

func TestUserDataValidate(t *testing.T) {
	data := UserData{Name: "Awa Diallo", Email: "a.diallo@banque.ci"}
	require.NoError(t, data.Validate())

	data.Email = "pas-un-email"
	require.Error(t, data.Validate())

	data.Email = "a.diallo@banque.ci"
	data.Name = ""
	require.Error(t, data.Validate())
}
