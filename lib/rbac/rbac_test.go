package rbac

import (
	"testing"

	"habilitation-backend/models"

	"github.com/stretchr/testify/require"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/habilitations/{id}/decision [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/habilitations/123-321/decision"
		isMatch := r1.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri := "/api/v1/habilitations/decision"
		isMatch = r1.MatchString(invalidUri)
		require.Equal(t, false, isMatch)

		path, method, err = parseSwaggerPattern("/api/v1/habilitations/{id}/events/{eventID} [get]")
		require.Nil(t, err)
		require.Equal(t, GET, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/habilitations/123-321/events/qwe-ewr123-wr-12"
		isMatch = r2.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri = "/api/v1/habilitations/we-ewr123-wr-12/events"
		isMatch = r2.MatchString(invalidUri)
		require.Equal(t, false, isMatch)
	})

	t.Run(`rule lookup and role filtering`, func(t *testing.T) {
		NewHandler()

		ruleFn, found := Instance.GetRuleFunc("PUT", "/api/v1/habilitations/abc-123/decision")
		require.True(t, found)
		require.True(t, ruleFn("u1", models.NewRoleSet(models.RoleMetier), "/api/v1/habilitations/abc-123/decision"))
		require.True(t, ruleFn("u1", models.NewRoleSet(models.RoleControle), "/api/v1/habilitations/abc-123/decision"))
		require.False(t, ruleFn("u1", models.NewRoleSet(models.RoleRh), "/api/v1/habilitations/abc-123/decision"))
		// un administrateur passe toujours
		require.True(t, ruleFn("u1", models.NewRoleSet(models.RoleAdmin), "/api/v1/habilitations/abc-123/decision"))

		ruleFn, found = Instance.GetRuleFunc("DELETE", "/api/v1/habilitations/abc-123")
		require.True(t, found)
		require.False(t, ruleFn("u1", models.NewRoleSet(models.RoleMetier, models.RoleControle), "/api/v1/habilitations/abc-123"))
		require.True(t, ruleFn("u1", models.NewRoleSet(models.RoleSuperAdmin), "/api/v1/habilitations/abc-123"))

		_, found = Instance.GetRuleFunc("PATCH", "/api/v1/habilitations/abc-123")
		require.False(t, found)
	})

	t.Run(`permissions aggregation`, func(t *testing.T) {
		NewHandler()

		perms := Instance.GetPermissions(models.RoleControle)
		require.Contains(t, perms[models.HabilitationModule], models.FlowPermission)
		require.Contains(t, perms[models.ExportModule], models.ExportPermission)
		require.NotContains(t, perms[models.UsersModule], models.ManagePermission)

		perms = Instance.GetPermissions(models.RoleRh)
		require.Contains(t, perms[models.ProfilesModule], models.ManagePermission)
		require.NotContains(t, perms[models.HabilitationModule], models.FlowPermission)
	})
}
