package rbac

import (
	"habilitation-backend/models"
)

var (
	AllRoles          = []models.RoleSlug{models.RoleAdmin, models.RoleSuperAdmin, models.RoleRh, models.RoleMetier, models.RoleControle, models.RoleExecuteurIT}
	AdminRoleSet      = []models.RoleSlug{models.RoleAdmin, models.RoleSuperAdmin}
	ValidatorRoleSet  = []models.RoleSlug{models.RoleAdmin, models.RoleSuperAdmin, models.RoleMetier, models.RoleControle}
	ExecutorRoleSet   = []models.RoleSlug{models.RoleAdmin, models.RoleSuperAdmin, models.RoleExecuteurIT, models.RoleMetier}
	SupervisorRoleSet = []models.RoleSlug{models.RoleAdmin, models.RoleSuperAdmin, models.RoleControle}
	RhAdminRoleSet    = []models.RoleSlug{models.RoleAdmin, models.RoleSuperAdmin, models.RoleRh}
)

func (i *impl) initRules() {
	i.habilitations()
	i.profiles()
	i.org()
	i.applications()
	i.users()
	i.exports()
}

func (i *impl) habilitations() {
	//VIEW (le périmètre réel est filtré par les règles de visibilité)
	i.RegisterRule(models.HabilitationModule, models.ViewPermission, AllRoles, "/api/v1/habilitations/list [post]", nil)
	i.RegisterRule(models.HabilitationModule, models.ViewPermission, AllRoles, "/api/v1/habilitations/{id} [get]", nil)
	i.RegisterRule(models.HabilitationModule, models.ViewPermission, AllRoles, "/api/v1/habilitations/{id}/sheet [get]", nil)
	//CREATE/EDIT
	i.RegisterRule(models.HabilitationModule, models.CreatePermission, AllRoles, "/api/v1/habilitations [post]", nil)
	i.RegisterRule(models.HabilitationModule, models.EditPermission, AllRoles, "/api/v1/habilitations/{id}/rights [put]", nil)
	//FLOW (le moteur de transitions recontrôle l'acteur attendu)
	i.RegisterRule(models.HabilitationModule, models.FlowPermission, ValidatorRoleSet, "/api/v1/habilitations/{id}/decision [put]", nil)
	i.RegisterRule(models.HabilitationModule, models.FlowPermission, ExecutorRoleSet, "/api/v1/habilitations/{id}/claim [put]", nil)
	i.RegisterRule(models.HabilitationModule, models.FlowPermission, ExecutorRoleSet, "/api/v1/habilitations/{id}/execute [put]", nil)
	//MANAGE
	i.RegisterRule(models.HabilitationModule, models.ManagePermission, AdminRoleSet, "/api/v1/habilitations/{id} [delete]", nil)
}

func (i *impl) profiles() {
	//VIEW
	i.RegisterRule(models.ProfilesModule, models.ViewPermission, AllRoles, "/api/v1/profiles/list [post]", nil)
	i.RegisterRule(models.ProfilesModule, models.ViewPermission, AllRoles, "/api/v1/profiles/{id} [get]", nil)
	i.RegisterRule(models.ProfilesModule, models.ViewPermission, AllRoles, "/api/v1/profiles/{id}/reports [get]", nil)
	//MANAGE
	i.RegisterRule(models.ProfilesModule, models.ManagePermission, RhAdminRoleSet, "/api/v1/profiles [post]", nil)
	i.RegisterRule(models.ProfilesModule, models.ManagePermission, RhAdminRoleSet, "/api/v1/profiles/{id} [put]", nil)
	i.RegisterRule(models.ProfilesModule, models.ManagePermission, AdminRoleSet, "/api/v1/profiles/{id} [delete]", nil)
	i.RegisterRule(models.ProfilesModule, models.ManagePermission, RhAdminRoleSet, "/api/v1/profiles/fix_managers [post]", nil)
}

func (i *impl) org() {
	//VIEW
	i.RegisterRule(models.OrgModule, models.ViewPermission, AllRoles, "/api/v1/dicts/departments [get]", nil)
	i.RegisterRule(models.OrgModule, models.ViewPermission, AllRoles, "/api/v1/dicts/agencies [get]", nil)
	i.RegisterRule(models.OrgModule, models.ViewPermission, AllRoles, "/api/v1/dicts/subsidiaries [get]", nil)
	//MANAGE
	for _, pattern := range []string{
		"/api/v1/dicts/departments [post]",
		"/api/v1/dicts/departments/{id} [put]",
		"/api/v1/dicts/departments/{id} [delete]",
		"/api/v1/dicts/agencies [post]",
		"/api/v1/dicts/agencies/{id} [put]",
		"/api/v1/dicts/agencies/{id} [delete]",
		"/api/v1/dicts/subsidiaries [post]",
		"/api/v1/dicts/subsidiaries/{id} [put]",
		"/api/v1/dicts/subsidiaries/{id} [delete]",
	} {
		i.RegisterRule(models.OrgModule, models.ManagePermission, AdminRoleSet, pattern, nil)
	}
}

func (i *impl) applications() {
	//VIEW
	i.RegisterRule(models.ApplicationsModule, models.ViewPermission, AllRoles, "/api/v1/applications [get]", nil)
	//MANAGE
	i.RegisterRule(models.ApplicationsModule, models.ManagePermission, AdminRoleSet, "/api/v1/applications [post]", nil)
	i.RegisterRule(models.ApplicationsModule, models.ManagePermission, AdminRoleSet, "/api/v1/applications/{id} [put]", nil)
	i.RegisterRule(models.ApplicationsModule, models.ManagePermission, AdminRoleSet, "/api/v1/applications/{id} [delete]", nil)
}

func (i *impl) users() {
	//VIEW
	i.RegisterRule(models.UsersModule, models.ViewPermission, AdminRoleSet, "/api/v1/users [get]", nil)
	i.RegisterRule(models.UsersModule, models.ViewPermission, AdminRoleSet, "/api/v1/users/{id} [get]", nil)
	i.RegisterRule(models.RolesModule, models.ViewPermission, AllRoles, "/api/v1/roles [get]", nil)
	i.RegisterRule(models.RolesModule, models.ViewPermission, AllRoles, "/api/v1/roles/permissions [get]", nil)
	//MANAGE
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/users [post]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/users/{id} [put]", nil)
}

func (i *impl) exports() {
	i.RegisterRule(models.ExportModule, models.ExportPermission, SupervisorRoleSet, "/api/v1/habilitations/export [post]", nil)
	i.RegisterRule(models.ExportModule, models.ExportPermission, RhAdminRoleSet, "/api/v1/profiles/export [post]", nil)
}
