package models

type RbacFunc func(userID string, roles RoleSet, path string) bool

type Module string

const (
	HabilitationModule Module = "HABILITATION"
	ProfilesModule     Module = "PROFILES"
	OrgModule          Module = "ORG"
	ApplicationsModule Module = "APPLICATIONS"
	UsersModule        Module = "USERS"
	RolesModule        Module = "ROLES"
	ExportModule       Module = "EXPORT"
)

type Permission string

const (
	ViewPermission   Permission = "VIEW"
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ManagePermission Permission = "MANAGE"
	FlowPermission   Permission = "FLOW"
	ExportPermission Permission = "EXPORT"
)
