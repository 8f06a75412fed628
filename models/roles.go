package models

type RoleSlug string

const (
	RoleAdmin       RoleSlug = "admin"
	RoleSuperAdmin  RoleSlug = "super_admin"
	RoleRh          RoleSlug = "rh"
	RoleMetier      RoleSlug = "metier"
	RoleControle    RoleSlug = "controle"
	RoleExecuteurIT RoleSlug = "executeur_it"
)

var roleHumanName = map[RoleSlug]string{
	RoleAdmin:       "Administrateur",
	RoleSuperAdmin:  "Super administrateur",
	RoleRh:          "Ressources Humaines",
	RoleMetier:      "Métier",
	RoleControle:    "Contrôle Permanent",
	RoleExecuteurIT: "Exécuteur IT",
}

func (r RoleSlug) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r RoleSlug) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type RoleSet map[RoleSlug]bool

func NewRoleSet(roles ...RoleSlug) RoleSet {
	set := RoleSet{}
	for _, role := range roles {
		set[role] = true
	}
	return set
}

func (s RoleSet) Has(role RoleSlug) bool {
	return s[role]
}

func (s RoleSet) HasAny(roles ...RoleSlug) bool {
	for _, role := range roles {
		if s[role] {
			return true
		}
	}
	return false
}

func (s RoleSet) IsAdmin() bool {
	return s.HasAny(RoleAdmin, RoleSuperAdmin)
}

type ProfileStatus string

const (
	ProfileActif   ProfileStatus = "actif"
	ProfileInactif ProfileStatus = "inactif"
)

var profileStatusHumanName = map[ProfileStatus]string{
	ProfileActif:   "Actif",
	ProfileInactif: "Inactif",
}

func (s ProfileStatus) ToHuman() string {
	if human, exist := profileStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
