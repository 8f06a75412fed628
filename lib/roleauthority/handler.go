package roleauthority

import (
	"strings"

	"habilitation-backend/db"
	rolestore "habilitation-backend/lib/roleauthority/store"
	"habilitation-backend/models"
	dbmodels "habilitation-backend/models/db"

	"github.com/pkg/errors"
)

var Instance Provider

type Provider interface {
	RolesOf(userID string) (models.RoleSet, error)
	List() ([]dbmodels.Role, error)
	Assign(userID string, slug models.RoleSlug) error
	Revoke(userID string, slug models.RoleSlug) error
	IsExecutorIT(userID string, profile *dbmodels.Profile) (bool, error)
}

func NewHandler() {
	Instance = &impl{
		store: rolestore.NewInstance(db.DB),
	}
}

type impl struct {
	store rolestore.Provider
}

func (i impl) RolesOf(userID string) (models.RoleSet, error) {
	list, err := i.store.RolesOfUser(userID)
	if err != nil {
		return nil, errors.Wrap(err, "erreur de lecture des rôles de l'utilisateur")
	}
	set := models.RoleSet{}
	for _, role := range list {
		set[models.RoleSlug(role.Slug)] = true
	}
	return set, nil
}

func (i impl) List() ([]dbmodels.Role, error) {
	return i.store.List()
}

func (i impl) Assign(userID string, slug models.RoleSlug) error {
	role, err := i.store.GetBySlug(string(slug))
	if err != nil {
		return err
	}
	if role == nil {
		return models.NewNotFoundError("rôle inconnu")
	}
	return i.store.AssignRole(userID, role.ID)
}

func (i impl) Revoke(userID string, slug models.RoleSlug) error {
	role, err := i.store.GetBySlug(string(slug))
	if err != nil {
		return err
	}
	if role == nil {
		return models.NewNotFoundError("rôle inconnu")
	}
	return i.store.RevokeRole(userID, role.ID)
}

// IsExecutorIT: l'utilisateur porte le rôle dédié, ou son profil le
// rattache de fait à l'informatique.
func (i impl) IsExecutorIT(userID string, profile *dbmodels.Profile) (bool, error) {
	roles, err := i.RolesOf(userID)
	if err != nil {
		return false, err
	}
	if roles.Has(models.RoleExecuteurIT) || roles.IsAdmin() {
		return true, nil
	}
	if profile != nil {
		return LooksLikeIT(profile.Fonction, profile.Departement), nil
	}
	return false, nil
}

var itMarkers = []string{"it", "informatique", "technique"}

// LooksLikeIT détecte un rattachement informatique à partir du libellé
// de fonction ou de département.
func LooksLikeIT(fonction, departement string) bool {
	for _, field := range []string{fonction, departement} {
		lowered := strings.ToLower(field)
		for _, marker := range itMarkers {
			if marker == "it" {
				// "it" seul, pas en sous-chaîne (sinon "securité" matcherait)
				for _, word := range strings.FieldsFunc(lowered, func(r rune) bool {
					return r == ' ' || r == '-' || r == '/' || r == '.'
				}) {
					if word == "it" {
						return true
					}
				}
				continue
			}
			if strings.Contains(lowered, marker) {
				return true
			}
		}
	}
	return false
}
