package accountapimodels

import (
	"net/mail"
	"time"

	"habilitation-backend/models"
	dbmodels "habilitation-backend/models/db"

	"github.com/pkg/errors"
)

type UserData struct {
	Name     string            `json:"name"`     // nom affiché de l'utilisateur
	Email    string            `json:"email"`    // email, sert d'identifiant de connexion
	Password string            `json:"password"` // mot de passe (création uniquement)
	IsActive bool              `json:"is_active"`
	Roles    []models.RoleSlug `json:"roles"` // slugs des rôles attribués
}

func (u UserData) Validate() error {
	if u.Name == "" {
		return errors.New("le nom est requis")
	}
	_, err := mail.ParseAddress(u.Email)
	if err != nil {
		return errors.New("le format de l'email est invalide")
	}
	return nil
}

type UserView struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	IsActive  bool              `json:"is_active"`
	LastLogin *time.Time        `json:"last_login,omitempty"`
	Roles     []models.RoleSlug `json:"roles"`
}

func UserConvert(rec dbmodels.User) UserView {
	view := UserView{
		ID:       rec.ID,
		Name:     rec.Name,
		Email:    rec.Email,
		IsActive: rec.IsActive,
		Roles:    []models.RoleSlug{},
	}
	if !rec.LastLogin.IsZero() {
		lastLogin := rec.LastLogin
		view.LastLogin = &lastLogin
	}
	for _, role := range rec.Roles {
		view.Roles = append(view.Roles, models.RoleSlug(role.Slug))
	}
	return view
}

type RoleView struct {
	ID          string `json:"id"`
	Nom         string `json:"nom"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Actif       bool   `json:"actif"`
}

func RoleConvert(rec dbmodels.Role) RoleView {
	return RoleView{
		ID:          rec.ID,
		Nom:         rec.Nom,
		Slug:        rec.Slug,
		Description: rec.Description,
		Actif:       rec.Actif,
	}
}
