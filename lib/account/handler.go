package accounthandler

import (
	"time"

	"habilitation-backend/db"
	accountstore "habilitation-backend/lib/account/store"
	profilestore "habilitation-backend/lib/profile/store"
	"habilitation-backend/lib/roleauthority"
	authutils "habilitation-backend/lib/utils/auth-utils"
	"habilitation-backend/models"
	accountapimodels "habilitation-backend/models/api/account"
	authapimodels "habilitation-backend/models/api/auth"
	dbmodels "habilitation-backend/models/db"

	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	Create(data accountapimodels.UserData) (id string, err error)
	Update(id string, data accountapimodels.UserData) error
	GetByID(id string) (*accountapimodels.UserView, error)
	List() ([]accountapimodels.UserView, error)
	ProfileOf(userID string) (*dbmodels.Profile, error)
}

func NewHandler() {
	Instance = impl{
		store:        accountstore.NewInstance(db.DB),
		profileStore: profilestore.NewInstance(db.DB),
	}
}

type impl struct {
	store        accountstore.Provider
	profileStore profilestore.Provider
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.GetByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("Erreur de recherche de l'utilisateur par email")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("aucun utilisateur avec cet email")
		return authapimodels.JWTResponse{}, models.NewForbiddenError("identifiants invalides")
	}
	if !user.IsActive {
		logger.Debug("compte désactivé")
		return authapimodels.JWTResponse{}, models.NewForbiddenError("identifiants invalides")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("mot de passe invalide")
		return authapimodels.JWTResponse{}, models.NewForbiddenError("identifiants invalides")
	}
	tokenString, err := authutils.GetToken(user.ID, user.Name)
	if err != nil {
		logger.WithError(err).Error("Erreur de génération du JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("Erreur de mise à jour de la date de dernière connexion")
	}
	return authapimodels.JWTResponse{
		Token: tokenString,
	}, nil
}

func (i impl) Create(data accountapimodels.UserData) (id string, err error) {
	if err := data.Validate(); err != nil {
		return "", models.NewValidationError(err.Error())
	}
	if data.Password == "" {
		return "", models.NewFieldValidationError("password", "le mot de passe est requis")
	}
	exist, err := i.store.ExistByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if exist {
		return "", models.NewFieldValidationError("email", "un compte existe déjà avec cet email")
	}
	rec := dbmodels.User{
		Name:     data.Name,
		Email:    data.Email,
		Password: authutils.GetMD5Hash(data.Password),
		IsActive: data.IsActive,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	for _, slug := range data.Roles {
		if err = roleauthority.Instance.Assign(id, slug); err != nil {
			return "", err
		}
	}
	return id, nil
}

func (i impl) Update(id string, data accountapimodels.UserData) error {
	if err := data.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	user, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewNotFoundError("utilisateur introuvable")
	}
	updMap := map[string]interface{}{
		"name":      data.Name,
		"email":     data.Email,
		"is_active": data.IsActive,
	}
	if data.Password != "" {
		updMap["password"] = authutils.GetMD5Hash(data.Password)
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	if data.Roles == nil {
		return nil
	}
	wanted := models.NewRoleSet(data.Roles...)
	current := models.RoleSet{}
	for _, role := range user.Roles {
		current[models.RoleSlug(role.Slug)] = true
	}
	for slug := range wanted {
		if !current.Has(slug) {
			if err = roleauthority.Instance.Assign(id, slug); err != nil {
				return err
			}
		}
	}
	for slug := range current {
		if !wanted.Has(slug) {
			if err = roleauthority.Instance.Revoke(id, slug); err != nil {
				return err
			}
		}
	}
	return nil
}

func (i impl) GetByID(id string) (*accountapimodels.UserView, error) {
	user, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("utilisateur introuvable")
	}
	view := accountapimodels.UserConvert(*user)
	return &view, nil
}

func (i impl) List() ([]accountapimodels.UserView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]accountapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, accountapimodels.UserConvert(rec))
	}
	return result, nil
}

// ProfileOf retrouve la fiche collaborateur associée au compte, par
// correspondance d'email. Un compte technique peut ne pas en avoir.
func (i impl) ProfileOf(userID string) (*dbmodels.Profile, error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return i.profileStore.GetByEmail(user.Email)
}
