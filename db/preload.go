package db

import (
	"habilitation-backend/config"
	accountstore "habilitation-backend/lib/account/store"
	applicationstore "habilitation-backend/lib/application/store"
	rolestore "habilitation-backend/lib/roleauthority/store"
	authutils "habilitation-backend/lib/utils/auth-utils"
	"habilitation-backend/models"
	dbmodels "habilitation-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	fillRoles()
	fillApplications()
	fillAdminUser()
}

var defaultRoles = []dbmodels.Role{
	{Nom: "Administrateur", Slug: string(models.RoleAdmin), Actif: true},
	{Nom: "Super administrateur", Slug: string(models.RoleSuperAdmin), Actif: true},
	{Nom: "Ressources Humaines", Slug: string(models.RoleRh), Actif: true},
	{Nom: "Métier", Slug: string(models.RoleMetier), Actif: true},
	{Nom: "Contrôle Permanent", Slug: string(models.RoleControle), Actif: true},
	{Nom: "Exécuteur IT", Slug: string(models.RoleExecuteurIT), Actif: true},
}

func fillRoles() {
	store := rolestore.NewInstance(DB)
	for _, role := range defaultRoles {
		exist, err := store.ExistBySlug(role.Slug)
		if err != nil {
			log.WithError(err).Error("erreur de préchargement des rôles")
			return
		}
		if exist {
			continue
		}
		if err = store.CreateRole(role); err != nil {
			log.WithError(err).WithField("slug", role.Slug).Error("erreur d'ajout du rôle")
			return
		}
	}
	log.Info("rôles préchargés")
}

// Catalogue par défaut des applications sélectionnables dans une demande.
var defaultApplications = []string{
	"Amplitude",
	"Messagerie",
	"SWIFT",
	"Active Directory",
	"Intranet",
	"GED",
	"Sage",
	"Monétique",
}

func fillApplications() {
	store := applicationstore.NewInstance(DB)
	count, err := store.Count()
	if err != nil {
		log.WithError(err).Error("erreur de préchargement du catalogue applicatif")
		return
	}
	if count > 0 {
		return
	}
	for idx, nom := range defaultApplications {
		rec := dbmodels.Application{
			Nom:   nom,
			Actif: true,
			Ordre: idx + 1,
		}
		if _, err = store.Create(rec); err != nil {
			log.WithError(err).WithField("application", nom).Error("erreur d'ajout de l'application")
			return
		}
	}
	log.Info("catalogue applicatif préchargé")
}

func fillAdminUser() {
	if config.Conf.Admin.Password == "" {
		return
	}
	userStore := accountstore.NewInstance(DB)
	exist, err := userStore.ExistByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("erreur de vérification du compte administrateur")
		return
	}
	if exist {
		return
	}
	rec := dbmodels.User{
		Name:     "Administrateur",
		Email:    config.Conf.Admin.Email,
		Password: authutils.GetMD5Hash(config.Conf.Admin.Password),
		IsActive: true,
	}
	userID, err := userStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("erreur de création du compte administrateur")
		return
	}
	roleStore := rolestore.NewInstance(DB)
	adminRole, err := roleStore.GetBySlug(string(models.RoleAdmin))
	if err != nil || adminRole == nil {
		log.WithError(err).Error("rôle administrateur introuvable")
		return
	}
	if err = roleStore.AssignRole(userID, adminRole.ID); err != nil {
		log.WithError(err).Error("erreur d'affectation du rôle administrateur")
		return
	}
	log.Info("compte administrateur initialisé")
}
