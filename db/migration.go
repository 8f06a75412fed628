package db

import (
	dbmodels "habilitation-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("lancement des migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "erreur de migration de la structure User")
	}
	if err := DB.AutoMigrate(&dbmodels.Role{}); err != nil {
		return errors.Wrap(err, "erreur de migration de la structure Role")
	}
	if err := DB.AutoMigrate(&dbmodels.Profile{}); err != nil {
		return errors.Wrap(err, "erreur de migration de la structure Profile")
	}
	if err := DB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "erreur de migration de la structure Department")
	}
	if err := DB.AutoMigrate(&dbmodels.Agency{}); err != nil {
		return errors.Wrap(err, "erreur de migration de la structure Agency")
	}
	if err := DB.AutoMigrate(&dbmodels.Subsidiary{}); err != nil {
		return errors.Wrap(err, "erreur de migration de la structure Subsidiary")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "erreur de migration de la structure Application")
	}
	if err := DB.AutoMigrate(&dbmodels.Habilitation{}); err != nil {
		return errors.Wrap(err, "erreur de migration de la structure Habilitation")
	}
	if err := DB.AutoMigrate(&dbmodels.HabilitationEvent{}); err != nil {
		return errors.Wrap(err, "erreur de migration de la structure HabilitationEvent")
	}
	log.Info("migrations terminées")
	return nil
}
