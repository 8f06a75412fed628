package orggraph

// Résolution hiérarchique pour le routage des validations.
// Le N+1 est le manager direct du profil, le N+2 le manager du manager.
// Le N+2 n'est jamais stocké: il est recalculé à chaque besoin, un
// changement d'organigramme est donc pris en compte immédiatement.

import (
	dbmodels "habilitation-backend/models/db"

	"github.com/pkg/errors"
)

// ProfileSource: accès en lecture à l'organigramme.
type ProfileSource interface {
	GetByID(id string) (*dbmodels.Profile, error)
	ListByManager(managerID string) ([]dbmodels.Profile, error)
}

type Provider interface {
	ManagerOf(profileID string) (*dbmodels.Profile, error)
	SkipManagerOf(profileID string) (*dbmodels.Profile, error)
	DirectReports(profileID string) ([]dbmodels.Profile, error)
	IsManagerOf(managerProfileID, profileID string) (bool, error)
}

func NewInstance(profiles ProfileSource) Provider {
	return &impl{
		profiles: profiles,
	}
}

type impl struct {
	profiles ProfileSource
}

// ManagerOf retourne le N+1 du profil, ou nil s'il n'en a pas.
func (i impl) ManagerOf(profileID string) (*dbmodels.Profile, error) {
	rec, err := i.profiles.GetByID(profileID)
	if err != nil {
		return nil, errors.Wrap(err, "erreur de lecture du profil")
	}
	if rec == nil || rec.ManagerID == nil || *rec.ManagerID == "" {
		return nil, nil
	}
	if *rec.ManagerID == rec.ID {
		// auto-référence, donnée corrompue, on l'ignore
		return nil, nil
	}
	return i.profiles.GetByID(*rec.ManagerID)
}

// SkipManagerOf retourne le N+2 du profil (manager du manager).
// Retourne nil si la chaîne s'arrête avant, ou si le N+2 calculé
// retombe sur le profil de départ (cycle à deux dans l'organigramme).
func (i impl) SkipManagerOf(profileID string) (*dbmodels.Profile, error) {
	n1, err := i.ManagerOf(profileID)
	if err != nil || n1 == nil {
		return nil, err
	}
	n2, err := i.ManagerOf(n1.ID)
	if err != nil || n2 == nil {
		return nil, err
	}
	if n2.ID == profileID || n2.ID == n1.ID {
		return nil, nil
	}
	return n2, nil
}

func (i impl) DirectReports(profileID string) ([]dbmodels.Profile, error) {
	return i.profiles.ListByManager(profileID)
}

// IsManagerOf: managerProfileID est-il le N+1 direct de profileID.
func (i impl) IsManagerOf(managerProfileID, profileID string) (bool, error) {
	n1, err := i.ManagerOf(profileID)
	if err != nil {
		return false, err
	}
	return n1 != nil && n1.ID == managerProfileID, nil
}
