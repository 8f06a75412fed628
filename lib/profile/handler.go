package profilehandler

import (
	"habilitation-backend/db"
	departmentstore "habilitation-backend/lib/dicts/department/store"
	profilestore "habilitation-backend/lib/profile/store"
	"habilitation-backend/models"
	profileapimodels "habilitation-backend/models/api/profile"
	dbmodels "habilitation-backend/models/db"

	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	Create(data profileapimodels.ProfileData) (id string, err error)
	Update(id string, data profileapimodels.ProfileData) error
	Delete(id string) error
	GetByID(id string) (*profileapimodels.ProfileView, error)
	List(filter profileapimodels.ProfileFilter) ([]profileapimodels.ProfileView, int64, error)
	DirectReports(id string) ([]profileapimodels.ProfileView, error)
	FixMissingManagers() (fixed int, err error)
}

func NewHandler() {
	Instance = &impl{
		store:           profilestore.NewInstance(db.DB),
		departmentStore: departmentstore.NewInstance(db.DB),
	}
}

type impl struct {
	store           profilestore.Provider
	departmentStore departmentstore.Provider
}

func (i impl) Create(data profileapimodels.ProfileData) (id string, err error) {
	if err := data.Validate(); err != nil {
		return "", models.NewValidationError(err.Error())
	}
	exist, err := i.store.GetByMatricule(data.Matricule)
	if err != nil {
		return "", err
	}
	if exist != nil {
		return "", models.NewFieldValidationError("matricule", "un profil porte déjà ce matricule")
	}
	rec := dbmodels.Profile{
		Matricule:   data.Matricule,
		Prenom:      data.Prenom,
		Nom:         data.Nom,
		Fonction:    data.Fonction,
		Departement: data.Departement,
		Email:       data.Email,
		Telephone:   data.Telephone,
		Site:        data.Site,
		TypeContrat: data.TypeContrat,
		Statut:      data.Statut,
	}
	if rec.Statut == "" {
		rec.Statut = models.ProfileActif
	}
	if data.ManagerID != "" {
		manager, err := i.store.GetByID(data.ManagerID)
		if err != nil {
			return "", err
		}
		if manager == nil {
			return "", models.NewFieldValidationError("manager_id", "profil manager introuvable")
		}
		rec.ManagerID = &data.ManagerID
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data profileapimodels.ProfileData) error {
	if err := data.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("profil introuvable")
	}
	updMap := map[string]interface{}{
		"matricule":    data.Matricule,
		"prenom":       data.Prenom,
		"nom":          data.Nom,
		"fonction":     data.Fonction,
		"departement":  data.Departement,
		"email":        data.Email,
		"telephone":    data.Telephone,
		"site":         data.Site,
		"type_contrat": data.TypeContrat,
	}
	if data.Statut != "" {
		updMap["statut"] = string(data.Statut)
	}
	if data.ManagerID == "" {
		updMap["manager_id"] = nil
	} else {
		if data.ManagerID == id {
			return models.NewFieldValidationError("manager_id", "un profil ne peut pas être son propre manager")
		}
		manager, err := i.store.GetByID(data.ManagerID)
		if err != nil {
			return err
		}
		if manager == nil {
			return models.NewFieldValidationError("manager_id", "profil manager introuvable")
		}
		updMap["manager_id"] = data.ManagerID
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("profil introuvable")
	}
	return i.store.Delete(id)
}

func (i impl) GetByID(id string) (*profileapimodels.ProfileView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("profil introuvable")
	}
	view := profileapimodels.ProfileConvert(*rec)
	return &view, nil
}

func (i impl) List(filter profileapimodels.ProfileFilter) ([]profileapimodels.ProfileView, int64, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]profileapimodels.ProfileView, 0, len(list))
	for _, rec := range list {
		result = append(result, profileapimodels.ProfileConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) DirectReports(id string) ([]profileapimodels.ProfileView, error) {
	list, err := i.store.ListByManager(id)
	if err != nil {
		return nil, err
	}
	result := make([]profileapimodels.ProfileView, 0, len(list))
	for _, rec := range list {
		result = append(result, profileapimodels.ProfileConvert(rec))
	}
	return result, nil
}

// FixMissingManagers rattache les profils orphelins au responsable de
// leur département quand il est renseigné.
func (i impl) FixMissingManagers() (fixed int, err error) {
	orphans, err := i.store.ListMissingManager()
	if err != nil {
		return 0, err
	}
	for _, orphan := range orphans {
		if orphan.Departement == "" {
			continue
		}
		department, err := i.departmentStore.GetByName(orphan.Departement)
		if err != nil {
			return fixed, err
		}
		if department == nil || department.ResponsableProfileID == nil {
			continue
		}
		responsableID := *department.ResponsableProfileID
		if responsableID == orphan.ID {
			continue
		}
		err = i.store.Update(orphan.ID, map[string]interface{}{"manager_id": responsableID})
		if err != nil {
			return fixed, err
		}
		fixed++
	}
	if fixed > 0 {
		log.WithField("fixed", fixed).Info("Profils rattachés au responsable de leur département")
	}
	return fixed, nil
}
