package departmenthandler

import (
	"habilitation-backend/db"
	departmentstore "habilitation-backend/lib/dicts/department/store"
	profilestore "habilitation-backend/lib/profile/store"
	"habilitation-backend/models"
	orgapimodels "habilitation-backend/models/api/org"
	dbmodels "habilitation-backend/models/db"
)

var Instance Provider

type Provider interface {
	Create(data orgapimodels.DepartmentData) (id string, err error)
	Update(id string, data orgapimodels.DepartmentData) error
	Delete(id string) error
	List(onlyActive bool) ([]orgapimodels.DepartmentView, error)
}

func NewHandler() {
	Instance = impl{
		store:        departmentstore.NewInstance(db.DB),
		profileStore: profilestore.NewInstance(db.DB),
	}
}

type impl struct {
	store        departmentstore.Provider
	profileStore profilestore.Provider
}

func (i impl) checkResponsable(profileID string) (*string, error) {
	if profileID == "" {
		return nil, nil
	}
	profile, err := i.profileStore.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewFieldValidationError("responsable_profile_id", "profil responsable introuvable")
	}
	return &profileID, nil
}

func (i impl) Create(data orgapimodels.DepartmentData) (id string, err error) {
	if err := data.Validate(); err != nil {
		return "", models.NewValidationError(err.Error())
	}
	responsableID, err := i.checkResponsable(data.ResponsableProfileID)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Department{
		Nom:                  data.Nom,
		ResponsableProfileID: responsableID,
		Actif:                data.Actif,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data orgapimodels.DepartmentData) error {
	if err := data.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	responsableID, err := i.checkResponsable(data.ResponsableProfileID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"nom":   data.Nom,
		"actif": data.Actif,
	}
	if responsableID == nil {
		updMap["responsable_profile_id"] = nil
	} else {
		updMap["responsable_profile_id"] = *responsableID
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) List(onlyActive bool) ([]orgapimodels.DepartmentView, error) {
	list, err := i.store.List(onlyActive)
	if err != nil {
		return nil, err
	}
	result := make([]orgapimodels.DepartmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, orgapimodels.DepartmentConvert(rec))
	}
	return result, nil
}
