package subsidiaryhandler

import (
	"habilitation-backend/db"
	subsidiarystore "habilitation-backend/lib/dicts/subsidiary/store"
	"habilitation-backend/models"
	orgapimodels "habilitation-backend/models/api/org"
	dbmodels "habilitation-backend/models/db"
)

var Instance Provider

type Provider interface {
	Create(data orgapimodels.SubsidiaryData) (id string, err error)
	Update(id string, data orgapimodels.SubsidiaryData) error
	Delete(id string) error
	List(onlyActive bool) ([]orgapimodels.SubsidiaryView, error)
}

func NewHandler() {
	Instance = impl{
		store: subsidiarystore.NewInstance(db.DB),
	}
}

type impl struct {
	store subsidiarystore.Provider
}

func (i impl) Create(data orgapimodels.SubsidiaryData) (id string, err error) {
	if err := data.Validate(); err != nil {
		return "", models.NewValidationError(err.Error())
	}
	rec := dbmodels.Subsidiary{
		Nom:         data.Nom,
		Code:        data.Code,
		Description: data.Description,
		Actif:       data.Actif,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data orgapimodels.SubsidiaryData) error {
	if err := data.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	updMap := map[string]interface{}{
		"nom":         data.Nom,
		"code":        data.Code,
		"description": data.Description,
		"actif":       data.Actif,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) List(onlyActive bool) ([]orgapimodels.SubsidiaryView, error) {
	list, err := i.store.List(onlyActive)
	if err != nil {
		return nil, err
	}
	result := make([]orgapimodels.SubsidiaryView, 0, len(list))
	for _, rec := range list {
		result = append(result, orgapimodels.SubsidiaryConvert(rec))
	}
	return result, nil
}
