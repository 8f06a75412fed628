package applicationhandler

import (
	"habilitation-backend/db"
	applicationstore "habilitation-backend/lib/application/store"
	"habilitation-backend/models"
	applicationapimodels "habilitation-backend/models/api/application"
	dbmodels "habilitation-backend/models/db"
)

var Instance Provider

type Provider interface {
	Create(data applicationapimodels.ApplicationData) (id string, err error)
	Update(id string, data applicationapimodels.ApplicationData) error
	Delete(id string) error
	GetByID(id string) (*applicationapimodels.ApplicationView, error)
	List(onlyActive bool) ([]applicationapimodels.ApplicationView, error)
}

func NewHandler() {
	Instance = impl{
		store: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store applicationstore.Provider
}

func (i impl) Create(data applicationapimodels.ApplicationData) (id string, err error) {
	if err := data.Validate(); err != nil {
		return "", models.NewValidationError(err.Error())
	}
	rec := dbmodels.Application{
		Nom:         data.Nom,
		Description: data.Description,
		Actif:       data.Actif,
		Ordre:       data.Ordre,
	}
	if data.SubsidiaryID != "" {
		rec.SubsidiaryID = &data.SubsidiaryID
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data applicationapimodels.ApplicationData) error {
	if err := data.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("application introuvable")
	}
	updMap := map[string]interface{}{
		"nom":         data.Nom,
		"description": data.Description,
		"actif":       data.Actif,
		"ordre":       data.Ordre,
	}
	if data.SubsidiaryID == "" {
		updMap["subsidiary_id"] = nil
	} else {
		updMap["subsidiary_id"] = data.SubsidiaryID
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("application introuvable")
	}
	return i.store.Delete(id)
}

func (i impl) GetByID(id string) (*applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("application introuvable")
	}
	view := applicationapimodels.ApplicationConvert(*rec)
	return &view, nil
}

func (i impl) List(onlyActive bool) ([]applicationapimodels.ApplicationView, error) {
	list, err := i.store.List(onlyActive)
	if err != nil {
		return nil, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.ApplicationConvert(rec))
	}
	return result, nil
}
