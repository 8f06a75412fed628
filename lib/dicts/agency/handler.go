package agencyhandler

import (
	"habilitation-backend/db"
	agencystore "habilitation-backend/lib/dicts/agency/store"
	"habilitation-backend/models"
	orgapimodels "habilitation-backend/models/api/org"
	dbmodels "habilitation-backend/models/db"
)

var Instance Provider

type Provider interface {
	Create(data orgapimodels.AgencyData) (id string, err error)
	Update(id string, data orgapimodels.AgencyData) error
	Delete(id string) error
	List(onlyActive bool) ([]orgapimodels.AgencyView, error)
}

func NewHandler() {
	Instance = impl{
		store: agencystore.NewInstance(db.DB),
	}
}

type impl struct {
	store agencystore.Provider
}

func (i impl) Create(data orgapimodels.AgencyData) (id string, err error) {
	if err := data.Validate(); err != nil {
		return "", models.NewValidationError(err.Error())
	}
	rec := dbmodels.Agency{
		Nom:     data.Nom,
		Code:    data.Code,
		Ville:   data.Ville,
		Adresse: data.Adresse,
		Actif:   data.Actif,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data orgapimodels.AgencyData) error {
	if err := data.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	updMap := map[string]interface{}{
		"nom":     data.Nom,
		"code":    data.Code,
		"ville":   data.Ville,
		"adresse": data.Adresse,
		"actif":   data.Actif,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) List(onlyActive bool) ([]orgapimodels.AgencyView, error) {
	list, err := i.store.List(onlyActive)
	if err != nil {
		return nil, err
	}
	result := make([]orgapimodels.AgencyView, 0, len(list))
	for _, rec := range list {
		result = append(result, orgapimodels.AgencyConvert(rec))
	}
	return result, nil
}
