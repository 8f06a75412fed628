package orgapimodels

import (
	dbmodels "habilitation-backend/models/db"

	"github.com/pkg/errors"
)

type DepartmentData struct {
	Nom                  string `json:"nom"`                    // nom du département
	ResponsableProfileID string `json:"responsable_profile_id"` // id du profil responsable
	Actif                bool   `json:"actif"`
}

func (d DepartmentData) Validate() error {
	if d.Nom == "" {
		return errors.New("le nom du département est requis")
	}
	return nil
}

type DepartmentView struct {
	DepartmentData
	ID              string `json:"id"`
	ResponsableName string `json:"responsable_name,omitempty"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	view := DepartmentView{
		DepartmentData: DepartmentData{
			Nom:   rec.Nom,
			Actif: rec.Actif,
		},
		ID: rec.ID,
	}
	if rec.ResponsableProfileID != nil {
		view.ResponsableProfileID = *rec.ResponsableProfileID
	}
	if rec.Responsable != nil {
		view.ResponsableName = rec.Responsable.GetFullName()
	}
	return view
}

type AgencyData struct {
	Nom     string `json:"nom"`  // nom de l'agence
	Code    string `json:"code"` // code agence unique
	Ville   string `json:"ville"`
	Adresse string `json:"adresse"`
	Actif   bool   `json:"actif"`
}

func (d AgencyData) Validate() error {
	if d.Nom == "" {
		return errors.New("le nom de l'agence est requis")
	}
	if d.Code == "" {
		return errors.New("le code de l'agence est requis")
	}
	return nil
}

type AgencyView struct {
	AgencyData
	ID string `json:"id"`
}

func AgencyConvert(rec dbmodels.Agency) AgencyView {
	return AgencyView{
		AgencyData: AgencyData{
			Nom:     rec.Nom,
			Code:    rec.Code,
			Ville:   rec.Ville,
			Adresse: rec.Adresse,
			Actif:   rec.Actif,
		},
		ID: rec.ID,
	}
}

type SubsidiaryData struct {
	Nom         string `json:"nom"` // nom de la filiale
	Code        string `json:"code"`
	Description string `json:"description"`
	Actif       bool   `json:"actif"`
}

func (d SubsidiaryData) Validate() error {
	if d.Nom == "" {
		return errors.New("le nom de la filiale est requis")
	}
	return nil
}

type SubsidiaryView struct {
	SubsidiaryData
	ID string `json:"id"`
}

func SubsidiaryConvert(rec dbmodels.Subsidiary) SubsidiaryView {
	return SubsidiaryView{
		SubsidiaryData: SubsidiaryData{
			Nom:         rec.Nom,
			Code:        rec.Code,
			Description: rec.Description,
			Actif:       rec.Actif,
		},
		ID: rec.ID,
	}
}
