package applicationapimodels

import (
	dbmodels "habilitation-backend/models/db"

	"github.com/pkg/errors"
)

type ApplicationData struct {
	Nom          string `json:"nom"`         // nom de l'application
	Description  string `json:"description"` // description courte
	Actif        bool   `json:"actif"`       // visible dans le catalogue
	Ordre        int    `json:"ordre"`       // ordre d'affichage
	SubsidiaryID string `json:"subsidiary_id,omitempty"`
}

func (d ApplicationData) Validate() error {
	if d.Nom == "" {
		return errors.New("le nom de l'application est requis")
	}
	return nil
}

type ApplicationView struct {
	ApplicationData
	ID string `json:"id"`
}

func ApplicationConvert(rec dbmodels.Application) ApplicationView {
	view := ApplicationView{
		ApplicationData: ApplicationData{
			Nom:         rec.Nom,
			Description: rec.Description,
			Actif:       rec.Actif,
			Ordre:       rec.Ordre,
		},
		ID: rec.ID,
	}
	if rec.SubsidiaryID != nil {
		view.SubsidiaryID = *rec.SubsidiaryID
	}
	return view
}
