package profileapimodels

import (
	"habilitation-backend/models"
	apimodels "habilitation-backend/models/api"
	dbmodels "habilitation-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type ProfileData struct {
	Matricule   string               `json:"matricule"`    // matricule unique du collaborateur
	Prenom      string               `json:"prenom"`       // prénom
	Nom         string               `json:"nom"`          // nom
	Fonction    string               `json:"fonction"`     // fonction occupée
	Departement string               `json:"departement"`  // département de rattachement
	Email       string               `json:"email"`        // email professionnel
	Telephone   string               `json:"telephone"`    // téléphone
	Site        string               `json:"site"`         // site / agence
	TypeContrat string               `json:"type_contrat"` // type de contrat
	Statut      models.ProfileStatus `json:"statut"`       // actif/inactif
	ManagerID   string               `json:"manager_id"`   // id du N+1 direct
}

func (p ProfileData) Validate() error {
	if p.Matricule == "" {
		return errors.New("matricule manquant")
	}
	if p.Nom == "" {
		return errors.New("nom manquant")
	}
	if p.Prenom == "" {
		return errors.New("prénom manquant")
	}
	if p.Statut != "" && p.Statut != models.ProfileActif && p.Statut != models.ProfileInactif {
		return errors.New("statut inconnu")
	}
	return nil
}

type ProfileFilter struct {
	apimodels.Pagination
	Departement string               `json:"departement"` // filtre sur le département
	Statut      models.ProfileStatus `json:"statut"`      // filtre sur le statut
	Search      string               `json:"search"`      // recherche nom/prénom/matricule
}

type ProfileView struct {
	ProfileData
	ID           string    `json:"id"`
	CreationDate time.Time `json:"creation_date"`
	FullName     string    `json:"full_name"`
	ManagerName  string    `json:"manager_name,omitempty"`
}

func ProfileConvert(rec dbmodels.Profile) ProfileView {
	result := ProfileView{
		ProfileData: ProfileData{
			Matricule:   rec.Matricule,
			Prenom:      rec.Prenom,
			Nom:         rec.Nom,
			Fonction:    rec.Fonction,
			Departement: rec.Departement,
			Email:       rec.Email,
			Telephone:   rec.Telephone,
			Site:        rec.Site,
			TypeContrat: rec.TypeContrat,
			Statut:      rec.Statut,
		},
		ID:           rec.ID,
		CreationDate: rec.CreatedAt,
		FullName:     rec.GetFullName(),
	}
	if rec.ManagerID != nil {
		result.ManagerID = *rec.ManagerID
	}
	if rec.Manager != nil {
		result.ManagerName = rec.Manager.GetFullName()
	}
	return result
}
