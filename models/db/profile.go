package dbmodels

import (
	"fmt"
	"habilitation-backend/models"
)

// Profile: fiche collaborateur, noeud de l'organigramme.
// Le N+1 est la seule relation stockée; le N+2 est toujours dérivé
// (manager du manager), jamais persisté.
type Profile struct {
	BaseModel
	Matricule   string `gorm:"type:varchar(50);uniqueIndex"`
	Prenom      string `gorm:"type:varchar(150)"`
	Nom         string `gorm:"type:varchar(150)"`
	Fonction    string `gorm:"type:varchar(255)"`
	Departement string `gorm:"type:varchar(255)"`
	Email       string `gorm:"type:varchar(255);index"`
	Telephone   string `gorm:"type:varchar(20)"`
	Site        string `gorm:"type:varchar(255)"`
	TypeContrat string `gorm:"type:varchar(100)"`
	Statut      models.ProfileStatus `gorm:"type:varchar(20)"`
	ManagerID   *string  `gorm:"type:varchar(36);index"`
	Manager     *Profile `gorm:"foreignKey:ManagerID"`
}

func (p Profile) GetFullName() string {
	return fmt.Sprintf("%s %s", p.Prenom, p.Nom)
}

func (p Profile) IsActive() bool {
	return p.Statut == models.ProfileActif
}
