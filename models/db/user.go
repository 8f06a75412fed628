package dbmodels

import "time"

// User: compte applicatif. Le lien vers la fiche collaborateur se fait
// par l'adresse email, comme dans l'annuaire source.
type User struct {
	BaseModel
	Name      string `gorm:"type:varchar(255)"`
	Email     string `gorm:"type:varchar(255);uniqueIndex"`
	Password  string `gorm:"type:varchar(128)"`
	IsActive  bool
	LastLogin time.Time
	Roles     []Role `gorm:"many2many:user_roles;"`
}

type Role struct {
	BaseModel
	Nom         string `gorm:"type:varchar(255)"`
	Slug        string `gorm:"type:varchar(50);uniqueIndex"`
	Description string
	Actif       bool
}
