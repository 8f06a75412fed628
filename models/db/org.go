package dbmodels

// Référentiels organisation: départements, agences, filiales.

type Department struct {
	BaseModel
	Nom                  string `gorm:"type:varchar(255);uniqueIndex"`
	Description          string
	ResponsableProfileID *string  `gorm:"type:varchar(36)"`
	Responsable          *Profile `gorm:"foreignKey:ResponsableProfileID"`
	Actif                bool
}

type Agency struct {
	BaseModel
	Nom     string `gorm:"type:varchar(255)"`
	Code    string `gorm:"type:varchar(50);uniqueIndex"`
	Ville   string `gorm:"type:varchar(255)"`
	Adresse string
	Actif   bool
}

type Subsidiary struct {
	BaseModel
	Nom         string `gorm:"type:varchar(255);uniqueIndex"`
	Code        string `gorm:"type:varchar(50)"`
	Description string
	Actif       bool
}

// Application: entrée du catalogue des applications sélectionnables
// dans une demande d'habilitation.
type Application struct {
	BaseModel
	Nom          string `gorm:"type:varchar(255);uniqueIndex"`
	Description  string
	Actif        bool
	Ordre        int
	SubsidiaryID *string     `gorm:"type:varchar(36)"`
	Subsidiary   *Subsidiary `gorm:"foreignKey:SubsidiaryID"`
}
