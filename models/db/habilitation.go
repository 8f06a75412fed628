package dbmodels

import (
	"habilitation-backend/models"
	"time"
)

// Habilitation: demande de droits d'accès suivie par le workflow.
// Les triplets (validateur, date, commentaire) par étape forment une piste
// d'audit en écriture seule: une fois renseignés, aucun état de transition
// légal ne les efface.
type Habilitation struct {
	BaseModel
	RequesterProfileID string   `gorm:"type:varchar(36);index"`
	Requester          *Profile `gorm:"foreignKey:RequesterProfileID"`
	RequesterDirection string   `gorm:"type:varchar(255)"`
	RequesterEmail     string   `gorm:"type:varchar(255)"`
	RequesterTelephone string   `gorm:"type:varchar(20)"`

	BeneficiaryProfileID string   `gorm:"type:varchar(36);index"`
	Beneficiary          *Profile `gorm:"foreignKey:BeneficiaryProfileID"`
	BeneficiaryDirection string   `gorm:"type:varchar(255)"`
	BeneficiaryEmail     string   `gorm:"type:varchar(255)"`
	BeneficiaryTelephone string   `gorm:"type:varchar(20)"`
	BeneficiarySite      string   `gorm:"type:varchar(255)"`

	RequestType        models.RequestType `gorm:"type:varchar(50)"`
	Applications       StringArray        `gorm:"type:jsonb"`
	OtherApplication   string
	CurrentProfile     string
	RequestedProfile   string
	ImplementationDate *time.Time
	ProfileType        models.ProfileType    `gorm:"type:varchar(50)"`
	SpecificProfile    string
	ValidityPeriod     models.ValidityPeriod `gorm:"type:varchar(20)"`
	StartDate          *time.Time
	EndDate            *time.Time
	RequestReason      string
	Subsidiary         string `gorm:"type:varchar(255)"`

	Status models.HabStatus `gorm:"type:varchar(30);index"`

	ValidatorN1ID *string `gorm:"type:varchar(36);index"`
	ValidatorN1   *User   `gorm:"foreignKey:ValidatorN1ID"`
	ValidatedN1At *time.Time
	CommentN1     string
	SignatureN1   string

	ValidatorN2ID *string `gorm:"type:varchar(36);index"`
	ValidatorN2   *User   `gorm:"foreignKey:ValidatorN2ID"`
	ValidatedN2At *time.Time
	CommentN2     string
	SignatureN2   string

	ValidatorControlID *string `gorm:"type:varchar(36);index"`
	ValidatorControl   *User   `gorm:"foreignKey:ValidatorControlID"`
	ValidatedControlAt *time.Time
	CommentControl     string
	SignatureControl   string

	ExecutorITID *string `gorm:"type:varchar(36);index"`
	ExecutorIT   *User   `gorm:"foreignKey:ExecutorITID"`
	ExecutedITAt *time.Time
	CommentIT    string

	NotifyRequester bool
	NotifyN1        bool

	Events []HabilitationEvent `gorm:"foreignKey:HabilitationID"`
}

// HasN1Validation: le N+1 a rendu sa décision (validateur et date présents).
func (h Habilitation) HasN1Validation() bool {
	return h.ValidatorN1ID != nil && h.ValidatedN1At != nil
}

func (h Habilitation) HasN2Validation() bool {
	return h.ValidatorN2ID != nil && h.ValidatedN2At != nil
}

func (h Habilitation) HasControlValidation() bool {
	return h.ValidatorControlID != nil && h.ValidatedControlAt != nil
}

func (h Habilitation) HasExecution() bool {
	return h.ExecutorITID != nil
}
