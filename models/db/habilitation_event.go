package dbmodels

// HabilitationEvent: journal en écriture seule de toutes les transitions
// appliquées à une demande. Complète les colonnes par étape de Habilitation,
// qui ne gardent que la dernière valeur.
type HabilitationEvent struct {
	BaseModel
	HabilitationID string `gorm:"type:varchar(36);index"`
	Stage          string `gorm:"type:varchar(30)"`
	Action         string `gorm:"type:varchar(30)"`
	ActorUserID    string `gorm:"type:varchar(36)"`
	ActorUser      *User  `gorm:"foreignKey:ActorUserID"`
	Comment        string
	NewStatus      string `gorm:"type:varchar(30)"`
}
