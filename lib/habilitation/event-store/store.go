package habeventstore

import (
	dbmodels "habilitation-backend/models/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.HabilitationEvent) (id string, err error)
	ListByHabilitation(habID string) ([]dbmodels.HabilitationEvent, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.HabilitationEvent) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByHabilitation(habID string) ([]dbmodels.HabilitationEvent, error) {
	list := []dbmodels.HabilitationEvent{}
	err := i.db.
		Where("habilitation_id = ?", habID).
		Preload("ActorUser").
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
