package departmentstore

import (
	dbmodels "habilitation-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Department) (id string, err error)
	GetByID(id string) (rec *dbmodels.Department, err error)
	GetByName(name string) (rec *dbmodels.Department, err error)
	List(onlyActive bool) (list []dbmodels.Department, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Department) (id string, err error) {
	err = i.isUnique("", rec.Nom)
	if err != nil {
		return "", err
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Department, error) {
	rec := dbmodels.Department{}
	err := i.db.
		Where("id = ?", id).
		Preload("Responsable").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByName(name string) (*dbmodels.Department, error) {
	rec := dbmodels.Department{}
	err := i.db.
		Where("nom = ?", name).
		Preload("Responsable").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(onlyActive bool) (list []dbmodels.Department, err error) {
	list = []dbmodels.Department{}
	tx := i.db.Preload("Responsable")
	if onlyActive {
		tx = tx.Where("actif = true")
	}
	err = tx.
		Order("nom asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	name, ok := updMap["nom"]
	if ok {
		err := i.isUnique(id, name.(string))
		if err != nil {
			return err
		}
	}
	tx := i.db.
		Model(&dbmodels.Department{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("département introuvable")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Department{BaseModel: dbmodels.BaseModel{ID: id}}
	return i.db.Delete(&rec).Error
}

func (i impl) isUnique(selfID, name string) error {
	var rowCount int64
	tx := i.db.Model(dbmodels.Department{}).
		Where("nom = ?", name)
	if selfID != "" {
		tx = tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return errors.Wrap(err, "erreur de contrôle d'unicité du département")
	}
	if rowCount != 0 {
		return errors.New("un département porte déjà ce nom")
	}
	return nil
}
