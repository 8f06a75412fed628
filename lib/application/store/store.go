package applicationstore

import (
	dbmodels "habilitation-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (*dbmodels.Application, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(onlyActive bool) ([]dbmodels.Application, error)
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("application introuvable")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Application{BaseModel: dbmodels.BaseModel{ID: id}}
	return i.db.Delete(&rec).Error
}

// List retourne le catalogue trié par ordre d'affichage puis par nom.
func (i impl) List(onlyActive bool) ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	tx := i.db.Order("ordre").Order("nom")
	if onlyActive {
		tx = tx.Where("actif = ?", true)
	}
	err := tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count() (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Application{}).
		Count(&count).
		Error
	return count, err
}
