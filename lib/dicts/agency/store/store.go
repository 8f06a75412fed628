package agencystore

import (
	dbmodels "habilitation-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Agency) (id string, err error)
	GetByID(id string) (rec *dbmodels.Agency, err error)
	List(onlyActive bool) (list []dbmodels.Agency, err error)
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

func (i impl) Create(rec dbmodels.Agency) (id string, err error) {
	err = i.isUnique("", rec.Code)
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

func (i impl) GetByID(id string) (*dbmodels.Agency, error) {
	rec := dbmodels.Agency{}
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

func (i impl) List(onlyActive bool) (list []dbmodels.Agency, err error) {
	list = []dbmodels.Agency{}
	tx := i.db
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
	code, ok := updMap["code"]
	if ok {
		err := i.isUnique(id, code.(string))
		if err != nil {
			return err
		}
	}
	tx := i.db.
		Model(&dbmodels.Agency{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("agence introuvable")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Agency{BaseModel: dbmodels.BaseModel{ID: id}}
	return i.db.Delete(&rec).Error
}

func (i impl) isUnique(selfID, code string) error {
	var rowCount int64
	tx := i.db.Model(dbmodels.Agency{}).
		Where("code = ?", code)
	if selfID != "" {
		tx = tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return errors.Wrap(err, "erreur de contrôle d'unicité de l'agence")
	}
	if rowCount != 0 {
		return errors.New("une agence porte déjà ce code")
	}
	return nil
}
