package profilestore

import (
	"fmt"
	profileapimodels "habilitation-backend/models/api/profile"
	dbmodels "habilitation-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Profile) (id string, err error)
	GetByID(id string) (*dbmodels.Profile, error)
	GetByMatricule(matricule string) (*dbmodels.Profile, error)
	GetByEmail(email string) (*dbmodels.Profile, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter profileapimodels.ProfileFilter) ([]dbmodels.Profile, error)
	ListCount(filter profileapimodels.ProfileFilter) (int64, error)
	ListByManager(managerID string) ([]dbmodels.Profile, error)
	ListByDepartment(departement string) ([]dbmodels.Profile, error)
	ListMissingManager() ([]dbmodels.Profile, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Profile) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Profile, error) {
	rec := dbmodels.Profile{}
	err := i.db.
		Where("id = ?", id).
		Preload("Manager").
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

func (i impl) GetByMatricule(matricule string) (*dbmodels.Profile, error) {
	rec := dbmodels.Profile{}
	err := i.db.
		Where("matricule = ?", matricule).
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

func (i impl) GetByEmail(email string) (*dbmodels.Profile, error) {
	rec := dbmodels.Profile{}
	err := i.db.
		Where("email = ?", email).
		Preload("Manager").
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
		Model(&dbmodels.Profile{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("fiche collaborateur introuvable")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Profile{BaseModel: dbmodels.BaseModel{ID: id}}
	return i.db.Delete(&rec).Error
}

func (i impl) applyFilter(tx *gorm.DB, filter profileapimodels.ProfileFilter) *gorm.DB {
	if filter.Departement != "" {
		tx = tx.Where("departement = ?", filter.Departement)
	}
	if filter.Statut != "" {
		tx = tx.Where("statut = ?", filter.Statut)
	}
	if filter.Search != "" {
		like := fmt.Sprintf("%%%v%%", filter.Search)
		tx = tx.Where("nom ILIKE ? OR prenom ILIKE ? OR matricule ILIKE ?", like, like, like)
	}
	return tx
}

func (i impl) List(filter profileapimodels.ProfileFilter) ([]dbmodels.Profile, error) {
	list := []dbmodels.Profile{}
	page, limit := filter.GetPage()
	tx := i.applyFilter(i.db.Model(&dbmodels.Profile{}), filter).
		Preload("Manager").
		Order("nom").
		Order("prenom").
		Offset((page - 1) * limit).
		Limit(limit)
	err := tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter profileapimodels.ProfileFilter) (int64, error) {
	var count int64
	err := i.applyFilter(i.db.Model(&dbmodels.Profile{}), filter).
		Count(&count).
		Error
	return count, err
}

func (i impl) ListByManager(managerID string) ([]dbmodels.Profile, error) {
	list := []dbmodels.Profile{}
	err := i.db.
		Where("manager_id = ?", managerID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByDepartment(departement string) ([]dbmodels.Profile, error) {
	list := []dbmodels.Profile{}
	err := i.db.
		Where("departement = ?", departement).
		Where("statut = ?", "actif").
		Order("nom").
		Order("prenom").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListMissingManager() ([]dbmodels.Profile, error) {
	list := []dbmodels.Profile{}
	err := i.db.
		Where("manager_id IS NULL").
		Where("statut = ?", "actif").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
