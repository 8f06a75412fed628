package rolestore

import (
	dbmodels "habilitation-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	CreateRole(rec dbmodels.Role) error
	GetBySlug(slug string) (*dbmodels.Role, error)
	ExistBySlug(slug string) (bool, error)
	List() ([]dbmodels.Role, error)
	RolesOfUser(userID string) ([]dbmodels.Role, error)
	AssignRole(userID, roleID string) error
	RevokeRole(userID, roleID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateRole(rec dbmodels.Role) error {
	return i.db.Save(&rec).Error
}

func (i impl) GetBySlug(slug string) (*dbmodels.Role, error) {
	rec := dbmodels.Role{}
	err := i.db.
		Where("slug = ?", slug).
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

func (i impl) ExistBySlug(slug string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Role{}).
		Where("slug = ?", slug).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) List() ([]dbmodels.Role, error) {
	list := []dbmodels.Role{}
	err := i.db.
		Order("nom").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) RolesOfUser(userID string) ([]dbmodels.Role, error) {
	list := []dbmodels.Role{}
	err := i.db.
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Where("actif = ?", true).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AssignRole(userID, roleID string) error {
	user := dbmodels.User{BaseModel: dbmodels.BaseModel{ID: userID}}
	role := dbmodels.Role{BaseModel: dbmodels.BaseModel{ID: roleID}}
	return i.db.Model(&user).Association("Roles").Append(&role)
}

func (i impl) RevokeRole(userID, roleID string) error {
	user := dbmodels.User{BaseModel: dbmodels.BaseModel{ID: userID}}
	role := dbmodels.Role{BaseModel: dbmodels.BaseModel{ID: roleID}}
	return i.db.Model(&user).Association("Roles").Delete(&role)
}
