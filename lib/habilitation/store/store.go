package habilitationstore

import (
	"fmt"
	habapimodels "habilitation-backend/models/api/habilitation"
	dbmodels "habilitation-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Habilitation) (id string, err error)
	GetByID(id string) (*dbmodels.Habilitation, error)
	GetByIDForUpdate(id string) (*dbmodels.Habilitation, error)
	Update(id string, updMap map[string]interface{}) error
	UpdateGuarded(id string, fromStatus string, updMap map[string]interface{}) (applied bool, err error)
	Delete(id string) error
	List(scope habapimodels.ViewerScope, filter habapimodels.HabFilter) ([]dbmodels.Habilitation, error)
	ListCount(scope habapimodels.ViewerScope, filter habapimodels.HabFilter) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

var loadRelations = []string{
	"Requester", "Requester.Manager",
	"Beneficiary", "Beneficiary.Manager",
	"ValidatorN1", "ValidatorN2", "ValidatorControl", "ExecutorIT",
}

func (i impl) Create(rec dbmodels.Habilitation) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) getByID(tx *gorm.DB, id string) (*dbmodels.Habilitation, error) {
	rec := dbmodels.Habilitation{}
	for _, relation := range loadRelations {
		tx = tx.Preload(relation)
	}
	err := tx.
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

func (i impl) GetByID(id string) (*dbmodels.Habilitation, error) {
	return i.getByID(i.db, id)
}

// GetByIDForUpdate pose un verrou de ligne (FOR UPDATE); à n'utiliser
// qu'à l'intérieur d'une transaction.
func (i impl) GetByIDForUpdate(id string) (*dbmodels.Habilitation, error) {
	return i.getByID(i.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Habilitation{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("demande introuvable")
	}
	return nil
}

// UpdateGuarded n'applique la mise à jour que si le statut courant en base
// est toujours fromStatus. applied=false signale qu'un acteur concurrent
// a déjà fait évoluer la demande.
func (i impl) UpdateGuarded(id string, fromStatus string, updMap map[string]interface{}) (applied bool, err error) {
	if len(updMap) == 0 {
		return false, nil
	}
	tx := i.db.
		Model(&dbmodels.Habilitation{}).
		Where("id = ?", id).
		Where("status = ?", fromStatus).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Habilitation{BaseModel: dbmodels.BaseModel{ID: id}}
	return i.db.Delete(&rec).Error
}

// applyScope traduit en SQL les règles de visibilité par rôle; les règles
// sont combinées en OU, un appelant sans aucun rôle ne voit rien.
func (i impl) applyScope(tx *gorm.DB, scope habapimodels.ViewerScope) *gorm.DB {
	if scope.IsAdmin {
		return tx
	}
	conds := []string{}
	args := []interface{}{}

	if scope.IsControl {
		conds = append(conds, "(status = ? OR validator_control_id IS NOT NULL)")
		args = append(args, "pending_control")
	}
	if scope.IsExecutorIT {
		conds = append(conds, "(status IN (?, ?) OR executor_it_id IS NOT NULL)")
		args = append(args, "approved", "in_progress")
	}
	if scope.IsRh && scope.ProfileID != "" {
		conds = append(conds, "(requester_profile_id = ? OR beneficiary_profile_id = ?)")
		args = append(args, scope.ProfileID, scope.ProfileID)
	}
	if scope.IsMetier && scope.ProfileID != "" {
		routeCol := "beneficiary_profile_id"
		if scope.RouteByRequester {
			routeCol = "requester_profile_id"
		}
		// soi-même ou un subordonné direct, demandeur ou bénéficiaire
		selfOrReports := "(requester_profile_id = ? OR beneficiary_profile_id = ?" +
			" OR requester_profile_id IN (SELECT id FROM profiles WHERE manager_id = ?)" +
			" OR beneficiary_profile_id IN (SELECT id FROM profiles WHERE manager_id = ?))"
		conds = append(conds, selfOrReports)
		args = append(args, scope.ProfileID, scope.ProfileID, scope.ProfileID, scope.ProfileID)

		// validateur déjà enregistré
		conds = append(conds, "(validator_n1_id = ? OR validator_n2_id = ?)")
		args = append(args, scope.UserID, scope.UserID)

		// N+1 calculé, demande en attente N+1
		conds = append(conds, fmt.Sprintf("(status = 'pending_n1' AND %s IN (SELECT id FROM profiles WHERE manager_id = ?))", routeCol))
		args = append(args, scope.ProfileID)

		// N+2 calculé (manager du manager, hors manager auto-rattaché et
		// hors cycle à deux), demande en attente N+2. Mêmes exclusions que
		// le prédicat isSkipReport.
		n2Sub := "SELECT p.id FROM profiles p JOIN profiles m ON p.manager_id = m.id" +
			" WHERE m.manager_id = ? AND m.manager_id <> p.manager_id AND m.manager_id <> p.id"
		conds = append(conds, fmt.Sprintf("(status = 'pending_n2' AND %s IN (%s))", routeCol, n2Sub))
		args = append(args, scope.ProfileID)
	}

	if len(conds) == 0 {
		return tx.Where("1 = 0")
	}
	where := conds[0]
	for _, cond := range conds[1:] {
		where = where + " OR " + cond
	}
	return tx.Where(where, args...)
}

func (i impl) applyFilter(tx *gorm.DB, filter habapimodels.HabFilter) *gorm.DB {
	switch filter.Filter {
	case habapimodels.HabFilterEnCours:
		tx = tx.Where("status NOT IN (?, ?)", "completed", "rejected")
	case habapimodels.HabFilterTermine:
		tx = tx.Where("status = ?", "completed")
	case habapimodels.HabFilterRejete:
		tx = tx.Where("status = ?", "rejected")
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.RequestType != "" {
		tx = tx.Where("request_type = ?", string(filter.RequestType))
	}
	if filter.Search != "" {
		like := fmt.Sprintf("%%%v%%", filter.Search)
		sub := "SELECT id FROM profiles WHERE nom ILIKE ? OR prenom ILIKE ?"
		tx = tx.Where(fmt.Sprintf("requester_profile_id IN (%s) OR beneficiary_profile_id IN (%s)", sub, sub),
			like, like, like, like)
	}
	return tx
}

func (i impl) List(scope habapimodels.ViewerScope, filter habapimodels.HabFilter) ([]dbmodels.Habilitation, error) {
	list := []dbmodels.Habilitation{}
	page, limit := filter.GetPage()
	tx := i.applyFilter(i.applyScope(i.db.Model(&dbmodels.Habilitation{}), scope), filter)
	for _, relation := range loadRelations {
		tx = tx.Preload(relation)
	}
	err := tx.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(scope habapimodels.ViewerScope, filter habapimodels.HabFilter) (int64, error) {
	var count int64
	err := i.applyFilter(i.applyScope(i.db.Model(&dbmodels.Habilitation{}), scope), filter).
		Count(&count).
		Error
	return count, err
}
