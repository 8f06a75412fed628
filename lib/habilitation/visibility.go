package habilitation

import (
	"habilitation-backend/models"
	habapimodels "habilitation-backend/models/api/habilitation"
	dbmodels "habilitation-backend/models/db"
)

// CanSee: prédicat de visibilité unitaire par rôle. Les listes appliquent
// les mêmes règles traduites en SQL dans le store; toute évolution ici
// doit être répercutée là-bas.
//
// admin        : tout
// controle     : demandes en attente du contrôle, ou déjà contrôlées
// executeur_it : demandes approuvées / en cours, ou qu'il a exécutées
// rh           : demandes dont il est demandeur ou bénéficiaire
// metier       : son périmètre hiérarchique, ses validations passées,
//                et les demandes qui attendent sa décision N+1/N+2
func CanSee(scope habapimodels.ViewerScope, rec dbmodels.Habilitation) bool {
	if scope.IsAdmin {
		return true
	}
	if scope.IsControl {
		if rec.Status == models.HabStatusPendingControl || rec.ValidatorControlID != nil {
			return true
		}
	}
	if scope.IsExecutorIT {
		if rec.Status == models.HabStatusApproved || rec.Status == models.HabStatusInProgress || rec.ExecutorITID != nil {
			return true
		}
	}
	if scope.IsRh && scope.ProfileID != "" {
		if rec.RequesterProfileID == scope.ProfileID || rec.BeneficiaryProfileID == scope.ProfileID {
			return true
		}
	}
	if scope.IsMetier && scope.ProfileID != "" {
		if rec.RequesterProfileID == scope.ProfileID || rec.BeneficiaryProfileID == scope.ProfileID {
			return true
		}
		if isDirectReport(rec.Requester, scope.ProfileID) || isDirectReport(rec.Beneficiary, scope.ProfileID) {
			return true
		}
		if matchUser(rec.ValidatorN1ID, scope.UserID) || matchUser(rec.ValidatorN2ID, scope.UserID) {
			return true
		}
		target := routeTarget(rec, scope.RouteByRequester)
		if rec.Status == models.HabStatusPendingN1 && isDirectReport(target, scope.ProfileID) {
			return true
		}
		if rec.Status == models.HabStatusPendingN2 && isSkipReport(target, scope.ProfileID) {
			return true
		}
	}
	return false
}

func routeTarget(rec dbmodels.Habilitation, byRequester bool) *dbmodels.Profile {
	if byRequester {
		return rec.Requester
	}
	return rec.Beneficiary
}

func isDirectReport(profile *dbmodels.Profile, managerProfileID string) bool {
	return profile != nil && profile.ManagerID != nil && *profile.ManagerID == managerProfileID
}

// isSkipReport: managerProfileID est le N+2 du profil, hors cycle à deux.
func isSkipReport(profile *dbmodels.Profile, managerProfileID string) bool {
	if profile == nil || profile.Manager == nil || profile.Manager.ManagerID == nil {
		return false
	}
	n2 := *profile.Manager.ManagerID
	if n2 == profile.ID || n2 == profile.Manager.ID {
		return false
	}
	return n2 == managerProfileID
}

func matchUser(id *string, userID string) bool {
	return id != nil && userID != "" && *id == userID
}
