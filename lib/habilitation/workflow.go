package habilitation

// Moteur de transitions du circuit de validation. Toute la logique de
// décision est pure: elle reçoit l'enregistrement, l'acteur et le contexte
// de routage, et produit soit une mutation à appliquer, soit une erreur
// métier typée. La persistance et le verrouillage restent dans le handler.

import (
	"time"

	"habilitation-backend/models"
	habapimodels "habilitation-backend/models/api/habilitation"
	dbmodels "habilitation-backend/models/db"
)

const (
	StageN1        = "n1"
	StageN2        = "n2"
	StageControl   = "control"
	StageExecution = "execution"
	StageRights    = "rights"
)

// Actor: identité et rôles de l'appelant, résolus par le handler.
type Actor struct {
	UserID    string
	ProfileID string
	Roles     models.RoleSet
}

// RouteInfo: validateurs N+1/N+2 calculés depuis l'organigramme pour le
// profil cible du routage (bénéficiaire par défaut). Vide = pas de
// manager à ce niveau, seul un administrateur peut alors débloquer.
type RouteInfo struct {
	N1ProfileID string
	N2ProfileID string
}

// StageOrder: enchaînement des statuts d'attente. L'ordre canonique est
// N+1, N+2 puis Contrôle Permanent; la configuration peut intercaler le
// contrôle avant le N+2.
type StageOrder []models.HabStatus

func BuildStageOrder(controlBeforeN2 bool) StageOrder {
	if controlBeforeN2 {
		return StageOrder{models.HabStatusPendingN1, models.HabStatusPendingControl, models.HabStatusPendingN2}
	}
	return StageOrder{models.HabStatusPendingN1, models.HabStatusPendingN2, models.HabStatusPendingControl}
}

// Next retourne le statut suivant dans le circuit, approved après la
// dernière étape de validation.
func (o StageOrder) Next(current models.HabStatus) models.HabStatus {
	for idx, status := range o {
		if status == current {
			if idx+1 < len(o) {
				return o[idx+1]
			}
			return models.HabStatusApproved
		}
	}
	return models.HabStatusApproved
}

// Before liste les étapes d'attente placées avant current dans le circuit.
func (o StageOrder) Before(current models.HabStatus) []models.HabStatus {
	result := []models.HabStatus{}
	for _, status := range o {
		if status == current {
			break
		}
		result = append(result, status)
	}
	return result
}

// Mutation: résultat d'une transition acceptée, appliqué par le handler
// dans une transaction avec garde sur le statut d'origine.
type Mutation struct {
	FromStatus models.HabStatus
	NewStatus  models.HabStatus
	UpdMap     map[string]interface{}
	Event      dbmodels.HabilitationEvent
}

func stageOf(status models.HabStatus) string {
	switch status {
	case models.HabStatusPendingN1:
		return StageN1
	case models.HabStatusPendingN2:
		return StageN2
	case models.HabStatusPendingControl:
		return StageControl
	}
	return ""
}

func hasValidation(rec dbmodels.Habilitation, status models.HabStatus) bool {
	switch status {
	case models.HabStatusPendingN1:
		return rec.HasN1Validation()
	case models.HabStatusPendingN2:
		return rec.HasN2Validation()
	case models.HabStatusPendingControl:
		return rec.HasControlValidation()
	}
	return false
}

// authorizeStage vérifie que l'acteur a le droit de statuer sur l'étape
// d'attente courante. Un administrateur passe toutes les barrières.
func authorizeStage(rec dbmodels.Habilitation, actor Actor, route RouteInfo) error {
	if actor.Roles.IsAdmin() {
		return nil
	}
	switch rec.Status {
	case models.HabStatusPendingN1:
		if route.N1ProfileID != "" && actor.ProfileID == route.N1ProfileID {
			return nil
		}
		return models.NewForbiddenError("seul le supérieur hiérarchique N+1 peut statuer sur cette étape")
	case models.HabStatusPendingN2:
		if route.N2ProfileID != "" && actor.ProfileID == route.N2ProfileID {
			return nil
		}
		return models.NewForbiddenError("seul le supérieur hiérarchique N+2 peut statuer sur cette étape")
	case models.HabStatusPendingControl:
		if actor.Roles.Has(models.RoleControle) {
			return nil
		}
		return models.NewForbiddenError("seul le Contrôle Permanent peut statuer sur cette étape")
	}
	return models.NewStateConflictError("la demande n'attend aucune décision")
}

// ApplyDecision traite une décision approuver/rejeter sur l'étape en
// attente. La mutation retournée porte le statut d'origine: le handler
// ne l'applique que si la demande est toujours dans ce statut.
func ApplyDecision(rec dbmodels.Habilitation, order StageOrder, actor Actor, route RouteInfo, data habapimodels.DecisionData, now time.Time) (*Mutation, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if rec.Status.IsTerminal() {
		return nil, models.NewStateConflictError("la demande est déjà close (" + rec.Status.ToHuman() + ")")
	}
	if !rec.Status.IsPendingStage() {
		return nil, models.NewStateConflictError("la demande n'est pas en attente de validation")
	}
	if err := authorizeStage(rec, actor, route); err != nil {
		return nil, err
	}
	// les validations des étapes précédentes doivent être acquises
	for _, previous := range order.Before(rec.Status) {
		if !hasValidation(rec, previous) {
			return nil, models.NewStateConflictError("une validation précédente du circuit est manquante")
		}
	}

	stage := stageOf(rec.Status)
	updMap := map[string]interface{}{}
	switch rec.Status {
	case models.HabStatusPendingN1:
		updMap["validator_n1_id"] = actor.UserID
		updMap["validated_n1_at"] = now
		updMap["comment_n1"] = data.Comment
		updMap["signature_n1"] = data.Signature
	case models.HabStatusPendingN2:
		updMap["validator_n2_id"] = actor.UserID
		updMap["validated_n2_at"] = now
		updMap["comment_n2"] = data.Comment
		updMap["signature_n2"] = data.Signature
	case models.HabStatusPendingControl:
		updMap["validator_control_id"] = actor.UserID
		updMap["validated_control_at"] = now
		updMap["comment_control"] = data.Comment
		updMap["signature_control"] = data.Signature
	}

	newStatus := order.Next(rec.Status)
	if data.Action == models.HabActionReject {
		newStatus = models.HabStatusRejected
	}
	updMap["status"] = string(newStatus)

	return &Mutation{
		FromStatus: rec.Status,
		NewStatus:  newStatus,
		UpdMap:     updMap,
		Event: dbmodels.HabilitationEvent{
			HabilitationID: rec.ID,
			Stage:          stage,
			Action:         string(data.Action),
			ActorUserID:    actor.UserID,
			Comment:        data.Comment,
			NewStatus:      string(newStatus),
		},
	}, nil
}

// ApplySubmit fait passer un brouillon complété vers la première étape de
// validation. Seul le demandeur, le bénéficiaire ou un administrateur
// peut soumettre.
func ApplySubmit(rec dbmodels.Habilitation, order StageOrder, actor Actor, data habapimodels.RightsData) (*Mutation, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if rec.Status != models.HabStatusDraft {
		return nil, models.NewStateConflictError("seul un brouillon peut être soumis à validation")
	}
	if !actor.Roles.IsAdmin() &&
		actor.ProfileID != rec.RequesterProfileID &&
		actor.ProfileID != rec.BeneficiaryProfileID {
		return nil, models.NewForbiddenError("seul le demandeur ou le bénéficiaire peut soumettre la demande")
	}
	if len(order) == 0 {
		return nil, models.NewStateConflictError("circuit de validation vide")
	}
	newStatus := order[0]
	updMap := map[string]interface{}{
		"request_type":        string(data.RequestType),
		"applications":        dbmodels.StringArray(data.Applications),
		"other_application":   data.OtherApplication,
		"current_profile":     data.CurrentProfile,
		"requested_profile":   data.RequestedProfile,
		"implementation_date": data.ImplementationDate,
		"profile_type":        string(data.ProfileType),
		"specific_profile":    data.SpecificProfile,
		"validity_period":     string(data.ValidityPeriod),
		"start_date":          data.StartDate,
		"end_date":            data.EndDate,
		"request_reason":      data.RequestReason,
		"status":              string(newStatus),
	}
	return &Mutation{
		FromStatus: rec.Status,
		NewStatus:  newStatus,
		UpdMap:     updMap,
		Event: dbmodels.HabilitationEvent{
			HabilitationID: rec.ID,
			Stage:          StageRights,
			Action:         "soumettre",
			ActorUserID:    actor.UserID,
			NewStatus:      string(newStatus),
		},
	}, nil
}

// ApplyClaim: prise en charge par un exécutant informatique d'une demande
// entièrement approuvée. isExecutor est résolu par le handler (rôle dédié
// ou rattachement informatique du profil).
func ApplyClaim(rec dbmodels.Habilitation, actor Actor, isExecutor bool, now time.Time) (*Mutation, error) {
	if rec.Status != models.HabStatusApproved {
		return nil, models.NewStateConflictError("seule une demande approuvée peut être prise en charge")
	}
	if !actor.Roles.IsAdmin() && !isExecutor {
		return nil, models.NewForbiddenError("seul un exécutant informatique peut prendre en charge la demande")
	}
	updMap := map[string]interface{}{
		"executor_it_id": actor.UserID,
		"status":         string(models.HabStatusInProgress),
	}
	return &Mutation{
		FromStatus: rec.Status,
		NewStatus:  models.HabStatusInProgress,
		UpdMap:     updMap,
		Event: dbmodels.HabilitationEvent{
			HabilitationID: rec.ID,
			Stage:          StageExecution,
			Action:         "prendre_en_charge",
			ActorUserID:    actor.UserID,
			NewStatus:      string(models.HabStatusInProgress),
		},
	}, nil
}

// ApplyExecute: clôture de la demande par un exécutant informatique (pas
// nécessairement celui qui l'a prise en charge) ou un administrateur.
// L'acteur effectif de la clôture est tracé dans le journal.
func ApplyExecute(rec dbmodels.Habilitation, actor Actor, isExecutor bool, data habapimodels.ExecuteData, now time.Time) (*Mutation, error) {
	if rec.Status != models.HabStatusInProgress {
		return nil, models.NewStateConflictError("seule une demande en cours d'exécution peut être clôturée")
	}
	if !actor.Roles.IsAdmin() && !isExecutor {
		return nil, models.NewForbiddenError("seul un exécutant informatique peut clôturer la demande")
	}
	updMap := map[string]interface{}{
		"executed_it_at":   now,
		"comment_it":       data.Comment,
		"notify_requester": data.NotifyRequester,
		"notify_n1":        data.NotifyN1,
		"status":           string(models.HabStatusCompleted),
	}
	if rec.ExecutorITID == nil {
		updMap["executor_it_id"] = actor.UserID
	}
	return &Mutation{
		FromStatus: rec.Status,
		NewStatus:  models.HabStatusCompleted,
		UpdMap:     updMap,
		Event: dbmodels.HabilitationEvent{
			HabilitationID: rec.ID,
			Stage:          StageExecution,
			Action:         "executer",
			ActorUserID:    actor.UserID,
			Comment:        data.Comment,
			NewStatus:      string(models.HabStatusCompleted),
		},
	}, nil
}
