package habilitation

import (
	"context"
	"time"

	"habilitation-backend/config"
	"habilitation-backend/db"
	docarchive "habilitation-backend/lib/doc-archive"
	pdfexport "habilitation-backend/lib/export/pdf"
	habeventstore "habilitation-backend/lib/habilitation/event-store"
	habilitationstore "habilitation-backend/lib/habilitation/store"
	"habilitation-backend/lib/notify"
	"habilitation-backend/lib/orggraph"
	profilestore "habilitation-backend/lib/profile/store"
	"habilitation-backend/lib/roleauthority"
	"habilitation-backend/models"
	habapimodels "habilitation-backend/models/api/habilitation"
	dbmodels "habilitation-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var Instance Provider

type Provider interface {
	Create(actor Actor, data habapimodels.CreateData) (id string, err error)
	SubmitRights(actor Actor, id string, data habapimodels.RightsData) error
	Decide(actor Actor, id string, data habapimodels.DecisionData) error
	Claim(actor Actor, id string) error
	Execute(actor Actor, id string, data habapimodels.ExecuteData) error
	GetByID(actor Actor, id string) (*habapimodels.HabilitationView, error)
	List(actor Actor, filter habapimodels.HabFilter) ([]habapimodels.HabilitationView, int64, error)
	Delete(actor Actor, id string) error
	ExportSheet(actor Actor, id string) ([]byte, error)
	ScopeOf(actor Actor) habapimodels.ViewerScope
}

func NewHandler() {
	Instance = &impl{
		store:        habilitationstore.NewInstance(db.DB),
		eventStore:   habeventstore.NewInstance(db.DB),
		profileStore: profilestore.NewInstance(db.DB),
		orgGraph:     orggraph.NewInstance(profilestore.NewInstance(db.DB)),
		order:        BuildStageOrder(config.Conf.Workflow.ControlBeforeN2 != nil && *config.Conf.Workflow.ControlBeforeN2),
		routeTarget:  routingTarget(config.Conf.Workflow.RoutingTarget),
	}
}

func routingTarget(value string) models.RoutingTarget {
	if models.RoutingTarget(value) == models.RouteByRequester {
		return models.RouteByRequester
	}
	return models.RouteByBeneficiary
}

type impl struct {
	store        habilitationstore.Provider
	eventStore   habeventstore.Provider
	profileStore profilestore.Provider
	orgGraph     orggraph.Provider
	order        StageOrder
	routeTarget  models.RoutingTarget
}

func (i impl) getLogger(actor Actor, habID string) *log.Entry {
	logger := log.
		WithField("user_id", actor.UserID)
	if habID != "" {
		logger = logger.WithField("habilitation_id", habID)
	}
	return logger
}

func (i impl) ScopeOf(actor Actor) habapimodels.ViewerScope {
	return habapimodels.ViewerScope{
		UserID:           actor.UserID,
		ProfileID:        actor.ProfileID,
		IsAdmin:          actor.Roles.IsAdmin(),
		IsRh:             actor.Roles.Has(models.RoleRh),
		IsMetier:         actor.Roles.Has(models.RoleMetier),
		IsControl:        actor.Roles.Has(models.RoleControle),
		IsExecutorIT:     actor.Roles.Has(models.RoleExecuteurIT),
		RouteByRequester: i.routeTarget == models.RouteByRequester,
	}
}

// routeOf calcule les validateurs N+1/N+2 attendus pour la demande, à
// partir de la chaîne hiérarchique du profil cible du routage.
func (i impl) routeOf(rec dbmodels.Habilitation) (RouteInfo, error) {
	targetID := rec.BeneficiaryProfileID
	if i.routeTarget == models.RouteByRequester {
		targetID = rec.RequesterProfileID
	}
	route := RouteInfo{}
	n1, err := i.orgGraph.ManagerOf(targetID)
	if err != nil {
		return route, err
	}
	if n1 != nil {
		route.N1ProfileID = n1.ID
	}
	n2, err := i.orgGraph.SkipManagerOf(targetID)
	if err != nil {
		return route, err
	}
	if n2 != nil {
		route.N2ProfileID = n2.ID
	}
	return route, nil
}

func (i impl) Create(actor Actor, data habapimodels.CreateData) (id string, err error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	requester, err := i.profileStore.GetByID(data.RequesterProfileID)
	if err != nil {
		return "", err
	}
	if requester == nil {
		return "", models.NewNotFoundError("profil demandeur introuvable")
	}
	beneficiary, err := i.profileStore.GetByID(data.BeneficiaryProfileID)
	if err != nil {
		return "", err
	}
	if beneficiary == nil {
		return "", models.NewNotFoundError("profil bénéficiaire introuvable")
	}
	if !beneficiary.IsActive() {
		return "", models.NewValidationError("le profil bénéficiaire est inactif")
	}
	if !actor.Roles.IsAdmin() &&
		actor.ProfileID != requester.ID && actor.ProfileID != beneficiary.ID {
		return "", models.NewForbiddenError("vous ne pouvez créer une demande que pour vous-même ou en tant que demandeur")
	}

	rec := dbmodels.Habilitation{
		RequesterProfileID:   requester.ID,
		RequesterDirection:   data.RequesterDirection,
		RequesterEmail:       firstNonEmpty(data.RequesterEmail, requester.Email),
		RequesterTelephone:   firstNonEmpty(data.RequesterTelephone, requester.Telephone),
		BeneficiaryProfileID: beneficiary.ID,
		BeneficiaryDirection: firstNonEmpty(data.BeneficiaryDirection, beneficiary.Departement),
		BeneficiaryEmail:     firstNonEmpty(data.BeneficiaryEmail, beneficiary.Email),
		BeneficiaryTelephone: firstNonEmpty(data.BeneficiaryTelephone, beneficiary.Telephone),
		BeneficiarySite:      firstNonEmpty(data.BeneficiarySite, beneficiary.Site),
		Subsidiary:           data.Subsidiary,
		Status:               models.HabStatusDraft,
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txHandler := newWithTx(tx, i)
		id, err = txHandler.store.Create(rec)
		if err != nil {
			return err
		}
		_, err = txHandler.eventStore.Create(dbmodels.HabilitationEvent{
			HabilitationID: id,
			Stage:          StageRights,
			Action:         "creer",
			ActorUserID:    actor.UserID,
			NewStatus:      string(models.HabStatusDraft),
		})
		return err
	})
	if err != nil {
		i.getLogger(actor, "").WithError(err).Error("Erreur de création de la demande d'habilitation")
		return "", err
	}
	return id, nil
}

func newWithTx(tx *gorm.DB, base impl) impl {
	return impl{
		store:        habilitationstore.NewInstance(tx),
		eventStore:   habeventstore.NewInstance(tx),
		profileStore: profilestore.NewInstance(tx),
		orgGraph:     orggraph.NewInstance(profilestore.NewInstance(tx)),
		order:        base.order,
		routeTarget:  base.routeTarget,
	}
}

// runTransition exécute une transition sous verrou de ligne: lecture FOR
// UPDATE, décision pure, puis mise à jour gardée sur le statut d'origine.
// Le perdant d'une course entre deux acteurs reçoit un conflit d'état.
func (i impl) runTransition(actor Actor, id string, decide func(handler impl, rec dbmodels.Habilitation) (*Mutation, error)) (rec *dbmodels.Habilitation, err error) {
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txHandler := newWithTx(tx, i)
		rec, err = txHandler.store.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return models.NewNotFoundError("demande d'habilitation introuvable")
		}
		mutation, err := decide(txHandler, *rec)
		if err != nil {
			return err
		}
		applied, err := txHandler.store.UpdateGuarded(id, string(mutation.FromStatus), mutation.UpdMap)
		if err != nil {
			return err
		}
		if !applied {
			return models.NewStateConflictError("la demande a été modifiée par un autre utilisateur, rechargez-la")
		}
		_, err = txHandler.eventStore.Create(mutation.Event)
		if err != nil {
			return err
		}
		rec, err = txHandler.store.GetByID(id)
		return err
	})
	if err != nil {
		logger := i.getLogger(actor, id)
		if models.KindOf(err) == "" {
			logger.WithError(err).Error("Erreur de transition de la demande d'habilitation")
		} else {
			logger.WithError(err).Info("Transition refusée")
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) SubmitRights(actor Actor, id string, data habapimodels.RightsData) error {
	_, err := i.runTransition(actor, id, func(handler impl, rec dbmodels.Habilitation) (*Mutation, error) {
		return ApplySubmit(rec, handler.order, actor, data)
	})
	return err
}

func (i impl) Decide(actor Actor, id string, data habapimodels.DecisionData) error {
	_, err := i.runTransition(actor, id, func(handler impl, rec dbmodels.Habilitation) (*Mutation, error) {
		route, err := handler.routeOf(rec)
		if err != nil {
			return nil, err
		}
		return ApplyDecision(rec, handler.order, actor, route, data, time.Now())
	})
	return err
}

// resolveExecutor charge le profil de l'acteur et détermine sa qualité
// d'exécutant informatique (rôle dédié ou rattachement du profil).
func (i impl) resolveExecutor(actor Actor) (bool, *dbmodels.Profile, error) {
	var actorProfile *dbmodels.Profile
	if actor.ProfileID != "" {
		var err error
		actorProfile, err = i.profileStore.GetByID(actor.ProfileID)
		if err != nil {
			return false, nil, err
		}
	}
	isExecutor, err := roleauthority.Instance.IsExecutorIT(actor.UserID, actorProfile)
	if err != nil {
		return false, nil, err
	}
	return isExecutor, actorProfile, nil
}

func (i impl) Claim(actor Actor, id string) error {
	isExecutor, actorProfile, err := i.resolveExecutor(actor)
	if err != nil {
		return err
	}
	rec, err := i.runTransition(actor, id, func(handler impl, rec dbmodels.Habilitation) (*Mutation, error) {
		return ApplyClaim(rec, actor, isExecutor, time.Now())
	})
	if err != nil {
		return err
	}
	executorName := actor.UserID
	if actorProfile != nil {
		executorName = actorProfile.GetFullName()
	}
	go notify.Instance.HabilitationClaimed(*rec, executorName)
	return nil
}

func (i impl) Execute(actor Actor, id string, data habapimodels.ExecuteData) error {
	isExecutor, _, err := i.resolveExecutor(actor)
	if err != nil {
		return err
	}
	rec, err := i.runTransition(actor, id, func(handler impl, rec dbmodels.Habilitation) (*Mutation, error) {
		return ApplyExecute(rec, actor, isExecutor, data, time.Now())
	})
	if err != nil {
		return err
	}
	go i.archiveAndNotify(actor, *rec)
	return nil
}

// archiveAndNotify: effets de bord post-commit de la clôture. Un échec est
// journalisé mais ne remet jamais en cause la transition déjà validée.
func (i impl) archiveAndNotify(actor Actor, rec dbmodels.Habilitation) {
	logger := i.getLogger(actor, rec.ID)
	pdfFile, err := pdfexport.GenerateHabilitationSheet(habapimodels.HabilitationConvert(rec))
	if err != nil {
		logger.WithError(err).Error("Erreur de génération de la fiche pour archivage")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err = docarchive.Instance.ArchiveSheet(ctx, rec.ID, pdfFile); err != nil {
			logger.WithError(err).Error("Erreur d'archivage de la fiche")
		}
	}
	notify.Instance.HabilitationCompleted(rec)
}

func (i impl) GetByID(actor Actor, id string) (*habapimodels.HabilitationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("demande d'habilitation introuvable")
	}
	if !CanSee(i.ScopeOf(actor), *rec) {
		return nil, models.NewForbiddenError("vous n'avez pas accès à cette demande")
	}
	events, err := i.eventStore.ListByHabilitation(id)
	if err != nil {
		return nil, err
	}
	rec.Events = events
	view := habapimodels.HabilitationConvert(*rec)
	return &view, nil
}

func (i impl) List(actor Actor, filter habapimodels.HabFilter) ([]habapimodels.HabilitationView, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, models.NewValidationError(err.Error())
	}
	scope := i.ScopeOf(actor)
	list, err := i.store.List(scope, filter)
	if err != nil {
		return nil, 0, err
	}
	rowCount, err := i.store.ListCount(scope, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]habapimodels.HabilitationView, 0, len(list))
	for _, rec := range list {
		result = append(result, habapimodels.HabilitationConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Delete(actor Actor, id string) error {
	if !actor.Roles.IsAdmin() {
		return models.NewForbiddenError("seul un administrateur peut supprimer une demande")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("demande d'habilitation introuvable")
	}
	return i.store.Delete(id)
}

// ExportSheet produit la fiche PDF de la demande. Le document n'est
// délivré qu'une fois la validation du Contrôle Permanent acquise; pour
// une demande clôturée la version archivée fait foi.
func (i impl) ExportSheet(actor Actor, id string) ([]byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("demande d'habilitation introuvable")
	}
	if !CanSee(i.ScopeOf(actor), *rec) {
		return nil, models.NewForbiddenError("vous n'avez pas accès à cette demande")
	}
	if !rec.HasControlValidation() {
		return nil, models.NewStateConflictError("la fiche n'est disponible qu'après la validation du Contrôle Permanent")
	}
	if rec.Status == models.HabStatusCompleted {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		archived, err := docarchive.Instance.GetSheet(ctx, id)
		if err == nil && len(archived) > 0 {
			return archived, nil
		}
		i.getLogger(actor, id).WithError(err).Warn("Fiche archivée indisponible, régénération")
	}
	return pdfexport.GenerateHabilitationSheet(habapimodels.HabilitationConvert(*rec))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
