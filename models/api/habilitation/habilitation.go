package habapimodels

import (
	"habilitation-backend/models"
	apimodels "habilitation-backend/models/api"
	dbmodels "habilitation-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

// CreateData: étape 1 du circuit, identification du demandeur et du bénéficiaire.
type CreateData struct {
	RequesterProfileID   string `json:"requester_profile_id"`   // id du profil demandeur
	RequesterDirection   string `json:"requester_direction"`    // direction du demandeur
	RequesterEmail       string `json:"requester_email"`        // email du demandeur
	RequesterTelephone   string `json:"requester_telephone"`    // téléphone du demandeur
	BeneficiaryProfileID string `json:"beneficiary_profile_id"` // id du profil bénéficiaire
	BeneficiaryDirection string `json:"beneficiary_direction"`  // direction du bénéficiaire
	BeneficiaryEmail     string `json:"beneficiary_email"`      // email du bénéficiaire
	BeneficiaryTelephone string `json:"beneficiary_telephone"`  // téléphone du bénéficiaire
	BeneficiarySite      string `json:"beneficiary_site"`       // site du bénéficiaire
	Subsidiary           string `json:"subsidiary"`             // filiale concernée
}

func (d CreateData) Validate() error {
	if d.RequesterProfileID == "" {
		return models.NewFieldValidationError("requester_profile_id", "profil demandeur manquant")
	}
	if d.BeneficiaryProfileID == "" {
		return models.NewFieldValidationError("beneficiary_profile_id", "profil bénéficiaire manquant")
	}
	return nil
}

// RightsData: étape 2 du circuit, définition des droits demandés.
// La soumission fait passer la demande du brouillon vers la première validation.
type RightsData struct {
	RequestType        models.RequestType    `json:"request_type"`        // type de demande
	Applications       []string              `json:"applications"`        // applications concernées
	OtherApplication   string                `json:"other_application"`   // application hors catalogue
	CurrentProfile     string                `json:"current_profile"`     // profil applicatif actuel
	RequestedProfile   string                `json:"requested_profile"`   // profil applicatif demandé
	ImplementationDate *time.Time            `json:"implementation_date"` // date de mise en oeuvre souhaitée
	ProfileType        models.ProfileType    `json:"profile_type"`        // consultation simple ou profil spécifique
	SpecificProfile    string                `json:"specific_profile"`    // détail du profil spécifique
	ValidityPeriod     models.ValidityPeriod `json:"validity_period"`     // permanent ou temporaire
	StartDate          *time.Time            `json:"start_date"`          // début de validité (temporaire)
	EndDate            *time.Time            `json:"end_date"`            // fin de validité (temporaire)
	RequestReason      string                `json:"request_reason"`      // motif de la demande
}

func (d RightsData) Validate() error {
	if !d.RequestType.IsValid() {
		return models.NewFieldValidationError("request_type", "type de demande inconnu")
	}
	if len(d.Applications) == 0 {
		return models.NewFieldValidationError("applications", "au moins une application est requise")
	}
	if d.ProfileType != "" && !d.ProfileType.IsValid() {
		return models.NewFieldValidationError("profile_type", "type de profil inconnu")
	}
	if d.ProfileType == models.ProfileTypeSpecifique && d.SpecificProfile == "" {
		return models.NewFieldValidationError("specific_profile", "le profil spécifique doit être décrit")
	}
	if d.ValidityPeriod != "" && !d.ValidityPeriod.IsValid() {
		return models.NewFieldValidationError("validity_period", "période de validité inconnue")
	}
	if d.ValidityPeriod == models.ValidityTemporaire {
		if d.StartDate == nil || d.EndDate == nil {
			return models.NewFieldValidationError("start_date", "les dates de début et de fin sont requises pour un accès temporaire")
		}
		if !d.EndDate.After(*d.StartDate) {
			return models.NewFieldValidationError("end_date", "la date de fin doit être postérieure à la date de début")
		}
	}
	if d.RequestReason == "" {
		return models.NewFieldValidationError("request_reason", "le motif de la demande est requis")
	}
	return nil
}

// DecisionData: décision d'un validateur sur l'étape en attente.
type DecisionData struct {
	Action    models.HabAction `json:"action"`    // approuver / rejeter
	Comment   string           `json:"comment"`   // commentaire (obligatoire en cas de rejet)
	Signature string           `json:"signature"` // signature apposée sur le document
}

func (d DecisionData) Validate() error {
	if !d.Action.IsValid() {
		return models.NewFieldValidationError("action", "action inconnue")
	}
	if d.Action == models.HabActionReject && d.Comment == "" {
		return models.NewFieldValidationError("comment", "un commentaire est obligatoire en cas de rejet")
	}
	return nil
}

// ExecuteData: clôture par l'exécutant informatique.
type ExecuteData struct {
	Comment         string `json:"comment"`          // commentaire d'exécution
	NotifyRequester bool   `json:"notify_requester"` // notifier le demandeur
	NotifyN1        bool   `json:"notify_n1"`        // notifier le valideur N+1
}

const (
	HabFilterAll     = "all"
	HabFilterEnCours = "encours"
	HabFilterTermine = "termine"
	HabFilterRejete  = "rejete"
)

type HabFilter struct {
	apimodels.Pagination
	Filter      string             `json:"filter"`       // all / encours / termine / rejete
	Status      models.HabStatus   `json:"status"`       // filtre sur un statut précis
	RequestType models.RequestType `json:"request_type"` // filtre sur le type de demande
	Search      string             `json:"search"`       // recherche sur demandeur/bénéficiaire
}

func (f HabFilter) Validate() error {
	switch f.Filter {
	case "", HabFilterAll, HabFilterEnCours, HabFilterTermine, HabFilterRejete:
	default:
		return errors.New("filtre de liste inconnu")
	}
	return nil
}

// ViewerScope: projection des rôles de l'appelant utilisée pour filtrer
// les listes en SQL; le miroir exact du prédicat de visibilité unitaire.
type ViewerScope struct {
	UserID           string
	ProfileID        string
	IsAdmin          bool
	IsRh             bool
	IsMetier         bool
	IsControl        bool
	IsExecutorIT     bool
	RouteByRequester bool
}

type StageView struct {
	ValidatorID   string     `json:"validator_id,omitempty"`
	ValidatorName string     `json:"validator_name,omitempty"`
	ValidatedAt   *time.Time `json:"validated_at,omitempty"`
	Comment       string     `json:"comment,omitempty"`
	Signature     string     `json:"signature,omitempty"`
}

type EventView struct {
	Stage     string    `json:"stage"`
	Action    string    `json:"action"`
	ActorName string    `json:"actor_name,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	NewStatus string    `json:"new_status"`
	Date      time.Time `json:"date"`
}

type HabilitationView struct {
	ID                 string                `json:"id"`
	CreationDate       time.Time             `json:"creation_date"`
	Status             models.HabStatus      `json:"status"`
	StatusHuman        string                `json:"status_human"`
	RequesterID        string                `json:"requester_id"`
	RequesterName      string                `json:"requester_name"`
	RequesterDirection string                `json:"requester_direction"`
	BeneficiaryID      string                `json:"beneficiary_id"`
	BeneficiaryName    string                `json:"beneficiary_name"`
	BeneficiarySite    string                `json:"beneficiary_site"`
	Subsidiary         string                `json:"subsidiary"`
	RequestType        models.RequestType    `json:"request_type"`
	Applications       []string              `json:"applications"`
	OtherApplication   string                `json:"other_application,omitempty"`
	CurrentProfile     string                `json:"current_profile,omitempty"`
	RequestedProfile   string                `json:"requested_profile,omitempty"`
	ImplementationDate *time.Time            `json:"implementation_date,omitempty"`
	ProfileType        models.ProfileType    `json:"profile_type,omitempty"`
	SpecificProfile    string                `json:"specific_profile,omitempty"`
	ValidityPeriod     models.ValidityPeriod `json:"validity_period,omitempty"`
	StartDate          *time.Time            `json:"start_date,omitempty"`
	EndDate            *time.Time            `json:"end_date,omitempty"`
	RequestReason      string                `json:"request_reason,omitempty"`
	StageN1            StageView             `json:"stage_n1"`
	StageN2            StageView             `json:"stage_n2"`
	StageControl       StageView             `json:"stage_control"`
	ExecutorID         string                `json:"executor_id,omitempty"`
	ExecutorName       string                `json:"executor_name,omitempty"`
	ExecutedAt         *time.Time            `json:"executed_at,omitempty"`
	CommentIT          string                `json:"comment_it,omitempty"`
	Events             []EventView           `json:"events,omitempty"`
}

func stageConvert(validatorID *string, validator *dbmodels.User, at *time.Time, comment, signature string) StageView {
	view := StageView{
		ValidatedAt: at,
		Comment:     comment,
		Signature:   signature,
	}
	if validatorID != nil {
		view.ValidatorID = *validatorID
	}
	if validator != nil {
		view.ValidatorName = validator.Name
	}
	return view
}

func HabilitationConvert(rec dbmodels.Habilitation) HabilitationView {
	result := HabilitationView{
		ID:                 rec.ID,
		CreationDate:       rec.CreatedAt,
		Status:             rec.Status,
		StatusHuman:        rec.Status.ToHuman(),
		RequesterID:        rec.RequesterProfileID,
		RequesterDirection: rec.RequesterDirection,
		BeneficiaryID:      rec.BeneficiaryProfileID,
		BeneficiarySite:    rec.BeneficiarySite,
		Subsidiary:         rec.Subsidiary,
		RequestType:        rec.RequestType,
		Applications:       rec.Applications,
		OtherApplication:   rec.OtherApplication,
		CurrentProfile:     rec.CurrentProfile,
		RequestedProfile:   rec.RequestedProfile,
		ImplementationDate: rec.ImplementationDate,
		ProfileType:        rec.ProfileType,
		SpecificProfile:    rec.SpecificProfile,
		ValidityPeriod:     rec.ValidityPeriod,
		StartDate:          rec.StartDate,
		EndDate:            rec.EndDate,
		RequestReason:      rec.RequestReason,
		StageN1:            stageConvert(rec.ValidatorN1ID, rec.ValidatorN1, rec.ValidatedN1At, rec.CommentN1, rec.SignatureN1),
		StageN2:            stageConvert(rec.ValidatorN2ID, rec.ValidatorN2, rec.ValidatedN2At, rec.CommentN2, rec.SignatureN2),
		StageControl:       stageConvert(rec.ValidatorControlID, rec.ValidatorControl, rec.ValidatedControlAt, rec.CommentControl, rec.SignatureControl),
		ExecutedAt:         rec.ExecutedITAt,
		CommentIT:          rec.CommentIT,
	}
	if rec.Requester != nil {
		result.RequesterName = rec.Requester.GetFullName()
	}
	if rec.Beneficiary != nil {
		result.BeneficiaryName = rec.Beneficiary.GetFullName()
	}
	if rec.ExecutorITID != nil {
		result.ExecutorID = *rec.ExecutorITID
	}
	if rec.ExecutorIT != nil {
		result.ExecutorName = rec.ExecutorIT.Name
	}
	for _, event := range rec.Events {
		result.Events = append(result.Events, EventConvert(event))
	}
	return result
}

func EventConvert(rec dbmodels.HabilitationEvent) EventView {
	view := EventView{
		Stage:     rec.Stage,
		Action:    rec.Action,
		Comment:   rec.Comment,
		NewStatus: rec.NewStatus,
		Date:      rec.CreatedAt,
	}
	if rec.ActorUser != nil {
		view.ActorName = rec.ActorUser.Name
	}
	return view
}
