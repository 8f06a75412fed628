package models

type HabStatus string

const (
	HabStatusDraft          HabStatus = "draft"
	HabStatusPendingN1      HabStatus = "pending_n1"
	HabStatusPendingN2      HabStatus = "pending_n2"
	HabStatusPendingControl HabStatus = "pending_control"
	HabStatusApproved       HabStatus = "approved"
	HabStatusInProgress     HabStatus = "in_progress"
	HabStatusCompleted      HabStatus = "completed"
	HabStatusRejected       HabStatus = "rejected"
)

var habStatusHumanName = map[HabStatus]string{
	HabStatusDraft:          "Brouillon",
	HabStatusPendingN1:      "En attente de validation N+1",
	HabStatusPendingN2:      "En attente de validation N+2",
	HabStatusPendingControl: "En attente du Contrôle Permanent",
	HabStatusApproved:       "Approuvée",
	HabStatusInProgress:     "En cours d'exécution",
	HabStatusCompleted:      "Terminée",
	HabStatusRejected:       "Rejetée",
}

func (s HabStatus) ToHuman() string {
	if human, exist := habStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsTerminal: aucune transition n'est autorisée depuis ces statuts.
func (s HabStatus) IsTerminal() bool {
	return s == HabStatusCompleted || s == HabStatusRejected
}

// IsPendingStage: statuts où une décision approuver/rejeter est attendue.
func (s HabStatus) IsPendingStage() bool {
	switch s {
	case HabStatusPendingN1, HabStatusPendingN2, HabStatusPendingControl:
		return true
	}
	return false
}

type HabAction string

const (
	HabActionApprove HabAction = "approuver"
	HabActionReject  HabAction = "rejeter"
)

func (a HabAction) IsValid() bool {
	return a == HabActionApprove || a == HabActionReject
}

type RequestType string

const (
	RequestTypeCreation      RequestType = "Creation"
	RequestTypeModification  RequestType = "Modification"
	RequestTypeDesactivation RequestType = "Desactivation"
	RequestTypeSuppression   RequestType = "Suppression"
)

func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeCreation, RequestTypeModification, RequestTypeDesactivation, RequestTypeSuppression:
		return true
	}
	return false
}

type ProfileType string

const (
	ProfileTypeConsultation ProfileType = "Consultation simple"
	ProfileTypeSpecifique   ProfileType = "Profil Specifique"
)

func (t ProfileType) IsValid() bool {
	return t == ProfileTypeConsultation || t == ProfileTypeSpecifique
}

type ValidityPeriod string

const (
	ValidityPermanent  ValidityPeriod = "Permanent"
	ValidityTemporaire ValidityPeriod = "Temporaire"
)

func (v ValidityPeriod) IsValid() bool {
	return v == ValidityPermanent || v == ValidityTemporaire
}

// RoutingTarget: profil dont la chaîne hiérarchique détermine les validateurs N+1/N+2.
type RoutingTarget string

const (
	RouteByBeneficiary RoutingTarget = "beneficiary"
	RouteByRequester   RoutingTarget = "requester"
)
