package notify

// Notifications email du circuit d'habilitation. Les envois sont déclenchés
// après commit et ne remontent jamais d'erreur au flux principal: un échec
// est journalisé puis oublié.

import (
	"fmt"

	"habilitation-backend/config"
	"habilitation-backend/lib/smtp"
	dbmodels "habilitation-backend/models/db"

	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	HabilitationClaimed(rec dbmodels.Habilitation, executorName string)
	HabilitationCompleted(rec dbmodels.Habilitation)
}

func NewHandler() {
	Instance = &impl{
		from: config.Conf.Smtp.From,
	}
}

type impl struct {
	from string
}

func (i impl) getLogger(habID string) *log.Entry {
	return log.WithField("habilitation_id", habID)
}

// HabilitationClaimed prévient le demandeur que sa demande est prise en
// charge par un exécutant informatique.
func (i impl) HabilitationClaimed(rec dbmodels.Habilitation, executorName string) {
	logger := i.getLogger(rec.ID)
	to := rec.RequesterEmail
	if to == "" && rec.Requester != nil {
		to = rec.Requester.Email
	}
	if to == "" {
		logger.Warn("Notification de prise en charge ignorée: demandeur sans email")
		return
	}
	message := fmt.Sprintf(
		"Votre demande d'habilitation n° %s a été prise en charge par %s.\nElle est désormais en cours d'exécution.",
		rec.ID, executorName)
	err := smtp.Instance.SendEMail(i.from, to, message, "Demande prise en charge")
	if err != nil {
		logger.WithError(err).Error("Erreur d'envoi de la notification de prise en charge")
	}
}

// HabilitationCompleted prévient les destinataires cochés à la clôture.
func (i impl) HabilitationCompleted(rec dbmodels.Habilitation) {
	logger := i.getLogger(rec.ID)
	message := fmt.Sprintf(
		"La demande d'habilitation n° %s a été exécutée.\nLes droits demandés sont désormais en place.",
		rec.ID)
	if rec.NotifyRequester {
		to := rec.RequesterEmail
		if to == "" && rec.Requester != nil {
			to = rec.Requester.Email
		}
		if to != "" {
			if err := smtp.Instance.SendEMail(i.from, to, message, "Demande exécutée"); err != nil {
				logger.WithError(err).Error("Erreur d'envoi de la notification de clôture au demandeur")
			}
		}
	}
	if rec.NotifyN1 && rec.ValidatorN1 != nil && rec.ValidatorN1.Email != "" {
		if err := smtp.Instance.SendEMail(i.from, rec.ValidatorN1.Email, message, "Demande exécutée"); err != nil {
			logger.WithError(err).Error("Erreur d'envoi de la notification de clôture au valideur N+1")
		}
	}
}
