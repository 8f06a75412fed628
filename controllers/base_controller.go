package controllers

import (
	"habilitation-backend/models"
	apimodels "habilitation-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("Erreur d'analyse de la requête")
		return errors.New("impossible de lire les données de la requête")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("identifiant manquant")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError convertit une erreur métier typée en code HTTP; toute erreur
// non typée est une erreur technique journalisée en 500.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	switch models.KindOf(err) {
	case models.ErrKindValidation:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case models.ErrKindStateConflict:
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	case models.ErrKindForbidden:
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case models.ErrKindNotFound:
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case models.ErrKindDependency:
		logger.WithError(err).Error(hMsg)
		return ctx.Status(fiber.StatusBadGateway).JSON(apimodels.NewError(hMsg))
	}
	logger.WithError(err).Error(hMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(hMsg))
}
