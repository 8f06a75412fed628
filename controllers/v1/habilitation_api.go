package apiv1

import (
	"fmt"

	"habilitation-backend/controllers"
	xlsexport "habilitation-backend/lib/export/xls"
	"habilitation-backend/lib/habilitation"
	"habilitation-backend/middleware"
	apimodels "habilitation-backend/models/api"
	habapimodels "habilitation-backend/models/api/habilitation"

	"github.com/gofiber/fiber/v2"
)

type habilitationApiController struct {
	controllers.BaseAPIController
}

func InitHabilitationApiRouters(app *fiber.App) {
	controller := habilitationApiController{}
	app.Route("habilitations", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("export", controller.export)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Put("rights", controller.submitRights) // soumission des droits demandés
			// les décisions peuvent embarquer une signature encodée en base64
			idRoute.Put("decision", middleware.WithBodyLimit(512*1024), controller.decide)
			idRoute.Put("claim", controller.claim)         // prise en charge par un exécutant IT
			idRoute.Put("execute", controller.execute)     // clôture après mise en place des droits
			idRoute.Get("sheet", controller.downloadSheet) // fiche PDF
		})
	})
}

// @Summary Création d'une demande
// @Tags Habilitations
// @Description Création d'une demande d'habilitation (étape d'identification)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 habapimodels.CreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/habilitations [post]
func (c *habilitationApiController) create(ctx *fiber.Ctx) error {
	var payload habapimodels.CreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	id, err := habilitation.Instance.Create(actor, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de création de la demande")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Liste des demandes
// @Tags Habilitations
// @Description Liste paginée, filtrée selon les règles de visibilité du rôle
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 habapimodels.HabFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]habapimodels.HabilitationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/habilitations/list [post]
func (c *habilitationApiController) list(ctx *fiber.Ctx) error {
	var payload habapimodels.HabFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	list, rowCount, err := habilitation.Instance.List(actor, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération de la liste des demandes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Détail d'une demande
// @Tags Habilitations
// @Description Détail avec le cartouche des validations et l'historique
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=habapimodels.HabilitationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/habilitations/{id} [get]
func (c *habilitationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	resp, err := habilitation.Instance.GetByID(actor, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération de la demande")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Soumission des droits
// @Tags Habilitations
// @Description Renseigne les droits demandés et soumet le brouillon à validation
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 habapimodels.RightsData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/habilitations/{id}/rights [put]
func (c *habilitationApiController) submitRights(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload habapimodels.RightsData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	err = habilitation.Instance.SubmitRights(actor, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de soumission de la demande")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Décision sur l'étape courante
// @Tags Habilitations
// @Description Approuve ou rejette l'étape de validation en attente
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 habapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/habilitations/{id}/decision [put]
func (c *habilitationApiController) decide(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload habapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	err = habilitation.Instance.Decide(actor, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur d'enregistrement de la décision")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Prise en charge
// @Tags Habilitations
// @Description Prise en charge d'une demande approuvée par un exécutant informatique
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/habilitations/{id}/claim [put]
func (c *habilitationApiController) claim(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	err = habilitation.Instance.Claim(actor, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de prise en charge de la demande")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Clôture
// @Tags Habilitations
// @Description Clôture la demande après mise en place effective des droits
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 habapimodels.ExecuteData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/habilitations/{id}/execute [put]
func (c *habilitationApiController) execute(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload habapimodels.ExecuteData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	err = habilitation.Instance.Execute(actor, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de clôture de la demande")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Suppression
// @Tags Habilitations
// @Description Suppression d'une demande (administrateur uniquement)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/habilitations/{id} [delete]
func (c *habilitationApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	err = habilitation.Instance.Delete(actor, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de suppression de la demande")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Fiche PDF
// @Tags Habilitations
// @Description Télécharge la fiche signée; disponible après validation du Contrôle Permanent
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} application/pdf
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/habilitations/{id}/sheet [get]
func (c *habilitationApiController) downloadSheet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	pdfFile, err := habilitation.Instance.ExportSheet(actor, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de génération de la fiche")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="habilitation-%s.pdf"`, id))
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}

// @Summary Export du registre
// @Tags Habilitations
// @Description Export xlsx du registre des demandes visibles par l'appelant
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 habapimodels.HabFilter	true	"request body"
// @Success 200 {file} application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/habilitations/export [post]
func (c *habilitationApiController) export(ctx *fiber.Ctx) error {
	var payload habapimodels.HabFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	views := []habapimodels.HabilitationView{}
	payload.Limit = 100
	for page := 1; ; page++ {
		payload.Page = page
		list, rowCount, err := habilitation.Instance.List(actor, payload)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des demandes à exporter")
		}
		views = append(views, list...)
		if len(list) == 0 || int64(len(views)) >= rowCount {
			break
		}
	}
	buf, err := xlsexport.Instance.ExportHabilitationList(views)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de génération du registre")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="registre-habilitations.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
