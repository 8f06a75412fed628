package apiv1

import (
	"habilitation-backend/controllers"
	xlsexport "habilitation-backend/lib/export/xls"
	profilehandler "habilitation-backend/lib/profile"
	apimodels "habilitation-backend/models/api"
	profileapimodels "habilitation-backend/models/api/profile"

	"github.com/gofiber/fiber/v2"
)

type profileApiController struct {
	controllers.BaseAPIController
}

func InitProfileApiRouters(app *fiber.App) {
	controller := profileApiController{}
	app.Route("profiles", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("export", controller.export)
		router.Post("fix_managers", controller.fixManagers)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Get("reports", controller.reports) // subordonnés directs
		})
	})
}

// @Summary Création d'un profil
// @Tags Profils
// @Description Création d'une fiche collaborateur
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 profileapimodels.ProfileData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profiles [post]
func (c *profileApiController) create(ctx *fiber.Ctx) error {
	var payload profileapimodels.ProfileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := profilehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de création du profil")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Liste des profils
// @Tags Profils
// @Description Liste paginée des fiches collaborateurs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 profileapimodels.ProfileFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]profileapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profiles/list [post]
func (c *profileApiController) list(ctx *fiber.Ctx) error {
	var payload profileapimodels.ProfileFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := profilehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération de la liste des profils")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Détail d'un profil
// @Tags Profils
// @Description Fiche collaborateur par identifiant
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profiles/{id} [get]
func (c *profileApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := profilehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération du profil")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Mise à jour d'un profil
// @Tags Profils
// @Description Mise à jour d'une fiche collaborateur
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 profileapimodels.ProfileData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profiles/{id} [put]
func (c *profileApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload profileapimodels.ProfileData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = profilehandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de mise à jour du profil")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Suppression d'un profil
// @Tags Profils
// @Description Suppression d'une fiche collaborateur
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profiles/{id} [delete]
func (c *profileApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = profilehandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de suppression du profil")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Subordonnés directs
// @Tags Profils
// @Description Liste des collaborateurs dont ce profil est le N+1
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]profileapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profiles/{id}/reports [get]
func (c *profileApiController) reports(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := profilehandler.Instance.DirectReports(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des subordonnés")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Rattachement des orphelins
// @Tags Profils
// @Description Rattache les profils sans manager au responsable de leur département
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profiles/fix_managers [post]
func (c *profileApiController) fixManagers(ctx *fiber.Ctx) error {
	fixed, err := profilehandler.Instance.FixMissingManagers()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de rattachement des profils orphelins")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fixed))
}

// @Summary Export des profils
// @Tags Profils
// @Description Export xlsx des fiches collaborateurs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 profileapimodels.ProfileFilter	true	"request body"
// @Success 200 {file} application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profiles/export [post]
func (c *profileApiController) export(ctx *fiber.Ctx) error {
	var payload profileapimodels.ProfileFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	views := []profileapimodels.ProfileView{}
	payload.Limit = 100
	for page := 1; ; page++ {
		payload.Page = page
		list, rowCount, err := profilehandler.Instance.List(payload)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des profils à exporter")
		}
		views = append(views, list...)
		if len(list) == 0 || int64(len(views)) >= rowCount {
			break
		}
	}
	buf, err := xlsexport.Instance.ExportProfileList(views)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de génération de l'export")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="collaborateurs.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
