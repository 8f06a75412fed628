package apiv1

import (
	"habilitation-backend/controllers"
	agencyhandler "habilitation-backend/lib/dicts/agency"
	departmenthandler "habilitation-backend/lib/dicts/department"
	subsidiaryhandler "habilitation-backend/lib/dicts/subsidiary"
	apimodels "habilitation-backend/models/api"
	orgapimodels "habilitation-backend/models/api/org"

	"github.com/gofiber/fiber/v2"
)

type orgApiController struct {
	controllers.BaseAPIController
}

func InitOrgApiRouters(app *fiber.App) {
	controller := orgApiController{}
	app.Route("dicts", func(router fiber.Router) {
		router.Route("departments", func(dictRoute fiber.Router) {
			dictRoute.Get("", controller.listDepartments)
			dictRoute.Post("", controller.createDepartment)
			dictRoute.Put(":id", controller.updateDepartment)
			dictRoute.Delete(":id", controller.deleteDepartment)
		})
		router.Route("agencies", func(dictRoute fiber.Router) {
			dictRoute.Get("", controller.listAgencies)
			dictRoute.Post("", controller.createAgency)
			dictRoute.Put(":id", controller.updateAgency)
			dictRoute.Delete(":id", controller.deleteAgency)
		})
		router.Route("subsidiaries", func(dictRoute fiber.Router) {
			dictRoute.Get("", controller.listSubsidiaries)
			dictRoute.Post("", controller.createSubsidiary)
			dictRoute.Put(":id", controller.updateSubsidiary)
			dictRoute.Delete(":id", controller.deleteSubsidiary)
		})
	})
}

// @Summary Liste des départements
// @Tags Organisation
// @Description Référentiel des départements
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   only_active			query		bool	false	"uniquement les entrées actives"
// @Success 200 {object} apimodels.Response{data=[]orgapimodels.DepartmentView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/departments [get]
func (c *orgApiController) listDepartments(ctx *fiber.Ctx) error {
	list, err := departmenthandler.Instance.List(ctx.QueryBool("only_active"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des départements")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Création d'un département
// @Tags Organisation
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 orgapimodels.DepartmentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/departments [post]
func (c *orgApiController) createDepartment(ctx *fiber.Ctx) error {
	var payload orgapimodels.DepartmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := departmenthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de création du département")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Mise à jour d'un département
// @Tags Organisation
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 orgapimodels.DepartmentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/departments/{id} [put]
func (c *orgApiController) updateDepartment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload orgapimodels.DepartmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = departmenthandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de mise à jour du département")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Suppression d'un département
// @Tags Organisation
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/departments/{id} [delete]
func (c *orgApiController) deleteDepartment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = departmenthandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de suppression du département")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Liste des agences
// @Tags Organisation
// @Description Référentiel des agences
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   only_active			query		bool	false	"uniquement les entrées actives"
// @Success 200 {object} apimodels.Response{data=[]orgapimodels.AgencyView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/agencies [get]
func (c *orgApiController) listAgencies(ctx *fiber.Ctx) error {
	list, err := agencyhandler.Instance.List(ctx.QueryBool("only_active"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des agences")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Création d'une agence
// @Tags Organisation
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 orgapimodels.AgencyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/agencies [post]
func (c *orgApiController) createAgency(ctx *fiber.Ctx) error {
	var payload orgapimodels.AgencyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := agencyhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de création de l'agence")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Mise à jour d'une agence
// @Tags Organisation
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 orgapimodels.AgencyData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/agencies/{id} [put]
func (c *orgApiController) updateAgency(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload orgapimodels.AgencyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = agencyhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de mise à jour de l'agence")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Suppression d'une agence
// @Tags Organisation
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/agencies/{id} [delete]
func (c *orgApiController) deleteAgency(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = agencyhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de suppression de l'agence")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Liste des filiales
// @Tags Organisation
// @Description Référentiel des filiales
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   only_active			query		bool	false	"uniquement les entrées actives"
// @Success 200 {object} apimodels.Response{data=[]orgapimodels.SubsidiaryView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/subsidiaries [get]
func (c *orgApiController) listSubsidiaries(ctx *fiber.Ctx) error {
	list, err := subsidiaryhandler.Instance.List(ctx.QueryBool("only_active"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des filiales")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Création d'une filiale
// @Tags Organisation
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 orgapimodels.SubsidiaryData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/subsidiaries [post]
func (c *orgApiController) createSubsidiary(ctx *fiber.Ctx) error {
	var payload orgapimodels.SubsidiaryData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := subsidiaryhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de création de la filiale")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Mise à jour d'une filiale
// @Tags Organisation
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 orgapimodels.SubsidiaryData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/subsidiaries/{id} [put]
func (c *orgApiController) updateSubsidiary(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload orgapimodels.SubsidiaryData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = subsidiaryhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de mise à jour de la filiale")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Suppression d'une filiale
// @Tags Organisation
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/subsidiaries/{id} [delete]
func (c *orgApiController) deleteSubsidiary(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = subsidiaryhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de suppression de la filiale")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
