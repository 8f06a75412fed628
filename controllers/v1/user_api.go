package apiv1

import (
	"habilitation-backend/controllers"
	accounthandler "habilitation-backend/lib/account"
	"habilitation-backend/lib/rbac"
	"habilitation-backend/lib/roleauthority"
	"habilitation-backend/middleware"
	"habilitation-backend/models"
	apimodels "habilitation-backend/models/api"
	accountapimodels "habilitation-backend/models/api/account"

	"github.com/gofiber/fiber/v2"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
		})
	})
	app.Route("roles", func(router fiber.Router) {
		router.Get("", controller.roles)
		router.Get("permissions", controller.permissions)
	})
}

// @Summary Liste des comptes
// @Tags Utilisateurs
// @Description Liste des comptes utilisateurs avec leurs rôles
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]accountapimodels.UserView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	list, err := accounthandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des comptes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Création d'un compte
// @Tags Utilisateurs
// @Description Création d'un compte utilisateur et affectation de ses rôles
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 accountapimodels.UserData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	var payload accountapimodels.UserData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := accounthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de création du compte")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Détail d'un compte
// @Tags Utilisateurs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=accountapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := accounthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération du compte")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Mise à jour d'un compte
// @Tags Utilisateurs
// @Description Mise à jour du compte et de ses rôles
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 accountapimodels.UserData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [put]
func (c *userApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload accountapimodels.UserData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = accounthandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de mise à jour du compte")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Liste des rôles
// @Tags Utilisateurs
// @Description Référentiel des rôles applicatifs
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]accountapimodels.RoleView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles [get]
func (c *userApiController) roles(ctx *fiber.Ctx) error {
	list, err := roleauthority.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des rôles")
	}
	result := make([]accountapimodels.RoleView, 0, len(list))
	for _, rec := range list {
		result = append(result, accountapimodels.RoleConvert(rec))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Permissions de l'utilisateur courant
// @Tags Utilisateurs
// @Description Permissions par module, agrégées sur les rôles de l'appelant
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=map[string][]string}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/permissions [get]
func (c *userApiController) permissions(ctx *fiber.Ctx) error {
	merged := map[models.Module][]models.Permission{}
	for slug := range middleware.GetRoles(ctx) {
		for module, perms := range rbac.Instance.GetPermissions(slug) {
			for _, perm := range perms {
				if !containsPermission(merged[module], perm) {
					merged[module] = append(merged[module], perm)
				}
			}
		}
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(merged))
}

func containsPermission(list []models.Permission, perm models.Permission) bool {
	for _, item := range list {
		if item == perm {
			return true
		}
	}
	return false
}
