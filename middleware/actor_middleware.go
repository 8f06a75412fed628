package middleware

import (
	accounthandler "habilitation-backend/lib/account"
	"habilitation-backend/lib/habilitation"
	"habilitation-backend/lib/roleauthority"
	authutils "habilitation-backend/lib/utils/auth-utils"
	"habilitation-backend/models"
	apimodels "habilitation-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const (
	localsRoles     = "actor_roles"
	localsProfileID = "actor_profile_id"
)

// ActorResolver charge les rôles et la fiche collaborateur de l'utilisateur
// authentifié. Les rôles viennent de la base à chaque requête: une
// révocation prend effet immédiatement, sans attendre l'expiration du JWT.
func ActorResolver() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		userID := GetUserID(ctx)
		if userID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("session invalide"))
		}
		roles, err := roleauthority.Instance.RolesOf(userID)
		if err != nil {
			log.WithField("user_id", userID).WithError(err).Error("Erreur de résolution des rôles")
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("erreur interne"))
		}
		ctx.Locals(localsRoles, roles)
		profile, err := accounthandler.Instance.ProfileOf(userID)
		if err != nil {
			log.WithField("user_id", userID).WithError(err).Error("Erreur de résolution du profil")
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("erreur interne"))
		}
		if profile != nil {
			ctx.Locals(localsProfileID, profile.ID)
		}
		return ctx.Next()
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if stringSub, ok := sub.(string); ok {
			return stringSub
		}
	}
	return ""
}

func GetRoles(ctx *fiber.Ctx) models.RoleSet {
	if roles, ok := ctx.Locals(localsRoles).(models.RoleSet); ok {
		return roles
	}
	return models.RoleSet{}
}

func GetProfileID(ctx *fiber.Ctx) string {
	if profileID, ok := ctx.Locals(localsProfileID).(string); ok {
		return profileID
	}
	return ""
}

func GetActor(ctx *fiber.Ctx) habilitation.Actor {
	return habilitation.Actor{
		UserID:    GetUserID(ctx),
		ProfileID: GetProfileID(ctx),
		Roles:     GetRoles(ctx),
	}
}

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetRoles(ctx).IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("opération non autorisée"))
		}
		return ctx.Next()
	}
}
