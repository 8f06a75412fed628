package rbac

import (
	"regexp"

	"habilitation-backend/models"
)

type MethodRule struct {
	Method  HTTPMethod
	Handler models.RbacFunc
}

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
	PATCH  HTTPMethod = "PATCH"
	ALL    HTTPMethod = "ALL"
)

type PathRule struct {
	// vérifications de la plus rapide à la plus lente
	Exact    map[string]models.RbacFunc // correspondances exactes
	Patterns []PatternRule              // règles regexp
}

type PatternRule struct {
	Pattern *regexp.Regexp
	Handler models.RbacFunc
}
