package authapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("le format de l'email est invalide")
	}
	if r.Password == "" {
		return errors.New("le mot de passe est requis")
	}
	return nil
}

type JWTResponse struct {
	Token string `json:"token"`
}
