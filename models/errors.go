package models

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrKindValidation    ErrorKind = "VALIDATION"
	ErrKindStateConflict ErrorKind = "STATE_CONFLICT"
	ErrKindForbidden     ErrorKind = "FORBIDDEN"
	ErrKindNotFound      ErrorKind = "NOT_FOUND"
	ErrKindDependency    ErrorKind = "DEPENDENCY"
)

// AppError: erreur métier typée, remontée telle quelle jusqu'au contrôleur
// qui la convertit en code HTTP. Les champs Fields portent le détail
// par champ pour les erreurs de validation.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.cause.Error())
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: ErrKindValidation, Message: message}
}

func NewFieldValidationError(field, message string) *AppError {
	return &AppError{
		Kind:    ErrKindValidation,
		Message: message,
		Fields:  map[string]string{field: message},
	}
}

func NewStateConflictError(message string) *AppError {
	return &AppError{Kind: ErrKindStateConflict, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: ErrKindForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: ErrKindNotFound, Message: message}
}

func NewDependencyError(message string, cause error) *AppError {
	return &AppError{Kind: ErrKindDependency, Message: message, cause: cause}
}

// KindOf retourne le type d'erreur métier, ou "" pour une erreur technique.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
