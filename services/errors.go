package services

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"pokemon-battle-system/apperrors"
)

// respondError maps a domain error onto its HTTP response. Anything outside
// the taxonomy becomes a generic 500 with code UNKNOWN.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
			"code":  apperrors.CodeUnknown,
		})
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case apperrors.CodePokemonNotFound, apperrors.CodeBattleNotFound:
		status = fiber.StatusNotFound
	case apperrors.CodeSamePokemon, apperrors.CodeInvalidRequest:
		status = fiber.StatusBadRequest
	case apperrors.CodePokeAPI:
		status = fiber.StatusBadGateway
	}

	return c.Status(status).JSON(fiber.Map{
		"error": appErr.Message,
		"code":  appErr.Code,
	})
}
