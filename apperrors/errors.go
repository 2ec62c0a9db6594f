// Package apperrors defines the domain error taxonomy. Errors raised deep in
// the lookup/orchestration layers carry a stable machine code and propagate
// unmodified to the HTTP boundary, which maps codes to response statuses.
package apperrors

import "fmt"

const (
	CodePokemonNotFound = "POKEMON_NOT_FOUND"
	CodeBattleNotFound  = "BATTLE_NOT_FOUND"
	CodeSamePokemon     = "SAME_POKEMON"
	CodePokeAPI         = "POKEAPI_ERROR"
	CodeDatabase        = "DATABASE_ERROR"
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeUnknown         = "UNKNOWN"
)

type Error struct {
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// PokemonNotFound signals that a name resolved to nothing, locally or at the
// external source.
func PokemonNotFound(name string) *Error {
	return &Error{
		Code:    CodePokemonNotFound,
		Message: fmt.Sprintf("Pokemon '%s' not found", name),
	}
}

func BattleNotFound(id string) *Error {
	return &Error{
		Code:    CodeBattleNotFound,
		Message: fmt.Sprintf("Battle with id %s not found", id),
	}
}

// SamePokemon signals a battle request naming the same participant twice.
func SamePokemon(name string) *Error {
	return &Error{
		Code:    CodeSamePokemon,
		Message: fmt.Sprintf("Cannot battle '%s' against itself", name),
	}
}

// PokeAPI wraps any transport failure or non-success response from the
// external source.
func PokeAPI(err error) *Error {
	return &Error{
		Code:    CodePokeAPI,
		Message: fmt.Sprintf("PokeAPI error: %v", err),
		cause:   err,
	}
}

func PokeAPIStatus(statusCode int) *Error {
	return &Error{
		Code:    CodePokeAPI,
		Message: fmt.Sprintf("PokeAPI error: HTTP error %d", statusCode),
	}
}

func Database(err error) *Error {
	return &Error{
		Code:    CodeDatabase,
		Message: fmt.Sprintf("Database error: %v", err),
		cause:   err,
	}
}

func InvalidRequest(message string) *Error {
	return &Error{Code: CodeInvalidRequest, Message: message}
}
