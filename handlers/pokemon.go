package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pokemon-battle-system/services"
)

func SetupPokemonRoutes(app *fiber.App, pokemonService *services.PokemonService) {
	app.Get("/pokemon", pokemonService.ListPokemon)
	app.Get("/pokemon/:name", pokemonService.GetPokemonByName)
}
