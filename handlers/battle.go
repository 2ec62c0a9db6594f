package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pokemon-battle-system/services"
)

func SetupBattleRoutes(app *fiber.App, battleService *services.BattleService) {
	app.Post("/battles", battleService.CreateBattle)
	app.Get("/battles", battleService.ListBattles)
	app.Get("/battles/:id", battleService.GetBattle)
}
