package services

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pokemon-battle-system/apperrors"
	"pokemon-battle-system/battle"
	"pokemon-battle-system/models"
	"pokemon-battle-system/pokeapi"
	"pokemon-battle-system/utils"
)

var validate = validator.New()

type BattleService struct {
	DB             *gorm.DB
	PokemonService *PokemonService
}

func NewBattleService(db *gorm.DB, pokemonService *PokemonService) *BattleService {
	return &BattleService{DB: db, PokemonService: pokemonService}
}

type BattleRequest struct {
	Pokemon1Name string `json:"pokemon1_name" validate:"required,min=1"`
	Pokemon2Name string `json:"pokemon2_name" validate:"required,min=1"`
}

// BattleSummary is the lightweight projection for battle listings.
type BattleSummary struct {
	ID            string    `json:"id"`
	Pokemon1Name  string    `json:"pokemon1_name"`
	Pokemon2Name  string    `json:"pokemon2_name"`
	WinnerName    *string   `json:"winner_name"`
	Pokemon1Score float64   `json:"pokemon1_score"`
	Pokemon2Score float64   `json:"pokemon2_score"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateBattle handles POST /battles: resolves both participants, scores
// the matchup, and persists the outcome in one transaction. Either the
// whole battle is stored or nothing is.
func (s *BattleService) CreateBattle(c *fiber.Ctx) error {
	var req BattleRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.InvalidRequest("invalid request body"))
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, apperrors.InvalidRequest("pokemon1_name and pokemon2_name are required"))
	}

	name1 := pokeapi.NormalizeName(req.Pokemon1Name)
	name2 := pokeapi.NormalizeName(req.Pokemon2Name)
	if name1 == name2 {
		return respondError(c, apperrors.SamePokemon(name1))
	}

	var record models.Battle
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		pokemon1, err := s.PokemonService.GetOrFetch(c.Context(), tx, name1)
		if err != nil {
			return err
		}
		pokemon2, err := s.PokemonService.GetOrFetch(c.Context(), tx, name2)
		if err != nil {
			return err
		}

		result := battle.Execute(pokemon1, pokemon2)

		var winnerID *string
		if result.Winner != nil {
			winnerID = &result.Winner.ID
		}

		record = models.Battle{
			ID:            uuid.NewString(),
			Pokemon1ID:    pokemon1.ID,
			Pokemon2ID:    pokemon2.ID,
			WinnerID:      winnerID,
			Pokemon1Score: result.Pokemon1Score,
			Pokemon2Score: result.Pokemon2Score,
			BattleLog:     result.BattleLog,
		}
		if err := tx.Create(&record).Error; err != nil {
			return apperrors.Database(err)
		}

		// Populate relations for the response without another round trip.
		record.Pokemon1 = pokemon1
		record.Pokemon2 = pokemon2
		record.Winner = result.Winner
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// GetBattle handles GET /battles/:id with participants and winner loaded.
func (s *BattleService) GetBattle(c *fiber.Ctx) error {
	id := c.Params("id")

	var record models.Battle
	err := s.DB.
		Preload("Pokemon1").
		Preload("Pokemon2").
		Preload("Winner").
		Where("id = ?", id).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, apperrors.BattleNotFound(id))
	}
	if err != nil {
		return respondError(c, apperrors.Database(err))
	}
	return c.JSON(record)
}

// ListBattles handles GET /battles: newest first, summarized.
func (s *BattleService) ListBattles(c *fiber.Ctx) error {
	limit, offset := utils.ParseLimitOffset(c, 100, 100)

	var records []models.Battle
	err := s.DB.
		Preload("Pokemon1").
		Preload("Pokemon2").
		Preload("Winner").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return respondError(c, apperrors.Database(err))
	}

	summaries := make([]BattleSummary, 0, len(records))
	for _, b := range records {
		summary := BattleSummary{
			ID:            b.ID,
			Pokemon1Score: b.Pokemon1Score,
			Pokemon2Score: b.Pokemon2Score,
			CreatedAt:     b.CreatedAt,
		}
		if b.Pokemon1 != nil {
			summary.Pokemon1Name = b.Pokemon1.Name
		}
		if b.Pokemon2 != nil {
			summary.Pokemon2Name = b.Pokemon2.Name
		}
		if b.Winner != nil {
			summary.WinnerName = &b.Winner.Name
		}
		summaries = append(summaries, summary)
	}
	return c.JSON(summaries)
}
