package services

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pokemon-battle-system/apperrors"
	"pokemon-battle-system/models"
	"pokemon-battle-system/pokeapi"
	"pokemon-battle-system/utils"
)

type PokemonService struct {
	DB     *gorm.DB
	Client *pokeapi.Client
}

func NewPokemonService(db *gorm.DB, client *pokeapi.Client) *PokemonService {
	return &PokemonService{DB: db, Client: client}
}

// GetOrFetch resolves a Pokemon by name: the store is authoritative, then
// the client (cache, then PokeAPI), with a fresh fetch persisted before
// returning. tx may be a transaction handle so callers control the scope.
//
// Two concurrent lookups for the same unknown name can both miss the store
// and both fetch; the unique index on name rejects the second insert.
func (s *PokemonService) GetOrFetch(ctx context.Context, tx *gorm.DB, name string) (*models.Pokemon, error) {
	name = pokeapi.NormalizeName(name)

	var pokemon models.Pokemon
	err := tx.Where("name = ?", name).First(&pokemon).Error
	if err == nil {
		return &pokemon, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Database(err)
	}

	data, err := s.Client.GetPokemon(ctx, name)
	if err != nil {
		return nil, err
	}

	pokemon = models.Pokemon{
		ID:             uuid.NewString(),
		PokeAPIID:      data.PokeAPIID,
		Name:           pokeapi.NormalizeName(data.Name),
		HP:             data.HP,
		Attack:         data.Attack,
		Defense:        data.Defense,
		SpecialAttack:  data.SpecialAttack,
		SpecialDefense: data.SpecialDefense,
		Speed:          data.Speed,
		Types:          data.Types,
		SpriteURL:      data.SpriteURL,
	}
	if err := tx.Create(&pokemon).Error; err != nil {
		return nil, apperrors.Database(err)
	}
	return &pokemon, nil
}

// GetPokemonByName handles GET /pokemon/:name. Unknown names are fetched
// from PokeAPI and stored before responding.
func (s *PokemonService) GetPokemonByName(c *fiber.Ctx) error {
	pokemon, err := s.GetOrFetch(c.Context(), s.DB, c.Params("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pokemon)
}

// ListPokemon handles GET /pokemon with limit/offset paging, ordered by name.
func (s *PokemonService) ListPokemon(c *fiber.Ctx) error {
	limit, offset := utils.ParseLimitOffset(c, 100, 100)

	var pokemon []models.Pokemon
	if err := s.DB.Order("name").Limit(limit).Offset(offset).Find(&pokemon).Error; err != nil {
		return respondError(c, apperrors.Database(err))
	}
	return c.JSON(pokemon)
}
