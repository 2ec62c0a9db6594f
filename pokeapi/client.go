// Package pokeapi fetches Pokemon data from the PokeAPI REST service,
// fronted by a process-local TTL cache of raw responses.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"pokemon-battle-system/apperrors"
)

// NormalizeName lower-cases and trims a Pokemon name. Every store, cache,
// and API lookup goes through this.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// PokemonData is the parsed creation payload for a Pokemon record.
type PokemonData struct {
	PokeAPIID      int
	Name           string
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
	Types          string // comma-separated
	SpriteURL      *string
}

// pokemonResponse matches the subset of the PokeAPI JSON shape we consume.
type pokemonResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
}

type Client struct {
	http  *resty.Client
	cache *Cache
}

// NewClient builds a client against baseURL. The cache is injected so the
// owner controls its lifetime (and tests can reach in).
func NewClient(baseURL string, timeout time.Duration, cache *Cache) *Client {
	return &Client{
		http:  resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		cache: cache,
	}
}

// GetPokemon returns parsed Pokemon data for name, serving from the cache
// when a live entry exists. A fresh response is cached raw before parsing.
// No retries: a failed fetch surfaces immediately.
func (c *Client) GetPokemon(ctx context.Context, name string) (*PokemonData, error) {
	name = NormalizeName(name)

	if body, ok := c.cache.Get(name); ok {
		return parsePokemon(body)
	}

	res, err := c.http.R().
		SetContext(ctx).
		Get("/pokemon/" + name)
	if err != nil {
		return nil, apperrors.PokeAPI(err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, apperrors.PokemonNotFound(name)
	}
	if !res.IsSuccess() {
		return nil, apperrors.PokeAPIStatus(res.StatusCode())
	}

	body := res.Body()
	c.cache.Set(name, body)

	return parsePokemon(body)
}

// parsePokemon maps the raw PokeAPI payload onto PokemonData. Stats the
// source omits default to 0; the sprite is optional.
func parsePokemon(body []byte) (*PokemonData, error) {
	var raw pokemonResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperrors.PokeAPI(fmt.Errorf("unexpected response body: %w", err))
	}

	stats := make(map[string]int, len(raw.Stats))
	for _, s := range raw.Stats {
		stats[s.Stat.Name] = s.BaseStat
	}

	types := make([]string, 0, len(raw.Types))
	for _, t := range raw.Types {
		types = append(types, t.Type.Name)
	}

	return &PokemonData{
		PokeAPIID:      raw.ID,
		Name:           raw.Name,
		HP:             stats["hp"],
		Attack:         stats["attack"],
		Defense:        stats["defense"],
		SpecialAttack:  stats["special-attack"],
		SpecialDefense: stats["special-defense"],
		Speed:          stats["speed"],
		Types:          strings.Join(types, ","),
		SpriteURL:      raw.Sprites.FrontDefault,
	}, nil
}
