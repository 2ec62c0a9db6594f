package services_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pokemon-battle-system/handlers"
	"pokemon-battle-system/models"
	"pokemon-battle-system/pokeapi"
	"pokemon-battle-system/services"
)

type fakeStats struct {
	id                                int
	hp, atk, def, spAtk, spDef, speed int
	types                             []string
}

// fakeDex is the fake PokeAPI's knowledge of the world. plusle and minun
// share identical stats and types so battles between them always draw.
var fakeDex = map[string]fakeStats{
	"pikachu":   {25, 35, 55, 40, 50, 50, 90, []string{"electric"}},
	"charizard": {6, 78, 84, 78, 109, 85, 100, []string{"fire", "flying"}},
	"plusle":    {311, 60, 50, 40, 85, 75, 95, []string{"electric"}},
	"minun":     {312, 60, 50, 40, 85, 75, 95, []string{"electric"}},
}

func fakePokemonJSON(name string, s fakeStats) []byte {
	statEntry := func(statName string, base int) map[string]any {
		return map[string]any{
			"base_stat": base,
			"stat":      map[string]any{"name": statName},
		}
	}
	typeEntries := make([]map[string]any, 0, len(s.types))
	for _, typ := range s.types {
		typeEntries = append(typeEntries, map[string]any{
			"type": map[string]any{"name": typ},
		})
	}
	payload := map[string]any{
		"id":   s.id,
		"name": name,
		"stats": []map[string]any{
			statEntry("hp", s.hp),
			statEntry("attack", s.atk),
			statEntry("defense", s.def),
			statEntry("special-attack", s.spAtk),
			statEntry("special-defense", s.spDef),
			statEntry("speed", s.speed),
		},
		"types":   typeEntries,
		"sprites": map[string]any{"front_default": fmt.Sprintf("https://sprites.example/%d.png", s.id)},
	}
	body, _ := json.Marshal(payload)
	return body
}

// newFakePokeAPI serves fakeDex entries and counts upstream requests.
func newFakePokeAPI(t *testing.T, requests *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(requests, 1)
		name := strings.TrimPrefix(r.URL.Path, "/pokemon/")
		if name == "broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		stats, ok := fakeDex[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(fakePokemonJSON(name, stats))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Pokemon{}, &models.Battle{}))
	return db
}

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	pokemon  *services.PokemonService
	battles  *services.BattleService
	requests *int32
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	var requests int32
	srv := newFakePokeAPI(t, &requests)
	db := newTestDB(t)

	cache := pokeapi.NewCache(time.Minute)
	client := pokeapi.NewClient(srv.URL, 5*time.Second, cache)

	pokemonService := services.NewPokemonService(db, client)
	battleService := services.NewBattleService(db, pokemonService)

	app := fiber.New()
	handlers.SetupPokemonRoutes(app, pokemonService)
	handlers.SetupBattleRoutes(app, battleService)

	return &testEnv{
		app:      app,
		db:       db,
		pokemon:  pokemonService,
		battles:  battleService,
		requests: &requests,
	}
}

func (e *testEnv) upstreamRequests() int32 {
	return atomic.LoadInt32(e.requests)
}
