package workers

import (
	"context"
	"log"
	"time"

	"pokemon-battle-system/pokeapi"
)

// RunCacheJanitor sweeps expired PokeAPI cache entries on a fixed interval
// until ctx is cancelled. Lookups already evict expired entries on read;
// the janitor only reclaims memory for keys that are never asked for again.
func RunCacheJanitor(ctx context.Context, cache *pokeapi.Cache, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := cache.Sweep(); removed > 0 {
				log.Printf("cache janitor: evicted %d expired entries", removed)
			}
		case <-ctx.Done():
			log.Println("cache janitor stopped")
			return
		}
	}
}
