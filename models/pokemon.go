package models

import (
	"strings"
	"time"
)

// Pokemon mirrors one PokeAPI entry. Names are stored lower-cased and
// trimmed; lookups must normalize the same way.
type Pokemon struct {
	ID        string `json:"id" gorm:"primaryKey"`
	PokeAPIID int    `json:"pokeapi_id" gorm:"uniqueIndex;not null"`
	Name      string `json:"name" gorm:"uniqueIndex;not null;type:varchar(100)"`

	// Base stats
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`

	// Comma-separated, e.g. "fire,flying"
	Types string `json:"types" gorm:"type:varchar(100)"`

	SpriteURL *string `json:"sprite_url" gorm:"type:varchar(500)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TypeList splits the stored type string into trimmed, non-empty labels.
func (p *Pokemon) TypeList() []string {
	parts := strings.Split(p.Types, ",")
	types := make([]string, 0, len(parts))
	for _, t := range parts {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}
