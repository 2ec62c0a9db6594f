package models

import "time"

// Battle records the persisted outcome of one resolution. WinnerID is nil
// exactly when the battle was a draw.
type Battle struct {
	ID         string  `json:"id" gorm:"primaryKey"`
	Pokemon1ID string  `json:"pokemon1_id" gorm:"index;not null"`
	Pokemon2ID string  `json:"pokemon2_id" gorm:"index;not null"`
	WinnerID   *string `json:"winner_id"`

	Pokemon1Score float64 `json:"pokemon1_score"`
	Pokemon2Score float64 `json:"pokemon2_score"`
	BattleLog     string  `json:"battle_log" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`

	Pokemon1 *Pokemon `json:"pokemon1,omitempty" gorm:"foreignKey:Pokemon1ID"`
	Pokemon2 *Pokemon `json:"pokemon2,omitempty" gorm:"foreignKey:Pokemon2ID"`
	Winner   *Pokemon `json:"winner,omitempty" gorm:"foreignKey:WinnerID"`
}
