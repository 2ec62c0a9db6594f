package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokemon-battle-system/models"
)

func pikachu() *models.Pokemon {
	return &models.Pokemon{
		ID: "p-pikachu", PokeAPIID: 25, Name: "pikachu",
		HP: 35, Attack: 55, Defense: 40,
		SpecialAttack: 50, SpecialDefense: 50, Speed: 90,
		Types: "electric",
	}
}

func charizard() *models.Pokemon {
	return &models.Pokemon{
		ID: "p-charizard", PokeAPIID: 6, Name: "charizard",
		HP: 78, Attack: 84, Defense: 78,
		SpecialAttack: 109, SpecialDefense: 85, Speed: 100,
		Types: "fire,flying",
	}
}

func TestBasePower(t *testing.T) {
	// offensive = (55+50)/2 = 52.5, defensive = (40+50)/2 = 45.0
	// power = (35*0.5 + 52.5 + 45.0 + 90) / 4 = 51.25
	assert.InDelta(t, 51.25, BasePower(pikachu()), 1e-9)
	assert.InDelta(t, 79.25, BasePower(charizard()), 1e-9)
}

func TestBasePowerDeterministic(t *testing.T) {
	p := pikachu()
	first := BasePower(p)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BasePower(p))
	}
}

func TestExecuteStrongBeatsWeak(t *testing.T) {
	result := Execute(charizard(), pikachu())

	require.False(t, result.IsDraw)
	require.NotNil(t, result.Winner)
	assert.Equal(t, "charizard", result.Winner.Name)
	assert.Greater(t, result.Pokemon1Score, result.Pokemon2Score)

	// charizard: 79.25*0.5 + 0.5*79.25*0.3 + (100/90)*79.25*0.2 = 69.12
	// pikachu:   51.25*0.5 + 2.0*51.25*0.3 + (90/100)*51.25*0.2 = 65.60
	assert.InDelta(t, 69.12, result.Pokemon1Score, 0.005)
	assert.InDelta(t, 65.60, result.Pokemon2Score, 0.005)

	assert.Contains(t, result.BattleLog, "BATTLE: CHARIZARD vs PIKACHU")
	assert.Contains(t, result.BattleLog, "WINNER: CHARIZARD!")
	assert.Contains(t, result.BattleLog, "Type Advantage: 2.00x (Super Effective!)")
	assert.Contains(t, result.BattleLog, "Type Disadvantage: 0.50x (Not Very Effective)")
	assert.Contains(t, result.BattleLog, "Speed Advantage: 100 vs 90")
}

func TestExecuteMirroredArguments(t *testing.T) {
	forward := Execute(charizard(), pikachu())
	backward := Execute(pikachu(), charizard())

	// Relabeling the sides swaps the scores but not the winner's identity.
	assert.Equal(t, forward.Pokemon1Score, backward.Pokemon2Score)
	assert.Equal(t, forward.Pokemon2Score, backward.Pokemon1Score)
	assert.Equal(t, forward.IsDraw, backward.IsDraw)
	require.NotNil(t, backward.Winner)
	assert.Equal(t, forward.Winner.Name, backward.Winner.Name)
}

func TestExecuteIdenticalStatsDraw(t *testing.T) {
	p1 := pikachu()
	p2 := pikachu()
	p2.ID = "p-clone"
	p2.Name = "clone"

	result := Execute(p1, p2)

	assert.True(t, result.IsDraw)
	assert.Nil(t, result.Winner)
	assert.Equal(t, result.Pokemon1Score, result.Pokemon2Score)
	assert.Contains(t, result.BattleLog, "RESULT: DRAW!")
}

func TestExecuteZeroStatsDraw(t *testing.T) {
	p1 := &models.Pokemon{ID: "a", Name: "husk", Types: "normal"}
	p2 := &models.Pokemon{ID: "b", Name: "shell", Types: "normal"}

	result := Execute(p1, p2)

	assert.True(t, result.IsDraw)
	assert.Nil(t, result.Winner)
	assert.Zero(t, result.Pokemon1Score)
	assert.Zero(t, result.Pokemon2Score)
}

func TestExecuteZeroSpeedDefender(t *testing.T) {
	slow := pikachu()
	slow.Speed = 0
	// Denominator floors at 1, so the attacker's ratio hits the 2.0 cap
	// instead of dividing by zero.
	result := Execute(charizard(), slow)
	require.False(t, result.IsDraw)
	assert.Equal(t, "charizard", result.Winner.Name)
}

func TestExecuteScoresRounded(t *testing.T) {
	result := Execute(charizard(), pikachu())
	assert.Equal(t, round2(result.Pokemon1Score), result.Pokemon1Score)
	assert.Equal(t, round2(result.Pokemon2Score), result.Pokemon2Score)
}
