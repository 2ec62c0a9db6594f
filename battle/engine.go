// Package battle resolves a single-shot contest between two Pokemon.
//
// Each side gets a score from three weighted components:
//
//	base power    (50%): (HP*0.5 + (ATK+SP.ATK)/2 + (DEF+SP.DEF)/2 + SPD) / 4
//	type matchup  (30%): effectiveness * base power * 0.3
//	speed         (20%): min(attacker SPD / defender SPD, 2.0) * base power * 0.2
//
// The two scores are computed independently (no turn order, no HP depletion)
// and the higher one wins. Scores within 1% of their average are a draw.
package battle

import (
	"fmt"
	"math"
	"strings"

	"pokemon-battle-system/models"
)

// Tuning constants preserved from the reference balance; do not re-derive.
const (
	speedRatioCap = 2.0
	drawBand      = 0.01
)

// Result holds the outcome of one battle. Winner is nil iff IsDraw.
type Result struct {
	Winner        *models.Pokemon
	Pokemon1Score float64
	Pokemon2Score float64
	BattleLog     string
	IsDraw        bool
}

// BasePower computes the weighted stat total for a Pokemon.
func BasePower(p *models.Pokemon) float64 {
	offensive := float64(p.Attack+p.SpecialAttack) / 2
	defensive := float64(p.Defense+p.SpecialDefense) / 2
	return (float64(p.HP)*0.5 + offensive + defensive + float64(p.Speed)) / 4
}

// sideScore scores one attacking side and returns the log lines for it.
func sideScore(attacker, defender *models.Pokemon, attackerTypes, defenderTypes []string) (float64, []string) {
	var lines []string

	basePower := BasePower(attacker)
	lines = append(lines, fmt.Sprintf("  Base Power: %.2f", basePower))

	effectiveness := TypeEffectiveness(attackerTypes, defenderTypes)
	typeBonus := effectiveness * basePower * 0.3

	switch {
	case effectiveness > 1:
		lines = append(lines, fmt.Sprintf("  Type Advantage: %.2fx (Super Effective!)", effectiveness))
	case effectiveness < 1:
		lines = append(lines, fmt.Sprintf("  Type Disadvantage: %.2fx (Not Very Effective)", effectiveness))
	default:
		lines = append(lines, "  Type: Neutral")
	}

	// Floor of 1 keeps a zero-speed defender from dividing by zero.
	speedRatio := float64(attacker.Speed) / math.Max(float64(defender.Speed), 1)
	speedBonus := math.Min(speedRatio, speedRatioCap) * basePower * 0.2

	if attacker.Speed > defender.Speed {
		lines = append(lines, fmt.Sprintf("  Speed Advantage: %d vs %d", attacker.Speed, defender.Speed))
	} else {
		lines = append(lines, fmt.Sprintf("  Speed: %d vs %d", attacker.Speed, defender.Speed))
	}

	score := basePower*0.5 + typeBonus + speedBonus
	lines = append(lines, fmt.Sprintf("  Final Score: %.2f", score))

	return score, lines
}

func statLines(p *models.Pokemon, types []string) []string {
	return []string{
		fmt.Sprintf("%s (%s)", strings.ToUpper(p.Name), strings.Join(types, ", ")),
		fmt.Sprintf("  HP: %d | ATK: %d | DEF: %d", p.HP, p.Attack, p.Defense),
		fmt.Sprintf("  SP.ATK: %d | SP.DEF: %d | SPD: %d", p.SpecialAttack, p.SpecialDefense, p.Speed),
		"",
	}
}

// Execute resolves a battle between two Pokemon. Pure computation; callers
// validate participants before invoking it.
func Execute(pokemon1, pokemon2 *models.Pokemon) Result {
	banner := strings.Repeat("=", 50)
	logLines := []string{
		banner,
		fmt.Sprintf("BATTLE: %s vs %s", strings.ToUpper(pokemon1.Name), strings.ToUpper(pokemon2.Name)),
		banner,
		"",
	}

	types1 := pokemon1.TypeList()
	types2 := pokemon2.TypeList()

	logLines = append(logLines, statLines(pokemon1, types1)...)
	logLines = append(logLines, statLines(pokemon2, types2)...)

	logLines = append(logLines, fmt.Sprintf("--- %s's Attack ---", strings.ToUpper(pokemon1.Name)))
	score1, lines1 := sideScore(pokemon1, pokemon2, types1, types2)
	logLines = append(logLines, lines1...)
	logLines = append(logLines, "")

	logLines = append(logLines, fmt.Sprintf("--- %s's Attack ---", strings.ToUpper(pokemon2.Name)))
	score2, lines2 := sideScore(pokemon2, pokemon1, types2, types1)
	logLines = append(logLines, lines2...)
	logLines = append(logLines, "")

	logLines = append(logLines, banner)

	// Draw when the scores sit within 1% of their average. Degenerate
	// all-zero matchups fall back to exact equality.
	scoreDiff := math.Abs(score1 - score2)
	avgScore := (score1 + score2) / 2
	isDraw := score1 == score2
	if avgScore > 0 {
		isDraw = scoreDiff < avgScore*drawBand
	}

	var winner *models.Pokemon
	switch {
	case isDraw:
		logLines = append(logLines, "RESULT: DRAW!")
		logLines = append(logLines, fmt.Sprintf("Scores were too close: %.2f vs %.2f", score1, score2))
	case score1 > score2:
		winner = pokemon1
		logLines = append(logLines, fmt.Sprintf("WINNER: %s!", strings.ToUpper(pokemon1.Name)))
		logLines = append(logLines, fmt.Sprintf("Final Scores: %.2f vs %.2f", score1, score2))
	default:
		winner = pokemon2
		logLines = append(logLines, fmt.Sprintf("WINNER: %s!", strings.ToUpper(pokemon2.Name)))
		logLines = append(logLines, fmt.Sprintf("Final Scores: %.2f vs %.2f", score1, score2))
	}

	logLines = append(logLines, banner)

	return Result{
		Winner:        winner,
		Pokemon1Score: round2(score1),
		Pokemon2Score: round2(score2),
		BattleLog:     strings.Join(logLines, "\n"),
		IsDraw:        isDraw,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
