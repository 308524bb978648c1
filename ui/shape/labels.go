package shape

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/manager"
)

func ScoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// OverLabel is the banner shown once a round has ended.
func OverLabel(outcome game.Outcome) string {
	if outcome == game.OutcomeGridFull {
		return "Grid Full - R to restart"
	}
	return "Game Over - R to restart"
}

// StatsLabel summarises the finished rounds, empty when there are none.
func StatsLabel(sm *manager.StatsManager) string {
	if sm == nil || sm.GamesPlayed() == 0 {
		return ""
	}
	return fmt.Sprintf("Games: %d  Best: %d  Avg: %.1f",
		sm.GamesPlayed(), sm.BestScore(), sm.AverageScore())
}
