package scoring

import "github.com/Jakealex/fantasy-league/internal/domain/player"

// Point values are fixed constants, not a configurable rules engine.
const (
	PointsPerGoal       = 5
	PointsPerAssist     = 3
	PointsPerOwnGoal    = -2
	PointsPerYellowCard = -1
	RedCardPenalty      = -3

	// Goalkeepers score GoalkeeperBase minus goals conceded, with no floor.
	GoalkeeperBase = 7

	// Outfield players get a flat bonus when their side concedes at most
	// OutfieldMaxConcededForBonus goals across the gameweek.
	OutfieldCleanSheetBonus     = 1
	OutfieldMaxConcededForBonus = 3
)

// PointsFor applies the scoring formula to a player's summed gameweek stats.
// A red card replaces all yellow-card penalties for the gameweek. The
// goalkeeper base and the outfield bonus are mutually exclusive by position.
func PointsFor(position player.Position, line StatLine) int {
	points := line.Goals*PointsPerGoal +
		line.Assists*PointsPerAssist +
		line.OwnGoals*PointsPerOwnGoal

	if line.RedCards > 0 {
		points += RedCardPenalty
	} else {
		points += line.YellowCards * PointsPerYellowCard
	}

	if position == player.PositionGoalkeeper {
		points += GoalkeeperBase - line.GoalsConceded
	} else if line.GoalsConceded <= OutfieldMaxConcededForBonus {
		points += OutfieldCleanSheetBonus
	}

	return points
}
