package scoring

import (
	"testing"

	"github.com/Jakealex/fantasy-league/internal/domain/player"
)

func TestPointsFor(t *testing.T) {
	tests := []struct {
		name     string
		position player.Position
		line     StatLine
		want     int
	}{
		{
			name:     "outfield goal with bonus",
			position: player.PositionOutfield,
			line:     StatLine{Goals: 1, GoalsConceded: 1},
			want:     6,
		},
		{
			name:     "outfield assist with bonus",
			position: player.PositionOutfield,
			line:     StatLine{Assists: 1, GoalsConceded: 1},
			want:     4,
		},
		{
			name:     "outfield bonus boundary at three conceded",
			position: player.PositionOutfield,
			line:     StatLine{GoalsConceded: 3},
			want:     1,
		},
		{
			name:     "outfield no bonus at four conceded",
			position: player.PositionOutfield,
			line:     StatLine{GoalsConceded: 4},
			want:     0,
		},
		{
			name:     "goalkeeper clean sheet",
			position: player.PositionGoalkeeper,
			line:     StatLine{GoalsConceded: 0},
			want:     7,
		},
		{
			name:     "goalkeeper base goes negative",
			position: player.PositionGoalkeeper,
			line:     StatLine{GoalsConceded: 9},
			want:     -2,
		},
		{
			name:     "red card overrides yellows",
			position: player.PositionOutfield,
			line:     StatLine{YellowCards: 2, RedCards: 1, GoalsConceded: 4},
			want:     -3,
		},
		{
			name:     "yellow cards without red",
			position: player.PositionOutfield,
			line:     StatLine{YellowCards: 2, GoalsConceded: 4},
			want:     -2,
		},
		{
			name:     "own goal penalty",
			position: player.PositionOutfield,
			line:     StatLine{OwnGoals: 1, GoalsConceded: 5},
			want:     -2,
		},
		{
			name:     "brace with everything",
			position: player.PositionOutfield,
			line:     StatLine{Goals: 2, Assists: 1, YellowCards: 1, GoalsConceded: 2},
			want:     13,
		},
		{
			name:     "goalkeeper with goal and concessions",
			position: player.PositionGoalkeeper,
			line:     StatLine{Goals: 1, GoalsConceded: 2},
			want:     10,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PointsFor(tc.position, tc.line)
			if got != tc.want {
				t.Fatalf("PointsFor(%s, %+v): got=%d want=%d", tc.position, tc.line, got, tc.want)
			}
		})
	}
}
