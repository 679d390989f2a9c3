package scoring

// StatLine holds the raw per-gameweek aggregates a player's points are
// computed from. Counters are summed across all of the player's settled
// fixtures in the gameweek.
type StatLine struct {
	Goals         int
	Assists       int
	OwnGoals      int
	YellowCards   int
	RedCards      int
	GoalsConceded int
}

// PlayerPoints is the calculator's output, unique per (player, gameweek).
// Deterministically recomputable from fixtures and events.
type PlayerPoints struct {
	PlayerID   string
	GameweekID string
	Points     int
	StatLine
}

// GameweekScore is the aggregator's output, unique per (team, gameweek).
type GameweekScore struct {
	TeamID     string
	GameweekID string
	Total      int
}
