package team

// RequiredSquadSlots is the fixed roster size: one goalkeeper slot plus four
// outfield slots. Teams with any other slot count are skipped by scoring.
const RequiredSquadSlots = 5

// Team is a fantasy manager's team.
type Team struct {
	ID   string
	Name string
}

// SquadSlot assigns one labeled roster position to a player. PlayerID is nil
// for an empty slot. At most one slot per team carries the captain flag.
type SquadSlot struct {
	ID        string
	TeamID    string
	Label     string
	PlayerID  *string
	IsCaptain bool
}
