package game

// Stage represents the main stages in the game
type Stage int

const (
	NotStarted Stage = iota
	Discarding
	Playing
	Finished
)

var stageNames = map[Stage]string{
	NotStarted: "notStarted",
	Discarding: "discarding",
	Playing:    "playing",
	Finished:   "finished",
}

func (s Stage) String() string {
	return stageNames[s]
}
