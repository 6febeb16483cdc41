package core

// Game defines the host-facing contract of a playable session.
type Game interface {
	Name() string
	Reset(seed int64)
	// Step advances the game by dt seconds. edges holds one debounced
	// activation edge per agent for this frame; missing entries read false.
	Step(dt float64, edges []bool)
	IsFinished() bool
	FinalScores() []int
}

// Factory constructs a Game using an optional configuration map.
type Factory func(cfg map[string]string) Game

var modes = map[string]Factory{}

// Register adds a game mode factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	modes[name] = f
}

// Modes exposes the registry of available game mode factories.
func Modes() map[string]Factory {
	return modes
}
