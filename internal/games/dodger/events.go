package dodger

// Event is something that happened during a Step. Drivers turn events into
// sounds and bookkeeping; the simulation itself performs no I/O.
type Event interface {
	isEvent()
}

// Fired is emitted when a bullet leaves the muzzle.
type Fired struct {
	X, Y     float64
	AmmoLeft int
}

// CircleDamaged is emitted when a bullet hits a circle that survives.
type CircleDamaged struct {
	Type   CircleType
	Health int
}

// CircleDestroyed is emitted when a bullet takes a circle's last health point.
type CircleDestroyed struct {
	Type   CircleType
	X, Y   float64
	Points int
}

// PlayerHit is emitted for every circle that reaches the player.
type PlayerHit struct {
	LivesLeft int
}

// GameOver is emitted once, on the frame the last life is lost.
type GameOver struct {
	Score int
	Kills int
}

// Restarted is emitted when a new round begins after a game over.
type Restarted struct{}

func (Fired) isEvent()           {}
func (CircleDamaged) isEvent()   {}
func (CircleDestroyed) isEvent() {}
func (PlayerHit) isEvent()       {}
func (GameOver) isEvent()        {}
func (Restarted) isEvent()       {}
