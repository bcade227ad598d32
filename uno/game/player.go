package game

// Player is a seat at the table: a display name, a control-type flag and the
// owned hand. Players are created by NewGame/AddPlayer and live for one game.
type Player struct {
	name string
	ai   bool
	hand *Hand
}

func NewPlayer(name string, ai bool) *Player {
	return &Player{
		name: name,
		ai:   ai,
		hand: NewHand(),
	}
}

func (p *Player) Name() string {
	return p.name
}

// AI reports whether this seat is computer controlled.
func (p *Player) AI() bool {
	return p.ai
}

func (p *Player) Hand() *Hand {
	return p.hand
}
