package game

// Listener receives a synchronous callback after every state-mutating
// command, once the mutation is fully applied and before control returns to
// the caller.
type Listener interface {
	GameChanged(g *Game)
}

// AddListener registers a listener. Registering the same listener twice is a
// no-op.
func (g *Game) AddListener(listener Listener) {
	for _, registered := range g.listeners {
		if registered == listener {
			return
		}
	}
	g.listeners = append(g.listeners, listener)
}

// RemoveListener unregisters a previously added listener.
func (g *Game) RemoveListener(listener Listener) {
	for index, registered := range g.listeners {
		if registered == listener {
			g.listeners = append(g.listeners[:index], g.listeners[index+1:]...)
			return
		}
	}
}

func (g *Game) notify() {
	for _, listener := range g.listeners {
		listener.GameChanged(g)
	}
}
