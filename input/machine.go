package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/parameter"
)

// CommandType identifies a session-level request
type CommandType uint8

const (
	CommandNone CommandType = iota
	CommandQuit
	CommandRestart
	CommandPause
	CommandMute
	CommandShop
	CommandBuy
	CommandResize
)

// Command is a non-simulation request produced from input
type Command struct {
	Type CommandType
	Slot int
}

// Machine turns press-only terminal events into held steering plus edges
// Keys count as held for a window after each press since terminals never report releases
type Machine struct {
	keyTable *KeyTable
	heldTill [actionCount]time.Time
	shoot    bool
	dash     bool
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Reset clears held keys and pending edges
func (m *Machine) Reset() {
	m.heldTill = [actionCount]time.Time{}
	m.shoot = false
	m.dash = false
}

// Process parses a tcell event at now
// Steering and edges are accumulated for Intent; session commands are returned
func (m *Machine) Process(ev tcell.Event, now time.Time) (Command, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Command{Type: CommandResize}, true
	case *tcell.EventKey:
		return m.processKey(ev, now)
	}
	return Command{}, false
}

func (m *Machine) processKey(ev *tcell.EventKey, now time.Time) (Command, bool) {
	entry := m.keyTable.Lookup(ev)
	switch entry.Action {
	case ActionTurnLeft, ActionTurnRight, ActionTurnLeftFast, ActionTurnRightFast, ActionThrust, ActionReverse:
		m.press(entry.Action, now)
		return Command{}, false
	case ActionShoot:
		m.shoot = true
		return Command{}, false
	case ActionDash:
		m.dash = true
		return Command{}, false
	case ActionQuit:
		return Command{Type: CommandQuit}, true
	case ActionRestart:
		return Command{Type: CommandRestart}, true
	case ActionPause:
		return Command{Type: CommandPause}, true
	case ActionMute:
		return Command{Type: CommandMute}, true
	case ActionShop:
		return Command{Type: CommandShop}, true
	case ActionBuy:
		return Command{Type: CommandBuy, Slot: entry.Slot}, true
	}
	return Command{}, false
}

// press extends the hold window; a fresh press covers the terminal auto-repeat delay
func (m *Machine) press(a Action, now time.Time) {
	window := parameter.InputHoldWindow
	if !now.Before(m.heldTill[a]) {
		window = parameter.InputInitialHoldWindow
	}
	m.heldTill[a] = now.Add(window)

	// Opposite steering cancels immediately
	switch a {
	case ActionTurnLeft, ActionTurnLeftFast:
		m.heldTill[ActionTurnRight] = time.Time{}
		m.heldTill[ActionTurnRightFast] = time.Time{}
	case ActionTurnRight, ActionTurnRightFast:
		m.heldTill[ActionTurnLeft] = time.Time{}
		m.heldTill[ActionTurnLeftFast] = time.Time{}
	case ActionThrust:
		m.heldTill[ActionReverse] = time.Time{}
	case ActionReverse:
		m.heldTill[ActionThrust] = time.Time{}
	}
}

func (m *Machine) held(a Action, now time.Time) bool {
	return now.Before(m.heldTill[a])
}

// Intent returns the frame intent at now and clears the edges it reports
func (m *Machine) Intent(now time.Time) engine.Intent {
	var in engine.Intent
	switch {
	case m.held(ActionTurnLeftFast, now):
		in.Turn = -parameter.InputFastTurn
	case m.held(ActionTurnRightFast, now):
		in.Turn = parameter.InputFastTurn
	case m.held(ActionTurnLeft, now):
		in.Turn = -1
	case m.held(ActionTurnRight, now):
		in.Turn = 1
	}
	in.Thrust = m.held(ActionThrust, now)
	in.Reverse = m.held(ActionReverse, now)
	in.Shoot = m.shoot
	in.Dash = m.dash
	m.shoot, m.dash = false, false
	return in
}
