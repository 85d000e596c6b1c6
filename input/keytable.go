// Package input decodes tcell key events into simulation intent and session commands
package input

import "github.com/gdamore/tcell/v2"

// Action is a bound key meaning
type Action uint8

const (
	ActionNone Action = iota

	// Steering, held
	ActionTurnLeft
	ActionTurnRight
	ActionTurnLeftFast
	ActionTurnRightFast
	ActionThrust
	ActionReverse

	// Edges consumed by the next tick
	ActionShoot
	ActionDash

	// Session commands
	ActionQuit
	ActionRestart
	ActionPause
	ActionMute
	ActionShop
	ActionBuy

	actionCount
)

// KeyEntry binds a key to an action; Slot selects the shop row for ActionBuy
type KeyEntry struct {
	Action Action
	Slot   int
}

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:   {Action: ActionTurnLeft},
			tcell.KeyRight:  {Action: ActionTurnRight},
			tcell.KeyUp:     {Action: ActionThrust},
			tcell.KeyDown:   {Action: ActionReverse},
			tcell.KeyCtrlC:  {Action: ActionQuit},
			tcell.KeyCtrlQ:  {Action: ActionQuit},
			tcell.KeyEscape: {Action: ActionPause},
			tcell.KeyCtrlS:  {Action: ActionMute},
			tcell.KeyTab:    {Action: ActionShop},
		},
		Runes: map[rune]KeyEntry{
			'a': {Action: ActionTurnLeft},
			'd': {Action: ActionTurnRight},
			'A': {Action: ActionTurnLeftFast},
			'D': {Action: ActionTurnRightFast},
			'w': {Action: ActionThrust},
			's': {Action: ActionReverse},
			' ': {Action: ActionShoot},
			'j': {Action: ActionShoot},
			'k': {Action: ActionDash},
			'x': {Action: ActionDash},
			'q': {Action: ActionQuit},
			'r': {Action: ActionRestart},
			'p': {Action: ActionPause},
			'm': {Action: ActionMute},
			'u': {Action: ActionShop},
			'1': {Action: ActionBuy, Slot: 0},
			'2': {Action: ActionBuy, Slot: 1},
			'3': {Action: ActionBuy, Slot: 2},
			'4': {Action: ActionBuy, Slot: 3},
		},
	}
}

// Lookup resolves a key event, shifted arrows steer fast
func (t *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if r := ev.Rune(); r == 'c' || r == 'q' {
				return KeyEntry{Action: ActionQuit}
			}
			return KeyEntry{}
		}
		return t.Runes[ev.Rune()]
	}
	entry := t.SpecialKeys[ev.Key()]
	if ev.Modifiers()&tcell.ModShift != 0 {
		switch entry.Action {
		case ActionTurnLeft:
			entry.Action = ActionTurnLeftFast
		case ActionTurnRight:
			entry.Action = ActionTurnRightFast
		}
	}
	return entry
}
