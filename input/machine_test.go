package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asteroids/parameter"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMachine_EdgesConsumedOnce(t *testing.T) {
	m := NewMachine()
	now := time.Unix(1000, 0)

	m.Process(runeKey(' '), now)
	m.Process(runeKey('k'), now)

	in := m.Intent(now)
	if !in.Shoot || !in.Dash {
		t.Fatalf("Expected shoot and dash edges, got %+v", in)
	}
	in = m.Intent(now)
	if in.Shoot || in.Dash {
		t.Errorf("Expected edges cleared after read, got %+v", in)
	}
}

func TestMachine_HoldWindow(t *testing.T) {
	m := NewMachine()
	now := time.Unix(1000, 0)

	m.Process(runeKey('w'), now)
	if !m.Intent(now.Add(parameter.InputInitialHoldWindow - time.Millisecond)).Thrust {
		t.Errorf("Expected first press held through the repeat delay")
	}
	if m.Intent(now.Add(parameter.InputInitialHoldWindow)).Thrust {
		t.Errorf("Expected thrust released after the window")
	}

	// Auto-repeat while held extends by the short window only
	fresh := now.Add(time.Second)
	m.Process(runeKey('w'), fresh)
	repeat := fresh.Add(100 * time.Millisecond)
	m.Process(runeKey('w'), repeat)
	if m.Intent(repeat.Add(parameter.InputHoldWindow)).Thrust {
		t.Errorf("Expected repeat to extend by the short window")
	}
}

func TestMachine_TurnAxis(t *testing.T) {
	m := NewMachine()
	now := time.Unix(1000, 0)

	m.Process(runeKey('a'), now)
	if in := m.Intent(now); in.Turn != -1 {
		t.Errorf("Expected turn -1, got %v", in.Turn)
	}

	// Opposite direction cancels the previous one
	m.Process(runeKey('d'), now)
	if in := m.Intent(now); in.Turn != 1 {
		t.Errorf("Expected turn 1, got %v", in.Turn)
	}

	m.Process(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), now)
	if in := m.Intent(now); in.Turn != -parameter.InputFastTurn {
		t.Errorf("Expected fast left turn, got %v", in.Turn)
	}
}

func TestMachine_Commands(t *testing.T) {
	m := NewMachine()
	now := time.Unix(1000, 0)

	tests := []struct {
		ev   tcell.Event
		want Command
	}{
		{runeKey('q'), Command{Type: CommandQuit}},
		{tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModCtrl), Command{Type: CommandQuit}},
		{runeKey('r'), Command{Type: CommandRestart}},
		{runeKey('u'), Command{Type: CommandShop}},
		{runeKey('3'), Command{Type: CommandBuy, Slot: 2}},
		{tcell.NewEventResize(80, 24), Command{Type: CommandResize}},
	}
	for _, tt := range tests {
		got, ok := m.Process(tt.ev, now)
		if !ok || got != tt.want {
			t.Errorf("Expected %+v, got %+v (ok=%v)", tt.want, got, ok)
		}
	}

	if _, ok := m.Process(runeKey('w'), now); ok {
		t.Errorf("Expected steering to produce no command")
	}
}
