package dialog

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/numdial/terminal"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("simulation screen init failed: %v", err)
	}
	s.SetSize(80, 24)
	return s
}

// rowText reads a screen row back from the simulation buffer
func rowText(s tcell.SimulationScreen, row, width int) string {
	cells, w, _ := s.GetContents()
	runes := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		cell := cells[row*w+x]
		if len(cell.Runes) == 0 {
			runes = append(runes, ' ')
			continue
		}
		runes = append(runes, cell.Runes[0])
	}
	return string(runes)
}

func TestRunOnTcellHostConfirms(t *testing.T) {
	s := newSimScreen(t)
	defer s.Fini()

	s.InjectKey(tcell.KeyRune, '4', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, '2', tcell.ModNone)
	s.InjectKey(tcell.KeyEnter, '\r', tcell.ModNone)

	host := terminal.NewTcellHost(s)
	res, err := Run(host, 1, 1, "Enter your number: ", Opts{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !res.Confirmed || res.Value != 42 {
		t.Errorf("Expected Confirmed(42), got confirmed=%v value=%d", res.Confirmed, res.Value)
	}

	if got := rowText(s, 0, 19); got != "Enter your number: " {
		t.Errorf("Expected prompt on row 0, got %q", got)
	}
	if got := rowText(s, 1, 4); got != "? 42" {
		t.Errorf("Expected input line \"? 42\", got %q", got)
	}
}

func TestRunOnTcellHostCancels(t *testing.T) {
	s := newSimScreen(t)
	defer s.Fini()

	s.InjectKey(tcell.KeyRune, '7', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	host := terminal.NewTcellHost(s)
	res, err := Run(host, 1, 1, "Enter your number: ", Opts{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Confirmed {
		t.Error("Expected cancelled result")
	}

	if got := rowText(s, 1, 9); got != "Cancelled" {
		t.Errorf("Expected cancellation notice on row 1, got %q", got)
	}
}
