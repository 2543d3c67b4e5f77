package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct {
	id, title string
	state     core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a", title: "Stub A"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist after Register")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Stub A" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Stub A")
	}

	// Every Create returns an independent instance
	other, _ := Create("stub_a")
	g.Step(core.NewInputFrame())
	if other.State().Score != 0 {
		t.Error("instances should not share state")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does_not_exist")
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
	if !strings.Contains(err.Error(), "does_not_exist") {
		t.Errorf("error should name the id, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z", title: "Z"} })
	Register("stub_m", func() Game { return &stubGame{id: "stub_m", title: "M"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
