package registry

import (
	"testing"

	"github.com/vovakirdan/roadhunter/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return &stubGame{id: "aa_stub"} })

	if !Exists("zz_stub") || Exists("missing") {
		t.Error("Exists reports wrong membership")
	}

	a, err := Create("zz_stub")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Create("zz_stub")
	if a == b {
		t.Error("Create should return independent instances")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create of an unknown id should fail")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List not sorted: %v", list)
		}
	}
	if list[0].ID != "aa_stub" || list[0].Title != "Stub aa_stub" {
		t.Errorf("first entry = %+v", list[0])
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
}
