package economy

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/napolitain/solver-bar/internal/models"
)

func newTestState() *State {
	return NewDefaultState(models.DefaultCatalog())
}

func TestDefaultScenario(t *testing.T) {
	s := newTestState()

	if s.Time != 3 {
		t.Errorf("Expected time 3, got %v", s.Time)
	}
	if s.Metal != 1000 || s.Energy != 1000 {
		t.Errorf("Expected 1000/1000 stock, got %v/%v", s.Metal, s.Energy)
	}
	if s.MetalPerSecond != 2 || s.EnergyPerSecond != 25 {
		t.Errorf("Expected 2/25 income, got %v/%v", s.MetalPerSecond, s.EnergyPerSecond)
	}
	if len(s.Builders) != 1 || s.Builders[0] != models.Commander {
		t.Errorf("Expected [Commander], got %v", s.Builders)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Default state should validate: %v", err)
	}
}

func TestNewStateCopiesScenarioSlices(t *testing.T) {
	sc := DefaultScenario()
	s := NewState(models.DefaultCatalog(), sc)

	sc.Builders[0] = "Mutated"
	if s.Builders[0] != models.Commander {
		t.Errorf("State shares builder slice with scenario: %v", s.Builders)
	}
}

func TestNewStateTakesScenarioAsGiven(t *testing.T) {
	s := NewState(models.DefaultCatalog(), Scenario{MaxMetal: 1, MaxEnergy: 1})

	if s.Time != 0 || s.Metal != 0 || s.Energy != 0 || s.MetalPerSecond != 0 || s.EnergyPerSecond != 0 {
		t.Errorf("Expected zero values kept, got %+v", s.Snapshot())
	}
	if len(s.Builders) != 0 || len(s.Buildings) != 0 {
		t.Errorf("Expected empty inventory, got %v / %v", s.Builders, s.Buildings)
	}
}

func TestTotalBuildpower(t *testing.T) {
	s := newTestState()
	if bp := s.TotalBuildpower(); bp != 300 {
		t.Errorf("Expected 300 buildpower, got %v", bp)
	}

	s.Builders = append(s.Builders, models.BotFactory, models.BotWorker, "Ghost")
	if bp := s.TotalBuildpower(); bp != 480 {
		t.Errorf("Expected 480 buildpower, got %v", bp)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := newTestState()
	s.Commit(mustProfile(t, s, models.Wind))
	before := s.Clone()

	clone := s.Clone()
	clone.Builders[0] = "Other"
	clone.Buildings[0] = "Other"
	clone.History[0].Name = "Other"
	clone.Commit(mustProfile(t, s, models.BotWorker))
	clone.AdvanceTime(10)

	if !reflect.DeepEqual(s, before) {
		t.Errorf("Mutating clone changed original:\n got %+v\nwant %+v", s, before)
	}
}

func TestCommitKeepsHistoryInvariant(t *testing.T) {
	s := newTestState()
	s.Builders = nil

	for _, name := range []string{models.Wind, models.BotWorker, models.Mex, models.BotFactory, "Pawn"} {
		s.Commit(mustProfile(t, s, name))
		if len(s.History) != len(s.Builders)+len(s.Buildings) {
			t.Fatalf("History %d != builders %d + buildings %d",
				len(s.History), len(s.Builders), len(s.Buildings))
		}
	}

	if len(s.Builders) != 2 {
		t.Errorf("Expected 2 builders, got %v", s.Builders)
	}
	if math.Abs(s.MetalPerSecond-3.8) > 1e-9 {
		t.Errorf("Expected metal income 3.8, got %v", s.MetalPerSecond)
	}
	if s.EnergyPerSecond != 32 {
		t.Errorf("Expected energy income 32, got %v", s.EnergyPerSecond)
	}
}

func TestValidateRejectsUnknownNames(t *testing.T) {
	s := newTestState()
	s.Buildings = append(s.Buildings, "Nope")

	if err := s.Validate(); !errors.Is(err, ErrUnknownObject) {
		t.Errorf("Expected ErrUnknownObject, got %v", err)
	}

	s = newTestState()
	s.Metal = 2000
	if err := s.Validate(); err == nil {
		t.Error("Expected error for metal above cap")
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestState()
	snap := s.Snapshot()

	if snap.Buildpower != 300 || snap.Builders != 1 || snap.Buildings != 0 {
		t.Errorf("Unexpected snapshot %+v", snap)
	}
	s.Metal = 1
	if snap.Metal != 1000 {
		t.Error("Snapshot should not follow state changes")
	}
}

func mustProfile(t *testing.T, s *State, name string) *models.ObjectProfile {
	t.Helper()
	p, err := s.Profile(name)
	if err != nil {
		t.Fatalf("Profile(%s): %v", name, err)
	}
	return p
}
