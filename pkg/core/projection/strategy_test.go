package projection

import (
	"math"
	"testing"
)

func TestLinearMarginRamp(t *testing.T) {
	ramp := LinearMarginRamp{Current: 0.15, Final: 0.25}

	checks := []struct {
		year int
		exp  float64
	}{
		{0, 0.15},
		{1, 0.17},
		{2, 0.19},
		{5, 0.25},
	}
	for _, c := range checks {
		if got := ramp.At(c.year, 5); math.Abs(got-c.exp) > 1e-12 {
			t.Errorf("At(%d, 5): got %v, exp %v", c.year, got, c.exp)
		}
	}

	// Degenerate horizon falls back to the current margin.
	if got := ramp.At(0, 0); got != 0.15 {
		t.Errorf("At(0, 0): got %v, exp 0.15", got)
	}
}

func TestMarginPathSelection(t *testing.T) {
	params := Parameters{
		Margin: 0.20,
		FinalMargins: map[Scenario]float64{
			ScenarioBull: 0.25,
			ScenarioBase: 0.20, // same as current -> constant
		},
	}

	if path := marginPathFor(params, ScenarioBull); path.Name() != "Linear" {
		t.Errorf("bull: expected Linear path, got %s", path.Name())
	}
	if path := marginPathFor(params, ScenarioBase); path.Name() != "Constant" {
		t.Errorf("base: expected Constant path, got %s", path.Name())
	}
	// No entry at all -> constant.
	if path := marginPathFor(params, ScenarioBear); path.Name() != "Constant" {
		t.Errorf("bear: expected Constant path, got %s", path.Name())
	}
}
