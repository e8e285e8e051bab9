package projection

// MarginPath produces the effective margin for each projected year.
// Year 0 uses the current margin; the trend decides how (and whether) the
// margin moves toward the scenario's final margin by year N.
type MarginPath interface {
	// Name returns the path identifier.
	Name() string

	// At returns the margin for year i of an N-year projection, 0 <= i <= N.
	At(i, years int) float64
}

// ConstantMargin holds the margin flat for the whole projection.
type ConstantMargin struct {
	Margin float64
}

func (c ConstantMargin) Name() string { return "Constant" }

func (c ConstantMargin) At(i, years int) float64 { return c.Margin }

// LinearMarginRamp interpolates from the current margin to the final margin
// in equal yearly steps, matching a linspace over years+1 points.
type LinearMarginRamp struct {
	Current float64
	Final   float64
}

func (l LinearMarginRamp) Name() string { return "Linear" }

func (l LinearMarginRamp) At(i, years int) float64 {
	if years <= 0 {
		return l.Current
	}
	return l.Current + (l.Final-l.Current)*float64(i)/float64(years)
}

// marginPathFor picks the path for a scenario from the parameters.
// A final margin equal to the current margin degenerates to a constant path.
func marginPathFor(params Parameters, s Scenario) MarginPath {
	final := params.FinalMarginFor(s)
	if final == params.Margin {
		return ConstantMargin{Margin: params.Margin}
	}
	return LinearMarginRamp{Current: params.Margin, Final: final}
}
