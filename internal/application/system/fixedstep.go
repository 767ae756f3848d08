package system

import "math"

// stepTolerance absorbs rounding in the accumulator so that time summing
// to a whole step in exact arithmetic still yields that step.
const stepTolerance = 1e-9

// FixedStep turns variable frame times into a whole number of fixed ticks.
// Time beyond MaxSubsteps ticks in one Advance is dropped so a stall does
// not trigger a burst of catch-up ticks.
type FixedStep struct {
	Step        float64
	MaxSubsteps int
	acc         float64
}

// NewFixedStep creates an accumulator.
func NewFixedStep(step float64, maxSubsteps int) *FixedStep {
	if maxSubsteps < 1 {
		maxSubsteps = 1
	}
	return &FixedStep{Step: step, MaxSubsteps: maxSubsteps}
}

// Advance adds elapsed seconds and calls tick once per whole step.
// It returns the number of ticks run.
func (f *FixedStep) Advance(elapsed float64, tick func(dt float64)) int {
	if !(elapsed > 0) || math.IsInf(elapsed, 0) || !(f.Step > 0) {
		return 0
	}

	f.acc += elapsed
	due := f.Step * (1 - stepTolerance)
	n := 0
	for f.acc >= due && n < f.MaxSubsteps {
		tick(f.Step)
		f.acc -= f.Step
		n++
	}
	if f.acc >= due {
		f.acc = math.Mod(f.acc, f.Step)
	}
	if f.acc < 0 {
		f.acc = 0
	}
	return n
}

// Alpha is the fraction of a step left in the accumulator, for render
// interpolation.
func (f *FixedStep) Alpha() float64 {
	if !(f.Step > 0) {
		return 0
	}
	return f.acc / f.Step
}

// Reset drops accumulated time.
func (f *FixedStep) Reset() {
	f.acc = 0
}
