package retained

import "github.com/goki/mat32"

// resolveFit sizes a control for the fit axis according to its fit policy
// and returns the size together with its offset along the fit axis.
//
// Expand takes the full fit size and keeps the minimum flow size. Fill
// scales the minimum size uniformly until the fit sizes match. Shrink
// policies (and None) scale down only, then align at the begin, center or
// end of the fit axis.
func resolveFit(ax Axis, state ControlState, availFit float32) (mat32.Vec2, float32) {
	minSize := state.MinSize
	policy := ax.FitPolicy(state)

	switch {
	case policy.Expands():
		return ax.WithFit(minSize, availFit), 0
	case policy.Fills():
		return minSize.MulScalar(fitScale(ax.FitOf(minSize), availFit)), 0
	}

	scale := mat32.Min(1, fitScale(ax.FitOf(minSize), availFit))
	size := minSize.MulScalar(scale)
	return size, alignFit(policy, ax.FitOf(size), availFit)
}

// fitScale is the factor that brings minFit to availFit.
// A degenerate minimum (zero or negative) scales by 1.
func fitScale(minFit, availFit float32) float32 {
	if minFit <= 0 {
		return 1
	}
	return availFit / minFit
}

// alignFit returns the fit-axis offset for a control of fitSize.
// Only the shrink-end and shrink-center policies move away from 0.
func alignFit(policy SizePolicy, fitSize, availFit float32) float32 {
	switch policy {
	case SizeShrinkEnd:
		return availFit - fitSize
	case SizeShrinkCenter:
		return 0.5 * (availFit - fitSize)
	default:
		return 0
	}
}
