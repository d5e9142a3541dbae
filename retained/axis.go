package retained

import "github.com/goki/mat32"

// Axis maps the container's flow and fit axes onto X and Y.
// Children flow along the flow axis (X when horizontal, Y when vertical)
// and are aligned or scaled to fit the container along the fit axis.
type Axis struct {
	Vertical bool
}

// FlowDim returns the dimension children are placed along.
func (a Axis) FlowDim() mat32.Dims {
	if a.Vertical {
		return mat32.Y
	}
	return mat32.X
}

// FitDim returns the dimension children are fitted along.
func (a Axis) FitDim() mat32.Dims {
	return mat32.OtherDim(a.FlowDim())
}

// FlowOf returns the X (width) component when horizontal, Y (height) when vertical.
func (a Axis) FlowOf(v mat32.Vec2) float32 {
	return v.Dim(a.FlowDim())
}

// FitOf returns the Y (height) component when horizontal, X (width) when vertical.
func (a Axis) FitOf(v mat32.Vec2) float32 {
	return v.Dim(a.FitDim())
}

// WithFlow returns a copy of v with its flow component replaced.
func (a Axis) WithFlow(v mat32.Vec2, value float32) mat32.Vec2 {
	v.SetDim(a.FlowDim(), value)
	return v
}

// WithFit returns a copy of v with its fit component replaced.
func (a Axis) WithFit(v mat32.Vec2, value float32) mat32.Vec2 {
	v.SetDim(a.FitDim(), value)
	return v
}

// ScaleFlow multiplies only the flow component of v.
func (a Axis) ScaleFlow(v mat32.Vec2, s float32) mat32.Vec2 {
	return a.WithFlow(v, a.FlowOf(v)*s)
}

// ScaleFit multiplies only the fit component of v.
func (a Axis) ScaleFit(v mat32.Vec2, s float32) mat32.Vec2 {
	return a.WithFit(v, a.FitOf(v)*s)
}

// FlowUnit points right when horizontal, down when vertical.
func (a Axis) FlowUnit() mat32.Vec2 {
	return a.FlowVector(1)
}

// FlowVector returns FlowUnit scaled by s.
func (a Axis) FlowVector(s float32) mat32.Vec2 {
	return a.WithFlow(mat32.Vec2{}, s)
}

// FitUnit points down when horizontal, right when vertical.
func (a Axis) FitUnit() mat32.Vec2 {
	return a.FitVector(1)
}

// FitVector returns FitUnit scaled by s.
func (a Axis) FitVector(s float32) mat32.Vec2 {
	return a.WithFit(mat32.Vec2{}, s)
}

// FlowPolicy selects the size policy governing the flow axis: the vertical
// policy for a vertical container, the horizontal one otherwise.
func (a Axis) FlowPolicy(s ControlState) SizePolicy {
	if a.Vertical {
		return s.VPolicy
	}
	return s.HPolicy
}

// FitPolicy selects the size policy governing the fit axis.
func (a Axis) FitPolicy(s ControlState) SizePolicy {
	if a.Vertical {
		return s.HPolicy
	}
	return s.VPolicy
}
