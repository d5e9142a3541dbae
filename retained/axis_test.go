package retained

import (
	"testing"

	"github.com/goki/mat32"
)

func TestAxis(t *testing.T) {
	v := mat32.NewVec2(3, 7)
	tests := []struct {
		name      string
		axis      Axis
		wantFlow  float32
		wantFit   float32
		withFlow  mat32.Vec2
		withFit   mat32.Vec2
		scaleFlow mat32.Vec2
		scaleFit  mat32.Vec2
		flowUnit  mat32.Vec2
		fitUnit   mat32.Vec2
	}{
		{
			name:      "horizontal",
			axis:      Axis{},
			wantFlow:  3,
			wantFit:   7,
			withFlow:  mat32.NewVec2(10, 7),
			withFit:   mat32.NewVec2(3, 10),
			scaleFlow: mat32.NewVec2(6, 7),
			scaleFit:  mat32.NewVec2(3, 14),
			flowUnit:  mat32.NewVec2(1, 0),
			fitUnit:   mat32.NewVec2(0, 1),
		},
		{
			name:      "vertical",
			axis:      Axis{Vertical: true},
			wantFlow:  7,
			wantFit:   3,
			withFlow:  mat32.NewVec2(3, 10),
			withFit:   mat32.NewVec2(10, 7),
			scaleFlow: mat32.NewVec2(3, 14),
			scaleFit:  mat32.NewVec2(6, 7),
			flowUnit:  mat32.NewVec2(0, 1),
			fitUnit:   mat32.NewVec2(1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.axis
			if got := a.FlowOf(v); got != tt.wantFlow {
				t.Errorf("FlowOf = %v, want %v", got, tt.wantFlow)
			}
			if got := a.FitOf(v); got != tt.wantFit {
				t.Errorf("FitOf = %v, want %v", got, tt.wantFit)
			}
			if got := a.WithFlow(v, 10); got != tt.withFlow {
				t.Errorf("WithFlow = %v, want %v", got, tt.withFlow)
			}
			if got := a.WithFit(v, 10); got != tt.withFit {
				t.Errorf("WithFit = %v, want %v", got, tt.withFit)
			}
			if got := a.ScaleFlow(v, 2); got != tt.scaleFlow {
				t.Errorf("ScaleFlow = %v, want %v", got, tt.scaleFlow)
			}
			if got := a.ScaleFit(v, 2); got != tt.scaleFit {
				t.Errorf("ScaleFit = %v, want %v", got, tt.scaleFit)
			}
			if got := a.FlowUnit(); got != tt.flowUnit {
				t.Errorf("FlowUnit = %v, want %v", got, tt.flowUnit)
			}
			if got := a.FitUnit(); got != tt.fitUnit {
				t.Errorf("FitUnit = %v, want %v", got, tt.fitUnit)
			}
			if got := a.FlowVector(5); got != tt.flowUnit.MulScalar(5) {
				t.Errorf("FlowVector(5) = %v, want %v", got, tt.flowUnit.MulScalar(5))
			}
			if a.FlowDim() == a.FitDim() {
				t.Error("flow and fit dimensions must differ")
			}
		})
	}

	// Input vectors are never modified.
	if v != mat32.NewVec2(3, 7) {
		t.Errorf("input vector modified: %v", v)
	}
}

func TestAxisPolicies(t *testing.T) {
	state := ControlState{HPolicy: SizeExpand, VPolicy: SizeShrinkEnd}

	h := Axis{}
	if got := h.FlowPolicy(state); got != SizeExpand {
		t.Errorf("horizontal FlowPolicy = %v, want expand", got)
	}
	if got := h.FitPolicy(state); got != SizeShrinkEnd {
		t.Errorf("horizontal FitPolicy = %v, want shrink_end", got)
	}

	v := Axis{Vertical: true}
	if got := v.FlowPolicy(state); got != SizeShrinkEnd {
		t.Errorf("vertical FlowPolicy = %v, want shrink_end", got)
	}
	if got := v.FitPolicy(state); got != SizeExpand {
		t.Errorf("vertical FitPolicy = %v, want expand", got)
	}
}
