package retained

import (
	"errors"
	"testing"
)

func TestSizePolicyFromBits(t *testing.T) {
	tests := []struct {
		bits uint8
		want SizePolicy
	}{
		{0, SizeNone},
		{SizeBitFill, SizeFill},
		{SizeBitExpand, SizeExpand},
		{SizeBitExpand | SizeBitFill, SizeExpandFill},
		{SizeBitShrinkCenter, SizeShrinkCenter},
		{SizeBitShrinkEnd, SizeShrinkEnd},
		{SizeBitShrinkEnd | SizeBitShrinkCenter, SizeShrinkEnd},
		{SizeBitExpand | SizeBitShrinkEnd, SizeExpand},
		{SizeBitFill | SizeBitShrinkCenter, SizeFill},
		{16, SizeShrinkBegin},
	}

	for _, tt := range tests {
		if got := SizePolicyFromBits(tt.bits); got != tt.want {
			t.Errorf("SizePolicyFromBits(%d) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}

func TestSizePolicyBitsRoundTrip(t *testing.T) {
	for _, p := range []SizePolicy{SizeExpand, SizeFill, SizeExpandFill, SizeShrinkEnd, SizeShrinkCenter} {
		if got := SizePolicyFromBits(p.Bits()); got != p {
			t.Errorf("SizePolicyFromBits(%v.Bits()) = %v", p, got)
		}
	}
}

func TestSizePolicyPredicates(t *testing.T) {
	tests := []struct {
		policy  SizePolicy
		expands bool
		fills   bool
	}{
		{SizeNone, false, false},
		{SizeExpand, true, false},
		{SizeFill, false, true},
		{SizeExpandFill, true, true},
		{SizeShrinkBegin, false, false},
		{SizeShrinkEnd, false, false},
		{SizeShrinkCenter, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			if got := tt.policy.Expands(); got != tt.expands {
				t.Errorf("Expands() = %v, want %v", got, tt.expands)
			}
			if got := tt.policy.Fills(); got != tt.fills {
				t.Errorf("Fills() = %v, want %v", got, tt.fills)
			}
		})
	}
}

func TestParseSizePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    SizePolicy
		wantErr bool
	}{
		{"expand_fill", SizeExpandFill, false},
		{"Shrink-Center", SizeShrinkCenter, false},
		{" none ", SizeNone, false},
		{"stretch", SizeNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var p SizePolicy
			err := p.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownSizePolicy) {
					t.Errorf("error = %v, want ErrUnknownSizePolicy", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalText(%q) error = %v", tt.input, err)
			}
			if p != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.input, p, tt.want)
			}
		})
	}

	if _, err := SizePolicy(42).MarshalText(); !errors.Is(err, ErrUnknownSizePolicy) {
		t.Errorf("MarshalText(42) error = %v, want ErrUnknownSizePolicy", err)
	}
}

func TestAlignmentText(t *testing.T) {
	for _, a := range []Alignment{AlignBegin, AlignCenter, AlignEnd} {
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", a, err)
		}
		var back Alignment
		if err := back.UnmarshalText(text); err != nil || back != a {
			t.Errorf("round trip of %v = %v, %v", a, back, err)
		}
	}

	var a Alignment
	if err := a.UnmarshalText([]byte("start")); err != nil || a != AlignBegin {
		t.Errorf(`UnmarshalText("start") = %v, %v`, a, err)
	}
	if err := a.UnmarshalText([]byte("middle")); !errors.Is(err, ErrUnknownAlignment) {
		t.Errorf(`UnmarshalText("middle") error = %v, want ErrUnknownAlignment`, err)
	}
}
