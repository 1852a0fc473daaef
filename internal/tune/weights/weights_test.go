package weights

import (
	"math"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default weights invalid: %v", err)
	}
}

func TestNormalize_Properties(t *testing.T) {
	tests := []struct {
		name string
		in   Weights
	}{
		{"already normalized", Weights{"speed": 0.4, "adaptability": 0.3, "pedigree": 0.3}},
		{"needs scaling up", Weights{"speed": 0.2, "adaptability": 0.2, "pedigree": 0.2}},
		{"needs scaling down", Weights{"speed": 0.8, "adaptability": 0.8, "pedigree": 0.8}},
		{"hits lower bound after scaling", Weights{"speed": 0.9, "adaptability": 0.9, "pedigree": 0.05}},
		{"out of bounds input", Weights{"speed": 2.5, "adaptability": -0.3, "pedigree": 0.01}},
		{"two agents", Weights{"speed": 0.9, "pedigree": 0.05}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.in.Normalize()

			if err := out.Validate(); err != nil {
				t.Fatalf("normalized weights invalid: %v", err)
			}
			if sum := out.Sum(); math.Abs(sum-1.0) > SumTolerance {
				t.Errorf("sum = %.10f, want 1.0 within %.0e", sum, SumTolerance)
			}
			for _, name := range out.Names() {
				if out[name] < MinWeight-1e-9 || out[name] > MaxWeight+1e-9 {
					t.Errorf("weight %s = %.6f outside [%.2f, %.2f]", name, out[name], MinWeight, MaxWeight)
				}
			}
		})
	}
}

func TestNormalize_PreservesProportions(t *testing.T) {
	out := Weights{"speed": 0.2, "adaptability": 0.1, "pedigree": 0.1}.Normalize()

	if math.Abs(out["speed"]-0.5) > 1e-9 {
		t.Errorf("speed = %.6f, want 0.5", out["speed"])
	}
	if math.Abs(out["adaptability"]-0.25) > 1e-9 {
		t.Errorf("adaptability = %.6f, want 0.25", out["adaptability"])
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := Weights{"speed": 0.2, "adaptability": 0.2, "pedigree": 0.2}
	_ = in.Normalize()

	if in["speed"] != 0.2 {
		t.Errorf("input mutated: speed = %v", in["speed"])
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   Weights
	}{
		{"empty", Weights{}},
		{"below minimum", Weights{"speed": 0.03, "adaptability": 0.5, "pedigree": 0.47}},
		{"above maximum", Weights{"speed": 0.95, "adaptability": 0.05, "pedigree": 0.05}},
		{"bad sum", Weights{"speed": 0.3, "adaptability": 0.3, "pedigree": 0.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.in.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestClone_Independent(t *testing.T) {
	in := Default()
	out := in.Clone()
	out["speed"] = 0.9

	if in["speed"] != 0.40 {
		t.Errorf("clone mutation leaked into source: %v", in["speed"])
	}
}

func TestNames_Sorted(t *testing.T) {
	names := Default().Names()
	want := []string{"adaptability", "pedigree", "speed"}

	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}
