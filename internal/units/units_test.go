package units

import (
	"math"
	"testing"
)

func TestIsValidEnergy(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		expected bool
	}{
		{"valid J", Joule, true},
		{"valid eV", EV, true},
		{"valid MeV", MeV, true},
		{"invalid unit", "erg", false},
		{"empty unit", "", false},
		{"uppercase EV", "EV", false}, // Case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidEnergy(tt.unit)
			if result != tt.expected {
				t.Errorf("IsValidEnergy(%s) = %v, want %v", tt.unit, result, tt.expected)
			}
		})
	}
}

func TestIsValidLength(t *testing.T) {
	if !IsValidLength(AngstromUnit) {
		t.Error("angstrom should be valid")
	}
	if IsValidLength("furlong") {
		t.Error("furlong should not be valid")
	}
}

func TestConvertEnergy(t *testing.T) {
	tests := []struct {
		name     string
		joules   float64
		unit     string
		expected float64
	}{
		{"1 eV round trip", ElectronVolt, EV, 1.0},
		{"joule identity", 2.5, Joule, 2.5},
		{"MeV", 1e6 * ElectronVolt, MeV, 1.0},
		{"unknown falls back to J", 3.0, "erg", 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertEnergy(tt.joules, tt.unit)
			if math.Abs(result-tt.expected) > 1e-12*math.Abs(tt.expected) {
				t.Errorf("ConvertEnergy = %g, want %g", result, tt.expected)
			}
		})
	}
}

func TestConvertLength(t *testing.T) {
	if got := ConvertLength(1e-10, AngstromUnit); math.Abs(got-1) > 1e-12 {
		t.Errorf("1e-10 m = %g angstrom, want 1", got)
	}
	if got := ConvertLength(1e-9, Nano); math.Abs(got-1) > 1e-12 {
		t.Errorf("1e-9 m = %g nm, want 1", got)
	}
}
