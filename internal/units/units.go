// Package units provides shared physical constants and unit conversion for
// energies and lengths
package units

// Physical constants (SI).
const (
	// HBar is the reduced Planck constant in J·s.
	HBar = 1.054571817e-34
	// ElectronMass in kg.
	ElectronMass = 9.1093837015e-31
	// ElectronVolt in J.
	ElectronVolt = 1.602176634e-19
	// Angstrom in m.
	Angstrom = 1e-10
)

// Energy unit constants
const (
	Joule = "J"
	EV    = "eV"
	MeV   = "MeV"
)

// Length unit constants
const (
	Meter        = "m"
	Nano         = "nm"
	AngstromUnit = "angstrom"
)

// ValidEnergyUnits contains all valid energy unit values
var ValidEnergyUnits = []string{Joule, EV, MeV}

// ValidLengthUnits contains all valid length unit values
var ValidLengthUnits = []string{Meter, Nano, AngstromUnit}

// IsValidEnergy checks if the given unit is in the list of valid energy units
func IsValidEnergy(unit string) bool {
	for _, valid := range ValidEnergyUnits {
		if unit == valid {
			return true
		}
	}
	return false
}

// IsValidLength checks if the given unit is in the list of valid length units
func IsValidLength(unit string) bool {
	for _, valid := range ValidLengthUnits {
		if unit == valid {
			return true
		}
	}
	return false
}

// ConvertEnergy converts an energy from joules to the target units.
// Results are computed and stored in joules internally.
func ConvertEnergy(joules float64, targetUnits string) float64 {
	switch targetUnits {
	case EV:
		return joules / ElectronVolt
	case MeV:
		return joules / ElectronVolt / 1e6
	case Joule:
		return joules
	default:
		return joules
	}
}

// ConvertLength converts a length from meters to the target units.
func ConvertLength(meters float64, targetUnits string) float64 {
	switch targetUnits {
	case Nano:
		return meters * 1e9
	case AngstromUnit:
		return meters / Angstrom
	case Meter:
		return meters
	default:
		return meters
	}
}
