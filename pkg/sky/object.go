package sky

import (
	"fmt"

	"github.com/agentstation/skycatalog/pkg/constants"
)

// Object is one parsed star, Messier, NGC or IC record.
//
// RADrift, DecDrift and Parallax are only measured for stars. For every
// other category they are nil ("not applicable"), which is distinct from a
// measured value of zero.
//
// The zero Object is the sentinel returned when a record does not exist.
type Object struct {
	// ID is the SAO, Messier, NGC or IC number. It is the file name of the record.
	ID int64 `json:"id" yaml:"id"`

	Category Category `json:"category" yaml:"category"`

	// Designation such as "NGC 7000".
	Designation string `json:"designation" yaml:"designation"`

	// Name is the usual name, possibly empty.
	Name string `json:"name" yaml:"name"`

	// Constellation is the 3-letter abbreviation, e.g. "ORI".
	Constellation string `json:"constellation" yaml:"constellation"`

	RA        float64 `json:"ra" yaml:"ra"`
	Dec       float64 `json:"dec" yaml:"dec"`
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`

	// Annual drift in RA and Dec, and parallax. Stars only.
	RADrift  *float64 `json:"ra_drift,omitempty" yaml:"ra_drift,omitempty"`
	DecDrift *float64 `json:"dec_drift,omitempty" yaml:"dec_drift,omitempty"`
	Parallax *float64 `json:"parallax,omitempty" yaml:"parallax,omitempty"`
}

// IsZero reports whether o is the "not found" sentinel.
func (o Object) IsZero() bool {
	return o == Object{}
}

// HasStellarMotion reports whether drift and parallax were measured.
func (o Object) HasStellarMotion() bool {
	return o.RADrift != nil && o.DecDrift != nil && o.Parallax != nil
}

// FileName re-derives the record file name from the identifier.
func (o Object) FileName() string {
	return fmt.Sprintf("%0*d%s", constants.RecordIDDigits, o.ID, constants.RecordSuffix)
}

// String implements fmt.Stringer.
func (o Object) String() string {
	if o.IsZero() {
		return "<no object>"
	}
	if o.Name != "" {
		return fmt.Sprintf("%s (%s)", o.Designation, o.Name)
	}
	return o.Designation
}

// Measured returns a pointer to v, for populating stellar motion fields.
func Measured(v float64) *float64 {
	return &v
}
