package curve

import (
	"fmt"
	"math"
	"strings"
)

// Curve is a validated frequency-response sample pair with naming and
// display metadata.
//
// The frequency/amplitude pair is immutable once validated; SetXY
// replaces it wholesale after re-validation. Metadata setters touch
// only metadata. Numeric operations in the analysis packages never
// consult metadata.
type Curve struct {
	freqs []float64
	amps  []float64

	namePrefix   string
	nameBase     string
	nameSuffixes []string
	visible      bool
}

// New validates two parallel sequences and returns an owned Curve.
// Both slices are copied.
//
// Failure kinds: [ErrShapeMismatch], [ErrInsufficientData],
// [ErrInvalidAxis], [ErrNonNumeric].
func New(freqs, amps []float64) (*Curve, error) {
	if err := validateXY(freqs, amps); err != nil {
		return nil, err
	}
	c := &Curve{
		freqs:   append([]float64(nil), freqs...),
		amps:    append([]float64(nil), amps...),
		visible: true,
	}
	return c, nil
}

// FromPairs validates a sequence of (frequency, amplitude) pairs and
// returns an owned Curve.
func FromPairs(pairs [][2]float64) (*Curve, error) {
	freqs := make([]float64, len(pairs))
	amps := make([]float64, len(pairs))
	for i, p := range pairs {
		freqs[i] = p[0]
		amps[i] = p[1]
	}
	return New(freqs, amps)
}

func validateXY(freqs, amps []float64) error {
	if len(freqs) != len(amps) {
		return fmt.Errorf("%w: %d frequencies, %d amplitudes", ErrShapeMismatch, len(freqs), len(amps))
	}
	if len(freqs) == 0 {
		return ErrInsufficientData
	}
	for i, f := range freqs {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite frequency at index %d", ErrInvalidAxis, i)
		}
		if f <= 0 {
			return fmt.Errorf("%w: frequency %v at index %d is not positive", ErrInvalidAxis, f, i)
		}
		if i > 0 && freqs[i-1] >= f {
			// No silent reordering: unsorted or duplicated input is the
			// caller's bug to fix, not ours to hide.
			return fmt.Errorf("%w: frequencies not strictly increasing at index %d (%v >= %v)",
				ErrInvalidAxis, i, freqs[i-1], f)
		}
	}
	for i, a := range amps {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return fmt.Errorf("%w: value %v at index %d", ErrNonNumeric, a, i)
		}
	}
	return nil
}

// Len returns the number of sample points.
func (c *Curve) Len() int { return len(c.freqs) }

// Frequencies returns a copy of the frequency axis in Hz.
func (c *Curve) Frequencies() []float64 {
	return append([]float64(nil), c.freqs...)
}

// Amplitudes returns a copy of the amplitude values in dB.
func (c *Curve) Amplitudes() []float64 {
	return append([]float64(nil), c.amps...)
}

// XY returns copies of both axes.
func (c *Curve) XY() (freqs, amps []float64) {
	return c.Frequencies(), c.Amplitudes()
}

// At returns the i-th (frequency, amplitude) sample.
func (c *Curve) At(i int) (freq, amp float64) {
	return c.freqs[i], c.amps[i]
}

// XMin returns the lowest frequency.
func (c *Curve) XMin() float64 { return c.freqs[0] }

// XMax returns the highest frequency.
func (c *Curve) XMax() float64 { return c.freqs[len(c.freqs)-1] }

// SetXY replaces the whole frequency/amplitude pair after validation.
// Metadata is untouched. On error the curve keeps its previous pair.
func (c *Curve) SetXY(freqs, amps []float64) error {
	if err := validateXY(freqs, amps); err != nil {
		return err
	}
	c.freqs = append([]float64(nil), freqs...)
	c.amps = append([]float64(nil), amps...)
	return nil
}

// Clone returns a deep copy, metadata included.
func (c *Curve) Clone() *Curve {
	return &Curve{
		freqs:        append([]float64(nil), c.freqs...),
		amps:         append([]float64(nil), c.amps...),
		namePrefix:   c.namePrefix,
		nameBase:     c.nameBase,
		nameSuffixes: append([]string(nil), c.nameSuffixes...),
		visible:      c.visible,
	}
}

// SetNamePrefix sets the positional index label (e.g. "#03"). The
// prefix is display metadata, not identity.
func (c *Curve) SetNamePrefix(prefix string) { c.namePrefix = prefix }

// NamePrefix returns the positional index label.
func (c *Curve) NamePrefix() string { return c.namePrefix }

// HasNamePrefix reports whether a positional index label is set.
func (c *Curve) HasNamePrefix() bool { return c.namePrefix != "" }

// SetNameBase sets the descriptive label.
func (c *Curve) SetNameBase(base string) { c.nameBase = base }

// NameBase returns the descriptive label.
func (c *Curve) NameBase() string { return c.nameBase }

// AddNameSuffix appends an annotation (e.g. "mean, 5 curves").
// Order is preserved and meaningful for display.
func (c *Curve) AddNameSuffix(suffix string) {
	c.nameSuffixes = append(c.nameSuffixes, suffix)
}

// RemoveNameSuffix removes every occurrence of suffix.
func (c *Curve) RemoveNameSuffix(suffix string) {
	kept := c.nameSuffixes[:0]
	for _, s := range c.nameSuffixes {
		if s != suffix {
			kept = append(kept, s)
		}
	}
	c.nameSuffixes = kept
}

// ClearNameSuffixes drops all annotations.
func (c *Curve) ClearNameSuffixes() { c.nameSuffixes = nil }

// NameSuffixes returns a copy of the annotation list.
func (c *Curve) NameSuffixes() []string {
	return append([]string(nil), c.nameSuffixes...)
}

// BaseNameAndSuffixes returns the base label followed by the comma
// separated annotations, without the positional prefix.
func (c *Curve) BaseNameAndSuffixes() string {
	if len(c.nameSuffixes) == 0 {
		return c.nameBase
	}
	return c.nameBase + " - " + strings.Join(c.nameSuffixes, ", ")
}

// FullName returns the display name: prefix, base, annotations.
func (c *Curve) FullName() string {
	name := c.BaseNameAndSuffixes()
	if c.namePrefix == "" {
		return name
	}
	if name == "" {
		return c.namePrefix
	}
	return c.namePrefix + " " + name
}

// Visible reports the display flag. It has no effect on numeric
// operations.
func (c *Curve) Visible() bool { return c.visible }

// SetVisible sets the display flag.
func (c *Curve) SetVisible(v bool) { c.visible = v }
