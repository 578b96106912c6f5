package proxy

import "errors"

// ErrZeroStep is returned when a Slice has a step of zero.
var ErrZeroStep = errors.New("slice step cannot be zero")

// Slice selects a range of sequence indices. Nil bounds take their
// defaults: start 0, stop len, step 1. Negative bounds count from the end.
type Slice struct {
	Start *int
	Stop  *int
	Step  *int
}

// Whole selects every index.
func Whole() Slice { return Slice{} }

// Span selects [start, stop).
func Span(start, stop int) Slice { return Slice{Start: &start, Stop: &stop} }

// From selects [start, len).
func From(start int) Slice { return Slice{Start: &start} }

// To selects [0, stop).
func To(stop int) Slice { return Slice{Stop: &stop} }

// WithStep returns a copy of s using the given step.
func (s Slice) WithStep(step int) Slice {
	s.Step = &step
	return s
}

// Indices resolves s against a sequence of the given length and returns
// the concrete start, stop and step.
func (s Slice) Indices(length int) (start, stop, step int, err error) {
	step = 1
	if s.Step != nil {
		step = *s.Step
	}
	if step == 0 {
		return 0, 0, 0, ErrZeroStep
	}

	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}

	clamp := func(p *int, def int) int {
		if p == nil {
			return def
		}
		v := *p
		if v < 0 {
			v += length
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}

	if step > 0 {
		start, stop = clamp(s.Start, lower), clamp(s.Stop, upper)
	} else {
		start, stop = clamp(s.Start, upper), clamp(s.Stop, lower)
	}
	return start, stop, step, nil
}

// positions lists the indices s selects in a sequence of the given length.
func (s Slice) positions(length int) ([]int, error) {
	start, stop, step, err := s.Indices(length)
	if err != nil {
		return nil, err
	}

	var out []int
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}
	return out, nil
}
