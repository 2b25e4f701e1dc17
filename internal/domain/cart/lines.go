// internal/domain/cart/lines.go
package cart

import "fmt"

// Limits bounds line and aggregate quantities
type Limits struct {
	MaxPerLine int
	MaxTotal   int
}

// DefaultLimits returns the storefront caps
func DefaultLimits() Limits {
	return Limits{MaxPerLine: 99, MaxTotal: 50}
}

// Outcome describes what a line operation did
type Outcome struct {
	Changed  bool
	Quantity int   // resulting quantity of the touched line
	Added    int   // units actually added
	Limit    error // ErrCartFull or ErrLineFull when a cap was hit
}

// Units returns the aggregate quantity across lines
func Units(lines []Line) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

// IndexOf returns the position of the line for id, or -1
func IndexOf(lines []Line, id int) int {
	for i, l := range lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func clone(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// AddOrMerge adds line.Quantity units of a product. An existing line grows up to
// MaxPerLine; a new line is appended. Units beyond MaxTotal are not added and
// the outcome reports ErrCartFull.
func (lim Limits) AddOrMerge(lines []Line, line Line) ([]Line, Outcome) {
	requested := line.Quantity
	if requested < 1 {
		requested = 1
	}

	out := clone(lines)
	capacity := lim.MaxTotal - Units(out)

	i := IndexOf(out, line.ID)
	existing := 0
	if i >= 0 {
		existing = out[i].Quantity
	}

	target := existing + requested
	if target > lim.MaxPerLine {
		target = lim.MaxPerLine
	}
	delta := target - existing

	var limit error
	switch {
	case capacity <= 0:
		return out, Outcome{Quantity: existing, Limit: ErrCartFull}
	case delta <= 0:
		return out, Outcome{Quantity: existing, Limit: ErrLineFull}
	case delta > capacity:
		delta = capacity
		limit = ErrCartFull
	case existing+requested > lim.MaxPerLine:
		limit = ErrLineFull
	}

	if i >= 0 {
		out[i].Quantity = existing + delta
	} else {
		line.Quantity = delta
		out = append(out, line)
		i = len(out) - 1
	}

	return out, Outcome{Changed: true, Quantity: out[i].Quantity, Added: delta, Limit: limit}
}

// SetQuantity clamps q into [1, MaxPerLine] and to what the other lines leave
// of MaxTotal, then stores it on the line.
func (lim Limits) SetQuantity(lines []Line, id, q int) ([]Line, Outcome, error) {
	i := IndexOf(lines, id)
	if i < 0 {
		return lines, Outcome{}, fmt.Errorf("set quantity of %d: %w", id, ErrLineNotFound)
	}

	out := clone(lines)
	var limit error

	if q < 1 {
		q = 1
	}
	if q > lim.MaxPerLine {
		q = lim.MaxPerLine
		limit = ErrLineFull
	}
	if room := lim.MaxTotal - (Units(out) - out[i].Quantity); q > room {
		q = room
		limit = ErrCartFull
	}

	changed := out[i].Quantity != q
	out[i].Quantity = q
	return out, Outcome{Changed: changed, Quantity: q, Limit: limit}, nil
}

// Increase adds one unit to a line unless a cap is reached
func (lim Limits) Increase(lines []Line, id int) ([]Line, Outcome, error) {
	i := IndexOf(lines, id)
	if i < 0 {
		return lines, Outcome{}, fmt.Errorf("increase %d: %w", id, ErrLineNotFound)
	}

	current := lines[i].Quantity
	if Units(lines) >= lim.MaxTotal {
		return lines, Outcome{Quantity: current, Limit: ErrCartFull}, nil
	}
	if current >= lim.MaxPerLine {
		return lines, Outcome{Quantity: current, Limit: ErrLineFull}, nil
	}

	out := clone(lines)
	out[i].Quantity++
	return out, Outcome{Changed: true, Quantity: out[i].Quantity, Added: 1}, nil
}

// Decrease removes one unit from a line; a line at 1 is left unchanged
func (lim Limits) Decrease(lines []Line, id int) ([]Line, Outcome, error) {
	i := IndexOf(lines, id)
	if i < 0 {
		return lines, Outcome{}, fmt.Errorf("decrease %d: %w", id, ErrLineNotFound)
	}

	if lines[i].Quantity <= 1 {
		return lines, Outcome{Quantity: lines[i].Quantity}, nil
	}

	out := clone(lines)
	out[i].Quantity--
	return out, Outcome{Changed: true, Quantity: out[i].Quantity}, nil
}

// Remove deletes the line for id and returns it
func Remove(lines []Line, id int) ([]Line, Line, error) {
	i := IndexOf(lines, id)
	if i < 0 {
		return lines, Line{}, fmt.Errorf("remove %d: %w", id, ErrLineNotFound)
	}

	removed := lines[i]
	out := make([]Line, 0, len(lines)-1)
	out = append(out, lines[:i]...)
	out = append(out, lines[i+1:]...)
	return out, removed, nil
}

// Normalize repairs a record written by another client: duplicate ids are
// merged, quantities clamped to [1, MaxPerLine], and units past MaxTotal dropped
// from the end. It reports whether anything was changed.
func (lim Limits) Normalize(lines []Line) ([]Line, bool) {
	out := make([]Line, 0, len(lines))
	changed := false

	for _, l := range lines {
		if i := IndexOf(out, l.ID); i >= 0 {
			out[i].Quantity += l.Quantity
			changed = true
			continue
		}
		out = append(out, l)
	}

	remaining := lim.MaxTotal
	kept := out[:0]
	for _, l := range out {
		q := l.Quantity
		if q < 1 {
			q = 1
		}
		if q > lim.MaxPerLine {
			q = lim.MaxPerLine
		}
		if q > remaining {
			q = remaining
		}
		if q != l.Quantity {
			changed = true
		}
		if q < 1 {
			changed = true
			continue
		}
		l.Quantity = q
		remaining -= q
		kept = append(kept, l)
	}

	return kept, changed
}
