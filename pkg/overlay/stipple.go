package overlay

import (
	"math"

	"github.com/Benjirez/archipack/pkg/geometry"
)

// Rect is an axis aligned pixel rectangle
type Rect struct {
	Min, Max geometry.Vector2
}

// RectOf returns the rectangle from the origin to (width, height)
func RectOf(width, height float64) Rect {
	return Rect{Max: geometry.NewVector2(width, height)}
}

// Grow pads the rectangle by pad pixels on every side
func (r Rect) Grow(pad float64) Rect {
	p := geometry.NewVector2(pad, pad)
	return Rect{Min: r.Min.Sub(p), Max: r.Max.Add(p)}
}

// ClipSegment clips a-b to r (Liang-Barsky). t0 and t1 delimit the kept
// part along the segment; ok is false when nothing remains.
func ClipSegment(a, b geometry.Vector2, r Rect) (t0, t1 float64, ok bool) {
	d := b.Sub(a)
	t0, t1 = 0, 1

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return false
			}
			t1 = math.Min(t1, t)
		}
		return true
	}

	if !clip(-d.X, a.X-r.Min.X) || !clip(d.X, r.Max.X-a.X) ||
		!clip(-d.Y, a.Y-r.Min.Y) || !clip(d.Y, r.Max.Y-a.Y) {
		return 0, 0, false
	}
	return t0, t1, true
}

// Dashes splits the part of segment a-b inside clip into the runs a
// stipple pattern keeps. The pattern holds one bit per factor pixels,
// least significant bit first. counter is the pattern position, carried
// from one segment to the next within a primitive; the clipped off
// lengths still advance it, so the phase does not depend on clip.
// Only the visible part is walked, whatever the segment length.
func Dashes(a, b geometry.Vector2, clip Rect, factor int, pattern uint16, counter *int) [][2]geometry.Vector2 {
	if factor < 1 {
		factor = 1
	}
	period := 16 * factor
	d := b.Sub(a)
	length := d.Length()
	steps := math.Ceil(length)
	if steps == 0 {
		return nil
	}
	skip := func(n float64) {
		*counter = (*counter + int(math.Mod(n, float64(period)))) % period
	}

	t0, t1, ok := ClipSegment(a, b, clip)
	if !ok {
		skip(steps)
		return nil
	}
	first := math.Floor(t0 * length)
	last := math.Min(steps, math.Ceil(t1*length))
	skip(first)

	dir := d.Mul(1 / length)
	at := func(i float64) geometry.Vector2 { return a.Add(dir.Mul(i)) }

	var out [][2]geometry.Vector2
	start := -1.0
	n := int(last - first)
	for k := 0; k < n; k++ {
		i := first + float64(k)
		bit := (pattern >> uint((*counter/factor)%16)) & 1
		*counter = (*counter + 1) % period
		if bit == 1 && start < 0 {
			start = i
		}
		if bit == 0 && start >= 0 {
			out = append(out, [2]geometry.Vector2{at(start), at(i)})
			start = -1
		}
	}
	if start >= 0 {
		end := b
		if last < steps {
			end = at(last)
		}
		out = append(out, [2]geometry.Vector2{at(start), end})
	}
	skip(steps - last)
	return out
}
