package booking

// Overlaps reports whether two half-open minute intervals intersect.
// Touching endpoints (end1 == start2) do not count as overlap. Callers must
// supply start < end for each interval.
func Overlaps(start1, end1, start2, end2 int) bool {
	return !(end1 <= start2 || end2 <= start1)
}
