package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		s1, e1, s2, e2         int
		want                   bool
	}{
		{"disjoint", 540, 600, 660, 720, false},
		{"touching endpoints do not overlap", 540, 600, 600, 660, false},
		{"partial overlap", 540, 620, 600, 660, true},
		{"containment", 540, 720, 580, 640, true},
		{"identical", 540, 600, 540, 600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// Symmetric in the two intervals.
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}
