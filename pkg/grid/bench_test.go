package grid

import (
	"testing"

	"tapestry/pkg/geom"
	"tapestry/pkg/pattern"
)

// BenchmarkSelectMutCircle drives a radius-100 outline through SelectMut.
func BenchmarkSelectMutCircle(b *testing.B) {
	g := newGrid[bool](b, 256, 256)
	circle := pattern.NewCircle(geom.C(128, 128), 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for ref, err := range g.SelectMut(circle.Iter()) {
			if err == nil {
				*ref.Value = !*ref.Value
			}
		}
	}
}

// BenchmarkFlood floods an open 512x512 grid.
func BenchmarkFlood(b *testing.B) {
	g := newGrid[bool](b, 512, 512)
	g.Fill(true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range g.Flood(geom.C(256, 256), func(v bool) bool { return v }) {
		}
	}
}
