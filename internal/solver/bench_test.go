package solver

import "testing"

// Wallis cubic, root near 2.0945515.
func benchResidual(x float64) float64 {
	return x*x*x - 2*x - 5
}

func BenchmarkNewton(b *testing.B) {
	m := NewNewton()
	opts := DefaultOptions()
	opts.Seed = 2.0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Solve(benchResidual, opts)
	}
}

func BenchmarkBisect(b *testing.B) {
	m := NewBisect()
	opts := DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Solve(benchResidual, opts)
	}
}

func BenchmarkHybrid(b *testing.B) {
	m := NewHybrid()
	opts := DefaultOptions()
	opts.Seed = 2.0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Solve(benchResidual, opts)
	}
}
