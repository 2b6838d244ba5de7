package insertion_test

import (
	"math/rand"
	"testing"

	"github.com/andthum/transfer-Li/insertion"
	"github.com/andthum/transfer-Li/simbox"
)

// BenchmarkSelect measures the full ranking on a realistic workload:
// 2000 candidates against 5000 neighbor atoms, random but seeded.
// Complexity: O(|faces|·|neighbors|)
func BenchmarkSelect(b *testing.B) {
	box, err := simbox.NewOrtho(85.2, 49.19, 200)
	if err != nil {
		b.Fatalf("setup box failed: %v", err)
	}
	lengths := box.Lengths()
	rng := rand.New(rand.NewSource(42))

	faces := make([]simbox.Vec, 2000)
	for i := range faces {
		faces[i] = simbox.Vec{
			rng.Float64() * lengths[simbox.X],
			rng.Float64() * lengths[simbox.Y],
			100, // flat surface
		}
	}
	neighbors := make([]simbox.Vec, 5000)
	for i := range neighbors {
		neighbors[i] = simbox.Vec{
			rng.Float64() * lengths[simbox.X],
			rng.Float64() * lengths[simbox.Y],
			95 + rng.Float64()*10,
		}
	}
	opts := insertion.Options{RMin: 0.5, RMax: 5.2, ZOffset: 2.7}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := insertion.Select(faces, neighbors, box, opts); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}
