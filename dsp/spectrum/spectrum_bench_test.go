package spectrum

import (
	"strconv"
	"testing"
)

func BenchmarkMagnitude(b *testing.B) {
	for _, n := range []int{513, 1025, 4097} {
		in := make([]complex128, n)
		for i := range in {
			in[i] = complex(float64(i), 1)
		}

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Magnitude(in)
			}
		})
	}
}

func BenchmarkPower(b *testing.B) {
	in := make([]complex128, 1025)
	for i := range in {
		in[i] = complex(float64(i), 1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Power(in)
	}
}
