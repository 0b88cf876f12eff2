package dual_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/pressure/dual"
	"github.com/katalvlaran/pressure/internal/testutil"
)

// BenchmarkPlan_Canonical compares the sequential and pooled evaluation.
func BenchmarkPlan_Canonical(b *testing.B) {
	p := compile(b, testutil.Canonical(b), "AA")
	for _, bc := range []struct {
		name    string
		workers int
	}{{"sequential", 1}, {"pooled", 0}} {
		d, err := dual.New(p, dual.WithWorkers(bc.workers))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = d.Plan(context.Background(), 26, p.Universe())
			}
		})
	}
}
