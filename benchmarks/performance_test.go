package benchmarks

import (
	"testing"

	"github.com/go-foundations/schedcore"
)

// Benchmark OPQ insertion cost under each policy's comparator.
func BenchmarkOfferFCFS(b *testing.B) {
	benchmarkOffer(b, schedcore.FCFS)
}

func BenchmarkOfferSJF(b *testing.B) {
	benchmarkOffer(b, schedcore.SJF)
}

func BenchmarkOfferPRI(b *testing.B) {
	benchmarkOffer(b, schedcore.PRI)
}

func benchmarkOffer(b *testing.B, policy schedcore.Policy) {
	d, err := schedcore.New(1, policy)
	if err != nil {
		b.Fatal(err)
	}
	defer d.Close()

	// Fill the single core so every subsequent arrival lands in the OPQ,
	// exercising Offer's insertion-scan cost rather than idle placement.
	d.NewJob(0, 0, 1000000, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.NewJob(i+1, 1, (i%50)+1, i%7)
	}
}

// Benchmark a full arrival-then-drain trace across a handful of cores.
func BenchmarkDispatcherTrace(b *testing.B) {
	const cores = 4
	const jobs = 200

	for i := 0; i < b.N; i++ {
		d, err := schedcore.New(cores, schedcore.PRI)
		if err != nil {
			b.Fatal(err)
		}

		for j := 0; j < jobs; j++ {
			d.NewJob(j, j, (j%20)+1, j%5)
		}

		now := jobs
		for core := 0; core < cores; core++ {
			for {
				views := d.Snapshot()
				occupant := -1
				for _, v := range views {
					if v.CoreID == core {
						occupant = v.ID
						break
					}
				}
				if occupant == -1 {
					break
				}
				next, err := d.JobFinished(core, occupant, now)
				if err != nil {
					b.Fatal(err)
				}
				now++
				if next == -1 {
					break
				}
			}
		}

		d.Close()
	}
}
