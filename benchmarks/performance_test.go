// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for the async logging runtime.

package benchmarks

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/momentics/hioload-logpool/api"
	"github.com/momentics/hioload-logpool/control"
	"github.com/momentics/hioload-logpool/cpuset"
	"github.com/momentics/hioload-logpool/facade"
	"github.com/momentics/hioload-logpool/fake"
	"github.com/momentics/hioload-logpool/internal/concurrency"
	"github.com/momentics/hioload-logpool/threadpool"
)

func quiet() *log.Logger { return log.New(io.Discard, "", 0) }

// BenchmarkBoundedQueueThroughput measures contended enqueue/dequeue pairs.
func BenchmarkBoundedQueueThroughput(b *testing.B) {
	q, err := concurrency.NewBoundedQueue[int](1024)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			q.Enqueue(i)
			q.Dequeue()
			i++
		}
	})
}

func benchmarkPool(b *testing.B, policy api.OverflowPolicy) {
	p, err := threadpool.New(8192, 4, threadpool.WithBinder(nil), threadpool.WithLogger(quiet()))
	if err != nil {
		b.Fatal(err)
	}
	sink := &fake.Sink{}
	rec := api.Record{Time: time.Now(), Level: api.LevelInfo, Logger: "bench", Message: "payload"}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if err := p.PostLog(sink, rec, policy); err != nil {
				b.Error(err)
				return
			}
		}
	})
	b.StopTimer()
	if err := p.Close(); err != nil {
		b.Fatal(err)
	}
	b.ReportMetric(float64(p.OverrunCounter()+p.DiscardCounter()), "dropped")
}

func BenchmarkPoolBlock(b *testing.B)         { benchmarkPool(b, api.Block) }
func BenchmarkPoolOverrunOldest(b *testing.B) { benchmarkPool(b, api.OverrunOldest) }
func BenchmarkPoolDiscardNew(b *testing.B)    { benchmarkPool(b, api.DiscardNew) }

// BenchmarkCPUListRoundTrip measures parse plus format of a typical list.
func BenchmarkCPUListRoundTrip(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s, err := cpuset.ParseList("0-7,16-23,32-63:2", 64, true)
		if err != nil {
			b.Fatal(err)
		}
		_ = cpuset.FormatList(s)
	}
}

// BenchmarkFacadeIntegration measures end-to-end logging into a file.
func BenchmarkFacadeIntegration(b *testing.B) {
	cfg := control.DefaultConfig()
	cfg.Threads = 2
	cfg.Dir = b.TempDir()
	logging, err := facade.New(cfg, facade.WithDiagnostics(quiet()), facade.WithBinder(&fake.Binder{}))
	if err != nil {
		b.Fatal(err)
	}
	defer logging.Close()
	lg, err := logging.Logger(0, "bench")
	if err != nil {
		b.Fatal(err)
	}
	lg.FlushOn(api.LevelOff)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := lg.Infof("seq=%d", i); err != nil {
			b.Fatal(err)
		}
	}
	if err := lg.Flush(); err != nil {
		b.Fatal(err)
	}
}
