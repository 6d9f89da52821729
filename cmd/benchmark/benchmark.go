package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync/atomic"
	"time"

	cache "github.com/krisalay/lfu-cache"
	"github.com/krisalay/lfu-cache/internal/config"
	"golang.org/x/sync/errgroup"
)

// ================= METRICS =================

// counters is shared by all workers, so it uses atomics.
type counters struct {
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

func (m *counters) Hit()      { m.hits.Add(1) }
func (m *counters) Miss()     { m.misses.Add(1) }
func (m *counters) Eviction() { m.evictions.Add(1) }

// ================= WORKER =================

/*
run drives one private cache with a skewed key distribution.
Each worker owns its cache: the cache itself does no locking.
*/
func run(ctx context.Context, id int, cfg config.Config, m *counters) error {
	c, err := cache.New[uint64, uint64](cfg.Capacity, cache.WithMetrics(m))
	if err != nil {
		return fmt.Errorf("worker %d: %w", id, err)
	}

	r := rand.New(rand.NewPCG(uint64(id), 0x9e3779b97f4a7c15))
	zipf := rand.NewZipf(r, 1.1, 1, uint64(cfg.Bench.KeySpace-1))

	for i := 0; i < cfg.Bench.Ops; i++ {
		if i%4096 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		k := zipf.Uint64()
		if i%4 == 0 {
			c.Put(k, uint64(i))
		} else {
			c.Get(k)
		}
	}

	if c.Size() > c.Capacity() {
		return fmt.Errorf("worker %d: size %d exceeds capacity %d", id, c.Size(), c.Capacity())
	}
	return nil
}

// ================= BENCHMARK =================

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := cfg.Logger()

	fmt.Println("\n================ LFU LOAD BENCHMARK =================")
	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Capacity     :", cfg.Capacity)
	fmt.Println("Key Space    :", cfg.Bench.KeySpace)
	fmt.Println("Workers      :", cfg.Bench.Workers)
	fmt.Println("Ops/Worker   :", cfg.Bench.Ops)
	fmt.Println("---------------------------------")

	m := &counters{}
	g, ctx := errgroup.WithContext(context.Background())

	start := time.Now()
	for i := 0; i < cfg.Bench.Workers; i++ {
		id := i
		g.Go(func() error { return run(ctx, id, cfg, m) })
	}
	if err := g.Wait(); err != nil {
		log.Error("benchmark failed", slog.Any("error", err))
		os.Exit(1)
	}
	duration := time.Since(start)

	totalOps := cfg.Bench.Workers * cfg.Bench.Ops
	gets := m.hits.Load() + m.misses.Load()

	fmt.Println("\n================ RESULTS =================")
	fmt.Printf("Total Operations : %d\n", totalOps)
	fmt.Printf("Total Time       : %v\n", duration)
	fmt.Printf("Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
	if gets > 0 {
		fmt.Printf("Hit Ratio        : %.2f%%\n", 100*float64(m.hits.Load())/float64(gets))
	}
	fmt.Printf("Evictions        : %d\n", m.evictions.Load())
	fmt.Println("=========================================")
}
