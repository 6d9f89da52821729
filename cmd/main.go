package main

import (
	"fmt"
	"log/slog"
	"os"

	cache "github.com/krisalay/lfu-cache"
	"github.com/krisalay/lfu-cache/internal/config"
)

// ================= METRICS =================
type Metrics struct {
	hits      int
	misses    int
	evictions int
}

func (m *Metrics) Hit()      { m.hits++ }
func (m *Metrics) Miss()     { m.misses++ }
func (m *Metrics) Eviction() { m.evictions++ }

func (m *Metrics) Print() {
	fmt.Println("\n==================== METRICS ====================")
	fmt.Printf("HITS      : %d\n", m.hits)
	fmt.Printf("MISSES    : %d\n", m.misses)
	fmt.Printf("EVICTIONS : %d\n", m.evictions)
}

func show(c *cache.LFUCache[int, int], keys ...int) {
	for _, k := range keys {
		if f, ok := c.Frequency(k); ok {
			v, _ := c.Peek(k)
			fmt.Printf("CACHE  → key %d = %d (freq %d)\n", k, v, f)
		} else {
			fmt.Printf("CACHE  → key %d absent\n", k)
		}
	}
}

// ================= MAIN =================

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := cfg.Logger()

	fmt.Println("\n==================== SYSTEM BOOT ====================")
	fmt.Println("EVICTION POLICY : LFU (ties → LRU)")
	fmt.Println("CAPACITY        :", cfg.Capacity, "keys")

	metrics := &Metrics{}

	c, err := cache.New[int, int](cfg.Capacity,
		cache.WithMetrics(metrics),
		cache.WithLogger(log),
	)
	if err != nil {
		log.Error("create cache", slog.Any("error", err))
		os.Exit(1)
	}

	// ====================================================
	fmt.Println("\n==================== 1) FILL ====================")
	c.Put(1, 1)
	c.Put(2, 2)
	c.Put(2, 4)
	c.Put(3, 3)
	show(c, 1, 2, 3)

	// ====================================================
	fmt.Println("\n==================== 2) EVICTION ====================")
	c.Put(4, 4)
	fmt.Println("CACHE  → PUT 4 (1 and 3 share freq 1, 1 is older)")
	show(c, 1, 2, 3, 4)

	// ====================================================
	fmt.Println("\n==================== 3) FREQUENCY WINS ====================")
	c.Put(4, 5)
	c.Put(5, 5)
	fmt.Println("CACHE  → PUT 4 again, PUT 5 (3 is the only key at freq 1)")
	show(c, 2, 3, 4, 5)

	// ====================================================
	fmt.Println("\n==================== 4) MISS MATERIALIZES ====================")
	v := c.Get(42)
	fmt.Println("CACHE  → GET 42 =", v)
	show(c, 42)

	// ====================================================
	metrics.Print()
	fmt.Println("SIZE      :", c.Size(), "/", c.Capacity())
}
