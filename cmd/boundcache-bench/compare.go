package main

import (
	"math/rand"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/cobra"

	"github.com/IvanBrykalov/boundcache/cache"
)

var compareFlags struct {
	limit int64
	ops   int
	keys  int
	zipfS float64
	zipfV float64
	decay time.Duration
	seed  int64
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare hit rates against a hashicorp/golang-lru baseline",
	Long: `Compare replays one Zipf trace through count-bounded LRU and LFU
caches and through hashicorp/golang-lru with the same entry budget,
then reports the hit rate of each.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare()
	},
}

func init() {
	f := compareCmd.Flags()
	f.Int64Var(&compareFlags.limit, "limit", 10_000, "entry budget for every contender")
	f.IntVar(&compareFlags.ops, "ops", 500_000, "trace length")
	f.IntVar(&compareFlags.keys, "keys", 100_000, "keyspace size")
	f.Float64Var(&compareFlags.zipfS, "zipf-s", 1.1, "Zipf s > 1 (skew)")
	f.Float64Var(&compareFlags.zipfV, "zipf-v", 1.0, "Zipf v")
	f.DurationVar(&compareFlags.decay, "decay", -1, "LFU decay interval (negative disables)")
	f.Int64Var(&compareFlags.seed, "seed", 1, "random seed")
	rootCmd.AddCommand(compareCmd)
}

func runCompare() error {
	// One shared trace so every contender sees identical accesses.
	r := rand.New(rand.NewSource(compareFlags.seed))
	zipf := rand.NewZipf(r, compareFlags.zipfS, compareFlags.zipfV, uint64(compareFlags.keys-1))
	trace := make([]string, compareFlags.ops)
	for i := range trace {
		trace[i] = "k:" + strconv.FormatUint(zipf.Uint64(), 10)
	}

	ourLRU := cache.NewCountLRU[string, struct{}](compareFlags.limit)
	ourLFU, _ := cache.NewCountLFU[string, struct{}](compareFlags.limit, compareFlags.decay)
	report("count-lru", replayBound(ourLRU, trace))
	report("count-lfu", replayBound(ourLFU, trace))

	base, err := lru.New[string, struct{}](int(compareFlags.limit))
	if err != nil {
		return err
	}
	hits := 0
	for _, k := range trace {
		if _, ok := base.Get(k); ok {
			hits++
		} else {
			base.Add(k, struct{}{})
		}
	}
	report("hashicorp-lru", float64(hits)/float64(len(trace)))
	return nil
}

// replayBound feeds the trace through a boundcache instance in
// read-through fashion and returns the hit rate.
func replayBound(c cache.Cache[string, struct{}], trace []string) float64 {
	hits := 0
	for _, k := range trace {
		if _, ok := c.Get(k); ok {
			hits++
		} else {
			// Admission errors are impossible here: keys are non-empty and
			// count-bounded caches never derive costs.
			_, _ = c.Put(k, struct{}{})
		}
	}
	return float64(hits) / float64(len(trace))
}

func report(name string, hitRate float64) {
	logger.Info().
		Str("contender", name).
		Float64("hit_rate", hitRate).
		Msg("trace replayed")
}
