// Command hydrocarbon enumerates saturated hydrocarbon isomorphism classes
// for a range of carbon counts and prints the hydrogen histogram the core
// pipeline's output is pinned against.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dkvasnikov/hydrocarbon/adjmat"
	"github.com/dkvasnikov/hydrocarbon/dfs"
	"github.com/dkvasnikov/hydrocarbon/enumerate"
	"github.com/dkvasnikov/hydrocarbon/internal/cmdutil"
	"github.com/dkvasnikov/hydrocarbon/internal/obslog"
	"github.com/dkvasnikov/hydrocarbon/internal/runconfig"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Int("min-n", 2, "Smallest carbon count to enumerate")
	rootCmd.Flags().Int("max-n", 8, "Largest carbon count to enumerate")
	rootCmd.Flags().Int("fixed-digits", 7, "Upper-triangle bits fixed per skeleton-search shard")
	rootCmd.Flags().Int("max-num-feats", 1024, "Feature buckets per stage-2 goroutine (goroutines = ceil(buckets / value))")
	rootCmd.Flags().Int("workers", 0, "Worker count hint (0 = number of CPUs)")
	rootCmd.Flags().String("log-level", "info", "Logging level: debug, info, warn, error")
	rootCmd.Flags().Bool("rings", false, "Print a ring-count summary after each histogram")
}

var rootCmd = &cobra.Command{
	Use:   "hydrocarbon",
	Short: "Enumerate saturated hydrocarbon isomorphism classes by carbon count.",
	Run: func(cmd *cobra.Command, args []string) {
		workers := cmdutil.GetInt(cmd, "workers")
		opts := []runconfig.Option{
			runconfig.WithRange(cmdutil.GetInt(cmd, "min-n"), cmdutil.GetInt(cmd, "max-n")),
			runconfig.WithFixedDigits(cmdutil.GetInt(cmd, "fixed-digits")),
			runconfig.WithMaxNumFeats(cmdutil.GetInt(cmd, "max-num-feats")),
			runconfig.WithLogLevel(cmdutil.GetString(cmd, "log-level")),
			runconfig.WithRings(cmdutil.GetBool(cmd, "rings")),
		}
		if workers > 0 {
			opts = append(opts, runconfig.WithWorkers(workers))
		}

		cfg, err := runconfig.New(opts...)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		log := obslog.New(cfg.LogLevel)
		run(context.Background(), log, cfg)
	},
}

// run drives the enumeration sweep. A panic surfacing from enumerate.All
// reflects a programming-invariant violation (§7): recovered here, logged
// fatally, and turned into the nonzero exit code a log.Fatal-on-boundary convention produces.
func run(ctx context.Context, log *logrus.Logger, cfg runconfig.Config) {
	entry := obslog.Run(log, cfg.MinN, cfg.FixedDigits, cfg.MaxNumFeats, cfg.Workers)
	defer func() {
		if r := recover(); r != nil {
			entry.Fatalf("hydrocarbon: fatal invariant violation: %v", r)
		}
	}()

	for n := cfg.MinN; n <= cfg.MaxN; n++ {
		hydrocarbons, err := enumerate.All(ctx, n, cfg.FixedDigits, cfg.MaxNumFeats, cfg.Workers)
		if err != nil {
			entry.Fatalf("hydrocarbon: enumerate.All(n=%d): %v", n, err)
		}
		printHistogram(n, hydrocarbons)
		if cfg.Rings {
			printRingSummary(hydrocarbons)
		}
	}
}

func printHistogram(n int, hydrocarbons []adjmat.Hydrocarbon) {
	counts := make(map[int]int)
	for _, h := range hydrocarbons {
		counts[h.CountHydrogen()]++
	}

	fmt.Printf("===== [C = %d] =====\n", n)
	fmt.Println("#H: #Hydrocarbons")
	for hNum := 0; hNum <= 2*(n+1); hNum += 2 {
		fmt.Printf("%2d: %d\n", hNum, counts[hNum])
	}
}

func printRingSummary(hydrocarbons []adjmat.Hydrocarbon) {
	byRings := dfs.SummarizeRings(hydrocarbons)
	fmt.Println("#rings: #Hydrocarbons")
	for ringCount := 0; ringCount <= maxKey(byRings); ringCount++ {
		fmt.Printf("%2d: %d\n", ringCount, byRings[ringCount])
	}
}

func maxKey(m map[int]int) int {
	top := 0
	for k := range m {
		if k > top {
			top = k
		}
	}
	return top
}
