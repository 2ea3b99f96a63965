// Command knighttour searches for closed knight's tours on a fixed
// board and appends every discovery to a text file, one block per tour.
//
// The process is a thin wrapper around the search package: it loads
// configuration (flags, optionally a YAML file), opens the append-only
// result sink, runs the parallel search, and prints the run summary.
// All algorithmic content lives in board/, knight/, and search/.
//
// Usage:
//
//	knighttour --width 6 --height 6 --starts 5,5 --patterns 4 \
//	  --max-tries 200000000 --output ClosedTour.txt
//
// Exit is non-zero on configuration errors (including a move-try
// budget not smaller than 8^(width×height)) and on any failure of the
// output sink - discovered tours must never be lost silently.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/search"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "knighttour",
	Short: "Randomized parallel search for closed knight's tours",
	Long: `knighttour runs a bounded, randomized, parallel backtracking search
for closed knight's tours: Hamiltonian knight paths whose last cell is
one knight's move from the start. Each attempt gives up after a fixed
move-try budget; discovered closed tours are appended to the output
file as text blocks. Tours are NOT deduplicated across attempts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "optional YAML configuration file")
	flags.Int("width", 6, "board width")
	flags.Int("height", 6, "board height")
	flags.StringSlice("starts", nil, "explicit start cells as x,y pairs (e.g. --starts 5,5 --starts 0,3)")
	flags.Int("start-count", 5, "number of derived start positions when --starts is empty")
	flags.Int("patterns", 4, "shuffle attempts per start position")
	flags.Uint64("max-tries", 200_000_000, "per-attempt move-try budget (must be < 8^(width*height))")
	flags.Int("swaps", 10, "random pairwise swaps applied to the move table per attempt")
	flags.Int64("seed", 0, "RNG seed (0 = derive from current time)")
	flags.Int("workers", 0, "max concurrent start positions (0 = one goroutine per start)")
	flags.String("output", "ClosedTour.txt", "append-only result file for closed tours")
	flags.Bool("verbose", false, "enable debug logging (reports open tours too)")

	for _, name := range []string{
		"width", "height", "starts", "start-count", "patterns",
		"max-tries", "swaps", "seed", "workers", "output", "verbose",
	} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err) // programming error: flag name typo
		}
	}
}

// loadOptions assembles search.Options from viper (flags + config file).
func loadOptions() (search.Options, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			return search.Options{}, fmt.Errorf("reading config %s: %w", configPath, err)
		}
	}

	opts := search.Options{
		Width:        viper.GetInt("width"),
		Height:       viper.GetInt("height"),
		StartCount:   viper.GetInt("start-count"),
		Patterns:     viper.GetInt("patterns"),
		MaxTries:     viper.GetUint64("max-tries"),
		ShuffleSwaps: viper.GetInt("swaps"),
		Seed:         viper.GetInt64("seed"),
		Workers:      viper.GetInt("workers"),
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	starts, err := parseStarts(viper.GetStringSlice("starts"))
	if err != nil {
		return search.Options{}, err
	}
	opts.Starts = starts

	return opts, opts.Validate()
}

// parseStarts converts "x,y" strings into cells.
func parseStarts(raw []string) ([]board.Cell, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	out := make([]board.Cell, 0, len(raw))
	for _, s := range raw {
		parts := strings.Split(s, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("start %q: want x,y", s)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
		y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("start %q: want integer x,y", s)
		}
		out = append(out, board.Cell{X: x, Y: y})
	}

	return out, nil
}

func run(ctx context.Context) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if viper.GetBool("verbose") {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	opts, err := loadOptions()
	if err != nil {
		return err
	}
	if !opts.ClosedPossible() {
		log.Warn().
			Int("width", opts.Width).
			Int("height", opts.Height).
			Msg("odd cell count: closed tours are mathematically impossible on this board")
	}

	outPath := viper.GetString("output")
	sink, err := os.OpenFile(outPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening result file %s: %w", outPath, err)
	}

	log.Info().
		Int("width", opts.Width).Int("height", opts.Height).
		Int("patterns", opts.Patterns).Uint64("max_tries", opts.MaxTries).
		Int64("seed", opts.Seed).Str("output", outPath).
		Msg("starting search")

	totals, solveErr := search.Solve(ctx, opts, search.NewRecorder(sink, log))

	// The sink is append-only; a failed close may mean a lost tour, so
	// it is as fatal as a failed write.
	closeErr := sink.Close()

	log.Info().
		Uint64("found", totals.Found).
		Uint64("opened", totals.Opened).
		Uint64("closed", totals.Closed).
		Msg("search finished; tours are not deduplicated, some may repeat")

	if solveErr != nil {
		return solveErr
	}
	if closeErr != nil {
		return fmt.Errorf("closing result file %s: %w", outPath, closeErr)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "knighttour:", err)
		os.Exit(1)
	}
}
