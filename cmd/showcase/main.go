package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jasperayawan/oop-showcase-go/internal/config"
	"github.com/jasperayawan/oop-showcase-go/internal/logging"
)

type app struct {
	cfg    config.Config
	logger *zap.Logger

	verbose bool
	seed    int64
}

type demo struct {
	name  string
	short string
	run   func(a *app, w io.Writer) error
}

var demos = []demo{
	{"coffee", "Coffee shop: owner, store, menu and sales", (*app).runCoffee},
	{"shop", "E-commerce: catalog, carts, orders and order events", (*app).runShop},
	{"family", "Family: parents, children and the family roster", (*app).runFamily},
	{"game", "Game characters: equipment, battles and game stats", (*app).runGame},
	{"library", "Library: books, magazines, members and loans", (*app).runLibrary},
	{"bank", "Mini bank: accounts, deposits, withdrawals and transfers", (*app).runBank},
	{"shapes", "Shapes: areas, perimeters and the shape manager", (*app).runShapes},
	{"fleet", "Vehicle fleet: cars, motorcycles and trucks", (*app).runFleet},
}

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:          "showcase",
		Short:        "Object-oriented modelling showcase",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			level := a.cfg.LogLevel
			if a.verbose {
				level = "debug"
			}
			logger, err := logging.New(level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	root.PersistentFlags().Int64Var(&a.seed, "seed", cfg.Seed, "random seed for archer rolls and shape moves (0 = time based)")

	for _, d := range demos {
		root.AddCommand(&cobra.Command{
			Use:   d.name,
			Short: d.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return d.run(a, cmd.OutOrStdout())
			},
		})
	}
	root.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every showcase in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for i, d := range demos {
				if i > 0 {
					fmt.Fprintln(w)
				}
				if err := d.run(a, w); err != nil {
					return fmt.Errorf("%s: %w", d.name, err)
				}
			}
			return nil
		},
	})
	return root
}

func (a *app) rng() *rand.Rand {
	seed := uint64(a.seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
}

func lines(w io.Writer, ls []string) {
	for _, l := range ls {
		fmt.Fprintln(w, l)
	}
}
