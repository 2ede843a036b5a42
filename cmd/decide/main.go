// Command decide settles built-in integer predicates from the command line
// and prints one verdict per predicate and value.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Harshitk-cp/decidable/internal/buildconfig"
	"github.com/Harshitk-cp/decidable/internal/config"
	"github.com/Harshitk-cp/decidable/internal/domain"
	"github.com/Harshitk-cp/decidable/internal/functor"
	"github.com/Harshitk-cp/decidable/internal/implication"
	"github.com/Harshitk-cp/decidable/internal/predicate"
	"github.com/Harshitk-cp/decidable/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "decide"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		logLevel string
		equals   []int
	)

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Decide predicates over integers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to LOG_LEVEL")
	cmd.PersistentFlags().IntSliceVar(&equals, "equal", nil, "Also register equal_to_<c> for each constant")

	env := func(cmd *cobra.Command) (*zap.Logger, *service.CatalogService[int], error) {
		logger, err := newLogger(logLevel)
		if err != nil {
			return nil, nil, err
		}
		catalog, err := newCatalog(cmd.Context(), logger, equals)
		if err != nil {
			return nil, nil, err
		}
		return logger, catalog, nil
	}

	cmd.AddCommand(checkCmd(env), eachCmd(env), listCmd(env), versionCmd())
	return cmd
}

type envFunc func(cmd *cobra.Command) (*zap.Logger, *service.CatalogService[int], error)

func checkCmd(env envFunc) *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "check <int>...",
		Short: "Decide each predicate at each value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			logger, catalog, err := env(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			if len(names) == 0 {
				if names, err = catalog.Names(ctx); err != nil {
					return err
				}
			}

			checks := make([]service.Check[int], 0, len(values)*len(names))
			for _, v := range values {
				for _, name := range names {
					checks = append(checks, service.Check[int]{Predicate: name, Value: v})
				}
			}

			checker := service.NewCheckerService(catalog, logger)
			checker.SetParallelism(config.CheckParallelism())
			report, err := checker.Run(ctx, checks)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range report.Verdicts {
				fmt.Fprintf(out, "%-20s %8s  %s\n", v.Predicate, v.Value, verdictWord(v.Proved))
			}
			fmt.Fprintf(out, "%d proved, %d disproved (report %s)\n", report.Proved, report.Disproved, report.ID)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&names, "predicate", "p", nil, "Predicates to decide (default: all registered)")
	return cmd
}

// eachCmd decides whether a predicate holds at every value by lifting the
// implication evident -?> p over the whole list.
func eachCmd(env envFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "each <predicate> <int>...",
		Short: "Decide whether a predicate holds at every value",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			values, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			logger, catalog, err := env(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			a := domain.SingOf(values)
			evident := predicate.FromProvable[int, domain.Sing[int]](predicate.Evident[int]{})
			everything, ok := functor.NewEach(evident).Decide(a).Witness()
			if !ok {
				return fmt.Errorf("each(evident) refuted at %v", values)
			}

			viaCatalog := implication.DecImplCtx[int, domain.Sing[int], any](
				func(ctx context.Context, x domain.Sing[int], _ domain.Sing[int]) (domain.Decision[any], error) {
					return catalog.Decide(ctx, name, x)
				})
			lifted := functor.EachF[int, domain.Sing[int], any]{Limit: config.LiftParallelism()}.DMapCtx(viaCatalog)

			d, err := lifted(ctx, a, everything)
			if err != nil {
				return err
			}
			logger.Debug("lifted decision",
				zap.String("predicate", name),
				zap.Int("values", len(values)),
				zap.Bool("proved", d.IsProved()))

			fmt.Fprintf(cmd.OutOrStdout(), "each(%s) %s\n", name, verdictWord(d.IsProved()))
			return nil
		},
	}
	return cmd
}

func listCmd(env envFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered predicates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, catalog, err := env(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			names, err := catalog.Names(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildconfig.String(appName))
		},
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "" {
		level = config.LogLevel()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", arg)
		}
		values = append(values, n)
	}
	return values, nil
}

func verdictWord(proved bool) string {
	if proved {
		return "proved"
	}
	return "disproved"
}
