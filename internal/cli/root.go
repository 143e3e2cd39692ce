// Package cli implements the calc command line tool.
package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/safe-calc/internal/calc"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/safe-calc/pkg/config/env"
	"github.com/spf13/cobra"
)

var Version = "0.1.0"

// ErrFailed is returned when a command ran but some evaluation or check did not pass.
// The details are already printed, so main only needs the exit code.
var ErrFailed = errors.New("one or more expressions failed")

// StoreOpener opens the history store used by the history and eval --save commands.
type StoreOpener func(ctx context.Context) (storage.Store, error)

type options struct {
	maxDepth      int
	noStaticCheck bool
	openStore     StoreOpener
}

func (o *options) engine() *calc.Engine {
	return calc.New(
		calc.WithMaxDepth(o.maxDepth),
		calc.WithStaticDivisionCheck(!o.noStaticCheck),
	)
}

type Option func(*options)

// WithStoreOpener replaces the environment-configured history store.
func WithStoreOpener(open StoreOpener) Option {
	return func(o *options) {
		o.openStore = open
	}
}

func NewRootCmd(opts ...Option) *cobra.Command {
	o := &options{openStore: OpenStoreFromEnv}
	for _, opt := range opts {
		opt(o)
	}

	root := &cobra.Command{
		Use:           "calc",
		Short:         "Safe arithmetic expression calculator",
		Long:          "calc evaluates + - * / expressions with parentheses and unary signs without executing input as code.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().IntVar(&o.maxDepth, "max-depth", calc.DefaultMaxDepth, "maximum nesting of parentheses and unary operators (0 disables)")
	root.PersistentFlags().BoolVar(&o.noStaticCheck, "no-static-check", false, "skip the textual division-by-zero pre-check")

	root.AddCommand(
		newEvalCmd(o),
		newReplCmd(o),
		newCheckCmd(o),
		newHistoryCmd(o),
	)

	return root
}

// OpenStoreFromEnv builds the history store from STORAGE_TYPE and friends,
// reading a .env file first when one is present.
func OpenStoreFromEnv(ctx context.Context) (storage.Store, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), ".env"); err != nil {
		slog.Debug("No .env loaded, using process environment", "error", err)
	}

	cfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}

	store, _, err := factory.NewStore(ctx, cfg)
	return store, err
}
