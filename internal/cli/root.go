// Package cli is the travelbook command line: the web server plus operator tools.
package cli

import (
	"database/sql"
	"fmt"
	"slices"

	intconfig "travelbook/internal/config"

	"github.com/spf13/cobra"
)

// ValidFormats are the output formats of the operator commands.
var ValidFormats = []string{"text", "json"}

// RootOptions holds global flags and the hooks commands use to reach the database.
type RootOptions struct {
	Format string

	LoadEnv func() intconfig.Env
	OpenDB  func(env intconfig.Env) (*sql.DB, error)

	env intconfig.Env
}

func defaultOptions() *RootOptions {
	return &RootOptions{
		LoadEnv: intconfig.LoadEnv,
		OpenDB:  intconfig.ConnectDB,
	}
}

// NewRootCommand creates the travelbook command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultOptions())
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "travelbook",
		Short: "Travel booking site",
		Long:  "Serves the travel booking site and manages its bookings from the command line.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			opts.env = opts.LoadEnv()
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewBookingsCommand(opts))
	return cmd
}

func (o *RootOptions) open() (*sql.DB, error) {
	db, err := o.OpenDB(o.env)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
