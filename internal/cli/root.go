// Package cli wires the storefront commands.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/config"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitCommandError = 2
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// GetExitCode extracts the exit code from err; unknown errors map to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// NewRootCommand creates the storefront command tree on top of cfg.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Demo storefront with Home, Shop, Flix, Food and Cart pages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&cfg.CatalogSource, "catalog", cfg.CatalogSource, "catalog source (sqlite|static)")
	cmd.PersistentFlags().StringVar(&cfg.CatalogDBPath, "catalog-db", cfg.CatalogDBPath, "SQLite path for the sqlite catalog")

	cmd.AddCommand(NewServeCommand(cfg))
	cmd.AddCommand(NewCatalogCommand(cfg))

	return cmd
}

// openCatalog builds the configured catalog. The returned close function
// releases the database, if any.
func openCatalog(cfg *config.Config) (catalog.Catalog, func() error, error) {
	switch cfg.CatalogSource {
	case config.CatalogStatic:
		return catalog.NewStatic(), func() error { return nil }, nil
	case config.CatalogSQLite:
		repo, err := catalog.NewRepository(cfg.CatalogDBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := repo.RunMigrations(); err != nil {
			repo.Close()
			return nil, nil, err
		}
		return catalog.NewCached(repo), repo.Close, nil
	default:
		return nil, nil, &ExitError{
			Code: ExitCommandError,
			Err:  fmt.Errorf("unknown catalog source %q: must be %q or %q", cfg.CatalogSource, config.CatalogSQLite, config.CatalogStatic),
		}
	}
}

func writef(w io.Writer, format string, args ...interface{}) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
