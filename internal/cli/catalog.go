package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fjod/go_storefront/internal/config"
	"github.com/spf13/cobra"
)

func NewCatalogCommand(cfg *config.Config) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the products offered on the shop page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return &ExitError{Code: ExitCommandError, Err: fmt.Errorf("invalid format %q: must be text or json", format)}
			}

			c, closeCatalog, err := openCatalog(cfg)
			if err != nil {
				return err
			}
			defer closeCatalog()

			products, err := c.GetAllProducts(cmd.Context())
			if err != nil {
				return fmt.Errorf("list products: %w", err)
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(products)
			}

			for _, p := range products {
				price := "$" + strconv.FormatFloat(p.Price, 'f', -1, 64)
				if err := writef(out, "%d\t%s\t%s\t%s\n", p.ID, p.Title, price, p.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json)")
	return cmd
}
