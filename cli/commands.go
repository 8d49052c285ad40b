package cli

import (
	"fmt"
	"log/slog"
	"time"

	"stockboard/domain"

	"github.com/spf13/cobra"
)

var sortFields = map[string]bool{"": true, "name": true, "price": true, "quantity": true, "value": true}

func init() {
	// add
	var addIn domain.ProductInput
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := domain.Validate(addIn); err != nil {
				printFieldErrors(cmd.ErrOrStderr(), addIn)
				return fmt.Errorf("product not added: %w", err)
			}
			start := time.Now()
			p := productStore.AddProduct(domain.FormFromInput(addIn).Input())
			slog.Info("product added", "product_id", p.ID, "duration_ms", time.Since(start).Milliseconds())
			if err := printJSON(cmd.OutOrStdout(), p); err != nil {
				slog.Warn("product added but not printed", "product_id", p.ID, "error", err)
				return fmt.Errorf("product %s added, printing failed: %w", p.ID, err)
			}
			return nil
		},
	}
	productFlags(addCmd, &addIn)
	rootCmd.AddCommand(addCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get product by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := productStore.Get(args[0])
			if err != nil {
				if domain.IsProductNotFoundError(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return nil
				}
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	rootCmd.AddCommand(getCmd)

	// update
	var upIn domain.ProductInput
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			p, err := productStore.Get(id)
			if err != nil {
				return err
			}

			in := p.Input()
			flags := cmd.Flags()
			if flags.Changed("name") {
				in.Name = upIn.Name
			}
			if flags.Changed("category") {
				in.Category = upIn.Category
			}
			if flags.Changed("quantity") {
				in.Quantity = upIn.Quantity
			}
			if flags.Changed("min-quantity") {
				in.MinQuantity = upIn.MinQuantity
			}
			if flags.Changed("price") {
				in.Price = upIn.Price
			}
			if flags.Changed("description") {
				in.Description = upIn.Description
			}

			if err := domain.Validate(in); err != nil {
				printFieldErrors(cmd.ErrOrStderr(), in)
				return fmt.Errorf("product %s not updated: %w", id, err)
			}

			start := time.Now()
			updated, ok := productStore.UpdateProduct(withInput(p, domain.FormFromInput(in).Input()))
			if !ok {
				// removed between the read and the write; the store treats this as a no-op
				slog.Warn("update skipped", "product_id", id, "reason", "not found")
				fmt.Fprintln(cmd.ErrOrStderr(), domain.NewProductNotFoundError(id))
				return nil
			}
			slog.Info(
				"product updated",
				"product_id", id,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			if err := printJSON(cmd.OutOrStdout(), updated); err != nil {
				slog.Warn("product updated but not printed", "product_id", id, "error", err)
				return fmt.Errorf("product %s updated, printing failed: %w", id, err)
			}
			return nil
		},
	}
	productFlags(updateCmd, &upIn)
	rootCmd.AddCommand(updateCmd)

	// list
	var filter domain.ListFilter
	var lStatus, lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := filter
			if lStatus != "" {
				status, ok := domain.ParseStockStatus(lStatus)
				if !ok {
					return fmt.Errorf("unknown status %q", lStatus)
				}
				f.Status = status
			}
			if !sortFields[f.SortBy] {
				return fmt.Errorf("unknown sort field %q", f.SortBy)
			}
			out := productStore.List(f)
			if lOutput == "json" {
				return printJSON(cmd.OutOrStdout(), out)
			}
			if len(out) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no products")
				return nil
			}
			printProducts(cmd.OutOrStdout(), out)
			return nil
		},
	}
	listCmd.Flags().StringVar(&filter.Search, "search", "", "match name or category")
	listCmd.Flags().StringVar(&filter.Category, "category", "", "category")
	listCmd.Flags().StringVar(&lStatus, "status", "", "stock status: in_stock|low_stock|out_of_stock")
	listCmd.Flags().StringVar(&filter.SortBy, "sort-by", "", "sort field: name|price|quantity|value")
	listCmd.Flags().StringVar(&filter.Order, "order", "asc", "sort order")
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	rootCmd.AddCommand(listCmd)

	// delete
	var force bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			out := cmd.OutOrStdout()
			if !force && !confirm(out, input, fmt.Sprintf("Delete %s?", id)) {
				fmt.Fprintln(out, "aborted")
				return nil
			}
			if !productStore.DeleteProduct(id) {
				slog.Warn("delete skipped", "product_id", id, "reason", "not found")
				fmt.Fprintf(out, "no product with id %s, nothing deleted\n", id)
				return nil
			}
			slog.Info("product deleted", "product_id", id)
			fmt.Fprintln(out, "deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)

	// reset
	var resetForce bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the seed products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !resetForce && !confirm(out, input, "Discard all changes and restore the seed products?") {
				fmt.Fprintln(out, "aborted")
				return nil
			}
			productStore.ResetStock()
			n := len(productStore.Products())
			slog.Info("stock reset", "products", n)
			fmt.Fprintf(out, "stock reset (%d products)\n", n)
			return nil
		},
	}
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "skip confirmation")
	rootCmd.AddCommand(resetCmd)
}

func productFlags(cmd *cobra.Command, in *domain.ProductInput) {
	cmd.Flags().StringVar(&in.Name, "name", "", "name")
	cmd.Flags().StringVar(&in.Category, "category", "", "category")
	cmd.Flags().IntVar(&in.Quantity, "quantity", 0, "units in stock")
	cmd.Flags().IntVar(&in.MinQuantity, "min-quantity", 0, "reorder threshold")
	cmd.Flags().Float64Var(&in.Price, "price", 0, "unit price")
	cmd.Flags().StringVar(&in.Description, "description", "", "description")
}

func withInput(p domain.Product, in domain.ProductInput) domain.Product {
	p.Name = in.Name
	p.Category = in.Category
	p.Quantity = in.Quantity
	p.MinQuantity = in.MinQuantity
	p.Price = in.Price
	p.Description = in.Description
	return p
}
