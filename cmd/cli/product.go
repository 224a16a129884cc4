package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botadmin/dto"
	"github.com/botadmin/services"
)

func newProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products",
	}
	cmd.AddCommand(newProductAddCmd(), newProductListCmd(), newProductShowCmd(), newProductDeleteCmd())
	return cmd
}

func newProductAddCmd() *cobra.Command {
	var req dto.CreateProductRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new product",
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := services.NewProductService(db).Create(req)
			if err != nil {
				return err
			}
			fmt.Printf("Product %q created (%s)\n", product.Name, product.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Product name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	return cmd
}

func newProductListCmd() *cobra.Command {
	var filter dto.CatalogFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := services.NewProductService(db).List(filter)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(products))
			for _, p := range products {
				rows = append(rows, []string{p.ID, p.Name, dash(p.Description)})
			}
			printTable([]string{"ID", "NAME", "DESCRIPTION"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.Search, "search", "", "Search by name or description")
	return cmd
}

func newProductShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a product by ID or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := services.NewProductService(db).Get(args[0])
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("product %q not found", args[0])
			}
			printField("ID", product.ID)
			printField("Name", product.Name)
			printField("Description", product.Description)
			printField("Created", product.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
}

func newProductDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewProductService(db)
			product, err := svc.Get(args[0])
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("product %q not found", args[0])
			}
			if err := svc.Delete(product.ID); err != nil {
				return err
			}
			fmt.Printf("Product %q deleted\n", product.Name)
			return nil
		},
	}
}
