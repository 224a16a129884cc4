package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botadmin/dto"
	"github.com/botadmin/services"
)

func newIndustryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "industry",
		Short: "Manage industries",
	}
	cmd.AddCommand(newIndustryAddCmd(), newIndustryListCmd(), newIndustryShowCmd(), newIndustryDeleteCmd())
	return cmd
}

func newIndustryAddCmd() *cobra.Command {
	var req dto.CreateIndustryRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new industry",
		RunE: func(cmd *cobra.Command, args []string) error {
			industry, err := services.NewIndustryService(db).Create(req)
			if err != nil {
				return err
			}
			fmt.Printf("Industry %q created (%s)\n", industry.Name, industry.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Industry name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	return cmd
}

func newIndustryListCmd() *cobra.Command {
	var filter dto.CatalogFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List industries",
		RunE: func(cmd *cobra.Command, args []string) error {
			industries, err := services.NewIndustryService(db).List(filter)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(industries))
			for _, ind := range industries {
				rows = append(rows, []string{ind.ID, ind.Name, dash(ind.Description)})
			}
			printTable([]string{"ID", "NAME", "DESCRIPTION"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.Search, "search", "", "Search by name or description")
	return cmd
}

func newIndustryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an industry by ID or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			industry, err := services.NewIndustryService(db).Get(args[0])
			if err != nil {
				return err
			}
			if industry == nil {
				return fmt.Errorf("industry %q not found", args[0])
			}
			printField("ID", industry.ID)
			printField("Name", industry.Name)
			printField("Description", industry.Description)
			printField("Created", industry.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
}

func newIndustryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an industry and its niches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewIndustryService(db)
			industry, err := svc.Get(args[0])
			if err != nil {
				return err
			}
			if industry == nil {
				return fmt.Errorf("industry %q not found", args[0])
			}
			if err := svc.Delete(industry.ID); err != nil {
				return err
			}
			fmt.Printf("Industry %q deleted\n", industry.Name)
			return nil
		},
	}
}
