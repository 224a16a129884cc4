package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botadmin/dto"
	"github.com/botadmin/services"
)

func newNicheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "niche",
		Short: "Manage niches",
	}
	cmd.AddCommand(newNicheAddCmd(), newNicheListCmd(), newNicheShowCmd(), newNicheDeleteCmd())
	return cmd
}

// resolveIndustryRef maps an id-or-name industry flag to an industry id
func resolveIndustryRef(ref string) (string, error) {
	industry, err := services.NewIndustryService(db).Get(ref)
	if err != nil {
		return "", err
	}
	if industry == nil {
		return "", fmt.Errorf("industry %q not found", ref)
	}
	return industry.ID, nil
}

func newNicheAddCmd() *cobra.Command {
	var industryRef string
	var req dto.CreateNicheRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new niche under an industry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if industryRef != "" {
				id, err := resolveIndustryRef(industryRef)
				if err != nil {
					return err
				}
				req.IndustryID = id
			}
			niche, err := services.NewNicheService(db).Create(req)
			if err != nil {
				return err
			}
			fmt.Printf("Niche %q created under %s (%s)\n", niche.Name, niche.IndustryName, niche.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&industryRef, "industry", "", "Industry ID or name")
	cmd.Flags().StringVar(&req.Name, "name", "", "Niche name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	return cmd
}

func newNicheListCmd() *cobra.Command {
	var industryRef string
	var filter dto.NicheFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List niches",
		RunE: func(cmd *cobra.Command, args []string) error {
			if industryRef != "" {
				id, err := resolveIndustryRef(industryRef)
				if err != nil {
					return err
				}
				filter.IndustryID = id
			}
			niches, err := services.NewNicheService(db).List(filter)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(niches))
			for _, n := range niches {
				rows = append(rows, []string{n.ID, n.Name, n.IndustryName, dash(n.Description)})
			}
			printTable([]string{"ID", "NAME", "INDUSTRY", "DESCRIPTION"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&industryRef, "industry", "", "Filter by industry ID or name")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Search by name or description")
	return cmd
}

func newNicheShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a niche by ID or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			niche, err := services.NewNicheService(db).Get(args[0])
			if err != nil {
				return err
			}
			if niche == nil {
				return fmt.Errorf("niche %q not found", args[0])
			}
			printField("ID", niche.ID)
			printField("Name", niche.Name)
			printField("Industry", niche.IndustryName)
			printField("Description", niche.Description)
			printField("Created", niche.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
}

func newNicheDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a niche",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewNicheService(db)
			niche, err := svc.Get(args[0])
			if err != nil {
				return err
			}
			if niche == nil {
				return fmt.Errorf("niche %q not found", args[0])
			}
			if err := svc.Delete(niche.ID); err != nil {
				return err
			}
			fmt.Printf("Niche %q deleted\n", niche.Name)
			return nil
		},
	}
}
