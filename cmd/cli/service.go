package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botadmin/dto"
	"github.com/botadmin/services"
)

func newServiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Manage services",
	}
	cmd.AddCommand(newServiceAddCmd(), newServiceListCmd(), newServiceShowCmd(), newServiceDeleteCmd())
	return cmd
}

func newServiceAddCmd() *cobra.Command {
	var req dto.CreateServiceRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new service",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := services.NewServiceService(db).Create(req)
			if err != nil {
				return err
			}
			fmt.Printf("Service %q created (%s)\n", service.Name, service.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Service name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	return cmd
}

func newServiceListCmd() *cobra.Command {
	var filter dto.CatalogFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List services",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogServices, err := services.NewServiceService(db).List(filter)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(catalogServices))
			for _, s := range catalogServices {
				rows = append(rows, []string{s.ID, s.Name, dash(s.Description)})
			}
			printTable([]string{"ID", "NAME", "DESCRIPTION"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.Search, "search", "", "Search by name or description")
	return cmd
}

func newServiceShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a service by ID or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := services.NewServiceService(db).Get(args[0])
			if err != nil {
				return err
			}
			if service == nil {
				return fmt.Errorf("service %q not found", args[0])
			}
			printField("ID", service.ID)
			printField("Name", service.Name)
			printField("Description", service.Description)
			printField("Created", service.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
}

func newServiceDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewServiceService(db)
			service, err := svc.Get(args[0])
			if err != nil {
				return err
			}
			if service == nil {
				return fmt.Errorf("service %q not found", args[0])
			}
			if err := svc.Delete(service.ID); err != nil {
				return err
			}
			fmt.Printf("Service %q deleted\n", service.Name)
			return nil
		},
	}
}
