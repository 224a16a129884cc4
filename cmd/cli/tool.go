package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"github.com/botadmin/services"
)

func newToolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool",
		Short: "Manage the tool registry",
	}
	cmd.AddCommand(newToolAddCmd(), newToolListCmd(), newToolShowCmd(), newToolDeleteCmd())
	return cmd
}

func toolCategoryHelp() string {
	names := make([]string, 0, len(models.ToolCategories))
	for _, c := range models.ToolCategories {
		names = append(names, string(c))
	}
	return "Category (" + strings.Join(names, ", ") + ")"
}

func newToolAddCmd() *cobra.Command {
	var req dto.CreateToolRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := services.NewToolService(db).Create(req)
			if err != nil {
				return err
			}
			fmt.Printf("Tool %q created (%s)\n", tool.Name, tool.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Tool name")
	cmd.Flags().StringVar(&req.Category, "category", "", toolCategoryHelp())
	cmd.Flags().StringVar(&req.URL, "url", "", "Tool URL")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	return cmd
}

func newToolListCmd() *cobra.Command {
	var filter dto.ToolFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			tools, err := services.NewToolService(db).List(filter)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(tools))
			for _, t := range tools {
				rows = append(rows, []string{t.ID, t.Name, string(t.Category), dash(t.URL)})
			}
			printTable([]string{"ID", "NAME", "CATEGORY", "URL"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.Category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Search by name or description")
	return cmd
}

func newToolShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a tool by ID or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := services.NewToolService(db).Get(args[0])
			if err != nil {
				return err
			}
			if tool == nil {
				return fmt.Errorf("tool %q not found", args[0])
			}
			printField("ID", tool.ID)
			printField("Name", tool.Name)
			printField("Category", string(tool.Category))
			printField("URL", tool.URL)
			printField("Description", tool.Description)
			printField("Created", tool.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
}

func newToolDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewToolService(db)
			tool, err := svc.Get(args[0])
			if err != nil {
				return err
			}
			if tool == nil {
				return fmt.Errorf("tool %q not found", args[0])
			}
			if err := svc.Delete(tool.ID); err != nil {
				return err
			}
			fmt.Printf("Tool %q deleted\n", tool.Name)
			return nil
		},
	}
}
