package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botadmin/dto"
	"github.com/botadmin/services"
)

func newImplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "impl",
		Short: "Manage implementation details",
	}
	cmd.AddCommand(
		newImplAddCmd(),
		newImplListCmd(),
		newImplShowCmd(),
		newImplEditCmd(),
		newImplDeleteCmd(),
	)
	return cmd
}

func newImplAddCmd() *cobra.Command {
	var req dto.CreateImplRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Attach an implementation detail to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := services.NewImplService(db).Create(req)
			if err != nil {
				return err
			}
			fmt.Printf("Detail %q created (%s)\n", detail.Title, detail.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.ProjectID, "project", "", "Project ID")
	cmd.Flags().StringVar(&req.Type, "type", "", "Type (prompt, config, api_ref, note)")
	cmd.Flags().StringVar(&req.Title, "title", "", "Title")
	cmd.Flags().StringVar(&req.Content, "content", "", "Content")
	cmd.Flags().StringVar(&req.MetadataJSON, "metadata", "", "Metadata JSON")
	cmd.Flags().IntVar(&req.SortOrder, "sort-order", 0, "Sort order")
	return cmd
}

func newImplListCmd() *cobra.Command {
	var filter dto.ImplFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List implementation details of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := services.NewImplService(db).List(filter)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(details))
			for _, d := range details {
				rows = append(rows, []string{d.ID, string(d.Type), d.Title, fmt.Sprintf("%d", d.SortOrder)})
			}
			printTable([]string{"ID", "TYPE", "TITLE", "ORDER"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.ProjectID, "project", "", "Project ID")
	cmd.Flags().StringVar(&filter.Type, "type", "", "Filter by type")
	return cmd
}

func newImplShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an implementation detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := services.NewImplService(db).Get(args[0])
			if err != nil {
				return err
			}
			if detail == nil {
				return fmt.Errorf("detail %q not found", args[0])
			}
			printField("ID", detail.ID)
			printField("Project", detail.ProjectID)
			printField("Type", string(detail.Type))
			printField("Title", detail.Title)
			printField("Content", detail.Content)
			printField("Metadata", detail.MetadataJSON)
			return nil
		},
	}
}

func newImplEditCmd() *cobra.Command {
	var typ, title, content, metadata string
	var sortOrder int
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an implementation detail (only provided flags change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req dto.UpdateImplRequest
			if cmd.Flags().Changed("type") {
				req.Type = &typ
			}
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("content") {
				req.Content = &content
			}
			if cmd.Flags().Changed("metadata") {
				req.MetadataJSON = &metadata
			}
			if cmd.Flags().Changed("sort-order") {
				req.SortOrder = &sortOrder
			}

			detail, err := services.NewImplService(db).Update(args[0], req)
			if err != nil {
				return err
			}
			fmt.Printf("Detail %q updated\n", detail.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "Type (prompt, config, api_ref, note)")
	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&content, "content", "", "Content")
	cmd.Flags().StringVar(&metadata, "metadata", "", "Metadata JSON")
	cmd.Flags().IntVar(&sortOrder, "sort-order", 0, "Sort order")
	return cmd
}

func newImplDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an implementation detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewImplService(db)
			detail, err := svc.Get(args[0])
			if err != nil {
				return err
			}
			if detail == nil {
				return fmt.Errorf("detail %q not found", args[0])
			}
			if err := svc.Delete(detail.ID); err != nil {
				return err
			}
			fmt.Printf("Detail %q deleted\n", detail.Title)
			return nil
		},
	}
}
