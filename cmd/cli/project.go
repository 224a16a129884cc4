package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botadmin/dto"
	"github.com/botadmin/services"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(
		newProjectAddCmd(),
		newProjectListCmd(),
		newProjectShowCmd(),
		newProjectEditCmd(),
		newProjectAdvanceCmd(),
		newProjectStatusCmd(),
		newProjectAssignToolCmd(),
		newProjectDeleteCmd(),
	)
	return cmd
}

func newProjectAddCmd() *cobra.Command {
	var companyRef string
	var req dto.CreateProjectRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new project for a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			if companyRef != "" {
				company, err := resolveCompanyRef(companyRef)
				if err != nil {
					return err
				}
				req.CompanyID = company.ID
			}
			project, err := services.NewProjectService(db).Create(req)
			if err != nil {
				return err
			}
			fmt.Printf("Project %q created for %s (%s)\n", project.Name, project.CompanyName, project.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&companyRef, "company", "", "Company ID or name")
	cmd.Flags().StringVar(&req.Name, "name", "", "Project name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&req.StartDate, "start-date", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.TargetDate, "target-date", "", "Target date (YYYY-MM-DD)")
	return cmd
}

func newProjectListCmd() *cobra.Command {
	var companyRef string
	var filter dto.ProjectFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if companyRef != "" {
				company, err := resolveCompanyRef(companyRef)
				if err != nil {
					return err
				}
				filter.CompanyID = company.ID
			}
			projects, err := services.NewProjectService(db).List(filter)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{p.ID, p.Name, p.CompanyName, string(p.Status), dash(p.TargetDate)})
			}
			printTable([]string{"ID", "NAME", "COMPANY", "STATUS", "TARGET"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&companyRef, "company", "", "Filter by company ID or name")
	cmd.Flags().StringVar(&filter.Status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Search by name")
	return cmd
}

func newProjectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a project with tools, details and timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := services.NewProjectService(db).Get(args[0])
			if err != nil {
				return err
			}
			if project == nil {
				return fmt.Errorf("project %q not found", args[0])
			}

			printField("ID", project.ID)
			printField("Name", project.Name)
			printField("Company", project.CompanyName)
			printField("Status", string(project.Status))
			printField("Description", project.Description)
			printField("Start", project.StartDate)
			printField("Target", project.TargetDate)
			printField("Completed", project.CompletedDate)

			if len(project.Tools) > 0 {
				fmt.Println("\nTools:")
				for _, t := range project.Tools {
					fmt.Printf("  - %s [%s]\n", t.ToolName, t.ToolCategory)
				}
			}
			if len(project.Details) > 0 {
				fmt.Println("\nImplementation details:")
				for _, d := range project.Details {
					fmt.Printf("  - [%s] %s (%s)\n", d.Type, d.Title, d.ID)
				}
			}
			if len(project.Timeline) > 0 {
				fmt.Println("\nTimeline:")
				for _, l := range project.Timeline {
					fmt.Printf("  %s  %s/%s  %s\n", l.LoggedAt.Format("2006-01-02"), l.Phase, l.Status, dash(l.Note))
				}
			}
			return nil
		},
	}
}

func newProjectEditCmd() *cobra.Command {
	var name, description, startDate, targetDate, completedDate string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a project (only provided flags change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req dto.UpdateProjectRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("start-date") {
				req.StartDate = &startDate
			}
			if cmd.Flags().Changed("target-date") {
				req.TargetDate = &targetDate
			}
			if cmd.Flags().Changed("completed-date") {
				req.CompletedDate = &completedDate
			}

			project, err := services.NewProjectService(db).Update(args[0], req)
			if err != nil {
				return err
			}
			fmt.Printf("Project %q updated\n", project.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&targetDate, "target-date", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&completedDate, "completed-date", "", "Completed date (YYYY-MM-DD)")
	return cmd
}

func newProjectAdvanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advance <id>",
		Short: "Advance a project to the next status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.NewProjectService(db).Advance(args[0])
			if err != nil {
				return err
			}
			if !result.Advanced {
				fmt.Printf("Project %q not advanced: %s\n", result.Project.Name, result.Reason)
				return nil
			}
			fmt.Printf("Project %q advanced to %s\n", result.Project.Name, result.NewStatus)
			return nil
		},
	}
}

func newProjectStatusCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "status <id>",
		Short: "Set a project status directly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := services.NewProjectService(db).SetStatus(args[0], status)
			if err != nil {
				return err
			}
			fmt.Printf("Project %q status set to %s\n", project.Name, project.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "set", "", "New status")
	return cmd
}

func newProjectAssignToolCmd() *cobra.Command {
	var req dto.AssignToolRequest
	cmd := &cobra.Command{
		Use:   "assign-tool <projectId>",
		Short: "Assign a tool to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewProjectService(db)
			project, err := svc.Get(args[0])
			if err != nil {
				return err
			}
			if project == nil {
				return fmt.Errorf("project %q not found", args[0])
			}
			if _, err := svc.AssignTool(project.ID, req); err != nil {
				return err
			}
			fmt.Printf("Tool assigned to %q\n", project.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.ToolRef, "tool", "", "Tool ID or name")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes about tool usage")
	return cmd
}

func newProjectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewProjectService(db)
			project, err := svc.Get(args[0])
			if err != nil {
				return err
			}
			if project == nil {
				return fmt.Errorf("project %q not found", args[0])
			}
			if err := svc.Delete(project.ID); err != nil {
				return err
			}
			fmt.Printf("Project %q deleted\n", project.Name)
			return nil
		},
	}
}
