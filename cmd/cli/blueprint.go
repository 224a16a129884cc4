package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botadmin/dto"
	"github.com/botadmin/services"
)

func newBlueprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blueprint",
		Short: "Manage reusable project blueprints",
	}
	cmd.AddCommand(
		newBlueprintAddCmd(),
		newBlueprintListCmd(),
		newBlueprintShowCmd(),
		newBlueprintAddStepCmd(),
		newBlueprintAddToolCmd(),
		newBlueprintAssignIndustryCmd(),
		newBlueprintRemoveIndustryCmd(),
		newBlueprintAssignNicheCmd(),
		newBlueprintRemoveNicheCmd(),
		newBlueprintApplyCmd(),
		newBlueprintDeleteCmd(),
	)
	return cmd
}

// resolveBlueprintRef maps an id-or-name argument to a blueprint detail
func resolveBlueprintRef(ref string) (*dto.BlueprintDetail, error) {
	blueprint, err := services.NewBlueprintService(db).Get(ref)
	if err != nil {
		return nil, err
	}
	if blueprint == nil {
		return nil, fmt.Errorf("blueprint %q not found", ref)
	}
	return blueprint, nil
}

func newBlueprintAddCmd() *cobra.Command {
	var req dto.CreateBlueprintRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new blueprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			blueprint, err := services.NewBlueprintService(db).Create(req)
			if err != nil {
				return err
			}
			fmt.Printf("Blueprint %q created (%s)\n", blueprint.Name, blueprint.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Blueprint name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	return cmd
}

func newBlueprintListCmd() *cobra.Command {
	var filter dto.BlueprintFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blueprints",
		RunE: func(cmd *cobra.Command, args []string) error {
			blueprints, err := services.NewBlueprintService(db).List(filter)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(blueprints))
			for _, b := range blueprints {
				rows = append(rows, []string{b.ID, b.Name, dash(b.Description)})
			}
			printTable([]string{"ID", "NAME", "DESCRIPTION"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.Search, "search", "", "Search")
	return cmd
}

func newBlueprintShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a blueprint with steps, tools and tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blueprint, err := resolveBlueprintRef(args[0])
			if err != nil {
				return err
			}

			printField("ID", blueprint.ID)
			printField("Name", blueprint.Name)
			printField("Description", blueprint.Description)

			if len(blueprint.Steps) > 0 {
				fmt.Println("\nSteps:")
				for _, s := range blueprint.Steps {
					fmt.Printf("  %d. %s", s.StepOrder, s.Title)
					if s.Description != "" {
						fmt.Printf(": %s", s.Description)
					}
					fmt.Println()
				}
			}
			if len(blueprint.Tools) > 0 {
				fmt.Println("\nTools:")
				for _, t := range blueprint.Tools {
					fmt.Printf("  - %s", t.ToolName)
					if t.RoleInBlueprint != "" {
						fmt.Printf(" (%s)", t.RoleInBlueprint)
					}
					fmt.Println()
				}
			}
			if len(blueprint.Industries) > 0 {
				fmt.Println("\nIndustries:")
				for _, tag := range blueprint.Industries {
					fmt.Printf("  - %s\n", tag.IndustryName)
				}
			}
			if len(blueprint.Niches) > 0 {
				fmt.Println("\nNiches:")
				for _, tag := range blueprint.Niches {
					fmt.Printf("  - %s (%s)\n", tag.NicheName, tag.IndustryName)
				}
			}
			return nil
		},
	}
}

func newBlueprintAddStepCmd() *cobra.Command {
	var req dto.AddStepRequest
	cmd := &cobra.Command{
		Use:   "add-step <blueprintId>",
		Short: "Append a step to a blueprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blueprint, err := resolveBlueprintRef(args[0])
			if err != nil {
				return err
			}
			step, err := services.NewBlueprintService(db).AddStep(blueprint.ID, req)
			if err != nil {
				return err
			}
			fmt.Printf("Step %d %q added to %q\n", step.StepOrder, step.Title, blueprint.Name)
			return nil
		},
	}
	cmd.Flags().IntVar(&req.StepOrder, "order", 0, "Step order number")
	cmd.Flags().StringVar(&req.Title, "title", "", "Step title")
	cmd.Flags().StringVar(&req.Description, "description", "", "Step description")
	return cmd
}

func newBlueprintAddToolCmd() *cobra.Command {
	var req dto.AddBlueprintToolRequest
	cmd := &cobra.Command{
		Use:   "add-tool <blueprintId>",
		Short: "Link a tool to a blueprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blueprint, err := resolveBlueprintRef(args[0])
			if err != nil {
				return err
			}
			if _, err := services.NewBlueprintService(db).AddTool(blueprint.ID, req); err != nil {
				return err
			}
			fmt.Printf("Tool linked to %q\n", blueprint.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.ToolRef, "tool", "", "Tool ID or name")
	cmd.Flags().StringVar(&req.RoleInBlueprint, "role", "", "Role in blueprint")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes")
	return cmd
}

func newBlueprintAssignIndustryCmd() *cobra.Command {
	var industryRef string
	cmd := &cobra.Command{
		Use:   "assign-industry <blueprintId>",
		Short: "Tag a blueprint with an industry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blueprint, err := resolveBlueprintRef(args[0])
			if err != nil {
				return err
			}
			if _, err := services.NewBlueprintService(db).AssignIndustry(blueprint.ID, industryRef); err != nil {
				return err
			}
			fmt.Printf("Industry tagged on %q\n", blueprint.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&industryRef, "industry", "", "Industry ID or name")
	return cmd
}

func newBlueprintRemoveIndustryCmd() *cobra.Command {
	var industryRef string
	cmd := &cobra.Command{
		Use:   "remove-industry <blueprintId>",
		Short: "Remove an industry tag from a blueprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blueprint, err := resolveBlueprintRef(args[0])
			if err != nil {
				return err
			}
			if err := services.NewBlueprintService(db).RemoveIndustry(blueprint.ID, industryRef); err != nil {
				return err
			}
			fmt.Printf("Industry tag removed from %q\n", blueprint.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&industryRef, "industry", "", "Industry ID or name")
	return cmd
}

func newBlueprintAssignNicheCmd() *cobra.Command {
	var nicheRef string
	cmd := &cobra.Command{
		Use:   "assign-niche <blueprintId>",
		Short: "Tag a blueprint with a niche",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blueprint, err := resolveBlueprintRef(args[0])
			if err != nil {
				return err
			}
			if _, err := services.NewBlueprintService(db).AssignNiche(blueprint.ID, nicheRef); err != nil {
				return err
			}
			fmt.Printf("Niche tagged on %q\n", blueprint.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&nicheRef, "niche", "", "Niche ID or name")
	return cmd
}

func newBlueprintRemoveNicheCmd() *cobra.Command {
	var nicheRef string
	cmd := &cobra.Command{
		Use:   "remove-niche <blueprintId>",
		Short: "Remove a niche tag from a blueprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blueprint, err := resolveBlueprintRef(args[0])
			if err != nil {
				return err
			}
			if err := services.NewBlueprintService(db).RemoveNiche(blueprint.ID, nicheRef); err != nil {
				return err
			}
			fmt.Printf("Niche tag removed from %q\n", blueprint.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&nicheRef, "niche", "", "Niche ID or name")
	return cmd
}

func newBlueprintApplyCmd() *cobra.Command {
	var req dto.ApplyBlueprintRequest
	cmd := &cobra.Command{
		Use:   "apply <blueprintId>",
		Short: "Create a project from a blueprint for a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.NewBlueprintService(db).Apply(args[0], req)
			if err != nil {
				return err
			}
			fmt.Printf("Project %q created from blueprint %q (%s)\n",
				result.Project.Name, result.Blueprint.Name, result.Project.ID)
			if n := len(result.Blueprint.Tools); n > 0 {
				fmt.Printf("%d tool(s) copied to the project\n", n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&req.CompanyRef, "company", "", "Company ID or name")
	cmd.Flags().StringVar(&req.ProjectName, "project-name", "", "Override project name")
	return cmd
}

func newBlueprintDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a blueprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blueprint, err := resolveBlueprintRef(args[0])
			if err != nil {
				return err
			}
			if err := services.NewBlueprintService(db).Delete(blueprint.ID); err != nil {
				return err
			}
			fmt.Printf("Blueprint %q deleted\n", blueprint.Name)
			return nil
		},
	}
}
