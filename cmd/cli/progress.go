package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botadmin/dto"
	"github.com/botadmin/services"
)

func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Track project progress",
	}
	cmd.AddCommand(newProgressLogCmd(), newProgressTimelineCmd())
	return cmd
}

func newProgressLogCmd() *cobra.Command {
	var req dto.CreateProgressRequest
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a progress entry for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := services.NewProgressService(db).Log(req)
			if err != nil {
				return err
			}
			fmt.Printf("Progress logged: %s/%s (%s)\n", entry.Phase, entry.Status, entry.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.ProjectID, "project", "", "Project ID")
	cmd.Flags().StringVar(&req.Phase, "phase", "", "Phase (discovery, design, build, test, deploy, handoff)")
	cmd.Flags().StringVar(&req.Status, "status", "", "Status (in_progress, completed, blocked)")
	cmd.Flags().StringVar(&req.Note, "note", "", "Note")
	cmd.Flags().StringVar(&req.LoggedBy, "by", "", "Logged by")
	return cmd
}

func newProgressTimelineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeline <projectId>",
		Short: "Show the progress timeline of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeline, err := services.NewProgressService(db).Timeline(args[0])
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(timeline))
			for _, l := range timeline {
				rows = append(rows, []string{
					l.LoggedAt.Format("2006-01-02 15:04"),
					string(l.Phase),
					string(l.Status),
					dash(l.Note),
					dash(l.LoggedBy),
				})
			}
			printTable([]string{"LOGGED", "PHASE", "STATUS", "NOTE", "BY"}, rows)
			return nil
		},
	}
}
