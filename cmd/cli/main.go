package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/botadmin/config"
	"github.com/botadmin/database"
)

// db is the shared store handle, opened once before any subcommand runs
var db *database.Database

var rootCmd = &cobra.Command{
	Use:   "botadmin",
	Short: "Business catalog and client project administration",
	Long: `botadmin manages the business catalog (industries, niches, products,
services), client companies and their catalog assignments, the tool
registry, delivery projects with progress tracking and implementation
details, and reusable project blueprints.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()

		var err error
		db, err = database.New(config.DatabaseURL())
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		return db.Migrate()
	},
}

func init() {
	rootCmd.AddCommand(
		newCompanyCmd(),
		newIndustryCmd(),
		newNicheCmd(),
		newProductCmd(),
		newServiceCmd(),
		newToolCmd(),
		newProjectCmd(),
		newProgressCmd(),
		newImplCmd(),
		newBlueprintCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
