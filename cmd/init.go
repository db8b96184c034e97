package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initFile string

const sampleConfig = `# db-sync configuration
source_db:
  type: sqlite
  path: source.db

target_db:
  type: sqlite
  path: target.db

# For networked engines:
# source_db:
#   type: postgres        # mysql | postgres | sqlserver | oracle
#   host: localhost
#   port: 5432
#   user: app
#   password: secret
#   database: shop

sync_options:
  # Empty list means sync all tables
  tables: []
  truncate_target: false
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(initFile); err == nil {
			return fmt.Errorf("file %s already exists", initFile)
		}
		if err := os.WriteFile(initFile, []byte(sampleConfig), 0o644); err != nil {
			return fmt.Errorf("failed to create configuration file: %w", err)
		}
		fmt.Printf("Created sample configuration file: %s\n", initFile)
		fmt.Println("Edit the file to configure your databases and run 'db-sync sync' to start synchronization.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initFile, "file", "f", "db-sync.yaml", "Output file path")
}
