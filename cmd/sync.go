package cmd

import (
	"fmt"
	"time"

	"db-sync/internal/endpoint"
	"db-sync/internal/engine"
	"db-sync/internal/schema"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	sourceDSN  string
	targetDSN  string
	syncTables []string
	schemaOnly bool
	dataOnly   bool
	truncate   bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize schema and data from source to target",
	RunE: func(cmd *cobra.Command, args []string) error {
		if schemaOnly && dataOnly {
			return fmt.Errorf("--schema-only and --data-only are mutually exclusive")
		}

		srcDesc, err := resolveDescriptor(sourceDSN, "source_db")
		if err != nil {
			return err
		}
		tgtDesc, err := resolveDescriptor(targetDSN, "target_db")
		if err != nil {
			return err
		}

		// Table filter strategy: Flag > Config > All
		tables := syncTables
		if len(tables) == 0 {
			tables = viper.GetStringSlice("sync_options.tables")
		}
		if !truncate {
			truncate = viper.GetBool("sync_options.truncate_target")
		}

		fmt.Println("Connecting to databases...")
		source := endpoint.New(srcDesc, "source")
		if err := source.Connect(); err != nil {
			return err
		}
		defer source.Close()

		target := endpoint.New(tgtDesc, "target")
		if err := target.Connect(); err != nil {
			return err
		}
		defer target.Close()

		s := engine.New(source, target)

		// Progress bar sized by the source row count of the selected tables.
		var barActive bool
		if !schemaOnly {
			srcCat, err := source.Tables()
			if err != nil {
				return err
			}
			if total := countSourceRows(source, srcCat.Filter(tables)); total > 0 {
				uiprogress.Start()
				bar := uiprogress.AddBar(total).AppendCompleted().PrependElapsed()
				bar.PrependFunc(func(b *uiprogress.Bar) string {
					return "Copying rows: "
				})
				s.OnRow = func() { bar.Incr() }
				barActive = true
			}
		}

		start := time.Now()
		var syncErr error
		switch {
		case schemaOnly:
			fmt.Println("Synchronizing schema...")
			syncErr = s.SyncSchema(tables)
		case dataOnly:
			fmt.Println("Synchronizing data...")
			syncErr = s.SyncData(tables, truncate)
		default:
			fmt.Println("Synchronizing schema and data...")
			syncErr = s.SyncAll(tables, truncate)
		}
		if barActive {
			uiprogress.Stop()
		}

		printReport(s.Results(), time.Since(start))

		if syncErr != nil {
			return fmt.Errorf("synchronization failed: %w", syncErr)
		}
		fmt.Println("Synchronization completed successfully!")
		return nil
	},
}

// resolveDescriptor applies the Flag > Config precedence for one endpoint.
func resolveDescriptor(flagValue, configKey string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	cfg, err := GetEndpointConfig(configKey)
	if err != nil {
		return "", fmt.Errorf("source and target database configurations are required (use --source/--target or a config file): %w", err)
	}
	return cfg.Descriptor()
}

func countSourceRows(ep *endpoint.Endpoint, cat *schema.Catalog) int {
	total := 0
	d := ep.Dialect()
	for _, t := range cat.Tables {
		var n int
		if err := ep.DB().QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", d.QuoteIdent(t.Name))).Scan(&n); err == nil {
			total += n
		}
	}
	return total
}

func printReport(results []schema.SyncResult, elapsed time.Duration) {
	if len(results) == 0 {
		return
	}
	fmt.Println("\nSummary Report:")
	for i, r := range results {
		icon := "✓"
		switch r.Status {
		case "FAILED":
			icon = "✗"
		case "SKIPPED":
			icon = "-"
		}
		fmt.Printf("[%s] [%02d/%02d] %-20s : %s", icon, i+1, len(results), r.TableName, r.Status)
		if r.Status == "OK" {
			fmt.Printf(" (%d rows)", r.Rows)
		}
		fmt.Println()
		if r.ErrorMsg != "" {
			fmt.Printf("    └ %s\n", r.ErrorMsg)
		}
	}
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Time Elapsed: %s\n", elapsed)
}

func init() {
	RootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVarP(&sourceDSN, "source", "s", "", "Source database connection string")
	syncCmd.Flags().StringVarP(&targetDSN, "target", "t", "", "Target database connection string")
	syncCmd.Flags().StringSliceVar(&syncTables, "tables", []string{}, "Specific tables to sync (comma-separated)")
	syncCmd.Flags().BoolVar(&schemaOnly, "schema-only", false, "Sync schema only")
	syncCmd.Flags().BoolVar(&dataOnly, "data-only", false, "Sync data only")
	syncCmd.Flags().BoolVar(&truncate, "truncate", false, "Truncate target tables before syncing data")
}
