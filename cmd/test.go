package cmd

import (
	"fmt"

	"db-sync/internal/endpoint"

	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test database connections",
	RunE: func(cmd *cobra.Command, args []string) error {
		srcDesc, err := resolveDescriptor(sourceDSN, "source_db")
		if err != nil {
			return err
		}
		tgtDesc, err := resolveDescriptor(targetDSN, "target_db")
		if err != nil {
			return err
		}

		fmt.Println("Testing source database connection...")
		source := endpoint.New(srcDesc, "source")
		if err := source.Connect(); err != nil {
			return fmt.Errorf("connection test failed: %w", err)
		}
		defer source.Close()
		srcCat, err := source.Tables()
		if err != nil {
			return err
		}
		fmt.Printf("✓ Source database connected successfully (%d tables found)\n", srcCat.Len())

		fmt.Println("Testing target database connection...")
		target := endpoint.New(tgtDesc, "target")
		if err := target.Connect(); err != nil {
			return fmt.Errorf("connection test failed: %w", err)
		}
		defer target.Close()
		tgtCat, err := target.Tables()
		if err != nil {
			return err
		}
		fmt.Printf("✓ Target database connected successfully (%d tables found)\n", tgtCat.Len())

		fmt.Println("✓ All database connections are working!")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(testCmd)

	testCmd.Flags().StringVarP(&sourceDSN, "source", "s", "", "Source database connection string")
	testCmd.Flags().StringVarP(&targetDSN, "target", "t", "", "Target database connection string")
}
