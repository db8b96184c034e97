package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

var RootCmd = &cobra.Command{
	Use:   "db-sync",
	Short: "A database synchronization tool",
	Long: `
  ____  ____    ______   __ _   _  ____
 |  _ \| __ )  / ___\ \ / /| \ | |/ ___|
 | | | |  _ \  \___ \ \ V / |  \| | |
 | |_| | |_) |  ___) |  | | | |\  | |___
 |____/|____/  |____/   |_| |_| \_|\____|

DB SYNC - Database Schema & Data Synchronizer
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Engine progress goes through the standard logger; keep the CLI
		// output clean unless the user asks for detail.
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./db-sync.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("db-sync")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
