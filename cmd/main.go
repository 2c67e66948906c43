package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.toml"

func main() {
	rootCmd := &cobra.Command{
		Use:   "salon",
		Short: "SMC-SalonService: календарь записей и админка салона",
	}
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "путь к TOML конфигурации")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервер",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			return runServer(path)
		},
	}
}
