package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/adapters/repository"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/services"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/config"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/ui"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/vault"
)

var (
	// Global vault instance
	appVault *vault.Vault

	// Loaded configuration
	appConfig *config.Config

	// Repository backing the two persisted slots
	storeRepo *repository.FileStoreRepository

	// Services
	allocator    *services.Allocator
	assetService *services.AssetService
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sat",
	Short: "SAT - Smart Asset Tracking System",
	Long: ui.StyleTitle.Render("SAT") + " - Smart Asset Tracking System\n\n" +
		"A fast terminal inventory tracker for IT assets.\n" +
		"Track what you own, who it is assigned to, and what is broken.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads config, opens the vault and wires the services
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for init command
	if cmd.Name() == "init" {
		return nil
	}

	v, err := vault.New()
	if err != nil {
		return fmt.Errorf("failed to initialize vault: %w", err)
	}
	appVault = v

	if !appVault.Exists() {
		fmt.Println(ui.FormatError("Vault not initialized"))
		fmt.Println(ui.FormatInfo("Run 'sat init' to initialize the vault"))
		os.Exit(1)
	}

	cfg, err := config.Load(appVault.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg
	ui.SetTheme(appConfig.ColorTheme)

	storeRepo = repository.NewFileStoreRepository(appVault)

	// Load both slots once, then hand the state to the services
	assets, counter, err := storeRepo.Load(getContext())
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	allocator = services.NewAllocator(storeRepo, counter)
	assetService = services.NewAssetService(storeRepo, allocator, assets)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
