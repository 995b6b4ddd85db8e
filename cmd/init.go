package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/config"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/ui"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/vault"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the asset vault",
	Long: `Create the data directory that holds the asset store and write a
default configuration file if none exists.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	v, err := vault.New()
	if err != nil {
		return fmt.Errorf("failed to determine vault location: %w", err)
	}

	if v.Exists() {
		fmt.Println(ui.FormatWarning("Vault already initialized"))
		fmt.Println(ui.FormatMuted("Location: " + v.RootPath))
		return nil
	}

	if err := v.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize vault: %w", err)
	}

	// Write the default config so users have something to edit
	cfg := config.DefaultConfig()
	if err := cfg.Save(v.ConfigPath); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	fmt.Println(ui.FormatSuccess("Vault initialized!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Data", v.RootPath))
	fmt.Println(ui.RenderKeyValue("Config", v.ConfigPath))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Add your first asset with: sat add \"MacBook Pro 16\""))

	return nil
}
