package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/config"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the sat configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appVault.ConfigPath

		// Write the defaults first if the file does not exist yet
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := config.DefaultConfig().Save(path); err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}
		}

		fmt.Println(ui.FormatInfo("Opening config: " + path))

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}
