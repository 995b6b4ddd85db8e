package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/domain"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/ui"
)

var showCopyID bool

var showCmd = &cobra.Command{
	Use:   "show [query]",
	Short: "Show the full record of one asset",
	Long: `Show every field of an asset, including its opaque unique ID.

Examples:
  sat show
  sat show 12
  sat show "macbook" --copy-id`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showCopyID, "copy-id", false, "Copy the opaque ID to the clipboard")
}

func runShow(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	asset, err := selectAsset(query)
	if err != nil || asset == nil {
		return err
	}

	fmt.Println(ui.FormatTitle("Asset " + asset.DisplaySeq()))
	fmt.Println()
	printAsset(asset)
	fmt.Println(ui.RenderKeyValue("Unique ID", asset.ID))

	if showCopyID {
		if err := clipboard.WriteAll(asset.ID); err != nil {
			fmt.Println(ui.FormatWarning("Could not copy to clipboard: " + err.Error()))
		} else {
			fmt.Println()
			fmt.Println(ui.FormatSuccess("Unique ID copied to clipboard"))
		}
	}

	return nil
}

// printAsset renders the shared key/value detail block.
func printAsset(a *domain.Asset) {
	fmt.Println(ui.RenderKeyValue("ID", a.DisplaySeq()))
	fmt.Println(ui.RenderKeyValue("Name", a.Name))
	fmt.Println(ui.RenderKeyValue("Category", a.Category))
	fmt.Println(ui.RenderKeyValue("Status", a.Status))
	fmt.Println(ui.RenderKeyValue("Assigned To", a.AssignedTo))
	fmt.Println(ui.RenderKeyValue("Added", a.GetDisplayDate(appConfig.DisplayDateFormat)))
}
