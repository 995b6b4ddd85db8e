package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/ui"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [query]",
	Short: "Delete an asset",
	Long: `Delete an asset selected by fuzzy search, sequence number, name or
assignee. Sequence numbers are never reused after deletion.

Examples:
  sat delete
  sat delete 12
  sat delete "old thinkpad" --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	asset, err := selectAsset(query)
	if err != nil || asset == nil {
		return err
	}

	if !deleteYes {
		fmt.Println(ui.FormatWarning("You are about to delete:"))
		fmt.Printf("  %s %s %s\n",
			ui.StyleAccent.Render(asset.DisplaySeq()),
			ui.StyleBold.Render(asset.Name),
			ui.StyleMuted.Render("("+asset.Status+", "+asset.AssignedTo+")"))
		fmt.Println()

		if !confirm(ui.StyleError.Render("Delete asset? (y/n): ")) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	ctx := getContext()
	removed, err := assetService.Delete(ctx, asset.ID)
	if err != nil {
		fmt.Println(ui.FormatError("An error occurred while saving the asset."))
		return err
	}
	if !removed {
		// Already gone; deleting what is absent is not an error
		fmt.Println(ui.FormatMuted("Asset was already deleted."))
		return nil
	}

	fmt.Println(ui.FormatSuccess("Asset deleted successfully!"))
	return nil
}
