package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/services"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/ui"
)

var (
	editName       string
	editCategory   string
	editAssignedTo string
	editStatus     string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:     "edit [query]",
	Short:   "Edit an asset",
	Aliases: []string{"e"},
	Long: `Edit an asset selected by fuzzy search, sequence number, name or
assignee. Only flags you pass are changed; the asset's ID, sequence
number and creation date never change.

Examples:
  sat edit
  sat edit 12 --status Faulty
  sat edit "macbook" --assigned-to "Bob"
  sat edit "#7" --assigned-to "" --status Available`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "New asset name")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category")
	editCmd.Flags().StringVarP(&editAssignedTo, "assigned-to", "a", "", "New assignee (empty clears to Unassigned)")
	editCmd.Flags().StringVarP(&editStatus, "status", "s", "", "New status")
}

func runEdit(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	asset, err := selectAsset(query)
	if err != nil || asset == nil {
		return err
	}

	// Build the patch from the flags the user actually set
	var patch services.AssetPatch
	if cmd.Flags().Changed("name") {
		patch.Name = &editName
	}
	if cmd.Flags().Changed("category") {
		if !appConfig.HasCategory(editCategory) {
			fmt.Println(ui.FormatError("Unknown category: " + editCategory))
			fmt.Println(ui.FormatInfo("Valid categories: " + strings.Join(appConfig.Categories, ", ")))
			return fmt.Errorf("invalid --category")
		}
		patch.Category = &editCategory
	}
	if cmd.Flags().Changed("assigned-to") {
		patch.AssignedTo = &editAssignedTo
	}
	if cmd.Flags().Changed("status") {
		if !appConfig.HasStatus(editStatus) {
			fmt.Println(ui.FormatError("Unknown status: " + editStatus))
			fmt.Println(ui.FormatInfo("Valid statuses: " + strings.Join(appConfig.Statuses, ", ")))
			return fmt.Errorf("invalid --status")
		}
		patch.Status = &editStatus
	}

	if patch.Name == nil && patch.Category == nil && patch.AssignedTo == nil && patch.Status == nil {
		// Nothing to change; show the current record as prefill would
		fmt.Println(ui.FormatInfo(fmt.Sprintf("Update Asset (ID: %d)", asset.SequenceNumber)))
		printAsset(asset)
		fmt.Println(ui.FormatMuted("Pass --name, --category, --assigned-to or --status to change fields."))
		return nil
	}

	ctx := getContext()
	updated, err := assetService.Update(ctx, asset.ID, patch)
	if err != nil {
		fmt.Println(ui.FormatError("An error occurred while saving the asset."))
		return err
	}

	fmt.Println(ui.FormatSuccess("Asset updated successfully!"))
	fmt.Println()
	printAsset(updated)

	return nil
}
