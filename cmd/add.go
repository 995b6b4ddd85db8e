package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/domain"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/services"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/ui"
)

var (
	addCategory   string
	addAssignedTo string
	addStatus     string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:     "add [name]",
	Short:   "Add a new asset",
	Aliases: []string{"new"},
	Long: `Add a new asset to the tracker.

The asset receives a permanent sequence number and is stamped with the
current time. A blank assignee is stored as "Unassigned".

Examples:
  sat add "MacBook Pro 16" --category Laptop --status Assigned --assigned-to "Alice"
  sat add "Dell U2720Q" -c Monitor
  sat add "Spare keyboard" -c Peripheral -s Available`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Asset category")
	addCmd.Flags().StringVarP(&addAssignedTo, "assigned-to", "a", "", "Person the asset is assigned to")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", domain.StatusAvailable, "Asset status")
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	if addCategory == "" {
		fmt.Println(ui.FormatError("Category is required"))
		fmt.Println(ui.FormatInfo("Valid categories: " + strings.Join(appConfig.Categories, ", ")))
		return fmt.Errorf("missing --category")
	}
	if !appConfig.HasCategory(addCategory) {
		fmt.Println(ui.FormatError("Unknown category: " + addCategory))
		fmt.Println(ui.FormatInfo("Valid categories: " + strings.Join(appConfig.Categories, ", ")))
		return fmt.Errorf("invalid --category")
	}
	if !appConfig.HasStatus(addStatus) {
		fmt.Println(ui.FormatError("Unknown status: " + addStatus))
		fmt.Println(ui.FormatInfo("Valid statuses: " + strings.Join(appConfig.Statuses, ", ")))
		return fmt.Errorf("invalid --status")
	}

	req := services.CreateAssetRequest{
		Name:       name,
		Category:   addCategory,
		AssignedTo: addAssignedTo,
		Status:     addStatus,
	}

	ctx := getContext()
	asset, err := assetService.Create(ctx, req)
	if err != nil {
		fmt.Println(ui.FormatError("An error occurred while saving the asset."))
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Asset added successfully with ID %d!", asset.SequenceNumber)))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("ID", asset.DisplaySeq()))
	fmt.Println(ui.RenderKeyValue("Name", asset.Name))
	fmt.Println(ui.RenderKeyValue("Category", asset.Category))
	fmt.Println(ui.RenderKeyValue("Status", asset.Status))
	fmt.Println(ui.RenderKeyValue("Assigned To", asset.AssignedTo))
	fmt.Println(ui.RenderKeyValue("Added", asset.GetDisplayDate(appConfig.DisplayDateFormat)))

	return nil
}
