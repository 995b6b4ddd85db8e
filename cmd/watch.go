package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/domain"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/ui"
)

var watchQuiet bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live view that re-renders when the store changes",
	Long: `Watch the vault for changes to the asset store and re-render the
metric cards and table whenever another sat process writes to it.

Use --quiet to suppress the change notifications.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress change notifications")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the vault directory: editors and other processes replace the
	// slot files wholesale, so watching the files themselves would break
	// after the first rename.
	if err := watcher.Add(appVault.RootPath); err != nil {
		return fmt.Errorf("failed to watch vault: %w", err)
	}

	if !watchQuiet {
		fmt.Println(ui.FormatInfo("Watching: " + appVault.RootPath))
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	renderOnce(ctx)

	// Debounce so a save that touches both slots renders once
	var debounce *time.Timer
	debounceDuration := 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDuration, func() {
					if !watchQuiet {
						fmt.Println(ui.FormatInfo("Store changed, re-rendering..."))
					}
					renderOnce(ctx)
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println(ui.FormatWarning("Watcher error: " + err.Error()))
		}
	}
}

// renderOnce reloads both slots from disk and prints the cards plus the
// full table.
func renderOnce(ctx context.Context) {
	assets, _, err := storeRepo.Load(ctx)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to reload store: " + err.Error()))
		return
	}

	metrics := domain.ComputeMetrics(assets)
	rows, label := domain.Project(assets, domain.FilterAll)

	fmt.Println(ui.RenderMetricCards(metricCards(metrics), string(domain.FilterAll)))
	fmt.Println()
	fmt.Println(ui.FormatTitle(label))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "ID", Width: 5, Align: "right"},
		{Header: "Name", Width: 30, Align: "left"},
		{Header: "Status", Width: 10, Align: "left"},
		{Header: "Assigned To", Width: 16, Align: "left"},
	})
	for _, a := range rows {
		table.AddRow([]string{
			a.DisplaySeq(),
			truncate(a.Name, 30),
			a.Status,
			truncate(a.AssignedTo, 16),
		})
	}
	fmt.Print(table.Render())
	fmt.Println()
}
