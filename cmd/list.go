package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/domain"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/ui"
)

var (
	listFilter  string
	listSortBy  string
	listReverse bool
	listNoCards bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List assets with metrics and filtering",
	Aliases: []string{"ls"},
	Long: `List assets in a table, headed by the metric cards.

Filters:
  all           every asset (default)
  assigned      assets with status Assigned
  faulty        assets with status Faulty
  active-users  assets assigned to anyone who currently holds an asset

Examples:
  sat list
  sat list --filter faulty
  sat list --filter active-users --sort assignee
  sat list --sort name --reverse`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "all", "View filter (all, assigned, faulty, active-users)")
	listCmd.Flags().StringVar(&listSortBy, "sort", "seq", "Sort by field (seq, name, date, status, assignee)")
	listCmd.Flags().BoolVar(&listReverse, "reverse", false, "Reverse sort order")
	listCmd.Flags().BoolVar(&listNoCards, "no-cards", false, "Hide the metric cards")
}

func runList(cmd *cobra.Command, args []string) error {
	// If the flag was NOT changed by the user, use the config default
	if !cmd.Flags().Changed("filter") {
		listFilter = appConfig.DefaultFilter
	}
	if !cmd.Flags().Changed("sort") {
		listSortBy = appConfig.DefaultSort
	}
	if !cmd.Flags().Changed("reverse") {
		listReverse = appConfig.ReverseSort
	}

	filter, err := domain.ParseFilter(listFilter)
	if err != nil {
		fmt.Println(ui.FormatError(err.Error()))
		return err
	}

	assets := assetService.All()
	metrics := assetService.Metrics()
	rows, label := domain.Project(assets, filter)
	rows = domain.SortAssets(rows, listSortBy, listReverse)

	if !listNoCards {
		fmt.Println(ui.RenderMetricCards(metricCards(metrics), string(filter)))
		fmt.Println()
	}

	fmt.Println(ui.FormatTitle(label))
	fmt.Println()

	if len(rows) == 0 {
		if assetService.Count() == 0 {
			fmt.Println(ui.FormatWarning("No assets found"))
			fmt.Println(ui.FormatInfo("Add your first asset with: sat add \"My Asset\" -c Laptop"))
		} else {
			fmt.Println(ui.FormatWarning("No assets match this filter"))
		}
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "ID", Width: 5, Align: "right"},
		{Header: "Name", Width: 30, Align: "left"},
		{Header: "Category", Width: 12, Align: "left"},
		{Header: "Status", Width: 10, Align: "left"},
		{Header: "Assigned To", Width: 16, Align: "left"},
		{Header: "Added", Width: 12, Align: "left"},
	})

	for _, a := range rows {
		table.AddRow([]string{
			a.DisplaySeq(),
			truncate(a.Name, 30),
			truncate(a.Category, 12),
			a.Status,
			truncate(a.AssignedTo, 16),
			a.GetDisplayDate(appConfig.DisplayDateFormat),
		})
	}

	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Showing %d of %d assets", len(rows), metrics.Total)))

	return nil
}

// metricCards maps the computed metrics onto the four dashboard tiles.
func metricCards(m domain.Metrics) []ui.MetricCard {
	return []ui.MetricCard{
		{Title: "Total Assets", Value: m.Total, Filter: string(domain.FilterAll)},
		{Title: "Assigned", Value: m.Assigned, Filter: string(domain.FilterAssigned)},
		{Title: "Faulty", Value: m.Faulty, Filter: string(domain.FilterFaulty)},
		{Title: "Active Users", Value: m.ActiveUsers, Filter: string(domain.FilterActiveUsers)},
	}
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
