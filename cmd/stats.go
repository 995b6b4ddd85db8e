package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/domain"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/ui"
)

var statsHTML bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tracker metrics and distributions",
	Long: `Analyze the asset store and display useful statistics.

Includes:
  - The four dashboard counters
  - Category distribution
  - Top assignees
  - Most recently added asset

With --html, also writes an interactive status chart to the vault.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsHTML, "html", false, "Write an HTML status chart into the vault")
}

func runStats(cmd *cobra.Command, args []string) error {
	assets := assetService.All()
	metrics := assetService.Metrics()

	// 1. Data Aggregation
	categoryCounts := make(map[string]int)
	statusCounts := make(map[string]int)
	assigneeCounts := make(map[string]int)

	var lastAdded time.Time
	var lastName string

	for _, a := range assets {
		categoryCounts[a.Category]++
		statusCounts[a.Status]++

		if _, active := domain.ActiveUserKey(a.AssignedTo); active {
			assigneeCounts[a.AssignedTo]++
		}

		if t, err := time.Parse(time.RFC3339, a.DateAdded); err == nil && t.After(lastAdded) {
			lastAdded = t
			lastName = a.Name
		}
	}

	// 2. Render Output
	fmt.Println()
	fmt.Println(ui.FormatTitle("Asset Tracker Analytics"))
	fmt.Println()

	// --- Counters (Tabular) ---
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 4, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Total Assets:"), metrics.Total)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Assigned:"), metrics.Assigned)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Faulty:"), metrics.Faulty)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Active Users:"), metrics.ActiveUsers)
	w.Flush()
	fmt.Println()

	if lastName != "" {
		fmt.Printf("%s %s (%s)\n",
			ui.StyleMuted.Render("Last added:"),
			lastName,
			lastAdded.Format("Jan 02"))
		fmt.Println()
	}

	// --- Distributions (Bar Charts) ---
	renderBarChart("Categories", categoryCounts)
	renderBarChart("Top Assignees", assigneeCounts)

	// 3. Optional HTML export
	if statsHTML {
		path := filepath.Join(appVault.RootPath, "status-chart.html")
		if err := writeStatusChart(path, statusCounts); err != nil {
			return fmt.Errorf("failed to write HTML chart: %w", err)
		}
		fmt.Println(ui.FormatSuccess("Status chart written to " + path))
	}

	return nil
}

// renderBarChart displays a horizontal bar chart of the top 5 entries
func renderBarChart(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	fmt.Println(ui.StyleHeader.Render(title))

	type pair struct {
		Name  string
		Count int
	}
	var sorted []pair
	for k, v := range counts {
		sorted = append(sorted, pair{k, v})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Name < sorted[j].Name
	})

	limit := 5
	if len(sorted) < limit {
		limit = len(sorted)
	}

	maxCount := sorted[0].Count
	barWidth := 20

	for i := 0; i < limit; i++ {
		p := sorted[i]
		length := int(math.Ceil(float64(p.Count) / float64(maxCount) * float64(barWidth)))
		bar := strings.Repeat("█", length)

		fmt.Printf("%s %-15s %s\n",
			ui.StyleAccent.Render(bar),
			p.Name,
			ui.StyleMuted.Render(fmt.Sprintf("%d", p.Count)),
		)
	}
	fmt.Println()
}

// writeStatusChart renders the status distribution as an interactive
// HTML bar chart inside the vault.
func writeStatusChart(path string, statusCounts map[string]int) error {
	statuses := make([]string, 0, len(statusCounts))
	for s := range statusCounts {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)

	data := make([]opts.BarData, 0, len(statuses))
	for _, s := range statuses {
		data = append(data, opts.BarData{Value: statusCounts[s]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Assets by Status",
			Subtitle: "Smart Asset Tracking System",
		}),
	)
	bar.SetXAxis(statuses).AddSeries("Assets", data)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return bar.Render(f)
}
