package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/domain"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/ui"
)

// selectAsset resolves a query to a single asset. With no query it opens
// the fuzzy finder over the whole collection; with a query that matches
// several assets it falls back to a numbered prompt. Returns nil without
// error when nothing matched or the user cancelled.
func selectAsset(query string) (*domain.Asset, error) {
	var matches []domain.Asset
	useFuzzyFinder := query == ""

	if useFuzzyFinder {
		matches = assetService.All()
		if len(matches) == 0 {
			fmt.Println(ui.FormatWarning("No assets found"))
			fmt.Println(ui.FormatInfo("Add your first asset with: sat add \"My Asset\" -c Laptop"))
			return nil, nil
		}
	} else {
		matches = assetService.Search(query)
		if len(matches) == 0 {
			fmt.Println(ui.FormatWarning("No assets found matching: " + query))
			return nil, nil
		}
	}

	if len(matches) == 1 {
		return &matches[0], nil
	}

	if useFuzzyFinder {
		idx, err := fuzzyfinder.Find(
			matches,
			func(i int) string {
				return fmt.Sprintf("%s %s", matches[i].DisplaySeq(), matches[i].Name)
			},
			fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
				if i == -1 {
					return ""
				}
				a := matches[i]
				return fmt.Sprintf("ID: %s\nName: %s\nCategory: %s\nStatus: %s\nAssigned To: %s\nAdded: %s",
					a.DisplaySeq(), a.Name, a.Category, a.Status, a.AssignedTo,
					a.GetDisplayDate(appConfig.DisplayDateFormat))
			}),
		)
		if err != nil {
			// User cancelled (Ctrl+C or ESC)
			fmt.Println(ui.FormatInfo("Operation cancelled."))
			return nil, nil
		}
		return &matches[idx], nil
	}

	// Numbered list when a query was provided
	fmt.Println(ui.FormatInfo(fmt.Sprintf("Found %d matches:", len(matches))))
	fmt.Println()
	for i, a := range matches {
		fmt.Printf("  %d. %s %s %s\n",
			i+1,
			ui.StyleAccent.Render(a.DisplaySeq()),
			ui.StyleBold.Render(a.Name),
			ui.StyleMuted.Render("("+a.Status+", "+a.AssignedTo+")"))
	}
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(ui.StyleInfo.Render(fmt.Sprintf("Select an asset (1-%d): ", len(matches))))

		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println(ui.FormatWarning("Invalid input. Please enter a number."))
			continue
		}

		selection, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			fmt.Println(ui.FormatWarning("Invalid input. Please enter a number."))
			continue
		}

		if selection < 1 || selection > len(matches) {
			fmt.Println(ui.FormatWarning(fmt.Sprintf("Please enter a number between 1 and %d.", len(matches))))
			continue
		}

		return &matches[selection-1], nil
	}
}

// confirm prompts with a y/n question and reports whether the user
// answered yes.
func confirm(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(prompt)

	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(response)) == "y"
}
