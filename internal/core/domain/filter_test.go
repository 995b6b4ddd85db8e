package domain

import "testing"

// The four-record scenario used throughout: two of Alice's assets (with
// different casing), one faulty unassigned, one available blank.
func scenarioAssets() []Asset {
	return []Asset{
		{ID: "a", SequenceNumber: 1, Name: "Laptop", Status: StatusAssigned, AssignedTo: "Alice"},
		{ID: "b", SequenceNumber: 2, Name: "Router", Status: StatusFaulty, AssignedTo: Unassigned},
		{ID: "c", SequenceNumber: 3, Name: "Monitor", Status: StatusAssigned, AssignedTo: "alice"},
		{ID: "d", SequenceNumber: 4, Name: "Keyboard", Status: StatusAvailable, AssignedTo: ""},
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name          string
		filter        Filter
		expectedIDs   []string
		expectedLabel string
	}{
		{
			name:          "all returns everything in order",
			filter:        FilterAll,
			expectedIDs:   []string{"a", "b", "c", "d"},
			expectedLabel: "All Assets",
		},
		{
			name:          "assigned returns Assigned status only",
			filter:        FilterAssigned,
			expectedIDs:   []string{"a", "c"},
			expectedLabel: "Assigned Assets",
		},
		{
			name:          "faulty returns the single faulty record",
			filter:        FilterFaulty,
			expectedIDs:   []string{"b"},
			expectedLabel: "Faulty Assets",
		},
		{
			name:          "active users returns both of Alice's assets",
			filter:        FilterActiveUsers,
			expectedIDs:   []string{"a", "c"},
			expectedLabel: "Assets Assigned to Active Users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, label := Project(scenarioAssets(), tt.filter)

			if label != tt.expectedLabel {
				t.Errorf("label = %q, want %q", label, tt.expectedLabel)
			}

			if len(rows) != len(tt.expectedIDs) {
				t.Fatalf("got %d rows, want %d", len(rows), len(tt.expectedIDs))
			}
			for i, id := range tt.expectedIDs {
				if rows[i].ID != id {
					t.Errorf("row %d has ID %q, want %q", i, rows[i].ID, id)
				}
			}
		})
	}
}

func TestProject_DoesNotAliasInput(t *testing.T) {
	assets := scenarioAssets()
	rows, _ := Project(assets, FilterAll)

	rows[0].Name = "changed"
	if assets[0].Name == "changed" {
		t.Error("projection of the all filter aliases the input collection")
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input    string
		expected Filter
		wantErr  bool
	}{
		{input: "", expected: FilterAll},
		{input: "all", expected: FilterAll},
		{input: "assigned", expected: FilterAssigned},
		{input: "faulty", expected: FilterFaulty},
		{input: "activeUsers", expected: FilterActiveUsers},
		{input: "active-users", expected: FilterActiveUsers},
		{input: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseFilter(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFilter(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFilter(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseFilter(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSortAssets(t *testing.T) {
	assets := []Asset{
		{SequenceNumber: 2, Name: "zebra", DateAdded: "2026-01-02T00:00:00Z"},
		{SequenceNumber: 1, Name: "Apple", DateAdded: "2026-01-03T00:00:00Z"},
		{SequenceNumber: 3, Name: "mango", DateAdded: "2026-01-01T00:00:00Z"},
	}

	bySeq := SortAssets(assets, "seq", false)
	if bySeq[0].SequenceNumber != 1 || bySeq[2].SequenceNumber != 3 {
		t.Errorf("seq sort order wrong: %+v", bySeq)
	}

	byName := SortAssets(assets, "name", false)
	if byName[0].Name != "Apple" || byName[2].Name != "zebra" {
		t.Errorf("name sort should be case-insensitive: %+v", byName)
	}

	byDate := SortAssets(assets, "date", true)
	if byDate[0].DateAdded != "2026-01-03T00:00:00Z" {
		t.Errorf("reversed date sort wrong: %+v", byDate)
	}

	// Input order untouched
	if assets[0].SequenceNumber != 2 {
		t.Error("SortAssets mutated its input")
	}
}
