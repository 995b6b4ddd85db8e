package domain

import (
	"sort"
	"strings"
)

// SortAssets returns a sorted copy of the collection. Supported keys:
// "seq" (creation order, the default), "name", "date", "status",
// "assignee". String keys compare case-insensitively.
func SortAssets(assets []Asset, by string, reverse bool) []Asset {
	out := make([]Asset, len(assets))
	copy(out, assets)

	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		switch by {
		case "name":
			less = strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		case "date":
			less = out[i].DateAdded < out[j].DateAdded
		case "status":
			less = strings.ToLower(out[i].Status) < strings.ToLower(out[j].Status)
		case "assignee":
			less = strings.ToLower(out[i].AssignedTo) < strings.ToLower(out[j].AssignedTo)
		default: // "seq"
			less = out[i].SequenceNumber < out[j].SequenceNumber
		}
		if reverse {
			return !less
		}
		return less
	})

	return out
}
