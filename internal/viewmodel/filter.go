package viewmodel

import (
	"strings"

	"github.com/genvault/genvault-go/internal/model"
)

// Filter returns the entries whose site name contains term, ignoring case.
// An empty term matches every entry. The result is a new slice in the order
// of entries.
func Filter(entries []model.VaultEntry, term string) []model.VaultEntry {
	needle := strings.ToLower(term)

	filtered := make([]model.VaultEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.SiteName), needle) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
