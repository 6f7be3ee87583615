package checklist

import (
	"strings"

	"github.com/idilsaglam/entraops/internal/model"
)

// FilterCatalog keeps items whose text or description contains query,
// case-insensitively. Categories left empty are dropped. An empty query
// returns the catalog as is.
func FilterCatalog(c model.Catalog, query string) model.Catalog {
	if query == "" {
		return c
	}
	q := strings.ToLower(query)
	out := model.Catalog{}
	for _, cat := range c {
		var keep []model.Item
		for _, it := range cat.Items {
			if strings.Contains(strings.ToLower(it.Text), q) ||
				strings.Contains(strings.ToLower(it.Description), q) {
				keep = append(keep, it)
			}
		}
		if len(keep) == 0 {
			continue
		}
		cat.Items = keep
		out = append(out, cat)
	}
	return out
}
