package backend

import (
	"net/url"
	"strconv"

	"github.com/sm8ta/webike_rental_admin_nikita/pkg/collection"
)

// buildQuery maps a PageQuery onto the backend's list parameters. Paging
// is 0-based on both sides.
func buildQuery(q collection.PageQuery) url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(q.PageIndex))
	values.Set("size", strconv.Itoa(q.PageSize))

	if q.SortField != "" {
		values.Set("sortBy", q.SortField)
		values.Set("sortDir", string(q.SortDirection))
	}
	if q.SearchTerm != "" {
		values.Set("search", q.SearchTerm)
	}
	for key, value := range q.Filters {
		if value != "" {
			values.Set(key, value)
		}
	}
	return values
}
