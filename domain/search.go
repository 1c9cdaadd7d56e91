package domain

import (
	"strconv"
	"strings"
)

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// SearchQuery is a full-text lookup over stored whispers.
type SearchQuery struct {
	Raw   string
	Terms string
	Zone  *Zone
	Limit int
}

// NewSearchQuery parses command-line style input: free terms plus optional
// --zone and --limit flags, e.g. `exam stress --zone library --limit 5`.
func NewSearchQuery(input string) SearchQuery {
	query := SearchQuery{Raw: input, Limit: DefaultSearchLimit}

	parts := strings.Fields(input)
	var terms []string
	for i := 0; i < len(parts); i++ {
		part := parts[i]
		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			val := parts[i+1]
			switch strings.TrimPrefix(part, "--") {
			case "zone":
				zone := Zone(strings.ToLower(val))
				query.Zone = &zone
			case "limit":
				if n, err := strconv.Atoi(val); err == nil {
					query.Limit = n
				}
			default:
				terms = append(terms, part, val)
			}
			i++
			continue
		}
		terms = append(terms, part)
	}
	query.Terms = strings.Join(terms, " ")
	query.Limit = clampSearchLimit(query.Limit)
	return query
}

func clampSearchLimit(n int) int {
	if n <= 0 {
		return DefaultSearchLimit
	}
	if n > MaxSearchLimit {
		return MaxSearchLimit
	}
	return n
}
