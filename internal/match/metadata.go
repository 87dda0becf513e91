// Package match decides whether scraped release titles belong to a known
// movie, episode, season pack or show pack. Filters are built once per
// metadata record and then applied across many candidate titles; every
// predicate is pure and safe for concurrent use.
package match

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// CountryList accepts metadata records that carry either a single country
// string or a list of countries.
type CountryList []string

// UnmarshalJSON decodes either a JSON string or an array of strings
func (c *CountryList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*c = nil
		} else {
			*c = CountryList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("country must be a string or list of strings: %w", err)
	}
	*c = many
	return nil
}

// SimpleInfo is the caller-supplied metadata a filter is built from. The
// engine never mutates it; each filter snapshots what it needs at build
// time. Numeric fields stay strings because that is how indexer metadata
// arrives and how they are interpolated into patterns.
type SimpleInfo struct {
	ShowTitle     string      `json:"show_title"`
	MovieTitle    string      `json:"movie_title"`
	ShowAliases   []string    `json:"show_aliases"`
	SeasonNumber  string      `json:"season_number"`
	EpisodeNumber string      `json:"episode_number"`
	Year          string      `json:"year"`
	Country       CountryList `json:"country"`
	EpisodeTitle  string      `json:"episode_title,omitempty"`
	SeasonCount   string      `json:"no_seasons,omitempty"`
}

// FilterError reports that a filter cannot be built because required
// metadata fields are missing or malformed. A guessed default would
// produce a pattern that silently matches the wrong releases, so builders
// refuse instead.
type FilterError struct {
	Filter  string
	Missing []string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("cannot build %s filter: missing %s", e.Filter, strings.Join(e.Missing, ", "))
}

// requireFields returns a FilterError naming every empty required field,
// or nil when all are present
func requireFields(filter string, fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &FilterError{Filter: filter, Missing: missing}
}
