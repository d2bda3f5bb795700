package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jask/datatable/internal/tui"
)

// story is a named feature preset matching one of the table's showcase
// configurations.
type story struct {
	search       bool
	pagination   bool
	columnFilter bool
	actions      bool
	pin          []string
}

var stories = map[string]story{
	"default":    {actions: true},
	"pagination": {pagination: true},
	"pinning":    {pin: []string{"email"}},
	"filter":     {columnFilter: true},
	"actions":    {actions: true},
	"search":     {search: true},
	"complete": {
		search:       true,
		pagination:   true,
		columnFilter: true,
		actions:      true,
		pin:          []string{"email"},
	},
}

func storyNames() string {
	names := make([]string, 0, len(stories))
	for n := range stories {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookupStory(name string) (story, error) {
	s, ok := stories[strings.ToLower(name)]
	if !ok {
		return story{}, fmt.Errorf("unknown story %q (want one of %s)", name, storyNames())
	}
	return s, nil
}

func (s story) apply(opts *tui.Options) {
	opts.Table.WithSearch = s.search
	opts.Table.WithPagination = s.pagination
	opts.Table.WithColumnFilter = s.columnFilter
	opts.Actions = s.actions
	if len(s.pin) > 0 {
		opts.Pin = append([]string(nil), s.pin...)
	}
}
