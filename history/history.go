// Package history remembers submitted source URLs and the option picked for each.
package history

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mediagrab/mediagrab/filesystem"
	"github.com/mediagrab/mediagrab/option"
	"github.com/mediagrab/mediagrab/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
)

var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every entry keyed by source URL.
func Get() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// List returns every entry, most recent first.
func List() ([]*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	entries := lo.Values(saved)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.After(entries[j].Time)
	})
	return entries, nil
}

// Save records the pick made for sourceURL, replacing any earlier entry.
func Save(sourceURL string, result *option.Result, format, quality string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	saved[sourceURL] = newEntry(sourceURL, result, format, quality)
	return cacher.Set(saved)
}

// Remove deletes the entry for its source URL.
func Remove(entry *Entry) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, entry.URL)
	return cacher.Set(saved)
}

// Suggest returns remembered source URLs fuzzily matching partial, most
// recent first.
func Suggest(partial string) []string {
	entries, err := List()
	if err != nil {
		return []string{}
	}

	partial = strings.ToLower(strings.TrimSpace(partial))
	return lo.FilterMap(entries, func(e *Entry, _ int) (string, bool) {
		return e.URL, fuzzy.Match(partial, strings.ToLower(e.URL))
	})
}
