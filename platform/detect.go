package platform

import (
	"net/url"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"golang.org/x/net/publicsuffix"
)

var generic = &Platform{ID: Generic, Name: "Generic"}

// Detect maps a source URL to the platform serving it. Hosts are compared by
// registrable domain first, so "m.youtube.com" and "vm.tiktok.com" resolve
// like their parents. URLs no platform claims resolve to generic rules.
func Detect(sourceURL string) *Platform {
	host := hostOf(sourceURL)
	if host == "" {
		return generic
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		domain = host
	}

	for _, p := range registry {
		if lo.Contains(p.Hosts, domain) {
			return p
		}
	}

	for _, p := range registry {
		matched := lo.ContainsBy(p.Hosts, func(h string) bool {
			return host == h || strings.HasSuffix(host, "."+h)
		})
		if matched {
			return p
		}
	}

	return generic
}

func hostOf(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	return strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
}

// Suggest returns registered identifiers resembling name, best match first.
func Suggest(name string) []string {
	ranks := fuzzy.RankFindNormalizedFold(strings.TrimSpace(name), IDs())
	sort.Sort(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string {
		return r.Target
	})
}
