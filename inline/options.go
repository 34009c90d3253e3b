package inline

import (
	"io"
	"strings"

	"github.com/mediagrab/mediagrab/platform"
	"github.com/mediagrab/mediagrab/provider"
	"github.com/samber/mo"
)

type Options struct {
	Out      io.Writer
	Response *provider.Response
	Platform platform.ID
	URL      string
	Json     bool
	URLOnly  bool
	ShowURLs bool
	Format   mo.Option[string]
	Quality  mo.Option[string]
}

// ParseChoice turns a flag value into an override. Blank values mean no override.
func ParseChoice(value string) mo.Option[string] {
	value = strings.TrimSpace(value)
	if value == "" {
		return mo.None[string]()
	}
	return mo.Some(value)
}
