package history

import (
	"fmt"
	"time"

	"github.com/mediagrab/mediagrab/option"
)

// Entry is one remembered submission.
type Entry struct {
	URL      string    `json:"url"`
	Platform string    `json:"platform"`
	Title    string    `json:"title,omitempty"`
	Format   string    `json:"format"`
	Quality  string    `json:"quality"`
	Options  int       `json:"options"`
	Time     time.Time `json:"time"`
}

func (e *Entry) String() string {
	if e.Title != "" {
		return fmt.Sprintf("%s (%s)", e.Title, e.Platform)
	}
	return fmt.Sprintf("%s (%s)", e.URL, e.Platform)
}

func newEntry(sourceURL string, result *option.Result, format, quality string) *Entry {
	return &Entry{
		URL:      sourceURL,
		Platform: string(result.Platform),
		Title:    result.Metadata.Title,
		Format:   format,
		Quality:  quality,
		Options:  len(result.Options),
		Time:     time.Now(),
	}
}
