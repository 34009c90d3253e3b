// Package provider models the payload returned by the upstream extraction
// service and fetches it.
package provider

import (
	"encoding/json"
	"fmt"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// StatusError is the status value a provider uses to report failure.
const StatusError = "error"

// Details is one downloadable variant in a formats-shaped response.
type Details struct {
	URL  string `json:"url"`
	Size Scalar `json:"size"`
}

// QualityMap maps a quality label to its variant, in document order.
type QualityMap = orderedmap.OrderedMap[string, *Details]

// FormatMap maps a format name to its qualities, in document order.
type FormatMap = orderedmap.OrderedMap[string, *QualityMap]

// Media is one entry of a medias-shaped response.
type Media struct {
	URL          string `json:"url"`
	Ext          Scalar `json:"ext"`
	Type         Scalar `json:"type"`
	Label        Scalar `json:"label"`
	Quality      Scalar `json:"quality"`
	Size         Scalar `json:"size"`
	Height       Scalar `json:"height"`
	AudioQuality Scalar `json:"audioQuality"`
	MimeType     Scalar `json:"mimeType"`
	FormatID     Scalar `json:"formatId"`
	Codecs       Scalar `json:"codecs"`
	Bandwidth    Scalar `json:"bandwidth"`
	Resolution   Scalar `json:"resolution"`
	Extension    Scalar `json:"extension"`
	NoWatermark  Scalar `json:"noWatermark"`
}

// Response is the untrusted payload of the extraction service. Exactly one
// of Formats or Medias is expected; Formats wins when both are sent.
type Response struct {
	Status    Scalar     `json:"status"`
	Message   Scalar     `json:"message"`
	Title     Scalar     `json:"title"`
	Thumbnail Scalar     `json:"thumbnail"`
	Author    Scalar     `json:"author"`
	Duration  Scalar     `json:"duration"`
	Formats   *FormatMap `json:"formats,omitempty"`
	Medias    []*Media   `json:"medias,omitempty"`
}

// Shape tells which layout a response uses.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeFormats
	ShapeMedias
)

func (s Shape) String() string {
	switch s {
	case ShapeFormats:
		return "formats"
	case ShapeMedias:
		return "medias"
	default:
		return "none"
	}
}

// Shape reports the layout of r.
func (r *Response) Shape() Shape {
	switch {
	case r.Formats != nil:
		return ShapeFormats
	case r.Medias != nil:
		return ShapeMedias
	default:
		return ShapeNone
	}
}

// Failed reports whether the provider declared an error.
func (r *Response) Failed() bool {
	return r.Status.String() == StatusError
}

// Decode reads one JSON response from reader. Unknown fields are ignored.
func Decode(reader io.Reader) (*Response, error) {
	var response Response
	if err := json.NewDecoder(reader).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}

	return &response, nil
}

// NewFormats builds an empty FormatMap.
func NewFormats() *FormatMap {
	return orderedmap.New[string, *QualityMap]()
}

// NewQualities builds an empty QualityMap.
func NewQualities() *QualityMap {
	return orderedmap.New[string, *Details]()
}
