package external

import "encoding/xml"

// Category terms used by the city page Atom feed.
const (
	CategoryCurrentConditions = "Current Conditions"
	CategoryWeatherForecasts  = "Weather Forecasts"
	CategoryWarnings          = "Warnings and Watches"
)

// AtomFeed is the city page RSS/Atom document. Summaries carry HTML either as
// an escaped text node or, in the legacy feed variant, as a raw CDATA section;
// encoding/xml surfaces both through the same chardata field.
type AtomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Title   string      `xml:"title"`
	Updated string      `xml:"updated"`
	Entries []AtomEntry `xml:"entry"`
}

// AtomEntry is one feed entry; the category term identifies its kind.
type AtomEntry struct {
	Title      string         `xml:"title"`
	Updated    string         `xml:"updated"`
	Categories []AtomCategory `xml:"category"`
	Summary    AtomText       `xml:"summary"`
}

// AtomCategory is the category element with its term attribute.
type AtomCategory struct {
	Term string `xml:"term,attr"`
}

// AtomText is a text construct whose body may be escaped HTML or CDATA.
type AtomText struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

// HasCategory reports whether the entry carries the given category term.
func (e *AtomEntry) HasCategory(term string) bool {
	for _, c := range e.Categories {
		if c.Term == term {
			return true
		}
	}
	return false
}
