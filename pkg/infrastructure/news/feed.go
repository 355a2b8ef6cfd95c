package news

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/beevik/etree"
)

const (
	// DefaultMaxItems caps the number of headlines returned per query
	DefaultMaxItems = 12
	// DefaultSource is used when an item carries no source element
	DefaultSource = "Google News"
	// PublishedLayout is the display format of the published date
	PublishedLayout = "02 Jan 2006"
)

// Item is a single headline
type Item struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Source      string    `json:"source"`
	Published   string    `json:"published"`
	PublishedAt time.Time `json:"published_at"`
}

var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// ParseFeed extracts headlines from an RSS document, newest first.
// Items without a parseable pubDate are stamped with now.
func ParseFeed(body []byte, now time.Time, maxItems int) ([]Item, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, fmt.Errorf("failed to parse RSS: %v", err)
	}
	if doc.FindElement("//channel") == nil {
		return nil, fmt.Errorf("no channel element found in RSS")
	}

	elements := doc.FindElements("//channel/item")
	items := make([]Item, 0, len(elements))
	for _, el := range elements {
		item := Item{
			Title:  childText(el, "title"),
			Link:   childText(el, "link"),
			Source: childText(el, "source"),
		}
		if item.Source == "" {
			item.Source = DefaultSource
		}
		item.PublishedAt = parsePubDate(childText(el, "pubDate"), now)
		item.Published = item.PublishedAt.Format(PublishedLayout)
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})

	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}
	return items, nil
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

func parsePubDate(s string, now time.Time) time.Time {
	if s == "" {
		return now
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now
}
