// Package news aggregates financial headlines from RSS feeds, tags each
// with a rough sentiment, and caches results for a short TTL.
package news

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	cacheTTL       = 5 * time.Minute
	maxItems       = 15
	perFeedLimit   = 15
	minUseful      = 5 // below this we fall back to samples
	requestTimeout = 5 * time.Second
)

// Feed is one RSS source.
type Feed struct {
	Name string
	URL  string
}

// DefaultFeeds returns the built-in Indian financial news sources.
func DefaultFeeds() []Feed {
	return []Feed{
		{Name: "Economic Times", URL: "https://economictimes.indiatimes.com/rssfeedstopstories.cms"},
		{Name: "Moneycontrol", URL: "https://www.moneycontrol.com/rss/latestnews.xml"},
		{Name: "Business Standard", URL: "https://www.business-standard.com/rss/latest.rss"},
		{Name: "Reuters Business", URL: "https://www.reutersagency.com/feed/?best-topics=business-financial&post_type=best"},
		{Name: "Bloomberg Quint", URL: "https://www.bloombergquint.com/feeds/markets.rss"},
	}
}

// Item is one headline ready for display.
type Item struct {
	Source    string
	Title     string
	Link      string
	Sentiment Sentiment
	Published time.Time
}

// financeKeywords gate headlines: general-news feeds carry plenty of
// unrelated stories.
var financeKeywords = []string{
	"finance", "stock", "market", "economy", "rupee",
	"bank", "investment", "tax", "gdp", "inflation",
}

func isFinancial(title string) bool {
	t := strings.ToLower(title)
	for _, kw := range financeKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

// Fetcher pulls headlines from a set of feeds, caching the merged result.
type Fetcher struct {
	feeds  []Feed
	parser *gofeed.Parser

	mu        sync.Mutex
	cache     []Item
	fetchedAt time.Time
}

// NewFetcher creates a fetcher for the given feeds, or the defaults
// when none are supplied.
func NewFetcher(feeds []Feed) *Fetcher {
	if len(feeds) == 0 {
		feeds = DefaultFeeds()
	}
	p := gofeed.NewParser()
	p.UserAgent = "github.com/paisapaglu/paisa/1.0"
	return &Fetcher{feeds: feeds, parser: p}
}

// Headlines returns up to 15 financial headlines across all feeds,
// newest first. It never returns an error: when feeds are unreachable
// or too few items survive the filter, canned samples are returned so
// the news surface always has content.
func (f *Fetcher) Headlines(ctx context.Context) []Item {
	f.mu.Lock()
	if f.cache != nil && time.Since(f.fetchedAt) < cacheTTL {
		items := f.cache
		f.mu.Unlock()
		return items
	}
	f.mu.Unlock()

	items := f.fetchAll(ctx)
	if len(items) < minUseful {
		items = SampleHeadlines()
	}

	f.mu.Lock()
	f.cache = items
	f.fetchedAt = time.Now()
	f.mu.Unlock()
	return items
}

func (f *Fetcher) fetchAll(ctx context.Context) []Item {
	var items []Item
	for _, feed := range f.feeds {
		items = append(items, f.fetchFeed(ctx, feed)...)
	}
	return Curate(items)
}

// fetchFeed parses one feed; failures yield no items rather than errors.
func (f *Fetcher) fetchFeed(ctx context.Context, feed Feed) []Item {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	parsed, err := f.parser.ParseURLWithContext(feed.URL, ctx)
	if err != nil || parsed == nil {
		return nil
	}

	var items []Item
	for i, entry := range parsed.Items {
		if i >= perFeedLimit {
			break
		}
		title := strings.TrimSpace(entry.Title)
		if !isFinancial(title) {
			continue
		}
		item := Item{
			Source:    feed.Name,
			Title:     title,
			Link:      entry.Link,
			Sentiment: Analyze(title),
		}
		if entry.PublishedParsed != nil {
			item.Published = *entry.PublishedParsed
		}
		items = append(items, item)
	}
	return items
}

// Curate dedupes by title, sorts newest first, and caps the list.
func Curate(items []Item) []Item {
	seen := make(map[string]bool, len(items))
	unique := items[:0:0]
	for _, it := range items {
		if seen[it.Title] {
			continue
		}
		seen[it.Title] = true
		unique = append(unique, it)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Published.After(unique[j].Published)
	})

	if len(unique) > maxItems {
		unique = unique[:maxItems]
	}
	return unique
}
