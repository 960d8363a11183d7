package cmd

import (
	"fmt"

	"github.com/paisapaglu/paisa/internal/cli"
	"github.com/paisapaglu/paisa/internal/config"
	"github.com/paisapaglu/paisa/internal/news"

	"github.com/spf13/cobra"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Show financial headlines",
	RunE:  runNews,
}

func init() {
	rootCmd.AddCommand(newsCmd)
}

func runNews(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	feeds := make([]news.Feed, 0, len(cfg.News.Feeds))
	for _, f := range cfg.News.Feeds {
		feeds = append(feeds, news.Feed{Name: f.Name, URL: f.URL})
	}

	fetcher := news.NewFetcher(feeds)
	items := fetcher.Headlines(cmd.Context())

	fmt.Println()
	fmt.Println("  " + cli.RenderTitle("Financial News"))
	fmt.Println()
	for _, it := range items {
		fmt.Printf("  %s %s %s\n", sentimentMark(it.Sentiment), it.Title, cli.RenderDim("("+it.Source+")"))
	}
	fmt.Println()
	return nil
}

func sentimentMark(s news.Sentiment) string {
	switch s {
	case news.Positive:
		return cli.RenderSigned("▲", 1)
	case news.Negative:
		return cli.RenderSigned("▼", -1)
	default:
		return cli.RenderDim("•")
	}
}
