package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/paisapaglu/paisa/internal/advisor"
	"github.com/paisapaglu/paisa/internal/cli"
	"github.com/paisapaglu/paisa/internal/config"

	"github.com/spf13/cobra"
)

const adviceTimeout = 30 * time.Second

var flagTopic string

var adviceCmd = &cobra.Command{
	Use:   "advice [question...]",
	Short: "Get financial advice from the AI advisor",
	Long: `Ask the AI advisor a question, grounded in your stored financial profile.

Pick a topic with --topic (` + strings.Join(advisor.Topics(), ", ") + `)
or pass a free-form question. When the service is unreachable, offline
guidance is shown instead.`,
	RunE: runAdvice,
}

func init() {
	adviceCmd.Flags().StringVarP(&flagTopic, "topic", "t", "", "Advice topic instead of a free-form question")
	rootCmd.AddCommand(adviceCmd)
}

func runAdvice(_ *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if flagTopic != "" {
		question = advisor.TopicQuestion(flagTopic)
	}
	if question == "" {
		return errors.New("pass a question or --topic; see `paisa advice --help`")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cli.Currency = cfg.General.Currency

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	snap, err := snapshot(store, cfg)
	if err != nil {
		return err
	}

	client, err := advisor.NewClient(config.GetAPIKey(cfg), cfg.Gemini.Model, cfg.Gemini.BaseURL)
	if errors.Is(err, advisor.ErrNoAPIKey) {
		fmt.Println(cli.RenderDim("  No API key configured. Set " + config.EnvAPIKey + " or run `paisa setup`. Showing offline guidance."))
		fmt.Println()
		fmt.Println(advisor.Fallback(question))
		return nil
	}
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), adviceTimeout)
	defer cancel()

	fmt.Println(cli.RenderDim("  Thinking..."))
	answer, err := client.Generate(ctx, advisor.BuildPrompt(question, snap))
	if errors.Is(err, advisor.ErrUnavailable) || errors.Is(err, advisor.ErrRateLimited) {
		fmt.Println(cli.RenderDim("  Advisor unavailable (" + err.Error() + "). Showing offline guidance."))
		fmt.Println()
		fmt.Println(advisor.Fallback(question))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(answer)
	return nil
}
