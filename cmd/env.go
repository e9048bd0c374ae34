package main

import (
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/outreach-cli/internal/compose"
	"github.com/sells-group/outreach-cli/internal/probe"
	"github.com/sells-group/outreach-cli/internal/resilience"
	"github.com/sells-group/outreach-cli/pkg/anthropic"
)

// enrichEnv bundles the components shared by the run and serve commands.
type enrichEnv struct {
	prober    *probe.HTTPProber
	completer *anthropic.Completer
	composer  *compose.Composer
}

func newProber() (*probe.HTTPProber, error) {
	vocab, err := probe.LoadVocabulary(cfg.Scrape.KeywordsFile)
	if err != nil {
		return nil, err
	}

	return probe.NewHTTPProber(probe.Options{
		UserAgent:   cfg.Scrape.UserAgent,
		Timeout:     time.Duration(cfg.Scrape.TimeoutSecs) * time.Second,
		MaxSubPages: cfg.Scrape.MaxSubPages,
		MinDelay:    time.Duration(cfg.Scrape.MinDelayMillis) * time.Millisecond,
		MaxDelay:    time.Duration(cfg.Scrape.MaxDelayMillis) * time.Millisecond,
		Keywords:    vocab,
	}), nil
}

func newEnv(personalOpener bool) (*enrichEnv, error) {
	if cfg.Anthropic.Key == "" {
		return nil, eris.New("anthropic api key required (set OUTREACH_ANTHROPIC_KEY or anthropic.key)")
	}

	prober, err := newProber()
	if err != nil {
		return nil, err
	}

	policy := resilience.DefaultPolicy()
	policy.MaxAttempts = cfg.Anthropic.MaxAttempts

	completer := anthropic.NewCompleter(
		anthropic.NewClient(cfg.Anthropic.Key),
		cfg.Anthropic.Model,
		cfg.Anthropic.Temperature,
		cfg.Anthropic.MaxTokens,
		policy,
	)

	sender := compose.Sender{
		Name:    cfg.Compose.SenderName,
		Title:   cfg.Compose.SenderTitle,
		Company: cfg.Compose.SenderCompany,
		Phone:   cfg.Compose.SenderPhone,
	}

	return &enrichEnv{
		prober:    prober,
		completer: completer,
		composer:  compose.New(completer, sender, personalOpener),
	}, nil
}
