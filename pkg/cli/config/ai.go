package config

import (
	"log/slog"
	"time"

	"github.com/deskhound/deskhound/pkg/service/ai"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type AI struct {
	endpoint string
	model    string
	timeout  time.Duration
}

func (x *AI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "ai-endpoint",
			Usage:       "Chat completion endpoint URL (OpenAI compatible)",
			Category:    "AI",
			Destination: &x.endpoint,
			Sources:     cli.EnvVars("DESKHOUND_AI_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:        "ai-model",
			Usage:       "Model name sent in completion requests",
			Category:    "AI",
			Value:       "gpt-4o-mini",
			Destination: &x.model,
			Sources:     cli.EnvVars("DESKHOUND_AI_MODEL"),
		},
		&cli.DurationFlag{
			Name:        "ai-timeout",
			Usage:       "Timeout for a single completion request",
			Category:    "AI",
			Value:       30 * time.Second,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("DESKHOUND_AI_TIMEOUT"),
		},
	}
}

func (x AI) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("endpoint", x.endpoint),
		slog.String("model", x.model),
		slog.Duration("timeout", x.timeout),
	)
}

func (x *AI) Configure() (*ai.Client, error) {
	if x.endpoint == "" {
		return nil, goerr.New("ai endpoint is not set")
	}

	return ai.New(x.endpoint,
		ai.WithModel(x.model),
		ai.WithTimeout(x.timeout),
	), nil
}
