package cli_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/deskhound/deskhound/pkg/cli"
)

func TestServeCommand_RequiresSlackToken(t *testing.T) {
	ctx := context.Background()

	err := cli.Run(ctx, []string{
		"deskhound", "serve",
		"--help-channel", "C_HELP",
		"--tickets-channel", "C_TICKETS",
		"--ai-endpoint", "http://localhost:9999/v1/chat/completions",
	})
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("slack oauth token")
}

func TestAskCommand_RequiresEndpoint(t *testing.T) {
	ctx := context.Background()

	err := cli.Run(ctx, []string{"deskhound", "ask", "hello"})
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("ai endpoint")
}
