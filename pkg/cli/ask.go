package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/deskhound/deskhound/pkg/cli/config"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// cmdAsk sends one message to the completion endpoint and prints the parsed
// result. Useful to verify the endpoint and prompt before running the server.
func cmdAsk() *cli.Command {
	var aiCfg config.AI

	return &cli.Command{
		Name:      "ask",
		Usage:     "Summarize a single message via the completion endpoint",
		ArgsUsage: "<message>",
		Flags:     aiCfg.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return goerr.New("expected exactly one message argument")
			}

			client, err := aiCfg.Configure()
			if err != nil {
				return err
			}

			result, err := client.Ask(ctx, cmd.Args().First())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}
