package config

import (
	"log/slog"

	model "github.com/deskhound/deskhound/pkg/domain/model/slack"
	"github.com/deskhound/deskhound/pkg/domain/types"
	slack_svc "github.com/deskhound/deskhound/pkg/service/slack"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	sdk "github.com/slack-go/slack"
)

type Slack struct {
	oauthToken      string
	signingSecret   string
	helpChannel     string
	ticketsChannel  string
	workspaceDomain string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token",
			Category:    "Slack",
			Destination: &x.oauthToken,
			Sources:     cli.EnvVars("DESKHOUND_SLACK_OAUTH_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Usage:       "Slack signing secret",
			Category:    "Slack",
			Destination: &x.signingSecret,
			Sources:     cli.EnvVars("DESKHOUND_SLACK_SIGNING_SECRET"),
		},
		&cli.StringFlag{
			Name:        "help-channel",
			Usage:       "Channel ID where user questions are watched",
			Category:    "Slack",
			Destination: &x.helpChannel,
			Sources:     cli.EnvVars("DESKHOUND_HELP_CHANNEL"),
		},
		&cli.StringFlag{
			Name:        "tickets-channel",
			Usage:       "Channel ID where ticket cards are posted",
			Category:    "Slack",
			Destination: &x.ticketsChannel,
			Sources:     cli.EnvVars("DESKHOUND_TICKETS_CHANNEL"),
		},
		&cli.StringFlag{
			Name:        "workspace-domain",
			Usage:       "Workspace domain for message links (fetched via team.info when empty)",
			Category:    "Slack",
			Destination: &x.workspaceDomain,
			Sources:     cli.EnvVars("DESKHOUND_WORKSPACE_DOMAIN"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("oauth-token.len", len(x.oauthToken)),
		slog.Int("signing-secret.len", len(x.signingSecret)),
		slog.String("help-channel", x.helpChannel),
		slog.String("tickets-channel", x.ticketsChannel),
		slog.String("workspace-domain", x.workspaceDomain),
	)
}

func (x *Slack) Configure() (*slack_svc.Service, error) {
	if x.oauthToken == "" {
		return nil, goerr.New("slack oauth token is not set")
	}
	if x.helpChannel == "" {
		return nil, goerr.New("help channel is not set")
	}
	if x.ticketsChannel == "" {
		return nil, goerr.New("tickets channel is not set")
	}

	client := sdk.New(x.oauthToken)

	var opts []slack_svc.ServiceOption
	if x.workspaceDomain != "" {
		opts = append(opts, slack_svc.WithWorkspaceDomain(x.workspaceDomain))
	}

	return slack_svc.New(client, opts...)
}

func (x *Slack) HelpChannel() types.ChannelID {
	return types.ChannelID(x.helpChannel)
}

func (x *Slack) TicketsChannel() types.ChannelID {
	return types.ChannelID(x.ticketsChannel)
}

func (x *Slack) Verifier() model.PayloadVerifier {
	if x.signingSecret == "" {
		return nil
	}

	return model.NewPayloadVerifier(x.signingSecret)
}
