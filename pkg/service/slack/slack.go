package slack

import (
	"context"
	"strings"

	"github.com/deskhound/deskhound/pkg/domain/interfaces"
	"github.com/deskhound/deskhound/pkg/domain/model/errs"
	"github.com/deskhound/deskhound/pkg/domain/model/ticket"
	"github.com/deskhound/deskhound/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Service wraps the Slack client with the small set of operations the ticket
// lifecycle needs. Workspace metadata is captured once at construction.
type Service struct {
	client interfaces.SlackClient

	botUserID       types.UserID
	botID           string
	teamName        string
	workspaceDomain string
}

type ServiceOption func(*Service)

// WithWorkspaceDomain overrides the workspace domain used for deep links.
// Without it the domain reported by team.info is used.
func WithWorkspaceDomain(domain string) ServiceOption {
	return func(s *Service) {
		s.workspaceDomain = domain
	}
}

func New(client interfaces.SlackClient, opts ...ServiceOption) (*Service, error) {
	s := &Service{client: client}
	for _, opt := range opts {
		opt(s)
	}

	authTest, err := client.AuthTest()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to auth test of slack", goerr.T(errs.TagSlackError))
	}
	s.botUserID = types.UserID(authTest.UserID)
	s.botID = authTest.BotID
	s.teamName = authTest.Team

	if s.workspaceDomain == "" {
		teamInfo, err := client.GetTeamInfo()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get team info from slack", goerr.T(errs.TagSlackError))
		}
		s.workspaceDomain = teamInfo.Domain
	}

	return s, nil
}

// GetClient returns the underlying Slack API client.
func (x *Service) GetClient() interfaces.SlackClient {
	return x.client
}

func (x *Service) IsBotUser(userID types.UserID) bool {
	return x.botUserID == userID
}

func (x *Service) BotUserID() types.UserID {
	return x.botUserID
}

// MessageURL builds a deep link to a message.
// Format: https://{domain}.slack.com/archives/{channel}/p{ts without dot}
func (x *Service) MessageURL(channel types.ChannelID, ts types.MessageTS) string {
	flat := strings.ReplaceAll(ts.String(), ".", "")
	return "https://" + x.workspaceDomain + ".slack.com/archives/" + channel.String() + "/p" + flat
}

// PostTicket renders a new ticket card in the channel and returns the card's
// message timestamp, which becomes the ticket's primary key.
func (x *Service) PostTicket(ctx context.Context, channel types.ChannelID, t *ticket.Ticket) (types.MessageTS, error) {
	blocks := buildTicketBlocks(t, x.MessageURL(t.OriginalChannel, t.OriginalTS))

	_, ts, err := x.client.PostMessageContext(ctx, channel.String(),
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText("New ticket: "+t.Summary, false),
	)
	if err != nil {
		return types.EmptyMessageTS, goerr.Wrap(err, "failed to post ticket card",
			goerr.T(errs.TagSlackError), goerr.V("channel", channel))
	}
	return types.MessageTS(ts), nil
}

// UpdateTicket re-renders the ticket card in place.
func (x *Service) UpdateTicket(ctx context.Context, channel types.ChannelID, t *ticket.Ticket) error {
	blocks := buildTicketBlocks(t, x.MessageURL(t.OriginalChannel, t.OriginalTS))

	_, _, _, err := x.client.UpdateMessageContext(ctx, channel.String(), t.TicketTS.String(),
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText("Ticket: "+t.Summary, false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to update ticket card",
			goerr.T(errs.TagSlackError), goerr.V("channel", channel), goerr.V("ticket_ts", t.TicketTS))
	}
	return nil
}

// DeleteMessage removes a message entirely (used when a ticket is resolved).
func (x *Service) DeleteMessage(ctx context.Context, channel types.ChannelID, ts types.MessageTS) error {
	if _, _, err := x.client.DeleteMessageContext(ctx, channel.String(), ts.String()); err != nil {
		return goerr.Wrap(err, "failed to delete message",
			goerr.T(errs.TagSlackError), goerr.V("channel", channel), goerr.V("ts", ts))
	}
	return nil
}

// ReplyInThread posts a reply into the thread rooted at threadTS.
func (x *Service) ReplyInThread(ctx context.Context, channel types.ChannelID, threadTS types.MessageTS, text string) error {
	_, _, err := x.client.PostMessageContext(ctx, channel.String(),
		slack.MsgOptionText(text, false),
		slack.MsgOptionTS(threadTS.String()),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to reply in thread",
			goerr.T(errs.TagSlackError), goerr.V("channel", channel), goerr.V("thread_ts", threadTS))
	}
	return nil
}

// SendDM opens (or reuses) a direct message conversation with the user and
// posts the text there.
func (x *Service) SendDM(ctx context.Context, user types.UserID, text string) error {
	ch, _, _, err := x.client.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{user.String()},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to open DM conversation",
			goerr.T(errs.TagSlackError), goerr.V("user", user))
	}

	if _, _, err := x.client.PostMessageContext(ctx, ch.ID, slack.MsgOptionText(text, false)); err != nil {
		return goerr.Wrap(err, "failed to post DM",
			goerr.T(errs.TagSlackError), goerr.V("user", user))
	}
	return nil
}

// MessageAuthor looks up the author of a single message via channel history.
func (x *Service) MessageAuthor(ctx context.Context, channel types.ChannelID, ts types.MessageTS) (types.UserID, error) {
	resp, err := x.client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channel.String(),
		Latest:    ts.String(),
		Oldest:    ts.String(),
		Inclusive: true,
		Limit:     1,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to fetch message history",
			goerr.T(errs.TagSlackError), goerr.V("channel", channel), goerr.V("ts", ts))
	}
	if len(resp.Messages) == 0 {
		return "", goerr.New("message not found",
			goerr.T(errs.TagNotFound), goerr.V("channel", channel), goerr.V("ts", ts))
	}
	return types.UserID(resp.Messages[0].User), nil
}
