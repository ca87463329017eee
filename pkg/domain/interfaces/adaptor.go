package interfaces

import (
	"context"

	"github.com/slack-go/slack"
)

//go:generate go run github.com/matryer/moq@latest -pkg mock -out ../mock/slack.go . SlackClient

// SlackClient is the subset of the slack-go client used by the bot. Kept as an
// interface so tests can substitute a mock without a live workspace.
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	UpdateMessageContext(ctx context.Context, channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)
	DeleteMessageContext(ctx context.Context, channel, messageTimestamp string) (string, string, error)
	AuthTest() (*slack.AuthTestResponse, error)
	GetTeamInfo() (*slack.TeamInfo, error)
	GetUsersInConversationContext(ctx context.Context, params *slack.GetUsersInConversationParameters) ([]string, string, error)
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
}
