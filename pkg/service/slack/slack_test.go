package slack_test

import (
	"context"
	"testing"
	"time"

	"github.com/deskhound/deskhound/pkg/domain/mock"
	"github.com/deskhound/deskhound/pkg/domain/model/ticket"
	"github.com/deskhound/deskhound/pkg/domain/types"
	slack_svc "github.com/deskhound/deskhound/pkg/service/slack"
	"github.com/m-mizutani/gt"
	slack_sdk "github.com/slack-go/slack"
)

func newMockClient() *mock.SlackClientMock {
	return &mock.SlackClientMock{
		AuthTestFunc: func() (*slack_sdk.AuthTestResponse, error) {
			return &slack_sdk.AuthTestResponse{
				UserID: "U_BOT",
				BotID:  "B_BOT",
				Team:   "acme",
			}, nil
		},
		GetTeamInfoFunc: func() (*slack_sdk.TeamInfo, error) {
			return &slack_sdk.TeamInfo{Domain: "acme"}, nil
		},
	}
}

func TestServiceMessageURL(t *testing.T) {
	svc := gt.R1(slack_svc.New(newMockClient())).NoError(t)

	url := svc.MessageURL("C_HELP", "1700000000.000100")
	gt.V(t, url).Equal("https://acme.slack.com/archives/C_HELP/p1700000000000100")
}

func TestServiceWorkspaceDomainOverride(t *testing.T) {
	client := newMockClient()
	client.GetTeamInfoFunc = func() (*slack_sdk.TeamInfo, error) {
		t.Fatal("team.info must not be called when the domain is configured")
		return nil, nil
	}

	svc := gt.R1(slack_svc.New(client, slack_svc.WithWorkspaceDomain("example"))).NoError(t)
	gt.V(t, svc.MessageURL("C1", "1.2")).Equal("https://example.slack.com/archives/C1/p12")
}

func TestServicePostTicket(t *testing.T) {
	client := newMockClient()
	client.PostMessageContextFunc = func(ctx context.Context, channelID string, options ...slack_sdk.MsgOption) (string, string, error) {
		gt.V(t, channelID).Equal("C_TICKETS")
		return "C_TICKETS", "1700000099.000500", nil
	}

	svc := gt.R1(slack_svc.New(client)).NoError(t)

	tk := ticket.New("C_HELP", "1700000000.000100", "summary", "response", time.Now())
	ts := gt.R1(svc.PostTicket(context.Background(), "C_TICKETS", tk)).NoError(t)
	gt.V(t, ts).Equal(types.MessageTS("1700000099.000500"))
	gt.A(t, client.PostMessageContextCalls()).Length(1)
}

func TestServiceSendDM(t *testing.T) {
	client := newMockClient()
	client.OpenConversationContextFunc = func(ctx context.Context, params *slack_sdk.OpenConversationParameters) (*slack_sdk.Channel, bool, bool, error) {
		gt.A(t, params.Users).Length(1)
		gt.V(t, params.Users[0]).Equal("U_TARGET")
		ch := &slack_sdk.Channel{}
		ch.ID = "D_DM"
		return ch, false, false, nil
	}
	client.PostMessageContextFunc = func(ctx context.Context, channelID string, options ...slack_sdk.MsgOption) (string, string, error) {
		gt.V(t, channelID).Equal("D_DM")
		return channelID, "1.0", nil
	}

	svc := gt.R1(slack_svc.New(client)).NoError(t)
	gt.NoError(t, svc.SendDM(context.Background(), "U_TARGET", "you have a ticket"))
}

func TestServiceMessageAuthor(t *testing.T) {
	client := newMockClient()
	client.GetConversationHistoryContextFunc = func(ctx context.Context, params *slack_sdk.GetConversationHistoryParameters) (*slack_sdk.GetConversationHistoryResponse, error) {
		gt.V(t, params.Latest).Equal("1700000000.000100")
		gt.True(t, params.Inclusive)
		resp := &slack_sdk.GetConversationHistoryResponse{}
		msg := slack_sdk.Message{}
		msg.User = "U_AUTHOR"
		resp.Messages = []slack_sdk.Message{msg}
		return resp, nil
	}

	svc := gt.R1(slack_svc.New(client)).NoError(t)
	author := gt.R1(svc.MessageAuthor(context.Background(), "C_HELP", "1700000000.000100")).NoError(t)
	gt.V(t, author).Equal(types.UserID("U_AUTHOR"))
}

func TestMembershipCache(t *testing.T) {
	pages := map[string][]string{
		"":      {"U001", "U002"},
		"page2": {"U003"},
	}
	client := newMockClient()
	client.GetUsersInConversationContextFunc = func(ctx context.Context, params *slack_sdk.GetUsersInConversationParameters) ([]string, string, error) {
		gt.V(t, params.ChannelID).Equal("C_TICKETS")
		users := pages[params.Cursor]
		next := ""
		if params.Cursor == "" {
			next = "page2"
		}
		return users, next, nil
	}

	cache := slack_svc.NewMembershipCache(client, "C_TICKETS", time.Hour)
	gt.False(t, cache.IsMember("U001"))

	gt.NoError(t, cache.Refresh(context.Background()))

	gt.V(t, cache.MemberCount()).Equal(3)
	gt.True(t, cache.IsMember("U001"))
	gt.True(t, cache.IsMember("U003"))
	gt.False(t, cache.IsMember("U999"))
}

func TestMembershipCacheKeepsOldSetOnFailure(t *testing.T) {
	healthy := true
	client := newMockClient()
	client.GetUsersInConversationContextFunc = func(ctx context.Context, params *slack_sdk.GetUsersInConversationParameters) ([]string, string, error) {
		if !healthy {
			return nil, "", slack_sdk.StatusCodeError{Code: 500}
		}
		return []string{"U001"}, "", nil
	}

	cache := slack_svc.NewMembershipCache(client, "C_TICKETS", time.Hour)
	gt.NoError(t, cache.Refresh(context.Background()))
	gt.True(t, cache.IsMember("U001"))

	healthy = false
	gt.Error(t, cache.Refresh(context.Background()))
	gt.True(t, cache.IsMember("U001"))
}
