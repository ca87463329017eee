package http_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	server "github.com/deskhound/deskhound/pkg/controller/http"
	slack_ctrl "github.com/deskhound/deskhound/pkg/controller/slack"
	"github.com/deskhound/deskhound/pkg/domain/interfaces"
	"github.com/deskhound/deskhound/pkg/domain/mock"
	slack_model "github.com/deskhound/deskhound/pkg/domain/model/slack"
	"github.com/m-mizutani/gt"
)

type useCaseInterface struct {
	interfaces.SlackEventUsecases
	interfaces.SlackInteractionUsecases
}

func calculateSlackSignature(payload string, ts string, signingSecret string) string {
	baseString := "v0:" + ts + ":" + payload
	mac := hmac.New(sha256.New, []byte(signingSecret))
	mac.Write([]byte(baseString))
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}

func signedRequest(t *testing.T, path, body, contentType, signingSecret string) *http.Request {
	t.Helper()
	ts := fmt.Sprint(time.Now().Unix())
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Slack-Signature", calculateSlackSignature(body, ts, signingSecret))
	req.Header.Set("X-Slack-Request-Timestamp", ts)
	return req.WithContext(slack_ctrl.WithSync(context.Background()))
}

const messageEventJSON = `{
	"type": "event_callback",
	"event": {
		"type": "message",
		"channel": "C_HELP",
		"user": "U8JLN34SV",
		"text": "How do I reset my password?",
		"ts": "1700000000.000100",
		"event_ts": "1700000000.000100",
		"channel_type": "channel"
	}
}`

const reactionEventJSON = `{
	"type": "event_callback",
	"event": {
		"type": "reaction_added",
		"user": "U8JLN34SV",
		"reaction": "white_check_mark",
		"item": {
			"type": "message",
			"channel": "C_HELP",
			"ts": "1700000000.000100"
		},
		"event_ts": "1700000001.000000"
	}
}`

const interactionJSON = `{
	"type": "block_actions",
	"user": {"id": "U8JLN34SV", "name": "alice"},
	"channel": {"id": "C_TICKETS"},
	"message": {"ts": "1700000002.000200"},
	"actions": [
		{"action_id": "claim", "block_id": "ticket_actions", "value": "1700000000.000100", "type": "button"}
	]
}`

func TestSlackEventHandler(t *testing.T) {
	signingSecret := "test_signing_secret"
	eventMock := &mock.SlackEventUsecasesMock{
		HandleHelpMessageFunc: func(ctx context.Context, msg slack_model.Message) error {
			gt.Equal(t, msg.ChannelID(), "C_HELP")
			gt.Equal(t, msg.UserID(), "U8JLN34SV")
			gt.Equal(t, msg.Text(), "How do I reset my password?")
			return nil
		},
	}
	uc := &useCaseInterface{SlackEventUsecases: eventMock}
	srv := server.New(uc, server.WithSlackVerifier(slack_model.NewPayloadVerifier(signingSecret)))

	t.Run("message event with valid signature", func(t *testing.T) {
		req := signedRequest(t, "/hooks/slack/event", messageEventJSON, "application/json", signingSecret)
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		gt.Equal(t, http.StatusOK, w.Code)
		gt.A(t, eventMock.HandleHelpMessageCalls()).Length(1)
	})

	t.Run("invalid signature is rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/hooks/slack/event", strings.NewReader(messageEventJSON))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Slack-Signature", "v0=deadbeef")
		req.Header.Set("X-Slack-Request-Timestamp", fmt.Sprint(time.Now().Unix()))
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		gt.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("url verification challenge", func(t *testing.T) {
		body := `{"token":"tok","challenge":"challenge_value","type":"url_verification"}`
		req := signedRequest(t, "/hooks/slack/event", body, "application/json", signingSecret)
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		gt.Equal(t, http.StatusOK, w.Code)
		gt.Equal(t, w.Body.String(), "challenge_value")
	})
}

func TestSlackReactionHandler(t *testing.T) {
	signingSecret := "test_signing_secret"
	eventMock := &mock.SlackEventUsecasesMock{
		HandleReactionFunc: func(ctx context.Context, reaction slack_model.Reaction) error {
			gt.Equal(t, reaction.Name, "white_check_mark")
			gt.Equal(t, reaction.User, "U8JLN34SV")
			gt.Equal(t, reaction.Channel, "C_HELP")
			gt.Equal(t, reaction.Ts, "1700000000.000100")
			return nil
		},
	}
	uc := &useCaseInterface{SlackEventUsecases: eventMock}
	srv := server.New(uc, server.WithSlackVerifier(slack_model.NewPayloadVerifier(signingSecret)))

	req := signedRequest(t, "/hooks/slack/event", reactionEventJSON, "application/json", signingSecret)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	gt.Equal(t, http.StatusOK, w.Code)
	gt.A(t, eventMock.HandleReactionCalls()).Length(1)
}

func TestSlackInteractionHandler(t *testing.T) {
	signingSecret := "test_signing_secret"
	interactionMock := &mock.SlackInteractionUsecasesMock{
		HandleBlockActionFunc: func(ctx context.Context, action slack_model.BlockAction) error {
			gt.Equal(t, action.User.ID, "U8JLN34SV")
			gt.Equal(t, action.ActionID, slack_model.ActionIDClaim)
			gt.Equal(t, action.TicketTS, "1700000002.000200")
			return nil
		},
	}
	uc := &useCaseInterface{SlackInteractionUsecases: interactionMock}
	srv := server.New(uc, server.WithSlackVerifier(slack_model.NewPayloadVerifier(signingSecret)))

	form := url.Values{}
	form.Add("payload", interactionJSON)
	body := form.Encode()

	req := signedRequest(t, "/hooks/slack/interaction", body, "application/x-www-form-urlencoded", signingSecret)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	gt.Equal(t, http.StatusOK, w.Code)
	gt.A(t, interactionMock.HandleBlockActionCalls()).Length(1)
}

func TestHealthCheck(t *testing.T) {
	srv := server.New(&useCaseInterface{})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	gt.Equal(t, http.StatusOK, w.Code)
	gt.Equal(t, w.Body.String(), "OK")
}
