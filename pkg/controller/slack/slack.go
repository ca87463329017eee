package slack

import (
	"context"
	"runtime/debug"

	"github.com/deskhound/deskhound/pkg/domain/interfaces"
	"github.com/deskhound/deskhound/pkg/domain/model/errs"
	slack_model "github.com/deskhound/deskhound/pkg/domain/model/slack"
	"github.com/deskhound/deskhound/pkg/domain/types"
	"github.com/deskhound/deskhound/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()
	newCtx = logging.With(newCtx, logging.From(ctx))
	return newCtx
}

// dispatch acknowledges the Slack request immediately and runs the handler in
// the background. Slack retries events that are not answered within 3 seconds,
// so handlers must never block the HTTP response.
func dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	if IsSync(ctx) {
		if err := handler(newCtx); err != nil {
			errs.Handle(newCtx, err)
		}
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				logger := logging.From(newCtx)
				logger.Error("panic recovered in background goroutine",
					"error", r,
					"stack", string(stack),
				)
				errs.Handle(newCtx, goerr.New("panic recovered in background goroutine",
					goerr.V("recover", r),
					goerr.V("stack", string(stack))))
			}
		}()

		if err := handler(newCtx); err != nil {
			errs.Handle(newCtx, err)
		}
	}()
}

type Controller struct {
	event       interfaces.SlackEventUsecases
	interaction interfaces.SlackInteractionUsecases
}

func New(event interfaces.SlackEventUsecases, interaction interfaces.SlackInteractionUsecases) *Controller {
	return &Controller{
		event:       event,
		interaction: interaction,
	}
}

func (x *Controller) HandleSlackMessage(ctx context.Context, event *slackevents.MessageEvent) error {
	logger := logging.From(ctx).With("event_ts", event.EventTimeStamp)
	ctx = logging.With(ctx, logger)

	slackMsg := slack_model.NewMessage(event)
	if slackMsg == nil {
		return nil
	}

	dispatch(ctx, func(ctx context.Context) error {
		if slackMsg.InThread() {
			return x.event.HandleThreadReply(ctx, *slackMsg)
		}
		return x.event.HandleHelpMessage(ctx, *slackMsg)
	})

	return nil
}

func (x *Controller) HandleSlackReaction(ctx context.Context, event *slackevents.ReactionAddedEvent) error {
	logger := logging.From(ctx).With("event_ts", event.EventTimestamp)
	ctx = logging.With(ctx, logger)

	reaction := slack_model.NewReaction(event)
	if reaction == nil {
		return nil
	}

	dispatch(ctx, func(ctx context.Context) error {
		return x.event.HandleReaction(ctx, *reaction)
	})

	return nil
}

func (x *Controller) HandleSlackInteraction(ctx context.Context, interaction slack.InteractionCallback) error {
	logger := logging.From(ctx).With("trigger_id", interaction.TriggerID)
	ctx = logging.With(ctx, logger)

	dispatch(ctx, func(ctx context.Context) error {
		switch interaction.Type {
		case slack.InteractionTypeBlockActions:
			return x.handleBlockActions(ctx, interaction)
		}

		return nil
	})

	return nil
}

func (x *Controller) handleBlockActions(ctx context.Context, interaction slack.InteractionCallback) error {
	user := slack_model.User{
		ID:   types.UserID(interaction.User.ID),
		Name: interaction.User.Name,
	}

	// The ticket card is the message the buttons live on, so the container
	// message timestamp is the ticket key.
	ticketTS := types.MessageTS(interaction.Message.Timestamp)

	for _, action := range interaction.ActionCallback.BlockActions {
		blockAction := slack_model.BlockAction{
			User:         user,
			ActionID:     slack_model.ActionID(action.ActionID),
			TicketTS:     ticketTS,
			SelectedUser: types.UserID(action.SelectedUser),
		}
		if err := x.interaction.HandleBlockAction(ctx, blockAction); err != nil {
			return err
		}
	}

	return nil
}
