package usecase

import (
	"context"

	"github.com/deskhound/deskhound/pkg/domain/model/errs"
	model "github.com/deskhound/deskhound/pkg/domain/model/slack"
	"github.com/deskhound/deskhound/pkg/domain/model/ticket"
	"github.com/deskhound/deskhound/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// resolveReactions are the emoji names that resolve a ticket when added to
// the ticket card or to the original help-channel message.
var resolveReactions = map[string]struct{}{
	"white_check_mark": {},
	"heavy_check_mark": {},
	"done":             {},
}

// HandleHelpMessage opens a ticket for a fresh help-channel post. Thread
// replies, edits and bot posts never open tickets.
func (u *UseCases) HandleHelpMessage(ctx context.Context, msg model.Message) error {
	if msg.ChannelID() != u.helpChannel {
		return nil
	}
	if msg.InThread() || msg.IsEdited() || msg.IsFromBot() || u.slackSvc.IsBotUser(msg.UserID()) {
		return nil
	}

	if _, err := u.CreateTicket(ctx, msg); err != nil {
		return goerr.Wrap(err, "failed to create ticket from help message")
	}
	return nil
}

// HandleThreadReply treats a staff reply under a ticket card as a claim.
// Replies by non-members and replies under non-ticket threads are ignored.
func (u *UseCases) HandleThreadReply(ctx context.Context, msg model.Message) error {
	if msg.ChannelID() != u.ticketsChannel || !msg.InThread() {
		return nil
	}
	if msg.IsFromBot() || u.slackSvc.IsBotUser(msg.UserID()) {
		return nil
	}

	if _, err := u.registry.Get(msg.ThreadTimestamp()); err != nil {
		if goerr.HasTag(err, errs.TagNotFound) {
			return nil
		}
		return err
	}

	if !u.membership.IsMember(msg.UserID()) {
		logging.From(ctx).Info("ignored claim reply from non-member",
			"user", msg.UserID(), "thread_ts", msg.ThreadTimestamp())
		return nil
	}

	return u.Claim(ctx, msg.UserID(), msg.ThreadTimestamp())
}

// HandleReaction resolves a ticket on a recognized done-reaction. Channel
// members may resolve from either message; the original requester may resolve
// their own ticket from the source message even without membership.
func (u *UseCases) HandleReaction(ctx context.Context, reaction model.Reaction) error {
	if _, ok := resolveReactions[reaction.Name]; !ok {
		return nil
	}
	if u.slackSvc.IsBotUser(reaction.User) {
		return nil
	}

	t, err := u.lookupReactionTarget(reaction)
	if err != nil {
		if goerr.HasTag(err, errs.TagNotFound) {
			return nil
		}
		return err
	}

	if !u.membership.IsMember(reaction.User) {
		author, err := u.slackSvc.MessageAuthor(ctx, t.OriginalChannel, t.OriginalTS)
		if err != nil {
			return goerr.Wrap(err, "failed to check original author for reaction resolve")
		}
		if author != reaction.User {
			logging.From(ctx).Info("ignored resolve reaction from unauthorized user",
				"user", reaction.User, "ticket_ts", t.TicketTS)
			return nil
		}
	}

	return u.Resolve(ctx, t.TicketTS)
}

func (u *UseCases) lookupReactionTarget(reaction model.Reaction) (*ticket.Ticket, error) {
	switch reaction.Channel {
	case u.helpChannel:
		return u.registry.GetByOriginal(reaction.Ts)
	case u.ticketsChannel:
		return u.registry.Get(reaction.Ts)
	default:
		return nil, goerr.New("reaction outside watched channels",
			goerr.T(errs.TagNotFound), goerr.V("channel", reaction.Channel))
	}
}

// HandleBlockAction routes button clicks and the assignee select on a ticket
// card. Every action is gated on tickets-channel membership; unauthorized
// clicks are dropped with a log line only.
func (u *UseCases) HandleBlockAction(ctx context.Context, action model.BlockAction) error {
	if !u.membership.IsMember(action.User.ID) {
		logging.From(ctx).Info("ignored block action from non-member",
			"user", action.User.ID, "action", action.ActionID, "ticket_ts", action.TicketTS)
		return nil
	}

	switch action.ActionID {
	case model.ActionIDClaim:
		return u.Claim(ctx, action.User.ID, action.TicketTS)

	case model.ActionIDNotSure:
		return u.MarkNotSure(ctx, action.User.ID, action.TicketTS)

	case model.ActionIDMarkResolved:
		return u.Resolve(ctx, action.TicketTS)

	case model.ActionIDAssignUser:
		if action.SelectedUser == "" {
			return goerr.New("assign action without selected user",
				goerr.T(errs.TagInvalidRequest), goerr.V("ticket_ts", action.TicketTS))
		}
		return u.Assign(ctx, action.TicketTS, action.SelectedUser)

	default:
		logging.From(ctx).Warn("unknown block action", "action", action.ActionID)
		return nil
	}
}
