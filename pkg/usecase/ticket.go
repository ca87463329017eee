package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	model "github.com/deskhound/deskhound/pkg/domain/model/slack"
	"github.com/deskhound/deskhound/pkg/domain/model/ticket"
	"github.com/deskhound/deskhound/pkg/domain/types"
	"github.com/deskhound/deskhound/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const resolvedReply = "✅ This request has been marked as resolved. If you still need help, feel free to post a new message here and a fresh ticket will be opened."

// degradedSummaryLimit bounds the excerpt used as a ticket title when the AI
// call fails.
const degradedSummaryLimit = 80

// CreateTicket summarizes the source message, posts a ticket card into the
// tickets channel, and registers the new ticket keyed by the card timestamp.
// An AI failure degrades the ticket to an excerpt title instead of dropping
// the request on the floor.
func (u *UseCases) CreateTicket(ctx context.Context, msg model.Message) (*ticket.Ticket, error) {
	logger := logging.From(ctx)

	summary := excerpt(msg.Text(), degradedSummaryLimit)
	quickResponse := ""
	if u.aiClient != nil {
		result, err := u.aiClient.Ask(ctx, msg.Text())
		if err != nil {
			logger.Error("AI summarization failed, creating degraded ticket",
				"error", err, "original_ts", msg.Timestamp())
		} else {
			summary = result.Summary
			quickResponse = result.Response
		}
	}

	t := ticket.New(msg.ChannelID(), msg.Timestamp(), summary, quickResponse, time.Now())

	ticketTS, err := u.slackSvc.PostTicket(ctx, u.ticketsChannel, t)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render ticket card")
	}
	t.TicketTS = ticketTS

	if err := u.registry.Put(t); err != nil {
		return nil, goerr.Wrap(err, "failed to register ticket")
	}
	u.persist(ctx)

	logger.Info("created ticket",
		"ticket_ts", t.TicketTS, "original_ts", t.OriginalTS, "summary", t.Summary)
	return t, nil
}

// Claim adds the user to the claimer set and re-renders the card. Claiming
// twice is a no-op on state but still refreshes the display.
func (u *UseCases) Claim(ctx context.Context, user types.UserID, ticketTS types.MessageTS) error {
	t, changed, err := u.registry.Claim(ticketTS, user)
	if err != nil {
		return goerr.Wrap(err, "failed to claim ticket")
	}
	if changed {
		logging.From(ctx).Info("ticket claimed", "ticket_ts", ticketTS, "user", user)
	}
	return u.updateDisplay(ctx, t)
}

// MarkNotSure flags the user's uncertainty on the ticket.
func (u *UseCases) MarkNotSure(ctx context.Context, user types.UserID, ticketTS types.MessageTS) error {
	t, changed, err := u.registry.MarkNotSure(ticketTS, user)
	if err != nil {
		return goerr.Wrap(err, "failed to mark ticket as not sure")
	}
	if changed {
		logging.From(ctx).Info("ticket flagged not sure", "ticket_ts", ticketTS, "user", user)
	}
	return u.updateDisplay(ctx, t)
}

// Assign DMs the target a deep link to the ticket card. It does not mutate
// ticket state and does not require the target to be a channel member.
func (u *UseCases) Assign(ctx context.Context, ticketTS types.MessageTS, target types.UserID) error {
	t, err := u.registry.Get(ticketTS)
	if err != nil {
		return goerr.Wrap(err, "failed to look up ticket for assignment")
	}

	link := u.slackSvc.MessageURL(u.ticketsChannel, t.TicketTS)
	text := "👋 You have been assigned a support ticket: *" + t.Summary + "*\n" + link
	if err := u.slackSvc.SendDM(ctx, target, text); err != nil {
		return goerr.Wrap(err, "failed to notify assignee", goerr.V("target", target))
	}

	logging.From(ctx).Info("ticket assigned", "ticket_ts", ticketTS, "target", target)
	return nil
}

// Resolve notifies the requester in the source thread, removes the ticket
// card, and deletes the record with its index entry. Platform calls come
// first: if any of them fails the in-memory state is left untouched.
func (u *UseCases) Resolve(ctx context.Context, ticketTS types.MessageTS) error {
	t, err := u.registry.Get(ticketTS)
	if err != nil {
		return goerr.Wrap(err, "failed to look up ticket for resolution")
	}

	if err := u.slackSvc.ReplyInThread(ctx, t.OriginalChannel, t.OriginalTS, resolvedReply); err != nil {
		return goerr.Wrap(err, "failed to notify requester of resolution")
	}
	if err := u.slackSvc.DeleteMessage(ctx, u.ticketsChannel, t.TicketTS); err != nil {
		return goerr.Wrap(err, "failed to remove ticket card")
	}

	if err := u.registry.Delete(ticketTS); err != nil {
		return goerr.Wrap(err, "failed to delete ticket record")
	}
	u.persist(ctx)

	logging.From(ctx).Info("ticket resolved", "ticket_ts", ticketTS)
	return nil
}

// updateDisplay re-renders the card in place from current state and persists.
// The persist happens even when the render fails: in-memory state already
// changed and the snapshot must follow it.
func (u *UseCases) updateDisplay(ctx context.Context, t *ticket.Ticket) error {
	err := u.slackSvc.UpdateTicket(ctx, u.ticketsChannel, t)
	u.persist(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to update ticket display")
	}
	return nil
}

func excerpt(s string, limit int) string {
	s = trimToLine(s)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}

func trimToLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
