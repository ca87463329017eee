package slack

import (
	"strings"

	model "github.com/deskhound/deskhound/pkg/domain/model/slack"
	"github.com/deskhound/deskhound/pkg/domain/model/ticket"
	"github.com/deskhound/deskhound/pkg/domain/types"
	"github.com/slack-go/slack"
)

// buildHeaderLine renders the claim state line of a ticket card. Claimers win
// over not-sure flags; both empty means unclaimed.
func buildHeaderLine(t *ticket.Ticket) string {
	switch {
	case len(t.Claimers) > 0:
		return "Claimed by: " + joinMentions(t.Claimers)
	case len(t.NotSure) > 0:
		return "Not Claimed | Not sure: " + joinMentions(t.NotSure)
	default:
		return "Not Claimed"
	}
}

func joinMentions(users []types.UserID) string {
	mentions := make([]string, 0, len(users))
	for _, u := range users {
		mentions = append(mentions, u.Mention())
	}
	return strings.Join(mentions, " ")
}

func buildTicketBlocks(t *ticket.Ticket, sourceURL string) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "🎫 "+t.Summary, false, false),
		),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, buildHeaderLine(t), false, false),
			nil,
			nil,
		),
	}

	if t.QuickResponse != "" {
		blocks = append(blocks,
			slack.NewDividerBlock(),
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, "*Suggested response:*\n"+t.QuickResponse, false, false),
				nil,
				nil,
			),
		)
	}

	blocks = append(blocks, slack.NewContextBlock("ticket_source",
		slack.NewTextBlockObject(slack.MarkdownType, "<"+sourceURL+"|Original message>", false, false),
	))

	// The ticket key is not baked into the buttons: the card is posted before
	// its own timestamp (the key) is known. Interaction handlers read the key
	// from the container message timestamp instead.
	claimBtn := slack.NewButtonBlockElement(
		model.ActionIDClaim.String(),
		t.OriginalTS.String(),
		slack.NewTextBlockObject(slack.PlainTextType, "Claim", false, false),
	).WithStyle(slack.StylePrimary)

	notSureBtn := slack.NewButtonBlockElement(
		model.ActionIDNotSure.String(),
		t.OriginalTS.String(),
		slack.NewTextBlockObject(slack.PlainTextType, "Not sure", false, false),
	)

	resolveBtn := slack.NewButtonBlockElement(
		model.ActionIDMarkResolved.String(),
		t.OriginalTS.String(),
		slack.NewTextBlockObject(slack.PlainTextType, "Mark Resolved", false, false),
	).WithStyle(slack.StyleDanger)

	assignSelect := slack.NewOptionsSelectBlockElement(
		slack.OptTypeUser,
		slack.NewTextBlockObject(slack.PlainTextType, "Assign to...", false, false),
		model.ActionIDAssignUser.String(),
	)

	blocks = append(blocks, slack.NewActionBlock("ticket_actions",
		claimBtn, notSureBtn, resolveBtn, assignSelect))

	return blocks
}
