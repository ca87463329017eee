package slack

import (
	"testing"
	"time"

	"github.com/deskhound/deskhound/pkg/domain/model/ticket"
	"github.com/m-mizutani/gt"
	slack_sdk "github.com/slack-go/slack"
)

func TestBuildHeaderLine(t *testing.T) {
	tk := ticket.New("C_HELP", "1700000000.000100", "summary", "response", time.Now())

	gt.V(t, buildHeaderLine(tk)).Equal("Not Claimed")

	tk.MarkNotSure("U002")
	gt.V(t, buildHeaderLine(tk)).Equal("Not Claimed | Not sure: <@U002>")

	// Claimers take priority over not-sure flags.
	tk.Claim("U001")
	gt.V(t, buildHeaderLine(tk)).Equal("Claimed by: <@U001>")

	tk.Claim("U003")
	gt.V(t, buildHeaderLine(tk)).Equal("Claimed by: <@U001> <@U003>")
}

func TestBuildTicketBlocks(t *testing.T) {
	tk := ticket.New("C_HELP", "1700000000.000100", "Password reset help", "Go to Settings > Security.", time.Now())
	tk.TicketTS = "1700000001.000200"

	blocks := buildTicketBlocks(tk, "https://acme.slack.com/archives/C_HELP/p1700000000000100")

	header := gt.Cast[*slack_sdk.HeaderBlock](t, blocks[0])
	gt.V(t, header.Text.Text).Equal("🎫 Password reset help")

	claimLine := gt.Cast[*slack_sdk.SectionBlock](t, blocks[1])
	gt.V(t, claimLine.Text.Text).Equal("Not Claimed")

	// Last block holds the action buttons.
	actions := gt.Cast[*slack_sdk.ActionBlock](t, blocks[len(blocks)-1])
	gt.V(t, actions.BlockID).Equal("ticket_actions")
	gt.A(t, actions.Elements.ElementSet).Length(4)

	claim := gt.Cast[*slack_sdk.ButtonBlockElement](t, actions.Elements.ElementSet[0])
	gt.V(t, claim.ActionID).Equal("claim")
	gt.V(t, claim.Value).Equal("1700000000.000100")

	assign := gt.Cast[*slack_sdk.SelectBlockElement](t, actions.Elements.ElementSet[3])
	gt.V(t, assign.ActionID).Equal("assign_user")
	gt.V(t, assign.Type).Equal("users_select")
}

func TestBuildTicketBlocksWithoutQuickResponse(t *testing.T) {
	tk := ticket.New("C_HELP", "1700000000.000100", "degraded ticket", "", time.Now())
	tk.TicketTS = "1700000001.000200"

	withResponse := ticket.New("C_HELP", "1700000000.000100", "full ticket", "answer", time.Now())
	withResponse.TicketTS = "1700000001.000300"

	gt.N(t, len(buildTicketBlocks(tk, "https://example.com"))).
		Less(len(buildTicketBlocks(withResponse, "https://example.com")))
}
