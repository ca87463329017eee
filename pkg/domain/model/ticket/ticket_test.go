package ticket_test

import (
	"testing"
	"time"

	"github.com/deskhound/deskhound/pkg/domain/model/ticket"
	"github.com/deskhound/deskhound/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestClaimOrder(t *testing.T) {
	tk := ticket.New("C_HELP", "1700000000.000100", "summary", "response", time.Now())

	gt.True(t, tk.Claim("U001"))
	gt.True(t, tk.Claim("U002"))
	gt.True(t, tk.Claim("U003"))

	gt.A(t, tk.Claimers).Length(3)
	gt.V(t, tk.Claimers[0]).Equal(types.UserID("U001"))
	gt.V(t, tk.Claimers[1]).Equal(types.UserID("U002"))
	gt.V(t, tk.Claimers[2]).Equal(types.UserID("U003"))
}

func TestClaimIdempotent(t *testing.T) {
	tk := ticket.New("C_HELP", "1700000000.000100", "summary", "response", time.Now())

	gt.True(t, tk.Claim("U001"))
	gt.False(t, tk.Claim("U001"))
	gt.A(t, tk.Claimers).Length(1)

	gt.True(t, tk.MarkNotSure("U002"))
	gt.False(t, tk.MarkNotSure("U002"))
	gt.A(t, tk.NotSure).Length(1)
}

func TestClaimedBy(t *testing.T) {
	tk := ticket.New("C_HELP", "1700000000.000100", "", "", time.Now())
	gt.False(t, tk.ClaimedBy("U001"))
	tk.Claim("U001")
	gt.True(t, tk.ClaimedBy("U001"))
	gt.False(t, tk.ClaimedBy("U002"))
}

func TestValidate(t *testing.T) {
	tk := ticket.New("C_HELP", "1700000000.000100", "s", "r", time.Now())
	gt.Error(t, tk.Validate()) // no ticket TS assigned yet

	tk.TicketTS = "1700000001.000200"
	gt.NoError(t, tk.Validate())

	tk.OriginalChannel = ""
	gt.Error(t, tk.Validate())
}
