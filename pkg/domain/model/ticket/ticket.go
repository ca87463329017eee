package ticket

import (
	"time"

	"github.com/deskhound/deskhound/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Ticket is one tracked support request. It is keyed by the timestamp of its
// rendered card in the tickets channel; the key is assigned once, by the post
// call that creates the card, and never changes.
type Ticket struct {
	OriginalChannel types.ChannelID `json:"original_channel"`
	OriginalTS      types.MessageTS `json:"original_ts"`
	TicketTS        types.MessageTS `json:"ticket_ts"`

	// Claimers and NotSure preserve first-signal order and suppress
	// duplicates. Both only grow while the ticket is open.
	Claimers []types.UserID `json:"claimers"`
	NotSure  []types.UserID `json:"not_sure"`

	// Summary and QuickResponse are captured from the AI endpoint at creation
	// and never mutated. Both may be empty for degraded tickets.
	Summary       string `json:"summary"`
	QuickResponse string `json:"quick_response"`

	CreatedAt time.Time `json:"created_at"`
}

func New(channel types.ChannelID, originalTS types.MessageTS, summary, quickResponse string, now time.Time) *Ticket {
	return &Ticket{
		OriginalChannel: channel,
		OriginalTS:      originalTS,
		Claimers:        []types.UserID{},
		NotSure:         []types.UserID{},
		Summary:         summary,
		QuickResponse:   quickResponse,
		CreatedAt:       now,
	}
}

func (x *Ticket) Validate() error {
	if err := x.TicketTS.Validate(); err != nil {
		return goerr.Wrap(err, "invalid ticket timestamp")
	}
	if err := x.OriginalTS.Validate(); err != nil {
		return goerr.Wrap(err, "invalid original timestamp")
	}
	if x.OriginalChannel == "" {
		return goerr.New("original channel is required")
	}
	return nil
}

// Claim adds the user to the claimer set. It returns false when the user has
// already claimed the ticket.
func (x *Ticket) Claim(user types.UserID) bool {
	if contains(x.Claimers, user) {
		return false
	}
	x.Claimers = append(x.Claimers, user)
	return true
}

// MarkNotSure adds the user to the not-sure set. It returns false when the
// user has already flagged the ticket.
func (x *Ticket) MarkNotSure(user types.UserID) bool {
	if contains(x.NotSure, user) {
		return false
	}
	x.NotSure = append(x.NotSure, user)
	return true
}

func (x *Ticket) ClaimedBy(user types.UserID) bool {
	return contains(x.Claimers, user)
}

func contains(users []types.UserID, user types.UserID) bool {
	for _, u := range users {
		if u == user {
			return true
		}
	}
	return false
}
