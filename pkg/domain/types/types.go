package types

import "github.com/m-mizutani/goerr/v2"

// ChannelID is a Slack channel identifier (e.g. "C0123456789").
type ChannelID string

func (x ChannelID) String() string {
	return string(x)
}

// MessageTS is a Slack message timestamp (e.g. "1731915600.000100"). Within a
// channel it acts as the unique message ID. The timestamp of a ticket card in
// the tickets channel is the ticket's primary key.
type MessageTS string

func (x MessageTS) String() string {
	return string(x)
}

func (x MessageTS) Validate() error {
	if x == EmptyMessageTS {
		return goerr.New("empty message timestamp")
	}
	return nil
}

const EmptyMessageTS MessageTS = ""

// UserID is a Slack user identifier (e.g. "U0123456789").
type UserID string

func (x UserID) String() string {
	return string(x)
}

// Mention renders the user as a Slack mention.
func (x UserID) Mention() string {
	return "<@" + string(x) + ">"
}
