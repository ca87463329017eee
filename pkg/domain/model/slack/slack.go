package slack

import (
	"strings"

	"github.com/deskhound/deskhound/pkg/domain/types"
	"github.com/slack-go/slack/slackevents"
)

type User struct {
	ID   types.UserID `json:"id"`
	Name string       `json:"name"`
}

// Message is the validated form of an inbound Slack message event. Loose
// platform payloads are converted to this at the controller boundary so the
// usecase layer only ever sees a closed set of shapes.
type Message struct {
	channel  types.ChannelID
	ts       types.MessageTS
	threadTS types.MessageTS
	user     types.UserID
	text     string
	subType  string
	botID    string
}

func NewMessage(ev *slackevents.MessageEvent) *Message {
	if ev == nil {
		return nil
	}
	return &Message{
		channel:  types.ChannelID(ev.Channel),
		ts:       types.MessageTS(ev.TimeStamp),
		threadTS: types.MessageTS(ev.ThreadTimeStamp),
		user:     types.UserID(ev.User),
		text:     ev.Text,
		subType:  ev.SubType,
		botID:    ev.BotID,
	}
}

func (x *Message) ChannelID() types.ChannelID {
	return x.channel
}

func (x *Message) Timestamp() types.MessageTS {
	return x.ts
}

func (x *Message) ThreadTimestamp() types.MessageTS {
	return x.threadTS
}

func (x *Message) UserID() types.UserID {
	return x.user
}

func (x *Message) Text() string {
	return x.text
}

// InThread reports whether the message is a reply inside a thread.
func (x *Message) InThread() bool {
	return x.threadTS != types.EmptyMessageTS && x.threadTS != x.ts
}

// IsEdited reports whether the event is an edit of an existing message rather
// than a new post.
func (x *Message) IsEdited() bool {
	return x.subType == "message_changed"
}

// IsFromBot reports whether the message was posted by a bot (including
// ourselves). Bot posts never open tickets and never count as claims.
func (x *Message) IsFromBot() bool {
	return x.botID != "" || x.subType == "bot_message"
}

// Reaction is the validated form of a reaction_added event.
type Reaction struct {
	User    types.UserID
	Name    string
	Channel types.ChannelID
	Ts      types.MessageTS
}

func NewReaction(ev *slackevents.ReactionAddedEvent) *Reaction {
	if ev == nil || ev.Item.Type != "message" {
		return nil
	}
	return &Reaction{
		User:    types.UserID(ev.User),
		Name:    strings.TrimSpace(ev.Reaction),
		Channel: types.ChannelID(ev.Item.Channel),
		Ts:      types.MessageTS(ev.Item.Timestamp),
	}
}

type ActionID string

const (
	ActionIDClaim        ActionID = "claim"
	ActionIDNotSure      ActionID = "not_sure"
	ActionIDMarkResolved ActionID = "mark_resolved"
	ActionIDAssignUser   ActionID = "assign_user"
)

func (x ActionID) String() string {
	return string(x)
}

// BlockAction is one button click or select choice on a ticket card. TicketTS
// comes from the container message timestamp, which is the card itself.
type BlockAction struct {
	User         User
	ActionID     ActionID
	TicketTS     types.MessageTS
	SelectedUser types.UserID
}
