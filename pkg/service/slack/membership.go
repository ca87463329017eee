package slack

import (
	"context"
	"sync"
	"time"

	"github.com/deskhound/deskhound/pkg/domain/interfaces"
	"github.com/deskhound/deskhound/pkg/domain/model/errs"
	"github.com/deskhound/deskhound/pkg/domain/types"
	"github.com/deskhound/deskhound/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// MembershipCache answers "is this user a member of the tickets channel", the
// single authorization predicate of the bot. The member list is fetched once
// at startup and then on a fixed interval; up to one interval of staleness is
// an accepted tradeoff.
type MembershipCache struct {
	client   interfaces.SlackClient
	channel  types.ChannelID
	interval time.Duration

	mu      sync.RWMutex
	members map[types.UserID]struct{}
}

func NewMembershipCache(client interfaces.SlackClient, channel types.ChannelID, interval time.Duration) *MembershipCache {
	return &MembershipCache{
		client:   client,
		channel:  channel,
		interval: interval,
		members:  make(map[types.UserID]struct{}),
	}
}

func (x *MembershipCache) IsMember(user types.UserID) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	_, ok := x.members[user]
	return ok
}

func (x *MembershipCache) MemberCount() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.members)
}

// Refresh replaces the cached member set with the channel's current members.
// On failure the previous set is kept.
func (x *MembershipCache) Refresh(ctx context.Context) error {
	members := make(map[types.UserID]struct{})

	params := &slack.GetUsersInConversationParameters{
		ChannelID: x.channel.String(),
		Limit:     200,
	}
	for {
		users, cursor, err := x.client.GetUsersInConversationContext(ctx, params)
		if err != nil {
			return goerr.Wrap(err, "failed to list channel members",
				goerr.T(errs.TagSlackError), goerr.V("channel", x.channel))
		}
		for _, u := range users {
			members[types.UserID(u)] = struct{}{}
		}
		if cursor == "" {
			break
		}
		params.Cursor = cursor
	}

	x.mu.Lock()
	x.members = members
	x.mu.Unlock()

	logging.From(ctx).Debug("refreshed channel membership",
		"channel", x.channel, "members", len(members))
	return nil
}

// Run refreshes the cache on the configured interval until the context is
// cancelled. Refresh failures are logged and the stale set stays in use.
func (x *MembershipCache) Run(ctx context.Context) {
	logger := logging.From(ctx)
	logger.Info("starting membership refresh loop",
		"channel", x.channel, "interval", x.interval)

	ticker := time.NewTicker(x.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("membership refresh loop stopped")
			return
		case <-ticker.C:
			if err := x.Refresh(ctx); err != nil {
				logger.Error("failed to refresh channel membership", "error", err)
			}
		}
	}
}
