package usecase

import (
	"context"

	"github.com/deskhound/deskhound/pkg/domain/interfaces"
	"github.com/deskhound/deskhound/pkg/domain/types"
	"github.com/deskhound/deskhound/pkg/repository"
	"github.com/deskhound/deskhound/pkg/service/ai"
	slack_svc "github.com/deskhound/deskhound/pkg/service/slack"
)

// AIClient is the summarization boundary: one call, two fields back.
type AIClient interface {
	Ask(ctx context.Context, text string) (*ai.Result, error)
}

// UseCases implements the ticket lifecycle: create on help-channel messages,
// claim/flag/assign/resolve on staff actions. All platform and AI access goes
// through the injected services; ticket state lives in the registry with the
// store mirroring it to disk.
type UseCases struct {
	registry   *repository.Registry
	store      *repository.Store
	slackSvc   *slack_svc.Service
	membership *slack_svc.MembershipCache
	aiClient   AIClient

	helpChannel    types.ChannelID
	ticketsChannel types.ChannelID
}

var _ interfaces.SlackEventUsecases = &UseCases{}
var _ interfaces.SlackInteractionUsecases = &UseCases{}

type Option func(*UseCases)

func WithAIClient(aiClient AIClient) Option {
	return func(u *UseCases) {
		u.aiClient = aiClient
	}
}

func WithStore(store *repository.Store) Option {
	return func(u *UseCases) {
		u.store = store
	}
}

func New(registry *repository.Registry, slackSvc *slack_svc.Service, membership *slack_svc.MembershipCache, helpChannel, ticketsChannel types.ChannelID, opts ...Option) *UseCases {
	u := &UseCases{
		registry:       registry,
		slackSvc:       slackSvc,
		membership:     membership,
		helpChannel:    helpChannel,
		ticketsChannel: ticketsChannel,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// persist mirrors the registry to disk. Best effort by contract: a failed
// save never rolls back the in-memory mutation that triggered it.
func (u *UseCases) persist(ctx context.Context) {
	if u.store != nil {
		u.store.Save(ctx)
	}
}
