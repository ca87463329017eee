package interfaces

import (
	"context"

	model "github.com/deskhound/deskhound/pkg/domain/model/slack"
)

//go:generate go run github.com/matryer/moq@latest -pkg mock -out ../mock/usecase.go . SlackEventUsecases SlackInteractionUsecases

type SlackEventUsecases interface {
	HandleHelpMessage(ctx context.Context, msg model.Message) error
	HandleThreadReply(ctx context.Context, msg model.Message) error
	HandleReaction(ctx context.Context, reaction model.Reaction) error
}

type SlackInteractionUsecases interface {
	HandleBlockAction(ctx context.Context, action model.BlockAction) error
}
