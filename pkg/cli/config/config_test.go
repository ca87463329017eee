package config_test

import (
	"testing"

	"github.com/deskhound/deskhound/pkg/cli/config"
	"github.com/deskhound/deskhound/pkg/repository"
	"github.com/m-mizutani/gt"
)

func TestSlack_Configure(t *testing.T) {
	t.Run("returns error when oauth token is empty", func(t *testing.T) {
		cfg := &config.Slack{}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})
}

func TestSlack_Verifier(t *testing.T) {
	t.Run("returns nil when signing secret is empty", func(t *testing.T) {
		cfg := &config.Slack{}
		gt.Value(t, cfg.Verifier()).Nil()
	})
}

func TestAI_Configure(t *testing.T) {
	t.Run("returns error when endpoint is empty", func(t *testing.T) {
		cfg := &config.AI{}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})
}

func TestSnapshot_Configure(t *testing.T) {
	t.Run("returns error when path is empty", func(t *testing.T) {
		cfg := &config.Snapshot{}
		_, err := cfg.Configure(repository.NewRegistry())
		gt.Error(t, err)
	})
}
