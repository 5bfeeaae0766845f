package handler

import (
	"github.com/go-telegram/bot"

	"github.com/earnbase/earnbot/internal/config"
	"github.com/earnbase/earnbot/internal/gateway"
	"github.com/earnbase/earnbot/internal/identity"
	"github.com/earnbase/earnbot/internal/repository"
	"github.com/earnbase/earnbot/internal/state"
	"github.com/earnbase/earnbot/internal/telegram"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot      *bot.Bot
	cfg      *config.Config
	identity *identity.Client
	gateway  *gateway.Client
	sessions *repository.SessionStore
	state    *state.Store
	evLog    *telegram.EventLogger
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot      *bot.Bot
	Cfg      *config.Config
	Identity *identity.Client
	Gateway  *gateway.Client
	Sessions *repository.SessionStore
	State    *state.Store
	EvLog    *telegram.EventLogger
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:      deps.Bot,
		cfg:      deps.Cfg,
		identity: deps.Identity,
		gateway:  deps.Gateway,
		sessions: deps.Sessions,
		state:    deps.State,
		evLog:    deps.EvLog,
	}
}
