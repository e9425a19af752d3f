package usecase

import (
	"omnixius-ai/internal/chat"
	"omnixius-ai/internal/gateway"
	"omnixius-ai/internal/router"
	"omnixius-ai/pkg/log"
)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	router   router.Router
	gateway  gateway.Gateway
	l        log.Logger
	modelTag string
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation.
func New(r router.Router, g gateway.Gateway, l log.Logger, modelTag string) *implUseCase {
	return &implUseCase{
		router:   r,
		gateway:  g,
		l:        l,
		modelTag: modelTag,
	}
}
