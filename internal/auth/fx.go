package auth

import (
	"github.com/fieldhr/rollcall/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth",
	fx.Provide(service.New),
)
