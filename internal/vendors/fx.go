package vendor

import (
	"github.com/fieldhr/rollcall/internal/vendors/repository"
	"github.com/fieldhr/rollcall/internal/vendors/service"
	"go.uber.org/fx"
)

var Module = fx.Module("vendor",
	fx.Provide(
		repository.Provide,
		service.New,
	),
)
