package location

import (
	"github.com/fieldhr/rollcall/internal/location/repository"
	"github.com/fieldhr/rollcall/internal/location/service"
	"go.uber.org/fx"
)

var Module = fx.Module("location",
	fx.Provide(
		repository.Provide,
		service.New,
	),
)
