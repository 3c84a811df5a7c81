package attendance

import (
	"github.com/fieldhr/rollcall/internal/attendance/repository"
	"github.com/fieldhr/rollcall/internal/attendance/service"
	"go.uber.org/fx"
)

var Module = fx.Module("attendance",
	fx.Provide(
		repository.Provide,
		service.New,
	),
)
