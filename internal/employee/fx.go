package employee

import (
	"github.com/fieldhr/rollcall/internal/employee/repository"
	"github.com/fieldhr/rollcall/internal/employee/service"
	"go.uber.org/fx"
)

var Module = fx.Module("employee",
	fx.Provide(
		repository.Provide,
		service.New,
	),
)
