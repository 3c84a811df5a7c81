package designation

import (
	"github.com/fieldhr/rollcall/internal/designation/domain"
	"github.com/fieldhr/rollcall/internal/designation/service"
	"github.com/fieldhr/rollcall/pkg/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("designation",
	fx.Provide(
		repository.ProvideStore[domain.Designation],
		service.New,
	),
)
