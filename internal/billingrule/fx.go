package billingrule

import (
	"github.com/fieldhr/rollcall/internal/billingrule/domain"
	"github.com/fieldhr/rollcall/internal/billingrule/service"
	"github.com/fieldhr/rollcall/pkg/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("billingrule",
	fx.Provide(
		repository.ProvideStore[domain.BillingCycleRule],
		service.New,
	),
)
