package approver

import (
	"github.com/fieldhr/rollcall/internal/approver/repository"
	"github.com/fieldhr/rollcall/internal/approver/service"
	"go.uber.org/fx"
)

var Module = fx.Module("approver",
	fx.Provide(
		repository.Provide,
		service.New,
	),
)
