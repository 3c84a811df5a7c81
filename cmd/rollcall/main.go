package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/fieldhr/rollcall/internal/config"
	"github.com/fieldhr/rollcall/internal/migration"
	"github.com/fieldhr/rollcall/internal/observability"
	"github.com/fieldhr/rollcall/internal/server"
	"github.com/fieldhr/rollcall/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
