package httpfx

import (
	"go.uber.org/fx"

	"github.com/vandana2004/CookingBlog/internal/router"
	"github.com/vandana2004/CookingBlog/internal/server"
)

var Module = fx.Options(
	fx.Provide(router.SetupRouter),
	fx.Provide(server.NewServer),
	fx.Invoke(registerServer),
)

func registerServer(lc fx.Lifecycle, srv *server.Server) {
	lc.Append(fx.Hook{
		OnStart: srv.Start,
		OnStop:  srv.Shutdown,
	})
}
