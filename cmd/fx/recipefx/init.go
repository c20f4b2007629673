package recipefx

import (
	"go.uber.org/fx"

	"github.com/vandana2004/CookingBlog/config"
	"github.com/vandana2004/CookingBlog/internal/api"
	"github.com/vandana2004/CookingBlog/internal/assets"
	"github.com/vandana2004/CookingBlog/internal/service"
	"github.com/vandana2004/CookingBlog/internal/store"
)

var Module = fx.Options(
	fx.Provide(provideRecipeService),
	fx.Provide(api.NewRecipeHandler),
	fx.Provide(api.NewHealthHandler),
)

func provideRecipeService(cfg *config.Config, st store.Store, host assets.Host) service.IRecipeService {
	return service.NewRecipeService(st, host, cfg.StagingDir)
}
