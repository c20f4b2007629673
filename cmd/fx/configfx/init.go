package configfx

import (
	"go.uber.org/fx"

	"github.com/vandana2004/CookingBlog/config"
)

var Module = fx.Provide(config.LoadConfig)
