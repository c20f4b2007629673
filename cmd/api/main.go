package main

import (
	"go.uber.org/fx"

	"github.com/vandana2004/CookingBlog/cmd/fx/assetfx"
	"github.com/vandana2004/CookingBlog/cmd/fx/configfx"
	"github.com/vandana2004/CookingBlog/cmd/fx/httpfx"
	"github.com/vandana2004/CookingBlog/cmd/fx/recipefx"
	"github.com/vandana2004/CookingBlog/cmd/fx/sessionfx"
	"github.com/vandana2004/CookingBlog/cmd/fx/storefx"
)

func appOptions() fx.Option {
	return fx.Options(
		configfx.Module,
		storefx.Module,
		sessionfx.Module,
		assetfx.Module,
		recipefx.Module,
		httpfx.Module,
	)
}

func main() {
	fx.New(appOptions()).Run()
}
