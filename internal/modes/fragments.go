package modes

import (
	f "github.com/firefly-engineering/packcfg/internal/fragment"
)

// Base is the lowest-precedence fragment: entry point, static asset rules
// and the plugins every build runs.
func Base(env Env) *f.Mapping {
	return f.Map(
		f.P("mode", f.String(env.Mode)),
		f.P("entry", f.String(rootPath(env, "src/static/index.js"))),
		f.P("module", f.Map(
			f.P("rules", f.Seq(
				f.Map(
					f.P("test", f.String(`\.html$`)),
					f.P("exclude", f.String("node_modules")),
					f.P("loader", f.String("file-loader?name=[name].[ext]")),
				),
				f.Map(
					f.P("test", f.String(`\.(eot|svg|ttf|woff|woff2)$`)),
					f.P("loader", f.String("file-loader")),
				),
			)),
		)),
		f.P("plugins", f.Seq(
			plugin("StyleLintPlugin"),
		)),
	)
}

// DevelopmentFragment enables hot reloading, the elm debugger and the
// development server.
func DevelopmentFragment(env Env) *f.Mapping {
	return f.Map(
		f.P("module", f.Map(
			f.P("rules", f.Seq(
				f.Map(
					f.P("test", f.String(`\.elm$`)),
					f.P("exclude", strs("elm-stuff", "node_modules")),
					f.P("use", f.Seq(
						f.Map(f.P("loader", f.String("elm-hot-webpack-loader"))),
						f.Map(
							f.P("loader", f.String("elm-webpack-loader")),
							f.P("options", f.Map(
								f.P("cwd", f.String(rootPath(env, "."))),
								f.P("debug", f.Bool(true)),
							)),
						),
					)),
				),
				f.Map(
					f.P("test", f.String(`\.less$`)),
					f.P("use", strs("style-loader", "css-loader", "postcss-loader", "less-loader")),
				),
			)),
		)),
		f.P("plugins", f.Seq(
			plugin("HotModuleReplacementPlugin"),
			plugin("DashboardPlugin"),
		)),
		f.P("devServer", f.Map(
			f.P("contentBase", f.String("./src/static")),
			f.P("historyApiFallback", f.Bool(true)),
			f.P("inline", f.Bool(true)),
			f.P("stats", f.String("errors-only")),
			f.P("hot", f.Bool(true)),
		)),
	)
}

// ProductionFragment compiles elm with optimizations, extracts stylesheets
// and minimizes the bundle. No dev server, no hot reloading.
func ProductionFragment(env Env) *f.Mapping {
	return f.Map(
		f.P("module", f.Map(
			f.P("rules", f.Seq(
				f.Map(
					f.P("test", f.String(`\.elm$`)),
					f.P("exclude", strs("elm-stuff", "node_modules")),
					f.P("use", f.Seq(
						f.Map(
							f.P("loader", f.String("elm-webpack-loader")),
							f.P("options", f.Map(
								f.P("cwd", f.String(rootPath(env, "."))),
								f.P("optimize", f.Bool(true)),
							)),
						),
					)),
				),
				f.Map(
					f.P("test", f.String(`\.less$`)),
					f.P("use", strs("mini-css-extract-plugin/loader", "css-loader", "postcss-loader", "less-loader")),
				),
			)),
		)),
		f.P("plugins", f.Seq(
			plugin("MiniCssExtractPlugin"),
		)),
		f.P("optimization", f.Map(
			f.P("minimize", f.Bool(true)),
		)),
	)
}
