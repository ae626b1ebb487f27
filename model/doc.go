// Package model names the Gemini models each gateway operation uses.
//
// A [Set] maps operations to model identifiers. [Defaults] returns the set the
// gateway ships with; individual entries can be overridden from configuration:
//
//	models := model.Defaults().Merge(model.Set{Search: "gemini-2.5-flash"})
//	gw := gateway.New(gateway.Config{Models: models})
//
// Image generation picks its model by size tier: [Set.ImageFor] returns the
// fast image model for 1K output and the pro image model for 2K and 4K.
package model
