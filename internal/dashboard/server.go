// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// New builds the dashboard's Echo instance over a cleaned table. The table
// is immutable after startup, so concurrent requests need no locking.
func New(table *types.Table, serve types.ServeConfig, agg types.AggregateConfig) *echo.Echo {
	h := NewHandler(table, serve, agg)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	e.GET("/", h.Index)
	e.GET("/charts/:kind", h.Chart)
	e.GET("/download", h.Download)

	return e
}
