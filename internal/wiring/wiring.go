// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/basidwild/clawdbox/internal/adapters/cargo"
	_ "github.com/basidwild/clawdbox/internal/adapters/config"
	_ "github.com/basidwild/clawdbox/internal/adapters/fs"
	_ "github.com/basidwild/clawdbox/internal/adapters/logger"
	_ "github.com/basidwild/clawdbox/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/basidwild/clawdbox/internal/app"
	_ "github.com/basidwild/clawdbox/internal/engine/checker"
)
