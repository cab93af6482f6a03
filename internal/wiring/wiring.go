// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/platdep/internal/adapters/config"
	_ "go.trai.ch/platdep/internal/adapters/download"
	_ "go.trai.ch/platdep/internal/adapters/host"
	_ "go.trai.ch/platdep/internal/adapters/installer"
	_ "go.trai.ch/platdep/internal/adapters/linker"
	_ "go.trai.ch/platdep/internal/adapters/logger"
	_ "go.trai.ch/platdep/internal/adapters/platform"
	_ "go.trai.ch/platdep/internal/adapters/reporter"
	_ "go.trai.ch/platdep/internal/adapters/repository"
	_ "go.trai.ch/platdep/internal/adapters/state"
	_ "go.trai.ch/platdep/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/platdep/internal/app"
)
