package app

import "docsift/internal/domain"

// App is the dependency graph handed to CLI commands.
type App struct {
	Inspect domain.InspectService
	Runs    domain.RunStore
	Config  Config
}

func New(inspect domain.InspectService, runs domain.RunStore, cfg Config) *App {
	return &App{
		Inspect: inspect,
		Runs:    runs,
		Config:  cfg,
	}
}
