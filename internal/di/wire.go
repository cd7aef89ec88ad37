//go:build wireinject

package di

import (
	"github.com/google/wire"

	"dsa-notes/internal/app"
	"dsa-notes/internal/config"
	"dsa-notes/internal/usecase"
)

// InitializeFetch wires the submission fetcher.
func InitializeFetch(cfg *config.Config) (*usecase.FetchSubmissions, func(), error) {
	wire.Build(loggerSet, submissionStoreSet, fetchSet)
	return nil, nil, nil
}

// InitializeOrganize wires the notes organizer.
func InitializeOrganize(cfg *config.Config) *usecase.OrganizeSubmissions {
	wire.Build(loggerSet, submissionStoreSet, organizeSet)
	return nil
}

// InitializeDiagrams wires the design document refresher.
func InitializeDiagrams(cfg *config.Config) *usecase.RefreshDiagrams {
	wire.Build(loggerSet, diagramsSet)
	return nil
}

// InitializeSync wires fetch and organize behind the scheduler.
func InitializeSync(cfg *config.Config) (*app.App, func(), error) {
	wire.Build(loggerSet, submissionStoreSet, fetchSet, organizeSet, appSet)
	return nil, nil, nil
}
