package di

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/wire"

	"dsa-notes/internal/adapter/docs"
	"dsa-notes/internal/adapter/jsonfile"
	"dsa-notes/internal/adapter/leetcode"
	"dsa-notes/internal/adapter/logging"
	"dsa-notes/internal/adapter/notes"
	"dsa-notes/internal/adapter/sqlite"
	"dsa-notes/internal/app"
	"dsa-notes/internal/config"
	"dsa-notes/internal/domain/ports"
	"dsa-notes/internal/usecase"
)

var loggerSet = wire.NewSet(
	provideSlogLogger,
	logging.New,
	wire.Bind(new(ports.Logger), new(*logging.SLogger)),
)

var submissionStoreSet = wire.NewSet(
	provideSubmissionStore,
	wire.Bind(new(ports.SubmissionStore), new(*jsonfile.Store)),
)

var fetchSet = wire.NewSet(
	provideLeetCodeClient,
	wire.Bind(new(ports.SubmissionLister), new(*leetcode.Client)),
	provideDetailProvider,
	provideFetchConfig,
	usecase.NewFetchSubmissions,
)

var organizeSet = wire.NewSet(
	provideNoteWriter,
	wire.Bind(new(ports.NoteWriter), new(*notes.Writer)),
	usecase.NewOrganizeSubmissions,
)

var diagramsSet = wire.NewSet(
	provideDocumentStore,
	wire.Bind(new(ports.DocumentStore), new(*docs.Store)),
	usecase.NewRefreshDiagrams,
)

var appSet = wire.NewSet(
	wire.Bind(new(app.Fetcher), new(*usecase.FetchSubmissions)),
	wire.Bind(new(app.Organizer), new(*usecase.OrganizeSubmissions)),
	provideSchedule,
	app.New,
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return slog.New(logging.NewHandler(os.Stdout, cfg.LogLevel, cfg.LogFormat))
}

func provideLeetCodeClient(cfg *config.Config) (*leetcode.Client, error) {
	if err := cfg.RequireCredentials(); err != nil {
		return nil, err
	}
	creds := leetcode.Credentials{Session: cfg.Session, CSRFToken: cfg.CSRFToken}
	return leetcode.New(cfg.BaseURL, creds, cfg.RequestTimeout), nil
}

// provideDetailProvider puts the sqlite cache in front of the client when a
// cache path is configured.
func provideDetailProvider(cfg *config.Config, client *leetcode.Client, logger ports.Logger) (ports.ProblemDetailProvider, func(), error) {
	if cfg.DetailCachePath == "" {
		return client, func() {}, nil
	}

	cache, err := sqlite.Open(cfg.DetailCachePath)
	if err != nil {
		return nil, nil, err
	}
	if n, err := cache.Count(context.Background()); err == nil {
		logger.Info(context.Background(), "detail cache opened", "path", cfg.DetailCachePath, "entries", n)
	}
	cleanup := func() {
		_ = cache.Close()
	}
	return leetcode.NewCachedProvider(client, cache, logger), cleanup, nil
}

func provideFetchConfig(cfg *config.Config) usecase.FetchConfig {
	return usecase.FetchConfig{
		PageSize:    cfg.PageSize,
		MaxPages:    cfg.MaxPages,
		PageDelay:   cfg.PageDelay,
		DetailDelay: cfg.DetailDelay,
	}
}

func provideSubmissionStore(cfg *config.Config) *jsonfile.Store {
	return jsonfile.New(cfg.SubmissionsFile)
}

func provideNoteWriter(cfg *config.Config) *notes.Writer {
	return notes.NewWriter(cfg.DSADir, cfg.Overwrite)
}

func provideDocumentStore(cfg *config.Config) *docs.Store {
	return docs.New(cfg.DesignBaseDir)
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
