package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diegoclair/gpns-planner/internal/config"
	"github.com/diegoclair/gpns-planner/internal/database"
	"github.com/diegoclair/gpns-planner/internal/domain/contract"
	"github.com/diegoclair/gpns-planner/internal/domain/service"
	"github.com/diegoclair/gpns-planner/internal/sheets"
	"github.com/diegoclair/gpns-planner/migrator/sqlite"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// app holds the wired services and the resources to release on exit.
type app struct {
	db       *database.DB
	services *service.Instance
}

func newApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	log.Debug("running migrations", zap.String("path", cfg.DatabasePath))
	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	opts := service.Options{
		DataManager:     database.NewInstance(db),
		Logger:          log,
		Rotations:       cfg.Rotations,
		AbsencesSheetID: cfg.AbsencesSpreadsheetID,
		AbsencesRange:   cfg.AbsencesRange,
		HoursRange:      cfg.HoursRange,
		HoursTarget:     cfg.HoursTarget,
		VisitsSheetID:   cfg.VisitsSpreadsheetID,
		VisitsRange:     cfg.VisitsRange,
		Location:        cfg.Location,
	}

	var client *sheets.Client
	if cfg.GoogleAPIKey != "" {
		client, err = sheets.NewClient(ctx, cfg.GoogleAPIKey)
		if err != nil {
			db.Close()
			return nil, err
		}
		opts.Sheets = client
	}

	opts.Templates = templateSource(cfg, client, log)

	if cfg.SlackEnabled() {
		opts.Slack = slack.New(cfg.SlackBotToken)
	}

	return &app{
		db:       db,
		services: service.NewInstance(opts),
	}, nil
}

// templateSource prefers a local workbook over the spreadsheet. Nil keeps
// the built-in templates.
func templateSource(cfg *config.Config, client *sheets.Client, log *zap.Logger) contract.TemplateSource {
	switch {
	case cfg.TemplatesFile != "":
		return &sheets.WorkbookFile{Path: cfg.TemplatesFile}
	case cfg.TemplatesSpreadsheetID != "" && client != nil:
		return &sheets.GoogleSource{Client: client, SpreadsheetID: cfg.TemplatesSpreadsheetID}
	case cfg.TemplatesSpreadsheetID != "":
		log.Warn("TEMPLATES_SPREADSHEET_ID is set without GOOGLE_API_KEY, using built-in templates")
	}
	return nil
}

// loadTemplates refreshes the templates. A failure keeps the built-in ones.
func (a *app) loadTemplates(ctx context.Context, log *zap.Logger) {
	if err := a.services.Planning.LoadTemplates(ctx); err != nil {
		log.Warn("failed to load templates, using built-in templates", zap.Error(err))
	}
}

func (a *app) Close() error {
	return a.db.Close()
}
