package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"moaburke/glosor/session"
	"moaburke/glosor/vocab"
)

// Run initializes required resources and starts the desktop UI.
func Run() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := LoadConfig("")
	if err != nil {
		logger.Warn("using default config", zap.Error(err))
	}
	ensureDirs(cfg.DataDir)
	vocab.EnsureSeedFile(cfg.SeedFile, cfg.FrontLanguage, cfg.BackLanguage, logger)

	store := vocab.NewStore(vocab.StoreConfig{
		ProgressPath:  cfg.ProgressFile,
		SeedPath:      cfg.SeedFile,
		FrontLanguage: cfg.FrontLanguage,
		BackLanguage:  cfg.BackLanguage,
	}, logger.Named("vocab"))
	store.Load()

	ctrl := session.New(store, session.Config{
		FlipDelay: time.Duration(cfg.FlipDelaySeconds) * time.Second,
	}, logger.Named("session"))

	a := fyneapp.NewWithID(fyneAppID)
	u := buildUI(a, ctrl, store, cfg)
	ctrl.SetOnChange(u.apply)
	ctrl.Start()
	u.w.ShowAndRun()

	ctrl.Close()
	if err := SaveConfig("", cfg); err != nil {
		logger.Warn("save config", zap.Error(err))
	}
	return nil
}

func ensureDirs(p string) {
	if p == "" {
		return
	}
	_ = os.MkdirAll(filepath.Clean(p), 0o755)
}
