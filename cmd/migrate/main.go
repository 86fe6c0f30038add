// cmd/migrate/main.go
// マイグレーション実行用のワンショットコマンドです。
// pgvector拡張の有効化とスキーマ反映を行います。
package main

import (
	"log/slog"
	"os"

	"go_5_vocab_ai/internal/config"
	"go_5_vocab_ai/internal/model"
	"go_5_vocab_ai/internal/repository"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}

	// embedding列のために vector 拡張が必要
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		slog.Error("Failed to create vector extension", slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&model.Profile{},
		&model.Category{},
		&model.Vocabulary{},
		&model.UserVerificationToken{},
		&model.PasswordResetToken{},
	); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Migration completed successfully")
}
