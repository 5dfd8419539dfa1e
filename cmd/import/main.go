// Command import bulk-loads paper documents from a directory of JSON files.
// Each file holds one paper; files are validated and saved concurrently.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizgrade/internal/config"
	"quizgrade/internal/database"
	"quizgrade/internal/domain"
	"quizgrade/internal/logger"
	"quizgrade/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const importConcurrency = 4

func main() {
	dir := flag.String("dir", "papers", "directory of paper JSON files to import")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repo := repository.NewPaperDatabaseAdapter(db)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatal("failed to read import directory", zap.String("dir", *dir), zap.Error(err))
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(importConcurrency)

	imported := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(*dir, entry.Name())
		imported++
		g.Go(func() error {
			return importPaper(ctx, repo, path)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal("import failed", zap.Error(err))
	}
	log.Info("import completed", zap.Int("papers", imported))
}

func importPaper(ctx context.Context, repo domain.PaperRepository, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var paper domain.Paper
	if err := json.Unmarshal(data, &paper); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	// Imported documents get fresh IDs so re-running cannot collide.
	paper.ID = ""

	if errs := paper.Validate(); len(errs) > 0 {
		return fmt.Errorf("validate %s: %w", path, errs)
	}

	if err := repo.SavePaper(ctx, &paper); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	logger.Get().Info("imported paper",
		zap.String("file", filepath.Base(path)),
		zap.String("paperID", paper.ID),
		zap.String("title", paper.Title))
	return nil
}
