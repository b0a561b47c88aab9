// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	bolt "go.etcd.io/bbolt"

	"github.com/oleg-github-collab/KooKooha/internal/db"
	"github.com/oleg-github-collab/KooKooha/internal/db/jsondb"
	"github.com/oleg-github-collab/KooKooha/internal/db/kvdb"
)

func main() {
	var (
		inputPath  = flag.String("input-path", "data", "jsondb storage folder to read from")
		outputPath = flag.String("output-path", "output.db", "bbolt file to write to")
	)
	flag.Parse()

	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{})
	logger := slog.New(jsonHandler)

	jdb := newJsonDB(logger, *inputPath)
	kdb := newKVDB(logger, *outputPath)
	logger.Info("start converting")
	into(kdb, jdb)
	logger.Info("finished converting")
}

type database interface {
	db.TranslationStore
	db.LeadStore
	Close() error
}

type dbWrapper struct {
	db.TranslationStore
	db.LeadStore

	closeFN func() error
}

func (d *dbWrapper) Close() error {
	return d.closeFN()
}

func into(dst, src database) {
	defer src.Close()
	defer dst.Close()
	ctx := context.Background()

	list, err := src.ListLanguages(ctx)
	if err != nil {
		panic(err)
	}
	for _, key := range list {
		t, err := src.ByLanguage(ctx, key)
		if err != nil {
			panic(err)
		}
		if err := dst.CreateLanguage(ctx, key, t); err != nil {
			panic(err)
		}
	}

	leads, err := src.ListLeads(ctx)
	if err != nil {
		panic(err)
	}
	for _, l := range leads {
		if _, err := dst.CreateLead(ctx, l); err != nil {
			panic(err)
		}
	}
}

func newKVDB(logger *slog.Logger, path string) database {
	bdb, err := bolt.Open(path, 0600, nil)
	if err != nil {
		logger.Error("could not open database", "path", path, "error", err)
		os.Exit(1)
	}

	translationStore, err := kvdb.NewTranslationStore(bdb)
	if err != nil {
		logger.Error("could not initialize translation bucket", "error", err)
		os.Exit(1)
	}
	leadStore, err := kvdb.NewLeadStore(bdb)
	if err != nil {
		logger.Error("could not initialize lead bucket", "error", err)
		os.Exit(1)
	}

	return &dbWrapper{
		TranslationStore: translationStore,
		LeadStore:        leadStore,
		closeFN:          bdb.Close,
	}
}

func newJsonDB(logger *slog.Logger, path string) database {
	logger.Info("jsondb storage folder", "path", path)
	translationStore, err := jsondb.NewTranslationStore(path + "/translations.json")
	if err != nil {
		logger.Error("could not initialize translation store", "error", path)
		os.Exit(1)
	}
	leadStore, err := jsondb.NewLeadStore(path + "/leads.json")
	if err != nil {
		logger.Error("could not initialize lead store", "error", path)
		os.Exit(1)
	}
	return &dbWrapper{
		TranslationStore: translationStore,
		LeadStore:        leadStore,
		closeFN:          func() error { return nil },
	}
}
