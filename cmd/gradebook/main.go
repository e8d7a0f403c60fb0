package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/picksplaydoit-ai/superappprofe/internal/config"
	"github.com/picksplaydoit-ai/superappprofe/internal/storage"
	"github.com/picksplaydoit-ai/superappprofe/pkg/logger"
)

func main() {
	os.Exit(runMain(os.Args))
}

// runMain wires the CLI and returns the process exit code, so deferred cleanup
// happens before main exits.
func runMain(args []string) int {
	cfg, err := config.Load(os.Getenv("GRADEBOOK_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := storage.Open(ctx, cfg.Storage, log)
	if err != nil {
		log.Error("open storage", zap.Error(err))
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("close storage", zap.Error(err))
		}
	}()

	blobs, err := storage.NewFSStore(cfg.Export.Dir)
	if err != nil {
		log.Error("open export dir", zap.Error(err))
		return 1
	}

	cli := commandLine{
		repo:   storage.NewCourseRepo(store),
		blobs:  blobs,
		out:    os.Stdout,
		logger: log,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if err := cli.run(ctx, args); err != nil {
		if err != errHelp && err != flag.ErrHelp {
			log.Error("command failed", zap.Error(err))
		}
		return 1
	}
	return 0
}
