package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"

	"github.com/basedalex/nlptk/internal/db"
	"github.com/basedalex/nlptk/internal/router"
	"github.com/basedalex/nlptk/internal/scheduler"
	"github.com/basedalex/nlptk/pkg/config"
	"github.com/basedalex/nlptk/pkg/lexicon"
	"github.com/basedalex/nlptk/pkg/sentiment"
	"github.com/basedalex/nlptk/pkg/stem"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(parseArgs())
	if err != nil {
		log.Fatalln("error loading config:", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalln("error parsing log level:", err)
	}
	log.SetLevel(level)

	stemmer, err := stem.New(cfg.Stemmer)
	if err != nil {
		log.Fatalln(err)
	}

	store, err := db.New(ctx, cfg)
	if err != nil {
		log.Fatalln(err)
	}
	defer store.Close()

	if err := seed(ctx, cfg, store); err != nil {
		log.Fatalln(err)
	}

	model := sentiment.NewModel(nil)
	go scheduler.Run(ctx, clock.New(), cfg.ReloadInterval, func(ctx context.Context) error {
		lex, err := store.LoadLexicon(ctx)
		if err != nil {
			return err
		}
		model.Reset(lex)
		log.Infof("loaded %d lexicon terms", len(lex))
		return nil
	})

	if err := router.NewServer(ctx, cfg, store, model, stemmer); err != nil {
		log.Fatalln(err)
	}
}

func parseArgs() string {
	var configPath string

	flag.StringVar(&configPath, "c", "config.yaml", "path to config relative to executable")
	flag.Parse()

	return configPath
}

// seed copies lexicon file terms the store does not have yet and creates the
// admin user when NLPTK_ADMIN_PASSWORD is set. Stored terms are never
// overwritten, so edits made through the API survive a restart.
func seed(ctx context.Context, cfg *config.Config, store db.Store) error {
	if cfg.LexiconPath != "" {
		lex, err := lexicon.Read(cfg.LexiconPath)
		if err != nil {
			return err
		}

		stored, err := store.LoadLexicon(ctx)
		if err != nil {
			return err
		}

		var added int
		for word, e := range lex {
			if _, ok := stored[word]; ok {
				continue
			}
			if err := store.SaveTerm(ctx, e); err != nil {
				return err
			}
			added++
		}
		log.Infof("seeded %d of %d terms from %s", added, len(lex), cfg.LexiconPath)
	}

	if password := os.Getenv("NLPTK_ADMIN_PASSWORD"); password != "" {
		if err := store.AddUser(ctx, "admin", password, "admin"); err != nil {
			return err
		}
	}

	return nil
}
