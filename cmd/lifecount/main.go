// Command lifecount loads a seed pattern, advances it on a torus and reports
// the alive total and the number of communities of live cells.
//
// Usage:
//
//	lifecount [-pattern file] [-generations n] [-print] [-watch]
//
// Without -pattern the built-in 5×5 seed is used. With -watch the pattern
// file is reloaded and re-run every time it changes, until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvlife"
	"github.com/katalvlaran/lvlife/life"
	"github.com/katalvlaran/lvlife/pattern"
)

type config struct {
	pattern     string
	generations int
	print       bool
	watch       bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lifecount: ")

	var cfg config
	flag.StringVar(&cfg.pattern, "pattern", "", "seed pattern file (.txt or .yaml); empty uses the built-in 5x5 seed")
	flag.IntVar(&cfg.generations, "generations", 0, "number of generations to advance")
	flag.BoolVar(&cfg.print, "print", false, "print the final grid")
	flag.BoolVar(&cfg.watch, "watch", false, "re-run whenever the pattern file changes")
	flag.Parse()

	if cfg.generations < 0 {
		log.Fatalf("-generations must not be negative, got %d", cfg.generations)
	}
	if cfg.watch && cfg.pattern == "" {
		log.Fatal("-watch requires -pattern")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

// run executes once, then keeps re-running on file changes in watch mode.
func run(ctx context.Context, out io.Writer, cfg config) error {
	if err := report(out, cfg); err != nil {
		if !cfg.watch {
			return err
		}
		log.Printf("%v", err)
	}
	if !cfg.watch {
		return nil
	}

	w, err := pattern.NewWatcher(cfg.pattern)
	if err != nil {
		return fmt.Errorf("watch %s: %w", cfg.pattern, err)
	}
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-w.Events:
			if !ok {
				return nil
			}
			if err := report(out, cfg); err != nil {
				log.Printf("%v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}

// report loads the seed, advances it and writes one summary line.
func report(out io.Writer, cfg config) error {
	name, seed, err := load(cfg.pattern)
	if err != nil {
		return err
	}

	g := lvlife.NewGame(seed)
	g.AdvanceN(cfg.generations)
	_, err = fmt.Fprintf(out, "pattern=%s rows=%d cols=%d generation=%d alive=%d communities=%d\n",
		name, g.Rows(), g.Cols(), g.Generation(), g.AliveCount(), g.Communities())
	if err != nil {
		return err
	}
	if cfg.print {
		_, err = io.WriteString(out, g.Grid().String())
	}

	return err
}

func load(path string) (string, *life.Grid, error) {
	if path == "" {
		return "default", life.DefaultPattern(), nil
	}
	p, err := pattern.Load(path)
	if err != nil {
		return "", nil, err
	}
	if p.Grid == nil {
		return "", nil, errors.New("pattern without grid")
	}

	return p.Name, p.Grid, nil
}
