// Command corebench wires the board/engine decision core to the uci front
// end for manual play and perft/eval smoke-testing.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/corebench/chesscore/internal/book"
	"github.com/corebench/chesscore/internal/storage"
	"github.com/corebench/chesscore/internal/tablebase"
	"github.com/corebench/chesscore/internal/uci"
)

var (
	bookPath = flag.String("book", "", "path to a Polyglot opening book (.bin)")
	dataDir  = flag.String("data-dir", "", "override the badger database directory")
	verbose  = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	dbDir := *dataDir
	if dbDir == "" {
		dir, err := storage.DatabaseDir()
		if err != nil {
			log.Fatal().Err(err).Msg("corebench: could not resolve database directory")
		}
		dbDir = dir
	}

	store, err := storage.Open(dbDir)
	if err != nil {
		log.Fatal().Err(err).Msg("corebench: could not open storage")
	}
	defer store.Close()

	var b *book.Book
	if *bookPath != "" {
		b, err = book.LoadPolyglot(store, *bookPath)
		if err != nil {
			log.Warn().Err(err).Str("path", *bookPath).Msg("corebench: failed to load opening book")
			b = book.Open(store)
		}
	} else {
		b = book.Open(store)
	}

	tb := tablebase.NewStoreCachedProber(tablebase.NoopProber{}, store)

	eng := uci.NewEngine(b, tb)
	protocol := uci.New(eng)
	protocol.Run(os.Stdin, os.Stdout)
}
