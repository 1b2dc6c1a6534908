// Binary codenames-server runs the HTTP/websocket match server backed by
// SQLite. All flags can also be provided as environment variables, or via
// a .env file in development.
package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"math/rand"

	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"
	"github.com/rs/zerolog"

	"github.com/liusenjun/Codenames-AI-game/ai"
	"github.com/liusenjun/Codenames-AI-game/cryptorand"
	"github.com/liusenjun/Codenames-AI-game/dict"
	"github.com/liusenjun/Codenames-AI-game/sqldb"
	"github.com/liusenjun/Codenames-AI-game/w2v"
	"github.com/liusenjun/Codenames-AI-game/web"
	"github.com/liusenjun/Codenames-AI-game/wordassoc"
)

func main() {
	// Not an error if there's no .env, flags and env vars still apply.
	_ = godotenv.Load()

	var (
		addr      = flag.String("addr", ":8080", "HTTP service address")
		dbPath    = flag.String("db_path", "codenames.db", "Path to the SQLite DB file")
		assocFile = flag.String("assoc_file", "", "Optional 'word,related,strength' association file for the AI seats")
		modelFile = flag.String("model_file", "", "Optional binary word2vec model for the AI seats")
		dictFile  = flag.String("dict_file", "", "Optional newline-separated dictionary for human clue words")
		debug     = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if *debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	r := rand.New(cryptorand.NewSource())
	db, err := sqldb.New(*dbPath, cryptorand.NewSource())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize datastore")
	}

	ix, err := loadIndex(*assocFile, *modelFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load association index")
	}

	var d *dict.Dictionary
	if *dictFile != "" {
		if d, err = dict.New(*dictFile); err != nil {
			logger.Fatal().Err(err).Msg("failed to load dictionary")
		}
	}

	sc, err := loadKeys()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load cookie keys")
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		db.Close()
		os.Exit(1)
	}()

	logger.Info().Str("addr", *addr).Msg("server is running")
	srv := web.New(db, r, sc, ix, d, logger)
	if err := http.ListenAndServe(*addr, srv); err != nil {
		logger.Fatal().Err(err).Msg("ListenAndServe")
	}
}

func loadIndex(assocFile, modelFile string) (ai.Index, error) {
	switch {
	case modelFile != "":
		return w2v.New(modelFile)
	case assocFile != "":
		return wordassoc.Load(assocFile)
	default:
		return wordassoc.Default(), nil
	}
}

func loadKeys() (*securecookie.SecureCookie, error) {
	hashKey, err := loadOrGenKey("hashKey")
	if err != nil {
		return nil, err
	}

	blockKey, err := loadOrGenKey("blockKey")
	if err != nil {
		return nil, err
	}

	return securecookie.New(hashKey, blockKey), nil
}

func loadOrGenKey(name string) ([]byte, error) {
	f, err := os.ReadFile(name)
	if err == nil {
		return f, nil
	}

	dat := securecookie.GenerateRandomKey(32)
	if dat == nil {
		return nil, errors.New("failed to generate key")
	}

	if err := os.WriteFile(name, dat, 0600); err != nil {
		return nil, errors.New("error writing key file")
	}
	return dat, nil
}
