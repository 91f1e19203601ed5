package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"math/big"
	mathrand "math/rand/v2"
	"net/http"

	"github.com/seamlessgov/govdash/internal/api"
	"github.com/seamlessgov/govdash/internal/auth"
	"github.com/seamlessgov/govdash/internal/config"
	"github.com/seamlessgov/govdash/internal/dashboard"
	"github.com/seamlessgov/govdash/internal/db"
	"github.com/seamlessgov/govdash/internal/web"
)

func main() {
	cfg := config.Load()

	addr := flag.String("addr", cfg.Addr, "listen address")
	dbPath := flag.String("db", cfg.DBPath, "path to SQLite database file")
	apiKey := flag.String("api-key", cfg.APIKey, "shared secret for /api/ routes (auto-generated if empty)")
	flag.Parse()

	// Auto-generate the API key if not provided.
	if *apiKey == "" {
		key, err := generateKey(32)
		if err != nil {
			log.Fatalf("Failed to generate API key: %v", err)
		}
		*apiKey = "sk-" + key
		fmt.Printf("API key auto-generated (changes on restart): %s\n", *apiKey)
	}

	// Open database and create the schema if needed.
	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// The dashboard's placeholder analytics are randomized on purpose;
	// each process gets fresh draws.
	app := dashboard.NewApp(
		mathrand.New(mathrand.NewPCG(randSeed(), randSeed())),
		mathrand.New(mathrand.NewPCG(randSeed(), randSeed())),
		nil,
	)

	// Set up routers.
	apiRouter := api.NewRouter(database, auth.StaticKey(*apiKey))
	webRouter, err := web.NewRouter(database, app)
	if err != nil {
		log.Fatalf("Failed to set up web router: %v", err)
	}

	// Combine: API routes take priority, web routes handle the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/bill", apiRouter)
	mux.Handle("/", webRouter)

	handler := api.LoggingMiddleware(api.RecoveryMiddleware(mux))

	fmt.Printf("Server listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// generateKey creates a random alphanumeric key of the given length.
func generateKey(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[n.Int64()]
	}
	return string(result), nil
}

// randSeed draws a PCG seed from the crypto source.
func randSeed() uint64 {
	n, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 63))
	if err != nil {
		log.Fatalf("Failed to seed random source: %v", err)
	}
	return n.Uint64()
}
