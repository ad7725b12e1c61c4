package main

import (
	"context"
	"log"
	"net/http"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Configuration invalide : %v", err)
	}

	ctx := context.Background()

	var suggester WordSuggester
	if cfg.Gemini.Enabled() {
		gemini, err := NewGeminiClient(ctx, cfg.Gemini)
		if err != nil {
			log.Fatalf("Impossible d'initialiser Gemini : %v", err)
		}
		defer gemini.Close()
		suggester = gemini
		log.Printf("Client Gemini initialisé (modèle: %s)", gemini.Model())
	} else {
		log.Println("GCP_PROJECT_ID et GEMINI_API_KEY non définis — suggestion de mots désactivée")
	}

	srv := NewServer(NewStore(), suggester, WithDefaultBounds(cfg.MaxWidth, cfg.MaxHeight))

	log.Printf("Serveur démarré sur http://localhost:%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		log.Fatal(err)
	}
}
