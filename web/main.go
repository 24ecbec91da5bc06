package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"fieldboard.com/fieldboard/config"
	"fieldboard.com/fieldboard/source"
	"fieldboard.com/fieldboard/web/handlers"
	"fieldboard.com/fieldboard/web/middlewares"
)

func main() {
	configPath := os.Getenv("FIELDBOARD_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("using source: %s\n", cfg.Source.Kind)

	reader, err := newReader(cfg)
	if err != nil {
		log.Fatal(err)
	}

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.GET("/api/fieldboard/manifest/dev", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":     "1.0.0-dev",
			"description": "Fieldboard API Manifest for Development",
		})
	})

	api := r.Group("/api/fieldboard/v1.0")
	if cfg.Server.SigningSecret != "" {
		jwtSecret, err := base64.StdEncoding.DecodeString(cfg.Server.SigningSecret)
		if err != nil {
			log.Fatal("Failed to decode JWT secret:", err)
		}
		api.Use(middlewares.Authentication(jwtSecret))
	} else {
		fmt.Println("[WARN] no signing secret configured, API is unauthenticated")
	}

	handlers.Register(api, reader)

	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}

func newReader(cfg *config.Config) (source.Reader, error) {
	switch cfg.Source.Kind {
	case config.SourceWorkbook:
		return source.NewWorkbookReader(cfg.Source.Path), nil
	case config.SourceSheets:
		if cfg.Source.SpreadsheetID == "" {
			return nil, fmt.Errorf("sheets source requires a spreadsheetId")
		}
		return source.NewSheetsReader(cfg.Source.BaseURL, cfg.Source.SpreadsheetID), nil
	}
	return nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
}
