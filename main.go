package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Shreyas-TP/Stegohub/handlers"
)

func main() {
	router := gin.Default()

	origin := os.Getenv("STEGO_ALLOWED_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{origin}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	config.ExposeHeaders = []string{"X-Stego-Algorithm", "X-Stego-Capacity", "X-Stego-PSNR", "X-Stego-Digest", "Content-Disposition"}
	config.AllowCredentials = true
	router.Use(cors.New(config))

	journal := handlers.NewActivityLog(64, time.Now, uuid.NewString)
	stegoHandler := handlers.NewStegoHandler(journal)

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", stegoHandler.HealthCheck)
		api.GET("/activity", stegoHandler.Activity)

		stego := api.Group("/stego")
		{
			stego.POST("/encode", stegoHandler.EncodeMessage)
			stego.POST("/decode", stegoHandler.DecodeMessage)
			stego.POST("/capacity", stegoHandler.Capacity)
			stego.GET("/algorithms", stegoHandler.Algorithms)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API endpoints:")
	log.Printf("  POST /api/v1/stego/encode     - Hide a payload in an image or audio carrier")
	log.Printf("  POST /api/v1/stego/decode     - Recover a hidden payload (algorithm=auto to probe)")
	log.Printf("  POST /api/v1/stego/capacity   - Report per-algorithm capacity of a carrier")
	log.Printf("  GET  /api/v1/stego/algorithms - List embedding algorithms")
	log.Printf("  GET  /api/v1/activity         - Recent operation journal")
	log.Printf("  GET  /api/v1/health           - Health check")
	log.Printf("")
	log.Printf("Features:")
	log.Printf("  • PNG/BMP carriers: bit-plane, DCT and wavelet embedding")
	log.Printf("  • WAV/MP3/FLAC carriers: sample LSB and echo hiding (output is always WAV)")
	log.Printf("  • Optional AES-GCM payload encryption with Argon2id keys")
	log.Printf("  • PSNR quality assessment (returned in X-Stego-PSNR header)")
	log.Printf("  • Direct streaming (no disk storage)")

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
