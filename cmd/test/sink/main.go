// Local webhook receiver for eyeballing scanner payloads without a real
// Slack channel. Point SLACK_WEBHOOK_URL at http://localhost:8080/webhook
// and run the scanner.
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"go-jobradar/internal/reporter"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "jobradar test sink is running!",
			"status":  "healthy",
		})
	})

	r.POST("/webhook", func(c *gin.Context) {
		var payload reporter.Payload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Received payload with %d blocks:", len(payload.Blocks))
		for _, b := range payload.Blocks {
			if b.Text != nil {
				log.Printf("  [%s] %s", b.Type, b.Text.Text)
			} else {
				log.Printf("  [%s]", b.Type)
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	log.Printf("Sink listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start sink: %v", err)
	}
}
