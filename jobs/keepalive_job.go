package jobs

import (
	"log"
	"net/http"
	"time"

	config "github.com/MateoDumas/ProntoClick-sub002/configs"
)

// PingSelf keeps the dyno awake on free-tier hosting by hitting our own
// health endpoint. A no-op when APP_BASE_URL is not configured.
func PingSelf() {
	baseURL := config.Config("APP_BASE_URL")
	if baseURL == "" {
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		log.Printf("Keep-alive ping failed: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Keep-alive ping returned status %d", resp.StatusCode)
	}
}
