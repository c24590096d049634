package utils

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// Retry configuration
const maxRetries = 3
const retryDelay = 2 * time.Minute

// CleanupExpiredFiles removes an exported file once it is older than the TTL
func CleanupExpiredFiles(filePath string, ttl time.Duration) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error checking file: %v", err)
	}

	if time.Since(info.ModTime()) > ttl {
		err := os.Remove(filePath)
		if err != nil {
			return fmt.Errorf("error deleting expired file: %v", err)
		}
		log.Printf("expired export %s deleted", filePath)
	}
	return nil
}

// CleanupAllExpired removes aged gallery exports and stale search cache entries
func CleanupAllExpired(fileTTL time.Duration, redisClient *redis.Client) error {
	files, err := os.ReadDir("./public/files")
	if err != nil {
		return fmt.Errorf("error reading files directory: %v", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		filePath := fmt.Sprintf("./public/files/%s", file.Name())
		err := CleanupExpiredFiles(filePath, fileTTL)
		if err != nil {
			log.Println("error cleaning up file:", err)
		}
	}

	// Cached search responses carry their own TTL, but drop the whole
	// namespace nightly so reindexed content never serves stale hits.
	if err := InvalidateCache(redisClient, "search"); err != nil {
		return fmt.Errorf("error cleaning up search cache: %v", err)
	}

	return nil
}

// RunScheduledCleanup runs cleanup tasks daily at 1 AM with retries, emailing
// the admin if every attempt fails.
func RunScheduledCleanup(redisClient *redis.Client) {
	c := cron.New()

	c.AddFunc("0 1 * * *", func() {
		log.Println("running scheduled cleanup task...")

		var retries int
		var cleanupSuccess bool

		for retries < maxRetries {
			log.Printf("attempt %d to clean up...", retries+1)
			err := CleanupAllExpired(24*time.Hour, redisClient)
			if err == nil {
				log.Println("cleanup successful!")
				cleanupSuccess = true
				break
			} else {
				log.Printf("cleanup failed: %v", err)
				retries++
				time.Sleep(retryDelay)
			}
		}

		if !cleanupSuccess {
			log.Printf("cleanup task failed after %d retries. please check the system.", retries)

			SendEmail(
				os.Getenv("ADMIN_EMAIL"),
				"The scheduled cleanup task failed after multiple attempts.",
				"Cleanup Task Failed",
				"",
				"",
			)
		}
	})

	c.Start()
}
