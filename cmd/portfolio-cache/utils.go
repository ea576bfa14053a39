package main

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// ResolveRedisURL returns the Redis URL with the following priority:
// 1. REDIS_URL environment variable
// 2. PORTFOLIO_REDIS_URL_FILE file content
// 3. The configured value (may be empty, selecting the in-process store)
func ResolveRedisURL(configured string, logger *zap.Logger) string {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		logger.Debug("Using Redis URL from environment variable")
		return redisURL
	}

	connectionFile := os.Getenv("PORTFOLIO_REDIS_URL_FILE")
	if connectionFile != "" {
		if content, err := os.ReadFile(connectionFile); err == nil {
			redisURL := strings.TrimSpace(string(content))
			if len(redisURL) > 0 {
				logger.Debug("Using Redis URL from connection file", zap.String("file", connectionFile))
				return redisURL
			}
		} else {
			logger.Debug("Redis connection file not found or empty", zap.String("file", connectionFile))
		}
	}

	return configured
}

// ResolveMongoURI returns the MongoDB URI, letting MONGO_URI override the
// configured value.
func ResolveMongoURI(configured string, logger *zap.Logger) string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		logger.Debug("Using Mongo URI from environment variable")
		return uri
	}
	return configured
}
