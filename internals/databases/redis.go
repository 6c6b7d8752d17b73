package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis dipakai sebagai cache ringkasan dashboard. Opsional: kalau
// REDIS_ADDR kosong, Redis tetap nil dan cache dilewati.
var Redis *redis.Client

func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR kosong, cache dashboard nonaktif.")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis ping gagal (%v), cache dashboard nonaktif.", err)
		return
	}

	Redis = client
	log.Println("✅ Redis connected.")
}
