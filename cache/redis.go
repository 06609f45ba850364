package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	ctx         = context.Background()
)

// InitRedis initializes the Redis connection. The service degrades to
// uncached reads when Redis is unreachable.
func InitRedis(addr, password string) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(pingCtx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}

func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

func IsRedisAvailable() bool {
	if RedisClient == nil {
		return false
	}
	_, err := RedisClient.Ping(ctx).Result()
	return err == nil
}

const (
	gameCachePrefix    = "game:"         // game:123
	gamesCacheKey      = "games:all"     // catalog listing
	reviewsCachePrefix = "reviews:game:" // reviews:game:123
	categoryCacheKey   = "categories:all"
)

// Set stores a value with a TTL.
func Set(key string, value interface{}, ttl time.Duration) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return RedisClient.Set(ctx, key, data, ttl).Err()
}

// Get unmarshals a cached value into dest.
func Get(key string, dest interface{}) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}
	val, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("cache miss")
	}
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func Delete(key string) error {
	if !IsRedisAvailable() {
		return nil
	}
	return RedisClient.Del(ctx, key).Err()
}

// GetGame returns the cached detail view of a game.
func GetGame(gameID uint) (interface{}, error) {
	var game interface{}
	err := Get(fmt.Sprintf("%s%d", gameCachePrefix, gameID), &game)
	return game, err
}

// SetGame caches a game detail view for an hour.
func SetGame(gameID uint, game interface{}) error {
	return Set(fmt.Sprintf("%s%d", gameCachePrefix, gameID), game, time.Hour)
}

// InvalidateGame drops the cached detail view. Called on every mutation
// that can change the game row, including rating recomputes.
func InvalidateGame(gameID uint) {
	_ = Delete(fmt.Sprintf("%s%d", gameCachePrefix, gameID))
}

// GetGames returns the cached catalog listing.
func GetGames() (interface{}, error) {
	var games interface{}
	err := Get(gamesCacheKey, &games)
	return games, err
}

// SetGames caches the catalog listing for 5 minutes.
func SetGames(games interface{}) error {
	return Set(gamesCacheKey, games, 5*time.Minute)
}

func InvalidateGamesList() {
	_ = Delete(gamesCacheKey)
}

// GetReviews returns the cached comment list of a game.
func GetReviews(gameID uint) (interface{}, error) {
	var reviews interface{}
	err := Get(fmt.Sprintf("%s%d", reviewsCachePrefix, gameID), &reviews)
	return reviews, err
}

// SetReviews caches a game's comment list for 10 minutes.
func SetReviews(gameID uint, reviews interface{}) error {
	return Set(fmt.Sprintf("%s%d", reviewsCachePrefix, gameID), reviews, 10*time.Minute)
}

func InvalidateReviews(gameID uint) {
	_ = Delete(fmt.Sprintf("%s%d", reviewsCachePrefix, gameID))
}

// GetCategories returns the cached tag vocabulary.
func GetCategories() (interface{}, error) {
	var categories interface{}
	err := Get(categoryCacheKey, &categories)
	return categories, err
}

// SetCategories caches the tag vocabulary for an hour.
func SetCategories(categories interface{}) error {
	return Set(categoryCacheKey, categories, time.Hour)
}

func InvalidateCategories() {
	_ = Delete(categoryCacheKey)
}
