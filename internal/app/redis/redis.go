package redis

import (
	"context"
	"fmt"
	"time"

	"maintenance-backend/internal/app/config"

	"github.com/go-redis/redis/v8"
)

const servicePrefix = "maintenance_backend."
const jwtPrefix = servicePrefix + "jwt."

type Client struct {
	cfg    config.RedisConfig
	client *redis.Client
}

// New создает клиент Redis и проверяет соединение
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := &Client{cfg: cfg}

	options := &redis.Options{
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Username:    cfg.User,
		Password:    cfg.Password,
		DB:          0,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	}

	client.client = redis.NewClient(options)

	if _, err := client.client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("cannot ping redis: %w", err)
	}

	return client, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func getJWTKey(jwtStr string) string {
	return jwtPrefix + jwtStr
}

// WriteJWTToBlacklist добавляет токен в черный список на время жизни токена
func (c *Client) WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error {
	return c.client.Set(ctx, getJWTKey(jwtStr), true, jwtTTL).Err()
}

// CheckJWTInBlacklist возвращает nil, если токен находится в черном списке
func (c *Client) CheckJWTInBlacklist(ctx context.Context, jwtStr string) error {
	return c.client.Get(ctx, getJWTKey(jwtStr)).Err()
}
