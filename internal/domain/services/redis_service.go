package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/infrastructure/config"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	CacheReport(artifact *ReportArtifact) error
	GetReport(reportID string) (*CachedReport, error)
	Delete(key string) error
}

// CachedReport 缓存中的报告表示，Content 经JSON序列化为base64
type CachedReport struct {
	FileName string `json:"file_name"`
	Content  []byte `json:"content"`
}

// RedisService handles Redis operations
type RedisService struct {
	Client    *redis.Client
	Ctx       context.Context
	reportTTL time.Duration
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client:    client,
		Ctx:       context.Background(),
		reportTTL: cfg.ReportTTL,
	}
}

// CacheReport 按引用缓存报告产物，供下载接口在TTL内取回
func (s *RedisService) CacheReport(artifact *ReportArtifact) error {
	cached := CachedReport{
		FileName: artifact.FileName,
		Content:  artifact.Content,
	}

	jsonValue, err := json.Marshal(cached)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, "report:"+artifact.ReportID, jsonValue, s.reportTTL).Err()
}

// GetReport 按报告ID取回缓存的报告
func (s *RedisService) GetReport(reportID string) (*CachedReport, error) {
	val, err := s.Client.Get(s.Ctx, "report:"+reportID).Result()
	if err != nil {
		return nil, err
	}

	var cached CachedReport
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return nil, err
	}

	return &cached, nil
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}
