package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"

	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"infinityqr-go/constant"
	"infinityqr-go/internal/apperrors"
	"infinityqr-go/internal/model"
	"infinityqr-go/response"
)

var shortCodePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// RedirectService resolves locally synthesized short codes back to their
// destinations. Redis, when configured, fronts the mapping table as a cache
// and holds the PV/UV counters; without it everything goes straight to
// sqlite.
type RedirectService struct {
	db    *gorm.DB
	pool  *redis.Pool
	stats *StatsService
}

func NewRedirectService(db *gorm.DB, pool *redis.Pool, stats *StatsService) *RedirectService {
	return &RedirectService{db: db, pool: pool, stats: stats}
}

// SaveMapping upserts a shortcode → destination mapping. Re-shortening the
// same destination under the same code just refreshes the target.
func (s *RedirectService) SaveMapping(ctx context.Context, shortCode, targetURL string) error {
	var existing model.URLMapping
	err := s.db.WithContext(ctx).Where("short_code = ?", shortCode).First(&existing).Error
	switch {
	case err == nil:
		existing.TargetURL = targetURL
		return s.db.WithContext(ctx).Save(&existing).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.db.WithContext(ctx).Create(&model.URLMapping{
			ShortCode: shortCode,
			TargetURL: targetURL,
		}).Error
	default:
		return err
	}
}

// Resolve looks a short code up (cache first), counts the visit and returns
// the mapping. Unknown or malformed codes resolve to nothing.
func (s *RedirectService) Resolve(ctx context.Context, shortCode, ip string) (*model.URLMapping, bool) {
	if !shortCodePattern.MatchString(shortCode) {
		return nil, false
	}

	mapping, ok := s.lookup(ctx, shortCode)
	if !ok {
		return nil, false
	}

	s.countVisit(ctx, mapping, ip)
	return mapping, true
}

func (s *RedirectService) lookup(ctx context.Context, shortCode string) (*model.URLMapping, bool) {
	if s.pool != nil {
		if mapping, hit, decided := s.cacheGet(shortCode); decided {
			return mapping, hit
		}
	}

	var mapping model.URLMapping
	if err := s.db.WithContext(ctx).Where("short_code = ?", shortCode).First(&mapping).Error; err != nil {
		// Negative cache guards against repeated lookups of dead codes.
		s.cacheSet(shortCode, nil, 300)
		return nil, false
	}

	s.cacheSet(shortCode, &mapping, 3600)
	return &mapping, true
}

// cacheGet returns (mapping, hit, decided); decided=false means fall through
// to the database.
func (s *RedirectService) cacheGet(shortCode string) (*model.URLMapping, bool, bool) {
	conn := s.pool.Get()
	defer s.closeConn(conn)

	cacheKey := constant.GetShortCodeKey(shortCode)
	cached, err := redis.Bytes(conn.Do("GET", cacheKey))
	if err != nil {
		if err != redis.ErrNil {
			zap.L().Warn("Error getting from Redis",
				zap.String("cache_key", cacheKey),
				zap.Error(err))
		}
		return nil, false, false
	}
	if len(cached) == 0 {
		return nil, false, true // negative cache entry
	}

	var mapping model.URLMapping
	if err := json.Unmarshal(cached, &mapping); err != nil {
		zap.L().Warn("Failed to unmarshal cached value",
			zap.String("cache_key", cacheKey),
			zap.Error(err))
		return nil, false, false
	}
	return &mapping, true, true
}

func (s *RedirectService) cacheSet(shortCode string, mapping *model.URLMapping, ttlSeconds int) {
	if s.pool == nil {
		return
	}
	conn := s.pool.Get()
	defer s.closeConn(conn)

	cacheKey := constant.GetShortCodeKey(shortCode)
	var value []byte
	if mapping != nil {
		value, _ = json.Marshal(mapping)
	}
	if _, err := conn.Do("SET", cacheKey, value, "EX", ttlSeconds); err != nil {
		zap.L().Warn("Failed to set cache",
			zap.String("cache_key", cacheKey),
			zap.Error(err))
	}
}

func (s *RedirectService) countVisit(ctx context.Context, mapping *model.URLMapping, ip string) {
	if err := s.db.WithContext(ctx).Model(mapping).
		Update("clicks", gorm.Expr("clicks + 1")).Error; err != nil {
		zap.L().Warn("Failed to increment clicks",
			zap.String("short_code", mapping.ShortCode),
			zap.Error(err))
	}

	if s.pool == nil {
		return
	}
	conn := s.pool.Get()
	defer s.closeConn(conn)

	s.stats.RecordDailyPV(conn, mapping.ShortCode)
	s.stats.RecordDailyUV(conn, mapping.ShortCode, ip)
	s.stats.RecordTotalPV(conn, mapping.ShortCode)
	s.stats.RecordTotalUV(conn, mapping.ShortCode, ip)
}

// ListMappings pages through the mapping table for the dashboard.
func (s *RedirectService) ListMappings(ctx context.Context, page, size int) (*response.PageResponse[model.URLMapping], error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}

	db := s.db.WithContext(ctx).Model(&model.URLMapping{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, apperrors.SystemError("error.system")
	}
	if total == 0 {
		return &response.PageResponse[model.URLMapping]{
			Page: page,
			Size: size,
			List: []model.URLMapping{},
		}, nil
	}

	var mappings []model.URLMapping
	if err := db.
		Limit(size).
		Offset((page - 1) * size).
		Order("id DESC").
		Find(&mappings).Error; err != nil {
		zap.L().Warn("Mapping query failed", zap.Error(err))
		return nil, apperrors.SystemErrorDefault()
	}

	return &response.PageResponse[model.URLMapping]{
		Page:      page,
		Size:      size,
		Total:     int(total),
		TotalPage: (int(total) + size - 1) / size,
		List:      mappings,
	}, nil
}

func (s *RedirectService) closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		zap.L().Warn("Redis connection close failed", zap.Error(err))
	}
}
