package service

import (
	"time"

	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"infinityqr-go/constant"
	"infinityqr-go/internal/model"
)

// StatsService keeps daily PV/UV counters in redis and periodically flushes
// them into DailyStat rows. Counters are profile-local truths: they come from
// the local redirect simulator only, never from a provider.
type StatsService struct {
	db   *gorm.DB
	pool *redis.Pool
}

func NewStatsService(db *gorm.DB, pool *redis.Pool) *StatsService {
	return &StatsService{db: db, pool: pool}
}

// RecordDailyPV increments today's PV hash field for the short code.
func (s *StatsService) RecordDailyPV(conn redis.Conn, shortCode string) {
	dailyPvKey := constant.GetDailyPVKey(constant.GetDateKey())

	if _, err := conn.Do("HINCRBY", dailyPvKey, shortCode, 1); err != nil {
		zap.L().Error("Failed to record daily PV",
			zap.String("key", dailyPvKey),
			zap.String("short_code", shortCode),
			zap.Error(err))
	}
	if _, err := conn.Do("EXPIRE", dailyPvKey, 3*24*3600); err != nil {
		zap.L().Error("Failed to expire daily PV key",
			zap.String("key", dailyPvKey),
			zap.Error(err))
	}
}

// RecordDailyUV adds the visitor IP to today's HyperLogLog for the code.
func (s *StatsService) RecordDailyUV(conn redis.Conn, shortCode, ip string) {
	dailyUvKey := constant.GetDailyUVKey(shortCode, constant.GetDateKey())

	if _, err := conn.Do("PFADD", dailyUvKey, ip); err != nil {
		zap.L().Error("Failed to record daily UV",
			zap.String("key", dailyUvKey),
			zap.Error(err))
	}
	if _, err := conn.Do("EXPIRE", dailyUvKey, 3*24*3600); err != nil {
		zap.L().Error("Failed to expire daily UV key",
			zap.String("key", dailyUvKey),
			zap.Error(err))
	}
}

// RecordTotalPV increments the all-time PV counter.
func (s *StatsService) RecordTotalPV(conn redis.Conn, shortCode string) {
	totalPvKey := constant.GetTotalPVKey(shortCode)
	if _, err := conn.Do("INCR", totalPvKey); err != nil {
		zap.L().Error("Failed to record total PV",
			zap.String("key", totalPvKey),
			zap.Error(err))
	}
}

// RecordTotalUV adds the visitor IP to the all-time HyperLogLog.
func (s *StatsService) RecordTotalUV(conn redis.Conn, shortCode, ip string) {
	totalUvKey := constant.GetTotalUVKey(shortCode)
	if _, err := conn.Do("PFADD", totalUvKey, ip); err != nil {
		zap.L().Error("Failed to record total UV",
			zap.String("key", totalUvKey),
			zap.Error(err))
	}
}

func (s *StatsService) dailyPV(conn redis.Conn, shortCode, date string) int64 {
	n, err := redis.Int64(conn.Do("HGET", constant.GetDailyPVKey(date), shortCode))
	if err != nil && err != redis.ErrNil {
		zap.L().Warn("Failed to get daily PV", zap.String("short_code", shortCode), zap.Error(err))
	}
	return n
}

func (s *StatsService) dailyUV(conn redis.Conn, shortCode, date string) int64 {
	n, err := redis.Int64(conn.Do("PFCOUNT", constant.GetDailyUVKey(shortCode, date)))
	if err != nil && err != redis.ErrNil {
		zap.L().Warn("Failed to get daily UV", zap.String("short_code", shortCode), zap.Error(err))
	}
	return n
}

func (s *StatsService) totalPV(conn redis.Conn, shortCode string) int64 {
	n, err := redis.Int64(conn.Do("GET", constant.GetTotalPVKey(shortCode)))
	if err != nil && err != redis.ErrNil {
		zap.L().Warn("Failed to get total PV", zap.String("short_code", shortCode), zap.Error(err))
	}
	return n
}

func (s *StatsService) totalUV(conn redis.Conn, shortCode string) int64 {
	n, err := redis.Int64(conn.Do("PFCOUNT", constant.GetTotalUVKey(shortCode)))
	if err != nil && err != redis.ErrNil {
		zap.L().Warn("Failed to get total UV", zap.String("short_code", shortCode), zap.Error(err))
	}
	return n
}

// StatisticalData is the cron entry point: it snapshots today's counters into
// DailyStat rows and refreshes the mapping totals. A no-op without redis;
// the DB click counter already covers that mode.
func (s *StatsService) StatisticalData() error {
	if s.pool == nil {
		return nil
	}

	zap.L().Info("StatisticalData start")

	var mappings []model.URLMapping
	if err := s.db.Find(&mappings).Error; err != nil {
		zap.L().Error("Failed to list mappings", zap.Error(err))
		return err
	}

	today := time.Now().Format("2006-01-02")
	for _, mapping := range mappings {
		s.flushMapping(mapping, today)
	}

	zap.L().Info("StatisticalData end")
	return nil
}

func (s *StatsService) flushMapping(mapping model.URLMapping, today string) {
	conn := s.pool.Get()
	defer func() {
		if err := conn.Close(); err != nil {
			zap.L().Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	dateKey := constant.GetDateKey()
	dailyPv := s.dailyPV(conn, mapping.ShortCode, dateKey)
	dailyUv := s.dailyUV(conn, mapping.ShortCode, dateKey)
	totalPv := s.totalPV(conn, mapping.ShortCode)
	totalUv := s.totalUV(conn, mapping.ShortCode)

	dailyStat := &model.DailyStat{
		ShortCode: mapping.ShortCode,
		Date:      today,
		PV:        dailyPv,
		UV:        dailyUv,
	}
	result := s.db.Where("short_code = ? AND date = ?", mapping.ShortCode, today).
		Assign("pv", dailyPv, "uv", dailyUv).
		FirstOrCreate(dailyStat)
	if result.Error != nil {
		zap.L().Error("Failed to insert or update daily stat",
			zap.String("short_code", mapping.ShortCode),
			zap.String("date", today),
			zap.Error(result.Error))
	}

	if err := s.db.Model(&model.URLMapping{}).
		Where("id = ?", mapping.ID).
		Updates(map[string]interface{}{
			"total_pv": totalPv,
			"total_uv": totalUv,
		}).Error; err != nil {
		zap.L().Error("Failed to update total PV/UV",
			zap.String("short_code", mapping.ShortCode),
			zap.Error(err))
	}
}

// StatsByShortCode returns the stored daily series, newest first.
func (s *StatsService) StatsByShortCode(shortCode string) ([]model.DailyStat, error) {
	var stats []model.DailyStat
	err := s.db.Where("short_code = ?", shortCode).Order("date DESC").Find(&stats).Error
	return stats, err
}
