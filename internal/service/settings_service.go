package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"anoa.com/classsite/internal/repository"
	"anoa.com/classsite/pkg/apperror"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const settingsCacheTTL = 5 * time.Minute

// settingsPages fixes the key list per logical page. Group-get only folds
// these keys; group-put accepts arbitrary keys under the page prefix.
var settingsPages = map[string][]string{
	"home":       {"title", "subtitle", "cta", "heroImage", "welcomeMessage", "announcement"},
	"about":      {"title", "description", "mission", "vision", "coverImage"},
	"contact":    {"title", "address", "phone", "email", "mapEmbed"},
	"leadership": {"title", "subtitle", "description"},
}

type SettingsService interface {
	// GroupGet folds the page's rows into one object keyed by bare name.
	// Keys never written are absent from the result, not defaulted.
	GroupGet(ctx context.Context, page string) (map[string]string, error)
	// GroupPut upserts each key individually, last write wins. A failure
	// partway through leaves earlier keys written; this matches the
	// documented store contract.
	GroupPut(ctx context.Context, page string, values map[string]any) (map[string]string, error)
}

type settingsService struct {
	repo  repository.SettingRepository
	redis *redis.Client
}

func NewSettingsService(repo repository.SettingRepository, redisClient *redis.Client) SettingsService {
	return &settingsService{repo: repo, redis: redisClient}
}

func (s *settingsService) GroupGet(ctx context.Context, page string) (map[string]string, error) {
	keys, ok := settingsPages[page]
	if !ok {
		return nil, apperror.NotFound("Settings page")
	}

	if cached := s.cacheGet(ctx, page); cached != nil {
		return cached, nil
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = page + "." + k
	}

	rows, err := s.repo.FindByKeys(ctx, prefixed)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(rows))
	for _, row := range rows {
		result[strings.TrimPrefix(row.Key, page+".")] = row.Value
	}

	s.cacheSet(ctx, page, result)
	return result, nil
}

func (s *settingsService) GroupPut(ctx context.Context, page string, values map[string]any) (map[string]string, error) {
	if _, ok := settingsPages[page]; !ok {
		return nil, apperror.NotFound("Settings page")
	}

	// Invalidate even when an upsert fails partway: keys already committed
	// must not be served stale from cache until the TTL expires.
	defer s.cacheInvalidate(ctx, page)

	written := make(map[string]string, len(values))
	for key, value := range values {
		str := coerceToString(value)
		if err := s.repo.Upsert(ctx, page+"."+key, str); err != nil {
			return nil, err
		}
		written[key] = str
	}

	return written, nil
}

// coerceToString makes every stored value a string: primitives via Sprint,
// structured values via JSON.
func coerceToString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case nil:
		return ""
	case map[string]any, []any:
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(raw)
	case float64:
		// JSON numbers arrive as float64; keep integers clean.
		if value == float64(int64(value)) {
			return fmt.Sprintf("%d", int64(value))
		}
		return fmt.Sprint(value)
	default:
		return fmt.Sprint(value)
	}
}

// Cache helpers degrade silently: redis being down never fails a request.

func (s *settingsService) cacheGet(ctx context.Context, page string) map[string]string {
	if s.redis == nil {
		return nil
	}
	raw, err := s.redis.Get(ctx, settingsCacheKey(page)).Result()
	if err != nil {
		return nil
	}
	var result map[string]string
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil
	}
	return result
}

func (s *settingsService) cacheSet(ctx context.Context, page string, values map[string]string) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, settingsCacheKey(page), raw, settingsCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("page", page).Msg("failed to cache settings page")
	}
}

func (s *settingsService) cacheInvalidate(ctx context.Context, page string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, settingsCacheKey(page)).Err(); err != nil {
		log.Warn().Err(err).Str("page", page).Msg("failed to invalidate settings cache")
	}
}

func settingsCacheKey(page string) string {
	return "settings:" + page
}
