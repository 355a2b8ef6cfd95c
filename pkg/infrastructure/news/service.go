package news

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Service serves headlines cache-aside over a Fetcher
type Service struct {
	fetcher Fetcher
	cache   Cache
	ttl     time.Duration
	log     *logrus.Logger
	now     func() time.Time
}

// NewService creates a news service
func NewService(fetcher Fetcher, cache Cache, ttl time.Duration, log *logrus.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		fetcher: fetcher,
		cache:   cache,
		ttl:     ttl,
		log:     log,
		now:     time.Now,
	}
}

// Headlines returns fresh cached headlines or fetches them.
// When the fetch fails a stale cached entry is served instead.
func (s *Service) Headlines(ctx context.Context, query string, region Region) ([]Item, error) {
	key := CacheKey(query, region)
	logger := s.log.WithFields(logrus.Fields{"query": query, "region": region})

	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.WithError(err).Warn("News cache read failed")
		found = false
	}
	if found && cached.Fresh(s.now(), s.ttl) {
		logger.Debug("News cache hit")
		return cached.Items, nil
	}

	items, err := s.fetcher.Fetch(ctx, query, region)
	if err != nil {
		if found {
			logger.WithError(err).Warn("Serving stale news after fetch failure")
			return cached.Items, nil
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, key, Entry{Items: items, FetchedAt: s.now()}); err != nil {
		logger.WithError(err).Warn("News cache write failed")
	}
	return items, nil
}

// Refresh fetches every query in every region into the cache, ignoring freshness
func (s *Service) Refresh(ctx context.Context, queries []string) int {
	refreshed := 0
	for _, query := range queries {
		for _, region := range Regions {
			if ctx.Err() != nil {
				return refreshed
			}
			items, err := s.fetcher.Fetch(ctx, query, region)
			if err != nil {
				s.log.WithError(err).WithFields(logrus.Fields{"query": query, "region": region}).Warn("News refresh failed")
				continue
			}
			if err := s.cache.Set(ctx, CacheKey(query, region), Entry{Items: items, FetchedAt: s.now()}); err != nil {
				s.log.WithError(err).Warn("News cache write failed")
				continue
			}
			refreshed++
		}
	}
	return refreshed
}
