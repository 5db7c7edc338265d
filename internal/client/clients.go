package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/seb0305/aenigma-verborum/internal/config"
	"github.com/seb0305/aenigma-verborum/internal/models"
	"go.uber.org/zap"
)

type ClassifierI interface {
	Classify(ctx context.Context, headword string) (models.Classification, error)
}

type MeaningsI interface {
	AlternateMeanings(ctx context.Context, headword string) ([]string, error)
}

type LookupI interface {
	ClassifierI
	MeaningsI
}

type Clients struct {
	*FragCaesarAPI
	*MyMemoryAPI
}

func InitClients(cfg config.LookupConfig) Clients {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	return Clients{
		FragCaesarAPI: NewFragCaesarAPI(cfg.FragCaesarURL, httpClient),
		MyMemoryAPI:   NewMyMemoryAPI(cfg.MyMemoryURL, httpClient),
	}
}

// Lookup classifies with the dictionary and unions the meanings of every source.
type Lookup struct {
	classifier ClassifierI
	sources    []MeaningsI
	log        *zap.Logger
}

func NewLookup(log *zap.Logger, classifier ClassifierI, sources ...MeaningsI) *Lookup {
	return &Lookup{
		classifier: classifier,
		sources:    sources,
		log:        log,
	}
}

// NewLookupFromClients uses MyMemory only when it is configured.
func NewLookupFromClients(log *zap.Logger, c Clients, myMemoryURL string) *Lookup {
	sources := []MeaningsI{c.FragCaesarAPI}
	if myMemoryURL != "" {
		sources = append(sources, c.MyMemoryAPI)
	}
	return NewLookup(log, c.FragCaesarAPI, sources...)
}

func (l *Lookup) Classify(ctx context.Context, headword string) (models.Classification, error) {
	return l.classifier.Classify(ctx, headword)
}

// AlternateMeanings fails only when every source fails.
func (l *Lookup) AlternateMeanings(ctx context.Context, headword string) ([]string, error) {
	var (
		meanings []string
		errs     []error
	)
	seen := make(map[string]struct{})

	for _, src := range l.sources {
		got, err := src.AlternateMeanings(ctx, headword)
		if err != nil {
			l.log.Debug("meaning source failed", zap.String("headword", headword), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		for _, m := range got {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			meanings = append(meanings, m)
		}
	}

	if len(errs) > 0 && len(errs) == len(l.sources) {
		return nil, errors.Join(errs...)
	}
	return meanings, nil
}

// CacheI stores lookup results as JSON under a key.
type CacheI interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CachedLookup memoizes successful lookups. Cache errors fall through to the lookup.
type CachedLookup struct {
	next  LookupI
	cache CacheI
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedLookup(next LookupI, cache CacheI, ttl time.Duration, log *zap.Logger) *CachedLookup {
	return &CachedLookup{
		next:  next,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

func (c *CachedLookup) Classify(ctx context.Context, headword string) (models.Classification, error) {
	key := "lookup:classify:" + headword

	var class models.Classification
	if c.get(ctx, key, &class) {
		return class, nil
	}

	class, err := c.next.Classify(ctx, headword)
	if err != nil {
		return models.Classification{}, err
	}
	c.set(ctx, key, class)
	return class, nil
}

func (c *CachedLookup) AlternateMeanings(ctx context.Context, headword string) ([]string, error) {
	key := "lookup:meanings:" + headword

	var meanings []string
	if c.get(ctx, key, &meanings) {
		return meanings, nil
	}

	meanings, err := c.next.AlternateMeanings(ctx, headword)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, meanings)
	return meanings, nil
}

func (c *CachedLookup) get(ctx context.Context, key string, dest interface{}) bool {
	ok, err := c.cache.Get(ctx, key, dest)
	if err != nil {
		c.log.Warn("lookup cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return ok
}

func (c *CachedLookup) set(ctx context.Context, key string, value interface{}) {
	if err := c.cache.Set(ctx, key, value, c.ttl); err != nil {
		c.log.Warn("lookup cache write failed", zap.String("key", key), zap.Error(err))
	}
}
