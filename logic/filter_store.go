package logic

import (
	"context"
	"encoding/json"
	"pachli/api"
	"pachli/dto"
	"pachli/shared"
	"sort"
	"sync"
	"time"

	"github.com/spaolacci/murmur3"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_filter_store.go -package mocks pachli/logic IFilterStore

// IFilterStore keeps each account's legacy filters and the content filters compiled from them.
type IFilterStore interface {
	// SetFilters replaces the account's filter set. Returns false if the set did not change.
	SetFilters(accountId int64, filters []dto.FilterV1) bool
	// Refresh fetches the filters of accountId, which must be the account whose credentials the API uses.
	Refresh(ctx context.Context, accountId int64) error
	Filters(accountId int64) []dto.FilterV1
	FilterFor(accountId int64, filterContext string) *ContentFilter
	Forget(accountId int64)
}

type accountFilters struct {
	filters     []dto.FilterV1
	fingerprint uint64
	nextExpiry  time.Time // Zero if nothing expires
	compiled    map[string]*ContentFilter
}

type filterStore struct {
	logger   shared.ILogger
	api      api.IMastodonApi
	eventBus IEventBus
	now      func() time.Time
	mu       sync.Mutex
	accounts map[int64]*accountFilters
}

func NewFilterStore(logger shared.ILogger, mastodonApi api.IMastodonApi, eventBus IEventBus) IFilterStore {
	return &filterStore{
		logger:   logger,
		api:      mastodonApi,
		eventBus: eventBus,
		now:      time.Now,
		accounts: make(map[int64]*accountFilters),
	}
}

// Order-independent hash of the filter set
func fingerprintFilters(filters []dto.FilterV1) uint64 {
	sorted := make([]dto.FilterV1, len(filters))
	copy(sorted, filters)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Id < sorted[j].Id })
	h := murmur3.New64()
	for i := range sorted {
		bytes, _ := json.Marshal(&sorted[i])
		_, _ = h.Write(bytes)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

func earliestExpiry(filters []dto.FilterV1, now time.Time) time.Time {
	var res time.Time
	for _, f := range filters {
		if f.ExpiresAt == nil || !f.ExpiresAt.After(now) {
			continue
		}
		if res.IsZero() || f.ExpiresAt.Before(res) {
			res = *f.ExpiresAt
		}
	}
	return res
}

func (fs *filterStore) SetFilters(accountId int64, filters []dto.FilterV1) bool {

	fp := fingerprintFilters(filters)

	fs.mu.Lock()
	existing, ok := fs.accounts[accountId]
	if ok && existing.fingerprint == fp {
		fs.mu.Unlock()
		return false
	}
	fs.accounts[accountId] = &accountFilters{
		filters:     filters,
		fingerprint: fp,
		nextExpiry:  earliestExpiry(filters, fs.now()),
		compiled:    make(map[string]*ContentFilter),
	}
	fs.mu.Unlock()

	fs.logger.Debugf("Filter set of account %d changed: %d filters", accountId, len(filters))
	fs.eventBus.Publish(&FilterChangedEvent{Account: accountId})
	return true
}

func (fs *filterStore) Refresh(ctx context.Context, accountId int64) error {
	resp, err := fs.api.FiltersV1(ctx)
	if err != nil {
		return err
	}
	fs.SetFilters(accountId, resp.Body)
	return nil
}

func (fs *filterStore) Filters(accountId int64) []dto.FilterV1 {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if af, ok := fs.accounts[accountId]; ok {
		return af.filters
	}
	return nil
}

// FilterFor returns the compiled filter, recompiling once a filter in the set has expired.
func (fs *filterStore) FilterFor(accountId int64, filterContext string) *ContentFilter {

	now := fs.now()

	fs.mu.Lock()
	defer fs.mu.Unlock()

	af, ok := fs.accounts[accountId]
	if !ok {
		return NewContentFilter(filterContext, nil, now)
	}
	if !af.nextExpiry.IsZero() && !now.Before(af.nextExpiry) {
		af.compiled = make(map[string]*ContentFilter)
		af.nextExpiry = earliestExpiry(af.filters, now)
	}
	if cf, ok := af.compiled[filterContext]; ok {
		return cf
	}
	cf := NewContentFilter(filterContext, af.filters, now)
	af.compiled[filterContext] = cf
	return cf
}

func (fs *filterStore) Forget(accountId int64) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.accounts, accountId)
}
