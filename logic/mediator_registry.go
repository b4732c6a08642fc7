package logic

import (
	"pachli/api"
	"pachli/dal"
	"pachli/shared"
	"sync"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_mediator_registry.go -package mocks pachli/logic IMediatorRegistry

// IMediatorRegistry hands out one mediator per (account, timeline) so loads of the same timeline are serialized.
type IMediatorRegistry interface {
	Home(accountId int64) IMediator
	AccountMedia(accountId int64, userId string) IAccountMediaMediator
	FollowedTags(accountId int64) IFollowedTagsMediator
	// Forget drops the account's mediators, with whatever they hold in memory.
	Forget(accountId int64)
}

type accountMediators struct {
	home         IMediator
	followedTags IFollowedTagsMediator
	media        map[string]IAccountMediaMediator
}

type mediatorRegistry struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	api      api.IMastodonApi
	metrics  IMetrics
	mu       sync.Mutex
	accounts map[int64]*accountMediators
}

func NewMediatorRegistry(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	mastodonApi api.IMastodonApi,
	metrics IMetrics,
) IMediatorRegistry {
	return &mediatorRegistry{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		api:      mastodonApi,
		metrics:  metrics,
		accounts: make(map[int64]*accountMediators),
	}
}

// Caller holds mu
func (mr *mediatorRegistry) get(accountId int64) *accountMediators {
	am, ok := mr.accounts[accountId]
	if !ok {
		am = &accountMediators{media: make(map[string]IAccountMediaMediator)}
		mr.accounts[accountId] = am
	}
	return am
}

func (mr *mediatorRegistry) Home(accountId int64) IMediator {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	am := mr.get(accountId)
	if am.home == nil {
		am.home = NewHomeTimelineMediator(mr.cfg, mr.logger, mr.repo, mr.api, mr.metrics, accountId)
	}
	return am.home
}

func (mr *mediatorRegistry) AccountMedia(accountId int64, userId string) IAccountMediaMediator {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	am := mr.get(accountId)
	m, ok := am.media[userId]
	if !ok {
		m = NewAccountMediaMediator(mr.cfg, mr.logger, mr.repo, mr.api, mr.metrics, accountId, userId)
		am.media[userId] = m
	}
	return m
}

func (mr *mediatorRegistry) FollowedTags(accountId int64) IFollowedTagsMediator {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	am := mr.get(accountId)
	if am.followedTags == nil {
		am.followedTags = NewFollowedTagsMediator(mr.cfg, mr.logger, mr.repo, mr.api, mr.metrics, accountId)
	}
	return am.followedTags
}

func (mr *mediatorRegistry) Forget(accountId int64) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	delete(mr.accounts, accountId)
}
