package logic

import (
	"context"
	"pachli/api"
	"pachli/dal"
	"pachli/dto"
	"pachli/shared"
	"sync"
)

const followedTagsTimelineId = "FOLLOWED_TAGS"

// IFollowedTagsMediator pages through the hashtags the active account follows.
type IFollowedTagsMediator interface {
	IMediator
	Tags() []dto.HashTag
}

type followedTagsMediator struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	api       api.IMastodonApi
	metrics   IMetrics
	accountId int64
	mu        sync.Mutex
	muTags    sync.RWMutex
	tags      []dto.HashTag
	nextKey   string
}

func NewFollowedTagsMediator(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	mastodonApi api.IMastodonApi,
	metrics IMetrics,
	accountId int64,
) IFollowedTagsMediator {
	return &followedTagsMediator{
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
		api:       mastodonApi,
		metrics:   metrics,
		accountId: accountId,
	}
}

func (m *followedTagsMediator) Tags() []dto.HashTag {
	m.muTags.RLock()
	defer m.muTags.RUnlock()
	res := make([]dto.HashTag, len(m.tags))
	copy(res, m.tags)
	return res
}

func (m *followedTagsMediator) Load(ctx context.Context, loadType LoadType, _ PagingState) (res MediatorResult, err error) {

	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { m.metrics.MediatorLoad(followedTagsTimelineId, loadType.String(), loadOutcome(res, err)) }()

	ctx, acct, err := accountContext(ctx, m.repo, m.accountId)
	if err != nil {
		return failLoad(ctx, m.logger, followedTagsTimelineId, loadType, err)
	}
	if acct == nil {
		return MediatorResult{EndOfPagination: true}, nil
	}

	var resp *api.ApiResponse[[]dto.HashTag]
	switch loadType {
	case LoadPrepend:
		return MediatorResult{EndOfPagination: true}, nil
	case LoadRefresh:
		resp, err = m.api.FollowedTags(ctx, "", m.cfg.PageSize)
	case LoadAppend:
		m.muTags.RLock()
		maxId := m.nextKey
		m.muTags.RUnlock()
		if maxId == "" {
			return MediatorResult{EndOfPagination: true}, nil
		}
		resp, err = m.api.FollowedTags(ctx, maxId, m.cfg.PageSize)
	}
	if err != nil {
		return failLoad(ctx, m.logger, followedTagsTimelineId, loadType, err)
	}

	m.muTags.Lock()
	defer m.muTags.Unlock()
	if loadType == LoadRefresh {
		m.tags = nil
	}
	m.tags = append(m.tags, resp.Body...)
	m.nextKey = resp.Links().Next

	return MediatorResult{EndOfPagination: m.nextKey == ""}, nil
}
