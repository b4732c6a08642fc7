package logic

import (
	"context"
	"pachli/api"
	"pachli/dal"
	"pachli/dto"
	"pachli/shared"
	"sync"
)

const accountMediaTimelineId = "ACCOUNT_MEDIA"

// IAccountMediaMediator pages through the media posts of one account. Nothing is cached on disk.
type IAccountMediaMediator interface {
	IMediator
	// Items is a copy of the statuses loaded so far, newest first.
	Items() []dto.Status
}

type accountMediaMediator struct {
	cfg            *shared.Config
	logger         shared.ILogger
	repo           dal.IRepo
	api            api.IMastodonApi
	metrics        IMetrics
	localAccountId int64
	accountId      string
	mu             sync.Mutex
	muItems        sync.RWMutex
	items          []dto.Status
}

func NewAccountMediaMediator(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	mastodonApi api.IMastodonApi,
	metrics IMetrics,
	localAccountId int64,
	accountId string,
) IAccountMediaMediator {
	return &accountMediaMediator{
		cfg:            cfg,
		logger:         logger,
		repo:           repo,
		api:            mastodonApi,
		metrics:        metrics,
		localAccountId: localAccountId,
		accountId:      accountId,
	}
}

func (m *accountMediaMediator) Items() []dto.Status {
	m.muItems.RLock()
	defer m.muItems.RUnlock()
	res := make([]dto.Status, len(m.items))
	copy(res, m.items)
	return res
}

func (m *accountMediaMediator) lastItemId() string {
	m.muItems.RLock()
	defer m.muItems.RUnlock()
	if len(m.items) == 0 {
		return ""
	}
	return m.items[len(m.items)-1].Id
}

func (m *accountMediaMediator) Load(ctx context.Context, loadType LoadType, state PagingState) (res MediatorResult, err error) {

	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { m.metrics.MediatorLoad(accountMediaTimelineId, loadType.String(), loadOutcome(res, err)) }()

	ctx, acct, err := accountContext(ctx, m.repo, m.localAccountId)
	if err != nil {
		return failLoad(ctx, m.logger, accountMediaTimelineId, loadType, err)
	}
	if acct == nil {
		return MediatorResult{EndOfPagination: true}, nil
	}

	var resp *api.ApiResponse[[]dto.Status]
	switch loadType {
	case LoadPrepend:
		return MediatorResult{EndOfPagination: true}, nil
	case LoadRefresh:
		resp, err = m.api.AccountStatuses(ctx, m.accountId, "", true, m.cfg.PageSize)
	case LoadAppend:
		maxId := state.LastItemId
		if maxId == "" {
			maxId = m.lastItemId()
		}
		if maxId == "" {
			return MediatorResult{EndOfPagination: true}, nil
		}
		resp, err = m.api.AccountStatuses(ctx, m.accountId, maxId, true, m.cfg.PageSize)
	}
	if err != nil {
		return failLoad(ctx, m.logger, accountMediaTimelineId, loadType, err)
	}

	m.muItems.Lock()
	if loadType == LoadRefresh {
		m.items = nil
	}
	m.items = append(m.items, resp.Body...)
	m.muItems.Unlock()

	return MediatorResult{EndOfPagination: len(resp.Body) == 0}, nil
}
