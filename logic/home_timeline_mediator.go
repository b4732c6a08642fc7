package logic

import (
	"context"
	"net/http"
	"pachli/api"
	"pachli/dal"
	"pachli/dto"
	"pachli/shared"
	"sync"

	"golang.org/x/sync/errgroup"
)

// HomeTimelineId names the home timeline in remote keys and metrics.
const HomeTimelineId = "HOME"

type homeTimelineMediator struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	api       api.IMastodonApi
	metrics   IMetrics
	accountId int64
	mu        sync.Mutex
}

// NewHomeTimelineMediator creates the mediator that keeps the account's home timeline in the cache.
func NewHomeTimelineMediator(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	mastodonApi api.IMastodonApi,
	metrics IMetrics,
	accountId int64,
) IMediator {
	return &homeTimelineMediator{
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
		api:       mastodonApi,
		metrics:   metrics,
		accountId: accountId,
	}
}

func (m *homeTimelineMediator) Load(ctx context.Context, loadType LoadType, state PagingState) (res MediatorResult, err error) {

	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { m.metrics.MediatorLoad(HomeTimelineId, loadType.String(), loadOutcome(res, err)) }()

	// Only the active account loads; other accounts' timelines stay as cached
	ctx, acct, err := accountContext(ctx, m.repo, m.accountId)
	if err != nil {
		return failLoad(ctx, m.logger, HomeTimelineId, loadType, err)
	}
	if acct == nil {
		return MediatorResult{EndOfPagination: true}, nil
	}

	var resp *api.ApiResponse[[]dto.Status]
	switch loadType {
	case LoadPrepend:
		return MediatorResult{EndOfPagination: true}, nil
	case LoadRefresh:
		key := state.AnchorId
		if key == "" {
			var rk *dal.RemoteKey
			if rk, err = m.repo.GetRemoteKey(acct.Id, HomeTimelineId, dal.RemoteKeyRefresh); err != nil {
				return failLoad(ctx, m.logger, HomeTimelineId, loadType, err)
			}
			if rk != nil {
				key = rk.Key
			}
		}
		m.logger.Debugf("Home timeline refresh for account %d, key '%s'", acct.Id, key)
		resp, err = m.getInitialPage(ctx, key)
	case LoadAppend:
		var rk *dal.RemoteKey
		if rk, err = m.repo.GetRemoteKey(acct.Id, HomeTimelineId, dal.RemoteKeyNext); err != nil {
			return failLoad(ctx, m.logger, HomeTimelineId, loadType, err)
		}
		var maxId string
		if rk != nil {
			// A stored empty key means the previous append reached the end
			if rk.Key == "" {
				return MediatorResult{EndOfPagination: true}, nil
			}
			maxId = rk.Key
		} else {
			maxId = state.LastItemId
		}
		if maxId == "" {
			return MediatorResult{EndOfPagination: true}, nil
		}
		m.logger.Debugf("Home timeline append for account %d, max_id '%s'", acct.Id, maxId)
		resp, err = m.api.HomeTimeline(ctx, maxId, "", "", m.cfg.PageSize)
	}
	if err != nil {
		return failLoad(ctx, m.logger, HomeTimelineId, loadType, err)
	}

	statuses := resp.Body
	if len(statuses) == 0 {
		return MediatorResult{EndOfPagination: loadType != LoadRefresh}, nil
	}
	links := resp.Links()

	err = m.repo.Transaction(ctx, func(q dal.IQueries) error {
		if loadType == LoadRefresh {
			if err := q.DeleteRemoteKeys(acct.Id, HomeTimelineId); err != nil {
				return err
			}
			if err := q.RemoveAllStatuses(acct.Id); err != nil {
				return err
			}
			keys := []dal.RemoteKey{
				{AccountId: acct.Id, TimelineId: HomeTimelineId, Kind: dal.RemoteKeyNext, Key: links.Next},
				{AccountId: acct.Id, TimelineId: HomeTimelineId, Kind: dal.RemoteKeyPrev, Key: links.Prev},
				{AccountId: acct.Id, TimelineId: HomeTimelineId, Kind: dal.RemoteKeyRefresh, Key: statuses[0].Id},
			}
			for i := range keys {
				if err := q.UpsertRemoteKey(&keys[i]); err != nil {
					return err
				}
			}
		} else {
			next := dal.RemoteKey{AccountId: acct.Id, TimelineId: HomeTimelineId, Kind: dal.RemoteKeyNext, Key: links.Next}
			if err := q.UpsertRemoteKey(&next); err != nil {
				return err
			}
		}
		return dal.UpsertStatuses(q, acct.Id, statuses)
	})
	if err != nil {
		return failLoad(ctx, m.logger, HomeTimelineId, loadType, err)
	}

	return MediatorResult{EndOfPagination: loadType == LoadAppend && links.Next == ""}, nil
}

// getInitialPage fetches the page around key: the status itself plus the pages on either side.
// If the status is gone, it falls back to the older page, then the newer page, then the newest page.
func (m *homeTimelineMediator) getInitialPage(ctx context.Context, key string) (*api.ApiResponse[[]dto.Status], error) {

	if key == "" {
		return m.api.HomeTimeline(ctx, "", "", "", m.cfg.PageSize)
	}

	var status *dto.Status
	var newer, older []dto.Status

	// Errors other than cancellation only mean that piece is missing
	var g errgroup.Group
	g.Go(func() error {
		resp, err := m.api.Status(ctx, key)
		if err != nil {
			if api.IsCancelled(err) {
				return err
			}
			m.logger.Debugf("Refresh anchor %s not available: %v", key, err)
			return nil
		}
		status = resp.Body
		return nil
	})
	g.Go(func() error {
		resp, err := m.api.HomeTimeline(ctx, "", key, "", m.cfg.PageSize)
		if err != nil {
			if api.IsCancelled(err) {
				return err
			}
			return nil
		}
		newer = resp.Body
		return nil
	})
	g.Go(func() error {
		resp, err := m.api.HomeTimeline(ctx, key, "", "", m.cfg.PageSize)
		if err != nil {
			if api.IsCancelled(err) {
				return err
			}
			return nil
		}
		older = resp.Body
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if status != nil {
		page := make([]dto.Status, 0, len(newer)+1+len(older))
		page = append(page, newer...)
		page = append(page, *status)
		page = append(page, older...)
		return synthesizedPage(page), nil
	}
	if len(older) != 0 {
		return synthesizedPage(older), nil
	}
	if len(newer) != 0 {
		return synthesizedPage(newer), nil
	}

	return m.api.HomeTimeline(ctx, "", "", "", m.cfg.PageSize)
}

// synthesizedPage is a response for a page we assembled ourselves, with the links Mastodon would send.
func synthesizedPage(page []dto.Status) *api.ApiResponse[[]dto.Status] {
	header := http.Header{}
	header.Set("Link", shared.MakeLinkHeader(page[len(page)-1].Id, page[0].Id))
	return &api.ApiResponse[[]dto.Status]{Header: header, Body: page, Code: http.StatusOK}
}
