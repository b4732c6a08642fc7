package logic

import (
	"context"
	"pachli/api"
	"pachli/dal"
	"pachli/dto"
	"pachli/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_timeline_cases.go -package mocks pachli/logic ITimelineCases

// ITimelineCases are the actions of the active account on statuses and users.
// Each calls the server first; the cache and the event bus only see successful actions.
// Actions run to completion even if the caller's context is cancelled.
type ITimelineCases interface {
	MuteConversation(ctx context.Context, statusId string, mute bool) error
	Mute(ctx context.Context, userId string, notifications bool, duration time.Duration) error
	Block(ctx context.Context, userId string) error
	Delete(ctx context.Context, statusId string) (*dto.DeletedStatus, error)
	BlockDomain(ctx context.Context, domain string) error
	AcceptFollowRequest(ctx context.Context, userId string) error
	RejectFollowRequest(ctx context.Context, userId string) error
	// Translate fetches and stores the translation of a status; the status's view state follows the call.
	Translate(ctx context.Context, statusId string) (*dal.TranslatedStatus, error)
	TranslateUndo(ctx context.Context, statusId string) error
	// SetViewState changes the flags set in change and returns the resulting view state.
	SetViewState(ctx context.Context, statusId string, change ViewStateChange) (*dal.StatusViewData, error)
	// ResetViewState puts the status's view state back to defaults and forgets its translation.
	ResetViewState(ctx context.Context, statusId string) error
	SaveRefreshStatusId(ctx context.Context, accountId int64, statusId string) error
	GetRefreshStatusId(accountId int64) (string, error)
	// HomePage reads a page of the cached home timeline, each item judged by the account's filters.
	HomePage(accountId int64, olderThanId string, limit int) ([]FilteredItem, error)
}

// ViewStateChange lists view flags to change; nil leaves a flag as it is.
type ViewStateChange struct {
	Expanded         *bool
	ContentShowing   *bool
	ContentCollapsed *bool
}

// FilteredItem is a timeline item with the filter verdict for it.
type FilteredItem struct {
	Item   TimelineItem
	Action FilterAction
}

type timelineCases struct {
	logger      shared.ILogger
	repo        dal.IRepo
	api         api.IMastodonApi
	eventBus    IEventBus
	filterStore IFilterStore
}

func NewTimelineCases(
	logger shared.ILogger,
	repo dal.IRepo,
	mastodonApi api.IMastodonApi,
	eventBus IEventBus,
	filterStore IFilterStore,
) ITimelineCases {
	return &timelineCases{
		logger:      logger,
		repo:        repo,
		api:         mastodonApi,
		eventBus:    eventBus,
		filterStore: filterStore,
	}
}

func (tc *timelineCases) activeAccountId() (int64, error) {
	acct, err := tc.repo.GetActiveAccount()
	if err != nil {
		return 0, err
	}
	if acct == nil {
		return 0, ErrNoActiveAccount
	}
	return acct.Id, nil
}

func (tc *timelineCases) MuteConversation(ctx context.Context, statusId string, mute bool) error {
	ctx = context.WithoutCancel(ctx)
	acctId, err := tc.activeAccountId()
	if err != nil {
		return err
	}
	if _, err = tc.api.MuteConversation(ctx, statusId, mute); err != nil {
		tc.logger.Warnf("Failed to mute conversation %s: %v", statusId, err)
		return err
	}
	if err = tc.repo.SetStatusMuted(acctId, statusId, mute); err != nil {
		return err
	}
	tc.eventBus.Publish(&MuteConversationEvent{Account: acctId, StatusId: statusId, Mute: mute})
	return nil
}

func (tc *timelineCases) Mute(ctx context.Context, userId string, notifications bool, duration time.Duration) error {
	ctx = context.WithoutCancel(ctx)
	acctId, err := tc.activeAccountId()
	if err != nil {
		return err
	}
	if _, err = tc.api.MuteAccount(ctx, userId, notifications, duration); err != nil {
		tc.logger.Warnf("Failed to mute user %s: %v", userId, err)
		return err
	}
	tc.eventBus.Publish(&MuteEvent{Account: acctId, UserId: userId})
	return nil
}

func (tc *timelineCases) Block(ctx context.Context, userId string) error {
	ctx = context.WithoutCancel(ctx)
	acctId, err := tc.activeAccountId()
	if err != nil {
		return err
	}
	if _, err = tc.api.BlockAccount(ctx, userId); err != nil {
		tc.logger.Warnf("Failed to block user %s: %v", userId, err)
		return err
	}
	if err = tc.repo.RemoveAllByUser(acctId, userId); err != nil {
		return err
	}
	tc.eventBus.Publish(&BlockEvent{Account: acctId, UserId: userId})
	return nil
}

func (tc *timelineCases) Delete(ctx context.Context, statusId string) (*dto.DeletedStatus, error) {
	ctx = context.WithoutCancel(ctx)
	acctId, err := tc.activeAccountId()
	if err != nil {
		return nil, err
	}
	resp, err := tc.api.DeleteStatus(ctx, statusId)
	if err != nil {
		tc.logger.Warnf("Failed to delete status %s: %v", statusId, err)
		return nil, err
	}
	if err = tc.repo.DeleteStatus(acctId, statusId); err != nil {
		return nil, err
	}
	tc.eventBus.Publish(&StatusDeletedEvent{Account: acctId, StatusId: statusId})
	return resp.Body, nil
}

func (tc *timelineCases) BlockDomain(ctx context.Context, domain string) error {
	ctx = context.WithoutCancel(ctx)
	acctId, err := tc.activeAccountId()
	if err != nil {
		return err
	}
	domain = shared.NormalizeDomain(domain)
	if _, err = tc.api.BlockDomain(ctx, domain); err != nil {
		tc.logger.Warnf("Failed to block domain %s: %v", domain, err)
		return err
	}
	if err = tc.repo.DeleteAllFromInstance(acctId, domain); err != nil {
		return err
	}
	tc.eventBus.Publish(&DomainBlockEvent{Account: acctId, Domain: domain})
	return nil
}

func (tc *timelineCases) AcceptFollowRequest(ctx context.Context, userId string) error {
	_, err := tc.api.AuthorizeFollowRequest(context.WithoutCancel(ctx), userId)
	return err
}

func (tc *timelineCases) RejectFollowRequest(ctx context.Context, userId string) error {
	_, err := tc.api.RejectFollowRequest(context.WithoutCancel(ctx), userId)
	return err
}

func (tc *timelineCases) Translate(ctx context.Context, statusId string) (*dal.TranslatedStatus, error) {

	ctx = context.WithoutCancel(ctx)
	acctId, cached, err := tc.cachedStatus(statusId)
	if err != nil {
		return nil, err
	}

	// A reblog's local state lives under the reblogged status
	serverId := cached.Status.ServerId

	if err = tc.repo.SetTranslationState(acctId, serverId, dal.TranslationTranslating); err != nil {
		return nil, err
	}

	resp, err := tc.api.Translate(ctx, serverId)
	if err != nil {
		tc.logger.Warnf("Failed to translate status %s: %v", serverId, err)
		if stateErr := tc.repo.SetTranslationState(acctId, serverId, dal.TranslationShowOriginal); stateErr != nil {
			tc.logger.Errorf("Failed to reset translation state of status %s: %v", serverId, stateErr)
		}
		return nil, &TranslateError{StatusId: statusId, Err: err}
	}

	translated := dal.TranslationToEntity(acctId, serverId, resp.Body)
	err = tc.repo.Transaction(ctx, func(q dal.IQueries) error {
		if err := q.UpsertTranslatedStatus(translated); err != nil {
			return err
		}
		return q.SetTranslationState(acctId, serverId, dal.TranslationShowTranslation)
	})
	if err != nil {
		if stateErr := tc.repo.SetTranslationState(acctId, serverId, dal.TranslationShowOriginal); stateErr != nil {
			tc.logger.Errorf("Failed to reset translation state of status %s: %v", serverId, stateErr)
		}
		return nil, &TranslateError{StatusId: statusId, Err: err}
	}
	return translated, nil
}

// TranslateUndo shows the original again. The stored translation is kept.
func (tc *timelineCases) TranslateUndo(ctx context.Context, statusId string) error {
	acctId, cached, err := tc.cachedStatus(statusId)
	if err != nil {
		return err
	}
	return tc.repo.SetTranslationState(acctId, cached.Status.ServerId, dal.TranslationShowOriginal)
}

func (tc *timelineCases) SetViewState(ctx context.Context, statusId string, change ViewStateChange) (*dal.StatusViewData, error) {

	acctId, cached, err := tc.cachedStatus(statusId)
	if err != nil {
		return nil, err
	}
	serverId := cached.Status.ServerId

	var res *dal.StatusViewData
	err = tc.repo.Transaction(context.WithoutCancel(ctx), func(q dal.IQueries) error {
		if change.Expanded != nil {
			if err := q.SetExpanded(acctId, serverId, *change.Expanded); err != nil {
				return err
			}
		}
		if change.ContentShowing != nil {
			if err := q.SetContentShowing(acctId, serverId, *change.ContentShowing); err != nil {
				return err
			}
		}
		if change.ContentCollapsed != nil {
			if err := q.SetContentCollapsed(acctId, serverId, *change.ContentCollapsed); err != nil {
				return err
			}
		}
		var err error
		res, err = q.GetStatusViewData(acctId, serverId)
		return err
	})
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = dal.DefaultStatusViewData(acctId, serverId)
	}
	return res, nil
}

func (tc *timelineCases) ResetViewState(ctx context.Context, statusId string) error {

	acctId, cached, err := tc.cachedStatus(statusId)
	if err != nil {
		return err
	}
	serverId := cached.Status.ServerId

	return tc.repo.Transaction(context.WithoutCancel(ctx), func(q dal.IQueries) error {
		if err := q.DeleteTranslatedStatus(acctId, serverId); err != nil {
			return err
		}
		return q.UpsertStatusViewData(dal.DefaultStatusViewData(acctId, serverId))
	})
}

// cachedStatus finds a status of the active account by its own or its reblog wrapper's id.
func (tc *timelineCases) cachedStatus(statusId string) (int64, *dal.TimelineStatusWithAccount, error) {
	acctId, err := tc.activeAccountId()
	if err != nil {
		return 0, nil, err
	}
	cached, err := tc.repo.GetStatus(acctId, statusId)
	if err != nil {
		return 0, nil, err
	}
	if cached == nil {
		return 0, nil, ErrStatusNotCached
	}
	return acctId, cached, nil
}

func (tc *timelineCases) SaveRefreshStatusId(ctx context.Context, accountId int64, statusId string) error {
	return tc.repo.UpsertRemoteKey(&dal.RemoteKey{
		AccountId:  accountId,
		TimelineId: HomeTimelineId,
		Kind:       dal.RemoteKeyRefresh,
		Key:        statusId,
	})
}

func (tc *timelineCases) GetRefreshStatusId(accountId int64) (string, error) {
	rk, err := tc.repo.GetRemoteKey(accountId, HomeTimelineId, dal.RemoteKeyRefresh)
	if err != nil || rk == nil {
		return "", err
	}
	return rk.Key, nil
}

func (tc *timelineCases) HomePage(accountId int64, olderThanId string, limit int) ([]FilteredItem, error) {

	rows, err := tc.repo.GetStatuses(accountId, olderThanId, limit)
	if err != nil {
		return nil, err
	}

	filter := tc.filterStore.FilterFor(accountId, dto.FilterContextHome)
	res := make([]FilteredItem, 0, len(rows))
	for _, row := range rows {
		item, err := ItemFromEntity(row)
		if err != nil {
			tc.logger.Errorf("Failed to read cached status %s: %v", row.Status.ServerId, err)
			continue
		}
		res = append(res, FilteredItem{item, filter.FilterActionFor(ToStatus(item))})
	}
	return res, nil
}
