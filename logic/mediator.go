package logic

import (
	"context"
	"fmt"
	"pachli/api"
	"pachli/dal"
	"pachli/shared"
	"strings"
)

// LoadType is the direction a pager asks a mediator to load in.
type LoadType int

const (
	LoadRefresh LoadType = iota
	LoadPrepend
	LoadAppend
)

func (lt LoadType) String() string {
	switch lt {
	case LoadPrepend:
		return "prepend"
	case LoadAppend:
		return "append"
	default:
		return "refresh"
	}
}

func ParseLoadType(str string) (LoadType, error) {
	switch strings.ToLower(str) {
	case "refresh":
		return LoadRefresh, nil
	case "prepend":
		return LoadPrepend, nil
	case "append":
		return LoadAppend, nil
	}
	return LoadRefresh, fmt.Errorf("unknown load type: %s", str)
}

// PagingState is what the pager currently holds.
type PagingState struct {
	AnchorId   string // ID of the item closest to the viewport; empty if nothing is shown
	LastItemId string // ID of the last item held; empty if nothing is held
}

// MediatorResult is the outcome of a completed load. Err is set if the load failed;
// previously cached pages are unchanged in that case.
type MediatorResult struct {
	EndOfPagination bool
	Err             error
}

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_mediator.go -package mocks pachli/logic IMediator,IAccountMediaMediator,IFollowedTagsMediator

// IMediator loads pages of one timeline of one account from the server.
// Load returns a non-nil error only if ctx was cancelled; every other failure is a MediatorResult.
type IMediator interface {
	Load(ctx context.Context, loadType LoadType, state PagingState) (MediatorResult, error)
}

const (
	outcomeSuccess   = "success"
	outcomeEnd       = "end"
	outcomeError     = "error"
	outcomeCancelled = "cancelled"
)

func loadOutcome(res MediatorResult, err error) string {
	if err != nil {
		return outcomeCancelled
	}
	if res.Err != nil {
		return outcomeError
	}
	if res.EndOfPagination {
		return outcomeEnd
	}
	return outcomeSuccess
}

// failLoad turns an error into an error result, unless it is a cancellation, which goes back as is.
func failLoad(ctx context.Context, logger shared.ILogger, timeline string, loadType LoadType, err error) (MediatorResult, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return MediatorResult{}, ctxErr
	}
	if api.IsCancelled(err) {
		return MediatorResult{}, err
	}
	logger.Warnf("Failed to load %s timeline (%s): %v", timeline, loadType, err)
	return MediatorResult{Err: err}, nil
}

// accountContext binds ctx to the local account's own credentials, so switching the active account
// mid-load cannot redirect the remaining requests. The account is nil if it cannot load: it is gone,
// logged out or not active.
func accountContext(ctx context.Context, repo dal.IRepo, accountId int64) (context.Context, *dal.Account, error) {
	acct, err := repo.GetAccount(accountId)
	if err != nil || acct == nil || !acct.IsLoggedIn() || !acct.IsActive {
		return ctx, nil, err
	}
	return api.WithCredentials(ctx, acct.Domain, acct.AccessToken), acct, nil
}
