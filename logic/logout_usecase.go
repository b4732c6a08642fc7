package logic

import (
	"context"
	"pachli/api"
	"pachli/dal"
	"pachli/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_logout_usecase.go -package mocks pachli/logic ILogoutUseCase

// ILogoutUseCase logs the active account out of its server and out of this service.
type ILogoutUseCase interface {
	// Logout returns the account that became active, or nil. A *LogoutError means the server
	// was not told, but the account is gone locally all the same.
	Logout(ctx context.Context) (*dal.Account, error)
}

type logoutUseCase struct {
	logger      shared.ILogger
	repo        dal.IRepo
	api         api.IMastodonApi
	accounts    IAccountManager
	filterStore IFilterStore
}

func NewLogoutUseCase(
	logger shared.ILogger,
	repo dal.IRepo,
	mastodonApi api.IMastodonApi,
	accounts IAccountManager,
	filterStore IFilterStore,
) ILogoutUseCase {
	return &logoutUseCase{
		logger:      logger,
		repo:        repo,
		api:         mastodonApi,
		accounts:    accounts,
		filterStore: filterStore,
	}
}

func (lu *logoutUseCase) Logout(ctx context.Context) (*dal.Account, error) {

	ctx = context.WithoutCancel(ctx)

	acct, err := lu.accounts.ActiveAccount()
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrNoActiveAccount
	}
	lu.logger.Infof("Logging out %s", acct.FullName())

	// Push may never have been set up for the account
	if _, err = lu.api.UnsubscribePush(ctx); err != nil {
		lu.logger.Infof("Failed to unsubscribe from push for account %d: %v", acct.Id, err)
	}

	var logoutErr error
	if _, err = lu.api.RevokeOAuthToken(ctx, acct.ClientId, acct.ClientSecret, acct.AccessToken); err != nil {
		lu.logger.Warnf("Failed to revoke token of account %d: %v", acct.Id, err)
		logoutErr = &LogoutError{AccountId: acct.Id, Err: err}
	}

	err = lu.repo.Transaction(ctx, func(q dal.IQueries) error {
		if err := q.RemoveAllStatuses(acct.Id); err != nil {
			return err
		}
		return q.DeleteAllRemoteKeys(acct.Id)
	})
	if err != nil {
		return nil, err
	}
	lu.filterStore.Forget(acct.Id)

	next, err := lu.accounts.LogActiveAccountOut(ctx)
	if err != nil {
		return nil, err
	}
	return next, logoutErr
}
