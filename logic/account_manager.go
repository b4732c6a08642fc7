package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"pachli/api"
	"pachli/dal"
	"pachli/dto"
	"pachli/shared"
	"sort"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_account_manager.go -package mocks pachli/logic IAccountManager

// IAccountManager knows who is logged in, and which account is active.
type IAccountManager interface {
	// Init makes sure an account is active if any exists, and points the API at it.
	Init(ctx context.Context) error
	// VerifyAndAddAccount adds the account, or refreshes its credentials if it is already known.
	// Does not change the active account.
	VerifyAndAddAccount(ctx context.Context, accessToken, domain, clientId, clientSecret, oauthScopes string) (int64, error)
	SetActiveAccount(ctx context.Context, id int64) error
	// LogActiveAccountOut removes the active account and returns the one that took its place, or nil.
	LogActiveAccountOut(ctx context.Context) (*dal.Account, error)
	ActiveAccount() (*dal.Account, error)
	GetAllAccountsOrderedByActive() ([]*dal.Account, error)
	GetAccountById(id int64) (*dal.Account, error)
	GetAccountByIdentifier(domain, accountId string) (*dal.Account, error)
	SaveAccount(acct *dal.Account) error
}

type accountManager struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	api      api.IMastodonApi
	eventBus IEventBus
	metrics  IMetrics
}

func NewAccountManager(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	mastodonApi api.IMastodonApi,
	eventBus IEventBus,
	metrics IMetrics,
) IAccountManager {
	return &accountManager{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		api:      mastodonApi,
		eventBus: eventBus,
		metrics:  metrics,
	}
}

func (am *accountManager) Init(ctx context.Context) error {

	var active *dal.Account
	err := am.repo.Transaction(ctx, func(q dal.IQueries) error {
		var err error
		if active, err = q.GetActiveAccount(); err != nil || active != nil {
			return err
		}
		var accts []*dal.Account
		if accts, err = q.GetAllAccounts(); err != nil || len(accts) == 0 {
			return err
		}
		active = accts[0]
		active.IsActive = true
		return q.MarkAccountActive(active.Id)
	})
	if err != nil {
		return fmt.Errorf("failed to load active account: %w", err)
	}

	if active == nil {
		am.logger.Info("No accounts yet")
		am.api.SetCredentials("", "")
		return nil
	}
	am.logger.Infof("Active account: %s", active.FullName())
	am.api.SetCredentials(active.Domain, active.AccessToken)
	return nil
}

// Copies what the account shows about itself onto the stored account
func applyProfile(acct *dal.Account, profile *dto.CredentialAccount) {
	acct.AccountId = profile.Id
	acct.Username = profile.LocalUsername
	acct.DisplayName = profile.Name()
	acct.ProfilePictureUrl = profile.Avatar
	acct.ProfileHeaderPictureUrl = profile.Header
	acct.DefaultPostPrivacy = dto.VisibilityPublic
	acct.DefaultPostLanguage = ""
	acct.DefaultMediaSensitivity = false
	if profile.Source != nil {
		if profile.Source.Privacy != "" {
			acct.DefaultPostPrivacy = profile.Source.Privacy
		}
		acct.DefaultPostLanguage = profile.Source.Language
		acct.DefaultMediaSensitivity = profile.Source.Sensitive
	}
	emojis := profile.Emojis
	if emojis == nil {
		emojis = []dto.Emoji{}
	}
	emojiBytes, _ := json.Marshal(emojis)
	acct.Emojis = string(emojiBytes)
	acct.Locked = profile.Locked
}

func (am *accountManager) VerifyAndAddAccount(
	ctx context.Context,
	accessToken, domain, clientId, clientSecret, oauthScopes string,
) (id int64, err error) {

	domain = strings.ToLower(domain)

	var resp *api.ApiResponse[*dto.CredentialAccount]
	if resp, err = am.api.VerifyCredentials(ctx, domain, accessToken); err != nil {
		am.logger.Warnf("Failed to verify credentials for new account on %s: %v", domain, err)
		return 0, err
	}
	profile := resp.Body
	if profile == nil {
		return 0, fmt.Errorf("empty credentials response from %s", domain)
	}

	err = am.repo.Transaction(ctx, func(q dal.IQueries) error {
		existing, err := q.GetAccountByIdentifier(domain, profile.Id)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.AccessToken = accessToken
			existing.ClientId = clientId
			existing.ClientSecret = clientSecret
			existing.OauthScopes = oauthScopes
			applyProfile(existing, profile)
			id = existing.Id
			return q.UpdateAccount(existing)
		}
		acct := dal.Account{
			Domain:               domain,
			AccessToken:          accessToken,
			ClientId:             clientId,
			ClientSecret:         clientSecret,
			OauthScopes:          oauthScopes,
			NotificationsEnabled: true,
			MediaPreviewEnabled:  true,
			LastNotificationId:   "0",
		}
		applyProfile(&acct, profile)
		id, err = q.InsertAccount(&acct)
		return err
	})
	if err != nil {
		return 0, err
	}

	am.logger.Infof("Account added or refreshed: %d (%s@%s)", id, profile.LocalUsername, domain)
	return id, nil
}

// SetActiveAccount verifies the target's credentials inside the switching transaction,
// so a failed verification leaves the previous account active.
// The transaction is not retried: one switch sends one verification request.
func (am *accountManager) SetActiveAccount(ctx context.Context, id int64) error {

	var target *dal.Account
	err := am.repo.TransactionOnce(ctx, func(q dal.IQueries) error {
		var err error
		if target, err = q.GetAccount(id); err != nil {
			return err
		}
		if target == nil {
			return dal.ErrAccountNotFound
		}
		if err = q.ClearActiveAccount(); err != nil {
			return err
		}
		resp, err := am.api.VerifyCredentials(ctx, target.Domain, target.AccessToken)
		if err != nil {
			return err
		}
		if resp.Body != nil {
			applyProfile(target, resp.Body)
		}
		target.IsActive = true
		return q.UpdateAccount(target)
	})
	if err != nil {
		if api.IsCancelled(err) {
			return err
		}
		am.logger.Warnf("Failed to switch to account %d: %v", id, err)
		return &AccountSwitchError{AccountId: id, Err: err}
	}

	// Credentials change only once the switch is committed
	am.api.SetCredentials(target.Domain, target.AccessToken)
	am.metrics.AccountSwitched()
	am.eventBus.Publish(&ActiveAccountChangedEvent{Account: target.Id})
	return nil
}

func (am *accountManager) LogActiveAccountOut(ctx context.Context) (*dal.Account, error) {

	var loggedOut, next *dal.Account
	err := am.repo.Transaction(ctx, func(q dal.IQueries) error {
		var err error
		if loggedOut, err = q.GetActiveAccount(); err != nil || loggedOut == nil {
			return err
		}

		// Credentials go first so requests still in flight with them fail
		am.api.SetCredentials("", "")
		loggedOut.AccessToken = ""
		loggedOut.IsActive = false
		if err = q.UpdateAccount(loggedOut); err != nil {
			return err
		}
		if err = q.RemoveAllStatuses(loggedOut.Id); err != nil {
			return err
		}
		if err = q.DeleteAllRemoteKeys(loggedOut.Id); err != nil {
			return err
		}
		if err = q.DeleteAccount(loggedOut.Id); err != nil {
			return err
		}

		var accts []*dal.Account
		if accts, err = q.GetAllAccounts(); err != nil || len(accts) == 0 {
			return err
		}
		next = accts[0]
		next.IsActive = true
		return q.MarkAccountActive(next.Id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to log out active account: %w", err)
	}
	if loggedOut == nil {
		return nil, nil
	}

	am.logger.Infof("Logged out account %d (%s)", loggedOut.Id, loggedOut.FullName())
	if next != nil {
		am.api.SetCredentials(next.Domain, next.AccessToken)
		am.eventBus.Publish(&ActiveAccountChangedEvent{Account: next.Id})
	} else {
		am.eventBus.Publish(&ActiveAccountChangedEvent{})
	}
	return next, nil
}

func (am *accountManager) ActiveAccount() (*dal.Account, error) {
	return am.repo.GetActiveAccount()
}

func (am *accountManager) GetAllAccountsOrderedByActive() ([]*dal.Account, error) {
	accts, err := am.repo.GetAllAccounts()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(accts, func(i, j int) bool {
		return accts[i].IsActive && !accts[j].IsActive
	})
	return accts, nil
}

func (am *accountManager) GetAccountById(id int64) (*dal.Account, error) {
	return am.repo.GetAccount(id)
}

func (am *accountManager) GetAccountByIdentifier(domain, accountId string) (*dal.Account, error) {
	return am.repo.GetAccountByIdentifier(strings.ToLower(domain), accountId)
}

// SaveAccount stores preference changes of a known account. Unknown accounts are ignored:
// a screen may still save state for an account that was just logged out.
func (am *accountManager) SaveAccount(acct *dal.Account) error {

	if acct.Id == 0 {
		am.logger.Errorf("Trying to save account with ID 0, ignoring")
		return nil
	}

	existing, err := am.repo.GetAccount(acct.Id)
	if err != nil {
		return err
	}
	if existing == nil {
		am.logger.Errorf("Trying to save account with ID %d which does not exist, ignoring", acct.Id)
		return nil
	}

	// Which account is active only changes through SetActiveAccount
	acct.IsActive = existing.IsActive
	return am.repo.UpdateAccount(acct)
}
