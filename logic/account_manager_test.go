package logic_test

import (
	"context"
	"errors"
	"pachli/api"
	"pachli/dal"
	"pachli/dto"
	"pachli/logic"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAccountManagerTest(t *testing.T) (*gomock.Controller, *logicHarness, logic.IAccountManager) {
	ctrl, h := setupLogicHarness(t)
	am := logic.NewAccountManager(h.cfg, h.mockLogger, h.repo, h.mockApi, h.eventBus, h.mockMetrics)
	return ctrl, h, am
}

func makeProfile(id, username string) *dto.CredentialAccount {
	acct := makeAccount(id, username)
	acct.Header = "https://" + testDomain + "/headers/" + id + ".png"
	acct.Locked = true
	return &dto.CredentialAccount{
		Account: acct,
		Source:  &dto.AccountSource{Privacy: dto.VisibilityUnlisted, Sensitive: true, Language: "de"},
	}
}

func Test_AccountManager_VerifyAndAddAccount_New(t *testing.T) {

	ctrl, h, am := setupAccountManagerTest(t)
	defer ctrl.Finish()

	h.mockApi.EXPECT().VerifyCredentials(gomock.Any(), testDomain, "tok").
		Return(okResponse(makeProfile("42", "alice")), nil)

	id, err := am.VerifyAndAddAccount(context.Background(), "tok", "Mastodon.Example", "cid", "csecret", "read write")
	assert.Nil(t, err)

	acct, err := am.GetAccountById(id)
	assert.Nil(t, err)
	assert.NotNil(t, acct)
	assert.Equal(t, testDomain, acct.Domain)
	assert.Equal(t, "42", acct.AccountId)
	assert.Equal(t, "alice", acct.Username)
	assert.Equal(t, "Name of alice", acct.DisplayName)
	assert.Equal(t, "tok", acct.AccessToken)
	assert.Equal(t, "cid", acct.ClientId)
	assert.Equal(t, "read write", acct.OauthScopes)
	assert.Equal(t, dto.VisibilityUnlisted, acct.DefaultPostPrivacy)
	assert.Equal(t, "de", acct.DefaultPostLanguage)
	assert.True(t, acct.DefaultMediaSensitivity)
	assert.True(t, acct.Locked)
	assert.Equal(t, "https://"+testDomain+"/headers/42.png", acct.ProfileHeaderPictureUrl)
	assert.Equal(t, "@alice@"+testDomain, acct.FullName())

	// Adding does not activate
	assert.False(t, acct.IsActive)
	assert.Equal(t, 0, activeCount(t, h))

	byIdent, err := am.GetAccountByIdentifier("MASTODON.example", "42")
	assert.Nil(t, err)
	assert.Equal(t, id, byIdent.Id)
}

func Test_AccountManager_VerifyAndAddAccount_Known_Refreshes_Credentials(t *testing.T) {

	ctrl, h, am := setupAccountManagerTest(t)
	defer ctrl.Finish()

	existingId := insertAccount(t, h, "42", "old-token", true)

	profile := makeProfile("42", "alice")
	profile.Source = nil
	h.mockApi.EXPECT().VerifyCredentials(gomock.Any(), testDomain, "new-token").Return(okResponse(profile), nil)

	id, err := am.VerifyAndAddAccount(context.Background(), "new-token", testDomain, "cid2", "cs2", "read")
	assert.Nil(t, err)
	assert.Equal(t, existingId, id)

	accts, err := am.GetAllAccountsOrderedByActive()
	assert.Nil(t, err)
	assert.Len(t, accts, 1)
	assert.Equal(t, "new-token", accts[0].AccessToken)
	assert.Equal(t, "cid2", accts[0].ClientId)
	assert.Equal(t, "read", accts[0].OauthScopes)
	assert.Equal(t, dto.VisibilityPublic, accts[0].DefaultPostPrivacy)
	assert.True(t, accts[0].IsActive)
}

func Test_AccountManager_VerifyAndAddAccount_Rejected_Token(t *testing.T) {

	ctrl, h, am := setupAccountManagerTest(t)
	defer ctrl.Finish()

	h.mockApi.EXPECT().VerifyCredentials(gomock.Any(), testDomain, "bad").
		Return(nil, apiError(api.KindUnauthorized, 401))

	_, err := am.VerifyAndAddAccount(context.Background(), "bad", testDomain, "cid", "cs", "read")
	var apiErr *api.ApiError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.Code)

	accts, err := h.repo.GetAllAccounts()
	assert.Nil(t, err)
	assert.Len(t, accts, 0)
}

func Test_AccountManager_SetActiveAccount_Switches_After_Verification(t *testing.T) {

	ctrl, h, am := setupAccountManagerTest(t)
	defer ctrl.Finish()

	first := insertAccount(t, h, "1", "tok1", true)
	second := insertAccount(t, h, "2", "tok2", false)

	profile := makeProfile("2", "bob")
	profile.DisplayName = "Bob Renamed"
	h.mockApi.EXPECT().VerifyCredentials(gomock.Any(), testDomain, "tok2").Return(okResponse(profile), nil)
	h.mockApi.EXPECT().SetCredentials(testDomain, "tok2")
	h.mockMetrics.EXPECT().AccountSwitched()

	err := am.SetActiveAccount(context.Background(), second)
	assert.Nil(t, err)

	active, err := am.ActiveAccount()
	assert.Nil(t, err)
	assert.Equal(t, second, active.Id)
	assert.Equal(t, "Bob Renamed", active.DisplayName)
	assert.Equal(t, 1, activeCount(t, h))

	prev, _ := am.GetAccountById(first)
	assert.False(t, prev.IsActive)

	events := h.events.all()
	assert.Len(t, events, 1)
	assert.Equal(t, logic.EvActiveAccountChanged, events[0].Kind())
	assert.Equal(t, second, events[0].AccountId())
}

func Test_AccountManager_SetActiveAccount_Failed_Verification_Keeps_Previous(t *testing.T) {

	ctrl, h, am := setupAccountManagerTest(t)
	defer ctrl.Finish()

	first := insertAccount(t, h, "1", "tok1", true)
	second := insertAccount(t, h, "2", "tok2", false)

	h.mockApi.EXPECT().VerifyCredentials(gomock.Any(), testDomain, "tok2").
		Return(nil, apiError(api.KindServiceUnavailable, 503))

	err := am.SetActiveAccount(context.Background(), second)
	var switchErr *logic.AccountSwitchError
	assert.True(t, errors.As(err, &switchErr))
	assert.Equal(t, second, switchErr.AccountId)
	var apiErr *api.ApiError
	assert.True(t, errors.As(err, &apiErr))

	active, err := am.ActiveAccount()
	assert.Nil(t, err)
	assert.Equal(t, first, active.Id)
	assert.Equal(t, 1, activeCount(t, h))
	assert.Len(t, h.events.all(), 0)
}

func Test_AccountManager_SetActiveAccount_Verifies_Once(t *testing.T) {

	ctrl, h, am := setupAccountManagerTest(t)
	defer ctrl.Finish()

	first := insertAccount(t, h, "1", "tok1", true)
	second := insertAccount(t, h, "2", "tok2", false)

	// A failure the database layer would retry still means a single request
	h.mockApi.EXPECT().VerifyCredentials(gomock.Any(), testDomain, "tok2").
		Return(nil, sqlite3.Error{Code: sqlite3.ErrBusy}).Times(1)

	err := am.SetActiveAccount(context.Background(), second)
	var switchErr *logic.AccountSwitchError
	assert.True(t, errors.As(err, &switchErr))

	active, _ := am.ActiveAccount()
	assert.Equal(t, first, active.Id)
}

func Test_AccountManager_SetActiveAccount_Unknown_Id(t *testing.T) {

	ctrl, h, am := setupAccountManagerTest(t)
	defer ctrl.Finish()

	first := insertAccount(t, h, "1", "tok1", true)

	err := am.SetActiveAccount(context.Background(), 12345)
	assert.True(t, errors.Is(err, dal.ErrAccountNotFound))

	active, _ := am.ActiveAccount()
	assert.Equal(t, first, active.Id)
}

func Test_AccountManager_LogActiveAccountOut_Promotes_Next(t *testing.T) {

	ctrl, h, am := setupAccountManagerTest(t)
	defer ctrl.Finish()

	first := insertAccount(t, h, "1", "tok1", true)
	second := insertAccount(t, h, "2", "tok2", false)

	author := makeAccount("100", "carol")
	assert.Nil(t, dal.UpsertStatuses(h.repo, first, makeStatuses(author, "5", "4")))
	assert.Nil(t, dal.UpsertStatuses(h.repo, second, makeStatuses(author, "7")))
	assert.Nil(t, h.repo.UpsertRemoteKey(&dal.RemoteKey{AccountId: first, TimelineId: logic.HomeTimelineId, Kind: dal.RemoteKeyNext, Key: "4"}))

	gomock.InOrder(
		h.mockApi.EXPECT().SetCredentials("", ""),
		h.mockApi.EXPECT().SetCredentials(testDomain, "tok2"),
	)

	next, err := am.LogActiveAccountOut(context.Background())
	assert.Nil(t, err)
	assert.NotNil(t, next)
	assert.Equal(t, second, next.Id)
	assert.True(t, next.IsActive)

	gone, err := am.GetAccountById(first)
	assert.Nil(t, err)
	assert.Nil(t, gone)
	assert.Len(t, cachedIds(t, h, first), 0)
	assert.Nil(t, remoteKey(t, h, first, dal.RemoteKeyNext))

	// The other account's cache is untouched
	assert.Equal(t, []string{"7"}, cachedIds(t, h, second))
	assert.Equal(t, 1, activeCount(t, h))

	events := h.events.all()
	assert.Len(t, events, 1)
	assert.Equal(t, second, events[0].AccountId())
}

func Test_AccountManager_LogActiveAccountOut_Last_Account(t *testing.T) {

	ctrl, h, am := setupAccountManagerTest(t)
	defer ctrl.Finish()

	insertAccount(t, h, "1", "tok1", true)
	h.mockApi.EXPECT().SetCredentials("", "")

	next, err := am.LogActiveAccountOut(context.Background())
	assert.Nil(t, err)
	assert.Nil(t, next)

	active, err := am.ActiveAccount()
	assert.Nil(t, err)
	assert.Nil(t, active)

	// Nothing left to log out
	next, err = am.LogActiveAccountOut(context.Background())
	assert.Nil(t, err)
	assert.Nil(t, next)
}

func Test_AccountManager_Accounts_Ordered_By_Active(t *testing.T) {

	ctrl, h, am := setupAccountManagerTest(t)
	defer ctrl.Finish()

	a := insertAccount(t, h, "1", "tok1", false)
	b := insertAccount(t, h, "2", "tok2", true)
	c := insertAccount(t, h, "3", "tok3", false)

	accts, err := am.GetAllAccountsOrderedByActive()
	assert.Nil(t, err)
	assert.Len(t, accts, 3)
	assert.Equal(t, []int64{b, a, c}, []int64{accts[0].Id, accts[1].Id, accts[2].Id})
}

func Test_AccountManager_SaveAccount(t *testing.T) {

	ctrl, h, am := setupAccountManagerTest(t)
	defer ctrl.Finish()

	insertAccount(t, h, "1", "tok1", true)
	second := insertAccount(t, h, "2", "tok2", false)

	// Ignored quietly
	assert.Nil(t, am.SaveAccount(&dal.Account{Id: 0}))
	assert.Nil(t, am.SaveAccount(&dal.Account{Id: 999, Domain: "nowhere.example"}))
	accts, _ := h.repo.GetAllAccounts()
	assert.Len(t, accts, 2)

	acct, _ := am.GetAccountById(second)
	acct.AlwaysOpenSpoiler = true
	acct.IsActive = true
	assert.Nil(t, am.SaveAccount(acct))

	saved, _ := am.GetAccountById(second)
	assert.True(t, saved.AlwaysOpenSpoiler)
	assert.False(t, saved.IsActive)
	assert.Equal(t, 1, activeCount(t, h))
}

func Test_AccountManager_Init_Activates_First_Account(t *testing.T) {

	ctrl, h, am := setupAccountManagerTest(t)
	defer ctrl.Finish()

	first := insertAccount(t, h, "1", "tok1", false)
	insertAccount(t, h, "2", "tok2", false)

	h.mockApi.EXPECT().SetCredentials(testDomain, "tok1")
	assert.Nil(t, am.Init(context.Background()))

	active, _ := am.ActiveAccount()
	assert.Equal(t, first, active.Id)
}

func Test_AccountManager_Init_Without_Accounts(t *testing.T) {

	ctrl, h, am := setupAccountManagerTest(t)
	defer ctrl.Finish()

	h.mockApi.EXPECT().SetCredentials("", "")
	assert.Nil(t, am.Init(context.Background()))
}

func Test_AccountManager_At_Most_One_Active(t *testing.T) {

	ctrl, h, am := setupAccountManagerTest(t)
	defer ctrl.Finish()

	h.mockApi.EXPECT().SetCredentials(gomock.Any(), gomock.Any()).AnyTimes()
	h.mockMetrics.EXPECT().AccountSwitched().AnyTimes()
	h.mockApi.EXPECT().VerifyCredentials(gomock.Any(), testDomain, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, token string) (*api.ApiResponse[*dto.CredentialAccount], error) {
			if token == "revoked" {
				return nil, apiError(api.KindUnauthorized, 401)
			}
			return okResponse(makeProfile("id-"+token, "user-"+token)), nil
		}).AnyTimes()

	ctx := context.Background()
	var ids []int64
	for _, token := range []string{"a", "b", "c"} {
		id, err := am.VerifyAndAddAccount(ctx, token, testDomain, "cid", "cs", "read")
		assert.Nil(t, err)
		ids = append(ids, id)
		assert.LessOrEqual(t, activeCount(t, h), 1)
	}

	assert.Nil(t, am.SetActiveAccount(ctx, ids[0]))
	assert.Equal(t, 1, activeCount(t, h))
	assert.Nil(t, am.SetActiveAccount(ctx, ids[2]))
	assert.Equal(t, 1, activeCount(t, h))

	_, err := am.LogActiveAccountOut(ctx)
	assert.Nil(t, err)
	assert.Equal(t, 1, activeCount(t, h))

	revokedId := insertAccount(t, h, "r", "revoked", false)
	assert.NotNil(t, am.SetActiveAccount(ctx, revokedId))
	assert.Equal(t, 1, activeCount(t, h))

	for remaining := 3; remaining > 0; remaining-- {
		_, err = am.LogActiveAccountOut(ctx)
		assert.Nil(t, err)
		accts, _ := h.repo.GetAllAccounts()
		assert.Len(t, accts, remaining-1)
		assert.Equal(t, min(1, remaining-1), activeCount(t, h))
	}
}
