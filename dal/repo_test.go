package dal_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"pachli/dal"
	"pachli/shared"
	"pachli/test/mocks"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func Test_Repo_Init_Twice_Keeps_Data(t *testing.T) {

	ctrl, h, repo := setupRepoTest(t)
	defer ctrl.Finish()

	upsertAll(t, repo, h.acct1, makeStatus("10", makeAccount("3", "alice")))
	repo.InitUpdateDb()

	count, err := repo.GetStatusCount(h.acct1)
	assert.Nil(t, err)
	assert.Equal(t, 1, count)

	var ver string
	err = openRaw(t, h).QueryRow(`SELECT val FROM sys_params WHERE name='schema_ver'`).Scan(&ver)
	assert.Nil(t, err)
	assert.Equal(t, "3", ver)
}

func Test_Repo_Migrates_View_Data(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(mockLogger)
	cfg := &shared.Config{DbFile: filepath.Join(t.TempDir(), "pachli.db")}

	// Build a version 1 database by hand, with view state stored on the status row
	script, err := os.ReadFile("scripts/create-01.sql")
	assert.Nil(t, err)
	raw, err := openRawWritable(cfg.DbFile)
	assert.Nil(t, err)
	_, err = raw.Exec(string(script))
	assert.Nil(t, err)
	_, err = raw.Exec(`UPDATE sys_params SET val='1' WHERE name='schema_ver'`)
	assert.Nil(t, err)
	_, err = raw.Exec(`INSERT INTO accounts (domain, access_token, account_id) VALUES ('mastodon.example', 'tok', '1')`)
	assert.Nil(t, err)
	_, err = raw.Exec(`INSERT INTO timeline_accounts (server_id, timeline_user_id, local_username, username,
		display_name, url, avatar) VALUES ('3', 1, 'alice', 'alice', 'Alice', '', '')`)
	assert.Nil(t, err)
	for i, expanded := range []int{1, 0} {
		_, err = raw.Exec(`INSERT INTO timeline_statuses (server_id, timeline_user_id, timeline_id, author_server_id,
			created_at, expanded) VALUES (?, 1, ?, '3', '2024-03-14 09:26:53', ?)`,
			fmt.Sprint(10+i), fmt.Sprint(10+i), expanded)
		assert.Nil(t, err)
	}
	assert.Nil(t, raw.Close())

	repo := dal.NewRepo(cfg, mockLogger)
	defer repo.Close()
	repo.InitUpdateDb()

	vd, err := repo.GetStatusViewData(1, "10")
	assert.Nil(t, err)
	assert.NotNil(t, vd)
	assert.True(t, vd.Expanded)
	assert.True(t, vd.ContentCollapsed)
	assert.Equal(t, dal.TranslationShowOriginal, vd.TranslationState)

	// Rows with only default state are not carried over
	vd, err = repo.GetStatusViewData(1, "11")
	assert.Nil(t, err)
	assert.Nil(t, vd)

	found, err := repo.GetStatus(1, "10")
	assert.Nil(t, err)
	assert.True(t, found.ViewData.Expanded)
}

func Test_Repo_Accounts(t *testing.T) {

	ctrl, h, repo := setupRepoTest(t)
	defer ctrl.Finish()

	_, err := repo.InsertAccount(&dal.Account{Domain: "mastodon.example", AccessToken: "again", AccountId: "1"})
	assert.True(t, errors.Is(err, dal.ErrDuplicateAccount))

	acct, err := repo.GetAccountByIdentifier("mastodon.example", "2")
	assert.Nil(t, err)
	assert.Equal(t, h.acct2, acct.Id)
	assert.Equal(t, "token2", acct.AccessToken)
	assert.True(t, acct.IsLoggedIn())

	acct.DisplayName = "Second"
	acct.LastVisibleHomeTimelineStatusId = "12345"
	assert.Nil(t, repo.UpdateAccount(acct))
	acct, err = repo.GetAccount(h.acct2)
	assert.Nil(t, err)
	assert.Equal(t, "Second", acct.DisplayName)
	assert.Equal(t, "12345", acct.LastVisibleHomeTimelineStatusId)

	acct, err = repo.GetAccount(12345)
	assert.Nil(t, err)
	assert.Nil(t, acct)

	err = repo.MarkAccountActive(12345)
	assert.True(t, errors.Is(err, dal.ErrAccountNotFound))
}

func Test_Repo_Single_Active_Account(t *testing.T) {

	ctrl, h, repo := setupRepoTest(t)
	defer ctrl.Finish()

	activate := func(id int64) error {
		return repo.Transaction(context.Background(), func(q dal.IQueries) error {
			if err := q.ClearActiveAccount(); err != nil {
				return err
			}
			return q.MarkAccountActive(id)
		})
	}

	active, err := repo.GetActiveAccount()
	assert.Nil(t, err)
	assert.Nil(t, active)

	assert.Nil(t, activate(h.acct1))
	assert.Nil(t, activate(h.acct2))
	active, err = repo.GetActiveAccount()
	assert.Nil(t, err)
	assert.Equal(t, h.acct2, active.Id)

	// Marking a second row without clearing violates the unique index
	err = repo.MarkAccountActive(h.acct1)
	assert.NotNil(t, err)

	// Failed switch leaves the old active account in place
	assert.NotNil(t, activate(12345))
	active, err = repo.GetActiveAccount()
	assert.Nil(t, err)
	assert.Equal(t, h.acct2, active.Id)

	accts, err := repo.GetAllAccounts()
	assert.Nil(t, err)
	nActive := 0
	for _, acct := range accts {
		if acct.IsActive {
			nActive += 1
		}
	}
	assert.Equal(t, 1, nActive)
}

func Test_Repo_Delete_Account_Cascades(t *testing.T) {

	ctrl, h, repo := setupRepoTest(t)
	defer ctrl.Finish()

	upsertAll(t, repo, h.acct1, makeStatus("10", makeAccount("3", "alice")))
	assert.Nil(t, repo.UpsertRemoteKey(&dal.RemoteKey{AccountId: h.acct1, TimelineId: "home", Kind: dal.RemoteKeyNext, Key: "9"}))
	assert.Nil(t, repo.SetExpanded(h.acct1, "10", true))

	assert.Nil(t, repo.DeleteAccount(h.acct1))

	count, err := repo.GetStatusCount(h.acct1)
	assert.Nil(t, err)
	assert.Equal(t, 0, count)
	rk, err := repo.GetRemoteKey(h.acct1, "home", dal.RemoteKeyNext)
	assert.Nil(t, err)
	assert.Nil(t, rk)
	vd, err := repo.GetStatusViewData(h.acct1, "10")
	assert.Nil(t, err)
	assert.Nil(t, vd)
	assert.Equal(t, 0, len(timelineAccountKeys(t, openRaw(t, h))))
}

func Test_Repo_Transaction_Rolls_Back(t *testing.T) {

	ctrl, h, repo := setupRepoTest(t)
	defer ctrl.Finish()

	boom := errors.New("boom")
	err := repo.Transaction(context.Background(), func(q dal.IQueries) error {
		if err := dal.UpsertStatus(q, h.acct1, ptr(makeStatus("10", makeAccount("3", "alice")))); err != nil {
			return err
		}
		return boom
	})
	assert.True(t, errors.Is(err, boom))

	count, err := repo.GetStatusCount(h.acct1)
	assert.Nil(t, err)
	assert.Equal(t, 0, count)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = repo.Transaction(ctx, func(q dal.IQueries) error { return nil })
	assert.True(t, errors.Is(err, context.Canceled))
}

func Test_Repo_Transaction_Retry_Only_When_Allowed(t *testing.T) {

	ctrl, _, repo := setupRepoTest(t)
	defer ctrl.Finish()

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	calls := 0
	err := repo.Transaction(context.Background(), func(q dal.IQueries) error {
		calls++
		return busy
	})
	assert.NotNil(t, err)
	assert.Equal(t, 3, calls)

	calls = 0
	err = repo.TransactionOnce(context.Background(), func(q dal.IQueries) error {
		calls++
		return busy
	})
	var sqliteErr sqlite3.Error
	assert.True(t, errors.As(err, &sqliteErr))
	assert.Equal(t, sqlite3.ErrBusy, sqliteErr.Code)
	assert.Equal(t, 1, calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = repo.TransactionOnce(ctx, func(q dal.IQueries) error { return nil })
	assert.True(t, errors.Is(err, context.Canceled))
}

func Test_Repo_Remote_Keys(t *testing.T) {

	ctrl, h, repo := setupRepoTest(t)
	defer ctrl.Finish()

	rk, err := repo.GetRemoteKey(h.acct1, "home", dal.RemoteKeyRefresh)
	assert.Nil(t, err)
	assert.Nil(t, rk)

	assert.Nil(t, repo.UpsertRemoteKey(&dal.RemoteKey{AccountId: h.acct1, TimelineId: "home", Kind: dal.RemoteKeyRefresh, Key: "10"}))
	assert.Nil(t, repo.UpsertRemoteKey(&dal.RemoteKey{AccountId: h.acct1, TimelineId: "home", Kind: dal.RemoteKeyRefresh, Key: "11"}))
	assert.Nil(t, repo.UpsertRemoteKey(&dal.RemoteKey{AccountId: h.acct1, TimelineId: "home", Kind: dal.RemoteKeyPrev}))
	assert.Nil(t, repo.UpsertRemoteKey(&dal.RemoteKey{AccountId: h.acct2, TimelineId: "home", Kind: dal.RemoteKeyNext, Key: "5"}))

	rk, err = repo.GetRemoteKey(h.acct1, "home", dal.RemoteKeyRefresh)
	assert.Nil(t, err)
	assert.Equal(t, "11", rk.Key)
	rk, err = repo.GetRemoteKey(h.acct1, "home", dal.RemoteKeyPrev)
	assert.Nil(t, err)
	assert.NotNil(t, rk)
	assert.Equal(t, "", rk.Key)

	assert.Nil(t, repo.DeleteRemoteKeys(h.acct1, "home"))
	rk, _ = repo.GetRemoteKey(h.acct1, "home", dal.RemoteKeyRefresh)
	assert.Nil(t, rk)
	rk, _ = repo.GetRemoteKey(h.acct2, "home", dal.RemoteKeyNext)
	assert.NotNil(t, rk)

	assert.Nil(t, repo.DeleteAllRemoteKeys(h.acct2))
	rk, _ = repo.GetRemoteKey(h.acct2, "home", dal.RemoteKeyNext)
	assert.Nil(t, rk)
}

func Test_Repo_View_Data_And_Translation(t *testing.T) {

	ctrl, h, repo := setupRepoTest(t)
	defer ctrl.Finish()

	upsertAll(t, repo, h.acct1, makeStatus("10", makeAccount("3", "alice")))

	assert.Nil(t, repo.SetContentShowing(h.acct1, "10", true))
	vd, err := repo.GetStatusViewData(h.acct1, "10")
	assert.Nil(t, err)
	assert.True(t, vd.ContentShowing)
	assert.False(t, vd.Expanded)
	assert.True(t, vd.ContentCollapsed)

	assert.Nil(t, repo.SetContentCollapsed(h.acct1, "10", false))
	assert.Nil(t, repo.SetTranslationState(h.acct1, "10", dal.TranslationShowTranslation))
	assert.Nil(t, repo.UpsertTranslatedStatus(&dal.TranslatedStatus{
		ServerId: "10", TimelineUserId: h.acct1, Content: "<p>Hallo</p>", Provider: "DeepL.com",
	}))

	found, err := repo.GetStatus(h.acct1, "10")
	assert.Nil(t, err)
	assert.False(t, found.ViewData.ContentCollapsed)
	assert.Equal(t, dal.TranslationShowTranslation, found.ViewData.TranslationState)
	assert.Equal(t, "<p>Hallo</p>", found.Translation.Content)
	assert.Equal(t, "[]", found.Translation.Attachments)

	// View state outlives the cached status
	assert.Nil(t, repo.RemoveAllStatuses(h.acct1))
	vd, err = repo.GetStatusViewData(h.acct1, "10")
	assert.Nil(t, err)
	assert.True(t, vd.ContentShowing)

	assert.Nil(t, repo.DeleteTranslatedStatus(h.acct1, "10"))
	tr, err := repo.GetTranslatedStatus(h.acct1, "10")
	assert.Nil(t, err)
	assert.Nil(t, tr)

	assert.Nil(t, repo.UpsertStatusViewData(dal.DefaultStatusViewData(h.acct1, "10")))
	vd, _ = repo.GetStatusViewData(h.acct1, "10")
	assert.False(t, vd.ContentShowing)
}
