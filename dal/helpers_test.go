package dal_test

import (
	"database/sql"
	"fmt"
	"pachli/dal"
	"pachli/dto"
	"pachli/shared"
	"pachli/test/mocks"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupDummyLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

type repoHarness struct {
	cfg        *shared.Config
	mockLogger *mocks.MockILogger
	acct1      int64
	acct2      int64
}

// setupRepoTest creates a fresh database with two logged-in accounts.
func setupRepoTest(t *testing.T) (*gomock.Controller, *repoHarness, dal.IRepo) {

	ctrl := gomock.NewController(t)

	h := &repoHarness{
		cfg:        &shared.Config{DbFile: filepath.Join(t.TempDir(), "pachli.db")},
		mockLogger: mocks.NewMockILogger(ctrl),
	}
	setupDummyLogger(h.mockLogger)

	repo := dal.NewRepo(h.cfg, h.mockLogger)
	t.Cleanup(func() { _ = repo.Close() })
	repo.InitUpdateDb()

	var err error
	h.acct1, err = repo.InsertAccount(&dal.Account{Domain: "mastodon.example", AccessToken: "token1", AccountId: "1"})
	assert.Nil(t, err)
	h.acct2, err = repo.InsertAccount(&dal.Account{Domain: "mastodon.example", AccessToken: "token2", AccountId: "2"})
	assert.Nil(t, err)

	return ctrl, h, repo
}

// openRaw gives tests a direct view of tables the repo has no readers for.
func openRaw(t *testing.T, h *repoHarness) *sql.DB {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", h.cfg.DbFile))
	assert.Nil(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

var baseTime = time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC)

func makeAccount(id, acct string) dto.Account {
	return dto.Account{
		Id:            id,
		LocalUsername: acct,
		Username:      acct,
		DisplayName:   "Name of " + acct,
		Url:           "https://mastodon.example/@" + acct,
		Avatar:        "https://mastodon.example/avatars/" + id + ".png",
		Emojis:        []dto.Emoji{},
	}
}

func makeStatus(id string, author dto.Account) dto.Status {
	return dto.Status{
		Id:          id,
		Url:         "https://mastodon.example/statuses/" + id,
		Account:     author,
		Content:     "<p>Status " + id + "</p>",
		CreatedAt:   baseTime,
		Visibility:  dto.VisibilityPublic,
		Emojis:      []dto.Emoji{},
		Attachments: []dto.Attachment{},
		Mentions:    []dto.Mention{},
		Tags:        []dto.HashTag{},
	}
}

func makeReblog(id string, reblogger dto.Account, inner dto.Status) dto.Status {
	res := makeStatus(id, reblogger)
	res.Content = ""
	res.Reblog = &inner
	return res
}

func upsertAll(t *testing.T, repo dal.IRepo, timelineUserId int64, statuses ...dto.Status) {
	err := dal.UpsertStatuses(repo, timelineUserId, statuses)
	assert.Nil(t, err)
}

func openRawWritable(path string) (*sql.DB, error) {
	return sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=rwc&_foreign_keys=1", path))
}
