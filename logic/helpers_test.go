package logic_test

import (
	"net/http"
	"pachli/api"
	"pachli/dal"
	"pachli/dto"
	"pachli/logic"
	"pachli/shared"
	"pachli/test/mocks"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testDomain = "mastodon.example"

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

type logicHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockApi     *mocks.MockIMastodonApi
	mockMetrics *mocks.MockIMetrics
	repo        dal.IRepo
	eventBus    logic.IEventBus
	events      *eventRecorder
}

// setupLogicHarness gives a fresh database, a mocked server and a real event bus that records everything.
func setupLogicHarness(t *testing.T) (*gomock.Controller, *logicHarness) {

	ctrl := gomock.NewController(t)

	h := &logicHarness{
		cfg: &shared.Config{
			DbFile:          filepath.Join(t.TempDir(), "pachli.db"),
			PageSize:        30,
			TimelineKeepMax: 200,
		},
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockApi:     mocks.NewMockIMastodonApi(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
		eventBus:    logic.NewEventBus(),
		events:      &eventRecorder{},
	}
	setupDummyLogger(h.mockLogger)

	h.repo = dal.NewRepo(h.cfg, h.mockLogger)
	t.Cleanup(func() { _ = h.repo.Close() })
	h.repo.InitUpdateDb()

	err := h.eventBus.Subscribe(t.Context(), "recorder", logic.EventFilter{}, h.events.record)
	assert.Nil(t, err)

	return ctrl, h
}

type eventRecorder struct {
	mu     sync.Mutex
	events []logic.Event
}

func (er *eventRecorder) record(ev logic.Event) {
	er.mu.Lock()
	defer er.mu.Unlock()
	er.events = append(er.events, ev)
}

func (er *eventRecorder) all() []logic.Event {
	er.mu.Lock()
	defer er.mu.Unlock()
	res := make([]logic.Event, len(er.events))
	copy(res, er.events)
	return res
}

func insertAccount(t *testing.T, h *logicHarness, accountId, token string, active bool) int64 {
	id, err := h.repo.InsertAccount(&dal.Account{
		Domain:      testDomain,
		AccountId:   accountId,
		AccessToken: token,
		Username:    "user" + accountId,
		IsActive:    active,
		Emojis:      "[]",
	})
	assert.Nil(t, err)
	return id
}

func activeCount(t *testing.T, h *logicHarness) int {
	accts, err := h.repo.GetAllAccounts()
	assert.Nil(t, err)
	res := 0
	for _, acct := range accts {
		if acct.IsActive {
			res++
		}
	}
	return res
}

func okResponse[T any](body T) *api.ApiResponse[T] {
	return &api.ApiResponse[T]{Header: http.Header{}, Body: body, Code: http.StatusOK}
}

func okPage(body []dto.Status, link string) *api.ApiResponse[[]dto.Status] {
	resp := okResponse(body)
	if link != "" {
		resp.Header.Set("Link", link)
	}
	return resp
}

func apiError(kind api.ErrorKind, code int) error {
	return &api.ApiError{
		Kind:   kind,
		Code:   code,
		Method: http.MethodGet,
		Url:    "https://" + testDomain + "/api/v1",
	}
}

var baseTime = time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC)

func makeAccount(id, acct string) dto.Account {
	return dto.Account{
		Id:            id,
		LocalUsername: acct,
		Username:      acct,
		DisplayName:   "Name of " + acct,
		Url:           "https://" + testDomain + "/@" + acct,
		Avatar:        "https://" + testDomain + "/avatars/" + id + ".png",
		Emojis:        []dto.Emoji{},
	}
}

func makeStatus(id string, author dto.Account) dto.Status {
	return dto.Status{
		Id:          id,
		Url:         "https://" + testDomain + "/statuses/" + id,
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

func makeStatuses(author dto.Account, ids ...string) []dto.Status {
	res := make([]dto.Status, 0, len(ids))
	for _, id := range ids {
		res = append(res, makeStatus(id, author))
	}
	return res
}

func cachedIds(t *testing.T, h *logicHarness, acctId int64) []string {
	ids, err := h.repo.GetMostRecentStatusIds(acctId, 100)
	assert.Nil(t, err)
	return ids
}

func remoteKey(t *testing.T, h *logicHarness, acctId int64, kind dal.RemoteKeyKind) *dal.RemoteKey {
	rk, err := h.repo.GetRemoteKey(acctId, logic.HomeTimelineId, kind)
	assert.Nil(t, err)
	return rk
}
