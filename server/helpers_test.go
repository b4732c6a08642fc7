package server_test

import (
	"encoding/json"
	"net/http/httptest"
	"pachli/dal"
	"pachli/logic"
	"pachli/server"
	"pachli/shared"
	"pachli/test/mocks"
	"pachli/texts"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	testApiKey      = "local-key-1"
	testMetricsAuth = "scrape-secret"
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

type noopObserver struct{}

func (noopObserver) Finish() {}

type serverHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockMetrics  *mocks.MockIMetrics
	mockAccounts *mocks.MockIAccountManager
	mockCases    *mocks.MockITimelineCases
	mockLogout   *mocks.MockILogoutUseCase
	mockRegistry *mocks.MockIMediatorRegistry
	mockFilters  *mocks.MockIFilterStore
	eventBus     logic.IEventBus
	router       *mux.Router
}

func setupServerTest(t *testing.T) (*gomock.Controller, *serverHarness) {

	ctrl := gomock.NewController(t)
	h := &serverHarness{
		cfg: &shared.Config{
			PageSize: 30,
			Secrets: shared.Secrets{
				ApiKeys:     []string{"other-key", testApiKey},
				MetricsAuth: testMetricsAuth,
			},
		},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
		mockAccounts: mocks.NewMockIAccountManager(ctrl),
		mockCases:    mocks.NewMockITimelineCases(ctrl),
		mockLogout:   mocks.NewMockILogoutUseCase(ctrl),
		mockRegistry: mocks.NewMockIMediatorRegistry(ctrl),
		mockFilters:  mocks.NewMockIFilterStore(ctrl),
		eventBus:     logic.NewEventBus(),
	}
	setupDummyLogger(h.mockLogger)
	h.mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Return(noopObserver{}).AnyTimes()

	apiGroup := server.NewApiHandlerGroup(h.cfg, h.mockLogger, texts.NewTexts(), h.mockMetrics,
		h.mockAccounts, h.mockCases, h.mockLogout, h.mockRegistry, h.mockFilters, h.eventBus)
	metricsGroup := server.NewMetricsHandlerGroup(h.cfg, h.mockLogger)
	h.router = server.NewMux([]server.IHandlerGroup{apiGroup, metricsGroup}, h.mockLogger)

	return ctrl, h
}

func (h *serverHarness) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("X-API-KEY", testApiKey)
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *serverHarness) expectActive(acct *dal.Account) {
	h.mockAccounts.EXPECT().ActiveAccount().Return(acct, nil).AnyTimes()
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	var res T
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

type errorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, code int, contains string) {
	t.Helper()
	assert.Equal(t, code, rec.Code)
	body := decodeBody[errorBody](t, rec)
	assert.Equal(t, code, body.Status)
	assert.Contains(t, body.Error, contains)
}

func makeLocalAccount(id int64, username string, active bool) *dal.Account {
	return &dal.Account{
		Id:                 id,
		Domain:             "mastodon.example",
		AccessToken:        "token-" + username,
		AccountId:          "10" + username,
		Username:           username,
		DisplayName:        "Name of " + username,
		IsActive:           active,
		DefaultPostPrivacy: "public",
	}
}
