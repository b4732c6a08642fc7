package logic_test

import (
	"context"
	"errors"
	"pachli/api"
	"pachli/dal"
	"pachli/dto"
	"pachli/logic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type timelineCasesHarness struct {
	*logicHarness
	acctId      int64
	filterStore logic.IFilterStore
}

// setupTimelineCasesTest has an active account with statuses 5..1 cached; 3 and 1 are by a remote author.
func setupTimelineCasesTest(t *testing.T) (*gomock.Controller, *timelineCasesHarness, logic.ITimelineCases) {

	ctrl, lh := setupLogicHarness(t)
	h := &timelineCasesHarness{
		logicHarness: lh,
		acctId:       insertAccount(t, lh, "1", "tok1", true),
	}
	h.filterStore = logic.NewFilterStore(h.mockLogger, h.mockApi, h.eventBus)

	local := makeAccount("100", "carol")
	remote := makeAccount("200", "mallory@evil.example")
	statuses := []dto.Status{
		makeStatus("5", local), makeStatus("4", local), makeStatus("3", remote),
		makeStatus("2", local), makeStatus("1", remote),
	}
	assert.Nil(t, dal.UpsertStatuses(h.repo, h.acctId, statuses))

	tc := logic.NewTimelineCases(h.mockLogger, h.repo, h.mockApi, h.eventBus, h.filterStore)
	return ctrl, h, tc
}

func Test_TimelineCases_MuteConversation(t *testing.T) {

	ctrl, h, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	muted := makeStatus("4", makeAccount("100", "carol"))
	muted.Muted = true
	h.mockApi.EXPECT().MuteConversation(gomock.Any(), "4", true).Return(okResponse(&muted), nil)

	assert.Nil(t, tc.MuteConversation(context.Background(), "4", true))

	row, err := h.repo.GetStatus(h.acctId, "4")
	assert.Nil(t, err)
	assert.True(t, row.Status.Muted)

	events := h.events.all()
	assert.Len(t, events, 1)
	assert.Equal(t, &logic.MuteConversationEvent{Account: h.acctId, StatusId: "4", Mute: true}, events[0])
}

func Test_TimelineCases_Failure_Leaves_State(t *testing.T) {

	ctrl, h, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	h.mockApi.EXPECT().MuteConversation(gomock.Any(), "4", true).Return(nil, apiError(api.KindNotFound, 404))
	h.mockApi.EXPECT().BlockAccount(gomock.Any(), "200").Return(nil, apiError(api.KindInternal, 500))
	h.mockApi.EXPECT().DeleteStatus(gomock.Any(), "5").Return(nil, apiError(api.KindGone, 410))

	var apiErr *api.ApiError
	assert.True(t, errors.As(tc.MuteConversation(context.Background(), "4", true), &apiErr))
	assert.True(t, errors.As(tc.Block(context.Background(), "200"), &apiErr))
	_, err := tc.Delete(context.Background(), "5")
	assert.True(t, errors.As(err, &apiErr))

	row, _ := h.repo.GetStatus(h.acctId, "4")
	assert.False(t, row.Status.Muted)
	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, cachedIds(t, h.logicHarness, h.acctId))
	assert.Len(t, h.events.all(), 0)
}

func Test_TimelineCases_Block_Removes_Users_Statuses(t *testing.T) {

	ctrl, h, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	h.mockApi.EXPECT().BlockAccount(gomock.Any(), "200").Return(okResponse(&dto.Relationship{Id: "200", Blocking: true}), nil)

	assert.Nil(t, tc.Block(context.Background(), "200"))
	assert.Equal(t, []string{"5", "4", "2"}, cachedIds(t, h.logicHarness, h.acctId))
	assert.Equal(t, []logic.Event{&logic.BlockEvent{Account: h.acctId, UserId: "200"}}, h.events.all())
}

func Test_TimelineCases_Mute_Publishes(t *testing.T) {

	ctrl, h, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	h.mockApi.EXPECT().MuteAccount(gomock.Any(), "200", false, 24*time.Hour).
		Return(okResponse(&dto.Relationship{Id: "200", Muting: true}), nil)

	assert.Nil(t, tc.Mute(context.Background(), "200", false, 24*time.Hour))
	assert.Equal(t, []logic.Event{&logic.MuteEvent{Account: h.acctId, UserId: "200"}}, h.events.all())
}

func Test_TimelineCases_Delete(t *testing.T) {

	ctrl, h, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	h.mockApi.EXPECT().DeleteStatus(gomock.Any(), "4").Return(okResponse(&dto.DeletedStatus{Text: "draft"}), nil)

	deleted, err := tc.Delete(context.Background(), "4")
	assert.Nil(t, err)
	assert.Equal(t, "draft", deleted.Text)
	assert.Equal(t, []string{"5", "3", "2", "1"}, cachedIds(t, h.logicHarness, h.acctId))
	assert.Equal(t, []logic.Event{&logic.StatusDeletedEvent{Account: h.acctId, StatusId: "4"}}, h.events.all())
}

func Test_TimelineCases_BlockDomain(t *testing.T) {

	ctrl, h, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	h.mockApi.EXPECT().BlockDomain(gomock.Any(), "evil.example").Return(okResponse(api.Empty{}), nil)

	assert.Nil(t, tc.BlockDomain(context.Background(), " Evil.Example/"))
	assert.Equal(t, []string{"5", "4", "2"}, cachedIds(t, h.logicHarness, h.acctId))
	assert.Equal(t, []logic.Event{&logic.DomainBlockEvent{Account: h.acctId, Domain: "evil.example"}}, h.events.all())
}

func Test_TimelineCases_Follow_Requests(t *testing.T) {

	ctrl, h, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	h.mockApi.EXPECT().AuthorizeFollowRequest(gomock.Any(), "300").Return(okResponse(&dto.Relationship{Id: "300", FollowedBy: true}), nil)
	h.mockApi.EXPECT().RejectFollowRequest(gomock.Any(), "301").Return(nil, apiError(api.KindNotFound, 404))

	assert.Nil(t, tc.AcceptFollowRequest(context.Background(), "300"))
	assert.NotNil(t, tc.RejectFollowRequest(context.Background(), "301"))
}

func Test_TimelineCases_Translate(t *testing.T) {

	ctrl, h, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	// The call completes even though the caller went away
	ctx, cancel := context.WithCancel(context.Background())
	h.mockApi.EXPECT().Translate(gomock.Any(), "4").DoAndReturn(
		func(ctx context.Context, statusId string) (*api.ApiResponse[*dto.Translation], error) {
			cancel()
			assert.Nil(t, ctx.Err())
			vd, err := h.repo.GetStatusViewData(h.acctId, statusId)
			assert.Nil(t, err)
			assert.Equal(t, dal.TranslationTranslating, vd.TranslationState)
			return okResponse(&dto.Translation{Content: "<p>Status vier</p>", Provider: "DeepL"}), nil
		})

	translated, err := tc.Translate(ctx, "4")
	assert.Nil(t, err)
	assert.Equal(t, "DeepL", translated.Provider)

	row, err := h.repo.GetStatus(h.acctId, "4")
	assert.Nil(t, err)
	assert.Equal(t, dal.TranslationShowTranslation, row.ViewData.TranslationState)
	assert.Equal(t, "<p>Status vier</p>", row.Translation.Content)

	assert.Nil(t, tc.TranslateUndo(context.Background(), "4"))
	row, _ = h.repo.GetStatus(h.acctId, "4")
	assert.Equal(t, dal.TranslationShowOriginal, row.ViewData.TranslationState)
	assert.NotNil(t, row.Translation)
}

func Test_TimelineCases_Translate_Reblog(t *testing.T) {

	ctrl, h, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	original := makeStatus("40", makeAccount("200", "mallory@evil.example"))
	wrapper := makeStatus("50", makeAccount("100", "carol"))
	wrapper.Content = ""
	wrapper.Reblog = &original
	assert.Nil(t, dal.UpsertStatuses(h.repo, h.acctId, []dto.Status{wrapper}))

	// The server translates the reblogged status
	h.mockApi.EXPECT().Translate(gomock.Any(), "40").
		Return(okResponse(&dto.Translation{Content: "<p>Vierzig</p>", Provider: "DeepL"}), nil)

	_, err := tc.Translate(context.Background(), "50")
	assert.Nil(t, err)

	page, err := tc.HomePage(h.acctId, "", 1)
	assert.Nil(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, "50", page[0].Item.TimelineId())
	actionable := page[0].Item.Actionable()
	assert.NotNil(t, actionable.ViewData)
	assert.Equal(t, dal.TranslationShowTranslation, actionable.ViewData.TranslationState)
	assert.NotNil(t, actionable.Translation)
	assert.Equal(t, "<p>Vierzig</p>", actionable.Translation.Content)

	assert.Nil(t, tc.TranslateUndo(context.Background(), "50"))
	page, _ = tc.HomePage(h.acctId, "", 1)
	assert.Equal(t, dal.TranslationShowOriginal, page[0].Item.Actionable().ViewData.TranslationState)
}

func Test_TimelineCases_Translate_Failure_Reverts_State(t *testing.T) {

	ctrl, h, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	h.mockApi.EXPECT().Translate(gomock.Any(), "4").Return(nil, apiError(api.KindServiceUnavailable, 503))

	_, err := tc.Translate(context.Background(), "4")
	var trErr *logic.TranslateError
	assert.True(t, errors.As(err, &trErr))
	assert.Equal(t, "4", trErr.StatusId)

	vd, err := h.repo.GetStatusViewData(h.acctId, "4")
	assert.Nil(t, err)
	assert.Equal(t, dal.TranslationShowOriginal, vd.TranslationState)
	tr, _ := h.repo.GetTranslatedStatus(h.acctId, "4")
	assert.Nil(t, tr)
}

func Test_TimelineCases_Translate_Uncached_Status(t *testing.T) {

	ctrl, _, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	_, err := tc.Translate(context.Background(), "99")
	assert.ErrorIs(t, err, logic.ErrStatusNotCached)
}

func Test_TimelineCases_View_State(t *testing.T) {

	ctrl, h, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	yes, no := true, false
	vd, err := tc.SetViewState(context.Background(), "4", logic.ViewStateChange{Expanded: &yes})
	assert.Nil(t, err)
	assert.True(t, vd.Expanded)
	assert.False(t, vd.ContentShowing)

	vd, err = tc.SetViewState(context.Background(), "4", logic.ViewStateChange{ContentShowing: &yes, ContentCollapsed: &no})
	assert.Nil(t, err)
	assert.True(t, vd.Expanded)
	assert.True(t, vd.ContentShowing)
	assert.False(t, vd.ContentCollapsed)

	// Nothing to change: the defaults come back
	vd, err = tc.SetViewState(context.Background(), "2", logic.ViewStateChange{})
	assert.Nil(t, err)
	assert.Equal(t, dal.DefaultStatusViewData(h.acctId, "2"), vd)

	assert.Nil(t, h.repo.UpsertTranslatedStatus(&dal.TranslatedStatus{ServerId: "4", TimelineUserId: h.acctId, Content: "x"}))
	assert.Nil(t, tc.ResetViewState(context.Background(), "4"))
	row, err := h.repo.GetStatus(h.acctId, "4")
	assert.Nil(t, err)
	assert.Equal(t, dal.DefaultStatusViewData(h.acctId, "4"), row.ViewData)
	assert.Nil(t, row.Translation)

	_, err = tc.SetViewState(context.Background(), "99", logic.ViewStateChange{Expanded: &yes})
	assert.ErrorIs(t, err, logic.ErrStatusNotCached)
	assert.ErrorIs(t, tc.ResetViewState(context.Background(), "99"), logic.ErrStatusNotCached)
}

func Test_TimelineCases_Refresh_Status_Id(t *testing.T) {

	ctrl, h, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	id, err := tc.GetRefreshStatusId(h.acctId)
	assert.Nil(t, err)
	assert.Equal(t, "", id)

	assert.Nil(t, tc.SaveRefreshStatusId(context.Background(), h.acctId, "3"))
	id, err = tc.GetRefreshStatusId(h.acctId)
	assert.Nil(t, err)
	assert.Equal(t, "3", id)
}

func Test_TimelineCases_No_Active_Account(t *testing.T) {

	ctrl, h, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	assert.Nil(t, h.repo.ClearActiveAccount())

	assert.ErrorIs(t, tc.Block(context.Background(), "200"), logic.ErrNoActiveAccount)
	_, err := tc.Translate(context.Background(), "4")
	assert.ErrorIs(t, err, logic.ErrNoActiveAccount)
}

func Test_TimelineCases_HomePage_Applies_Filters(t *testing.T) {

	ctrl, h, tc := setupTimelineCasesTest(t)
	defer ctrl.Finish()

	author := makeAccount("100", "carol")
	spam := makeStatus("7", author)
	spam.Content = "<p>this is not spam at all</p>"
	spammy := makeStatus("6", author)
	spammy.Content = "<p>spammy</p>"
	assert.Nil(t, dal.UpsertStatuses(h.repo, h.acctId, []dto.Status{spam, spammy}))
	h.filterStore.SetFilters(h.acctId, []dto.FilterV1{homeFilter("1", "spam", true)})

	page, err := tc.HomePage(h.acctId, "", 3)
	assert.Nil(t, err)
	assert.Len(t, page, 3)
	assert.Equal(t, "7", page[0].Item.TimelineId())
	assert.Equal(t, logic.FilterActionHide, page[0].Action)
	assert.Equal(t, "6", page[1].Item.TimelineId())
	assert.Equal(t, logic.FilterActionNone, page[1].Action)

	page, err = tc.HomePage(h.acctId, "5", 10)
	assert.Nil(t, err)
	assert.Len(t, page, 4)
	assert.Equal(t, "4", page[0].Item.TimelineId())
}
