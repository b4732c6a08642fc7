package server

import (
	"context"
	"errors"
	"net/http"
	"pachli/dal"
	"pachli/dto"
	"pachli/logic"
	"pachli/shared"
	"pachli/texts"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

type apiHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	txt       texts.ITexts
	metrics   logic.IMetrics
	accounts  logic.IAccountManager
	cases     logic.ITimelineCases
	logout    logic.ILogoutUseCase
	mediators logic.IMediatorRegistry
	filters   logic.IFilterStore
	eventBus  logic.IEventBus
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	txt texts.ITexts,
	metrics logic.IMetrics,
	accounts logic.IAccountManager,
	cases logic.ITimelineCases,
	logout logic.ILogoutUseCase,
	mediators logic.IMediatorRegistry,
	filters logic.IFilterStore,
	eventBus logic.IEventBus,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		txt:       txt,
		metrics:   metrics,
		accounts:  accounts,
		cases:     cases,
		logout:    logout,
		mediators: mediators,
		filters:   filters,
		eventBus:  eventBus,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/accounts", func(w http.ResponseWriter, r *http.Request) { hg.getAccounts(w, r) }},
		{"POST", "/accounts", func(w http.ResponseWriter, r *http.Request) { hg.postAccounts(w, r) }},
		{"POST", "/accounts/active/logout", func(w http.ResponseWriter, r *http.Request) { hg.postLogout(w, r) }},
		{"POST", "/accounts/{id:[0-9]+}/activate", func(w http.ResponseWriter, r *http.Request) { hg.postActivate(w, r) }},
		{"GET", "/timelines/home", func(w http.ResponseWriter, r *http.Request) { hg.getHomeTimeline(w, r) }},
		{"POST", "/timelines/home/load", func(w http.ResponseWriter, r *http.Request) { hg.postHomeLoad(w, r) }},
		{"GET", "/timelines/home/refresh_id", func(w http.ResponseWriter, r *http.Request) { hg.getRefreshId(w, r) }},
		{"PUT", "/timelines/home/refresh_id", func(w http.ResponseWriter, r *http.Request) { hg.putRefreshId(w, r) }},
		{"POST", "/statuses/{id}/mute_conversation", func(w http.ResponseWriter, r *http.Request) { hg.postMuteConversation(w, r) }},
		{"DELETE", "/statuses/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deleteStatus(w, r) }},
		{"POST", "/statuses/{id}/translate", func(w http.ResponseWriter, r *http.Request) { hg.postTranslate(w, r) }},
		{"DELETE", "/statuses/{id}/translate", func(w http.ResponseWriter, r *http.Request) { hg.deleteTranslate(w, r) }},
		{"PATCH", "/statuses/{id}/view", func(w http.ResponseWriter, r *http.Request) { hg.patchViewState(w, r) }},
		{"DELETE", "/statuses/{id}/view", func(w http.ResponseWriter, r *http.Request) { hg.deleteViewState(w, r) }},
		{"POST", "/users/{id}/mute", func(w http.ResponseWriter, r *http.Request) { hg.postMute(w, r) }},
		{"POST", "/users/{id}/block", func(w http.ResponseWriter, r *http.Request) { hg.postBlock(w, r) }},
		{"POST", "/users/{id}/media/load", func(w http.ResponseWriter, r *http.Request) { hg.postMediaLoad(w, r) }},
		{"POST", "/followed_tags/load", func(w http.ResponseWriter, r *http.Request) { hg.postFollowedTagsLoad(w, r) }},
		{"POST", "/domains/{domain}/block", func(w http.ResponseWriter, r *http.Request) { hg.postBlockDomain(w, r) }},
		{"POST", "/follow_requests/{id}/authorize", func(w http.ResponseWriter, r *http.Request) { hg.postFollowRequest(w, r, true) }},
		{"POST", "/follow_requests/{id}/reject", func(w http.ResponseWriter, r *http.Request) { hg.postFollowRequest(w, r, false) }},
		{"PUT", "/filters", func(w http.ResponseWriter, r *http.Request) { hg.putFilters(w, r) }},
		{"GET", "/events", func(w http.ResponseWriter, r *http.Request) { hg.getEvents(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if secretMatches(apiKey, key) {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func toLocalAccount(acct *dal.Account) *dto.LocalAccount {
	if acct == nil {
		return nil
	}
	return &dto.LocalAccount{
		Id:                   acct.Id,
		Domain:               acct.Domain,
		AccountId:            acct.AccountId,
		FullName:             acct.FullName(),
		DisplayName:          acct.DisplayName,
		Avatar:               acct.ProfilePictureUrl,
		Header:               acct.ProfileHeaderPictureUrl,
		IsActive:             acct.IsActive,
		Locked:               acct.Locked,
		DefaultPostPrivacy:   acct.DefaultPostPrivacy,
		DefaultPostLanguage:  acct.DefaultPostLanguage,
		NotificationsEnabled: acct.NotificationsEnabled,
	}
}

func toCachedItem(fi *logic.FilteredItem, timelineUserId int64) dto.CachedItem {
	actionable := fi.Item.Actionable()
	vd := actionable.ViewData
	if vd == nil {
		vd = dal.DefaultStatusViewData(timelineUserId, actionable.Status.Id)
	}
	res := dto.CachedItem{
		TimelineId:       fi.Item.TimelineId(),
		Status:           logic.ToStatus(fi.Item),
		FilterAction:     fi.Action.String(),
		Expanded:         vd.Expanded,
		ContentShowing:   vd.ContentShowing,
		ContentCollapsed: vd.ContentCollapsed,
		TranslationState: vd.TranslationState.String(),
	}
	if tr := actionable.Translation; tr != nil {
		res.Translation = &dto.TranslatedContent{
			Content:     tr.Content,
			SpoilerText: tr.SpoilerText,
			Provider:    tr.Provider,
		}
	}
	return res
}

func (hg *apiHandlerGroup) activeAccount() (*dal.Account, error) {
	acct, err := hg.accounts.ActiveAccount()
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, logic.ErrNoActiveAccount
	}
	return acct, nil
}

// Filters come from the server the account lives on; a failure keeps the ones we had.
func (hg *apiHandlerGroup) refreshFilters(ctx context.Context, accountId int64) {
	if err := hg.filters.Refresh(ctx, accountId); err != nil {
		hg.logger.Warnf("Failed to refresh filters of account %d: %v", accountId, err)
	}
}

func (hg *apiHandlerGroup) getAccounts(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("accounts")
	defer obs.Finish()

	accts, err := hg.accounts.GetAllAccountsOrderedByActive()
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	res := make([]*dto.LocalAccount, 0, len(accts))
	for _, acct := range accts {
		res = append(res, toLocalAccount(acct))
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) postAccounts(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("accounts-add")
	defer obs.Finish()

	req, ok := readJsonBody[dto.AddAccountReq](hg.logger, hg.txt, w, r)
	if !ok {
		return
	}
	domain := shared.NormalizeDomain(req.Domain)
	if domain == "" || req.AccessToken == "" {
		writeBadRequest(hg.txt, w, "domain and access_token are required")
		return
	}

	id, err := hg.accounts.VerifyAndAddAccount(r.Context(), req.AccessToken, domain,
		req.ClientId, req.ClientSecret, req.OauthScopes)
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.AddAccountResp{Id: id})
}

func (hg *apiHandlerGroup) postActivate(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("accounts-activate")
	defer obs.Finish()

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeBadRequest(hg.txt, w, err.Error())
		return
	}
	if err = hg.accounts.SetActiveAccount(r.Context(), id); err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	hg.refreshFilters(r.Context(), id)

	acct, err := hg.accounts.GetAccountById(id)
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, toLocalAccount(acct))
}

func (hg *apiHandlerGroup) postLogout(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("accounts-logout")
	defer obs.Finish()

	acct, err := hg.activeAccount()
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}

	next, err := hg.logout.Logout(r.Context())
	var logoutErr *logic.LogoutError
	if err != nil && !errors.As(err, &logoutErr) {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	hg.mediators.Forget(acct.Id)

	res := dto.LogoutResp{NextAccount: toLocalAccount(next)}
	if logoutErr != nil {
		res.Warning = hg.txt.WithVals(texts.LogoutRevokeFailed, map[string]string{"message": logoutErr.Err.Error()})
	}
	if next != nil {
		hg.refreshFilters(r.Context(), next.Id)
	}
	writeJsonResponse(hg.logger, w, &res)
}

func (hg *apiHandlerGroup) getHomeTimeline(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("timelines-home")
	defer obs.Finish()

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeBadRequest(hg.txt, w, err.Error())
		return
	}
	acct, err := hg.activeAccount()
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}

	page, err := hg.cases.HomePage(acct.Id, r.URL.Query().Get("max_id"), limit)
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	res := make([]dto.CachedItem, 0, len(page))
	for i := range page {
		res = append(res, toCachedItem(&page[i], acct.Id))
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) parseLoad(w http.ResponseWriter, r *http.Request) (logic.LoadType, logic.PagingState, bool) {
	q := r.URL.Query()
	lt, err := logic.ParseLoadType(q.Get("type"))
	if err != nil {
		writeBadRequest(hg.txt, w, err.Error())
		return lt, logic.PagingState{}, false
	}
	return lt, logic.PagingState{AnchorId: q.Get("anchor_id"), LastItemId: q.Get("last_item_id")}, true
}

func loadResp(res logic.MediatorResult) dto.LoadResp {
	lr := dto.LoadResp{EndOfPagination: res.EndOfPagination}
	if res.Err != nil {
		lr.Error = res.Err.Error()
	}
	return lr
}

func (hg *apiHandlerGroup) postHomeLoad(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("timelines-home-load")
	defer obs.Finish()

	lt, state, ok := hg.parseLoad(w, r)
	if !ok {
		return
	}
	acct, err := hg.activeAccount()
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}

	res, err := hg.mediators.Home(acct.Id).Load(r.Context(), lt, state)
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	lr := loadResp(res)
	writeJsonResponse(hg.logger, w, &lr)
}

func (hg *apiHandlerGroup) getRefreshId(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("timelines-home-refresh-id")
	defer obs.Finish()

	acct, err := hg.activeAccount()
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	id, err := hg.cases.GetRefreshStatusId(acct.Id)
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.RefreshIdResp{StatusId: id})
}

// The saved id is where the next REFRESH without an anchor resumes.
func (hg *apiHandlerGroup) putRefreshId(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("timelines-home-refresh-id")
	defer obs.Finish()

	req, ok := readJsonBody[dto.RefreshIdReq](hg.logger, hg.txt, w, r)
	if !ok {
		return
	}
	acct, err := hg.activeAccount()
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	if err = hg.cases.SaveRefreshStatusId(r.Context(), acct.Id, req.StatusId); err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) postMediaLoad(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("users-media-load")
	defer obs.Finish()

	lt, state, ok := hg.parseLoad(w, r)
	if !ok {
		return
	}
	acct, err := hg.activeAccount()
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}

	m := hg.mediators.AccountMedia(acct.Id, mux.Vars(r)["id"])
	res, err := m.Load(r.Context(), lt, state)
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.MediaPageResp{LoadResp: loadResp(res), Statuses: m.Items()})
}

func (hg *apiHandlerGroup) postFollowedTagsLoad(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("followed-tags-load")
	defer obs.Finish()

	lt, state, ok := hg.parseLoad(w, r)
	if !ok {
		return
	}
	acct, err := hg.activeAccount()
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}

	m := hg.mediators.FollowedTags(acct.Id)
	res, err := m.Load(r.Context(), lt, state)
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.TagsPageResp{LoadResp: loadResp(res), Tags: m.Tags()})
}

func (hg *apiHandlerGroup) postMuteConversation(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("statuses-mute-conversation")
	defer obs.Finish()

	mute, err := parseBool(r.URL.Query().Get("mute"), true)
	if err != nil {
		writeBadRequest(hg.txt, w, err.Error())
		return
	}
	if err = hg.cases.MuteConversation(r.Context(), mux.Vars(r)["id"], mute); err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) deleteStatus(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("statuses-delete")
	defer obs.Finish()

	deleted, err := hg.cases.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, deleted)
}

func (hg *apiHandlerGroup) postTranslate(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("statuses-translate")
	defer obs.Finish()

	tr, err := hg.cases.Translate(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.TranslatedContent{
		Content:     tr.Content,
		SpoilerText: tr.SpoilerText,
		Provider:    tr.Provider,
	})
}

func (hg *apiHandlerGroup) deleteTranslate(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("statuses-translate-undo")
	defer obs.Finish()

	if err := hg.cases.TranslateUndo(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) patchViewState(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("statuses-view")
	defer obs.Finish()

	req, ok := readJsonBody[dto.ViewStateReq](hg.logger, hg.txt, w, r)
	if !ok {
		return
	}
	vd, err := hg.cases.SetViewState(r.Context(), mux.Vars(r)["id"], logic.ViewStateChange{
		Expanded:         req.Expanded,
		ContentShowing:   req.ContentShowing,
		ContentCollapsed: req.ContentCollapsed,
	})
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.ViewStateResp{
		Expanded:         vd.Expanded,
		ContentShowing:   vd.ContentShowing,
		ContentCollapsed: vd.ContentCollapsed,
		TranslationState: vd.TranslationState.String(),
	})
}

func (hg *apiHandlerGroup) deleteViewState(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("statuses-view-reset")
	defer obs.Finish()

	if err := hg.cases.ResetViewState(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) postMute(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("users-mute")
	defer obs.Finish()

	q := r.URL.Query()
	notifications, err := parseBool(q.Get("notifications"), true)
	if err != nil {
		writeBadRequest(hg.txt, w, err.Error())
		return
	}
	var durationSec int64
	if str := q.Get("duration"); str != "" {
		if durationSec, err = strconv.ParseInt(str, 10, 64); err != nil || durationSec < 0 {
			writeBadRequest(hg.txt, w, "invalid duration: "+str)
			return
		}
	}

	err = hg.cases.Mute(r.Context(), mux.Vars(r)["id"], notifications, time.Duration(durationSec)*time.Second)
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) postBlock(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("users-block")
	defer obs.Finish()

	if err := hg.cases.Block(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) postBlockDomain(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("domains-block")
	defer obs.Finish()

	if err := hg.cases.BlockDomain(r.Context(), mux.Vars(r)["domain"]); err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) postFollowRequest(w http.ResponseWriter, r *http.Request, accept bool) {

	obs := hg.metrics.StartWebRequestIn("follow-requests")
	defer obs.Finish()

	var err error
	if accept {
		err = hg.cases.AcceptFollowRequest(r.Context(), mux.Vars(r)["id"])
	} else {
		err = hg.cases.RejectFollowRequest(r.Context(), mux.Vars(r)["id"])
	}
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) putFilters(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("filters")
	defer obs.Finish()

	filters, ok := readJsonBody[[]dto.FilterV1](hg.logger, hg.txt, w, r)
	if !ok {
		return
	}
	acct, err := hg.activeAccount()
	if err != nil {
		writeServiceError(hg.logger, hg.txt, w, r, err)
		return
	}
	changed := hg.filters.SetFilters(acct.Id, *filters)
	writeJsonResponse(hg.logger, w, &dto.SetFiltersResp{Changed: changed})
}
