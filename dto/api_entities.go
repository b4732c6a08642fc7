package dto

// Shapes of the local JSON API.

type AddAccountReq struct {
	Domain       string `json:"domain"`
	AccessToken  string `json:"access_token"`
	ClientId     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	OauthScopes  string `json:"oauth_scopes"`
}

type LocalAccount struct {
	Id                   int64  `json:"id"`
	Domain               string `json:"domain"`
	AccountId            string `json:"account_id"`
	FullName             string `json:"full_name"`
	DisplayName          string `json:"display_name"`
	Avatar               string `json:"avatar"`
	Header               string `json:"header"`
	IsActive             bool   `json:"is_active"`
	Locked               bool   `json:"locked"`
	DefaultPostPrivacy   string `json:"default_post_privacy"`
	DefaultPostLanguage  string `json:"default_post_language"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

type AddAccountResp struct {
	Id int64 `json:"id"`
}

type LogoutResp struct {
	NextAccount *LocalAccount `json:"next_account"`
	Warning     string        `json:"warning,omitempty"`
}

type TranslatedContent struct {
	Content     string `json:"content"`
	SpoilerText string `json:"spoiler_text"`
	Provider    string `json:"provider"`
}

// CachedItem is a cached timeline entry. Status is in wire form: reblogs are the wrapper with the original inside.
type CachedItem struct {
	TimelineId       string             `json:"timeline_id"`
	Status           *Status            `json:"status"`
	FilterAction     string             `json:"filter_action"`
	Expanded         bool               `json:"expanded"`
	ContentShowing   bool               `json:"content_showing"`
	ContentCollapsed bool               `json:"content_collapsed"`
	TranslationState string             `json:"translation_state"`
	Translation      *TranslatedContent `json:"translation,omitempty"`
}

type LoadResp struct {
	EndOfPagination bool   `json:"end_of_pagination"`
	Error           string `json:"error,omitempty"`
}

type MediaPageResp struct {
	LoadResp
	Statuses []Status `json:"statuses"`
}

type TagsPageResp struct {
	LoadResp
	Tags []HashTag `json:"tags"`
}

type SetFiltersResp struct {
	Changed bool `json:"changed"`
}

// ViewStateReq changes the flags that are present.
type ViewStateReq struct {
	Expanded         *bool `json:"expanded,omitempty"`
	ContentShowing   *bool `json:"content_showing,omitempty"`
	ContentCollapsed *bool `json:"content_collapsed,omitempty"`
}

type ViewStateResp struct {
	Expanded         bool   `json:"expanded"`
	ContentShowing   bool   `json:"content_showing"`
	ContentCollapsed bool   `json:"content_collapsed"`
	TranslationState string `json:"translation_state"`
}

type RefreshIdReq struct {
	StatusId string `json:"status_id"`
}

type RefreshIdResp struct {
	StatusId string `json:"status_id"`
}
