package dto

import "time"

const (
	FilterContextHome          = "home"
	FilterContextNotifications = "notifications"
	FilterContextPublic        = "public"
	FilterContextThread        = "thread"
	FilterContextAccount       = "account"
)

const (
	FilterActionWarn = "warn"
	FilterActionHide = "hide"
)

// FilterV1 is a legacy (/api/v1/filters) filter; matched on the client.
type FilterV1 struct {
	Id           string     `json:"id"`
	Phrase       string     `json:"phrase"`
	Context      []string   `json:"context"`
	ExpiresAt    *time.Time `json:"expires_at"`
	Irreversible bool       `json:"irreversible"`
	WholeWord    bool       `json:"whole_word"`
}

type FilterKeyword struct {
	Id        string `json:"id"`
	Keyword   string `json:"keyword"`
	WholeWord bool   `json:"whole_word"`
}

// FilterV2 is a server-side filter, as attached to statuses in FilterResult.
type FilterV2 struct {
	Id           string          `json:"id"`
	Title        string          `json:"title"`
	Context      []string        `json:"context"`
	ExpiresAt    *time.Time      `json:"expires_at"`
	FilterAction string          `json:"filter_action"`
	Keywords     []FilterKeyword `json:"keywords,omitempty"`
}

type FilterResult struct {
	Filter         FilterV2 `json:"filter"`
	KeywordMatches []string `json:"keyword_matches"`
	StatusMatches  []string `json:"status_matches"`
}
