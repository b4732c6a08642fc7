package dal

import (
	"pachli/shared"
	"time"
)

// Account is a logged-in Mastodon account, with its credentials and preferences.
type Account struct {
	Id                              int64
	Domain                          string // mastodon.social
	AccessToken                     string
	ClientId                        string
	ClientSecret                    string
	IsActive                        bool
	AccountId                       string // Account's ID on its server
	Username                        string // Local name, no leading @ and no @domain
	DisplayName                     string
	ProfilePictureUrl               string
	ProfileHeaderPictureUrl         string
	NotificationsEnabled            bool
	DefaultPostPrivacy              string
	DefaultMediaSensitivity         bool
	DefaultPostLanguage             string
	AlwaysShowSensitiveMedia        bool
	AlwaysOpenSpoiler               bool
	MediaPreviewEnabled             bool
	LastNotificationId              string
	Emojis                          string // JSON array of dto.Emoji
	OauthScopes                     string
	LastVisibleHomeTimelineStatusId string
	Locked                          bool
}

// Identifier is unique across instances: domain:accountId
func (acct *Account) Identifier() string {
	return shared.MakeIdentifier(acct.Domain, acct.AccountId)
}

// FullName is @username@domain
func (acct *Account) FullName() string {
	return shared.MakeFullName(acct.Username, acct.Domain)
}

func (acct *Account) IsLoggedIn() bool {
	return acct.AccessToken != ""
}

// TimelineAccount is a snapshot of a status author, cached per owning account.
type TimelineAccount struct {
	ServerId       string
	TimelineUserId int64
	LocalUsername  string
	Username       string // user@domain for remote accounts
	DisplayName    string
	Url            string
	Avatar         string
	Emojis         string
	Bot            bool
}

// TimelineStatus is a cached status. For reblogs, the row holds the reblogged status, and
// ReblogServerId/ReblogAccountId identify the wrapper and the account that reblogged it.
// TimelineId is the status's position in the timeline: the wrapper's ID for reblogs.
type TimelineStatus struct {
	ServerId           string
	TimelineUserId     int64
	TimelineId         string
	Url                string
	AuthorServerId     string
	InReplyToId        string
	InReplyToAccountId string
	Content            string
	CreatedAt          time.Time
	EditedAt           *time.Time
	Emojis             string
	ReblogsCount       int
	FavouritesCount    int
	RepliesCount       int
	Reblogged          bool
	Bookmarked         bool
	Favourited         bool
	Sensitive          bool
	SpoilerText        string
	Visibility         string
	Attachments        string
	Mentions           string
	Tags               string
	Application        string
	ReblogServerId     string
	ReblogAccountId    string
	Poll               string
	Muted              bool
	Pinned             bool
	Card               string
	Language           string
	Filtered           string
}

func (s *TimelineStatus) IsReblog() bool {
	return s.ReblogServerId != ""
}

// TimelineStatusWithAccount is a cached status joined with everything needed to show it.
type TimelineStatusWithAccount struct {
	Status        *TimelineStatus
	Account       *TimelineAccount
	ReblogAccount *TimelineAccount  // nil unless the status is a reblog
	ViewData      *StatusViewData   // nil if the user never interacted with the status
	Translation   *TranslatedStatus // nil unless translated
}

type RemoteKeyKind string

const (
	RemoteKeyRefresh RemoteKeyKind = "REFRESH" // Status ID to restore the view to
	RemoteKeyNext    RemoteKeyKind = "NEXT"
	RemoteKeyPrev    RemoteKeyKind = "PREV"
)

type RemoteKey struct {
	AccountId  int64
	TimelineId string
	Kind       RemoteKeyKind
	Key        string
}

type TranslationState int

const (
	TranslationShowOriginal    TranslationState = 0
	TranslationTranslating     TranslationState = 1
	TranslationShowTranslation TranslationState = 2
)

func (ts TranslationState) String() string {
	switch ts {
	case TranslationTranslating:
		return "TRANSLATING"
	case TranslationShowTranslation:
		return "SHOW_TRANSLATION"
	default:
		return "SHOW_ORIGINAL"
	}
}

// StatusViewData is per-status UI state. Not tied to the cached status's lifecycle.
type StatusViewData struct {
	ServerId         string
	TimelineUserId   int64
	Expanded         bool
	ContentShowing   bool
	ContentCollapsed bool
	TranslationState TranslationState
}

func DefaultStatusViewData(timelineUserId int64, serverId string) *StatusViewData {
	return &StatusViewData{
		ServerId:         serverId,
		TimelineUserId:   timelineUserId,
		ContentCollapsed: true,
	}
}

type TranslatedStatus struct {
	ServerId       string
	TimelineUserId int64
	Content        string
	SpoilerText    string
	Poll           string // JSON dto.TranslationPoll, or ""
	Attachments    string // JSON array of dto.TranslationAttachment
	Provider       string
}
