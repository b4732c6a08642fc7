package dto

import (
	"encoding/json"
	"time"
)

type Emoji struct {
	Shortcode       string `json:"shortcode"`
	Url             string `json:"url"`
	StaticUrl       string `json:"static_url"`
	VisibleInPicker bool   `json:"visible_in_picker"`
}

type Account struct {
	Id            string    `json:"id"`
	LocalUsername string    `json:"username"`
	Username      string    `json:"acct"`
	DisplayName   string    `json:"display_name"`
	CreatedAt     time.Time `json:"created_at"`
	Note          string    `json:"note"`
	Url           string    `json:"url"`
	Avatar        string    `json:"avatar"`
	Header        string    `json:"header"`
	Locked        bool      `json:"locked"`
	Bot           bool      `json:"bot"`
	Emojis        []Emoji   `json:"emojis"`
}

// Name returns the display name, falling back to the local username.
func (x *Account) Name() string {
	if x.DisplayName == "" {
		return x.LocalUsername
	}
	return x.DisplayName
}

type AccountSource struct {
	Privacy   string `json:"privacy"`
	Sensitive bool   `json:"sensitive"`
	Language  string `json:"language"`
	Note      string `json:"note"`
}

// CredentialAccount is returned by verify_credentials.
type CredentialAccount struct {
	Account
	Source *AccountSource `json:"source,omitempty"`
}

const (
	VisibilityPublic   = "public"
	VisibilityUnlisted = "unlisted"
	VisibilityPrivate  = "private"
	VisibilityDirect   = "direct"
	VisibilityUnknown  = "unknown"
)

type Attachment struct {
	Id          string          `json:"id"`
	Type        string          `json:"type"`
	Url         string          `json:"url"`
	PreviewUrl  string          `json:"preview_url"`
	RemoteUrl   string          `json:"remote_url,omitempty"`
	Description string          `json:"description"`
	Blurhash    string          `json:"blurhash,omitempty"`
	Meta        json.RawMessage `json:"meta,omitempty"`
}

type Mention struct {
	Id            string `json:"id"`
	Url           string `json:"url"`
	Username      string `json:"acct"`
	LocalUsername string `json:"username"`
}

type HashTag struct {
	Name      string `json:"name"`
	Url       string `json:"url"`
	Following *bool  `json:"following,omitempty"`
}

type PollOption struct {
	Title      string `json:"title"`
	VotesCount *int   `json:"votes_count"`
}

type Poll struct {
	Id          string       `json:"id"`
	ExpiresAt   *time.Time   `json:"expires_at"`
	Expired     bool         `json:"expired"`
	Multiple    bool         `json:"multiple"`
	VotesCount  int          `json:"votes_count"`
	VotersCount *int         `json:"voters_count"`
	Options     []PollOption `json:"options"`
	Voted       bool         `json:"voted"`
	OwnVotes    []int        `json:"own_votes"`
}

type Card struct {
	Url          string `json:"url"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	AuthorName   string `json:"author_name"`
	ProviderName string `json:"provider_name"`
	Image        string `json:"image,omitempty"`
	Blurhash     string `json:"blurhash,omitempty"`
}

type Application struct {
	Name    string `json:"name"`
	Website string `json:"website,omitempty"`
}

type Status struct {
	Id                 string         `json:"id"`
	Url                string         `json:"url"`
	Account            Account        `json:"account"`
	InReplyToId        *string        `json:"in_reply_to_id"`
	InReplyToAccountId *string        `json:"in_reply_to_account_id"`
	Reblog             *Status        `json:"reblog"`
	Content            string         `json:"content"`
	CreatedAt          time.Time      `json:"created_at"`
	EditedAt           *time.Time     `json:"edited_at"`
	Emojis             []Emoji        `json:"emojis"`
	ReblogsCount       int            `json:"reblogs_count"`
	FavouritesCount    int            `json:"favourites_count"`
	RepliesCount       int            `json:"replies_count"`
	Reblogged          bool           `json:"reblogged"`
	Favourited         bool           `json:"favourited"`
	Bookmarked         bool           `json:"bookmarked"`
	Sensitive          bool           `json:"sensitive"`
	SpoilerText        string         `json:"spoiler_text"`
	Visibility         string         `json:"visibility"`
	Attachments        []Attachment   `json:"media_attachments"`
	Mentions           []Mention      `json:"mentions"`
	Tags               []HashTag      `json:"tags"`
	Application        *Application   `json:"application"`
	Pinned             bool           `json:"pinned"`
	Muted              bool           `json:"muted"`
	Poll               *Poll          `json:"poll"`
	Card               *Card          `json:"card"`
	Language           *string        `json:"language"`
	Filtered           []FilterResult `json:"filtered"`
}

// ActionableStatus is the reblogged status for reblogs, the status itself otherwise.
func (x *Status) ActionableStatus() *Status {
	if x.Reblog != nil {
		return x.Reblog
	}
	return x
}

func (x *Status) UnmarshalJSON(data []byte) error {
	type Y Status
	var y = (*Y)(x)
	if err := json.Unmarshal(data, y); err != nil {
		return err
	}
	switch y.Visibility {
	case VisibilityPublic, VisibilityUnlisted, VisibilityPrivate, VisibilityDirect:
	default:
		y.Visibility = VisibilityUnknown
	}
	return nil
}

type DeletedStatus struct {
	Text        string       `json:"text"`
	InReplyToId *string      `json:"in_reply_to_id"`
	SpoilerText string       `json:"spoiler_text"`
	Visibility  string       `json:"visibility"`
	Sensitive   bool         `json:"sensitive"`
	Attachments []Attachment `json:"media_attachments"`
	Poll        *Poll        `json:"poll"`
	CreatedAt   time.Time    `json:"created_at"`
}

type Relationship struct {
	Id                  string `json:"id"`
	Following           bool   `json:"following"`
	FollowedBy          bool   `json:"followed_by"`
	Blocking            bool   `json:"blocking"`
	Muting              bool   `json:"muting"`
	MutingNotifications bool   `json:"muting_notifications"`
	Requested           bool   `json:"requested"`
	DomainBlocking      bool   `json:"domain_blocking"`
}

type TranslationPollOption struct {
	Title string `json:"title"`
}

type TranslationPoll struct {
	Id      string                  `json:"id"`
	Options []TranslationPollOption `json:"options"`
}

type TranslationAttachment struct {
	Id          string `json:"id"`
	Description string `json:"description"`
}

type Translation struct {
	Content                string                  `json:"content"`
	DetectedSourceLanguage string                  `json:"detected_source_language"`
	Provider               string                  `json:"provider"`
	SpoilerText            string                  `json:"spoiler_text"`
	Poll                   *TranslationPoll        `json:"poll,omitempty"`
	Attachments            []TranslationAttachment `json:"media_attachments"`
}

type ServerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}
