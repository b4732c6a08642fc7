package dal

import (
	"encoding/json"
	"pachli/dto"

	"github.com/microcosm-cc/bluemonday"
)

// Status content is stored sanitized; anything the server sent beyond user-generated markup is dropped.
var contentPolicy = bluemonday.UGCPolicy()

func SanitizeContent(html string) string {
	return contentPolicy.Sanitize(html)
}

func marshalOrEmpty(v any, isNil bool) string {
	if isNil {
		return ""
	}
	bytes, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(bytes)
}

func marshalArray[T any](items []T) string {
	if items == nil {
		items = []T{}
	}
	bytes, _ := json.Marshal(items)
	return string(bytes)
}

func unmarshalArray[T any](str string) ([]T, error) {
	res := []T{}
	if str == "" {
		return res, nil
	}
	if err := json.Unmarshal([]byte(str), &res); err != nil {
		return nil, err
	}
	return res, nil
}

func unmarshalOptional[T any](str string) (*T, error) {
	if str == "" {
		return nil, nil
	}
	var res T
	if err := json.Unmarshal([]byte(str), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func AccountToTimelineAccount(timelineUserId int64, acct *dto.Account) *TimelineAccount {
	return &TimelineAccount{
		ServerId:       acct.Id,
		TimelineUserId: timelineUserId,
		LocalUsername:  acct.LocalUsername,
		Username:       acct.Username,
		DisplayName:    acct.DisplayName,
		Url:            acct.Url,
		Avatar:         acct.Avatar,
		Emojis:         marshalArray(acct.Emojis),
		Bot:            acct.Bot,
	}
}

func (ta *TimelineAccount) ToAccount() (*dto.Account, error) {
	emojis, err := unmarshalArray[dto.Emoji](ta.Emojis)
	if err != nil {
		return nil, err
	}
	return &dto.Account{
		Id:            ta.ServerId,
		LocalUsername: ta.LocalUsername,
		Username:      ta.Username,
		DisplayName:   ta.DisplayName,
		Url:           ta.Url,
		Avatar:        ta.Avatar,
		Bot:           ta.Bot,
		Emojis:        emojis,
	}, nil
}

// StatusToEntities splits a status from the server into cache rows. For a reblog, the row holds the
// reblogged status and rebloggedBy is the account that reblogged it; otherwise rebloggedBy is nil.
func StatusToEntities(timelineUserId int64, status *dto.Status) (ts *TimelineStatus, author, rebloggedBy *TimelineAccount) {

	actionable := status.ActionableStatus()
	ts = &TimelineStatus{
		ServerId:           actionable.Id,
		TimelineUserId:     timelineUserId,
		TimelineId:         status.Id,
		Url:                actionable.Url,
		AuthorServerId:     actionable.Account.Id,
		InReplyToId:        derefStr(actionable.InReplyToId),
		InReplyToAccountId: derefStr(actionable.InReplyToAccountId),
		Content:            SanitizeContent(actionable.Content),
		CreatedAt:          actionable.CreatedAt,
		EditedAt:           actionable.EditedAt,
		Emojis:             marshalArray(actionable.Emojis),
		ReblogsCount:       actionable.ReblogsCount,
		FavouritesCount:    actionable.FavouritesCount,
		RepliesCount:       actionable.RepliesCount,
		Reblogged:          actionable.Reblogged,
		Bookmarked:         actionable.Bookmarked,
		Favourited:         actionable.Favourited,
		Sensitive:          actionable.Sensitive,
		SpoilerText:        actionable.SpoilerText,
		Visibility:         actionable.Visibility,
		Attachments:        marshalArray(actionable.Attachments),
		Mentions:           marshalArray(actionable.Mentions),
		Tags:               marshalArray(actionable.Tags),
		Application:        marshalOrEmpty(actionable.Application, actionable.Application == nil),
		Poll:               marshalOrEmpty(actionable.Poll, actionable.Poll == nil),
		Muted:              actionable.Muted,
		Pinned:             actionable.Pinned,
		Card:               marshalOrEmpty(actionable.Card, actionable.Card == nil),
		Language:           derefStr(actionable.Language),
		Filtered:           marshalArray(actionable.Filtered),
	}
	author = AccountToTimelineAccount(timelineUserId, &actionable.Account)
	if status.Reblog != nil {
		ts.ReblogServerId = status.Id
		ts.ReblogAccountId = status.Account.Id
		rebloggedBy = AccountToTimelineAccount(timelineUserId, &status.Account)
	}
	return
}

// UpsertStatus writes the status and the accounts it references.
func UpsertStatus(q IQueries, timelineUserId int64, status *dto.Status) error {
	ts, author, rebloggedBy := StatusToEntities(timelineUserId, status)
	if err := q.UpsertTimelineAccount(author); err != nil {
		return err
	}
	if rebloggedBy != nil {
		if err := q.UpsertTimelineAccount(rebloggedBy); err != nil {
			return err
		}
	}
	return q.UpsertTimelineStatus(ts)
}

func UpsertStatuses(q IQueries, timelineUserId int64, statuses []dto.Status) error {
	for i := range statuses {
		if err := UpsertStatus(q, timelineUserId, &statuses[i]); err != nil {
			return err
		}
	}
	return nil
}

func (ts *TimelineStatus) toStatus(author *dto.Account) (res *dto.Status, err error) {

	res = &dto.Status{
		Id:                 ts.ServerId,
		Url:                ts.Url,
		Account:            *author,
		InReplyToId:        optStr(ts.InReplyToId),
		InReplyToAccountId: optStr(ts.InReplyToAccountId),
		Content:            ts.Content,
		CreatedAt:          ts.CreatedAt,
		EditedAt:           ts.EditedAt,
		ReblogsCount:       ts.ReblogsCount,
		FavouritesCount:    ts.FavouritesCount,
		RepliesCount:       ts.RepliesCount,
		Reblogged:          ts.Reblogged,
		Favourited:         ts.Favourited,
		Bookmarked:         ts.Bookmarked,
		Sensitive:          ts.Sensitive,
		SpoilerText:        ts.SpoilerText,
		Visibility:         ts.Visibility,
		Pinned:             ts.Pinned,
		Muted:              ts.Muted,
		Language:           optStr(ts.Language),
	}
	if res.Emojis, err = unmarshalArray[dto.Emoji](ts.Emojis); err != nil {
		return nil, err
	}
	if res.Attachments, err = unmarshalArray[dto.Attachment](ts.Attachments); err != nil {
		return nil, err
	}
	if res.Mentions, err = unmarshalArray[dto.Mention](ts.Mentions); err != nil {
		return nil, err
	}
	if res.Tags, err = unmarshalArray[dto.HashTag](ts.Tags); err != nil {
		return nil, err
	}
	if res.Filtered, err = unmarshalArray[dto.FilterResult](ts.Filtered); err != nil {
		return nil, err
	}
	if res.Application, err = unmarshalOptional[dto.Application](ts.Application); err != nil {
		return nil, err
	}
	if res.Poll, err = unmarshalOptional[dto.Poll](ts.Poll); err != nil {
		return nil, err
	}
	if res.Card, err = unmarshalOptional[dto.Card](ts.Card); err != nil {
		return nil, err
	}
	return res, nil
}

// ToStatus rebuilds the status as the server sent it. For reblogs, that is the wrapper with the
// reblogged status inside.
func (sa *TimelineStatusWithAccount) ToStatus() (*dto.Status, error) {

	author, err := sa.Account.ToAccount()
	if err != nil {
		return nil, err
	}
	status, err := sa.Status.toStatus(author)
	if err != nil {
		return nil, err
	}
	if !sa.Status.IsReblog() || sa.ReblogAccount == nil {
		return status, nil
	}

	reblogger, err := sa.ReblogAccount.ToAccount()
	if err != nil {
		return nil, err
	}
	return &dto.Status{
		Id:          sa.Status.ReblogServerId,
		Url:         status.Url,
		Account:     *reblogger,
		Reblog:      status,
		CreatedAt:   status.CreatedAt,
		Emojis:      []dto.Emoji{},
		Reblogged:   status.Reblogged,
		Favourited:  status.Favourited,
		Bookmarked:  status.Bookmarked,
		Visibility:  status.Visibility,
		Attachments: []dto.Attachment{},
		Mentions:    []dto.Mention{},
		Tags:        []dto.HashTag{},
		Filtered:    []dto.FilterResult{},
	}, nil
}

// TranslationToEntity flattens a translation for storage.
func TranslationToEntity(timelineUserId int64, serverId string, tr *dto.Translation) *TranslatedStatus {
	return &TranslatedStatus{
		ServerId:       serverId,
		TimelineUserId: timelineUserId,
		Content:        SanitizeContent(tr.Content),
		SpoilerText:    tr.SpoilerText,
		Poll:           marshalOrEmpty(tr.Poll, tr.Poll == nil),
		Attachments:    marshalArray(tr.Attachments),
		Provider:       tr.Provider,
	}
}
