package dal

import (
	"database/sql"
	"errors"
	"strings"
)

func (q *queries) UpsertTimelineAccount(ta *TimelineAccount) error {

	defer q.lock()()

	_, err := q.db.Exec(`INSERT INTO timeline_accounts
		(server_id, timeline_user_id, local_username, username, display_name, url, avatar, emojis, bot)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (server_id, timeline_user_id) DO UPDATE SET
			local_username=excluded.local_username, username=excluded.username,
			display_name=excluded.display_name, url=excluded.url, avatar=excluded.avatar,
			emojis=excluded.emojis, bot=excluded.bot`,
		ta.ServerId, ta.TimelineUserId, ta.LocalUsername, ta.Username, ta.DisplayName, ta.Url, ta.Avatar,
		ta.Emojis, ta.Bot)
	return err
}

// UpsertTimelineStatus inserts the status, or replaces every field of the existing row
// with the same (ServerId, TimelineUserId).
func (q *queries) UpsertTimelineStatus(ts *TimelineStatus) error {

	if (ts.ReblogServerId == "") != (ts.ReblogAccountId == "") {
		return ErrInvalidReblog
	}
	timelineId := ts.TimelineId
	if timelineId == "" {
		timelineId = ts.ServerId
		if ts.IsReblog() {
			timelineId = ts.ReblogServerId
		}
	}

	defer q.lock()()

	var editedAt sql.NullTime
	if ts.EditedAt != nil {
		editedAt = sql.NullTime{Time: *ts.EditedAt, Valid: true}
	}
	_, err := q.db.Exec(`INSERT INTO timeline_statuses
		(server_id, timeline_user_id, timeline_id, url, author_server_id, in_reply_to_id, in_reply_to_account_id,
		 content, created_at, edited_at, emojis, reblogs_count, favourites_count, replies_count, reblogged,
		 bookmarked, favourited, sensitive, spoiler_text, visibility, attachments, mentions, tags, application,
		 reblog_server_id, reblog_account_id, poll, muted, pinned, card, language, filtered)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (server_id, timeline_user_id) DO UPDATE SET
			timeline_id=excluded.timeline_id, url=excluded.url, author_server_id=excluded.author_server_id,
			in_reply_to_id=excluded.in_reply_to_id, in_reply_to_account_id=excluded.in_reply_to_account_id,
			content=excluded.content, created_at=excluded.created_at, edited_at=excluded.edited_at,
			emojis=excluded.emojis, reblogs_count=excluded.reblogs_count,
			favourites_count=excluded.favourites_count, replies_count=excluded.replies_count,
			reblogged=excluded.reblogged, bookmarked=excluded.bookmarked, favourited=excluded.favourited,
			sensitive=excluded.sensitive, spoiler_text=excluded.spoiler_text, visibility=excluded.visibility,
			attachments=excluded.attachments, mentions=excluded.mentions, tags=excluded.tags,
			application=excluded.application, reblog_server_id=excluded.reblog_server_id,
			reblog_account_id=excluded.reblog_account_id, poll=excluded.poll, muted=excluded.muted,
			pinned=excluded.pinned, card=excluded.card, language=excluded.language, filtered=excluded.filtered`,
		ts.ServerId, ts.TimelineUserId, timelineId, nullStr(ts.Url), ts.AuthorServerId, nullStr(ts.InReplyToId),
		nullStr(ts.InReplyToAccountId), ts.Content, ts.CreatedAt, editedAt, emptyArray(ts.Emojis),
		ts.ReblogsCount, ts.FavouritesCount, ts.RepliesCount, ts.Reblogged, ts.Bookmarked, ts.Favourited,
		ts.Sensitive, ts.SpoilerText, ts.Visibility, emptyArray(ts.Attachments), emptyArray(ts.Mentions),
		emptyArray(ts.Tags), nullStr(ts.Application), nullStr(ts.ReblogServerId), nullStr(ts.ReblogAccountId),
		nullStr(ts.Poll), ts.Muted, ts.Pinned, nullStr(ts.Card), nullStr(ts.Language), emptyArray(ts.Filtered))
	return err
}

func emptyArray(s string) string {
	if s == "" {
		return "[]"
	}
	return s
}

const statusWithAccountSelect = `SELECT
	s.server_id, s.timeline_user_id, s.timeline_id, s.url, s.author_server_id, s.in_reply_to_id,
	s.in_reply_to_account_id, s.content, s.created_at, s.edited_at, s.emojis, s.reblogs_count,
	s.favourites_count, s.replies_count, s.reblogged, s.bookmarked, s.favourited, s.sensitive, s.spoiler_text,
	s.visibility, s.attachments, s.mentions, s.tags, s.application, s.reblog_server_id, s.reblog_account_id,
	s.poll, s.muted, s.pinned, s.card, s.language, s.filtered,
	a.server_id, a.local_username, a.username, a.display_name, a.url, a.avatar, a.emojis, a.bot,
	rb.server_id, rb.local_username, rb.username, rb.display_name, rb.url, rb.avatar, rb.emojis, rb.bot,
	vd.expanded, vd.content_showing, vd.content_collapsed, vd.translation_state,
	t.content, t.spoiler_text, t.poll, t.attachments, t.provider
	FROM timeline_statuses s
	JOIN timeline_accounts a
		ON s.timeline_user_id=a.timeline_user_id AND s.author_server_id=a.server_id
	LEFT JOIN timeline_accounts rb
		ON s.timeline_user_id=rb.timeline_user_id AND s.reblog_account_id=rb.server_id
	LEFT JOIN status_view_data vd
		ON s.timeline_user_id=vd.timeline_user_id AND s.server_id=vd.server_id
	LEFT JOIN translated_statuses t
		ON s.timeline_user_id=t.timeline_user_id AND s.server_id=t.server_id`

// Newest first. IDs are numeric strings, so a longer ID is always newer.
const newestFirst = ` ORDER BY LENGTH(s.timeline_id) DESC, s.timeline_id DESC`

func scanStatusWithAccount(row rowScanner) (*TimelineStatusWithAccount, error) {

	var s TimelineStatus
	var a TimelineAccount
	var url, inReplyToId, inReplyToAccountId, application, reblogServerId, reblogAccountId sql.NullString
	var poll, card, language sql.NullString
	var editedAt sql.NullTime
	var rbServerId, rbLocalUsername, rbUsername, rbDisplayName, rbUrl, rbAvatar, rbEmojis sql.NullString
	var rbBot sql.NullBool
	var vdExpanded, vdContentShowing, vdContentCollapsed sql.NullBool
	var vdTranslationState sql.NullInt64
	var tContent, tSpoilerText, tPoll, tAttachments, tProvider sql.NullString

	err := row.Scan(
		&s.ServerId, &s.TimelineUserId, &s.TimelineId, &url, &s.AuthorServerId, &inReplyToId,
		&inReplyToAccountId, &s.Content, &s.CreatedAt, &editedAt, &s.Emojis, &s.ReblogsCount,
		&s.FavouritesCount, &s.RepliesCount, &s.Reblogged, &s.Bookmarked, &s.Favourited, &s.Sensitive,
		&s.SpoilerText, &s.Visibility, &s.Attachments, &s.Mentions, &s.Tags, &application, &reblogServerId,
		&reblogAccountId, &poll, &s.Muted, &s.Pinned, &card, &language, &s.Filtered,
		&a.ServerId, &a.LocalUsername, &a.Username, &a.DisplayName, &a.Url, &a.Avatar, &a.Emojis, &a.Bot,
		&rbServerId, &rbLocalUsername, &rbUsername, &rbDisplayName, &rbUrl, &rbAvatar, &rbEmojis, &rbBot,
		&vdExpanded, &vdContentShowing, &vdContentCollapsed, &vdTranslationState,
		&tContent, &tSpoilerText, &tPoll, &tAttachments, &tProvider)
	if err != nil {
		return nil, err
	}

	s.Url = url.String
	s.InReplyToId = inReplyToId.String
	s.InReplyToAccountId = inReplyToAccountId.String
	s.Application = application.String
	s.ReblogServerId = reblogServerId.String
	s.ReblogAccountId = reblogAccountId.String
	s.Poll = poll.String
	s.Card = card.String
	s.Language = language.String
	if editedAt.Valid {
		t := editedAt.Time
		s.EditedAt = &t
	}
	a.TimelineUserId = s.TimelineUserId

	res := TimelineStatusWithAccount{Status: &s, Account: &a}
	if rbServerId.Valid {
		res.ReblogAccount = &TimelineAccount{
			ServerId:       rbServerId.String,
			TimelineUserId: s.TimelineUserId,
			LocalUsername:  rbLocalUsername.String,
			Username:       rbUsername.String,
			DisplayName:    rbDisplayName.String,
			Url:            rbUrl.String,
			Avatar:         rbAvatar.String,
			Emojis:         rbEmojis.String,
			Bot:            rbBot.Bool,
		}
	}
	if vdExpanded.Valid {
		res.ViewData = &StatusViewData{
			ServerId:         s.ServerId,
			TimelineUserId:   s.TimelineUserId,
			Expanded:         vdExpanded.Bool,
			ContentShowing:   vdContentShowing.Bool,
			ContentCollapsed: vdContentCollapsed.Bool,
			TranslationState: TranslationState(vdTranslationState.Int64),
		}
	}
	if tContent.Valid {
		res.Translation = &TranslatedStatus{
			ServerId:       s.ServerId,
			TimelineUserId: s.TimelineUserId,
			Content:        tContent.String,
			SpoilerText:    tSpoilerText.String,
			Poll:           tPoll.String,
			Attachments:    tAttachments.String,
			Provider:       tProvider.String,
		}
	}
	return &res, nil
}

// GetStatuses returns up to limit cached statuses, newest first, that are older than olderThanId.
// An empty olderThanId starts at the newest status.
func (q *queries) GetStatuses(timelineUserId int64, olderThanId string, limit int) ([]*TimelineStatusWithAccount, error) {

	defer q.rlock()()

	query := statusWithAccountSelect + ` WHERE s.timeline_user_id=?`
	args := []any{timelineUserId}
	if olderThanId != "" {
		query += ` AND (LENGTH(s.timeline_id)<LENGTH(?) OR LENGTH(s.timeline_id)=LENGTH(?) AND s.timeline_id<?)`
		args = append(args, olderThanId, olderThanId, olderThanId)
	}
	query += newestFirst + ` LIMIT ?`
	args = append(args, limit)

	rows, err := q.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*TimelineStatusWithAccount, 0, limit)
	for rows.Next() {
		var sa *TimelineStatusWithAccount
		if sa, err = scanStatusWithAccount(rows); err != nil {
			return nil, err
		}
		res = append(res, sa)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// GetStatus finds a cached status by its own ID or by the ID of the reblog that wraps it.
func (q *queries) GetStatus(timelineUserId int64, statusId string) (*TimelineStatusWithAccount, error) {

	defer q.rlock()()

	row := q.db.QueryRow(statusWithAccountSelect+
		` WHERE s.timeline_user_id=? AND (s.server_id=? OR s.reblog_server_id=?) LIMIT 1`,
		timelineUserId, statusId, statusId)
	res, err := scanStatusWithAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return res, nil
}

// DeleteRange removes the account's statuses whose timeline position is in [minId, maxId].
func (q *queries) DeleteRange(timelineUserId int64, minId, maxId string) (int64, error) {

	defer q.lock()()

	res, err := q.db.Exec(`DELETE FROM timeline_statuses WHERE timeline_user_id=?
		AND (LENGTH(timeline_id)<LENGTH(?) OR LENGTH(timeline_id)=LENGTH(?) AND timeline_id<=?)
		AND (LENGTH(timeline_id)>LENGTH(?) OR LENGTH(timeline_id)=LENGTH(?) AND timeline_id>=?)`,
		timelineUserId, maxId, maxId, maxId, minId, minId, minId)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (q *queries) DeleteStatus(timelineUserId int64, statusId string) error {
	defer q.lock()()
	_, err := q.db.Exec(`DELETE FROM timeline_statuses
		WHERE timeline_user_id=? AND (server_id=? OR reblog_server_id=?)`,
		timelineUserId, statusId, statusId)
	return err
}

func (q *queries) RemoveAllStatuses(timelineUserId int64) error {
	defer q.lock()()
	_, err := q.db.Exec(`DELETE FROM timeline_statuses WHERE timeline_user_id=?`, timelineUserId)
	return err
}

// RemoveAllByUser removes statuses the user wrote or reblogged.
func (q *queries) RemoveAllByUser(timelineUserId int64, userId string) error {
	defer q.lock()()
	_, err := q.db.Exec(`DELETE FROM timeline_statuses
		WHERE timeline_user_id=? AND (author_server_id=? OR reblog_account_id=?)`,
		timelineUserId, userId, userId)
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// DeleteAllFromInstance removes statuses written or reblogged by accounts whose username ends in @domain.
func (q *queries) DeleteAllFromInstance(timelineUserId int64, domain string) error {

	defer q.lock()()

	pattern := `%@` + likeEscaper.Replace(domain)
	_, err := q.db.Exec(`DELETE FROM timeline_statuses WHERE timeline_user_id=? AND (
		author_server_id IN (SELECT server_id FROM timeline_accounts
			WHERE timeline_user_id=? AND username LIKE ? ESCAPE '\')
		OR reblog_account_id IN (SELECT server_id FROM timeline_accounts
			WHERE timeline_user_id=? AND username LIKE ? ESCAPE '\'))`,
		timelineUserId, timelineUserId, pattern, timelineUserId, pattern)
	return err
}

// CleanupStatuses keeps only the newest keepMax statuses of the account.
func (q *queries) CleanupStatuses(timelineUserId int64, keepMax int) error {

	defer q.lock()()

	_, err := q.db.Exec(`DELETE FROM timeline_statuses WHERE timeline_user_id=? AND server_id NOT IN (
		SELECT s.server_id FROM timeline_statuses s WHERE s.timeline_user_id=?`+newestFirst+` LIMIT ?)`,
		timelineUserId, timelineUserId, keepMax)
	return err
}

// CleanupAccounts removes authors that no cached status of the account refers to.
func (q *queries) CleanupAccounts(timelineUserId int64) error {

	defer q.lock()()

	_, err := q.db.Exec(`DELETE FROM timeline_accounts WHERE timeline_user_id=?
		AND server_id NOT IN (SELECT author_server_id FROM timeline_statuses WHERE timeline_user_id=?)
		AND server_id NOT IN (SELECT reblog_account_id FROM timeline_statuses
			WHERE timeline_user_id=? AND reblog_account_id IS NOT NULL)`,
		timelineUserId, timelineUserId, timelineUserId)
	return err
}

func (q *queries) GetStatusCount(timelineUserId int64) (int, error) {

	defer q.rlock()()

	row := q.db.QueryRow(`SELECT COUNT(*) FROM timeline_statuses WHERE timeline_user_id=?`, timelineUserId)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// GetMostRecentStatusIds returns the timeline positions of the newest statuses.
func (q *queries) GetMostRecentStatusIds(timelineUserId int64, count int) ([]string, error) {

	defer q.rlock()()

	rows, err := q.db.Query(`SELECT s.timeline_id FROM timeline_statuses s WHERE s.timeline_user_id=?`+
		newestFirst+` LIMIT ?`, timelineUserId, count)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]string, 0, count)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (q *queries) SetStatusMuted(timelineUserId int64, statusId string, muted bool) error {
	defer q.lock()()
	_, err := q.db.Exec(`UPDATE timeline_statuses SET muted=?
		WHERE timeline_user_id=? AND (server_id=? OR reblog_server_id=?)`,
		muted, timelineUserId, statusId, statusId)
	return err
}
