package dal

import (
	"database/sql"
	"errors"
)

func (q *queries) GetStatusViewData(timelineUserId int64, serverId string) (*StatusViewData, error) {

	defer q.rlock()()

	row := q.db.QueryRow(`SELECT expanded, content_showing, content_collapsed, translation_state
		FROM status_view_data WHERE timeline_user_id=? AND server_id=?`, timelineUserId, serverId)
	res := StatusViewData{ServerId: serverId, TimelineUserId: timelineUserId}
	err := row.Scan(&res.Expanded, &res.ContentShowing, &res.ContentCollapsed, &res.TranslationState)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (q *queries) UpsertStatusViewData(vd *StatusViewData) error {
	defer q.lock()()
	_, err := q.db.Exec(`INSERT INTO status_view_data
		(server_id, timeline_user_id, expanded, content_showing, content_collapsed, translation_state)
		VALUES(?, ?, ?, ?, ?, ?)
		ON CONFLICT (server_id, timeline_user_id) DO UPDATE SET
			expanded=excluded.expanded, content_showing=excluded.content_showing,
			content_collapsed=excluded.content_collapsed, translation_state=excluded.translation_state`,
		vd.ServerId, vd.TimelineUserId, vd.Expanded, vd.ContentShowing, vd.ContentCollapsed, int(vd.TranslationState))
	return err
}

// Each setter creates the row with default values if it does not exist yet.
// The column name is never user input.
func (q *queries) setViewDataField(timelineUserId int64, serverId, column string, val any) error {
	defer q.lock()()
	_, err := q.db.Exec(`INSERT INTO status_view_data (server_id, timeline_user_id, `+column+`) VALUES(?, ?, ?)
		ON CONFLICT (server_id, timeline_user_id) DO UPDATE SET `+column+`=excluded.`+column,
		serverId, timelineUserId, val)
	return err
}

func (q *queries) SetExpanded(timelineUserId int64, serverId string, expanded bool) error {
	return q.setViewDataField(timelineUserId, serverId, "expanded", expanded)
}

func (q *queries) SetContentShowing(timelineUserId int64, serverId string, showing bool) error {
	return q.setViewDataField(timelineUserId, serverId, "content_showing", showing)
}

func (q *queries) SetContentCollapsed(timelineUserId int64, serverId string, collapsed bool) error {
	return q.setViewDataField(timelineUserId, serverId, "content_collapsed", collapsed)
}

func (q *queries) SetTranslationState(timelineUserId int64, serverId string, state TranslationState) error {
	return q.setViewDataField(timelineUserId, serverId, "translation_state", int(state))
}

func (q *queries) UpsertTranslatedStatus(ts *TranslatedStatus) error {
	defer q.lock()()
	_, err := q.db.Exec(`INSERT INTO translated_statuses
		(server_id, timeline_user_id, content, spoiler_text, poll, attachments, provider)
		VALUES(?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (server_id, timeline_user_id) DO UPDATE SET
			content=excluded.content, spoiler_text=excluded.spoiler_text, poll=excluded.poll,
			attachments=excluded.attachments, provider=excluded.provider`,
		ts.ServerId, ts.TimelineUserId, ts.Content, ts.SpoilerText, nullStr(ts.Poll), emptyArray(ts.Attachments),
		ts.Provider)
	return err
}

func (q *queries) GetTranslatedStatus(timelineUserId int64, serverId string) (*TranslatedStatus, error) {

	defer q.rlock()()

	row := q.db.QueryRow(`SELECT content, spoiler_text, poll, attachments, provider
		FROM translated_statuses WHERE timeline_user_id=? AND server_id=?`, timelineUserId, serverId)
	res := TranslatedStatus{ServerId: serverId, TimelineUserId: timelineUserId}
	var poll sql.NullString
	if err := row.Scan(&res.Content, &res.SpoilerText, &poll, &res.Attachments, &res.Provider); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	res.Poll = poll.String
	return &res, nil
}

func (q *queries) DeleteTranslatedStatus(timelineUserId int64, serverId string) error {
	defer q.lock()()
	_, err := q.db.Exec(`DELETE FROM translated_statuses WHERE timeline_user_id=? AND server_id=?`,
		timelineUserId, serverId)
	return err
}
