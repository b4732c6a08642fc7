package dal

import (
	"database/sql"
	"errors"
)

func (q *queries) UpsertRemoteKey(rk *RemoteKey) error {
	defer q.lock()()
	_, err := q.db.Exec(`INSERT INTO remote_keys (account_id, timeline_id, kind, remote_key) VALUES(?, ?, ?, ?)
		ON CONFLICT (account_id, timeline_id, kind) DO UPDATE SET remote_key=excluded.remote_key`,
		rk.AccountId, rk.TimelineId, string(rk.Kind), nullStr(rk.Key))
	return err
}

// GetRemoteKey returns nil if there is no key of the kind. A stored key with no value has an empty Key.
func (q *queries) GetRemoteKey(accountId int64, timelineId string, kind RemoteKeyKind) (*RemoteKey, error) {

	defer q.rlock()()

	row := q.db.QueryRow(`SELECT remote_key FROM remote_keys WHERE account_id=? AND timeline_id=? AND kind=?`,
		accountId, timelineId, string(kind))
	var key sql.NullString
	if err := row.Scan(&key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &RemoteKey{
		AccountId:  accountId,
		TimelineId: timelineId,
		Kind:       kind,
		Key:        key.String,
	}, nil
}

func (q *queries) DeleteRemoteKeys(accountId int64, timelineId string) error {
	defer q.lock()()
	_, err := q.db.Exec(`DELETE FROM remote_keys WHERE account_id=? AND timeline_id=?`, accountId, timelineId)
	return err
}

func (q *queries) DeleteAllRemoteKeys(accountId int64) error {
	defer q.lock()()
	_, err := q.db.Exec(`DELETE FROM remote_keys WHERE account_id=?`, accountId)
	return err
}
