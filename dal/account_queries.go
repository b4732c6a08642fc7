package dal

import (
	"database/sql"
	"errors"
	"fmt"
)

const accountColumns = `id, domain, access_token, client_id, client_secret, is_active, account_id, username,
	display_name, profile_picture_url, profile_header_picture_url, notifications_enabled, default_post_privacy,
	default_media_sensitivity, default_post_language, always_show_sensitive_media, always_open_spoiler,
	media_preview_enabled, last_notification_id, emojis, oauth_scopes, last_visible_home_timeline_status_id, locked`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*Account, error) {
	var res Account
	var lastVisible sql.NullString
	err := row.Scan(&res.Id, &res.Domain, &res.AccessToken, &res.ClientId, &res.ClientSecret, &res.IsActive,
		&res.AccountId, &res.Username, &res.DisplayName, &res.ProfilePictureUrl, &res.ProfileHeaderPictureUrl,
		&res.NotificationsEnabled, &res.DefaultPostPrivacy, &res.DefaultMediaSensitivity, &res.DefaultPostLanguage,
		&res.AlwaysShowSensitiveMedia, &res.AlwaysOpenSpoiler, &res.MediaPreviewEnabled, &res.LastNotificationId,
		&res.Emojis, &res.OauthScopes, &lastVisible, &res.Locked)
	if err != nil {
		return nil, err
	}
	res.LastVisibleHomeTimelineStatusId = lastVisible.String
	return &res, nil
}

func (q *queries) queryAccount(query string, args ...any) (*Account, error) {
	acct, err := scanAccount(q.db.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return acct, nil
}

func (q *queries) GetAllAccounts() ([]*Account, error) {

	defer q.rlock()()

	rows, err := q.db.Query(`SELECT ` + accountColumns + ` FROM accounts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*Account, 0)
	for rows.Next() {
		var acct *Account
		if acct, err = scanAccount(rows); err != nil {
			return nil, err
		}
		res = append(res, acct)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (q *queries) GetAccount(id int64) (*Account, error) {
	defer q.rlock()()
	return q.queryAccount(`SELECT `+accountColumns+` FROM accounts WHERE id=?`, id)
}

func (q *queries) GetAccountByIdentifier(domain, accountId string) (*Account, error) {
	defer q.rlock()()
	return q.queryAccount(`SELECT `+accountColumns+` FROM accounts WHERE domain=? AND account_id=?`,
		domain, accountId)
}

func (q *queries) GetActiveAccount() (*Account, error) {
	defer q.rlock()()
	return q.queryAccount(`SELECT ` + accountColumns + ` FROM accounts WHERE is_active=1`)
}

// InsertAccount adds a new account and returns its ID.
// Fails with ErrDuplicateAccount if the domain and account ID are already known.
func (q *queries) InsertAccount(acct *Account) (int64, error) {

	defer q.lock()()

	res, err := q.db.Exec(`INSERT INTO accounts
		(domain, access_token, client_id, client_secret, is_active, account_id, username, display_name,
		 profile_picture_url, profile_header_picture_url, notifications_enabled, default_post_privacy,
		 default_media_sensitivity, default_post_language, always_show_sensitive_media, always_open_spoiler,
		 media_preview_enabled, last_notification_id, emojis, oauth_scopes, last_visible_home_timeline_status_id,
		 locked)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		acct.Domain, acct.AccessToken, acct.ClientId, acct.ClientSecret, acct.IsActive, acct.AccountId,
		acct.Username, acct.DisplayName, acct.ProfilePictureUrl, acct.ProfileHeaderPictureUrl,
		acct.NotificationsEnabled, acct.DefaultPostPrivacy, acct.DefaultMediaSensitivity, acct.DefaultPostLanguage,
		acct.AlwaysShowSensitiveMedia, acct.AlwaysOpenSpoiler, acct.MediaPreviewEnabled,
		acct.LastNotificationId, acct.Emojis, acct.OauthScopes, nullStr(acct.LastVisibleHomeTimelineStatusId),
		acct.Locked)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateAccount, acct.Identifier())
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (q *queries) UpdateAccount(acct *Account) error {

	defer q.lock()()

	_, err := q.db.Exec(`UPDATE accounts SET
		domain=?, access_token=?, client_id=?, client_secret=?, is_active=?, account_id=?, username=?,
		display_name=?, profile_picture_url=?, profile_header_picture_url=?, notifications_enabled=?,
		default_post_privacy=?, default_media_sensitivity=?, default_post_language=?,
		always_show_sensitive_media=?, always_open_spoiler=?, media_preview_enabled=?, last_notification_id=?,
		emojis=?, oauth_scopes=?, last_visible_home_timeline_status_id=?, locked=?
		WHERE id=?`,
		acct.Domain, acct.AccessToken, acct.ClientId, acct.ClientSecret, acct.IsActive, acct.AccountId,
		acct.Username, acct.DisplayName, acct.ProfilePictureUrl, acct.ProfileHeaderPictureUrl,
		acct.NotificationsEnabled, acct.DefaultPostPrivacy, acct.DefaultMediaSensitivity, acct.DefaultPostLanguage,
		acct.AlwaysShowSensitiveMedia, acct.AlwaysOpenSpoiler, acct.MediaPreviewEnabled,
		acct.LastNotificationId, acct.Emojis, acct.OauthScopes, nullStr(acct.LastVisibleHomeTimelineStatusId),
		acct.Locked, acct.Id)
	return err
}

func (q *queries) ClearActiveAccount() error {
	defer q.lock()()
	_, err := q.db.Exec(`UPDATE accounts SET is_active=0 WHERE is_active=1`)
	return err
}

func (q *queries) MarkAccountActive(id int64) error {

	defer q.lock()()

	res, err := q.db.Exec(`UPDATE accounts SET is_active=1 WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %d", ErrAccountNotFound, id)
	}
	return nil
}

// DeleteAccount removes the account; its cached timeline data goes with it.
func (q *queries) DeleteAccount(id int64) error {
	defer q.lock()()
	_, err := q.db.Exec(`DELETE FROM accounts WHERE id=?`, id)
	return err
}
