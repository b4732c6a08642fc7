package dal

import (
	"database/sql"
	"sync"
)

// IQueries are the cache and account operations. Outside a transaction each call runs on its own;
// inside Transaction, all calls share the transaction.
type IQueries interface {
	// Accounts
	GetAllAccounts() ([]*Account, error)
	GetAccount(id int64) (*Account, error)
	GetAccountByIdentifier(domain, accountId string) (*Account, error)
	GetActiveAccount() (*Account, error)
	InsertAccount(acct *Account) (int64, error)
	UpdateAccount(acct *Account) error
	ClearActiveAccount() error
	MarkAccountActive(id int64) error
	DeleteAccount(id int64) error

	// Timeline cache
	UpsertTimelineAccount(ta *TimelineAccount) error
	UpsertTimelineStatus(ts *TimelineStatus) error
	GetStatuses(timelineUserId int64, olderThanId string, limit int) ([]*TimelineStatusWithAccount, error)
	GetStatus(timelineUserId int64, serverId string) (*TimelineStatusWithAccount, error)
	DeleteRange(timelineUserId int64, minId, maxId string) (int64, error)
	DeleteStatus(timelineUserId int64, statusId string) error
	RemoveAllStatuses(timelineUserId int64) error
	RemoveAllByUser(timelineUserId int64, userId string) error
	DeleteAllFromInstance(timelineUserId int64, domain string) error
	CleanupStatuses(timelineUserId int64, keepMax int) error
	CleanupAccounts(timelineUserId int64) error
	GetStatusCount(timelineUserId int64) (int, error)
	GetMostRecentStatusIds(timelineUserId int64, count int) ([]string, error)
	SetStatusMuted(timelineUserId int64, statusId string, muted bool) error

	// Remote keys
	UpsertRemoteKey(rk *RemoteKey) error
	GetRemoteKey(accountId int64, timelineId string, kind RemoteKeyKind) (*RemoteKey, error)
	DeleteRemoteKeys(accountId int64, timelineId string) error
	DeleteAllRemoteKeys(accountId int64) error

	// View data and translations
	GetStatusViewData(timelineUserId int64, serverId string) (*StatusViewData, error)
	UpsertStatusViewData(vd *StatusViewData) error
	SetExpanded(timelineUserId int64, serverId string, expanded bool) error
	SetContentShowing(timelineUserId int64, serverId string, showing bool) error
	SetContentCollapsed(timelineUserId int64, serverId string, collapsed bool) error
	SetTranslationState(timelineUserId int64, serverId string, state TranslationState) error
	UpsertTranslatedStatus(ts *TranslatedStatus) error
	GetTranslatedStatus(timelineUserId int64, serverId string) (*TranslatedStatus, error)
	DeleteTranslatedStatus(timelineUserId int64, serverId string) error
}

// Satisfied by both *sql.DB and *sql.Tx
type dbtx interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

type queries struct {
	db dbtx
	mu *sync.RWMutex // nil inside a transaction: the repo's lock is already held
}

func (q *queries) lock() func() {
	if q.mu == nil {
		return func() {}
	}
	q.mu.Lock()
	return q.mu.Unlock
}

func (q *queries) rlock() func() {
	if q.mu == nil {
		return func() {}
	}
	q.mu.RLock()
	return q.mu.RUnlock
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
