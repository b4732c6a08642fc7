package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"pachli/dto"
	"pachli/shared"
	"strconv"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_mastodon_api.go -package mocks pachli/api IMastodonApi

// IMastodonApi is the subset of the Mastodon client API the cache needs.
// Every failed call returns an *ApiError, except for a cancelled context, which is returned as is.
type IMastodonApi interface {
	// SetCredentials changes the instance and token used by all calls below, except VerifyCredentials
	// and calls whose context carries its own credentials (see WithCredentials).
	SetCredentials(domain, accessToken string)
	Credentials() (domain, accessToken string)

	VerifyCredentials(ctx context.Context, domain, accessToken string) (*ApiResponse[*dto.CredentialAccount], error)

	HomeTimeline(ctx context.Context, maxId, minId, sinceId string, limit int) (*ApiResponse[[]dto.Status], error)
	Status(ctx context.Context, statusId string) (*ApiResponse[*dto.Status], error)
	AccountStatuses(ctx context.Context, accountId, maxId string, onlyMedia bool, limit int) (*ApiResponse[[]dto.Status], error)
	FollowedTags(ctx context.Context, maxId string, limit int) (*ApiResponse[[]dto.HashTag], error)
	FiltersV1(ctx context.Context) (*ApiResponse[[]dto.FilterV1], error)

	MuteConversation(ctx context.Context, statusId string, mute bool) (*ApiResponse[*dto.Status], error)
	MuteAccount(ctx context.Context, accountId string, notifications bool, duration time.Duration) (*ApiResponse[*dto.Relationship], error)
	BlockAccount(ctx context.Context, accountId string) (*ApiResponse[*dto.Relationship], error)
	DeleteStatus(ctx context.Context, statusId string) (*ApiResponse[*dto.DeletedStatus], error)
	BlockDomain(ctx context.Context, domain string) (*ApiResponse[Empty], error)
	AuthorizeFollowRequest(ctx context.Context, accountId string) (*ApiResponse[*dto.Relationship], error)
	RejectFollowRequest(ctx context.Context, accountId string) (*ApiResponse[*dto.Relationship], error)
	Translate(ctx context.Context, statusId string) (*ApiResponse[*dto.Translation], error)

	UnsubscribePush(ctx context.Context) (*ApiResponse[Empty], error)
	RevokeOAuthToken(ctx context.Context, clientId, clientSecret, token string) (*ApiResponse[Empty], error)
}

// IFinisher ends a timed operation.
type IFinisher interface {
	Finish()
}

// IRequestMetrics times outgoing API requests.
type IRequestMetrics interface {
	StartApiRequest(endpoint string) IFinisher
}

type mastodonApi struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IRequestMetrics
	client    *http.Client
	muCreds   sync.RWMutex
	domain    string
	token     string
}

func NewMastodonApi(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IRequestMetrics,
) IMastodonApi {
	timeout := time.Duration(cfg.ApiTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &mastodonApi{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		metrics:   metrics,
		client:    &http.Client{Timeout: timeout},
	}
}

func (ma *mastodonApi) SetCredentials(domain, accessToken string) {
	ma.muCreds.Lock()
	defer ma.muCreds.Unlock()
	ma.domain = domain
	ma.token = accessToken
}

func (ma *mastodonApi) Credentials() (domain, accessToken string) {
	ma.muCreds.RLock()
	defer ma.muCreds.RUnlock()
	return ma.domain, ma.token
}

type credentialsKey struct{}

type credentials struct {
	domain string
	token  string
}

// WithCredentials returns a context whose calls go to domain as accessToken,
// whatever the current credentials are by the time a request is sent.
func WithCredentials(ctx context.Context, domain, accessToken string) context.Context {
	return context.WithValue(ctx, credentialsKey{}, credentials{domain, accessToken})
}

// CredentialsFrom gives back the credentials bound by WithCredentials.
func CredentialsFrom(ctx context.Context) (domain, accessToken string, ok bool) {
	c, ok := ctx.Value(credentialsKey{}).(credentials)
	return c.domain, c.token, ok
}

// A domain with a scheme is used as the base URL directly; a bare domain means https.
func instanceUrl(domain string) string {
	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return strings.TrimSuffix(domain, "/")
	}
	return "https://" + domain
}

type request struct {
	method   string
	endpoint string // Metrics label, e.g. "timelines/home"
	path     string
	query    url.Values
	form     url.Values
	domain   string // Overrides the context's and the current credentials if set
	token    string
}

// Go has no generic methods, so the decoding half lives in a function.
func call[T any](ctx context.Context, ma *mastodonApi, r *request) (*ApiResponse[T], error) {

	body, resp, apiErr := ma.send(ctx, r)
	if apiErr != nil {
		return nil, apiErr
	}

	res := ApiResponse[T]{
		Header: resp.Header,
		Code:   resp.StatusCode,
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return &res, nil
	}
	if err := json.Unmarshal(body, &res.Body); err != nil {
		return nil, &ApiError{
			Kind:   KindJsonParse,
			Code:   resp.StatusCode,
			Method: resp.Request.Method,
			Url:    resp.Request.URL.String(),
			Err:    err,
		}
	}
	return &res, nil
}

func (ma *mastodonApi) send(ctx context.Context, r *request) (body []byte, resp *http.Response, err error) {

	obs := ma.metrics.StartApiRequest(r.endpoint)
	defer obs.Finish()

	domain, token := r.domain, r.token
	if domain == "" {
		var ok bool
		if domain, token, ok = CredentialsFrom(ctx); !ok {
			domain, token = ma.Credentials()
		}
	}

	reqUrl := instanceUrl(domain) + r.path
	if len(r.query) != 0 {
		reqUrl += "?" + r.query.Encode()
	}
	var reqBody io.Reader
	if r.form != nil {
		reqBody = strings.NewReader(r.form.Encode())
	}

	fail := func(kind ErrorKind, code int, e error) *ApiError {
		return &ApiError{Kind: kind, Code: code, Method: r.method, Url: reqUrl, Err: e}
	}

	var req *http.Request
	if req, err = http.NewRequestWithContext(ctx, r.method, reqUrl, reqBody); err != nil {
		return nil, nil, fail(KindUnknown, 0, err)
	}
	ma.userAgent.AddUserAgent(req)
	req.Header.Set("Accept", "application/json")
	if r.form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	ma.logger.Debugf("API request: %s %s", r.method, reqUrl)
	if resp, err = ma.client.Do(req); err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		return nil, nil, fail(KindIo, 0, err)
	}
	defer resp.Body.Close()

	if body, err = io.ReadAll(resp.Body); err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		return nil, nil, fail(KindIo, resp.StatusCode, err)
	}

	// Nothing to decode, e.g. 204 No Content
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 && len(bytes.TrimSpace(body)) == 0 {
		return body, resp, nil
	}

	// The content type is checked first: an HTML error page from a proxy is not a Mastodon error
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		return nil, nil, fail(KindMissingContentType, resp.StatusCode, nil)
	}
	if !strings.HasPrefix(contentType, "application/json") {
		apiErr := fail(KindWrongContentType, resp.StatusCode, nil)
		apiErr.ContentType = contentType
		return nil, nil, apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := fail(kindFromStatus(resp.StatusCode), resp.StatusCode,
			fmt.Errorf("HTTP %d", resp.StatusCode))
		apiErr.ServerMessage = serverErrorMessage(body)
		return nil, nil, apiErr
	}

	return body, resp, nil
}

func pageQuery(maxId, minId, sinceId string, limit int) url.Values {
	q := url.Values{}
	if maxId != "" {
		q.Set("max_id", maxId)
	}
	if minId != "" {
		q.Set("min_id", minId)
	}
	if sinceId != "" {
		q.Set("since_id", sinceId)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

func (ma *mastodonApi) VerifyCredentials(
	ctx context.Context,
	domain, accessToken string,
) (*ApiResponse[*dto.CredentialAccount], error) {
	return call[*dto.CredentialAccount](ctx, ma, &request{
		method:   http.MethodGet,
		endpoint: "accounts/verify_credentials",
		path:     "/api/v1/accounts/verify_credentials",
		domain:   domain,
		token:    accessToken,
	})
}

func (ma *mastodonApi) HomeTimeline(
	ctx context.Context,
	maxId, minId, sinceId string,
	limit int,
) (*ApiResponse[[]dto.Status], error) {
	return call[[]dto.Status](ctx, ma, &request{
		method:   http.MethodGet,
		endpoint: "timelines/home",
		path:     "/api/v1/timelines/home",
		query:    pageQuery(maxId, minId, sinceId, limit),
	})
}

func (ma *mastodonApi) Status(ctx context.Context, statusId string) (*ApiResponse[*dto.Status], error) {
	return call[*dto.Status](ctx, ma, &request{
		method:   http.MethodGet,
		endpoint: "statuses",
		path:     "/api/v1/statuses/" + url.PathEscape(statusId),
	})
}

func (ma *mastodonApi) AccountStatuses(
	ctx context.Context,
	accountId, maxId string,
	onlyMedia bool,
	limit int,
) (*ApiResponse[[]dto.Status], error) {
	q := pageQuery(maxId, "", "", limit)
	if onlyMedia {
		q.Set("only_media", "true")
	}
	return call[[]dto.Status](ctx, ma, &request{
		method:   http.MethodGet,
		endpoint: "accounts/statuses",
		path:     "/api/v1/accounts/" + url.PathEscape(accountId) + "/statuses",
		query:    q,
	})
}

func (ma *mastodonApi) FollowedTags(ctx context.Context, maxId string, limit int) (*ApiResponse[[]dto.HashTag], error) {
	return call[[]dto.HashTag](ctx, ma, &request{
		method:   http.MethodGet,
		endpoint: "followed_tags",
		path:     "/api/v1/followed_tags",
		query:    pageQuery(maxId, "", "", limit),
	})
}

func (ma *mastodonApi) FiltersV1(ctx context.Context) (*ApiResponse[[]dto.FilterV1], error) {
	return call[[]dto.FilterV1](ctx, ma, &request{
		method:   http.MethodGet,
		endpoint: "filters",
		path:     "/api/v1/filters",
	})
}

func (ma *mastodonApi) MuteConversation(ctx context.Context, statusId string, mute bool) (*ApiResponse[*dto.Status], error) {
	action := "/unmute"
	if mute {
		action = "/mute"
	}
	return call[*dto.Status](ctx, ma, &request{
		method:   http.MethodPost,
		endpoint: "statuses" + action,
		path:     "/api/v1/statuses/" + url.PathEscape(statusId) + action,
	})
}

// MuteAccount mutes the account; a zero duration mutes indefinitely.
func (ma *mastodonApi) MuteAccount(
	ctx context.Context,
	accountId string,
	notifications bool,
	duration time.Duration,
) (*ApiResponse[*dto.Relationship], error) {
	form := url.Values{}
	form.Set("notifications", strconv.FormatBool(notifications))
	if duration > 0 {
		form.Set("duration", strconv.Itoa(int(duration.Seconds())))
	}
	return call[*dto.Relationship](ctx, ma, &request{
		method:   http.MethodPost,
		endpoint: "accounts/mute",
		path:     "/api/v1/accounts/" + url.PathEscape(accountId) + "/mute",
		form:     form,
	})
}

func (ma *mastodonApi) BlockAccount(ctx context.Context, accountId string) (*ApiResponse[*dto.Relationship], error) {
	return call[*dto.Relationship](ctx, ma, &request{
		method:   http.MethodPost,
		endpoint: "accounts/block",
		path:     "/api/v1/accounts/" + url.PathEscape(accountId) + "/block",
	})
}

func (ma *mastodonApi) DeleteStatus(ctx context.Context, statusId string) (*ApiResponse[*dto.DeletedStatus], error) {
	return call[*dto.DeletedStatus](ctx, ma, &request{
		method:   http.MethodDelete,
		endpoint: "statuses",
		path:     "/api/v1/statuses/" + url.PathEscape(statusId),
	})
}

func (ma *mastodonApi) BlockDomain(ctx context.Context, domain string) (*ApiResponse[Empty], error) {
	form := url.Values{}
	form.Set("domain", domain)
	return call[Empty](ctx, ma, &request{
		method:   http.MethodPost,
		endpoint: "domain_blocks",
		path:     "/api/v1/domain_blocks",
		form:     form,
	})
}

func (ma *mastodonApi) AuthorizeFollowRequest(ctx context.Context, accountId string) (*ApiResponse[*dto.Relationship], error) {
	return call[*dto.Relationship](ctx, ma, &request{
		method:   http.MethodPost,
		endpoint: "follow_requests/authorize",
		path:     "/api/v1/follow_requests/" + url.PathEscape(accountId) + "/authorize",
	})
}

func (ma *mastodonApi) RejectFollowRequest(ctx context.Context, accountId string) (*ApiResponse[*dto.Relationship], error) {
	return call[*dto.Relationship](ctx, ma, &request{
		method:   http.MethodPost,
		endpoint: "follow_requests/reject",
		path:     "/api/v1/follow_requests/" + url.PathEscape(accountId) + "/reject",
	})
}

func (ma *mastodonApi) Translate(ctx context.Context, statusId string) (*ApiResponse[*dto.Translation], error) {
	return call[*dto.Translation](ctx, ma, &request{
		method:   http.MethodPost,
		endpoint: "statuses/translate",
		path:     "/api/v1/statuses/" + url.PathEscape(statusId) + "/translate",
	})
}

func (ma *mastodonApi) UnsubscribePush(ctx context.Context) (*ApiResponse[Empty], error) {
	return call[Empty](ctx, ma, &request{
		method:   http.MethodDelete,
		endpoint: "push/subscription",
		path:     "/api/v1/push/subscription",
	})
}

func (ma *mastodonApi) RevokeOAuthToken(
	ctx context.Context,
	clientId, clientSecret, token string,
) (*ApiResponse[Empty], error) {
	form := url.Values{}
	form.Set("client_id", clientId)
	form.Set("client_secret", clientSecret)
	form.Set("token", token)
	return call[Empty](ctx, ma, &request{
		method:   http.MethodPost,
		endpoint: "oauth/revoke",
		path:     "/oauth/revoke",
		form:     form,
	})
}

// IsCancelled tells if err is a context cancellation rather than an API failure.
func IsCancelled(err error) bool {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
