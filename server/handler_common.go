package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"pachli/api"
	"pachli/dal"
	"pachli/logic"
	"pachli/shared"
	"pachli/texts"
	"strconv"

	"github.com/gorilla/mux"
)

const (
	apiKeyHeader      = "X-API-KEY"
	metricsAuthHeader = "Authorization"
	internalErrorStr  = "500 Internal Server Error"
	badRequestStr     = "400 Invalid Request"
	badApiKeyStr      = "401 Missing or Invalid API Key"
	badAuthorization  = "401 Missing or Invalid Authorization"
	notFoundStr       = "404 Not Found"
	maxRequestBody    = 1 << 20
	defaultPageLimit  = 40
	maxPageLimit      = 200
)

// Defines a single HTTP handler (endpoint)
type handlerDef struct {
	method  string
	pattern string
	handler func(http.ResponseWriter, *http.Request)
}

// IHandlerGroup groups together multiple HTTP handler definitions.
type IHandlerGroup interface {
	Prefix() string
	GroupDefs() []handlerDef
	AuthMW() func(next http.Handler) http.Handler
}

// Returns the JSON serialized object as the response body; handles errors.
func writeJsonResponse(logger shared.ILogger, w http.ResponseWriter, resp interface{}) {
	w.Header().Set("Content-Type", "application/json")
	var err error
	var respJson []byte
	if respJson, err = json.Marshal(resp); err != nil {
		logger.Warnf("Failed to serialize response: %v", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if _, err = fmt.Fprintln(w, string(respJson)); err != nil {
		logger.Warnf("Failed to write response: %v", err)
	}
}

type errorResp struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func writeErrorResponse(w http.ResponseWriter, msg string, code int) {
	resp := errorResp{msg, code}
	respJson, _ := json.Marshal(resp)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = fmt.Fprintln(w, string(respJson))
}

// writeServiceError maps an error from the logic layer to a response.
func writeServiceError(logger shared.ILogger, txt texts.ITexts, w http.ResponseWriter, r *http.Request, err error) {

	var apiErr *api.ApiError
	var switchErr *logic.AccountSwitchError
	var translateErr *logic.TranslateError

	switch {
	case errors.Is(err, logic.ErrNoActiveAccount):
		writeErrorResponse(w, txt.Get(texts.NoActiveAccount), http.StatusConflict)
	case errors.Is(err, dal.ErrAccountNotFound):
		writeErrorResponse(w, txt.WithVals(texts.AccountNotFound, map[string]string{"id": errorSubject(r)}),
			http.StatusNotFound)
	case errors.Is(err, logic.ErrStatusNotCached):
		writeErrorResponse(w, txt.WithVals(texts.StatusNotCached, map[string]string{"id": errorSubject(r)}),
			http.StatusNotFound)
	case api.IsCancelled(err):
		// Status 499 is what proxies log for a client that went away
		writeErrorResponse(w, txt.Get(texts.Cancelled), 499)
	case errors.As(err, &switchErr):
		writeErrorResponse(w, txt.WithVals(texts.SwitchFailed, map[string]string{
			"id":      strconv.FormatInt(switchErr.AccountId, 10),
			"message": switchErr.Err.Error(),
		}), http.StatusBadGateway)
	case errors.As(err, &translateErr):
		writeErrorResponse(w, txt.WithVals(texts.TranslateFailed, map[string]string{
			"id":      translateErr.StatusId,
			"message": translateErr.Err.Error(),
		}), http.StatusBadGateway)
	case errors.As(err, &apiErr):
		writeApiError(txt, w, apiErr)
	default:
		logger.Errorf("%s %s failed: %v", r.Method, r.URL.Path, err)
		writeErrorResponse(w, txt.Get(texts.InternalError), http.StatusInternalServerError)
	}
}

// Upstream "not found" and "gone" pass through; everything else is a bad gateway.
func writeApiError(txt texts.ITexts, w http.ResponseWriter, apiErr *api.ApiError) {
	if apiErr.Kind == api.KindIo {
		writeErrorResponse(w, txt.WithVals(texts.UpstreamUnreachable, map[string]string{"message": apiErr.Error()}),
			http.StatusBadGateway)
		return
	}
	msg := apiErr.ServerMessage
	if msg == "" {
		msg = apiErr.Kind.String()
	}
	code := http.StatusBadGateway
	if apiErr.Kind == api.KindNotFound || apiErr.Kind == api.KindGone {
		code = apiErr.Code
	}
	writeErrorResponse(w, txt.WithVals(texts.UpstreamFailed, map[string]string{
		"code":    strconv.Itoa(apiErr.Code),
		"message": msg,
	}), code)
}

func writeBadRequest(txt texts.ITexts, w http.ResponseWriter, detail string) {
	writeErrorResponse(w, txt.WithVals(texts.BadRequest, map[string]string{"detail": detail}), http.StatusBadRequest)
}

func readJsonBody[T any](logger shared.ILogger, txt texts.ITexts, w http.ResponseWriter, r *http.Request) (*T, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		logger.Warnf("Failed to read request body: %v", err)
		writeBadRequest(txt, w, err.Error())
		return nil, false
	}
	var res T
	if err = json.Unmarshal(body, &res); err != nil {
		writeBadRequest(txt, w, err.Error())
		return nil, false
	}
	return &res, true
}

func parseLimit(str string) (int, error) {
	if str == "" {
		return defaultPageLimit, nil
	}
	limit, err := strconv.Atoi(str)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("invalid limit: %s", str)
	}
	return min(limit, maxPageLimit), nil
}

func parseBool(str string, def bool) (bool, error) {
	if str == "" {
		return def, nil
	}
	return strconv.ParseBool(str)
}

// The {id} path variable, if the route has one
func errorSubject(r *http.Request) string {
	return mux.Vars(r)["id"]
}

func secretMatches(given, expected string) bool {
	if given == "" || expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(expected)) == 1
}
