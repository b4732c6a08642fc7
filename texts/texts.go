package texts

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed snippets
var snippetsFS embed.FS

// Snippet IDs
const (
	NoActiveAccount     = "no-active-account"
	AccountNotFound     = "account-not-found"
	StatusNotCached     = "status-not-cached"
	UpstreamFailed      = "upstream-failed"
	UpstreamUnreachable = "upstream-unreachable"
	BadRequest          = "bad-request"
	SwitchFailed        = "switch-failed"
	LogoutRevokeFailed  = "logout-revoke-failed"
	TranslateFailed     = "translate-failed"
	Cancelled           = "cancelled"
	InternalError       = "internal-error"
)

// ITexts gives the user-visible messages of the local API.
type ITexts interface {
	Get(id string) string
	// WithVals fills the {{name}} placeholders of the snippet.
	WithVals(id string, vals map[string]string) string
}

type texts struct {
	snippets map[string]string
}

// NewTexts loads every snippet up front; a broken embed is a programming error.
func NewTexts() ITexts {
	res := texts{snippets: make(map[string]string)}
	entries, err := fs.ReadDir(snippetsFS, "snippets")
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		data, err := snippetsFS.ReadFile(path.Join("snippets", e.Name()))
		if err != nil {
			panic(err)
		}
		id := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		res.snippets[id] = strings.TrimSpace(string(data))
	}
	return &res
}

func (t *texts) Get(id string) string {
	return t.snippets[id]
}

func (t *texts) WithVals(id string, vals map[string]string) string {
	pairs := make([]string, 0, len(vals)*2)
	for name, val := range vals {
		pairs = append(pairs, "{{"+name+"}}", val)
	}
	return strings.NewReplacer(pairs...).Replace(t.Get(id))
}
