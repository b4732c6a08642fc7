package shared

import (
	"net/url"
	"strings"
)

// HttpHeaderLink is one entry of an RFC 8288 Link header.
type HttpHeaderLink struct {
	Uri    string
	Params map[string]string
}

// Rel returns the link's rel parameter, if any.
func (link *HttpHeaderLink) Rel() string {
	return link.Params["rel"]
}

// QueryParam returns the named query parameter of the link's URI.
func (link *HttpHeaderLink) QueryParam(name string) string {
	parsed, err := url.Parse(link.Uri)
	if err != nil {
		return ""
	}
	return parsed.Query().Get(name)
}

// ParseLinkHeader returns the links in a Link header value, in order of appearance.
// Malformed entries are skipped.
func ParseLinkHeader(header string) []HttpHeaderLink {
	var res []HttpHeaderLink
	pos := 0
	for {
		start := strings.IndexByte(header[pos:], '<')
		if start == -1 {
			break
		}
		start += pos
		end := strings.IndexByte(header[start:], '>')
		if end == -1 {
			break
		}
		end += start
		link := HttpHeaderLink{
			Uri:    header[start+1 : end],
			Params: make(map[string]string),
		}
		pos = parseLinkParams(header, end+1, link.Params)
		res = append(res, link)
	}
	return res
}

// Reads ;-separated parameters until a top-level comma or the end of the header.
// Returns the position after the comma.
func parseLinkParams(header string, pos int, params map[string]string) int {
	var sb strings.Builder
	inQuotes := false
	flush := func() {
		param := strings.TrimSpace(sb.String())
		sb.Reset()
		if param == "" {
			return
		}
		name, val, found := strings.Cut(param, "=")
		name = strings.ToLower(strings.TrimSpace(name))
		if !found {
			params[name] = ""
			return
		}
		val = strings.TrimSpace(val)
		val = strings.TrimSuffix(strings.TrimPrefix(val, "\""), "\"")
		if _, exists := params[name]; !exists {
			params[name] = val
		}
	}
	for ; pos < len(header); pos++ {
		c := header[pos]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			sb.WriteByte(c)
		case c == ';' && !inQuotes:
			flush()
		case c == ',' && !inQuotes:
			flush()
			return pos + 1
		default:
			sb.WriteByte(c)
		}
	}
	flush()
	return pos
}

// FindLinkByRel returns the first link with the given rel, or nil.
func FindLinkByRel(links []HttpHeaderLink, rel string) *HttpHeaderLink {
	for i := range links {
		for _, r := range strings.Fields(links[i].Rel()) {
			if r == rel {
				return &links[i]
			}
		}
	}
	return nil
}

// PageLinks are the pagination cursors of a Mastodon list response.
// Next is the max_id of the rel="next" link; Prev is the min_id (or since_id) of rel="prev".
type PageLinks struct {
	Next string
	Prev string
}

func PageLinksFromHeader(header string) PageLinks {
	var res PageLinks
	links := ParseLinkHeader(header)
	if next := FindLinkByRel(links, "next"); next != nil {
		res.Next = next.QueryParam("max_id")
	}
	if prev := FindLinkByRel(links, "prev"); prev != nil {
		res.Prev = prev.QueryParam("min_id")
		if res.Prev == "" {
			res.Prev = prev.QueryParam("since_id")
		}
	}
	return res
}

// MakeLinkHeader builds the Link header Mastodon would send for a page spanning minId..maxId.
func MakeLinkHeader(maxId, minId string) string {
	return "</?max_id=" + url.QueryEscape(maxId) + ">; rel=\"next\", </?min_id=" + url.QueryEscape(minId) + ">; rel=\"prev\""
}
