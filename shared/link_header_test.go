package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseValidLinks(t *testing.T) {
	testData := []struct {
		name  string
		input string
		want  []string
	}{
		{"Single URL", "<https://example.com>", []string{"https://example.com"}},
		{"Single URL with parameters", "<https://example.com>; rel=\"preconnect\"", []string{"https://example.com"}},
		{"Single encoded URL with parameters", "<https://example.com/%E8%8B%97%E6%9D%A1>; rel=\"preconnect\"",
			[]string{"https://example.com/%E8%8B%97%E6%9D%A1"}},
		{"Multiple URLs, separated by commas",
			"<https://one.example.com>; rel=\"preconnect\", <https://two.example.com>; rel=\"preconnect\", <https://three.example.com>; rel=\"preconnect\"",
			[]string{"https://one.example.com", "https://two.example.com", "https://three.example.com"}},
		{"Single URL, multiple parameters", "<http://example.com/TheBook/chapter2>; rel=\"previous\"; title=\"previous chapter\"",
			[]string{"http://example.com/TheBook/chapter2"}},
		{"Root resource", "</>; rel=\"http://example.net/foo\"", []string{"/"}},
		{"Terms and anchor", "</terms>; rel=\"copyright\"; anchor=\"#foo\"", []string{"/terms"}},
		{"Multiple URLs with parameter encoding",
			"</TheBook/chapter2>; rel=\"previous\"; title*=UTF-8'de'letztes%20Kapitel, </TheBook/chapter4>; rel=\"next\"; title*=UTF-8'de'n%c3%a4chstes%20Kapitel",
			[]string{"/TheBook/chapter2", "/TheBook/chapter4"}},
		{"Quoted comma in parameter", "</a>; title=\"one, two\", </b>", []string{"/a", "/b"}},
	}
	for _, test := range testData {
		links := ParseLinkHeader(test.input)
		if !assert.Equal(t, len(test.want), len(links), test.name) {
			continue
		}
		for i := range links {
			assert.Equal(t, test.want[i], links[i].Uri, test.name)
		}
	}
}

func TestLinkParams(t *testing.T) {
	links := ParseLinkHeader("</TheBook/chapter2>; rel=\"previous\"; title=\"previous chapter\"")
	assert.Equal(t, 1, len(links))
	assert.Equal(t, "previous", links[0].Rel())
	assert.Equal(t, "previous chapter", links[0].Params["title"])
}

func TestPageLinksFromHeader(t *testing.T) {
	hdr := "<https://mastodon.example/api/v1/timelines/home?max_id=109>; rel=\"next\", " +
		"<https://mastodon.example/api/v1/timelines/home?min_id=120>; rel=\"prev\""
	pl := PageLinksFromHeader(hdr)
	assert.Equal(t, "109", pl.Next)
	assert.Equal(t, "120", pl.Prev)

	pl = PageLinksFromHeader("<https://mastodon.example/api/v1/tags?since_id=7>; rel=\"prev\"")
	assert.Equal(t, "", pl.Next)
	assert.Equal(t, "7", pl.Prev)

	pl = PageLinksFromHeader("")
	assert.Equal(t, PageLinks{}, pl)
}

func TestMakeLinkHeaderRoundTrip(t *testing.T) {
	pl := PageLinksFromHeader(MakeLinkHeader("95", "130"))
	assert.Equal(t, "95", pl.Next)
	assert.Equal(t, "130", pl.Prev)
}

func TestCompareIds(t *testing.T) {
	assert.Equal(t, 0, CompareIds("100", "100"))
	assert.Equal(t, 1, CompareIds("100", "99"))
	assert.Equal(t, -1, CompareIds("99", "100"))
	assert.Equal(t, -1, CompareIds("12", "14"))
	assert.True(t, IsIdInRange("13", "12", "14"))
	assert.True(t, IsIdInRange("12", "12", "14"))
	assert.False(t, IsIdInRange("9", "12", "14"))
	assert.False(t, IsIdInRange("100", "12", "14"))
}
