package logic

import (
	"pachli/dto"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type FilterAction int

// In increasing order of severity
const (
	FilterActionNone FilterAction = iota
	FilterActionWarn
	FilterActionHide
)

func (fa FilterAction) String() string {
	switch fa {
	case FilterActionWarn:
		return dto.FilterActionWarn
	case FilterActionHide:
		return dto.FilterActionHide
	default:
		return "none"
	}
}

func filterActionFromString(str string) FilterAction {
	switch str {
	case dto.FilterActionWarn:
		return FilterActionWarn
	case dto.FilterActionHide:
		return FilterActionHide
	default:
		return FilterActionNone
	}
}

var alphanumeric = regexp.MustCompile(`^\w+$`)

// ContentFilter decides what to do with statuses shown in one filter context.
// Safe for concurrent use.
type ContentFilter struct {
	context string
	pattern *regexp.Regexp // nil if no legacy filter applies
}

// NewContentFilter compiles the legacy filters that apply in context and have not expired at now.
// With no such filter, statuses are judged by the server-side results attached to them.
func NewContentFilter(context string, filters []dto.FilterV1, now time.Time) *ContentFilter {

	var tokens []string
	for i := range filters {
		f := &filters[i]
		if !slices.Contains(f.Context, context) {
			continue
		}
		if f.ExpiresAt != nil && f.ExpiresAt.Before(now) {
			continue
		}
		tokens = append(tokens, filterToRegexToken(f))
	}

	cf := ContentFilter{context: context}
	if len(tokens) != 0 {
		cf.pattern = regexp.MustCompile("(?i)" + strings.Join(tokens, "|"))
	}
	return &cf
}

// Whole-word matching only applies to phrases made of word characters; others match as substrings.
func filterToRegexToken(f *dto.FilterV1) string {
	quoted := regexp.QuoteMeta(f.Phrase)
	if f.WholeWord && alphanumeric.MatchString(f.Phrase) {
		return `(^|\W)` + quoted + `($|\W)`
	}
	return quoted
}

func (cf *ContentFilter) Context() string {
	return cf.context
}

func (cf *ContentFilter) FilterActionFor(status *dto.Status) FilterAction {

	actionable := status.ActionableStatus()

	if cf.pattern != nil {
		if actionable.Poll != nil {
			for _, opt := range actionable.Poll.Options {
				if cf.pattern.MatchString(opt.Title) {
					return FilterActionHide
				}
			}
		}
		if cf.pattern.MatchString(renderHtmlText(actionable.Content)) {
			return FilterActionHide
		}
		if actionable.SpoilerText != "" && cf.pattern.MatchString(actionable.SpoilerText) {
			return FilterActionHide
		}
		var descriptions []string
		for _, att := range actionable.Attachments {
			if att.Description != "" {
				descriptions = append(descriptions, att.Description)
			}
		}
		if len(descriptions) != 0 && cf.pattern.MatchString(strings.Join(descriptions, "\n")) {
			return FilterActionHide
		}
		return FilterActionNone
	}

	res := FilterActionNone
	for _, result := range actionable.Filtered {
		if !slices.Contains(result.Filter.Context, cf.context) {
			continue
		}
		res = max(res, filterActionFromString(result.Filter.FilterAction))
	}
	return res
}

// renderHtmlText turns status HTML into the text a reader sees: paragraphs and line breaks become newlines.
func renderHtmlText(html string) string {

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		if i > 0 {
			s.PrependHtml("\n\n")
		}
	})
	return strings.TrimSpace(doc.Text())
}
