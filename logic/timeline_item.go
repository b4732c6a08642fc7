package logic

import (
	"pachli/dal"
	"pachli/dto"
)

// TimelineItem is either a *PlainItem or a *ReblogItem.
type TimelineItem interface {
	// TimelineId is the item's position in the timeline
	TimelineId() string
	// Actionable is the status that favourites, replies and filters apply to
	Actionable() *PlainItem
}

// PlainItem is a status with the local state kept for it.
type PlainItem struct {
	Status      *dto.Status // Reblog is always nil
	ViewData    *dal.StatusViewData
	Translation *dal.TranslatedStatus
}

func (p *PlainItem) TimelineId() string     { return p.Status.Id }
func (p *PlainItem) Actionable() *PlainItem { return p }

// ReblogItem is a status reposted by another account.
type ReblogItem struct {
	WrapperId   string
	RebloggedBy dto.Account
	Original    *PlainItem
}

func (r *ReblogItem) TimelineId() string     { return r.WrapperId }
func (r *ReblogItem) Actionable() *PlainItem { return r.Original }

// ItemFromEntity rebuilds the timeline item from a flat cache row.
func ItemFromEntity(sa *dal.TimelineStatusWithAccount) (TimelineItem, error) {

	status, err := sa.ToStatus()
	if err != nil {
		return nil, err
	}

	if status.Reblog == nil {
		return &PlainItem{status, sa.ViewData, sa.Translation}, nil
	}
	return &ReblogItem{
		WrapperId:   status.Id,
		RebloggedBy: status.Account,
		Original:    &PlainItem{status.Reblog, sa.ViewData, sa.Translation},
	}, nil
}

// ToStatus gives back the item in wire form; a reblog becomes the wrapper with the original inside.
func ToStatus(item TimelineItem) *dto.Status {
	switch it := item.(type) {
	case *ReblogItem:
		wrapper := dto.Status{
			Id:         it.WrapperId,
			Account:    it.RebloggedBy,
			Reblog:     it.Original.Status,
			CreatedAt:  it.Original.Status.CreatedAt,
			Visibility: it.Original.Status.Visibility,
		}
		return &wrapper
	case *PlainItem:
		return it.Status
	}
	return nil
}
