package request

import (
	"time"

	"github.com/goodsign/monday"

	"github.com/vietanh2810/activities-api/internal/analytics"
)

type AnalyticsQuery struct {
	Granularity string     `form:"granularity"`
	Anchor      *time.Time `form:"anchor" time_format:"2006-01-02T15:04:05Z07:00"`
	From        *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To          *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Locale      string     `form:"locale"`
}

func (q *AnalyticsQuery) ToTimelineRequest() analytics.TimelineRequest {
	req := analytics.TimelineRequest{
		Granularity: analytics.Granularity(q.Granularity),
		Locale:      monday.Locale(q.Locale),
	}
	if req.Granularity == "" {
		req.Granularity = analytics.GranularityMonth
	}
	if q.Anchor != nil {
		req.Anchor = *q.Anchor
	}
	if q.From != nil {
		req.From = *q.From
	}
	if q.To != nil {
		req.To = *q.To
	}
	return req
}
