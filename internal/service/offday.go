package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/zanda/offday-portal/internal/directus"
	"github.com/zanda/offday-portal/internal/model"
	"github.com/zanda/offday-portal/internal/queue"
)

// SubmitOffDay validates one off-day request, confirms the target
// employee still exists on the platform, and stores the request. The
// existence check and the create are two calls with no transaction
// between them; a record deleted in that window surfaces as a platform
// error on the create. Submissions are not deduplicated: repeating the
// same input creates another record.
func (s *Service) SubmitOffDay(ctx context.Context, form model.OffDayForm) Result {
	payload, ok := normalize(form)
	if !ok {
		return failure(ErrorParse)
	}

	if _, err := s.store.EmployeeByID(ctx, payload.Employee); err != nil {
		if errors.Is(err, directus.ErrNotFound) {
			return failure(ErrorNoUser)
		}
		return failure(ErrorServer)
	}

	if err := s.store.CreateOffDay(ctx, payload); err != nil {
		return failure(ErrorServer)
	}

	s.publishOffDay(ctx, payload)
	return success(MsgOffDayOK)
}

// normalize type-checks the raw form and folds the two date variants into
// one creation payload. OffDate present selects the single-day variant
// and wins over any supplied range fields; absent selects the
// start/end range. Dates are passed through as-is: ordering and overlap
// rules are not enforced at this layer.
func normalize(form model.OffDayForm) (model.OffDayPayload, bool) {
	if form.OffType == "" {
		return model.OffDayPayload{}, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(form.User))
	if err != nil {
		return model.OffDayPayload{}, false
	}

	p := model.OffDayPayload{
		Employee: id,
		Notes:    form.Note,
		Type:     form.OffType,
	}
	if form.OffDate != nil {
		p.Single = true
		p.StartDate = form.OffDate
	} else {
		p.StartDate = form.StartOff
		p.EndDate = form.EndOff
	}
	return p, true
}

// publishOffDay emits the stored request to the broker. Best-effort: the
// record is already persisted, so failures are logged by the publisher
// and ignored here.
func (s *Service) publishOffDay(ctx context.Context, p model.OffDayPayload) {
	if s.pub == nil {
		return
	}
	_ = s.pub.OffDayRequested(ctx, queue.OffDayRequestedEvent{
		Employee:    p.Employee,
		SingleDay:   p.Single,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Type:        p.Type,
		Notes:       p.Notes,
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
