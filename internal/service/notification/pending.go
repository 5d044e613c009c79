package notification

import (
	"fmt"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/attendance"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/dailyreport"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/leave"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/notification"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

func userName(u *user.Summary) string {
	if u == nil {
		return ""
	}
	return u.Name
}

func leaveItems(list []leave.LeaveRequest) []notification.PendingItem {
	pending := request.FilterPending(list, leave.LeaveRequest.RequestStatus)
	items := make([]notification.PendingItem, 0, len(pending))
	for _, l := range pending {
		items = append(items, notification.PendingItem{
			Kind:      notification.KindLeave,
			ID:        l.ID.String(),
			UserName:  userName(l.User),
			Summary:   fmt.Sprintf("%s %s..%s", l.Type, l.StartDate, l.EndDate),
			CreatedAt: l.CreatedAt,
		})
	}
	return items
}

func attendanceItems(list []attendance.StatusRequest) []notification.PendingItem {
	pending := request.FilterPending(list, attendance.StatusRequest.RequestStatus)
	items := make([]notification.PendingItem, 0, len(pending))
	for _, r := range pending {
		var createdAt *time.Time
		if !r.CreatedAt.IsZero() {
			t := r.CreatedAt
			createdAt = &t
		}
		items = append(items, notification.PendingItem{
			Kind:      notification.KindAttendanceStatus,
			ID:        r.ID.String(),
			UserName:  userName(r.User),
			Summary:   fmt.Sprintf("%s -> %s", r.CurrentStatus, r.RequestedStatus),
			CreatedAt: createdAt,
		})
	}
	return items
}

func editItems(list []dailyreport.EditRequest) []notification.PendingItem {
	pending := request.FilterPending(list, dailyreport.EditRequest.RequestStatus)
	items := make([]notification.PendingItem, 0, len(pending))
	for _, e := range pending {
		items = append(items, notification.PendingItem{
			Kind:      notification.KindDailyReportEdit,
			ID:        e.ID.String(),
			UserName:  userName(e.User),
			Summary:   e.Reason,
			CreatedAt: e.CreatedAt,
		})
	}
	return items
}
