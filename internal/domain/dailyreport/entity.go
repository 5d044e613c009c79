package dailyreport

import (
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/common"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/request"
	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/user"
)

type DailyReport struct {
	ID         common.ID  `json:"id"`
	UserID     common.ID  `json:"userId"`
	Date       string     `json:"date"`
	Content    string     `json:"content"`
	Attachment string     `json:"attachment,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`

	User *user.Summary `json:"user,omitempty"`
}

// Settings controls whether employees must submit a report and until when.
type Settings struct {
	Enabled  bool   `json:"enabled"`
	Deadline string `json:"deadline"` // HH:MM local time
}

// EditRequest proposes replacement content for an already submitted report.
type EditRequest struct {
	ID            common.ID      `json:"id"`
	DailyReportID common.ID      `json:"dailyReportId"`
	UserID        common.ID      `json:"userId"`
	NewContent    string         `json:"newContent"`
	NewAttachment string         `json:"newAttachment,omitempty"`
	Reason        string         `json:"reason"`
	Status        request.Status `json:"status"`
	CreatedAt     *time.Time     `json:"createdAt,omitempty"`

	User        *user.Summary `json:"user,omitempty"`
	DailyReport *DailyReport  `json:"dailyReport,omitempty"`
}

func (e EditRequest) RequestStatus() request.Status {
	return e.Status
}
