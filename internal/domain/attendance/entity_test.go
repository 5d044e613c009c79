package attendance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendance_Tags(t *testing.T) {
	a := Attendance{CheckInStatus: CheckInAlmostLate, BreakLate: true, EarlyLeave: true}
	assert.Equal(t, []string{"almostLate", "breakLate", "earlyLeave"}, a.Tags())

	assert.Nil(t, (&Attendance{}).Tags())
}

func TestAttendance_Decode(t *testing.T) {
	raw := `{"id": 3, "userId": 9, "date": "2025-02-03", "checkIn": "2025-02-03T01:02:03.000Z",
		"checkInStatus": "late", "breakLate": false, "earlyLeave": true, "user": {"id": 9, "name": "Dewi"}}`

	var a Attendance
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	assert.Equal(t, "3", a.ID.String())
	require.NotNil(t, a.CheckIn)
	assert.Equal(t, 1, a.CheckIn.Hour())
	assert.Nil(t, a.CheckOut)
	assert.Equal(t, "Dewi", a.User.Name)
	assert.Equal(t, "Late", a.CheckInStatus.Label())
}

func TestCreateStatusRequest_Validate(t *testing.T) {
	req := CreateStatusRequest{AttendanceID: "3", CurrentStatus: CheckInLate, RequestedStatus: CheckInOnTime, Reason: "gate scanner was down"}
	assert.NoError(t, req.Validate())

	req.RequestedStatus = CheckInLate
	assert.Error(t, req.Validate())

	req.RequestedStatus = "absent"
	assert.Error(t, req.Validate())
}

func TestListFilter_Validate(t *testing.T) {
	assert.NoError(t, (&ListFilter{StartDate: "2025-01-01"}).Validate())
	assert.Error(t, (&ListFilter{EndDate: "01-01-2025"}).Validate())
}
