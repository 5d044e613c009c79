package user

type Permission string

const (
	// Self service
	PermissionViewOwnProfile   Permission = "profile.view_own"
	PermissionEditOwnProfile   Permission = "profile.edit_own"
	PermissionAttendanceOwn    Permission = "attendance.view_own"
	PermissionLeaveOwn         Permission = "leave.view_own"
	PermissionDailyReportOwn   Permission = "daily_report.view_own"
	PermissionPayrollOwn       Permission = "payroll.view_own"
	PermissionPerformanceOwn   Permission = "performance.view_own"
	PermissionNotificationsOwn Permission = "notifications.view_own"

	// Approvals
	PermissionAttendanceApprove  Permission = "attendance.approve"
	PermissionLeaveApprove       Permission = "leave.approve"
	PermissionDailyReportApprove Permission = "daily_report.approve"

	// Administration
	PermissionAttendanceViewAll  Permission = "attendance.view_all"
	PermissionDailyReportManage  Permission = "daily_report.manage"
	PermissionPayrollManage      Permission = "payroll.manage"
	PermissionPerformanceViewAll Permission = "performance.view_all"
	PermissionReportsView        Permission = "reports.view"
	PermissionUserManage         Permission = "user.manage"
	PermissionDeviceManage       Permission = "device.manage"
)

var selfService = []Permission{
	PermissionViewOwnProfile,
	PermissionEditOwnProfile,
	PermissionAttendanceOwn,
	PermissionLeaveOwn,
	PermissionDailyReportOwn,
	PermissionPayrollOwn,
	PermissionPerformanceOwn,
	PermissionNotificationsOwn,
}

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: append(append([]Permission{}, selfService...),
		PermissionAttendanceApprove,
		PermissionLeaveApprove,
		PermissionDailyReportApprove,
		PermissionAttendanceViewAll,
		PermissionDailyReportManage,
		PermissionPayrollManage,
		PermissionPerformanceViewAll,
		PermissionReportsView,
		PermissionUserManage,
		PermissionDeviceManage,
	),
	RoleUser: selfService,
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
