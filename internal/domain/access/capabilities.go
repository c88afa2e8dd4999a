package access

// Capability strings the views declare. The identity service grants a subset
// of these per user; the guard only ever compares them, it never mints them.
const (
	PermEmployeeView      = "employee.view"
	PermPayrollManage     = "payroll.manage"
	PermAttendanceReport  = "attendance.report"
	PermExpenseManage     = "expense.manage"
	PermAssetManage       = "asset.manage"
	PermRecruitmentManage = "recruitment.manage"
	PermOffboardingManage = "offboarding.manage"
	PermAnnouncementView  = "announcement.view"
	PermAnnouncementEdit  = "announcement.manage"
	PermSettingsManage    = "settings.manage"
)
