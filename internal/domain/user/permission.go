package user

type Permission string

const (
	// Attendance
	PermissionAttendanceCheckSelf Permission = "attendance.check_self"
	PermissionAttendanceViewAll   Permission = "attendance.view_all"
	PermissionAttendanceCorrect   Permission = "attendance.correct"

	// Overtime
	PermissionOvertimeRequest Permission = "overtime.request"
	PermissionOvertimeReview  Permission = "overtime.review"

	// Leave
	PermissionLeaveRequest Permission = "leave.request"
	PermissionLeaveReview  Permission = "leave.review"
	PermissionLeaveConvert Permission = "leave.convert"

	// Salary
	PermissionSalaryViewOwn Permission = "salary.view_own"
	PermissionSalaryCompile Permission = "salary.compile"
	PermissionSalaryViewAll Permission = "salary.view_all"

	// Employees
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Candidates
	PermissionCandidateManage Permission = "candidate.manage"

	// Task assignment visibility (coordinator)
	PermissionTaskAssignmentView Permission = "task_assignment.view"

	// Batch jobs
	PermissionJobsRun Permission = "jobs.run"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceCheckSelf,
		PermissionAttendanceViewAll,
		PermissionAttendanceCorrect,
		PermissionOvertimeRequest,
		PermissionOvertimeReview,
		PermissionLeaveRequest,
		PermissionLeaveReview,
		PermissionLeaveConvert,
		PermissionSalaryViewOwn,
		PermissionSalaryCompile,
		PermissionSalaryViewAll,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionCandidateManage,
		PermissionTaskAssignmentView,
		PermissionJobsRun,
	},
	RoleHR: {
		PermissionAttendanceCheckSelf,
		PermissionAttendanceViewAll,
		PermissionAttendanceCorrect,
		PermissionOvertimeRequest,
		PermissionOvertimeReview,
		PermissionLeaveRequest,
		PermissionLeaveReview,
		PermissionLeaveConvert,
		PermissionSalaryViewOwn,
		PermissionSalaryCompile,
		PermissionSalaryViewAll,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionCandidateManage,
	},
	RoleEmployee: {
		PermissionAttendanceCheckSelf,
		PermissionOvertimeRequest,
		PermissionLeaveRequest,
		PermissionSalaryViewOwn,
	},
	RoleCoordinator: {
		// Coordinator is an employee with task-assignment visibility,
		// orthogonal to HR/admin.
		PermissionAttendanceCheckSelf,
		PermissionOvertimeRequest,
		PermissionLeaveRequest,
		PermissionSalaryViewOwn,
		PermissionTaskAssignmentView,
	},
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
