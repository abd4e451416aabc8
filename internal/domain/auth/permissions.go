package auth

const (
	PermAttendanceRead   = "attendance.read"
	PermAttendanceWrite  = "attendance.write"
	PermMarksRead        = "marks.read"
	PermMarksWrite       = "marks.write"
	PermAssignmentsRead  = "assignments.read"
	PermAssignmentsWrite = "assignments.write"
	PermLeaveRead        = "leave.read"
	PermLeaveWrite       = "leave.write"
	PermLeaveReview      = "leave.review"
	PermTimetableRead    = "timetable.read"
	PermCalendarRead     = "calendar.read"
	PermCalendarWrite    = "calendar.write"
	PermFeesRead         = "fees.read"
	PermReportsRead      = "reports.read"
)

var DefaultPermissions = []string{
	PermAttendanceRead,
	PermAttendanceWrite,
	PermMarksRead,
	PermMarksWrite,
	PermAssignmentsRead,
	PermAssignmentsWrite,
	PermLeaveRead,
	PermLeaveWrite,
	PermLeaveReview,
	PermTimetableRead,
	PermCalendarRead,
	PermCalendarWrite,
	PermFeesRead,
	PermReportsRead,
}

var RolePermissions = map[string][]string{
	RoleStudent: {
		PermAttendanceRead,
		PermMarksRead,
		PermAssignmentsRead,
		PermLeaveRead,
		PermLeaveWrite,
		PermTimetableRead,
		PermCalendarRead,
		PermFeesRead,
		PermReportsRead,
	},
	RoleTeacher: {
		PermAttendanceRead,
		PermAttendanceWrite,
		PermMarksRead,
		PermMarksWrite,
		PermAssignmentsRead,
		PermAssignmentsWrite,
		PermLeaveRead,
		PermLeaveReview,
		PermTimetableRead,
		PermCalendarRead,
		PermCalendarWrite,
		PermReportsRead,
	},
}
