package auth

import "strings"

// Canonical roles used everywhere inside the service. The users table keeps
// the legacy spelling "faculty"; CanonicalRole collapses it at the data
// boundary so only one spelling circulates.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// StoredRoleFaculty is the value persisted in users.role for teachers.
const StoredRoleFaculty = "faculty"

func CanonicalRole(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case StoredRoleFaculty, RoleTeacher:
		return RoleTeacher
	case RoleStudent:
		return RoleStudent
	default:
		return ""
	}
}
