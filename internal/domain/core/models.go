package core

type Student struct {
	StudentID       int64  `json:"studentId"`
	UserID          int64  `json:"userId"`
	Name            string `json:"name"`
	SectionID       int64  `json:"sectionId"`
	CurrentSemester int    `json:"currentSemester"`
	YearOfAdmission int    `json:"yearOfAdmission"`
}

type Faculty struct {
	FacultyID   int64  `json:"facultyId"`
	UserID      int64  `json:"userId"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
}

type Course struct {
	CourseID   int64  `json:"courseId"`
	CourseName string `json:"courseName"`
	FacultyID  int64  `json:"facultyId"`
	SectionID  int64  `json:"sectionId"`
	Semester   int    `json:"semester"`
	IsLab      bool   `json:"isLab"`
}

type Section struct {
	SectionID int64  `json:"sectionId"`
	Name      string `json:"name"`
}
