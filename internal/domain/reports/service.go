package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"collegeerp/internal/domain/attendance"
	"collegeerp/internal/domain/core"
	"collegeerp/internal/domain/marks"
)

type Service struct {
	core       *core.Store
	marks      *marks.Service
	attendance *attendance.Service
}

func NewService(coreStore *core.Store, marksSvc *marks.Service, attendanceSvc *attendance.Service) *Service {
	return &Service{core: coreStore, marks: marksSvc, attendance: attendanceSvc}
}

// ReportCard renders a one-page PDF with the student's marks table and
// attendance summary. The caller owns the returned bytes.
func (s *Service) ReportCard(ctx context.Context, studentID int64) ([]byte, error) {
	student, err := s.core.StudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	report, err := s.marks.ReportForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	summary, err := s.attendance.SummaryForStudent(ctx, studentID, 0)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Report Card")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Student: %s", student.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Semester: %d", student.CurrentSemester))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(70, 8, "Course", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Int 1", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Int 2", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Int 3", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Grade", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range report.Rows {
		pdf.CellFormat(70, 8, row.CourseName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, markCell(row.Internal1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 8, markCell(row.Internal2), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 8, markCell(row.Internal3), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 8, markCell(row.Total), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 8, row.Grade, "1", 1, "C", false, 0, "")
	}

	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("CGPA: %.2f", report.AverageCGPA))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Attendance: %d%% (%d present, %d absent of %d sessions)",
		summary.Overall.Percentage, summary.Overall.Present, summary.Overall.Absent, summary.Overall.Total))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func markCell(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}
