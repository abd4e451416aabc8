package attendance

import (
	"math"
	"sort"
)

// Summarize folds raw attendance rows into an overall summary plus one
// summary per course, in a single pass.
//
// Late and Excused rows count toward a course's total but neither the
// present nor the absent tally, so they drag the percentage down. The
// legacy roll-call screens behaved this way; keep it until the registrar
// says otherwise.
func Summarize(records []Record) Summary {
	type accumulator struct {
		name    string
		present int
		absent  int
		total   int
	}

	perCourse := map[int64]*accumulator{}
	var order []int64
	overall := OverallSummary{}

	for _, rec := range records {
		acc, ok := perCourse[rec.CourseID]
		if !ok {
			acc = &accumulator{name: rec.CourseName}
			perCourse[rec.CourseID] = acc
			order = append(order, rec.CourseID)
		}
		acc.total++
		overall.Total++
		switch rec.Status {
		case StatusPresent:
			acc.present++
			overall.Present++
		case StatusAbsent:
			acc.absent++
			overall.Absent++
		}
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	summary := Summary{Overall: overall}
	summary.Overall.Percentage = percentage(overall.Present, overall.Absent)
	for _, courseID := range order {
		acc := perCourse[courseID]
		summary.Courses = append(summary.Courses, CourseSummary{
			CourseID:   courseID,
			CourseName: acc.name,
			Present:    acc.present,
			Absent:     acc.absent,
			Total:      acc.total,
			Percentage: percentage(acc.present, acc.absent),
		})
	}
	return summary
}

// percentage reports 0, not NaN, when there is nothing to divide by.
func percentage(present, absent int) int {
	denom := present + absent
	if denom == 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(denom) * 100))
}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
