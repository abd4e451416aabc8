package marks

// ComputeTotal averages whichever of the four components are present. A nil
// field is excluded from both numerator and divisor, not treated as zero;
// the result is nil only when every field is nil. The legacy screens
// described this as a 20/20/20/40 weighting but never implemented one.
func ComputeTotal(internal1, internal2, internal3, semester *float64) *float64 {
	sum := 0.0
	count := 0
	for _, field := range []*float64{internal1, internal2, internal3, semester} {
		if field != nil {
			sum += *field
			count++
		}
	}
	if count == 0 {
		return nil
	}
	total := sum / float64(count)
	return &total
}

// LetterGrade maps a computed total to its display grade; nil renders "-".
func LetterGrade(total *float64) string {
	if total == nil {
		return "-"
	}
	switch t := *total; {
	case t >= 90:
		return "A+"
	case t >= 80:
		return "A"
	case t >= 70:
		return "B+"
	case t >= 60:
		return "B"
	case t >= 50:
		return "C"
	case t >= 40:
		return "D"
	default:
		return "F"
	}
}

// AverageCGPA is the mean of the non-nil cgpa fields, 0 when none exist.
func AverageCGPA(records []Record) float64 {
	sum := 0.0
	count := 0
	for _, rec := range records {
		if rec.CGPA != nil {
			sum += *rec.CGPA
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// ClassInternalAverages averages each internal independently across the
// students that have a value for it.
func ClassInternalAverages(records []Record) InternalAverages {
	sums := [3]float64{}
	counts := [3]int{}
	for _, rec := range records {
		for i, field := range []*float64{rec.Internal1, rec.Internal2, rec.Internal3} {
			if field != nil {
				sums[i] += *field
				counts[i]++
			}
		}
	}

	avg := func(i int) float64 {
		if counts[i] == 0 {
			return 0
		}
		return sums[i] / float64(counts[i])
	}
	return InternalAverages{
		Internal1: avg(0),
		Internal2: avg(1),
		Internal3: avg(2),
		Students:  len(records),
	}
}

// BuildReport decorates raw records with totals and grades.
func BuildReport(records []Record) []ReportRow {
	rows := make([]ReportRow, 0, len(records))
	for _, rec := range records {
		total := ComputeTotal(rec.Internal1, rec.Internal2, rec.Internal3, rec.SemesterMarks)
		rows = append(rows, ReportRow{
			Record: rec,
			Total:  total,
			Grade:  LetterGrade(total),
		})
	}
	return rows
}
