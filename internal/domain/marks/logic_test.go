package marks

import "testing"

func ptr(v float64) *float64 { return &v }

func TestComputeTotalAllNil(t *testing.T) {
	if got := ComputeTotal(nil, nil, nil, nil); got != nil {
		t.Fatalf("expected nil total, got %v", *got)
	}
}

func TestComputeTotalSkipsNilFields(t *testing.T) {
	got := ComputeTotal(ptr(80), nil, ptr(60), nil)
	if got == nil {
		t.Fatal("expected a total")
	}
	if *got != 70 {
		t.Fatalf("expected 70, got %v", *got)
	}
}

func TestComputeTotalAllFields(t *testing.T) {
	got := ComputeTotal(ptr(100), ptr(90), ptr(80), ptr(70))
	if got == nil || *got != 85 {
		t.Fatalf("expected 85, got %v", got)
	}
}

func TestComputeTotalSingleField(t *testing.T) {
	got := ComputeTotal(nil, nil, nil, ptr(42))
	if got == nil || *got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
}

func TestLetterGrade(t *testing.T) {
	cases := []struct {
		total *float64
		want  string
	}{
		{ptr(95), "A+"},
		{ptr(90), "A+"},
		{ptr(89.9), "A"},
		{ptr(80), "A"},
		{ptr(70), "B+"},
		{ptr(60), "B"},
		{ptr(50), "C"},
		{ptr(45), "D"},
		{ptr(40), "D"},
		{ptr(39.9), "F"},
		{ptr(0), "F"},
		{nil, "-"},
	}
	for _, tc := range cases {
		if got := LetterGrade(tc.total); got != tc.want {
			t.Fatalf("LetterGrade(%v) = %q, want %q", tc.total, got, tc.want)
		}
	}
}

func TestAverageCGPA(t *testing.T) {
	records := []Record{
		{CGPA: ptr(8.0)},
		{CGPA: nil},
		{CGPA: ptr(9.0)},
	}
	if got := AverageCGPA(records); got != 8.5 {
		t.Fatalf("expected 8.5, got %v", got)
	}
	if got := AverageCGPA(nil); got != 0 {
		t.Fatalf("expected 0 for empty input, got %v", got)
	}
	if got := AverageCGPA([]Record{{}, {}}); got != 0 {
		t.Fatalf("expected 0 when no cgpa present, got %v", got)
	}
}

func TestClassInternalAverages(t *testing.T) {
	records := []Record{
		{Internal1: ptr(80), Internal2: ptr(60)},
		{Internal1: ptr(60)},
		{Internal3: ptr(90)},
	}
	got := ClassInternalAverages(records)
	if got.Internal1 != 70 {
		t.Fatalf("expected internal1 mean 70, got %v", got.Internal1)
	}
	if got.Internal2 != 60 {
		t.Fatalf("expected internal2 mean 60, got %v", got.Internal2)
	}
	if got.Internal3 != 90 {
		t.Fatalf("expected internal3 mean 90, got %v", got.Internal3)
	}
	if got.Students != 3 {
		t.Fatalf("expected 3 students, got %d", got.Students)
	}

	empty := ClassInternalAverages(nil)
	if empty.Internal1 != 0 || empty.Internal2 != 0 || empty.Internal3 != 0 {
		t.Fatalf("expected zero averages for empty class, got %+v", empty)
	}
}

func TestBuildReport(t *testing.T) {
	rows := BuildReport([]Record{
		{CourseID: 1, Internal1: ptr(80), Internal3: ptr(60)},
		{CourseID: 2},
	})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Total == nil || *rows[0].Total != 70 || rows[0].Grade != "B+" {
		t.Fatalf("unexpected first row: total=%v grade=%q", rows[0].Total, rows[0].Grade)
	}
	if rows[1].Total != nil || rows[1].Grade != "-" {
		t.Fatalf("unexpected second row: total=%v grade=%q", rows[1].Total, rows[1].Grade)
	}
}
