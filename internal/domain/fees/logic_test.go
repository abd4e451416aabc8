package fees

import "testing"

func TestSummarize(t *testing.T) {
	items := []Fee{
		{Semester: 1, TotalAmount: 50000, PaidAmount: 50000},
		{Semester: 2, TotalAmount: 50000, PaidAmount: 20000},
	}
	got := Summarize(items)
	if got.TotalBilled != 100000 || got.TotalPaid != 70000 || got.Balance != 30000 {
		t.Fatalf("unexpected summary %+v", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if got.TotalBilled != 0 || got.TotalPaid != 0 || got.Balance != 0 {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}
