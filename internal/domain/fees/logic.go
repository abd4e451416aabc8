package fees

// Summarize totals the billed and paid amounts across every semester row.
// Balance can go negative when a student overpays; the ledger shows it as is.
func Summarize(items []Fee) Summary {
	var sum Summary
	for _, f := range items {
		sum.TotalBilled += f.TotalAmount
		sum.TotalPaid += f.PaidAmount
	}
	sum.Balance = sum.TotalBilled - sum.TotalPaid
	return sum
}
