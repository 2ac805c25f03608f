package diag

import "testing"

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(0)
	b := ReportError(BagReporter{Bag: bag}, SynExpectToken, sp(3, 4), "expected ';'").
		WithNote(sp(0, 1), "statement starts here").
		WithSuggestion("insert ';'")
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Suggestion != "insert ';'" || len(d.Related) != 1 {
		t.Fatalf("diagnostic = %+v", d)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: bag})
	r.Report(LexUnexpectedChar, SevError, sp(1, 2), "unexpected '#'", "", nil)
	r.Report(LexUnexpectedChar, SevError, sp(1, 2), "unexpected '#'", "", nil)
	r.Report(LexUnexpectedChar, SevError, sp(2, 3), "unexpected '#'", "", nil)
	if bag.Len() != 2 || r.Suppressed() != 1 {
		t.Fatalf("Len = %d, suppressed = %d", bag.Len(), r.Suppressed())
	}
}

func TestNilBuilderIsSafe(t *testing.T) {
	var b *ReportBuilder
	b.WithNote(sp(0, 0), "x").WithSuggestion("y").Emit()
}
