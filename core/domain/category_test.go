package domain

import "testing"

func TestAllCategories_ReturnsNineViews(t *testing.T) {
	cats := AllCategories()

	if len(cats) != 9 {
		t.Errorf("AllCategories returned %d categories, want 9", len(cats))
	}
}

func TestAllCategories_CoversEveryTimespan(t *testing.T) {
	spans := make(map[Timespan]bool)
	for _, cat := range AllCategories() {
		if cat.Kind == Top {
			spans[cat.Span] = true
		}
	}

	for _, span := range []Timespan{SpanHour, SpanDay, SpanWeek, SpanMonth, SpanYear, SpanAll} {
		if !spans[span] {
			t.Errorf("AllCategories missing top(%s)", span)
		}
	}
}

func TestCategory_Path(t *testing.T) {
	if got := (Category{Kind: Hot}).Path(); got != "hot" {
		t.Errorf("hot path = %q, want %q", got, "hot")
	}
	if got := (Category{Kind: New}).Path(); got != "new" {
		t.Errorf("new path = %q, want %q", got, "new")
	}
	if got := (Category{Kind: Rising}).Path(); got != "rising" {
		t.Errorf("rising path = %q, want %q", got, "rising")
	}
	if got := (Category{Kind: Top, Span: SpanWeek}).Path(); got != "top" {
		t.Errorf("top path = %q, want %q", got, "top")
	}
}

func TestCategory_StringIncludesTimespan(t *testing.T) {
	cat := Category{Kind: Top, Span: SpanMonth}

	if got := cat.String(); got != "top(month)" {
		t.Errorf("String() = %q, want %q", got, "top(month)")
	}
}
