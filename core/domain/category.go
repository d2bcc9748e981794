// ABOUTME: Category domain model enumerates the ranking views a topic exposes
// ABOUTME: Models the closed hot/new/rising/top-per-timespan set as a tagged variant

package domain

// CategoryKind identifies one of the source's ranking views
type CategoryKind int

const (
	// Hot is the source's default trending ranking
	Hot CategoryKind = iota

	// New orders by submission time, newest first
	New

	// Rising surfaces posts gaining traction
	Rising

	// Top orders by score over a timespan; requires a Timespan
	Top
)

// Timespan scopes a Top ranking to a window
type Timespan string

const (
	SpanHour  Timespan = "hour"
	SpanDay   Timespan = "day"
	SpanWeek  Timespan = "week"
	SpanMonth Timespan = "month"
	SpanYear  Timespan = "year"
	SpanAll   Timespan = "all"
)

// Category is one ranking view of a topic. Span is only meaningful when
// Kind == Top.
type Category struct {
	Kind CategoryKind
	Span Timespan
}

// AllCategories returns every ranking view the source offers: hot, new,
// rising, and top over each timespan.
func AllCategories() []Category {
	cats := []Category{
		{Kind: Hot},
		{Kind: New},
		{Kind: Rising},
	}
	for _, span := range []Timespan{SpanHour, SpanDay, SpanWeek, SpanMonth, SpanYear, SpanAll} {
		cats = append(cats, Category{Kind: Top, Span: span})
	}
	return cats
}

// Path returns the listing path segment for the category
func (c Category) Path() string {
	switch c.Kind {
	case New:
		return "new"
	case Rising:
		return "rising"
	case Top:
		return "top"
	default:
		return "hot"
	}
}

// String returns a human-readable name, e.g. "top(week)"
func (c Category) String() string {
	if c.Kind == Top {
		return "top(" + string(c.Span) + ")"
	}
	return c.Path()
}
