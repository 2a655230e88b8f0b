// Package sample holds the designer-chosen placeholder content rendered
// into previews and exports. Both renderers read the same tables so the
// preview and the downloaded document show identical sample data.
package sample

// Series is one named sequence of values.
type Series struct {
	Name   string
	Values []float64
}

// BarCategories label the quarterly bar sample.
var BarCategories = []string{"Q1", "Q2", "Q3", "Q4"}

// BarValues is the quarterly bar sample.
var BarValues = []float64{42, 58, 51, 73}

// PieLabels label the five-segment distribution sample.
var PieLabels = []string{"Product", "Services", "Licensing", "Partners", "Other"}

// PieValues is the five-segment distribution sample.
var PieValues = []float64{34, 26, 18, 13, 9}

// LineCategories label the six-month trend sample.
var LineCategories = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// LineValues is the six-month trend sample.
var LineValues = []float64{18, 27, 24, 39, 46, 61}

// ScatterPoints is the correlation sample as (x, y) pairs.
var ScatterPoints = [][2]float64{
	{8, 12}, {15, 21}, {22, 19}, {31, 34}, {38, 30},
	{44, 47}, {52, 41}, {61, 58}, {70, 66}, {78, 61},
}

// StackedSeries is the segment-performance sample: three series over the
// quarterly categories.
var StackedSeries = []Series{
	{Name: "Enterprise", Values: []float64{21, 26, 24, 33}},
	{Name: "Mid-market", Values: []float64{14, 18, 17, 22}},
	{Name: "Self-serve", Values: []float64{7, 14, 10, 18}},
}

// TimelineMilestones is the journey sample.
var TimelineMilestones = []string{"Founded", "Seed Round", "Launch", "1M Users", "Global"}

// AgendaItems is the agenda sample.
var AgendaItems = []string{"Welcome", "The Problem", "Our Approach", "Results", "Roadmap", "Q&A"}

// IconLabels is the icon-grid sample.
var IconLabels = []string{"Trust", "Craft", "Speed", "Clarity", "Impact", "Care"}

// ComparisonLabels name the two sides of the comparison sample.
var ComparisonLabels = [2]string{"Before", "After"}

// ComparisonPoints are the bullet samples per comparison side.
var ComparisonPoints = [2][]string{
	{"Manual process", "Scattered data", "Slow feedback"},
	{"Automated flow", "Single source", "Instant insight"},
}

// QuoteText is the testimonial sample.
const QuoteText = "Design is the silent ambassador of your brand."

// QuoteAttribution credits the testimonial sample.
const QuoteAttribution = "Paul Rand"

// BodyPlaceholder is the generic body copy sample.
const BodyPlaceholder = "Use this space for supporting copy. Keep each point short, concrete, and scannable."

// CaptionPlaceholder is the generic caption sample.
const CaptionPlaceholder = "Caption or source note"

// MediaPlaceholder labels empty media frames.
const MediaPlaceholder = "Insert Image"
