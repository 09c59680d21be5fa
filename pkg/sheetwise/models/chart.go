package models

// ChartKind is the visualisation used for a series.
type ChartKind string

const (
	// ChartBar draws one bar per label.
	ChartBar ChartKind = "bar"
	// ChartPie draws one slice per label.
	ChartPie ChartKind = "pie"
)

// ChartSeries is the label/value series handed to a chart renderer.
type ChartSeries struct {
	// Labels is the category name of each point.
	Labels []string `json:"labels"`
	// Data is the count of each point, aligned with Labels.
	Data []int `json:"data"`
}

// Chart describes one rendered visualisation.
type Chart struct {
	// Title is the chart title.
	Title string `json:"title"`
	// Kind is the chart kind.
	Kind ChartKind `json:"kind"`
	// Series is the plotted data.
	Series ChartSeries `json:"series"`
	// W is the chart width in pixels.
	W int `json:"w"`
	// H is the chart height in pixels.
	H int `json:"h"`
}
