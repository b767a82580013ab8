package server

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/lppsite/metrics"
	"github.com/lppsite/models"
)

const chartTheme = "macarons"

// chart is what every go-echarts chart type offers.
type chart interface {
	Render(w io.Writer) error
}

// renderMetricChart writes the interactive data view of a card.
func renderMetricChart(w io.Writer, card *metrics.Card) error {
	data, err := chartData(card)
	if err != nil {
		return err
	}

	var c chart
	switch data.Kind {
	case "line":
		c = generateLineChart(data)
	case "area":
		c = generateAreaChart(data)
	case "bar":
		c = generateBarChart(data)
	case "donut":
		c = generateDonutChart(data)
	default:
		return fmt.Errorf("no chart for kind %q", data.Kind)
	}

	if err := c.Render(w); err != nil {
		return fmt.Errorf("render %s chart: %w", data.Kind, err)
	}
	return nil
}

// chartData extracts the values a card draws from its renderer.
func chartData(card *metrics.Card) (models.ChartData, error) {
	data := models.ChartData{Title: card.Title, Subtitle: card.Subtitle}

	switch r := card.Renderer().(type) {
	case metrics.LineChart:
		data.Kind = "line"
		values := make([]float64, len(r.Points))
		for i, p := range r.Points {
			data.XAxis = append(data.XAxis, p.Label)
			// SVG y grows downwards from the bottom edge at 150.
			values[i] = 150 - p.Y
		}
		data.Series = []models.Series{{Name: "Visualizaciones", Values: values}}
	case metrics.DonutChart:
		data.Kind = "donut"
		values := make([]float64, len(r.Segments))
		for i, s := range r.Segments {
			data.XAxis = append(data.XAxis, s.Label)
			values[i] = float64(s.Percent())
		}
		data.Series = []models.Series{{Name: "Engagement", Values: values}}
	case metrics.BarChart:
		data.Kind = "bar"
		values := make([]float64, len(r.Bars))
		for i, b := range r.Bars {
			data.XAxis = append(data.XAxis, b.Week)
			values[i] = float64(b.Value)
		}
		data.Series = []models.Series{{Name: "Réplicas", Values: values}}
	case metrics.AreaChart:
		data.Kind = "area"
		geo := r.Geometry
		values := make([]float64, len(geo.Ticks))
		for i, t := range geo.Ticks {
			data.XAxis = append(data.XAxis, t)
			x := 0.0
			if len(geo.Ticks) > 1 {
				x = geo.Width * float64(i) / float64(len(geo.Ticks)-1)
			}
			values[i] = round1(geo.RetentionAt(x))
		}
		data.Series = []models.Series{{Name: "Retención (%)", Values: values}}
		data.Threshold = &models.Threshold{Label: geo.ThresholdLabel, Value: round1(geo.ThresholdRetention())}
	default:
		return models.ChartData{}, fmt.Errorf("metric %q has no data view", card.Slug)
	}
	return data, nil
}

func globalOpts(data models.ChartData) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: data.Title,
			Theme:     chartTheme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    data.Title,
			Subtitle: data.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	}
}

func generateLineChart(data models.ChartData) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOpts(data)...)
	line.SetXAxis(data.XAxis)

	for _, s := range data.Series {
		line.AddSeries(s.Name, generateLineItems(s.Values))
	}
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)
	return line
}

func generateAreaChart(data models.ChartData) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOpts(data)...)
	line.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{Name: "%", Max: 100}))
	line.SetXAxis(data.XAxis)

	for _, s := range data.Series {
		line.AddSeries(s.Name, generateLineItems(s.Values))
	}

	seriesOpts := []charts.SeriesOpts{
		charts.WithAreaStyleOpts(opts.AreaStyle{Color: "#ec4899"}),
	}
	if data.Threshold != nil {
		seriesOpts = append(seriesOpts, charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			Name:  data.Threshold.Label,
			YAxis: data.Threshold.Value,
		}))
	}
	line.SetSeriesOptions(seriesOpts...)
	return line
}

func generateBarChart(data models.ChartData) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(data)...)
	bar.SetXAxis(data.XAxis)

	for _, s := range data.Series {
		items := make([]opts.BarData, 0, len(s.Values))
		for _, v := range s.Values {
			items = append(items, opts.BarData{Value: v})
		}
		bar.AddSeries(s.Name, items)
	}
	bar.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)
	return bar
}

func generateDonutChart(data models.ChartData) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(globalOpts(data)...)
	pie.SetGlobalOptions(
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithColorsOpts(opts.Colors{"#ec4899", "#3b82f6", "#06b6d4"}),
	)

	for _, s := range data.Series {
		items := make([]opts.PieData, 0, len(s.Values))
		for i, v := range s.Values {
			items = append(items, opts.PieData{Name: data.XAxis[i], Value: v})
		}
		pie.AddSeries(s.Name, items)
	}
	pie.SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}%"}),
	)
	return pie
}

// generateLineItems converts a value slice to LineData.
func generateLineItems(values []float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
