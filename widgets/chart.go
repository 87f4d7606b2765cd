package widgets

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

// Series is one player's running total after each round.
type Series struct {
	Name   string
	Color  lipgloss.Color
	Totals []int
}

// ScoreChart plots running totals per player over rounds.
type ScoreChart struct {
	Title  string
	Series []Series
}

// roundTime maps a round number onto the chart's time axis.
func roundTime(round int) time.Time { return time.Unix(int64(round), 0).UTC() }

func (c ScoreChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rounds := 0
	lo, hi := 0, 0
	for _, s := range c.Series {
		rounds = max(rounds, len(s.Totals))
		for _, v := range s.Totals {
			lo, hi = min(lo, v), max(hi, v)
		}
	}
	title := TitleStyle.Render(c.Title)
	if rounds == 0 {
		return title + "\n" + DimStyle.Render("No rounds yet.")
	}
	if lo == hi {
		hi = lo + 1
	}

	chartHeight := max(3, height-2)
	chart := tslc.New(width, chartHeight)
	chart.SetXStep(1)
	chart.SetYStep(1)
	chart.AxisStyle = DimStyle
	chart.LabelStyle = DimStyle
	chart.SetTimeRange(roundTime(0), roundTime(rounds))
	chart.SetViewTimeRange(roundTime(0), roundTime(rounds))
	chart.SetYRange(float64(lo), float64(hi))
	chart.SetViewYRange(float64(lo), float64(hi))
	chart.Model.XLabelFormatter = intLabels()
	chart.Model.YLabelFormatter = intLabels()

	legend := make([]string, 0, len(c.Series))
	for _, s := range c.Series {
		style := lipgloss.NewStyle().Foreground(s.Color)
		chart.PushDataSet(s.Name, tslc.TimePoint{Time: roundTime(0), Value: 0})
		for i, v := range s.Totals {
			chart.PushDataSet(s.Name, tslc.TimePoint{Time: roundTime(i + 1), Value: float64(v)})
		}
		chart.SetDataSetStyle(s.Name, style)
		legend = append(legend, style.Render("━ "+s.Name))
	}
	chart.DrawBrailleAll()

	return title + "\n" + chart.View() + "\n" + strings.Join(legend, "  ")
}

func intLabels() linechart.LabelFormatter {
	return func(_ int, v float64) string {
		return strconv.Itoa(int(math.Round(v)))
	}
}
