package report

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/gruntled/assessment-backend/internal/catalog"
	"github.com/gruntled/assessment-backend/internal/storage/models"
)

// RadarChart renders the per-dimension totals as a radar chart HTML page,
// one indicator per dimension on a 0-60 axis.
func RadarChart(w io.Writer, record models.StoredAssessment) error {
	dims := catalog.AllDimensions()

	indicators := make([]*opts.Indicator, 0, len(dims))
	values := make([]int, 0, len(dims))
	for _, d := range dims {
		indicators = append(indicators, &opts.Indicator{
			Name: d.Title,
			Max:  float32(catalog.MaxDimensionScore),
		})
		values = append(values, record.DimensionScores[d.Key])
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Leadership Dimensions",
			Width:     "720px",
			Height:    "520px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Leadership Dimensions",
			Subtitle: record.CoacheeName,
		}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator: indicators,
		}),
	)

	radar.AddSeries(record.CoacheeName, []opts.RadarData{{Value: values}}).
		SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{Color: "#F09C23"}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.4}),
		)

	return radar.Render(w)
}
