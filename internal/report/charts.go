//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package report

import (
	"fmt"

	"github.com/danaugrs/go-tsne/tsne"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"

	"github.com/clinotes/ClinicalNoteTopics/internal/vv"
)

//
// CHARTS
//

// see also: https://echarts.apache.org/en/option.html#series-bar

// newchartbase - a charts.Bar pre-formatted the way all the report bars want it
func newchartbase(title string, subtitle string) *charts.Bar {
	const (
		FONTSTYLE = "normal"
		LEFTALIGN = "20"
		SAVETYPE  = "png"
		SAVESTR   = "Save to file..."
	)

	tst := opts.TextStyle{
		FontStyle: FONTSTYLE,
		FontSize:  16,
		Padding:   "15",
	}

	sst := opts.TextStyle{
		FontStyle: FONTSTYLE,
		FontSize:  10,
	}

	tit := opts.Title{
		Title:         title,
		TitleStyle:    &tst,
		Subtitle:      subtitle,
		SubtitleStyle: &sst,
		Left:          LEFTALIGN,
	}

	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE,
		Name:  title,
		Title: SAVESTR, // get chinese if ""
	}

	tbo := opts.Toolbox{
		Show:    true,
		Orient:  "vertical",
		Left:    LEFTALIGN,
		Feature: &opts.ToolBoxFeature{SaveAsImage: &tbs},
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHEIGHT}),
		charts.WithTitleOpts(tit),
		charts.WithToolboxOpts(tbo),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	return bar
}

// topicsizebars - documents per dominant topic next to each topic's scaled accumulated weight
func topicsizebars(p *Payload) *charts.Bar {
	const (
		TITLESTR   = "Documents per topic"
		SUBTITLE   = "dominant-topic counts vs. scaled accumulated topic weight"
		COUNTSNAME = "documents"
		WGHTSNAME  = "scaled weight (%)"
	)

	bar := newchartbase(TITLESTR, SUBTITLE)

	axis := make([]string, p.Mod.K)
	counts := make([]opts.BarData, p.Mod.K)
	weights := make([]opts.BarData, p.Mod.K)
	for topic := 0; topic < p.Mod.K; topic++ {
		axis[topic] = fmt.Sprintf("topic %d", topic+1)
		counts[topic] = opts.BarData{Value: p.PerTopic[topic]}
		weights[topic] = opts.BarData{Value: p.Weights[topic] * 100}
	}

	bar.SetXAxis(axis)
	bar.AddSeries(COUNTSNAME, counts)
	bar.AddSeries(WGHTSNAME, weights)

	return bar
}

// termbars - the top terms of one topic as a bar chart; beta next to the tf-idf re-ranking
func termbars(p *Payload, topic int) *charts.Bar {
	const (
		TITLESTR  = "Topic %d top terms"
		SUBTITLE  = "term probability (beta) with the tf-idf score of any term also in the tf-idf ranking"
		BETANAME  = "beta"
		TFIDFNAME = "tf-idf"
	)

	bar := newchartbase(fmt.Sprintf(TITLESTR, topic+1), SUBTITLE)

	tfscores := make(map[string]float64, len(p.TFIDF[topic]))
	for _, rt := range p.TFIDF[topic] {
		tfscores[rt.Term] = rt.Score
	}

	tt := p.TopTerms[topic]
	axis := make([]string, len(tt))
	beta := make([]opts.BarData, len(tt))
	tfidf := make([]opts.BarData, len(tt))
	for i := 0; i < len(tt); i++ {
		axis[i] = tt[i].Term
		beta[i] = opts.BarData{Value: tt[i].Score}
		tfidf[i] = opts.BarData{Value: tfscores[tt[i].Term]}
	}

	bar.SetXAxis(axis)
	bar.AddSeries(BETANAME, beta)
	bar.AddSeries(TFIDFNAME, tfidf)

	return bar
}

// gammascatter - project the per-document topic mixtures onto a plane with t-SNE and color the
// dots by dominant topic; well-separated clusters mean the model found structure in the notes
func gammascatter(p *Payload) *charts.Scatter {
	const (
		TITLESTR = "Documents in topic space"
		SUBTITLE = "t-SNE embedding of the gamma matrix; one dot per document, colored by dominant topic"
		SERIES   = "topic %d"
		DOTSIZE  = 8
		VERBOSE  = false
	)

	dc := len(p.Mod.Docs)

	// t-SNE wants perplexity well under the number of points
	perp := float64(vv.TSNEPERPLEXITY)
	if most := float64(dc-1) / 3; most < perp {
		perp = most
	}

	t := tsne.NewTSNE(2, perp, vv.TSNELEARNRT, vv.TSNEMAXITER, VERBOSE)
	t.EmbedData(mat.DenseCopyOf(p.Mod.Gamma), nil)

	bytopic := make(map[int][]opts.ScatterData)
	for d := 0; d < dc; d++ {
		topic := p.Assignments[d].Topic
		bytopic[topic] = append(bytopic[topic], opts.ScatterData{
			Name:       p.Assignments[d].Doc,
			Value:      []interface{}{t.Y.At(d, 0), t.Y.At(d, 1)},
			SymbolSize: DOTSIZE,
		})
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR, Subtitle: SUBTITLE}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "5%"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Show: false}),
		charts.WithYAxisOpts(opts.YAxis{Show: false}),
	)

	for topic := 0; topic < p.Mod.K; topic++ {
		if len(bytopic[topic]) == 0 {
			continue
		}
		sc.AddSeries(fmt.Sprintf(SERIES, topic+1), bytopic[topic])
	}

	return sc
}
