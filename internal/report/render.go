//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"regexp"

	"github.com/go-echarts/go-echarts/v2/components"
)

//
// PAGE ASSEMBLY
//

// go-echarts is "too clever" and opaque about how to not do things its way: its stock page
// template has no slot for anything that is not a chart. We override page.Render() so the
// summary tables land in the same self-contained document as the charts.
// (see the ModX and CustomX code below; original at https://github.com/go-echarts/go-echarts)

// ReportPage - a components.Page plus the table html the custom template will inject
type ReportPage struct {
	*components.Page
	TableHTML template.HTML
}

// renderchartpage - build the one-file report: tables first, then every chart
func renderchartpage(w io.Writer, p *Payload, tables string) error {
	const (
		TITLESTR = "Progress note topics: run %s"
	)

	page := components.NewPage()
	page.PageTitle = fmt.Sprintf(TITLESTR, p.RunID)

	page.AddCharts(topicsizebars(p))
	for topic := 0; topic < p.Mod.K; topic++ {
		page.AddCharts(termbars(p, topic))
	}
	page.AddCharts(gammascatter(p))

	rp := &ReportPage{Page: page, TableHTML: template.HTML(tables)}
	rp.Renderer = NewCustomPageRender(rp, rp.Validate)

	return rp.Render(w)
}

// ModRenderer etc modified from https://github.com/go-echarts/go-echarts/render/engine.go
type ModRenderer interface {
	Render(w io.Writer) error
}

type CustomPageRender struct {
	c      interface{}
	before []func()
}

// NewCustomPageRender returns a render implementation for Page.
func NewCustomPageRender(c interface{}, before ...func()) ModRenderer {
	return &CustomPageRender{c: c, before: before}
}

// Render renders the page into the given io.Writer.
func (r *CustomPageRender) Render(w io.Writer) error {
	const (
		TEMPLNAME = "chart"
		PATTERN   = `(__f__")|("__f__)|(__f__)`
	)

	for _, fn := range r.before {
		fn()
	}

	contents := []string{CustomHeaderTpl, CustomBaseTpl, CustomPageTpl}
	tpl := ModMustTemplate(TEMPLNAME, contents)

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, TEMPLNAME, r.c); err != nil {
		return err
	}

	pat := regexp.MustCompile(PATTERN)
	content := pat.ReplaceAll(buf.Bytes(), []byte(""))

	_, err := w.Write(content)
	return err
}

// ModMustTemplate creates a new template with the given name and parsed contents.
func ModMustTemplate(name string, contents []string) *template.Template {
	const (
		JSNAME = "safeJS"
	)

	tpl := template.Must(template.New(name).Parse(contents[0])).Funcs(template.FuncMap{
		JSNAME: func(s interface{}) template.JS {
			return template.JS(fmt.Sprint(s))
		},
	})

	for _, cont := range contents[1:] {
		tpl = template.Must(tpl.Parse(cont))
	}
	return tpl
}

// CustomHeaderTpl etc. adapted from https://github.com/go-echarts/go-echarts/templates/
var CustomHeaderTpl = `
{{ define "header" }}
<head>
	<!-- CustomHeaderTpl -->
    <meta charset="utf-8">
    <title>{{ .PageTitle }}</title>
{{- range .JSAssets.Values }}
    <script src="{{ . }}"></script>
{{- end }}
{{- range .CustomizedJSAssets.Values }}
    <script src="{{ . }}"></script>
{{- end }}
{{- range .CSSAssets.Values }}
    <link href="{{ . }}" rel="stylesheet">
{{- end }}
{{- range .CustomizedCSSAssets.Values }}
    <link href="{{ . }}" rel="stylesheet">
{{- end }}
	<style>
		body { font-family: sans-serif; margin: 2em; }
		table { border-collapse: collapse; margin-bottom: 2em; }
		td { border: 1px solid #ccc; padding: 4px 10px; }
		td.vectorrank { font-weight: bold; }
		tr.nthrow { background-color: #f3f3f3; }
	</style>
</head>
{{ end }}
`

var CustomBaseTpl = `
{{- define "base" }}
<!-- CustomBaseTpl -->
<div class="container">
    <div class="item" id="{{ .ChartID }}" style="width:{{ .Initialization.Width }};height:{{ .Initialization.Height }};"></div>
</div>
<script type="text/javascript">
    "use strict";
    let goecharts_{{ .ChartID | safeJS }} = echarts.init(document.getElementById('{{ .ChartID | safeJS }}'), "{{ .Theme }}");
    let option_{{ .ChartID | safeJS }} = {{ .JSONNotEscaped | safeJS }};
    goecharts_{{ .ChartID | safeJS }}.setOption(option_{{ .ChartID | safeJS }});

    {{- range .JSFunctions.Fns }}
    {{ . | safeJS }}
    {{- end }}
</script>
{{ end }}
`

var CustomPageTpl = `
{{- define "chart" }}
<!DOCTYPE html>
<html>
	<!-- CustomPageTpl -->
	{{ template "header" . }}
<body>
	{{ .TableHTML }}
	{{- range .Charts }} {{ template "base" . }} {{- end }}
</body>
</html>
{{ end }}
`
