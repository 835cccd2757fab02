//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package report

import (
	"fmt"
	"strings"

	"github.com/clinotes/ClinicalNoteTopics/internal/analysis"
	"github.com/clinotes/ClinicalNoteTopics/internal/vv"
)

// every nth row gets its own class so the css can stripe the tables
const NTH = 3

// runheadertable - the provenance block: run id, settings, corpus and model figures
func runheadertable(p *Payload) string {
	const (
		FULLTABLE = `
	<table class="ldarun"><tbody>
	%s
	</tbody></table>
	`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan="2">%s v%s run %s (%s)</td>
    </tr>
	%s`

		TABLEROW = `
	<tr class="%s">
		<td class="vectorrank">%s</td>
		<td class="vectorsent">%s</td>
	</tr>`
	)

	type kv struct {
		K string
		V string
	}

	rows := []kv{
		{"settings", p.Settings},
		{"topics (k)", fmt.Sprintf("%d", p.Mod.K)},
		{"seed", fmt.Sprintf("%d", p.Mod.Seed)},
		{"perplexity", fmt.Sprintf("%.2f", p.Mod.Perplexity)},
		{"documents modeled", fmt.Sprintf("%d", len(p.Mod.Docs))},
		{"distinct terms", fmt.Sprintf("%d", len(p.Mod.Terms))},
	}

	if p.Ing != nil {
		rows = append(rows, kv{"rows ingested", p.Ing.String()})
	}

	if len(p.EmptyDocs) > 0 {
		rows = append(rows, kv{"documents with no surviving tokens", strings.Join(p.EmptyDocs, ", ")})
	}

	var tablerows []string
	for i, r := range rows {
		rn := "vectorrow"
		if i%NTH == 0 {
			rn = "nthrow"
		}
		tablerows = append(tablerows, fmt.Sprintf(TABLEROW, rn, r.K, r.V))
	}

	t := fmt.Sprintf(TABLETOP, vv.MYNAME, vv.VERSION, p.RunID, p.Generated.Format("2006-01-02 15:04:05"), strings.Join(tablerows, "\n"))
	return fmt.Sprintf(FULLTABLE, t)
}

// topicsummarytable - one row per topic: beta terms, tf-idf terms, dominant-document counts, scaled weight
func topicsummarytable(p *Payload) string {
	const (
		FULLTABLE = `
	<table class="ldawords"><tbody>
	%s
	</tbody></table>
	`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan="5">Topic model of the progress notes via Latent Dirichlet Allocation</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">Topic</td>
		<td class="vectorrank">Top words associated with each topic</td>
		<td class="vectorrank">Top words re-ranked by TF-IDF</td>
		<td class="vectorrank"># of documents with topic N as their dominant topic</td>
		<td class="vectorrank">scaled total accumulated weight of each topic</td>
	</tr>
    %s`

		TABLEROW = `
	<tr class="%s">%s
	</tr>`

		TABLEELEM = `
		<td class="vectorrank">%d</td>
		<td class="vectorsent">%s</td>
		<td class="vectorsent">%s</td>
		<td class="vectorsent">%d (%.2f%%)</td>
		<td class="vectorsent">%.2f%%</td>`
	)

	dc := len(p.Mod.Docs)

	var tablecolumn []string
	for topic := 0; topic < p.Mod.K; topic++ {
		r := fmt.Sprintf(TABLEELEM, topic+1, termlist(p.TopTerms[topic]), termlist(p.TFIDF[topic]),
			p.PerTopic[topic], float64(p.PerTopic[topic])/float64(dc)*100, p.Weights[topic]*100)
		tablecolumn = append(tablecolumn, r)
	}

	var tablerows []string
	for i := range tablecolumn {
		rn := "vectorrow"
		if i%NTH == 0 {
			rn = "nthrow"
		}
		tablerows = append(tablerows, fmt.Sprintf(TABLEROW, rn, tablecolumn[i]))
	}

	tableout := fmt.Sprintf(TABLETOP, strings.Join(tablerows, "\n"))
	return fmt.Sprintf(FULLTABLE, tableout)
}

// commontermstable - the lowest-idf terms: candidates for the exclusion list on the next run
func commontermstable(p *Payload) string {
	const (
		FULLTABLE = `
	<table class="ldacommon"><tbody>
	%s
	</tbody></table>
	`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan="2">Most common terms (exclusion candidates; lower idf = more common)</td>
    </tr>
	%s`

		TABLEROW = `
	<tr class="%s">
		<td class="vectorsent">%s</td>
		<td class="vectorsent">%.4f</td>
	</tr>`
	)

	if len(p.Common) == 0 {
		return ""
	}

	var tablerows []string
	for i, c := range p.Common {
		rn := "vectorrow"
		if i%NTH == 0 {
			rn = "nthrow"
		}
		tablerows = append(tablerows, fmt.Sprintf(TABLEROW, rn, c.Term, c.Score))
	}

	tableout := fmt.Sprintf(TABLETOP, strings.Join(tablerows, "\n"))
	return fmt.Sprintf(FULLTABLE, tableout)
}

// termlist - "term1, term2, ..." for a table cell
func termlist(rr []analysis.RankedTerm) string {
	ww := make([]string, len(rr))
	for i := 0; i < len(rr); i++ {
		ww[i] = rr[i].Term
	}
	return strings.Join(ww, ", ")
}
