//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "ClinicalNoteTopics"
	SHORTNAME = "CNT"
	VERSION   = "0.3.1"
	PROJURL   = "https://github.com/clinotes/ClinicalNoteTopics"

	CONFIGALTAPTH = "%s/.config/ClinicalNoteTopics/"
	CONFIGPROLIX  = "cnt-prolix-conf.json"
	CONFIGSTOPS   = "cnt-stops-english.json"
	CONFIGEXCL    = "cnt-exclusions.json"

	JSONINDENT = "  "
	WRITEPERMS = 0644

	TERMINALTEXT = `Copyright (C) ClinicalNoteTopics contributors
	This program comes with ABSOLUTELY NO WARRANTY; without even the implied
	warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
	This is free software, and you are welcome to redistribute it and/or
	modify it under the terms of the GNU General Public License version 3.`
)

// HELPTEXTTEMPLATE - the text of the "-h" option; yields a help message when executed as a template
const HELPTEXTTEMPLATE = `S1command line optionsS0:
   C1-bwC0: black and white; no color in the terminal
   C1-exC0: comma-separated terms to exclude from the token stream (default: contents of '{{.excl}}')
   C1-fnC0: keep numeric tokens; skip the numeric filter
   C1-fsC0: keep stopwords; skip the stopword filter
   C1-fxC0: keep excluded terms; skip the exclusion filter
   C1-glC0: C2NC0 set log level; 0 is silent; 5 is very chatty (currently C2{{.loglevel}}C0)
   C1-inC0: C2fileC0 tab-separated input: {{.cols}}
   C1-itC0: C2NC0 LDA iterations (currently C2{{.iterations}}C0)
   C1-kC0:  C2NC0 topic count; must be >= 2 (currently C2{{.topics}}C0)
   C1-ksC0: C2N,N,...C0 sweep several topic counts and report the perplexity of each
   C1-outC0: C2fileC0 html report destination (currently C2{{.report}}C0)
   C1-pcC0: write a cpu profile to the current working directory
   C1-pmC0: write a memory profile to the current working directory
   C1-qC0:  quiet startup; suppress copyright notice
   C1-scC0: scrub the input file (line endings, unicode normalization) and exit
   C1-sdC0: C2NC0 random seed for the model fit (currently C2{{.seed}}C0)
   C1-tnC0: C2NC0 top terms to report per topic (currently C2{{.topn}}C0)
   C1-toC0: C2NC0 model fitting timeout in seconds (currently C2{{.timeout}}C0)
   C1-vC0:  print version and exit
   C1-wcC0: C2NC0 workers for topic-count sweeps (currently C2{{.workers}}C0)
   C1-hC0:  print this help information
   after launch the report will be written to a standalone html file
   config folder: C3{{.home}}C0
`
