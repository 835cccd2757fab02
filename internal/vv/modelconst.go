//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	LDATOPICS      = 8
	LDAMAXTOPICS   = 30
	LDAITER        = 200
	LDAXFORMPASSES = 100
	LDABURNINPASSES = 2
	LDACHGEVALFRQ  = 10
	LDAPERPEVALFRQ = 10
	LDAPERPTOL     = 1e-2

	DEFAULTSEED       = 42
	DEFAULTTOPN       = 10
	DEFAULTFITTIMEOUT = 600 // seconds; topic-count growth is the dominant cost driver

	DEFAULTREPORT = "cnt-report.html"

	DEFAULTCHRTWIDTH  = "1500px"
	DEFAULTCHRTHEIGHT = "600px"

	TSNEPERPLEXITY = 30
	TSNELEARNRT    = 100
	TSNEMAXITER    = 300

	// input contract: three tab-separated columns
	COLPATIENT = "Patient_ID"
	COLCLINIC  = "Clinic_ID"
	COLNOTE    = "ProgressNote"

	DEFAULTGOLOGLEVEL = 0
)
