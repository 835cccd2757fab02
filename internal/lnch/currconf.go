//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/clinotes/ClinicalNoteTopics/internal/mm"
	"github.com/clinotes/ClinicalNoteTopics/internal/vv"
)

var (
	Config *CurrentConfiguration
	Msg    = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)
)

// CurrentConfiguration - the operator-facing settings; a JSON config file and/or command line flags fill this out
type CurrentConfiguration struct {
	BlackAndWhite bool
	ExcludeTerms  []string
	InputFile     string
	KSweep        []int
	LDAIterations int
	LDATopics     int
	LogLevel      int
	NoNumeric     bool
	NoStops       bool
	NoExclusions  bool
	ProfileCPU    bool
	ProfileMEM    bool
	QuietStart    bool
	ReportFile    string
	ScrubOnly     bool
	Seed          uint64
	TimeoutSec    int
	TopN          int
	WorkerCount   int
}
