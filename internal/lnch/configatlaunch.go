//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/template"

	"github.com/clinotes/ClinicalNoteTopics/internal/vv"
)

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL3 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL5 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL6 = "Could not open '%s'"
		FAIL7 = "ConfigAtLaunch() failed to execute help text template"
		FAIL9 = "'-%s' requires a value; ignoring it"
		FAILK = "topic count must be >= 2; '-k %d' rejected, keeping %d"
	)

	Config = BuildDefaultConfig()

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	prolixcfg := fmt.Sprintf("%s%s", h, vv.CONFIGPROLIX)

	loadedcfg, e := os.Open(prolixcfg)
	if e != nil {
		Msg.TMI(fmt.Sprintf(FAIL6, prolixcfg))
	} else {
		decoderc := json.NewDecoder(loadedcfg)
		confc := CurrentConfiguration{}
		errc := decoderc.Decode(&confc)
		_ = loadedcfg.Close()
		if errc == nil {
			Config = &confc
		} else {
			Msg.CRIT(fmt.Sprintf(FAIL3, prolixcfg))
		}
	}

	args := os.Args[1:]

	// grab the value after flag 'i' or complain and carry on
	val := func(i int, a string) string {
		if i+1 >= len(args) {
			Msg.CRIT(fmt.Sprintf(FAIL9, a))
			return ""
		}
		return args[i+1]
	}

	help := func() {
		PrintVersion(*Config)
		PrintBuildInfo(*Config)

		m := map[string]interface{}{
			"cols":       strings.Join([]string{vv.COLPATIENT, vv.COLCLINIC, vv.COLNOTE}, ", "),
			"excl":       vv.CONFIGEXCL,
			"home":       h,
			"iterations": Config.LDAIterations,
			"loglevel":   Config.LogLevel,
			"report":     Config.ReportFile,
			"seed":       Config.Seed,
			"timeout":    Config.TimeoutSec,
			"topics":     Config.LDATopics,
			"topn":       Config.TopN,
			"workers":    Config.WorkerCount,
		}

		t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

		var b bytes.Buffer
		if ee := t.Execute(&b, m); ee != nil {
			Msg.CRIT(FAIL7)
		}
		fmt.Println(Msg.Styled(Msg.Color(b.String())))

		os.Exit(0)
	}

	for i, a := range args {
		switch a {
		case "-bw":
			Config.BlackAndWhite = true
		case "-ex":
			Config.ExcludeTerms = splitterms(val(i, a))
		case "-fn":
			Config.NoNumeric = true
		case "-fs":
			Config.NoStops = true
		case "-fx":
			Config.NoExclusions = true
		case "-gl":
			ll, err := strconv.Atoi(val(i, a))
			Msg.EC(err)
			Config.LogLevel = ll
		case "-h":
			help()
		case "-in":
			Config.InputFile = val(i, a)
		case "-it":
			it, err := strconv.Atoi(val(i, a))
			Msg.EC(err)
			Config.LDAIterations = it
		case "-k":
			k, err := strconv.Atoi(val(i, a))
			Msg.EC(err)
			if k < 2 {
				Msg.CRIT(fmt.Sprintf(FAILK, k, Config.LDATopics))
			} else {
				Config.LDATopics = k
			}
		case "-ks":
			Config.KSweep = splitints(val(i, a))
		case "-out":
			Config.ReportFile = val(i, a)
		case "-pc":
			Config.ProfileCPU = true
		case "-pm":
			Config.ProfileMEM = true
		case "-q":
			Config.QuietStart = true
		case "-sc":
			Config.ScrubOnly = true
		case "-sd":
			sd, err := strconv.ParseUint(val(i, a), 10, 64)
			Msg.EC(err)
			Config.Seed = sd
		case "-tn":
			tn, err := strconv.Atoi(val(i, a))
			Msg.EC(err)
			Config.TopN = tn
		case "-to":
			to, err := strconv.Atoi(val(i, a))
			Msg.EC(err)
			Config.TimeoutSec = to
		case "-v":
			fmt.Println(vv.VERSION + VersSuppl)
			os.Exit(1)
		case "-vv":
			PrintVersion(*Config)
			PrintBuildInfo(*Config)
			os.Exit(1)
		case "-wc":
			wc, err := strconv.Atoi(val(i, a))
			Msg.EC(err)
			Config.WorkerCount = wc
		default:
			// do nothing
		}
	}

	Msg.LLvl = Config.LogLevel
	Msg.BW = Config.BlackAndWhite

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL5, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *CurrentConfiguration {
	var c CurrentConfiguration
	c.BlackAndWhite = false
	c.ExcludeTerms = nil
	c.InputFile = ""
	c.KSweep = nil
	c.LDAIterations = vv.LDAITER
	c.LDATopics = vv.LDATOPICS
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.NoNumeric = false
	c.NoStops = false
	c.NoExclusions = false
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QuietStart = false
	c.ReportFile = vv.DEFAULTREPORT
	c.ScrubOnly = false
	c.Seed = vv.DEFAULTSEED
	c.TimeoutSec = vv.DEFAULTFITTIMEOUT
	c.TopN = vv.DEFAULTTOPN
	c.WorkerCount = runtime.NumCPU()
	return &c
}

// WriteDefaultConfig - save a starter JSON config file so the operator has something to edit
func WriteDefaultConfig() {
	const (
		WROTE = "wrote default configuration file: '%s'"
	)

	uh, e := os.UserHomeDir()
	if e != nil {
		return
	}
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	prolixcfg := fmt.Sprintf("%s%s", h, vv.CONFIGPROLIX)

	if _, yes := os.Stat(prolixcfg); yes == nil {
		return
	}

	Msg.EC(os.MkdirAll(h, os.ModePerm))

	content, err := json.MarshalIndent(BuildDefaultConfig(), "", vv.JSONINDENT)
	Msg.EC(err)
	Msg.EC(os.WriteFile(prolixcfg, content, vv.WRITEPERMS))
	Msg.PEEK(fmt.Sprintf(WROTE, prolixcfg))
}

// splitterms - "pt, mg,History" --> ["pt", "mg", "history"]
func splitterms(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// splitints - "2,4,8" --> [2, 4, 8]
func splitints(s string) []int {
	var out []int
	for _, t := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(t))
		Msg.EC(err)
		out = append(out, n)
	}
	return out
}
