//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinotes/ClinicalNoteTopics/internal/vv"
)

func TestBuildDefaultConfig(t *testing.T) {
	c := BuildDefaultConfig()

	assert.Equal(t, vv.LDATOPICS, c.LDATopics)
	assert.Equal(t, vv.LDAITER, c.LDAIterations)
	assert.Equal(t, uint64(vv.DEFAULTSEED), c.Seed)
	assert.Equal(t, vv.DEFAULTTOPN, c.TopN)
	assert.Equal(t, vv.DEFAULTFITTIMEOUT, c.TimeoutSec)
	assert.Equal(t, vv.DEFAULTREPORT, c.ReportFile)
	assert.Equal(t, runtime.NumCPU(), c.WorkerCount)
	assert.False(t, c.NoStops)
	assert.False(t, c.ScrubOnly)
	assert.Empty(t, c.KSweep)
}

func TestSplitterms(t *testing.T) {
	assert.Equal(t, []string{"pt", "mg", "history"}, splitterms("pt, mg,History"))
	assert.Equal(t, []string{"one"}, splitterms("one,,  ,"))
	assert.Nil(t, splitterms(""))
}

func TestSplitints(t *testing.T) {
	assert.Equal(t, []int{2, 4, 8}, splitints("2,4, 8"))
}

func TestGetenglishstops(t *testing.T) {
	stops := getenglishstops()

	// ordinary function words are stopped
	assert.Contains(t, stops, "the")
	assert.Contains(t, stops, "and")
	// charting boilerplate is stopped
	assert.Contains(t, stops, "pt")
	assert.Contains(t, stops, "denies")
	// negations carry clinical meaning and are kept
	assert.NotContains(t, stops, "no")
	assert.NotContains(t, stops, "not")
	assert.NotContains(t, stops, "never")
}

func TestMessageMakerWiring(t *testing.T) {
	Config = BuildDefaultConfig()
	Config.BlackAndWhite = true
	Config.LogLevel = 4

	m := NewMessageMakerWithDefaults()
	require.NotNil(t, m)
	assert.Equal(t, vv.SHORTNAME, m.SNm)
	assert.False(t, m.BW)

	UpdateMessageMakerWithConfig(m)
	assert.True(t, m.BW)
	assert.Equal(t, 4, m.LLvl)

	c := NewMessageMakerConfigured()
	assert.True(t, c.BW)
	assert.Equal(t, 4, c.LLvl)
}
