package usage_repo

import (
	"sync"
	"testing"
)

func TestUsageCounters(t *testing.T) {
	r := NewUsageRepo()

	r.RecordAnalysis("アイムジャグラーEX")
	r.RecordAnalysis("アイムジャグラーEX")
	r.RecordAnalysis("マイジャグラーV")
	r.RecordExtract(true)
	r.RecordExtract(false)
	r.RecordExtract(true)

	snap := r.Snapshot()
	if snap.Analyses != 3 {
		t.Errorf("Analyses = %d, want 3", snap.Analyses)
	}
	if snap.AnalysesByName["アイムジャグラーEX"] != 2 {
		t.Errorf("AnalysesByName[EX] = %d, want 2", snap.AnalysesByName["アイムジャグラーEX"])
	}
	if snap.Extracts != 3 || snap.Recognized != 2 || snap.Empty != 1 {
		t.Errorf("extract counters = %d/%d/%d, want 3/2/1", snap.Extracts, snap.Recognized, snap.Empty)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	r := NewUsageRepo()
	r.RecordAnalysis("アイムジャグラーEX")

	snap := r.Snapshot()
	snap.AnalysesByName["アイムジャグラーEX"] = 100

	if got := r.Snapshot().AnalysesByName["アイムジャグラーEX"]; got != 1 {
		t.Errorf("repo counter mutated through snapshot: %d", got)
	}
}

func TestConcurrentRecording(t *testing.T) {
	r := NewUsageRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.RecordAnalysis("マイジャグラーV")
		}()
		go func() {
			defer wg.Done()
			r.RecordExtract(true)
		}()
	}
	wg.Wait()

	snap := r.Snapshot()
	if snap.Analyses != 50 || snap.Extracts != 50 {
		t.Errorf("Analyses = %d, Extracts = %d, want 50/50", snap.Analyses, snap.Extracts)
	}
}
