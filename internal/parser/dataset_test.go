package parser

import (
	"reflect"
	"testing"
)

func buildRows() [][]string {
	return [][]string{
		{"21/06/2025_04:52:27", "1233", "t1", "b1", "4.18.0~0.nightly", "x86_64\ninstall\nRobotFramework\nFAILURE\nssh connection failed"},
		{"bad date", "1234", "t2", "b2", "4.18.0~0.nightly", "x86_64\ninstall\nRobotFramework\nSUCCESS"},
		{"22/06/2025_04:52:27", "1235", "t3"}, // malformed: too short
		{"22/06/2025_04:52:27", "1236", "t4", "b4", ""}, // blank version
		{"23/06/2025_04:52:27", "1237", "t5", "b5", "4.17.0~0.nightly", "aarch64\nupgrade\nGinkgo\nFAILED\netcd timeout"},
	}
}

func TestBuild(t *testing.T) {
	header := []string{"date", "id", "microshift target", "brew version", "MicroShift version", "nightly-build"}
	ds := Build(nil, header, buildRows())

	if len(ds.Runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(ds.Runs))
	}
	if ds.SkippedRows != 2 {
		t.Errorf("SkippedRows = %d, want 2", ds.SkippedRows)
	}

	// Sheet row order is preserved.
	wantIDs := []string{"1233", "1234", "1237"}
	for i, want := range wantIDs {
		if ds.Runs[i].RunID != want {
			t.Errorf("Runs[%d].RunID = %q, want %q", i, ds.Runs[i].RunID, want)
		}
	}

	// Unparseable date is retained with the zero-time sentinel.
	if ds.Runs[1].Dated() {
		t.Error("run with bad date should not be Dated()")
	}
	if ds.Runs[1].RawDate != "bad date" {
		t.Errorf("RawDate = %q", ds.Runs[1].RawDate)
	}

	// Dataset never contains a run with empty version.
	for i, run := range ds.Runs {
		if run.Version == "" {
			t.Errorf("Runs[%d] has empty version", i)
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	header := []string{"date", "id", "target", "brew", "version", "col-a", "col-b"}
	rows := buildRows()

	first := Build(nil, header, rows)
	second := Build(nil, header, rows)

	if !reflect.DeepEqual(first, second) {
		t.Error("Build() is not idempotent on identical input")
	}
}

func TestBuild_EmptySheet(t *testing.T) {
	ds := Build(nil, []string{"date", "id", "target", "brew", "version"}, nil)
	if len(ds.Runs) != 0 || ds.SkippedRows != 0 {
		t.Errorf("empty sheet produced runs=%d skipped=%d", len(ds.Runs), ds.SkippedRows)
	}
}
