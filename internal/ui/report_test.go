package ui

import (
	"strings"
	"testing"
)

func TestRenderReportNil(t *testing.T) {
	if got := RenderReport(nil); got != "" {
		t.Fatalf("nil report rendered %q", got)
	}
}

func TestRenderReportFields(t *testing.T) {
	out := RenderReport(&Report{
		TermType:      "xterm-256color",
		SupportsColor: true,
		Interactive:   false,
		Width:         120,
		Height:        40,
	})
	for _, want := range []string{"Terminal Report", "xterm-256color", "yes", "no", "120x40"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReportUnsetTerm(t *testing.T) {
	out := RenderReport(&Report{})
	if !strings.Contains(out, "(unset)") {
		t.Fatalf("unset TERM not flagged:\n%s", out)
	}
}

func TestRenderReportChecks(t *testing.T) {
	out := RenderReport(&Report{
		Checks: []Check{
			{Name: "bold render", OK: true, Detail: `"\x1b[1mx\x1b[0m"`},
			{Name: "raw input", OK: false},
		},
	})
	for _, want := range []string{"Probes", "bold render", "ok", "raw input", "FAIL"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
