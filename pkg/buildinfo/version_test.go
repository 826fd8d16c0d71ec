package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "v1.2.3"
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q, want version line first", tmpl)
	}
	if !strings.Contains(String(), "version: v1.2.3") {
		t.Errorf("String() = %q, want version", String())
	}
}

func TestCurrentKeepsStampedValues(t *testing.T) {
	v, c, d := Version, Commit, Date
	defer func() { Version, Commit, Date = v, c, d }()

	Version, Commit, Date = "v0.3.0", "abc1234", "2024-05-01"
	got := Current()
	want := Info{Version: "v0.3.0", Commit: "abc1234", Date: "2024-05-01"}
	if got != want {
		t.Errorf("Current() = %+v, want %+v", got, want)
	}
	if !strings.HasSuffix(Template(), "commit: abc1234\nbuilt: 2024-05-01\n") {
		t.Errorf("Template() = %q", Template())
	}
}
