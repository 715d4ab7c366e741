package contracts

import (
	"errors"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
)

func TestReportFixture(t *testing.T) {
	gunit.Run(new(ReportFixture), t)
}

type ReportFixture struct {
	*gunit.Fixture
}

var failure = errors.New("boom")

func (this *ReportFixture) TestNothingDone_Success() {
	this.So(Report{}.ExitCode(), should.Equal, ExitSuccess)
}

func (this *ReportFixture) TestEnvironmentFailure() {
	report := Report{EnvironmentErr: failure}

	this.So(report.ExitCode(), should.Equal, ExitEnvironment)
	this.So(report.Summary(), should.Equal, "Environment could not be resolved: boom\n")
}

func (this *ReportFixture) TestModFailure() {
	report := Report{
		Results: []ModResult{
			{ModID: "1", Phase: PhaseInstall, Stage: StageInstall, Files: []string{"a.pak", "b.pak"}},
			{ModID: "2", Phase: PhaseUpdate, Stage: StageFetch, Err: failure},
		},
		Manifest: []string{"a.pak", "b.pak"},
	}

	this.So(report.ExitCode(), should.Equal, ExitDownload)
	this.So(report.Failures(), should.Resemble, report.Results[1:])
	this.So(report.Summary(), should.Equal, ""+
		"2 mod(s) processed, 1 failed.\n"+
		"  [update] 2 failed during fetch: boom\n"+
		"Manifest lists 2 mod file(s).\n")
}

func (this *ReportFixture) TestManifestFailure() {
	report := Report{
		Results:     []ModResult{{ModID: "1", Phase: PhaseInstall}},
		ManifestErr: failure,
	}

	this.So(report.ExitCode(), should.Equal, ExitDownload)
	this.So(report.Summary(), should.EndWith, "Manifest could not be written: boom\n")
}

func (this *ReportFixture) TestModResultString() {
	succeeded := ModResult{ModID: "1", Phase: PhaseInstall, Stage: StageInstall, Files: []string{"a.pak"}}

	this.So(succeeded.Succeeded(), should.BeTrue)
	this.So(succeeded.String(), should.Equal, "[install] 1 ok (a.pak)")
}
