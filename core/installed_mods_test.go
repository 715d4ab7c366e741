package core

import (
	"errors"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
	"github.com/smartystreets/logging"

	"github.com/smarty/workshop/contracts"
	"github.com/smarty/workshop/shell"
)

func TestInstalledModListerFixture(t *testing.T) {
	gunit.Run(new(InstalledModListerFixture), t)
}

type InstalledModListerFixture struct {
	*gunit.Fixture

	fileSystem *shell.InMemoryFileSystem
	lister     *InstalledModLister
}

func (this *InstalledModListerFixture) Setup() {
	this.fileSystem = shell.NewInMemoryFileSystem()
	this.lister = NewInstalledModLister(this.fileSystem, contracts.ConanExiles)
	this.lister.logger = logging.Capture()
}

func (this *InstalledModListerFixture) write(name, contents string) {
	_ = this.fileSystem.WriteFile("/server/ConanSandbox/Mods/"+name, []byte(contents))
}

func (this *InstalledModListerFixture) TestMissingModsDirectory_NothingInstalled() {
	modIDs, err := this.lister.List("/server")

	this.So(err, should.BeNil)
	this.So(modIDs, should.BeEmpty)
}

func (this *InstalledModListerFixture) TestOnlyManifest_NothingInstalled() {
	this.write("modlist.txt", "")

	modIDs, err := this.lister.List("/server")

	this.So(err, should.BeNil)
	this.So(modIDs, should.BeEmpty)
}

func (this *InstalledModListerFixture) TestRecordsNameTheirMods() {
	this.write("workshop_200.json", `{"mod_id":"200","files":["b.pak","b2.pak"]}`)
	this.write("workshop_100.json", `{"files":["a.pak"]}`)
	this.write("a.pak", "")
	this.write("b.pak", "")
	this.write("b2.pak", "")
	this.write("modlist.txt", "a.pak\nb.pak\nb2.pak\n")

	modIDs, err := this.lister.List("/server")

	this.So(err, should.BeNil)
	this.So(modIDs, should.Resemble, []string{"100", "200"})
}

func (this *InstalledModListerFixture) TestUntrackedFilesContributeTheirStem() {
	this.write("workshop_100.json", `{"mod_id":"100","files":["a.pak"]}`)
	this.write("a.pak", "")
	this.write("880454836.pak", "")
	this.write("880454836.txt", "")
	_ = this.fileSystem.MkdirAll("/server/ConanSandbox/Mods/subfolder")

	modIDs, err := this.lister.List("/server")

	this.So(err, should.BeNil)
	this.So(modIDs, should.Resemble, []string{"100", "880454836"})
}

func (this *InstalledModListerFixture) TestUnreadableRecordIsSkipped() {
	this.write("workshop_100.json", "garbage")
	this.write("a.pak", "")

	modIDs, err := this.lister.List("/server")

	this.So(err, should.BeNil)
	this.So(modIDs, should.Resemble, []string{"a"})
}

func (this *InstalledModListerFixture) TestRecordWithUnsafeModIDIsSkipped() {
	this.write("workshop_100.json", `{"mod_id":"../../escape","files":["a.pak"]}`)
	this.write("a.pak", "")
	this.write("200.pak", "")

	modIDs, err := this.lister.List("/server")

	this.So(err, should.BeNil)
	this.So(modIDs, should.Resemble, []string{"200"})
}

func (this *InstalledModListerFixture) TestListingFailure() {
	_ = this.fileSystem.MkdirAll("/server/ConanSandbox/Mods")
	this.fileSystem.Fail("/server/ConanSandbox/Mods", anError)

	_, err := this.lister.List("/server")

	this.So(errors.Is(err, anError), should.BeTrue)
}
