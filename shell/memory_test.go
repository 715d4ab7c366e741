package shell

import (
	"errors"
	"io/ioutil"
	"os"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
)

func TestMemoryFixture(t *testing.T) {
	gunit.Run(new(MemoryFixture), t)
}

type MemoryFixture struct {
	*gunit.Fixture
	fileSystem *InMemoryFileSystem
}

func (this *MemoryFixture) Setup() {
	this.fileSystem = NewInMemoryFileSystem()
}

func (this *MemoryFixture) TestWriteFileReadFile() {
	_ = this.fileSystem.WriteFile("/file.txt", []byte("Hello World"))

	raw, err := this.fileSystem.ReadFile("/file.txt")

	this.So(err, should.BeNil)
	this.So(raw, should.Resemble, []byte("Hello World"))
}

func (this *MemoryFixture) TestReadFileNonExistingFile() {
	_, err := this.fileSystem.ReadFile("/file.txt")

	this.So(os.IsNotExist(err), should.BeTrue)
}

func (this *MemoryFixture) TestOpenWrittenFile() {
	_ = this.fileSystem.WriteFile("/file.txt", []byte("Hello World"))

	reader, err := this.fileSystem.Open("/file.txt")

	this.So(err, should.BeNil)
	raw, _ := ioutil.ReadAll(reader)
	this.So(raw, should.Resemble, []byte("Hello World"))
}

func (this *MemoryFixture) TestCreate() {
	writer, err := this.fileSystem.Create("/file.txt")
	this.So(err, should.BeNil)
	_, _ = writer.Write([]byte("Hello "))
	_, _ = writer.Write([]byte("World"))
	_ = writer.Close()

	raw, _ := this.fileSystem.ReadFile("/file.txt")
	this.So(raw, should.Resemble, []byte("Hello World"))
}

func (this *MemoryFixture) TestCreateTruncates() {
	_ = this.fileSystem.WriteFile("/file.txt", []byte("previous"))

	writer, _ := this.fileSystem.Create("/file.txt")
	_, _ = writer.Write([]byte("new"))

	raw, _ := this.fileSystem.ReadFile("/file.txt")
	this.So(raw, should.Resemble, []byte("new"))
}

func (this *MemoryFixture) TestListing() {
	_ = this.fileSystem.WriteFile("/dir/b.txt", []byte("1"))
	_ = this.fileSystem.WriteFile("/dir/a.txt", nil)
	_ = this.fileSystem.WriteFile("/dir/sub/deep/c.txt", nil)
	_ = this.fileSystem.MkdirAll("/dir/empty")
	_ = this.fileSystem.WriteFile("/other/d.txt", nil)

	listing, err := this.fileSystem.Listing("/dir")

	this.So(err, should.BeNil)
	this.So(listing, should.HaveLength, 4)
	this.So(listing[0].Path(), should.Equal, "/dir/a.txt")
	this.So(listing[1].Name(), should.Equal, "b.txt")
	this.So(listing[1].Size(), should.Equal, 1)
	this.So(listing[1].ModTime(), should.Equal, InMemoryModTime)
	this.So(listing[2].Name(), should.Equal, "empty")
	this.So(listing[2].IsDir(), should.BeTrue)
	this.So(listing[3].Path(), should.Equal, "/dir/sub")
	this.So(listing[3].IsDir(), should.BeTrue)
}

func (this *MemoryFixture) TestListingMissingDirectory() {
	_, err := this.fileSystem.Listing("/missing")

	this.So(os.IsNotExist(err), should.BeTrue)
}

func (this *MemoryFixture) TestStat() {
	_ = this.fileSystem.WriteFile("/dir/file.txt", []byte("abc"))

	file, err := this.fileSystem.Stat("/dir/file.txt")
	this.So(err, should.BeNil)
	this.So(file.IsDir(), should.BeFalse)
	this.So(file.Size(), should.Equal, 3)

	directory, err := this.fileSystem.Stat("/dir/")
	this.So(err, should.BeNil)
	this.So(directory.IsDir(), should.BeTrue)

	_, err = this.fileSystem.Stat("/dir/missing")
	this.So(os.IsNotExist(err), should.BeTrue)
}

func (this *MemoryFixture) TestDelete() {
	_ = this.fileSystem.WriteFile("/file.txt", nil)

	this.So(this.fileSystem.Delete("/file.txt"), should.BeNil)
	this.So(os.IsNotExist(this.fileSystem.Delete("/file.txt")), should.BeTrue)
}

func (this *MemoryFixture) TestRemoveAll() {
	_ = this.fileSystem.WriteFile("/dir/a.txt", nil)
	_ = this.fileSystem.WriteFile("/dir/sub/b.txt", nil)
	_ = this.fileSystem.MkdirAll("/dir/empty")
	_ = this.fileSystem.WriteFile("/directory.txt", nil)

	err := this.fileSystem.RemoveAll("/dir")

	this.So(err, should.BeNil)
	_, err = this.fileSystem.Stat("/dir")
	this.So(os.IsNotExist(err), should.BeTrue)
	_, err = this.fileSystem.Stat("/directory.txt")
	this.So(err, should.BeNil)
}

func (this *MemoryFixture) TestMakeExecutable() {
	_ = this.fileSystem.WriteFile("/steamcmd.sh", nil)

	this.So(this.fileSystem.IsExecutable("/steamcmd.sh"), should.BeFalse)
	this.So(this.fileSystem.MakeExecutable("/steamcmd.sh"), should.BeNil)
	this.So(this.fileSystem.IsExecutable("/steamcmd.sh"), should.BeTrue)
	this.So(os.IsNotExist(this.fileSystem.MakeExecutable("/missing")), should.BeTrue)
}

func (this *MemoryFixture) TestFail() {
	failure := errors.New("failure")
	_ = this.fileSystem.WriteFile("/file.txt", nil)
	this.fileSystem.Fail("/file.txt", failure)

	_, err := this.fileSystem.ReadFile("/file.txt")
	this.So(err, should.Equal, failure)
	this.So(this.fileSystem.WriteFile("/file.txt", nil), should.Equal, failure)
	this.So(this.fileSystem.Delete("/file.txt"), should.Equal, failure)
	_, err = this.fileSystem.Stat("/file.txt")
	this.So(err, should.Equal, failure)
}
