package util

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tunesearch-cli/tunesearch/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "record", "records"), ShouldEqual, "1 record")
		So(Quantify(2, "record", "records"), ShouldEqual, "2 records")
		So(Quantify(0, "record", "records"), ShouldEqual, "0 records")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("logs"), ShouldEqual, "Logs")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestPrintErasable(t *testing.T) {
	Convey("PrintErasable blanks its message", t, func() {
		var buf bytes.Buffer
		erase := PrintErasable(&buf, "Searching..")
		erase()
		So(buf.String(), ShouldEqual, "\rSearching..\r           \r")
	})
}

func TestIgnore(t *testing.T) {
	Convey("Ignore calls the function", t, func() {
		called := false
		Ignore(func() error {
			called = true
			return errors.New("ignored")
		})
		So(called, ShouldBeTrue)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/logs/old", 0o755), ShouldBeNil)
		So(fs.WriteFile("/logs/old/a.log", []byte("x"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/single.log", []byte("x"), 0o644), ShouldBeNil)

		So(Delete("/single.log"), ShouldBeNil)
		So(Delete("/logs"), ShouldBeNil)

		exists, _ := fs.Exists("/logs/old/a.log")
		So(exists, ShouldBeFalse)
		So(Delete("/missing"), ShouldNotBeNil)
	})
}
