package network

import (
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Shared client", t, func() {
		So(Client.Timeout, ShouldEqual, 0)

		transport, ok := Client.Transport.(*http.Transport)
		So(ok, ShouldBeTrue)
		So(transport, ShouldNotEqual, http.DefaultTransport)
		So(transport.Proxy, ShouldNotBeNil)
	})
}
