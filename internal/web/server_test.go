package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	. "github.com/smartystreets/goconvey/convey"
)

func TestServer(t *testing.T) {
	Convey("Given a spectator server", t, func() {
		hub := NewHub()
		ts := httptest.NewServer(NewServer(hub).Handler())
		defer ts.Close()

		Convey("The index page is served", func() {
			resp, err := http.Get(ts.URL + "/")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(resp.Header.Get("Content-Type"), ShouldEqual, "text/html")
			So(string(body), ShouldContainSubstring, "<canvas")
		})

		Convey("The frame endpoint is unavailable until a frame is published", func() {
			resp, err := http.Get(ts.URL + "/frame")
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusServiceUnavailable)
		})

		Convey("When a frame has been published", func() {
			e := newWire(t)
			hub.Publish(Capture(e))

			Convey("GET /frame returns it as JSON", func() {
				resp, err := http.Get(ts.URL + "/frame")
				So(err, ShouldBeNil)
				defer resp.Body.Close()

				var f Frame
				So(json.NewDecoder(resp.Body).Decode(&f), ShouldBeNil)
				So(f, ShouldResemble, Frame{Rows: 1, Columns: 5, Cells: "tH###"})
			})

			Convey("A websocket spectator receives it and every later frame", func() {
				url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
				conn, _, err := websocket.DefaultDialer.Dial(url, nil)
				So(err, ShouldBeNil)
				defer conn.Close()
				_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

				var f Frame
				So(conn.ReadJSON(&f), ShouldBeNil)
				So(f.Cells, ShouldEqual, "tH###")

				e.Tick()
				hub.Publish(Capture(e))
				So(conn.ReadJSON(&f), ShouldBeNil)
				So(f.Tick, ShouldEqual, 1)
				So(f.Cells, ShouldEqual, "#tH##")
			})
		})

		Convey("Only GET is routed to /frame", func() {
			resp, err := http.Post(ts.URL+"/frame", "application/json", nil)
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusMethodNotAllowed)
		})
	})
}
