package main

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const program = `G21 ; Set units to millimeters
G90 ; Absolute positioning
M107 ; Fan Off
G28 ; Home
G1 Z15.0 F9000 ; Move Z Axis up
MCustomCommand ; This is a custom command
`

func do(t *testing.T, a *api, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, req)
	return rec
}

func TestAPI_Parse(t *testing.T) {
	a := newAPI(t.TempDir())

	rec := do(t, a, "POST", "/api/parse", program)
	require.Equal(t, http.StatusOK, rec.Code)

	var v programView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, 6, v.summary.Lines)
	assert.Equal(t, 1, v.Raw)
	require.Len(t, v.Lines, 6)

	assert.Equal(t, lineView{
		Line: 5, Kind: "command+comment", Type: "move", Group: "motion",
		Command: "G1 Z15 F9000", Comment: "Move Z Axis up",
	}, v.Lines[4])
	assert.Equal(t, "raw", v.Lines[5].Type)
	assert.Equal(t, "MCustomCommand", v.Lines[5].Command)
}

func TestAPI_ParseError(t *testing.T) {
	a := newAPI(t.TempDir())

	rec := do(t, a, "POST", "/api/parse", "G28\nG1 XFOO\n")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "line 2")
}

func TestAPI_Files(t *testing.T) {
	a := newAPI(t.TempDir())

	rec := do(t, a, "PUT", "/data/part.gcode", program)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, a, "GET", "/data/part.gcode", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, program, rec.Body.String())

	rec = do(t, a, "GET", "/api/programs/part.gcode", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var v programView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, "part.gcode", v.Name)
	assert.Equal(t, 6, v.Commands)

	rec = do(t, a, "PUT", "/data/bad.gcode", "G1 X?\n")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, a, "GET", "/api/programs/bad.gcode", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, a, "DELETE", "/data/part.gcode", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, a, "DELETE", "/data/part.gcode", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func put(t *testing.T, url, body string) int {
	t.Helper()
	req, err := http.NewRequest("PUT", url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestAPI_Events(t *testing.T) {
	a := newAPI(t.TempDir())
	srv := httptest.NewServer(a)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/events/programs")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// the sse server registers clients and closes channels from one loop,
	// so the subscriber above is registered once this returns
	a.sse.CloseChannel("/events/none")

	events := make(chan string, 1)
	go func() {
		sc := bufio.NewScanner(resp.Body)
		for sc.Scan() {
			if strings.HasPrefix(sc.Text(), "data: ") {
				events <- strings.TrimPrefix(sc.Text(), "data: ")
				return
			}
		}
	}()

	assert.Equal(t, http.StatusBadRequest, put(t, srv.URL+"/data/bad.gcode", "G1 XFOO\n"))
	require.Equal(t, http.StatusOK, put(t, srv.URL+"/data/part.gcode", program))

	select {
	case data := <-events:
		var s summary
		require.NoError(t, json.Unmarshal([]byte(data), &s))
		assert.Equal(t, summary{Name: "part.gcode", Lines: 6, Commands: 6, Raw: 1}, s)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for program event")
	}
}

func TestSafePath(t *testing.T) {
	ok, name := safePath("/srv/data", "../../etc/passwd")
	assert.True(t, ok)
	assert.Equal(t, "/srv/data/etc/passwd", name)
}
