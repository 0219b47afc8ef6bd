package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(p, []byte(data), 0644))
	return p
}

func TestCheckFiles(t *testing.T) {
	good := writeTemp(t, "good.gcode", program)
	bad := writeTemp(t, "bad.gcode", "G28\n\nG1 Y1.2.3\n")

	var buf bytes.Buffer
	assert.Equal(t, 0, checkFiles(&buf, []string{good}))
	assert.Equal(t, good+": 6 lines, 6 commands, 1 raw\n", buf.String())

	buf.Reset()
	assert.Equal(t, 1, checkFiles(&buf, []string{good, bad}))
	assert.Contains(t, buf.String(), bad+": parse gcode: 2 lines ok, failed at line 3")
}

func TestFormatFiles(t *testing.T) {
	name := writeTemp(t, "a.gcode", "g1  x1 Y2.50\r\n;done")

	var buf bytes.Buffer
	require.NoError(t, formatFiles(&buf, []string{name}))
	assert.Equal(t, "G1 X1 Y2.5\n;done\n", buf.String())

	assert.Error(t, formatFiles(&buf, []string{filepath.Join(t.TempDir(), "missing")}))
}
