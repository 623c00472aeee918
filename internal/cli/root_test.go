package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// execute runs the command tree with a fixed clock and captured output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand(&RootOptions{Now: func() time.Time { return j2000 }})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// decodeData unmarshals the data member of a JSON success envelope.
func decodeData(t *testing.T, out string, v any) {
	t.Helper()
	var env struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &env), out)
	require.Equal(t, "ok", env.Status)
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "ls-almanac", cmd.Use)
	assert.Contains(t, cmd.Long, "Julian Day")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{
		"jd", "calendar", "deltat", "gmst", "weekday",
		"ra2deg", "deg2ra", "dms2deg", "deg2dms",
		"altaz", "now", "clock",
	}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	levelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, levelFlag)
	assert.Equal(t, "info", levelFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "xml", "jd", "2000-01-01")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "jd", "2000-01-01")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMissingConfig(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "now")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "almanac.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
format: json
observer:
  name: Rome
  latitude: 41.9
  longitude: 15
`), 0o644))

	out, _, err := execute(t, "--config", path, "gmst", "1987-04-10", "--local")
	require.NoError(t, err)

	var res SiderealResult
	decodeData(t, out, &res)
	require.NotNil(t, res.Longitude)
	require.NotNil(t, res.LMST)
	assert.Equal(t, 15.0, *res.Longitude)
	assert.InDelta(t, res.GMST+15, *res.LMST, 1e-9)
}

func TestFlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "almanac.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o644))

	out, _, err := execute(t, "--config", path, "--format", "text", "jd", "2000-01-01.5")
	require.NoError(t, err)
	assert.Contains(t, out, "2451545.00000")
	assert.NotContains(t, out, `"status"`)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "jd", "1957-10-04.81")
	require.NoError(t, err)
	assert.Contains(t, stderr, "julian day")
	assert.Contains(t, stderr, "level=DEBUG")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))
	assert.Equal(t, ExitFailure, GetExitCode(WrapExitError(ExitFailure, "calc", assert.AnError)))
}

func TestOutputFormatter_JSONFailure(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}

	err := f.Failure(NewExitError(ExitFailure, "boom"))
	require.Error(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "boom", resp.Error)
}

func TestOutputFormatter_Text(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &buf}

	require.NoError(t, f.Success(nil, field{"JD", "2451545"}, field{"MJD", "51544.5"}))
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "2451545")
	assert.Contains(t, string(lines[1]), "51544.5")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"jd without date", []string{"jd"}},
		{"jd with two dates", []string{"jd", "2000-01-01", "2000-01-02"}},
		{"altaz without ra or dec", []string{"altaz", "2000-01-01"}},
		{"altaz without dec", []string{"altaz", "2000-01-01", "--ra", "00 00 00"}},
		{"negative value read as flag", []string{"deg2dms", "-59.1"}},
		{"unknown flag", []string{"gmst", "--bogus", "2000-01-01"}},
		{"now with argument", []string{"now", "today"}},
		{"ra2deg with four fields", []string{"ra2deg", "13", "10", "46", "37"}},
		{"gmst non-finite longitude", []string{"gmst", "2000-01-01", "--lon", "NaN"}},
		{"altaz non-finite latitude", []string{"altaz", "2000-01-01", "--ra", "00 00 00", "--dec", "00 00 00", "--lat", "NaN"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err), err.Error())
		})
	}
}

func TestUsageErrors_JSONEnvelope(t *testing.T) {
	for _, args := range [][]string{
		{"--format", "json", "jd"},
		{"--format", "json", "deg2dms", "-59.1"},
		{"--format", "json", "altaz", "2000-01-01"},
	} {
		out, _, err := execute(t, args...)
		require.Error(t, err, "%v", args)
		assert.Equal(t, ExitCommandError, GetExitCode(err), "%v", args)

		var resp Response
		require.NoError(t, json.Unmarshal([]byte(out), &resp), "%v: %q", args, out)
		assert.Equal(t, "error", resp.Status)
		assert.NotEmpty(t, resp.Error)
	}
}
