package cmd

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oneconcern/gyt/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ExitMocks struct {
	mock.Mock
	fatalCalls int
	exitCodes  []int
}

func (m *ExitMocks) Fatalf(format string, v ...interface{}) {
	m.fatalCalls++
}

func (m *ExitMocks) Fatalln(v ...interface{}) {
	m.fatalCalls++
}

func (m *ExitMocks) Exit(code int) {
	m.exitCodes = append(m.exitCodes, code)
}

// https://github.com/stretchr/testify/issues/610
func MakeFatalfMock(m *ExitMocks) func(string, ...interface{}) {
	return func(format string, v ...interface{}) {
		m.Fatalf(format, v...)
	}
}

func MakeFatallnMock(m *ExitMocks) func(...interface{}) {
	return func(v ...interface{}) {
		m.Fatalln(v...)
	}
}

func MakeExitMock(m *ExitMocks) func(int) {
	return func(code int) {
		m.Exit(code)
	}
}

var exitMocks *ExitMocks

func setupTests(t *testing.T) (string, *bytes.Buffer, func()) {
	exitMocks = new(ExitMocks)
	logFatalf = MakeFatalfMock(exitMocks)
	logFatalln = MakeFatallnMock(exitMocks)
	osExit = MakeExitMock(exitMocks)

	out := new(bytes.Buffer)
	savedInfoLogger := infoLogger
	infoLogger = log.New(out, "", 0)

	gytFlags.add.all = false
	gytFlags.add.tags = nil
	gytFlags.log.limit = 10
	gytFlags.stats.days = 30
	gytFlags.push.remote = ""
	gytFlags.root.logLevel = "none"

	repoDir := t.TempDir()
	cleanup := func() {
		infoLogger = savedInfoLogger
		logFatalf = log.Fatalf
		logFatalln = log.Fatalln
		osExit = os.Exit
	}
	return repoDir, out, cleanup
}

func runCmd(t *testing.T, repoDir string, args ...string) {
	rootCmd.SetArgs(append(args, "--root", repoDir))
	require.NoError(t, rootCmd.Execute())
}

func stateFile(repoDir, name string) string {
	return filepath.Join(repoDir, ".gyt", name)
}

func readCommits(t *testing.T, repoDir string) []model.Commit {
	b, err := ioutil.ReadFile(stateFile(repoDir, "commits.json"))
	require.NoError(t, err)
	var commits []model.Commit
	require.NoError(t, json.Unmarshal(b, &commits))
	return commits
}

func readStaging(t *testing.T, repoDir string) []model.Milestone {
	b, err := ioutil.ReadFile(stateFile(repoDir, "staging.json"))
	require.NoError(t, err)
	var staged []model.Milestone
	require.NoError(t, json.Unmarshal(b, &staged))
	return staged
}

func TestInitCmd(t *testing.T) {
	repoDir, out, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "init")
	require.Equal(t, 0, exitMocks.fatalCalls)
	assert.Contains(t, out.String(), "Initialized empty gyt repository")

	for _, name := range []string{"staging.json", "commits.json", "config.json"} {
		_, err := os.Stat(stateFile(repoDir, name))
		require.NoError(t, err)
	}

	// second init is safe and changes nothing
	before, err := ioutil.ReadFile(stateFile(repoDir, "config.json"))
	require.NoError(t, err)
	out.Reset()
	runCmd(t, repoDir, "init")
	assert.Contains(t, out.String(), "already initialized")
	after, err := ioutil.ReadFile(stateFile(repoDir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestNotARepository(t *testing.T) {
	repoDir, _, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "status")
	require.Equal(t, []int{1}, exitMocks.exitCodes)

	// the precondition failure must not create any state
	_, err := os.Stat(filepath.Join(repoDir, ".gyt"))
	require.True(t, os.IsNotExist(err))
}

func TestAddCmd(t *testing.T) {
	repoDir, out, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "init")
	runCmd(t, repoDir, "add", "wrote docs")
	assert.Contains(t, out.String(), "Added milestone: wrote docs")

	staged := readStaging(t, repoDir)
	require.Len(t, staged, 1)
	assert.Equal(t, "wrote docs", staged[0].Message)
	assert.Empty(t, staged[0].Tags)

	runCmd(t, repoDir, "add", "tagged work", "--tag", "docs", "--tag", "v1")
	staged = readStaging(t, repoDir)
	require.Len(t, staged, 2)
	assert.Equal(t, []string{"docs", "v1"}, staged[1].Tags)
}

func TestAddDefaultMilestone(t *testing.T) {
	repoDir, _, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "init")
	runCmd(t, repoDir, "add", ".")
	runCmd(t, repoDir, "add", "--all")
	gytFlags.add.all = false

	staged := readStaging(t, repoDir)
	require.Len(t, staged, 2)
	assert.Equal(t, "Daily progress", staged[0].Message)
	assert.Equal(t, "Daily progress", staged[1].Message)
}

func TestAddWithoutMessage(t *testing.T) {
	repoDir, _, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "init")
	runCmd(t, repoDir, "add")
	require.Equal(t, []int{1}, exitMocks.exitCodes)

	staged := readStaging(t, repoDir)
	assert.Empty(t, staged)
}

func TestCommitRequiresMessage(t *testing.T) {
	repoDir, _, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "init")
	runCmd(t, repoDir, "add", "wrote docs")

	rootCmd.SetArgs([]string{"commit", "--root", repoDir})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message")
}

func TestCommitEmptyStaging(t *testing.T) {
	repoDir, _, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "init")
	runCmd(t, repoDir, "commit", "-m", "nothing to see")
	require.Equal(t, []int{1}, exitMocks.exitCodes)

	commits := readCommits(t, repoDir)
	assert.Empty(t, commits)
}

func TestCommitFlow(t *testing.T) {
	repoDir, out, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "init")
	runCmd(t, repoDir, "add", "wrote docs")
	runCmd(t, repoDir, "add", "fixed bug")
	runCmd(t, repoDir, "commit", "-m", "day 1")
	require.Equal(t, 0, exitMocks.fatalCalls)
	require.Empty(t, exitMocks.exitCodes)
	assert.Contains(t, out.String(), "Committed 2 milestone(s): day 1")
	assert.Contains(t, out.String(), "Commit hash:")

	commits := readCommits(t, repoDir)
	require.Len(t, commits, 1)
	assert.Equal(t, "day 1", commits[0].Message)
	assert.Regexp(t, `^[0-9a-f]{8}$`, commits[0].CommitHash)
	require.Len(t, commits[0].Milestones, 2)

	staged := readStaging(t, repoDir)
	assert.Empty(t, staged)
}

func TestStatusCmd(t *testing.T) {
	repoDir, out, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "init")
	runCmd(t, repoDir, "status")
	assert.Contains(t, out.String(), "No milestones staged")

	out.Reset()
	runCmd(t, repoDir, "add", "wrote docs")
	runCmd(t, repoDir, "status")
	assert.Contains(t, out.String(), "Staged milestones:")
	assert.Contains(t, out.String(), "1. wrote docs")
}

func TestLogCmd(t *testing.T) {
	repoDir, out, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "init")
	runCmd(t, repoDir, "log")
	assert.Contains(t, out.String(), "No commits yet.")

	runCmd(t, repoDir, "add", "wrote docs")
	runCmd(t, repoDir, "commit", "-m", "day 1")
	runCmd(t, repoDir, "add", "fixed bug")
	runCmd(t, repoDir, "commit", "-m", "day 2")

	out.Reset()
	runCmd(t, repoDir, "log", "--limit", "1")
	assert.Contains(t, out.String(), "day 2")
	assert.NotContains(t, out.String(), "day 1")
	assert.Contains(t, out.String(), "• fixed bug")

	out.Reset()
	runCmd(t, repoDir, "log", "--limit", "10")
	lines := out.String()
	// newest first
	assert.True(t, strings.Index(lines, "day 2") < strings.Index(lines, "day 1"))
}

func TestStatsCmd(t *testing.T) {
	repoDir, out, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "init")
	runCmd(t, repoDir, "stats")
	assert.Contains(t, out.String(), "No commits yet.")

	runCmd(t, repoDir, "add", "wrote docs")
	runCmd(t, repoDir, "commit", "-m", "day 1")

	out.Reset()
	runCmd(t, repoDir, "stats", "--days", "30")
	s := out.String()
	assert.Contains(t, s, "Stats for last 30 days")
	assert.Contains(t, s, "1")
	assert.Contains(t, s, "1.0")
}

func TestConfigCmd(t *testing.T) {
	repoDir, out, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "init")
	runCmd(t, repoDir, "config", "user.name", "fred")
	assert.Contains(t, out.String(), "Set user.name = fred")

	out.Reset()
	runCmd(t, repoDir, "config", "user.name")
	assert.Contains(t, out.String(), "user.name = fred")

	out.Reset()
	runCmd(t, repoDir, "config", "no.such.key")
	assert.Contains(t, out.String(), "no.such.key = {}")

	out.Reset()
	runCmd(t, repoDir, "config")
	var dumped map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &dumped))
	user, ok := dumped["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "fred", user["name"])

	// nested keys are created on demand
	runCmd(t, repoDir, "config", "a.b.c", "x")
	out.Reset()
	runCmd(t, repoDir, "config", "a.b.c")
	assert.Contains(t, out.String(), "a.b.c = x")
}

func TestPushWithoutRemote(t *testing.T) {
	repoDir, out, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "init")
	runCmd(t, repoDir, "push")
	require.Equal(t, []int{1}, exitMocks.exitCodes)
	assert.NotContains(t, out.String(), "Pushing")
}

func TestPushCmd(t *testing.T) {
	repoDir, out, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "init")
	runCmd(t, repoDir, "config", "remote.url", "https://gythub.example.com/fred")

	out.Reset()
	runCmd(t, repoDir, "push")
	require.Empty(t, exitMocks.exitCodes)
	assert.Contains(t, out.String(), "No commits to push.")

	runCmd(t, repoDir, "add", "wrote docs")
	runCmd(t, repoDir, "commit", "-m", "day 1")
	out.Reset()
	runCmd(t, repoDir, "push")
	assert.Contains(t, out.String(), "Pushing 1 commit(s) to https://gythub.example.com/fred...")

	out.Reset()
	runCmd(t, repoDir, "push", "--remote", "https://override.example.com")
	assert.Contains(t, out.String(), "https://override.example.com")
}

func TestConfigGenerate(t *testing.T) {
	repoDir, out, cleanup := setupTests(t)
	defer cleanup()

	target := filepath.Join(repoDir, "gyt.yaml")
	require.NoError(t, os.Setenv(envConfigLocation, target))
	defer func() {
		require.NoError(t, os.Unsetenv(envConfigLocation))
		gytFlags.root.logLevel = "none"
	}()

	runCmd(t, repoDir, "config", "generate", "--log-level", "info")
	require.Equal(t, 0, exitMocks.fatalCalls)
	assert.Contains(t, out.String(), "config file created in "+target)

	b, err := ioutil.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(b), "loglevel: info")
}

func TestVersionCmd(t *testing.T) {
	repoDir, out, cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, repoDir, "version")
	assert.Contains(t, out.String(), "Version: dev")
}
