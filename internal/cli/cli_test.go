package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
)

func init() {
	homedir.DisableCache = true
}

// sandbox points config, data and HOME at fresh temp directories and returns
// the data directory.
func sandbox(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	data := filepath.Join(home, "data")
	t.Setenv("HOME", home)
	t.Setenv("TODO_CONFIG_PATH", home)
	t.Setenv("TODO_DATA_DIR", data)
	t.Setenv("TODO_COLOR", "never")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(home))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return data
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func listJSON(t *testing.T, args ...string) []model.Todo {
	t.Helper()
	code, out, errOut := run(t, append([]string{"ls", "--json"}, args...)...)
	require.Equal(t, ExitOK, code, errOut)
	todos, err := model.UnmarshalSnapshot([]byte(out))
	require.NoError(t, err)
	return todos
}

func texts(todos []model.Todo) []string {
	out := make([]string, len(todos))
	for i, td := range todos {
		out[i] = td.Text
	}
	return out
}

func TestAddAndList(t *testing.T) {
	sandbox(t)

	code, out, _ := run(t, "add", "Buy", "milk")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Todo added!")

	code, out, _ = run(t, "ls")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "1")

	todos := listJSON(t)
	require.Len(t, todos, 1)
	assert.Equal(t, "Buy milk", todos[0].Text)
	assert.False(t, todos[0].Completed)
	assert.Empty(t, todos[0].DueDate)
}

func TestAddBlankIsUsageError(t *testing.T) {
	sandbox(t)

	code, _, errOut := run(t, "add", "   ")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "empty text")
	assert.Empty(t, listJSON(t))
}

func TestAddWithDueDate(t *testing.T) {
	sandbox(t)

	code, _, _ := run(t, "add", "--due", "2026-11-01", "Pay", "rent")
	require.Equal(t, ExitOK, code)
	todos := listJSON(t)
	require.Len(t, todos, 1)
	assert.Equal(t, "2026-11-01", todos[0].DueDate)

	code, _, errOut := run(t, "add", "--due", "11/01/2026", "Other")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "due date")
	assert.Len(t, listJSON(t), 1)
}

func TestToggleRemoveEdit(t *testing.T) {
	sandbox(t)
	for _, text := range []string{"a", "b", "c"} {
		code, _, _ := run(t, "add", text)
		require.Equal(t, ExitOK, code)
	}

	code, out, _ := run(t, "done", "2")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Todo updated!")
	assert.True(t, listJSON(t)[1].Completed)

	code, out, _ = run(t, "edit", "1", "alpha", "one")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Todo edited!")

	code, out, _ = run(t, "rm", "3")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Todo deleted!")

	assert.Equal(t, []string{"alpha one", "b"}, texts(listJSON(t)))
}

func TestDueSetAndClear(t *testing.T) {
	sandbox(t)
	run(t, "add", "a")

	code, out, _ := run(t, "due", "1", "2026-12-24")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Due date updated!")
	assert.Equal(t, "2026-12-24", listJSON(t)[0].DueDate)

	code, _, _ = run(t, "due", "1", "")
	require.Equal(t, ExitOK, code)
	assert.Empty(t, listJSON(t)[0].DueDate)

	code, _, _ = run(t, "due", "1", "tomorrow")
	assert.Equal(t, ExitUsage, code)
}

func TestIndexOutOfRange(t *testing.T) {
	sandbox(t)
	run(t, "add", "a")

	for _, args := range [][]string{
		{"done", "2"},
		{"rm", "0"},
		{"edit", "5", "x"},
		{"done", "one"},
		{"mv", "1", "9"},
	} {
		code, _, errOut := run(t, args...)
		assert.Equal(t, ExitUsage, code, args)
		assert.NotEmpty(t, errOut, args)
	}
	assert.Equal(t, []string{"a"}, texts(listJSON(t)))
}

func TestUsageErrors(t *testing.T) {
	sandbox(t)

	for _, args := range [][]string{
		{"frobnicate"},
		{"done"},
		{"ls", "extra"},
		{"ls", "--filter", "someday"},
		{"ls", "--no-such-flag"},
		{"--color", "sometimes", "ls"},
	} {
		code, _, _ := run(t, args...)
		assert.Equal(t, ExitUsage, code, args)
	}
}

func TestMove(t *testing.T) {
	sandbox(t)
	for _, text := range []string{"a", "b", "c"} {
		run(t, "add", text)
	}

	code, out, _ := run(t, "mv", "1", "3")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Todo moved!")
	assert.Equal(t, []string{"b", "c", "a"}, texts(listJSON(t)))

	code, out, _ = run(t, "mv", "2", "2")
	require.Equal(t, ExitOK, code)
	assert.Empty(t, out)
}

func TestFilterAndSearch(t *testing.T) {
	sandbox(t)
	for _, text := range []string{"Buy milk", "Walk dog", "buy bread"} {
		run(t, "add", text)
	}
	run(t, "done", "2")

	assert.Equal(t, []string{"Buy milk", "buy bread"}, texts(listJSON(t, "--filter", "active")))
	assert.Equal(t, []string{"Walk dog"}, texts(listJSON(t, "--filter", "completed")))
	assert.Equal(t, []string{"Buy milk", "buy bread"}, texts(listJSON(t, "--search", "BUY")))

	// positions printed by ls are positions in the full list
	code, out, _ := run(t, "ls", "--filter", "active")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "3")
	assert.NotContains(t, out, "Walk dog")
}

func TestBulk(t *testing.T) {
	sandbox(t)
	for _, text := range []string{"a", "b"} {
		run(t, "add", text)
	}

	code, out, _ := run(t, "mark-all")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "All marked as completed!")
	for _, td := range listJSON(t) {
		assert.True(t, td.Completed)
	}

	code, out, _ = run(t, "clear-completed")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Completed todos deleted!")
	assert.Empty(t, listJSON(t))
}

func TestStats(t *testing.T) {
	sandbox(t)
	run(t, "add", "a")
	run(t, "add", "b")
	run(t, "done", "1")

	code, out, _ := run(t, "stats")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "1 done")
	assert.Contains(t, out, "1 active")
	assert.Contains(t, out, "2 total")
}

func TestMalformedSnapshotIsSetAside(t *testing.T) {
	data := sandbox(t)
	require.NoError(t, os.MkdirAll(data, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(data, jsonstore.SnapshotKey), []byte("{not json"), 0o644))

	code, out, errOut := run(t, "ls")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "nothing here")
	assert.Contains(t, errOut, jsonstore.BackupKey)

	backup, err := os.ReadFile(filepath.Join(data, jsonstore.BackupKey))
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(backup))

	code, _, _ = run(t, "add", "fresh")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, []string{"fresh"}, texts(listJSON(t)))

	// reopening the same bad bytes made no second copy
	backups, err := filepath.Glob(filepath.Join(data, jsonstore.BackupKey+"*"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestLogFileIsWritten(t *testing.T) {
	data := sandbox(t)
	t.Setenv("TODO_LOG_LEVEL", "debug")

	code, _, _ := run(t, "add", "logged")
	require.Equal(t, ExitOK, code)

	b, err := os.ReadFile(filepath.Join(data, "todo.log"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "Todo added"), string(b))
}

func TestVersion(t *testing.T) {
	sandbox(t)
	code, out, _ := run(t, "version")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "todo "+Version+"\n", out)
}
