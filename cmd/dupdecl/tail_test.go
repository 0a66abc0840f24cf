package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTailは末尾の行を行番号付きで出力する(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTail(&buf, []string{"a", "b", "c", "d", ""}, 2, 0))
	assert.Equal(t, "Total lines: 5\n4: d\n5: \n", buf.String())
}

func TestWriteTailは短いファイルを全行出力する(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTail(&buf, []string{"only"}, 50, 0))
	assert.Equal(t, "Total lines: 1\n1: only\n", buf.String())
}

func TestWriteTailは幅で切り詰める(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTail(&buf, []string{"data class VeryLongName("}, 1, 10))
	assert.Equal(t, "Total lines: 1\n1: data clas…\n", buf.String())
}

func TestRunTailはファイル末尾を表示する(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 60; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	path := writeSource(t, b.String())

	res := runWith(fakeEnv(t, nil), "tail", path)
	require.Equal(t, exitOK, res.code, res.stderr)
	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	require.Len(t, lines, 51)
	assert.Equal(t, "Total lines: 61", lines[0])
	assert.Equal(t, "12: line 12", lines[1])
	assert.Equal(t, "61: ", lines[50])

	res = runWith(fakeEnv(t, map[string]string{"DUPDECL_TAIL_LINES": "3"}), "tail", path)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, "Total lines: 61\n59: line 59\n60: line 60\n61: \n", res.stdout)
}

func TestRunTailは存在しないファイルで終了コード1を返す(t *testing.T) {
	res := runWith(fakeEnv(t, nil), "tail", "/nonexistent/dir/User.kt")
	assert.Equal(t, exitError, res.code)
	assert.Empty(t, res.stdout)
}

func TestRunTail行数の検証はtailだけで行う(t *testing.T) {
	path := writeSource(t, userSource)
	env := fakeEnv(t, map[string]string{"DUPDECL_TAIL_LINES": "0"})

	res := runWith(env, path, "-n", "Other")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, "Found 1 occurrence of Other (no duplicates)\n", res.stdout)

	res = runWith(env, "tail", path)
	assert.Equal(t, exitUsage, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "DUPDECL_TAIL_LINES must be >= 1")
}

func TestRunTailは設定ファイルの行数を検証する(t *testing.T) {
	path := writeSource(t, userSource)
	cfg := filepath.Join(filepath.Dir(path), ".dupdecl.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("tail_lines = 0\n"), 0o644))

	res := runWith(fakeEnv(t, nil), "tail", path)
	assert.Equal(t, exitUsage, res.code)
	assert.Contains(t, res.stderr, "tail_lines must be >= 1")

	res = runWith(fakeEnv(t, nil), "tail", "-n", "2", path)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, "Total lines: 11\n10: data class Foo (val id: Int, val name: String)\n11: \n", res.stdout)
}
