package collect

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func block(path, content string) string {
	return "\n" + HeaderPrefix + path + "\n\n" + content + "\n\n"
}

func TestRun_IncludesOnlyMatchingFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.py":   "print('a')\n",
		"b.html": "<p>b</p>",
		"c.txt":  "not included",
	})
	output := filepath.Join(t.TempDir(), "combined_code.txt")

	res, err := Run(Arguments{
		Directory:  root,
		Output:     output,
		Extensions: []string{".py", ".html"},
	}, zap.NewNop())
	require.NoError(t, err)

	aPath := filepath.Join(root, "a.py")
	bPath := filepath.Join(root, "b.html")
	assert.Equal(t, []string{aPath, bPath}, res.Files)
	assert.False(t, res.Guarded)
	assert.Equal(t, output, res.Output)

	got := readOutput(t, output)
	assert.Equal(t, block(aPath, "print('a')\n")+block(bPath, "<p>b</p>"), got)
	assert.Equal(t, 2, strings.Count(got, HeaderPrefix))
	assert.NotContains(t, got, "c.txt")
}

func TestRun_OverwritesOutput(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"main.js": "console.log(1);"})
	output := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(output, []byte("stale content from an earlier run"), 0644))

	args := Arguments{Directory: root, Output: output, Extensions: []string{".js"}}

	_, err := Run(args, zap.NewNop())
	require.NoError(t, err)
	first := readOutput(t, output)

	_, err = Run(args, zap.NewNop())
	require.NoError(t, err)
	second := readOutput(t, output)

	assert.Equal(t, first, second)
	assert.NotContains(t, second, "stale")
	assert.Equal(t, 1, strings.Count(second, HeaderPrefix))
}

func TestRun_GuardedDirectory(t *testing.T) {
	for _, name := range []string{"venv", "venv_config", "my-venv-tools"} {
		t.Run(name, func(t *testing.T) {
			root := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.Mkdir(root, 0755))
			writeFiles(t, root, map[string]string{"app.py": "x = 1", "style.css": "p {}"})
			output := filepath.Join(t.TempDir(), "out.txt")

			res, err := Run(Arguments{
				Directory:  root,
				Output:     output,
				Extensions: []string{".py", ".css"},
			}, zap.NewNop())
			require.NoError(t, err)

			assert.True(t, res.Guarded)
			assert.Empty(t, res.Files)
			assert.Equal(t, "", readOutput(t, output))
		})
	}
}

func TestRun_GuardIgnoresFileNames(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"venv_helper.py": "pass"})
	output := filepath.Join(t.TempDir(), "out.txt")

	res, err := Run(Arguments{Directory: root, Output: output, Extensions: []string{".py"}}, zap.NewNop())
	require.NoError(t, err)

	assert.False(t, res.Guarded)
	assert.Equal(t, []string{filepath.Join(root, "venv_helper.py")}, res.Files)
}

func TestRun_InvalidUTF8AbortsRun(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.py": "first",
		"b.py": string([]byte{0xff, 0xfe, 0x00, 'x'}),
		"c.py": "never reached",
	})
	output := filepath.Join(t.TempDir(), "out.txt")

	res, err := Run(Arguments{Directory: root, Output: output, Extensions: []string{".py"}}, zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
	assert.Contains(t, err.Error(), filepath.Join(root, "b.py"))
	assert.Equal(t, []string{filepath.Join(root, "a.py")}, res.Files)

	// The failing file's header is written before its content is decoded.
	got := readOutput(t, output)
	want := block(filepath.Join(root, "a.py"), "first") + "\n" + HeaderPrefix + filepath.Join(root, "b.py") + "\n\n"
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "c.py")
	assert.NotContains(t, got, "never reached")
}

func TestRun_FailureIsNotLogged(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"bad.js": string([]byte{0xc3, 0x28})})
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := Run(Arguments{Directory: root, Output: filepath.Join(t.TempDir(), "out.txt"), Extensions: []string{".js"}}, zap.New(core))
	require.ErrorIs(t, err, ErrInvalidUTF8)

	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestRun_DirectoryWithMatchingNameIsFatal(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.py": "first"})
	require.NoError(t, os.Mkdir(filepath.Join(root, "pkg.py"), 0755))
	output := filepath.Join(t.TempDir(), "out.txt")

	_, err := Run(Arguments{Directory: root, Output: output, Extensions: []string{".py"}}, zap.NewNop())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidUTF8))
	assert.Contains(t, err.Error(), "is a directory")

	// Open failures stop the run before a header is written.
	assert.Equal(t, block(filepath.Join(root, "a.py"), "first"), readOutput(t, output))
}

func TestRun_MissingMatchedFileWritesNoHeader(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.txt"), filepath.Join(root, "dangling.css")))
	output := filepath.Join(t.TempDir(), "out.txt")

	_, err := Run(Arguments{Directory: root, Output: output, Extensions: []string{".css"}}, zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, "", readOutput(t, output))
}

func TestRun_SkipsDirectoriesWithoutMatchingName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "static"), 0755))
	writeFiles(t, root, map[string]string{"index.html": "<html></html>"})
	require.NoError(t, os.WriteFile(filepath.Join(root, "static", "nested.css"), []byte("body {}"), 0644))
	output := filepath.Join(t.TempDir(), "out.txt")

	res, err := Run(Arguments{Directory: root, Output: output, Extensions: []string{".html", ".css"}}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "index.html")}, res.Files)
	assert.NotContains(t, readOutput(t, output), "nested.css")
}

func TestRun_MissingDirectoryStillCreatesOutput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.txt")

	_, err := Run(Arguments{
		Directory:  filepath.Join(t.TempDir(), "does-not-exist"),
		Output:     output,
		Extensions: []string{".py"},
	}, zap.NewNop())
	require.Error(t, err)

	_, statErr := os.Stat(output)
	assert.NoError(t, statErr)
}

func TestRun_UnwritableOutput(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.py": "pass"})

	_, err := Run(Arguments{
		Directory:  root,
		Output:     filepath.Join(t.TempDir(), "missing", "out.txt"),
		Extensions: []string{".py"},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestRun_TranslatesLineEndings(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"win.css": "a {}\r\nb {}\rc {}\n"})
	output := filepath.Join(t.TempDir(), "out.txt")

	_, err := Run(Arguments{Directory: root, Output: output, Extensions: []string{".css"}}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, block(filepath.Join(root, "win.css"), "a {}\nb {}\nc {}\n"), readOutput(t, output))
}

func TestRun_HeaderUsesOpenedPath(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"x.js": "1"})
	output := filepath.Join(t.TempDir(), "out.txt")

	_, err := Run(Arguments{Directory: root + string(os.PathSeparator), Output: output, Extensions: []string{".js"}}, zap.NewNop())
	require.NoError(t, err)

	got := readOutput(t, output)
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, HeaderPrefix) {
			path := strings.TrimPrefix(line, HeaderPrefix)
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "1", string(data))
		}
	}
}
