package scanner

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/pecheck/internal/files/filesystem"
	"github.com/vvka-141/pecheck/internal/logging"
	"github.com/vvka-141/pecheck/internal/markers"
	"github.com/vvka-141/pecheck/pkg/pecheck"
)

// fixture returns n zero bytes with each pattern copied in at its offset.
func fixture(n int, at map[int][]byte) []byte {
	data := make([]byte, n)
	for off, p := range at {
		copy(data[off:], p)
	}
	return data
}

func runScan(t *testing.T, data []byte, opts ...Option) string {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("/in/plugin.asi", data)

	var out bytes.Buffer
	require.NoError(t, New(mfs, opts...).Run("/in/plugin.asi", &out))
	return out.String()
}

func TestRun_EmptyFile(t *testing.T) {
	got := runScan(t, nil)
	assert.Equal(t, "No .rsrc section found\nFX_ASI_BUILD not found in file\n", got)
}

func TestRun_RsrcAndBuild(t *testing.T) {
	data := fixture(100, map[int][]byte{
		10: []byte(".rsrc"),
		50: []byte("FX_ASI_BUILD"),
	})

	got := runScan(t, data)

	want := "Found .rsrc at offset 10\n" +
		"Found FX_ASI_BUILD at offset 50\n" +
		"Context: b'" + strings.Repeat(`\x00`, 20) + "FX_ASI_BUILD" + strings.Repeat(`\x00`, 38) + "'\n"
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "(Unicode)")
}

func TestRun_ContextEqualsSlice(t *testing.T) {
	data := fixture(300, map[int][]byte{
		120: []byte("FX_ASI_BUILD"),
	})
	for i := range data {
		if data[i] == 0 {
			data[i] = byte(i)
		}
	}

	lines := strings.Split(strings.TrimSuffix(runScan(t, data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Found FX_ASI_BUILD at offset 120", lines[1])
	assert.Equal(t, "Context: "+FormatBytes(data[100:170]), lines[2])
}

func TestRun_NoMarkers(t *testing.T) {
	got := runScan(t, []byte("MZ\x90\x00 this program cannot be run in DOS mode"))
	assert.Equal(t, "No .rsrc section found\nFX_ASI_BUILD not found in file\n", got)
}

func TestRun_RsrcMissingDoesNotStopOtherSearches(t *testing.T) {
	data := fixture(64, map[int][]byte{
		8: markers.BuildWide.Pattern,
	})

	got := runScan(t, data)
	assert.Equal(t, "No .rsrc section found\n"+
		"FX_ASI_BUILD not found in file\n"+
		"Found FX_ASI_BUILD (Unicode) at offset 8\n", got)
}

func TestRun_BothEncodings(t *testing.T) {
	data := fixture(200, map[int][]byte{
		0:   []byte(".rsrc"),
		40:  []byte("FX_ASI_BUILD"),
		120: markers.BuildWide.Pattern,
	})

	lines := strings.Split(strings.TrimSuffix(runScan(t, data), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Found .rsrc at offset 0", lines[0])
	assert.Equal(t, "Found FX_ASI_BUILD at offset 40", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Context: b'"))
	assert.Equal(t, "Found FX_ASI_BUILD (Unicode) at offset 120", lines[3])
}

func TestRun_FirstOccurrenceWins(t *testing.T) {
	data := fixture(100, map[int][]byte{
		30: []byte(".rsrc"),
		70: []byte(".rsrc"),
	})
	got := runScan(t, data)
	assert.True(t, strings.HasPrefix(got, "Found .rsrc at offset 30\n"))
}

func TestRun_WrapNearStart(t *testing.T) {
	data := fixture(100, map[int][]byte{
		5: []byte("FX_ASI_BUILD"),
	})

	var logs bytes.Buffer
	got := runScan(t, data, WithLogger(logging.NewWriterLogger(&logs, true)))

	assert.Contains(t, got, "Found FX_ASI_BUILD at offset 5\nContext: b''\n")
	assert.Contains(t, logs.String(), "wrapped")
}

func TestRun_ClampNearStart(t *testing.T) {
	data := fixture(100, map[int][]byte{
		5: []byte("FX_ASI_BUILD"),
	})

	got := runScan(t, data, WithContextMode(pecheck.ContextClamp))
	want := "Context: b'" + strings.Repeat(`\x00`, 5) + "FX_ASI_BUILD" + strings.Repeat(`\x00`, 38) + "'\n"
	assert.Contains(t, got, want)
}

func TestRun_Idempotent(t *testing.T) {
	data := fixture(128, map[int][]byte{
		3:  []byte(".rsrc"),
		60: []byte("FX_ASI_BUILD"),
		90: markers.BuildWide.Pattern[:10],
	})
	assert.Equal(t, runScan(t, data), runScan(t, data))
}

func TestRun_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := New(filesystem.NewMemoryFileSystem()).Run("/nope.asi", &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, pecheck.ErrInputAccess))
	assert.Equal(t, pecheck.ExitInputError, pecheck.ExitCodeForError(err))
	assert.Empty(t, out.String(), "nothing may be printed before the read succeeds")
}

func TestRun_Directory(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddDir("/plugins")

	err := New(mfs).Run("/plugins", &bytes.Buffer{})
	assert.True(t, errors.Is(err, pecheck.ErrInputAccess))
	assert.True(t, errors.Is(err, filesystem.ErrIsDirectory))
}

func TestLoad_LogsFingerprint(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("a.bin", []byte("abc"))

	var logs bytes.Buffer
	s := New(mfs, WithLogger(logging.NewWriterLogger(&logs, true)))
	buf, err := s.Load("a.bin")
	require.NoError(t, err)

	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, "a.bin", buf.Path)
	assert.Contains(t, logs.String(), "3 bytes")
	assert.Contains(t, logs.String(), "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun_WriteFailure(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("a.bin", nil)

	err := New(mfs).Run("a.bin", failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.False(t, errors.Is(err, pecheck.ErrInputAccess))
}
