package signature_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	perrors "github.com/jmgilman/go/errors"
	"github.com/ostafen/restorext/internal/signature"
	"github.com/stretchr/testify/require"
)

func captureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestParseLine(t *testing.T) {
	t.Run("record", func(t *testing.T) {
		sig, ok, err := signature.ParseLine("png;89504e47;PNG Image")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "png", sig.Ext())
		require.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, sig.Pattern())
		require.Equal(t, "PNG Image", sig.Description())
	})

	t.Run("trimmed fields", func(t *testing.T) {
		sig, ok, err := signature.ParseLine("  jpg ; FFD8FF ;  JPEG Image  ")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "jpg", sig.Ext())
		require.Equal(t, "JPEG Image", sig.Description())
	})

	t.Run("description keeps separators", func(t *testing.T) {
		sig, ok, err := signature.ParseLine("txt;EFBBBF;text/plain; charset=utf-8")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "text/plain; charset=utf-8", sig.Description())
	})

	t.Run("empty description", func(t *testing.T) {
		_, ok, err := signature.ParseLine("bin;00;")
		require.NoError(t, err)
		require.True(t, ok)
	})

	for _, line := range []string{"", "   ", "# comment", "  # indented comment"} {
		_, ok, err := signature.ParseLine(line)
		require.NoError(t, err, "line %q", line)
		require.False(t, ok, "line %q", line)
	}

	malformed := []string{
		"png;89504E4",
		"png;89504EXX;PNG",
		"png;89504E47",
		"png",
		";89504E47;PNG",
		"png;;PNG",
		"png;89 50 4E 47;PNG",
		"../png;89504E47;PNG",
	}
	for _, line := range malformed {
		_, ok, err := signature.ParseLine(line)
		require.Error(t, err, "line %q", line)
		require.False(t, ok, "line %q", line)
		require.Equal(t, perrors.CodeInvalidInput, perrors.GetCode(err), "line %q", line)
	}
}

func TestLoad_SkipsMalformedLines(t *testing.T) {
	src := strings.Join([]string{
		"# test database",
		"",
		"png;89504E47;PNG Image",
		"bad;ABC;odd length",
		"short;FFD8",
		"jpg;ffd8ff;JPEG Image",
		"jpeg;FFD8FF;JPEG Image",
		"junk;GG;not hex",
	}, "\n")

	var logs bytes.Buffer
	db := signature.Load(strings.NewReader(src), captureLogger(&logs))

	sigs := db.Signatures()
	require.Len(t, sigs, 3)
	require.Equal(t, "png", sigs[0].Ext())
	require.Equal(t, "jpg", sigs[1].Ext())
	require.Equal(t, "jpeg", sigs[2].Ext())

	out := logs.String()
	require.Equal(t, 3, strings.Count(out, "skipping malformed signature"))
	require.Contains(t, out, "line=4")
	require.Contains(t, out, "line=5")
	require.Contains(t, out, "line=8")
	require.Contains(t, out, "count=3")
}

func TestLoad_BOMAndCRLF(t *testing.T) {
	src := "\ufeffpng;89504E47;PNG Image\r\nzip;504B0304;ZIP Archive\r\n"

	db := signature.Load(strings.NewReader(src), nil)

	sigs := db.Signatures()
	require.Len(t, sigs, 2)
	require.Equal(t, "png", sigs[0].Ext())
	require.Equal(t, "ZIP Archive", sigs[1].Description())
}

func TestLoad_ReadError(t *testing.T) {
	r := io.MultiReader(
		strings.NewReader("png;89504E47;PNG Image\n"),
		iotest.ErrReader(errors.New("device failure")),
	)

	var logs bytes.Buffer
	db := signature.Load(r, captureLogger(&logs))

	require.Equal(t, 1, db.Len())
	require.Contains(t, logs.String(), "failed to read signature database")
	require.Contains(t, logs.String(), "device failure")
}

func TestLoad_LongLines(t *testing.T) {
	src := "# " + strings.Repeat("x", 70000) + "\n" +
		"big;" + strings.Repeat("AB", 40000) + ";long pattern\n" +
		"png;89504E47;PNG"

	db := signature.Load(strings.NewReader(src), nil)

	sigs := db.Signatures()
	require.Len(t, sigs, 2)
	require.Equal(t, 40000, sigs[0].Len())
	require.Equal(t, "png", sigs[1].Ext())
	require.Equal(t, []string{"png"}, db.Match([]byte{0x89, 0x50, 0x4e, 0x47, 0x0d}).Extensions)
}

func TestLoad_Empty(t *testing.T) {
	db := signature.Load(strings.NewReader(""), nil)
	require.Equal(t, 0, db.Len())
	require.True(t, db.Match([]byte("anything")).Empty())
}

func TestLoadFile(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "/etc/signatures.db", []byte("pdf;25504446;PDF\n"), 0644))

	db := signature.LoadFile(fsys, "/etc/signatures.db", nil)
	require.Equal(t, 1, db.Len())
	require.Equal(t, []string{"pdf"}, db.Match([]byte("%PDF-1.7")).Extensions)
}

func TestLoadFile_Missing(t *testing.T) {
	var logs bytes.Buffer
	db := signature.LoadFile(memfs.New(), "/missing.db", captureLogger(&logs))

	require.NotNil(t, db)
	require.Equal(t, 0, db.Len())
	require.Contains(t, logs.String(), "unable to load signature database")
	require.Contains(t, logs.String(), string(perrors.CodeNotFound))
}
