package signature_test

import (
	"encoding/hex"
	"testing"

	"github.com/ostafen/restorext/internal/signature"
	"github.com/stretchr/testify/require"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestSignature_Immutable(t *testing.T) {
	pattern := []byte{0x89, 0x50, 0x4e, 0x47}
	sig := signature.New("png", pattern, "PNG Image")

	pattern[0] = 0x00
	require.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, sig.Pattern())

	out := sig.Pattern()
	out[1] = 0x00
	require.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, sig.Pattern())

	require.Equal(t, "png", sig.Ext())
	require.Equal(t, "PNG Image", sig.Description())
	require.Equal(t, 4, sig.Len())
}

func TestSignature_Equal(t *testing.T) {
	a := signature.New("jpg", hexBytes(t, "FFD8FF"), "JPEG Image")

	require.True(t, a.Equal(signature.New("jpg", hexBytes(t, "ffd8ff"), "JPEG Image")))
	require.False(t, a.Equal(signature.New("jpeg", hexBytes(t, "FFD8FF"), "JPEG Image")))
	require.False(t, a.Equal(signature.New("jpg", hexBytes(t, "FFD8FFE0"), "JPEG Image")))
	require.False(t, a.Equal(signature.New("jpg", hexBytes(t, "FFD8FF"), "image/jpeg")))
}

func TestSignature_Matches(t *testing.T) {
	sig := signature.New("zip", hexBytes(t, "504B0304"), "ZIP Archive")

	require.True(t, sig.Matches(hexBytes(t, "504B0304")))
	require.True(t, sig.Matches(hexBytes(t, "504B030414000600")))
	require.False(t, sig.Matches(hexBytes(t, "504B03")))
	require.False(t, sig.Matches(hexBytes(t, "504B0305")))
	require.False(t, sig.Matches(nil))

	require.False(t, signature.New("any", nil, "").Matches([]byte("data")))
}

func TestSignature_String(t *testing.T) {
	sig := signature.New("pdf", []byte("%PDF"), "application/pdf")
	require.Equal(t, "pdf;25504446;application/pdf", sig.String())

	parsed, ok, err := signature.ParseLine(sig.String())
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, sig.Equal(parsed))
}
