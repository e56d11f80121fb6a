package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header plus IHDR chunk is enough for sniffing
var pngHeader = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4, 0x89,
}

func TestInspectAcceptsImage(t *testing.T) {
	m := MediaStore{MaxBytes: 1 << 20}
	u, err := m.inspect(bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "image/png", u.MIME)
	assert.Equal(t, ".png", u.Extension)
}

func TestInspectRejectsText(t *testing.T) {
	m := MediaStore{MaxBytes: 1 << 20}
	_, err := m.inspect(strings.NewReader("hello, not an image"))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestInspectRejectsOversize(t *testing.T) {
	m := MediaStore{MaxBytes: 8}
	_, err := m.inspect(bytes.NewReader(pngHeader))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestWriteURLAndRemove(t *testing.T) {
	root := t.TempDir()
	m := MediaStore{Root: root, URLPrefix: "/media/"}

	rel, err := m.Write(CoverNamespace, Upload{Data: pngHeader, Extension: ".png"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, CoverNamespace+"/"))
	assert.True(t, strings.HasSuffix(rel, ".png"))

	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "/media/"+rel, m.URL(rel))

	require.NoError(t, m.Remove(rel))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, m.Remove(rel))
}
