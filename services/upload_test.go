package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFFileName(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	assert.Equal(t, "go-basics-1700000000123.pdf", PDFFileName("go-basics", now))
	assert.Equal(t, "etcpasswd-1700000000123.pdf", PDFFileName("../etc/passwd", now))
	assert.Equal(t, "course-1700000000123.pdf", PDFFileName("../..", now))
}

func TestDiskPDFStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "pdfs")
	store := NewDiskPDFStore(dir)

	require.NoError(t, store.SavePDF(context.Background(), "a.pdf", strings.NewReader("%PDF-1.4"), 8))

	data, err := os.ReadFile(filepath.Join(dir, "a.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}
