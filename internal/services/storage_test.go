package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAllowedFile(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	assert.True(t, storage.IsAllowedFile("resume.pdf"))
	assert.True(t, storage.IsAllowedFile("resume.docx"))
	assert.True(t, storage.IsAllowedFile("RESUME.PDF"))
	assert.False(t, storage.IsAllowedFile("resume.doc"))
	assert.False(t, storage.IsAllowedFile("resume.txt"))
	assert.False(t, storage.IsAllowedFile("resume"))
}

func TestGetFilePath(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	assert.Equal(t, filepath.Join(dir, "resume_abc.pdf"), storage.GetFilePath("resume_abc.pdf"))
}

func TestEnsureUploadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "nested")
	storage := NewStorageService(dir)

	require.NoError(t, storage.EnsureUploadDir())

	// Idempotent
	require.NoError(t, storage.EnsureUploadDir())
}

func TestChunkText(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("first para\n\nsecond para\n\nthird para", 25)
	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 25)
	}

	// A single oversized paragraph gets truncated into its own chunk
	long := make([]byte, 50)
	for i := range long {
		long[i] = 'x'
	}
	chunks = chunker.ChunkText(string(long), 20)
	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0], 20)

	assert.Empty(t, chunker.ChunkText("", 100))
}
