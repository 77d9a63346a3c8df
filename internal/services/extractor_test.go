package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextUnsupportedExtension(t *testing.T) {
	extractor := NewTextExtractor()

	assert.Empty(t, extractor.ExtractText("resume.txt"))
	assert.Empty(t, extractor.ExtractText("resume.doc"))
	assert.Empty(t, extractor.ExtractText("noextension"))
}

func TestExtractDocxBody(t *testing.T) {
	const body = `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` +
		`<w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph</w:t></w:r></w:p>` +
		`<w:tbl><w:tr>` +
		`<w:tc><w:p><w:r><w:t>Skill</w:t></w:r></w:p></w:tc>` +
		`<w:tc><w:p><w:r><w:t>Years</w:t></w:r></w:p></w:tc>` +
		`</w:tr><w:tr>` +
		`<w:tc><w:p><w:r><w:t>Python</w:t></w:r></w:p></w:tc>` +
		`<w:tc><w:p><w:r><w:t>5</w:t></w:r></w:p></w:tc>` +
		`</w:tr></w:tbl>` +
		`</w:body></w:document>`

	text := extractDocxBody(body)

	// Paragraphs come first in document order, then the table content.
	assert.Equal(t, "First paragraph\nSecond paragraph\nSkill Years \nPython 5 \n", text)
}

func TestExtractDocxBodyEmptyDocument(t *testing.T) {
	const body = `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body></w:body></w:document>`

	assert.Empty(t, extractDocxBody(body))
}
