package usecases

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
)

func newMaterialFixture(t *testing.T) (StudyMaterialUsecase, string) {
	assetsDir := t.TempDir()
	store := repositories.NewEntityStore(func(m *entities.StudyMaterial) string { return m.ID }, nil, "")
	return NewStudyMaterialUsecase(store, assetsDir), assetsDir
}

func makeFileHeader(t *testing.T, name, contentType string, content []byte) *multipart.FileHeader {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, name))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func TestMaterialCreateWithoutFile(t *testing.T) {
	uc, _ := newMaterialFixture(t)

	material, err := uc.Create(entities.StudyMaterialRequest{Title: "Algorithms notes", Subject: "ALGO201"})
	require.NoError(t, err)
	assert.Equal(t, mockFileURL, material.FileURL)
	assert.NotEmpty(t, material.ID)

	_, err = uc.Create(entities.StudyMaterialRequest{})
	assert.Error(t, err)
}

func TestMaterialUpload(t *testing.T) {
	uc, assetsDir := newMaterialFixture(t)

	file := makeFileHeader(t, "notes.pdf", "application/pdf", []byte("%PDF-1.4 test"))
	material, err := uc.Upload(entities.StudyMaterialRequest{Title: "Notes"}, file, "http://localhost:8080")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(material.FileURL, "http://localhost:8080/assets/materials/"), material.FileURL)
	assert.Equal(t, "notes.pdf", material.FileName)
	assert.Equal(t, "application/pdf", material.FileType)

	// The file lands in the materials subdirectory of the assets dir.
	saved := strings.TrimPrefix(material.FileURL, "http://localhost:8080/assets/materials/")
	_, err = os.Stat(filepath.Join(assetsDir, "materials", saved))
	assert.NoError(t, err)
}

func TestMaterialUploadRejectsBadInput(t *testing.T) {
	uc, _ := newMaterialFixture(t)

	file := makeFileHeader(t, "notes.pdf", "application/pdf", []byte("x"))
	_, err := uc.Upload(entities.StudyMaterialRequest{}, file, "http://localhost:8080")
	assert.Error(t, err, "missing title")

	_, err = uc.Upload(entities.StudyMaterialRequest{Title: "Notes"}, nil, "http://localhost:8080")
	assert.Error(t, err, "missing file")

	exe := makeFileHeader(t, "virus.exe", "application/octet-stream", []byte("x"))
	_, err = uc.Upload(entities.StudyMaterialRequest{Title: "Notes"}, exe, "http://localhost:8080")
	assert.Error(t, err, "disallowed content type")
}
