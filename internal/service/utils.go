package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/nfnt/resize"
	"github.com/niktin06sash/PhotoAlbum_service/internal/erro"
)

const thumbnailSize = 200
const thumbnailSuffix = "_thumb.jpg"

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

func contentTypeByExtension(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	contenttype, ok := allowedExtensions[ext]
	return contenttype, ok
}
func extensionByFilename(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// makeThumbnail decodes the original, center-crops it to a square and
// scales it down to 200x200. Thumbnails are always stored as JPEG no
// matter the source format.
func makeThumbnail(file []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf(erro.ErrorDecodeImage, err)
	}
	bounds := img.Bounds()
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}
	x0 := bounds.Min.X + (bounds.Dx()-side)/2
	y0 := bounds.Min.Y + (bounds.Dy()-side)/2
	if sub, ok := img.(subImager); ok {
		img = sub.SubImage(image.Rect(x0, y0, x0+side, y0+side))
	}
	thumb := resize.Resize(thumbnailSize, thumbnailSize, img, resize.Lanczos3)
	var buf bytes.Buffer
	err = jpeg.Encode(&buf, thumb, nil)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTempFile(name string, data []byte) (string, error) {
	tempfile := filepath.Join(os.TempDir(), name)
	err := os.WriteFile(tempfile, data, 0644)
	if err != nil {
		return "", err
	}
	return tempfile, nil
}

// tempFileReader streams a downloaded blob and removes the temp file
// once the caller is done with it.
type tempFileReader struct {
	file *os.File
}

func (t *tempFileReader) Read(p []byte) (int, error) {
	return t.file.Read(p)
}
func (t *tempFileReader) Close() error {
	err := t.file.Close()
	os.Remove(t.file.Name())
	return err
}
func openTempFile(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &tempFileReader{file: file}, nil
}
