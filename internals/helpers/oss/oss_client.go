// file: internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"pesantrenku_backend/internals/configs"
)

// batas ukuran file bukti (guard ringan di sisi service)
const MaxUploadSize = int64(5 * 1024 * 1024)

// dimensi maksimum foto bukti sebelum di-encode WebP
const (
	maxBuktiWidth  = 1600
	maxBuktiHeight = 1600
	webpQuality    = 80
)

type Service struct {
	bucket    *alioss.Bucket
	publicURL string // mis. https://bucket.oss-ap-southeast-5.aliyuncs.com
}

// NewServiceFromEnv membangun klien OSS dari ENV:
// OSS_ENDPOINT, OSS_ACCESS_KEY_ID, OSS_ACCESS_KEY_SECRET, OSS_BUCKET, OSS_BUCKET_URL
func NewServiceFromEnv() (*Service, error) {
	endpoint := configs.GetEnv("OSS_ENDPOINT")
	keyID := configs.GetEnv("OSS_ACCESS_KEY_ID")
	keySecret := configs.GetEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := configs.GetEnv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("konfigurasi OSS belum lengkap")
	}

	client, err := alioss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	pub := strings.TrimRight(configs.GetEnv("OSS_BUCKET_URL"), "/")
	if pub == "" {
		pub = fmt.Sprintf("https://%s.%s", bucketName, strings.TrimPrefix(endpoint, "https://"))
	}
	return &Service{bucket: bucket, publicURL: pub}, nil
}

// UploadBuktiImage menerima foto bukti (jpeg/png/webp), resize keep-aspect,
// encode ke WebP, lalu upload ke dir yang diminta. Mengembalikan URL publik.
func (s *Service) UploadBuktiImage(dir string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", fmt.Errorf("file terlalu besar (maks %d MB)", MaxUploadSize/1024/1024)
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	all, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	img, err := decodeImage(all, fh.Filename)
	if err != nil {
		return "", err
	}

	// resize keep-aspect hanya kalau melebihi batas
	b := img.Bounds()
	if b.Dx() > maxBuktiWidth || b.Dy() > maxBuktiHeight {
		img = imaging.Fit(img, maxBuktiWidth, maxBuktiHeight, imaging.CatmullRom)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", err
	}

	key := buildObjectKey(dir, fh.Filename, ".webp")
	if err := s.bucket.PutObject(key, bytes.NewReader(buf.Bytes()),
		alioss.ContentType("image/webp"),
		alioss.ContentDisposition("inline"),
	); err != nil {
		return "", err
	}
	return s.publicURL + "/" + key, nil
}

// DeleteByPublicURL menghapus objek dari URL publik yang tersimpan di kolom bukti.
// Error diabaikan caller kalau file memang sudah tidak ada.
func (s *Service) DeleteByPublicURL(publicURL string) error {
	u, err := url.Parse(publicURL)
	if err != nil {
		return err
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return fmt.Errorf("URL bukti tidak valid: %s", publicURL)
	}
	return s.bucket.DeleteObject(key)
}

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	// fallback by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("format tidak didukung: %s", ct)
}

func buildObjectKey(dir, filename, forceExt string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = slugify(base)
	if base == "" {
		base = "file"
	}
	ts := time.Now().Format("20060102-150405")
	return fmt.Sprintf("%s/%s-%s-%s%s", strings.Trim(dir, "/"), ts, base, randHex(4), forceExt)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			sb.WriteRune('-')
		}
	}
	return strings.Trim(sb.String(), "-")
}

func randHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
