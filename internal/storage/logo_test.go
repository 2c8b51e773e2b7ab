package storage

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/organizeja/gestor-api/internal/httperr"
)

type fakePutter struct {
	input *s3.PutObjectInput
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	return &s3.PutObjectOutput{}, nil
}

func pngImage(w, h int) []byte {
	var buf bytes.Buffer
	_ = png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)))
	return buf.Bytes()
}

func TestUpload_EncodesWebpAndReturnsPublicURL(t *testing.T) {
	putter := &fakePutter{}
	ls := &LogoStore{client: putter, bucket: "logos", publicURL: "https://cdn.example"}

	companyID := uuid.New()
	url, err := ls.Upload(context.Background(), companyID, bytes.NewReader(pngImage(64, 64)))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if putter.input == nil {
		t.Fatal("nothing sent to the bucket")
	}
	if got := *putter.input.ContentType; got != "image/webp" {
		t.Fatalf("expected image/webp, got %s", got)
	}
	key := *putter.input.Key
	if !strings.HasPrefix(key, "logos/"+companyID.String()+"/") || !strings.HasSuffix(key, ".webp") {
		t.Fatalf("unexpected object key %q", key)
	}
	if url != "https://cdn.example/"+key {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestUpload_RejectsNonImagePayload(t *testing.T) {
	ls := &LogoStore{client: &fakePutter{}, bucket: "logos", publicURL: "https://cdn.example"}

	_, err := ls.Upload(context.Background(), uuid.New(), strings.NewReader("definitely not an image"))
	if !httperr.IsBusiness(err, "invalid_image") {
		t.Fatalf("expected invalid_image, got %v", err)
	}
}

func TestDownscale(t *testing.T) {
	// abaixo do limite passa intacta
	small := image.NewRGBA(image.Rect(0, 0, 100, 50))
	if got := downscale(small); got != small {
		t.Fatal("small image should not be rescaled")
	}

	// paisagem: maior lado vira 512
	wide := image.NewRGBA(image.Rect(0, 0, 2048, 1024))
	out := downscale(wide).Bounds()
	if out.Dx() != 512 || out.Dy() != 256 {
		t.Fatalf("expected 512x256, got %dx%d", out.Dx(), out.Dy())
	}

	// retrato
	tall := image.NewRGBA(image.Rect(0, 0, 600, 1200))
	out = downscale(tall).Bounds()
	if out.Dx() != 256 || out.Dy() != 512 {
		t.Fatalf("expected 256x512, got %dx%d", out.Dx(), out.Dy())
	}
}
