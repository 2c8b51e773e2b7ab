package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/organizeja/gestor-api/internal/config"
	"github.com/organizeja/gestor-api/internal/httperr"
)

// ======================================================================
// ARMAZENAMENTO - upload de logos das empresas (S3 compatível)
// ======================================================================

const (
	// Logos são reduzidas a no máximo 512px no maior lado antes do upload.
	maxLogoDimension = 512

	// Limite de 5MB para o arquivo enviado.
	MaxLogoBytes = 5 << 20
)

type s3Putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type LogoStore struct {
	client    s3Putter
	bucket    string
	publicURL string
}

func NewLogoStore(cfg *config.Config) *LogoStore {
	client := s3.New(s3.Options{
		Region:       cfg.S3Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		BaseEndpoint: endpointOrNil(cfg.S3Endpoint),
		UsePathStyle: cfg.S3Endpoint != "",
	})

	return &LogoStore{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}
}

// Upload decodifica a imagem (jpeg/png), redimensiona e grava como webp.
// Retorna a URL pública do objeto.
func (ls *LogoStore) Upload(ctx context.Context, companyID uuid.UUID, r io.Reader) (string, error) {
	img, _, err := image.Decode(io.LimitReader(r, MaxLogoBytes))
	if err != nil {
		return "", httperr.ErrBusiness("invalid_image")
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("storage: codificar webp: %w", err)
	}

	key := fmt.Sprintf("logos/%s/%s.webp", companyID, uuid.New())

	_, err = ls.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ls.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("storage: enviar logo: %w", err)
	}

	return fmt.Sprintf("%s/%s", ls.publicURL, key), nil
}

func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxLogoDimension && h <= maxLogoDimension {
		return img
	}

	if w >= h {
		h = h * maxLogoDimension / w
		w = maxLogoDimension
	} else {
		w = w * maxLogoDimension / h
		h = maxLogoDimension
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func endpointOrNil(endpoint string) *string {
	if endpoint == "" {
		return nil
	}
	return aws.String(endpoint)
}
