package utils

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
)

// Logos wider than this get scaled down before upload; document headers only
// render the logo at 120px.
const maxLogoWidth = 480

var (
	s3Client   *s3.Client
	bucket     string
	publicBase string
	initOnce   sync.Once
)

// initStorage initializes the S3-compatible client once. Works against
// Cloudflare R2 or plain S3 depending on the endpoint env.
func initStorage() error {
	var initErr error
	initOnce.Do(func() {
		bucket = os.Getenv("STORAGE_BUCKET")
		accountID := os.Getenv("STORAGE_ACCOUNT_ID")
		publicBase = os.Getenv("STORAGE_PUBLIC_URL")

		if bucket == "" || accountID == "" || publicBase == "" {
			initErr = fmt.Errorf("missing required storage environment variables")
			return
		}

		endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)

		customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:           endpoint,
				SigningRegion: "auto",
			}, nil
		})

		cfg, err := config.LoadDefaultConfig(context.Background(),
			config.WithRegion("auto"),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				os.Getenv("STORAGE_ACCESS_KEY_ID"),
				os.Getenv("STORAGE_SECRET_ACCESS_KEY"),
				"",
			)),
			config.WithEndpointResolverWithOptions(customResolver),
		)
		if err != nil {
			initErr = fmt.Errorf("failed to load storage config: %v", err)
			return
		}

		s3Client = s3.NewFromConfig(cfg)
	})
	return initErr
}

// UploadLogo normalizes a logo image and uploads it under logos/, returning
// its public URL.
func UploadLogo(imageBytes []byte, filename string) (string, error) {
	if err := initStorage(); err != nil {
		return "", err
	}

	img, err := imaging.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return "", fmt.Errorf("unrecognized image: %v", err)
	}
	if img.Bounds().Dx() > maxLogoWidth {
		img = imaging.Resize(img, maxLogoWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", err
	}

	key := "logos/" + url.PathEscape(path.Base(filename))
	_, err = s3Client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload logo: %v", err)
	}

	fileURL := fmt.Sprintf("%s/%s", strings.TrimRight(publicBase, "/"), key)
	return fileURL, nil
}

// DeleteFromStorage deletes an uploaded object by its public URL.
func DeleteFromStorage(fileURL string) error {
	if err := initStorage(); err != nil {
		return err
	}

	u, err := url.Parse(fileURL)
	if err != nil {
		return fmt.Errorf("invalid file URL: %v", err)
	}
	key := strings.TrimPrefix(u.Path, "/")

	_, err = s3Client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %v", err)
	}
	return nil
}
