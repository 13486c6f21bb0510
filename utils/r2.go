package utils

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// UploadKind selects the destination folder for an uploaded file.
type UploadKind string

const (
	UploadHeroImage UploadKind = "image"
	UploadResume    UploadKind = "resume"
	UploadCover     UploadKind = "cover"
)

var (
	r2Client     *s3.Client
	r2Bucket     string
	r2PublicBase string
	initOnce     sync.Once
)

// initR2 initializes the R2 client once
func initR2() error {
	var initErr error
	initOnce.Do(func() {
		r2Bucket = os.Getenv("R2_BUCKET")
		accountID := os.Getenv("R2_ACCOUNT_ID")
		r2PublicBase = os.Getenv("R2_PUBLIC_URL")

		if r2Bucket == "" || accountID == "" || r2PublicBase == "" {
			initErr = fmt.Errorf("missing required R2 environment variables")
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
				os.Getenv("R2_ACCESS_KEY_ID"),
				os.Getenv("R2_SECRET_ACCESS_KEY"),
				"",
			)),
			config.WithEndpointResolverWithOptions(customResolver),
		)
		if err != nil {
			initErr = fmt.Errorf("failed to load R2 config: %v", err)
			return
		}

		r2Client = s3.NewFromConfig(cfg)
	})
	return initErr
}

// uploadFolder maps the logical kind to a bucket folder.
func uploadFolder(kind UploadKind) string {
	switch kind {
	case UploadResume:
		return "portfolio_resumes"
	case UploadCover:
		return "portfolio_articles"
	default:
		return "portfolio_hero"
	}
}

// objectKey builds a unique key from the original filename: the extension is
// stripped, whitespace runs become hyphens, and a timestamp prefix keeps
// repeated uploads of the same file from colliding.
func objectKey(filename string, now time.Time) string {
	name := filepath.Base(filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Join(strings.Fields(name), "-")
	return fmt.Sprintf("%d-%s", now.UnixMilli(), name)
}

// UploadToR2 forwards a file to R2 and returns its public URL.
func UploadToR2(fileBytes []byte, filename string, kind UploadKind) (string, error) {
	if err := initR2(); err != nil {
		return "", err
	}

	folder := uploadFolder(kind)
	name := objectKey(filename, time.Now())
	key := folder + "/" + name
	contentType := http.DetectContentType(fileBytes)

	_, err := r2Client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(r2Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(fileBytes),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %v", err)
	}

	fileURL := fmt.Sprintf("%s/%s/%s", strings.TrimRight(r2PublicBase, "/"), folder, url.PathEscape(name))
	return fileURL, nil
}
