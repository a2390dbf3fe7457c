package media

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const urlExpiry = 5 * time.Minute

var ErrUnsupportedType = errors.New("unsupported image type")

var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Upload is a presigned PUT the client performs itself.
type Upload struct {
	URL       string
	Key       string
	ExpiresAt time.Time
}

// Photos signs profile picture uploads into one bucket.
type Photos struct {
	presigner *s3.PresignClient
	bucket    string
	now       func() time.Time
}

// New loads the default AWS credential chain for region.
func New(ctx context.Context, region, bucket string) (*Photos, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}
	return NewFromConfig(cfg, bucket), nil
}

func NewFromConfig(cfg aws.Config, bucket string) *Photos {
	return &Photos{
		presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		bucket:    bucket,
		now:       time.Now,
	}
}

// UploadURL returns a URL the actor can PUT one image to.
func (p *Photos) UploadURL(ctx context.Context, actorID, contentType string) (*Upload, error) {
	ext, ok := imageTypes[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		return nil, ErrUnsupportedType
	}
	key := path.Join("profile-pics", actorID, p.now().UTC().Format("20060102150405")+"-"+uuid.New().String()+ext)

	req, err := p.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(urlExpiry))
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}
	return &Upload{URL: req.URL, Key: key, ExpiresAt: p.now().Add(urlExpiry)}, nil
}

// ReadURL returns a short-lived GET URL for a stored object.
func (p *Photos) ReadURL(ctx context.Context, key string) (string, error) {
	req, err := p.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(urlExpiry))
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}
	return req.URL, nil
}
