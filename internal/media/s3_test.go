package media_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"

	"golf-match-api/internal/media"
)

func offline() *media.Photos {
	cfg := aws.Config{
		Region: "us-east-1",
		Credentials: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{AccessKeyID: "AKIDTEST", SecretAccessKey: "secret"}, nil
		}),
	}
	return media.NewFromConfig(cfg, "golf-photos")
}

func TestUploadURL(t *testing.T) {
	up, err := offline().UploadURL(context.Background(), "actor-1", "image/png")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(up.Key, "profile-pics/actor-1/") || !strings.HasSuffix(up.Key, ".png") {
		t.Errorf("unexpected key %q", up.Key)
	}
	u, err := url.Parse(up.URL)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(u.Host+u.Path, "golf-photos") {
		t.Errorf("bucket missing from %s", up.URL)
	}
	q := u.Query()
	if q.Get("X-Amz-Signature") == "" || q.Get("X-Amz-Expires") != "300" {
		t.Errorf("not a presigned url: %s", up.URL)
	}
}

func TestUploadURLRejectsNonImage(t *testing.T) {
	_, err := offline().UploadURL(context.Background(), "actor-1", "application/pdf")
	if !errors.Is(err, media.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestReadURL(t *testing.T) {
	raw, err := offline().ReadURL(context.Background(), "profile-pics/actor-1/x.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(raw, "x.jpg") || !strings.Contains(raw, "X-Amz-Signature") {
		t.Errorf("unexpected url %s", raw)
	}
}
