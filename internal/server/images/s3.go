package images

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/server/provider"
	"github.com/google/uuid"
)

const s3Scheme = "s3://"

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type getPresigner interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type S3Options struct {
	Bucket       string
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	URLValidity  time.Duration
}

// S3Store writes photos to an S3-compatible bucket (MinIO in development)
// and hands out presigned GET URLs. References look like s3://bucket/key.
type S3Store struct {
	bucket   string
	validity time.Duration
	put      objectPutter
	presign  getPresigner
	now      func() time.Time
}

func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		bucket:   opts.Bucket,
		validity: opts.URLValidity,
		put:      client,
		presign:  s3.NewPresignClient(client),
		now:      time.Now,
	}, nil
}

func (s *S3Store) key(ownerID string) string {
	d := s.now().UTC()
	return fmt.Sprintf("users/%s/%d/%02d/%02d/%s", ownerID, d.Year(), d.Month(), d.Day(), uuid.NewString())
}

func (s *S3Store) Put(ctx context.Context, ownerID string, img provider.Image) (string, error) {
	key := s.key(ownerID)
	_, err := s.put.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(img.Data),
		ContentType: aws.String(img.MIMEType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: put object: %w", common.ErrStore, err)
	}
	return s3Scheme + s.bucket + "/" + key, nil
}

// URL presigns object references and passes any other reference through,
// so records written before a bucket was configured still resolve.
func (s *S3Store) URL(ctx context.Context, ref string) (string, error) {
	if !isObjectRef(ref) {
		return ref, nil
	}
	bucket, key, ok := strings.Cut(strings.TrimPrefix(ref, s3Scheme), "/")
	if !ok || key == "" {
		return "", fmt.Errorf("%w: malformed object reference %q", common.ErrorValidation, ref)
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.validity))
	if err != nil {
		return "", fmt.Errorf("%w: presign: %w", common.ErrStore, err)
	}
	return req.URL, nil
}
