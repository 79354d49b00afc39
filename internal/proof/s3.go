package proof

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/earnpro/internal/config"
)

const presignExpiry = 7 * 24 * time.Hour

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type objectPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Store writes proofs to an S3-compatible bucket. References are public URLs
// when a public base is configured and presigned GET URLs otherwise.
type S3Store struct {
	client    objectPutter
	presigner objectPresigner
	bucket    string
	publicURL string
	maxBytes  int64
}

func NewS3Store(ctx context.Context, cfg config.Proof) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		publicURL: cfg.PublicURL,
		maxBytes:  cfg.MaxBytes,
	}, nil
}

func objectKey(u Upload) string {
	return fmt.Sprintf("proofs/%s/%s/%s%s", u.UID, u.TaskID, uuid.NewString(), extension(u))
}

func (s *S3Store) Put(ctx context.Context, u Upload) (string, error) {
	if err := Validate(&u, s.maxBytes); err != nil {
		return "", err
	}

	key := objectKey(u)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(u.Body),
		ContentType: aws.String(u.ContentType),
	})
	if err != nil {
		zap.L().Error("can't upload proof", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("upload proof: %w", err)
	}

	if s.publicURL != "" {
		return s.publicURL + "/" + key, nil
	}
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(po *s3.PresignOptions) {
		po.Expires = presignExpiry
	})
	if err != nil {
		return "", fmt.Errorf("presign proof: %w", err)
	}
	return req.URL, nil
}
