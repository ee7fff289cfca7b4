package utils

import (
	"bytes"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// S3Storage uploads complaint attachments to an S3-compatible bucket.
type S3Storage struct {
	client    *s3.S3
	bucket    string
	publicURL string
}

func NewS3Storage(accessKey, secretKey, region, endpoint, bucket, publicURL string) *S3Storage {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(
			accessKey, secretKey, "",
		),
	}))
	return &S3Storage{
		client:    s3.New(sess),
		bucket:    bucket,
		publicURL: publicURL,
	}
}

// Upload stores the file under folder/<uuid><ext> and returns its URL.
// The original file name only contributes its extension.
func (s *S3Storage) Upload(file []byte, fileName, folder, contentType string) (string, error) {
	objectName := uuid.New().String() + path.Ext(fileName)
	filePath := fmt.Sprintf("%s/%s", folder, objectName)

	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, filePath), nil
}
