package oss

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// OSS 勋章图片对象存储客户端
type OSS struct {
	cli *minio.Client
}

func newMinioClient(address, accessKey, secretKey string) (*minio.Client, error) {
	endpoint := address
	secure := false

	if strings.HasPrefix(address, "http://") || strings.HasPrefix(address, "https://") {
		u, err := url.Parse(address)
		if err != nil {
			return nil, err
		}
		if u.Path != "" && u.Path != "/" {
			return nil, errors.New("endpoint url cannot have fully qualified paths")
		}
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
		Region: "us-east-1",
	})
}

// NewOSSClient 创建对象存储客户端
func NewOSSClient(address, accessKey, secretKey string) (*OSS, error) {
	cli, err := newMinioClient(address, accessKey, secretKey)
	if err != nil {
		return nil, err
	}
	return &OSS{cli: cli}, nil
}

// CreateBucket 创建存储桶（如果不存在）
func (o *OSS) CreateBucket(ctx context.Context, bucket string) error {
	exists, err := o.cli.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if !exists {
		return o.cli.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
	}
	return nil
}

// UploadBadgeImage 上传勋章图片
func (o *OSS) UploadBadgeImage(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	_, err := o.cli.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// PresignGet 生成勋章图片预签名下载链接
func (o *OSS) PresignGet(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	reqParams := make(url.Values)
	u, err := o.cli.PresignedGetObject(ctx, bucket, key, ttl, reqParams)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
