package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/workfolio/internal/common"
	sc "github.com/dmitrijs2005/workfolio/internal/server/config"
	"github.com/dmitrijs2005/workfolio/internal/server/models"
	"github.com/dmitrijs2005/workfolio/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ScreenshotService stores screenshot metadata in Postgres while the image
// bytes go straight to S3 through presigned URLs, so the gRPC server never
// proxies image payloads.
type ScreenshotService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	now         func() time.Time
}

func NewScreenshotService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *ScreenshotService {
	return &ScreenshotService{
		db:          db,
		repomanager: repomanager,
		config:      config,
		now:         time.Now,
	}
}

// GetRandomStorageKey builds an object key under the user's prefix, so one
// user's screenshots never collide with another's.
func GetRandomStorageKey(userID string) string {
	return fmt.Sprintf("screenshots/%s/%d_%v.png", userID, time.Now().Unix(), uuid.New())
}

func (s *ScreenshotService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// BeginUpload verifies the user has an open session and presigns a PUT URL
// for the next screenshot. The agent uploads the image bytes directly to the
// returned URL and then calls Commit with the storage key.
func (s *ScreenshotService) BeginUpload(ctx context.Context, userID string) (string, string, error) {
	if _, err := s.repomanager.Sessions(s.db).GetOpenByUser(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", "", common.ErrNoActiveSession
		}
		return "", "", fmt.Errorf("error checking open session: %w", err)
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey(userID)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// Commit records an uploaded screenshot against the user's session and
// returns a presigned GET URL for viewing it. The session must belong to the
// calling user.
func (s *ScreenshotService) Commit(ctx context.Context, userID, sessionID, storageKey string) (*models.Screenshot, error) {
	session, err := s.repomanager.Sessions(s.db).GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading session: %w", err)
	}
	if session.UserID != userID {
		return nil, common.ErrorForbidden
	}

	url, err := s.getPresignedGetURL(ctx, storageKey)
	if err != nil {
		return nil, err
	}

	screenshot := &models.Screenshot{
		SessionID:  sessionID,
		StorageKey: storageKey,
		URL:        url,
		CapturedAt: s.now(),
	}
	created, err := s.repomanager.Screenshots(s.db).Create(ctx, screenshot)
	if err != nil {
		return nil, fmt.Errorf("error creating screenshot: %w", err)
	}
	return created, nil
}

// ListBySession returns a session's screenshots, oldest first. Employees may
// only list their own sessions; admins may list any.
func (s *ScreenshotService) ListBySession(ctx context.Context, userID, role, sessionID string) ([]*models.Screenshot, error) {
	session, err := s.repomanager.Sessions(s.db).GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading session: %w", err)
	}
	if session.UserID != userID && role != models.RoleAdmin {
		return nil, common.ErrorForbidden
	}

	list, err := s.repomanager.Screenshots(s.db).ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error listing screenshots: %w", err)
	}
	return list, nil
}

func (s *ScreenshotService) getPresignedGetURL(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.config.ScreenshotURLValidityDuration))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
