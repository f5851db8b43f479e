package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/workfolio/internal/common"
	sc "github.com/dmitrijs2005/workfolio/internal/server/config"
	"github.com/dmitrijs2005/workfolio/internal/server/models"
)

func newScreenshotService(t *testing.T, rm *fakeRepoManager) (*ScreenshotService, *sql.DB) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	cfg := &sc.Config{
		S3Region:                      "us-east-1",
		S3RootUser:                    "minioadmin",
		S3RootPassword:                "minioadmin",
		S3BaseEndpoint:                "http://127.0.0.1:9000",
		S3Bucket:                      "screenshots",
		ScreenshotURLValidityDuration: 7 * 24 * time.Hour,
	}
	return NewScreenshotService(db, rm, cfg), db
}

func stubPresignSeams(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://minio/put/" + *in.Key}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://minio/get/" + *in.Key}, nil
	}
}

func TestGetRandomStorageKey_UserScoped(t *testing.T) {
	k1 := GetRandomStorageKey("u1")
	k2 := GetRandomStorageKey("u1")
	if k1 == k2 {
		t.Fatalf("keys not unique: %q", k1)
	}
	if !strings.HasPrefix(k1, "screenshots/u1/") || !strings.HasSuffix(k1, ".png") {
		t.Fatalf("unexpected key shape: %q", k1)
	}
}

func TestBeginUpload_RequiresOpenSession(t *testing.T) {
	rm := &fakeRepoManager{s: &fakeSessionsRepo{openErr: common.ErrorNotFound}}
	svc, db := newScreenshotService(t, rm)
	defer db.Close()

	if _, _, err := svc.BeginUpload(context.Background(), "u1"); !errors.Is(err, common.ErrNoActiveSession) {
		t.Fatalf("want ErrNoActiveSession, got %v", err)
	}
}

func TestBeginUpload_PresignsPut(t *testing.T) {
	stubPresignSeams(t)

	rm := &fakeRepoManager{s: &fakeSessionsRepo{openOut: &models.Session{ID: "s1", UserID: "u1"}}}
	svc, db := newScreenshotService(t, rm)
	defer db.Close()

	key, url, err := svc.BeginUpload(context.Background(), "u1")
	if err != nil {
		t.Fatalf("BeginUpload error: %v", err)
	}
	if !strings.HasPrefix(key, "screenshots/u1/") {
		t.Fatalf("unexpected key: %q", key)
	}
	if url != "http://minio/put/"+key {
		t.Fatalf("unexpected url: %q", url)
	}
}

func TestBeginUpload_PresignError(t *testing.T) {
	stubPresignSeams(t)
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-fail")
	}

	rm := &fakeRepoManager{s: &fakeSessionsRepo{openOut: &models.Session{ID: "s1"}}}
	svc, db := newScreenshotService(t, rm)
	defer db.Close()

	if _, _, err := svc.BeginUpload(context.Background(), "u1"); err == nil || err.Error() != "presign-fail" {
		t.Fatalf("want presign-fail, got %v", err)
	}
}

func TestCommit_RecordsScreenshot(t *testing.T) {
	stubPresignSeams(t)

	capturedAt := time.Date(2025, 3, 10, 11, 5, 0, 0, time.UTC)
	rm := &fakeRepoManager{
		s:  &fakeSessionsRepo{byIDOut: &models.Session{ID: "s1", UserID: "u1"}},
		sc: &fakeScreenshotsRepo{},
	}
	svc, db := newScreenshotService(t, rm)
	defer db.Close()
	svc.now = func() time.Time { return capturedAt }

	shot, err := svc.Commit(context.Background(), "u1", "s1", "screenshots/u1/key.png")
	if err != nil {
		t.Fatalf("Commit error: %v", err)
	}
	if shot.URL != "http://minio/get/screenshots/u1/key.png" {
		t.Fatalf("unexpected url: %q", shot.URL)
	}
	if !shot.CapturedAt.Equal(capturedAt) {
		t.Fatalf("captured at: %v", shot.CapturedAt)
	}
	if shot.SessionID != "s1" {
		t.Fatalf("session id: %q", shot.SessionID)
	}
}

func TestCommit_ForeignSessionForbidden(t *testing.T) {
	rm := &fakeRepoManager{
		s: &fakeSessionsRepo{byIDOut: &models.Session{ID: "s1", UserID: "someone-else"}},
	}
	svc, db := newScreenshotService(t, rm)
	defer db.Close()

	if _, err := svc.Commit(context.Background(), "u1", "s1", "k"); !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("want ErrorForbidden, got %v", err)
	}
}

func TestCommit_SessionNotFound(t *testing.T) {
	rm := &fakeRepoManager{s: &fakeSessionsRepo{byIDErr: common.ErrorNotFound}}
	svc, db := newScreenshotService(t, rm)
	defer db.Close()

	if _, err := svc.Commit(context.Background(), "u1", "missing", "k"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestListBySession_OwnershipAndAdmin(t *testing.T) {
	shots := []*models.Screenshot{{ID: "sc1"}, {ID: "sc2"}}

	// owner sees own session
	rm := &fakeRepoManager{
		s:  &fakeSessionsRepo{byIDOut: &models.Session{ID: "s1", UserID: "u1"}},
		sc: &fakeScreenshotsRepo{listOut: shots},
	}
	svc, db := newScreenshotService(t, rm)
	list, err := svc.ListBySession(context.Background(), "u1", models.RoleEmployee, "s1")
	if err != nil || len(list) != 2 {
		t.Fatalf("owner list: got (%v, %v)", list, err)
	}
	db.Close()

	// employee cannot see a foreign session
	rm = &fakeRepoManager{
		s:  &fakeSessionsRepo{byIDOut: &models.Session{ID: "s1", UserID: "u2"}},
		sc: &fakeScreenshotsRepo{listOut: shots},
	}
	svc, db = newScreenshotService(t, rm)
	if _, err := svc.ListBySession(context.Background(), "u1", models.RoleEmployee, "s1"); !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("want ErrorForbidden, got %v", err)
	}
	db.Close()

	// admin sees any session
	rm = &fakeRepoManager{
		s:  &fakeSessionsRepo{byIDOut: &models.Session{ID: "s1", UserID: "u2"}},
		sc: &fakeScreenshotsRepo{listOut: shots},
	}
	svc, db = newScreenshotService(t, rm)
	defer db.Close()
	list, err = svc.ListBySession(context.Background(), "u1", models.RoleAdmin, "s1")
	if err != nil || len(list) != 2 {
		t.Fatalf("admin list: got (%v, %v)", list, err)
	}
}
