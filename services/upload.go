package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/resorcera/course_api/shared"
	log "github.com/sirupsen/logrus"
)

const UPLOAD_SVC = "upload_svc"

var fileNameUnsafeRegex = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// PDFStore persists an uploaded PDF under name.
type PDFStore interface {
	SavePDF(ctx context.Context, name string, reader io.Reader, size int64) error
}

type DiskPDFStore struct {
	dir string
}

func NewDiskPDFStore(dir string) *DiskPDFStore {
	return &DiskPDFStore{dir: dir}
}

func (s *DiskPDFStore) SavePDF(_ context.Context, name string, reader io.Reader, _ int64) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, reader)
	return err
}

type UploadService struct {
	appContext.DefaultService

	uploadDir string
	store     PDFStore
	now       func() time.Time
}

func NewUploadService(store PDFStore, now func() time.Time) *UploadService {
	if now == nil {
		now = time.Now
	}
	return &UploadService{store: store, now: now}
}

func (svc UploadService) Id() string {
	return UPLOAD_SVC
}

func (svc *UploadService) Configure(ctx *appContext.Context) error {
	svc.uploadDir = os.Getenv("UPLOAD_DIR")
	if svc.uploadDir == "" {
		svc.uploadDir = filepath.Join("public", "uploads", "pdfs")
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *UploadService) Start() error {
	if svc.store != nil {
		return nil
	}

	if minioSvc, ok := svc.Service(MINIO_SVC).(*MinIOService); ok && minioSvc.Enabled() {
		svc.store = minioSvc
		return nil
	}
	svc.store = NewDiskPDFStore(svc.uploadDir)
	return nil
}

func (svc *UploadService) Shutdown() {}

// PDFFileName builds <courseId>-<unix ms>.pdf with the course id reduced to
// characters that are safe in a path or object key.
func PDFFileName(courseID string, now time.Time) string {
	safe := fileNameUnsafeRegex.ReplaceAllString(courseID, "")
	if safe == "" {
		safe = "course"
	}
	return fmt.Sprintf("%s-%d.pdf", safe, now.UnixMilli())
}

// UploadPDF stores a PDF that has already passed dto.ValidateFileUpload and
// returns the stored file name.
func (svc *UploadService) UploadPDF(ctx context.Context, courseID string, file *multipart.FileHeader) (string, error) {
	fileName := PDFFileName(courseID, svc.now())

	src, err := file.Open()
	if err != nil {
		return "", shared.NewInternalError(err, "Failed to open uploaded file")
	}
	defer src.Close()

	if err := svc.store.SavePDF(ctx, fileName, src, file.Size); err != nil {
		return "", shared.NewInternalError(err, "Failed to upload PDF")
	}

	log.WithFields(log.Fields{"file_name": fileName, "size": file.Size}).Info("PDF uploaded")
	return fileName, nil
}
