package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stylewriter/internal/domain"
	"stylewriter/internal/guidelines"
	"stylewriter/internal/llm"
	"stylewriter/internal/port"
	"stylewriter/internal/report"
	"stylewriter/internal/service"
	"stylewriter/mocks"
)

const rewriteOutput = "I. SCOPE OF EXAMINATION\n\nThe Bank's risk management is assessed as ACCEPTABLE."

type rewriteFixture struct {
	svc       service.RewriteService
	styleRepo *mocks.MockStyleRepo
	repo      *mocks.MockRewriteRepo
	model     *mocks.MockChatModel
	storage   *mocks.MockObjectStorage
}

func setupRewriteService(withStorage bool) *rewriteFixture {
	f := &rewriteFixture{
		styleRepo: new(mocks.MockStyleRepo),
		repo:      new(mocks.MockRewriteRepo),
		model:     new(mocks.MockChatModel),
	}
	exporter := report.NewExporter(nil, report.WithClock(func() time.Time {
		return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	}))
	var storage port.ObjectStorage
	if withStorage {
		f.storage = new(mocks.MockObjectStorage)
		storage = f.storage
	}
	f.svc = service.NewRewriteService(f.styleRepo, f.repo, f.model, guidelines.Default(),
		service.NewExportService(exporter), storage, service.RewriteOptions{
			Temperature:   0.7,
			MaxTokens:     4096,
			Bucket:        "artifacts",
			PresignExpiry: 900,
		})
	return f
}

// expectKeys makes the storage mock build keys the way the S3 client does.
func (f *rewriteFixture) expectKeys() {
	for _, ext := range []string{".docx", ".pdf"} {
		ext := ext
		f.storage.On("Key", mock.MatchedBy(func(parts []string) bool {
			return len(parts) == 3 && parts[0] == "rewrites" && strings.HasSuffix(parts[2], ext)
		})).Return("exports/rewrites/stored" + ext)
	}
}

func memoStyle() *domain.Style {
	return &domain.Style{
		ID:      uuid.New(),
		Name:    "Exam Memo",
		Style:   "- Formal tone",
		Example: "Example body",
	}
}

func TestRewriteService_Rewrite_WithoutStorage(t *testing.T) {
	f := setupRewriteService(false)
	ctx := context.Background()
	style := memoStyle()

	f.styleRepo.On("GetByName", ctx, "Exam Memo").Return(style, nil)
	f.model.On("Complete", ctx, mock.MatchedBy(func(req port.ChatRequest) bool {
		system := req.Messages[0].Content
		return req.Temperature == 0.7 && req.MaxTokens == 4096 &&
			strings.Contains(system, "<writingStyle>- Formal tone</writingStyle>") &&
			strings.Contains(system, "<writingExample>Example body</writingExample>") &&
			strings.Contains(system, "MAXIMUM OF 20 WORDS") &&
			req.Messages[1].Content == "draft text"
	})).Return(&port.ChatResponse{Text: rewriteOutput, ModelUsed: "claude-sonnet-4-20250514"}, nil)
	f.repo.On("Create", ctx, mock.AnythingOfType("*domain.Rewrite")).Return(nil)

	res, err := f.svc.Rewrite(ctx, &service.RewriteInput{
		Content:         "draft text",
		StyleName:       "Exam Memo",
		Guidelines:      []string{"NUMBERS", "ACRONYMS AND ABBREVIATIONS"},
		MaxOutputLength: 5,
	})

	require.NoError(t, err)
	rw := res.Rewrite
	assert.Equal(t, style.ID, rw.StyleID)
	assert.Equal(t, 20, rw.MaxOutputLength)
	assert.Equal(t, "Rewrite • Exam Memo", rw.Title)
	assert.Regexp(t, `^rewrite_Exam_Memo_\d{8}-\d{6}$`, rw.BaseName)
	assert.Equal(t, rewriteOutput, rw.Output)
	assert.Equal(t, []string{"ACRONYMS AND ABBREVIATIONS", "NUMBERS"}, rw.GuidelineNames())

	require.Len(t, res.Artifacts, 2)
	assert.Equal(t, domain.ExportDOCX, res.Artifacts[0].Format)
	assert.Equal(t, domain.ExportPDF, res.Artifacts[1].Format)
	assert.Equal(t, rw.BaseName+".pdf", res.Artifacts[1].FileName)
	assert.Positive(t, res.Artifacts[0].Size)
	assert.Empty(t, res.Artifacts[0].URL)

	require.Len(t, res.Outline, 2)
	assert.Equal(t, report.KindMajorHeader, res.Outline[0].Kind)
	assert.Equal(t, report.KindProse, res.Outline[1].Kind)
	f.repo.AssertExpectations(t)
}

func TestRewriteService_Rewrite_DefaultGuidelines(t *testing.T) {
	f := setupRewriteService(false)
	ctx := context.Background()
	lib := guidelines.Default()

	f.styleRepo.On("GetByName", ctx, "Exam Memo").Return(memoStyle(), nil)
	f.model.On("Complete", ctx, mock.MatchedBy(func(req port.ChatRequest) bool {
		return strings.Contains(req.Messages[0].Content, "MAXIMUM OF 1000 WORDS")
	})).Return(&port.ChatResponse{Text: "ok"}, nil)
	f.repo.On("Create", ctx, mock.Anything).Return(nil)

	res, err := f.svc.Rewrite(ctx, &service.RewriteInput{Content: "draft", StyleName: "Exam Memo"})

	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal(res.Rewrite.Guidelines, &names))
	assert.ElementsMatch(t, lib.DefaultSelected, names)
}

func TestRewriteService_Rewrite_Uploads(t *testing.T) {
	f := setupRewriteService(true)
	ctx := context.Background()

	f.styleRepo.On("GetByName", ctx, "Exam Memo").Return(memoStyle(), nil)
	f.model.On("Complete", ctx, mock.Anything).Return(&port.ChatResponse{Text: rewriteOutput}, nil)
	f.repo.On("Create", ctx, mock.MatchedBy(func(rw *domain.Rewrite) bool {
		return rw.DocxKey == "exports/rewrites/stored.docx" && rw.PdfKey == "exports/rewrites/stored.pdf"
	})).Return(nil)
	f.expectKeys()
	f.storage.On("Upload", ctx, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "artifacts" &&
			strings.HasPrefix(in.Key, "exports/rewrites/") &&
			strings.Contains(in.ContentDisposition, "attachment; filename=")
	})).Return(&port.UploadOutput{ETag: "etag"}, nil).Twice()
	f.storage.On("GetPresignedURL", ctx, "artifacts", mock.AnythingOfType("string"), int64(900)).
		Return("https://signed.example/file", nil).Twice()

	res, err := f.svc.Rewrite(ctx, &service.RewriteInput{Content: "draft", StyleName: "Exam Memo"})

	require.NoError(t, err)
	for _, art := range res.Artifacts {
		assert.Equal(t, "https://signed.example/file", art.URL)
		assert.Equal(t, "exports/rewrites/stored."+string(art.Format), art.S3Key)
	}
	assert.Equal(t, "exports/rewrites/stored.pdf", res.Rewrite.ArtifactKey(domain.ExportPDF))
	f.repo.AssertExpectations(t)
	f.storage.AssertExpectations(t)
}

func TestRewriteService_Rewrite_UploadFailureKeepsRewrite(t *testing.T) {
	f := setupRewriteService(true)
	ctx := context.Background()

	f.styleRepo.On("GetByName", ctx, "Exam Memo").Return(memoStyle(), nil)
	f.model.On("Complete", ctx, mock.Anything).Return(&port.ChatResponse{Text: rewriteOutput}, nil)
	f.repo.On("Create", ctx, mock.MatchedBy(func(rw *domain.Rewrite) bool {
		return rw.DocxKey == "" && rw.PdfKey == ""
	})).Return(nil)
	f.expectKeys()
	f.storage.On("Upload", ctx, mock.Anything).Return(nil, errors.New("access denied"))

	res, err := f.svc.Rewrite(ctx, &service.RewriteInput{Content: "draft", StyleName: "Exam Memo"})

	require.NoError(t, err)
	require.Len(t, res.Artifacts, 2)
	assert.Empty(t, res.Artifacts[0].S3Key)
	assert.Empty(t, res.Artifacts[0].URL)
	f.storage.AssertNumberOfCalls(t, "Upload", 1)
	f.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	f.storage.AssertNotCalled(t, "GetPresignedURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.repo.AssertExpectations(t)
}

func TestRewriteService_Rewrite_SecondUploadFailureDeletesFirst(t *testing.T) {
	f := setupRewriteService(true)
	ctx := context.Background()

	f.styleRepo.On("GetByName", ctx, "Exam Memo").Return(memoStyle(), nil)
	f.model.On("Complete", ctx, mock.Anything).Return(&port.ChatResponse{Text: rewriteOutput}, nil)
	f.repo.On("Create", ctx, mock.MatchedBy(func(rw *domain.Rewrite) bool {
		return rw.DocxKey == "" && rw.PdfKey == ""
	})).Return(nil)
	f.expectKeys()
	f.storage.On("Upload", ctx, mock.MatchedBy(func(in port.UploadInput) bool {
		return strings.HasSuffix(in.Key, ".docx")
	})).Return(&port.UploadOutput{}, nil).Once()
	f.storage.On("Upload", ctx, mock.MatchedBy(func(in port.UploadInput) bool {
		return strings.HasSuffix(in.Key, ".pdf")
	})).Return(nil, errors.New("timeout")).Once()
	f.storage.On("Delete", ctx, "artifacts", "exports/rewrites/stored.docx").Return(nil).Once()

	res, err := f.svc.Rewrite(ctx, &service.RewriteInput{Content: "draft", StyleName: "Exam Memo"})

	require.NoError(t, err)
	for _, art := range res.Artifacts {
		assert.Empty(t, art.S3Key)
		assert.Empty(t, art.URL)
	}
	f.storage.AssertExpectations(t)
	f.storage.AssertNotCalled(t, "GetPresignedURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.repo.AssertExpectations(t)
}

func TestRewriteService_Rewrite_EmptyContent(t *testing.T) {
	f := setupRewriteService(false)

	_, err := f.svc.Rewrite(context.Background(), &service.RewriteInput{Content: "  ", StyleName: "Exam Memo"})

	assert.ErrorIs(t, err, domain.ErrEmptyContent)
	f.styleRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestRewriteService_Rewrite_UnknownStyle(t *testing.T) {
	f := setupRewriteService(false)
	ctx := context.Background()

	f.styleRepo.On("GetByName", ctx, "Missing").Return(nil, domain.ErrNotFound)

	_, err := f.svc.Rewrite(ctx, &service.RewriteInput{Content: "draft", StyleName: "Missing"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRewriteService_Rewrite_UnknownGuideline(t *testing.T) {
	f := setupRewriteService(false)
	ctx := context.Background()

	f.styleRepo.On("GetByName", ctx, "Exam Memo").Return(memoStyle(), nil)

	_, err := f.svc.Rewrite(ctx, &service.RewriteInput{
		Content:    "draft",
		StyleName:  "Exam Memo",
		Guidelines: []string{"NUMBERS", "EMOJI"},
	})

	assert.ErrorIs(t, err, domain.ErrUnknownGuideline)
	assert.Contains(t, err.Error(), "EMOJI")
	f.model.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestRewriteService_Rewrite_RateLimited(t *testing.T) {
	f := setupRewriteService(false)
	ctx := context.Background()

	f.styleRepo.On("GetByName", ctx, "Exam Memo").Return(memoStyle(), nil)
	f.model.On("Complete", ctx, mock.Anything).
		Return(nil, llm.NewRateLimitError("openai", errors.New("429"), 0))

	_, err := f.svc.Rewrite(ctx, &service.RewriteInput{Content: "draft", StyleName: "Exam Memo"})

	assert.ErrorIs(t, err, domain.ErrRateLimited)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRewriteService_Rewrite_PersistFailure(t *testing.T) {
	f := setupRewriteService(true)
	ctx := context.Background()

	f.styleRepo.On("GetByName", ctx, "Exam Memo").Return(memoStyle(), nil)
	f.model.On("Complete", ctx, mock.Anything).Return(&port.ChatResponse{Text: "ok"}, nil)
	f.repo.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))
	f.expectKeys()
	f.storage.On("Upload", ctx, mock.Anything).Return(&port.UploadOutput{}, nil).Twice()
	f.storage.On("Delete", ctx, "artifacts", "exports/rewrites/stored.docx").Return(nil).Once()
	f.storage.On("Delete", ctx, "artifacts", "exports/rewrites/stored.pdf").Return(errors.New("gone")).Once()

	_, err := f.svc.Rewrite(ctx, &service.RewriteInput{Content: "draft", StyleName: "Exam Memo"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating rewrite")
	f.storage.AssertExpectations(t)
	f.storage.AssertNotCalled(t, "GetPresignedURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRewriteService_List(t *testing.T) {
	f := setupRewriteService(false)
	ctx := context.Background()
	styleID := uuid.New()

	f.repo.On("ListByStyle", ctx, styleID, 0, 20).Return([]domain.Rewrite{{ID: uuid.New()}}, 1, nil)
	f.repo.On("List", ctx, 0, 20).Return([]domain.Rewrite{}, 0, nil)

	byStyle, total, err := f.svc.List(ctx, &styleID, 0, 20)
	require.NoError(t, err)
	assert.Len(t, byStyle, 1)
	assert.Equal(t, 1, total)

	_, total, err = f.svc.List(ctx, nil, 0, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
	f.repo.AssertExpectations(t)
}

func TestRewriteService_Download(t *testing.T) {
	f := setupRewriteService(false)
	ctx := context.Background()
	rw := &domain.Rewrite{
		ID:       uuid.New(),
		Title:    "Rewrite • Exam Memo",
		BaseName: "rewrite_Exam_Memo_20250314-093000",
		Output:   rewriteOutput,
	}
	f.repo.On("GetByID", ctx, rw.ID).Return(rw, nil)

	dl, err := f.svc.Download(ctx, rw.ID, domain.ExportPDF)

	require.NoError(t, err)
	assert.Equal(t, "rewrite_Exam_Memo_20250314-093000.pdf", dl.FileName)
	assert.Equal(t, "application/pdf", dl.ContentType)
	assert.True(t, strings.HasPrefix(string(dl.Data), "%PDF-"))
}

func TestRewriteService_Download_Errors(t *testing.T) {
	f := setupRewriteService(false)
	ctx := context.Background()
	id := uuid.New()

	_, err := f.svc.Download(ctx, id, domain.ExportFormat("odt"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	f.repo.On("GetByID", ctx, id).Return(nil, domain.ErrNotFound)
	_, err = f.svc.Download(ctx, id, domain.ExportDOCX)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRewriteService_Download_ServesStoredArtifact(t *testing.T) {
	f := setupRewriteService(true)
	ctx := context.Background()
	rw := &domain.Rewrite{
		ID:       uuid.New(),
		Title:    "Rewrite • Exam Memo",
		BaseName: "rewrite_Exam_Memo_20250314-093000",
		Output:   rewriteOutput,
		DocxKey:  "exports/rewrites/x/rewrite_Exam_Memo_20250314-093000.docx",
	}
	f.repo.On("GetByID", ctx, rw.ID).Return(rw, nil)
	f.storage.On("Download", ctx, "artifacts", rw.DocxKey).Return([]byte("stored-docx"), nil).Once()

	dl, err := f.svc.Download(ctx, rw.ID, domain.ExportDOCX)
	require.NoError(t, err)
	assert.Equal(t, []byte("stored-docx"), dl.Data)
	assert.Equal(t, "rewrite_Exam_Memo_20250314-093000.docx", dl.FileName)

	// no stored pdf: rendered from the saved output
	dl, err = f.svc.Download(ctx, rw.ID, domain.ExportPDF)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dl.Data), "%PDF-"))
	f.storage.AssertExpectations(t)
}

func TestRewriteService_Download_StorageFailureReRenders(t *testing.T) {
	f := setupRewriteService(true)
	ctx := context.Background()
	rw := &domain.Rewrite{
		ID:       uuid.New(),
		Title:    "Rewrite • Exam Memo",
		BaseName: "rewrite_Exam_Memo_20250314-093000",
		Output:   rewriteOutput,
		PdfKey:   "exports/rewrites/x/rewrite_Exam_Memo_20250314-093000.pdf",
	}
	f.repo.On("GetByID", ctx, rw.ID).Return(rw, nil)
	f.storage.On("Download", ctx, "artifacts", rw.PdfKey).Return(nil, errors.New("no such key"))

	dl, err := f.svc.Download(ctx, rw.ID, domain.ExportPDF)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dl.Data), "%PDF-"))
	assert.Equal(t, "application/pdf", dl.ContentType)
}

func TestBaseNameAndTitle(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	assert.Equal(t, "rewrite_Exam_Memo_20250102-030405", service.BaseName(" Exam Memo ", at))
	assert.Equal(t, "rewrite_Style_20250102-030405", service.BaseName("", at))
	assert.Equal(t, "Rewrite • Selected Style", service.RewriteTitle("  "))
}
