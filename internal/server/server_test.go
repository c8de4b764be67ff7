package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/db"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/tailoring"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// fakeStore is an in-memory Store for handler tests
type fakeStore struct {
	resumes  map[uuid.UUID]*db.ResumeRecord
	postings map[uuid.UUID]*db.JobPostingRecord
	saved    []db.SavedJobRecord
	err      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		resumes:  make(map[uuid.UUID]*db.ResumeRecord),
		postings: make(map[uuid.UUID]*db.JobPostingRecord),
	}
}

func (f *fakeStore) CreateResume(_ context.Context, userID uuid.UUID, displayName, storagePath string) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	id := uuid.New()
	f.resumes[id] = &db.ResumeRecord{
		ID:          id,
		UserID:      userID,
		DisplayName: displayName,
		StoragePath: storagePath,
		ParseStatus: db.ParseStatusPending,
	}
	return id, nil
}

func (f *fakeStore) GetResume(_ context.Context, id uuid.UUID) (*db.ResumeRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	record, ok := f.resumes[id]
	if !ok {
		return nil, &db.NotFoundError{Kind: "resume", ID: id}
	}
	return record, nil
}

func (f *fakeStore) CreateJobPosting(_ context.Context, posting *types.JobPosting) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	id := uuid.New()
	f.postings[id] = &db.JobPostingRecord{ID: id, Posting: *posting}
	return id, nil
}

func (f *fakeStore) GetJobPosting(_ context.Context, id uuid.UUID) (*db.JobPostingRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	record, ok := f.postings[id]
	if !ok {
		return nil, &db.NotFoundError{Kind: "job posting", ID: id}
	}
	return record, nil
}

func (f *fakeStore) ListJobPostings(_ context.Context, _ int) ([]db.JobPostingRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]db.JobPostingRecord, 0, len(f.postings))
	for _, record := range f.postings {
		out = append(out, *record)
	}
	return out, nil
}

func (f *fakeStore) CreateApplication(_ context.Context, _, _, _ uuid.UUID) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	return uuid.New(), nil
}

func (f *fakeStore) SaveJob(_ context.Context, userID, jobID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, db.SavedJobRecord{ID: uuid.New(), UserID: userID, JobID: jobID})
	return nil
}

func (f *fakeStore) ListSavedJobs(_ context.Context, userID uuid.UUID) ([]db.SavedJobRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db.SavedJobRecord
	for _, record := range f.saved {
		if record.UserID == userID {
			out = append(out, record)
		}
	}
	return out, nil
}

// fakeIngestor records the requested resume ID
type fakeIngestor struct {
	raw  *types.RawParsedResume
	err  error
	last uuid.UUID
}

func (f *fakeIngestor) IngestResume(_ context.Context, id uuid.UUID) (*types.RawParsedResume, error) {
	f.last = id
	return f.raw, f.err
}

// fakeEngine echoes the input resume with a fixed final score
type fakeEngine struct {
	err error
}

func (f *fakeEngine) Tailor(_ context.Context, resume *types.Resume, _ *types.JobPosting, sections types.SectionSelection, _ []string, base *types.MatchData) (*tailoring.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	match := *base
	match.FinalScore = 9.0
	match.SummaryTailored = sections.Summary
	return &tailoring.Result{Resume: resume.Clone(), MatchData: &match}, nil
}

func newTestServer(t *testing.T, store Store, ingestor Ingestor, engine Tailorer) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	return New(
		Config{Port: 0, StorageBucket: "resumes"},
		Dependencies{Store: store, Ingestor: ingestor, Engine: engine},
	)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, newFakeStore(), &fakeIngestor{}, &fakeEngine{})

	rec := doJSON(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestHandleCreateResume(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, &fakeIngestor{}, &fakeEngine{})

	rec := doJSON(t, s, http.MethodPost, "/resumes", CreateResumeRequest{
		UserID:      uuid.New().String(),
		DisplayName: "My Resume",
		StoragePath: "user-1/resume.pdf",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp CreateResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.ParseStatus)
	assert.Len(t, store.resumes, 1)
}

func TestHandleCreateResumeFromFileURL(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, &fakeIngestor{}, &fakeEngine{})

	rec := doJSON(t, s, http.MethodPost, "/resumes", CreateResumeRequest{
		UserID:      uuid.New().String(),
		DisplayName: "My Resume",
		FileURL:     "https://files.example.com/storage/v1/object/public/resumes/user-1/resume.pdf",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	for _, record := range store.resumes {
		assert.Equal(t, "user-1/resume.pdf", record.StoragePath)
	}
}

func TestHandleCreateResumeValidation(t *testing.T) {
	s := newTestServer(t, newFakeStore(), &fakeIngestor{}, &fakeEngine{})

	// Missing both storage_path and file_url.
	rec := doJSON(t, s, http.MethodPost, "/resumes", CreateResumeRequest{
		UserID:      uuid.New().String(),
		DisplayName: "My Resume",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Invalid user id.
	rec = doJSON(t, s, http.MethodPost, "/resumes", CreateResumeRequest{
		UserID:      "not-a-uuid",
		DisplayName: "My Resume",
		StoragePath: "p",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetResume(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, &fakeIngestor{}, &fakeEngine{})

	id, err := store.CreateResume(context.Background(), uuid.New(), "My Resume", "p")
	require.NoError(t, err)

	rec := doJSON(t, s, http.MethodGet, "/resumes/"+id.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/resumes/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/resumes/nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleIngestResume(t *testing.T) {
	store := newFakeStore()
	id, err := store.CreateResume(context.Background(), uuid.New(), "My Resume", "p/resume.txt")
	require.NoError(t, err)

	tier := "regex"
	store.resumes[id].ParseStatus = db.ParseStatusCompleted
	store.resumes[id].ParseTier = &tier

	ingestor := &fakeIngestor{raw: &types.RawParsedResume{}}
	s := newTestServer(t, store, ingestor, &fakeEngine{})

	rec := doJSON(t, s, http.MethodPost, "/resumes/"+id.String()+"/ingest", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, ingestor.last)
	var resp IngestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "regex", resp.ParseTier)
}

func TestHandleCreateAndGetJobPosting(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, &fakeIngestor{}, &fakeEngine{})

	rec := doJSON(t, s, http.MethodPost, "/job-postings", CreateJobPostingRequest{
		Title:          "Senior Engineer",
		Company:        "Acme",
		RequiredSkills: []string{"Go"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, s, http.MethodGet, "/job-postings/"+created["id"], nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Senior Engineer")

	// Missing required title.
	rec = doJSON(t, s, http.MethodPost, "/job-postings", CreateJobPostingRequest{Company: "Acme"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSaveAndListJobs(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, &fakeIngestor{}, &fakeEngine{})

	jobID, err := store.CreateJobPosting(context.Background(), &types.JobPosting{Title: "SE", Company: "Acme"})
	require.NoError(t, err)
	userID := uuid.New()

	rec := doJSON(t, s, http.MethodPost, "/job-postings/"+jobID.String()+"/save",
		UserActionRequest{UserID: userID.String()})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/users/"+userID.String()+"/saved-jobs", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

func TestHandleApply(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, &fakeIngestor{}, &fakeEngine{})

	jobID, err := store.CreateJobPosting(context.Background(), &types.JobPosting{Title: "SE", Company: "Acme"})
	require.NoError(t, err)

	rec := doJSON(t, s, http.MethodPost, "/job-postings/"+jobID.String()+"/apply", UserActionRequest{
		UserID:   uuid.New().String(),
		ResumeID: uuid.New().String(),
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), db.ApplicationStatusSubmitted)

	// Apply without resume_id.
	rec = doJSON(t, s, http.MethodPost, "/job-postings/"+jobID.String()+"/apply",
		UserActionRequest{UserID: uuid.New().String()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// parsedResumeRecord seeds a completed record whose payload normalizes
// into a JavaScript developer resume.
func parsedResumeRecord(store *fakeStore, t *testing.T) uuid.UUID {
	t.Helper()
	id, err := store.CreateResume(context.Background(), uuid.New(), "My Resume", "p/resume.pdf")
	require.NoError(t, err)

	store.resumes[id].ParseStatus = db.ParseStatusCompleted
	store.resumes[id].ParsedData = &types.RawParsedResume{
		Personal: &types.RawPersonal{
			Name:  "Jane Doe",
			Title: "Software Engineer",
		},
		Experience: []types.RawExperience{
			{
				Title:     "Software Engineer",
				Company:   "Initech",
				Industry:  "Technology",
				StartDate: "2020-01",
				EndDate:   "2024-01",
			},
		},
		Skills: types.FlexStrings{"JavaScript", "React"},
	}
	return id
}

func TestHandleAnalyze(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, &fakeIngestor{}, &fakeEngine{})

	resumeID := parsedResumeRecord(store, t)
	jobID, err := store.CreateJobPosting(context.Background(), &types.JobPosting{
		Title:                     "Senior Software Engineer",
		Company:                   "Globex",
		RequiredYearsOfExperience: 5,
		Industries:                []string{"Technology"},
		RequiredSkills:            []string{"JavaScript", "Redux"},
	})
	require.NoError(t, err)

	rec := doJSON(t, s, http.MethodPost, "/analyze", AnalyzeRequest{
		ResumeID: resumeID.String(),
		JobID:    jobID.String(),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Match)
	assert.True(t, resp.Match.TitleMatch)
	assert.Contains(t, resp.Match.SkillMatches, "JavaScript")
	assert.Contains(t, resp.Match.MissingSkills, "Redux")
	assert.Greater(t, resp.Match.InitialScore, 0.0)
	assert.Equal(t, "Jane Doe", resp.Resume.Name)
}

func TestHandleAnalyzeUnparsedResume(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, &fakeIngestor{}, &fakeEngine{})

	resumeID, err := store.CreateResume(context.Background(), uuid.New(), "My Resume", "p")
	require.NoError(t, err)
	jobID, err := store.CreateJobPosting(context.Background(), &types.JobPosting{Title: "SE", Company: "Acme"})
	require.NoError(t, err)

	rec := doJSON(t, s, http.MethodPost, "/analyze", AnalyzeRequest{
		ResumeID: resumeID.String(),
		JobID:    jobID.String(),
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not been parsed")
}

func TestHandleAnalyzeMissingJob(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, &fakeIngestor{}, &fakeEngine{})

	resumeID := parsedResumeRecord(store, t)

	rec := doJSON(t, s, http.MethodPost, "/analyze", AnalyzeRequest{
		ResumeID: resumeID.String(),
		JobID:    uuid.New().String(),
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleTailor(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, &fakeIngestor{}, &fakeEngine{})

	resumeID := parsedResumeRecord(store, t)
	jobID, err := store.CreateJobPosting(context.Background(), &types.JobPosting{
		Title:          "Senior Software Engineer",
		Company:        "Globex",
		RequiredSkills: []string{"JavaScript", "Redux"},
	})
	require.NoError(t, err)

	rec := doJSON(t, s, http.MethodPost, "/tailor", TailorRequest{
		ResumeID: resumeID.String(),
		JobID:    jobID.String(),
		Summary:  true,
		Skills:   true,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp TailorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Match)
	assert.Equal(t, 9.0, resp.Match.FinalScore)
	assert.True(t, resp.Match.SummaryTailored)
}

func TestHandleTailorNoSections(t *testing.T) {
	s := newTestServer(t, newFakeStore(), &fakeIngestor{}, &fakeEngine{})

	rec := doJSON(t, s, http.MethodPost, "/tailor", TailorRequest{
		ResumeID: uuid.New().String(),
		JobID:    uuid.New().String(),
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least one section")
}
