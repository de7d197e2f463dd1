package candidate

import (
	"context"
	"errors"
	"testing"

	"github.com/staffhub/staffhub-backend-go/internal/domain/candidate"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeCandidateRepo struct {
	candidate.CandidateRepository
	byID    map[string]candidate.Candidate
	created []candidate.Candidate
	updated []candidate.Candidate
}

func (f *fakeCandidateRepo) Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	c.ID = "cand-1"
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeCandidateRepo) GetByID(ctx context.Context, id string) (candidate.Candidate, error) {
	c, ok := f.byID[id]
	if !ok {
		return candidate.Candidate{}, candidate.ErrCandidateNotFound
	}
	return c, nil
}

func (f *fakeCandidateRepo) Update(ctx context.Context, c candidate.Candidate) error {
	f.updated = append(f.updated, c)
	if f.byID == nil {
		f.byID = map[string]candidate.Candidate{}
	}
	f.byID[c.ID] = c
	return nil
}

type fakeUserRepo struct {
	user.UserRepository
	created []user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = "user-1"
	f.created = append(f.created, u)
	return u, nil
}

type fakeExtractor struct {
	extraction candidate.Extraction
	err        error
}

func (f *fakeExtractor) Extract(ctx context.Context, cv []byte) (candidate.Extraction, error) {
	if f.err != nil {
		return candidate.Extraction{}, f.err
	}
	return f.extraction, nil
}

type noopEmail struct{}

func (noopEmail) SendCandidateAccepted(to, candidateName, loginEmail, temporaryPassword string) error {
	return nil
}

func (noopEmail) SendCandidateRejected(to, candidateName string) error {
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestApply_OverlaysIdentityOnExtraction(t *testing.T) {
	candRepo := &fakeCandidateRepo{}
	extractor := &fakeExtractor{extraction: candidate.Extraction{
		Region:          strPtr(" Jakarta "),
		Degree:          strPtr("BSc"),
		Field:           strPtr("Computer Science"),
		YearsExperience: intPtr(4),
		HadLeadership:   boolPtr(true),
		Skills:          []string{"Go", " SQL ", ""},
		// The CV may claim a different name; the form fields win.
	}}

	svc := NewCandidateService(candRepo, &fakeUserRepo{}, extractor, noopEmail{})

	resp, err := svc.Apply(context.Background(), candidate.ApplyRequest{
		FullName: "Dina Putri",
		Email:    "dina@example.com",
		CV:       []byte("%PDF-1.7 ..."),
	})
	require.NoError(t, err)

	assert.Equal(t, "Dina Putri", resp.FullName)
	assert.Equal(t, "dina@example.com", resp.Email)
	assert.Equal(t, "Jakarta", resp.Region)
	assert.Equal(t, 4, resp.YearsExperience)
	assert.True(t, resp.HadLeadership)
	assert.Equal(t, []string{"Go", "SQL"}, resp.Skills)
	assert.Equal(t, "applied", resp.Status)
}

func TestApply_UnreadableCV(t *testing.T) {
	candRepo := &fakeCandidateRepo{}
	extractor := &fakeExtractor{err: errors.New("document could not be parsed")}

	svc := NewCandidateService(candRepo, &fakeUserRepo{}, extractor, noopEmail{})

	_, err := svc.Apply(context.Background(), candidate.ApplyRequest{
		FullName: "Dina Putri",
		Email:    "dina@example.com",
		CV:       []byte{0x00, 0x01},
	})
	assert.ErrorIs(t, err, candidate.ErrUnreadableCV)
	assert.Empty(t, candRepo.created)
}

func TestApply_MissingCVFailsValidation(t *testing.T) {
	svc := NewCandidateService(&fakeCandidateRepo{}, &fakeUserRepo{}, &fakeExtractor{}, noopEmail{})

	_, err := svc.Apply(context.Background(), candidate.ApplyRequest{
		FullName: "Dina Putri",
		Email:    "dina@example.com",
	})
	assert.Error(t, err)
}

func TestAccept_CreatesAccountWithTemporaryCredentials(t *testing.T) {
	candRepo := &fakeCandidateRepo{byID: map[string]candidate.Candidate{
		"cand-1": {ID: "cand-1", FullName: "Dina Putri", Email: "dina@example.com", Status: candidate.StatusApplied},
	}}
	userRepo := &fakeUserRepo{}

	svc := NewCandidateService(candRepo, userRepo, &fakeExtractor{}, noopEmail{})

	resp, err := svc.Accept(context.Background(), "cand-1")
	require.NoError(t, err)

	assert.Equal(t, "accepted", resp.Status)

	require.Len(t, userRepo.created, 1)
	account := userRepo.created[0]
	assert.Equal(t, "dina@example.com", account.Email)
	assert.Equal(t, user.RoleEmployee, account.Role)
	assert.True(t, account.MustChangePassword)
	require.NotNil(t, account.PasswordHash)
	// A real bcrypt hash, not the raw password.
	_, err = bcrypt.Cost([]byte(*account.PasswordHash))
	assert.NoError(t, err)

	require.Len(t, candRepo.updated, 1)
	assert.Equal(t, candidate.StatusAccepted, candRepo.updated[0].Status)
}

func TestAccept_AlreadyDecided(t *testing.T) {
	candRepo := &fakeCandidateRepo{byID: map[string]candidate.Candidate{
		"cand-1": {ID: "cand-1", Email: "dina@example.com", Status: candidate.StatusRejected},
	}}
	userRepo := &fakeUserRepo{}

	svc := NewCandidateService(candRepo, userRepo, &fakeExtractor{}, noopEmail{})

	_, err := svc.Accept(context.Background(), "cand-1")
	assert.ErrorIs(t, err, candidate.ErrAlreadyDecided)
	assert.Empty(t, userRepo.created)
}

func TestReject_MarksRejectedWithoutAccount(t *testing.T) {
	candRepo := &fakeCandidateRepo{byID: map[string]candidate.Candidate{
		"cand-1": {ID: "cand-1", FullName: "Dina Putri", Email: "dina@example.com", Status: candidate.StatusApplied},
	}}
	userRepo := &fakeUserRepo{}

	svc := NewCandidateService(candRepo, userRepo, &fakeExtractor{}, noopEmail{})

	resp, err := svc.Reject(context.Background(), "cand-1")
	require.NoError(t, err)

	assert.Equal(t, "rejected", resp.Status)
	assert.Empty(t, userRepo.created)
}

func TestReject_AlreadyDecided(t *testing.T) {
	candRepo := &fakeCandidateRepo{byID: map[string]candidate.Candidate{
		"cand-1": {ID: "cand-1", Status: candidate.StatusAccepted},
	}}

	svc := NewCandidateService(candRepo, &fakeUserRepo{}, &fakeExtractor{}, noopEmail{})

	_, err := svc.Reject(context.Background(), "cand-1")
	assert.ErrorIs(t, err, candidate.ErrAlreadyDecided)
}
