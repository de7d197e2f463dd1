package candidate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/staffhub/staffhub-backend-go/internal/domain/candidate"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/email"
	"golang.org/x/crypto/bcrypt"
)

type CandidateServiceImpl struct {
	candidate.CandidateRepository
	user.UserRepository
	extractor candidate.Extractor
	email     email.EmailService
}

func NewCandidateService(
	candidateRepo candidate.CandidateRepository,
	userRepo user.UserRepository,
	extractor candidate.Extractor,
	emailService email.EmailService,
) candidate.CandidateService {
	return &CandidateServiceImpl{
		CandidateRepository: candidateRepo,
		UserRepository:      userRepo,
		extractor:           extractor,
		email:               emailService,
	}
}

// Apply implements candidate.CandidateService. Extraction is best effort:
// anything the extractor recovered is kept, anything missing falls back to
// a safe default. Only a fully unreadable CV rejects the application.
func (c *CandidateServiceImpl) Apply(ctx context.Context, req candidate.ApplyRequest) (candidate.Response, error) {
	if err := req.Validate(); err != nil {
		return candidate.Response{}, err
	}

	extraction, err := c.extractor.Extract(ctx, req.CV)
	if err != nil {
		return candidate.Response{}, candidate.ErrUnreadableCV
	}

	data := candidate.Sanitize(extraction)
	data.FullName = req.FullName
	data.Email = req.Email

	created, err := c.CandidateRepository.Create(ctx, data)
	if err != nil {
		return candidate.Response{}, fmt.Errorf("failed to create candidate: %w", err)
	}

	return mapCandidateToResponse(created), nil
}

// Accept implements candidate.CandidateService. Credentials are issued
// inline; the notification email is fire and forget so a mail outage never
// rolls back the decision.
func (c *CandidateServiceImpl) Accept(ctx context.Context, id string) (candidate.Response, error) {
	cand, err := c.CandidateRepository.GetByID(ctx, id)
	if err != nil {
		return candidate.Response{}, err
	}
	if cand.Status != candidate.StatusApplied {
		return candidate.Response{}, candidate.ErrAlreadyDecided
	}

	tempPassword := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return candidate.Response{}, fmt.Errorf("failed to hash temporary password: %w", err)
	}

	passwordHash := string(hash)
	_, err = c.UserRepository.Create(ctx, user.User{
		Email:              cand.Email,
		PasswordHash:       &passwordHash,
		Role:               user.RoleEmployee,
		MustChangePassword: true,
	})
	if err != nil {
		return candidate.Response{}, fmt.Errorf("failed to create account: %w", err)
	}

	cand.Status = candidate.StatusAccepted
	if err := c.CandidateRepository.Update(ctx, cand); err != nil {
		return candidate.Response{}, fmt.Errorf("failed to update candidate: %w", err)
	}

	go func() {
		if err := c.email.SendCandidateAccepted(cand.Email, cand.FullName, cand.Email, tempPassword); err != nil {
			slog.Error("Failed to send acceptance email", "candidate_id", cand.ID, "error", err)
		}
	}()

	return mapCandidateToResponse(cand), nil
}

// Reject implements candidate.CandidateService.
func (c *CandidateServiceImpl) Reject(ctx context.Context, id string) (candidate.Response, error) {
	cand, err := c.CandidateRepository.GetByID(ctx, id)
	if err != nil {
		return candidate.Response{}, err
	}
	if cand.Status != candidate.StatusApplied {
		return candidate.Response{}, candidate.ErrAlreadyDecided
	}

	cand.Status = candidate.StatusRejected
	if err := c.CandidateRepository.Update(ctx, cand); err != nil {
		return candidate.Response{}, fmt.Errorf("failed to update candidate: %w", err)
	}

	go func() {
		if err := c.email.SendCandidateRejected(cand.Email, cand.FullName); err != nil {
			slog.Error("Failed to send rejection email", "candidate_id", cand.ID, "error", err)
		}
	}()

	return mapCandidateToResponse(cand), nil
}

// Get implements candidate.CandidateService.
func (c *CandidateServiceImpl) Get(ctx context.Context, id string) (candidate.Response, error) {
	cand, err := c.CandidateRepository.GetByID(ctx, id)
	if err != nil {
		return candidate.Response{}, err
	}
	return mapCandidateToResponse(cand), nil
}

// List implements candidate.CandidateService.
func (c *CandidateServiceImpl) List(ctx context.Context, filter candidate.Filter) (candidate.ListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	candidates, total, err := c.CandidateRepository.List(ctx, filter)
	if err != nil {
		return candidate.ListResponse{}, fmt.Errorf("failed to list candidates: %w", err)
	}

	responses := make([]candidate.Response, 0, len(candidates))
	for _, cand := range candidates {
		responses = append(responses, mapCandidateToResponse(cand))
	}

	return candidate.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Candidates: responses,
	}, nil
}

func mapCandidateToResponse(cand candidate.Candidate) candidate.Response {
	return candidate.Response{
		ID:                              cand.ID,
		FullName:                        cand.FullName,
		Email:                           cand.Email,
		Region:                          cand.Region,
		Degree:                          cand.Degree,
		Field:                           cand.Field,
		YearsExperience:                 cand.YearsExperience,
		HadLeadership:                   cand.HadLeadership,
		Skills:                          cand.Skills,
		HasPositionRelatedHighEducation: cand.HasPositionRelatedHighEducation,
		Status:                          string(cand.Status),
	}
}
