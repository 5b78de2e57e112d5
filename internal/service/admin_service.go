package service

import (
	"context"
	"strings"

	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/repository/contract"
)

type IAdminService interface {
	Me(email string) *dto.AdminMeResponse
	Activities(ctx context.Context, limit int) (*dto.ActivityListResponse, error)
	Stats(ctx context.Context) (*dto.AdminStatsResponse, error)
	IsConfigured() (apiKey bool, owner bool)
	VerifyAccess(email, providedKey string) *ServiceError
}

type adminService struct {
	userRepo     contract.UserRepository
	memoryRepo   contract.MemoryRepository
	activityRepo contract.ActivityRepository
	apiKey       string
	ownerEmail   string
}

func NewAdminService(
	userRepo contract.UserRepository,
	memoryRepo contract.MemoryRepository,
	activityRepo contract.ActivityRepository,
	apiKey, ownerEmail string,
) IAdminService {
	return &adminService{
		userRepo:     userRepo,
		memoryRepo:   memoryRepo,
		activityRepo: activityRepo,
		apiKey:       apiKey,
		ownerEmail:   strings.ToLower(ownerEmail),
	}
}

func (s *adminService) IsConfigured() (bool, bool) {
	return s.apiKey != "", s.ownerEmail != ""
}

// VerifyAccess gates the admin surface: the requester must be the
// configured owner AND present the admin key.
func (s *adminService) VerifyAccess(email, providedKey string) *ServiceError {
	if s.apiKey == "" {
		return NewServiceError(503, "Admin key is not configured")
	}
	if s.ownerEmail == "" {
		return NewServiceError(503, "Admin owner email is not configured")
	}
	if strings.ToLower(email) != s.ownerEmail {
		return NewServiceError(403, "Admin access is restricted to the owner account")
	}
	if providedKey != s.apiKey {
		return NewServiceError(401, "Invalid admin key")
	}
	return nil
}

func (s *adminService) Me(email string) *dto.AdminMeResponse {
	requester := strings.ToLower(email)

	res := &dto.AdminMeResponse{
		IsAdmin: s.apiKey != "" && s.ownerEmail != "" && requester == s.ownerEmail,
	}
	if requester != "" {
		res.CurrentEmail = &requester
	}
	if s.ownerEmail != "" {
		owner := s.ownerEmail
		res.OwnerEmail = &owner
	}
	return res
}

func (s *adminService) Activities(ctx context.Context, limit int) (*dto.ActivityListResponse, error) {
	if limit < 1 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}

	activities, err := s.activityRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	res := &dto.ActivityListResponse{
		Count:      len(activities),
		Activities: make([]dto.ActivityResponse, len(activities)),
	}
	for i, a := range activities {
		res.Activities[i] = dto.ActivityResponse{
			Id:        a.Id,
			Timestamp: a.Timestamp,
			Action:    a.Action,
			Email:     a.Email,
			UserId:    a.UserId,
			Method:    a.Method,
			Path:      a.Path,
			Ip:        a.Ip,
			Details:   a.Details,
		}
	}
	return res, nil
}

func (s *adminService) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	activities, err := s.activityRepo.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalMemories, err := s.memoryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.AdminStatsResponse{
		TotalActivities: int64(len(activities)),
		TotalUsers:      totalUsers,
		TotalMemories:   totalMemories,
		ByAction:        map[string]int{},
	}
	for _, a := range activities {
		action := a.Action
		if action == "" {
			action = "unknown"
		}
		res.ByAction[action]++
	}
	if len(activities) > 0 {
		// List returns newest first.
		latest := activities[0].Timestamp
		res.Latest = &latest
	}
	return res, nil
}
