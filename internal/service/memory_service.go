package service

import (
	"context"
	"fmt"
	"time"

	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
)

const lockedVaultMessage = "Unlock personal vault with your PIN first"

type IMemoryService interface {
	List(ctx context.Context, email string, personalUnlocked bool) (*dto.MemoryListResponse, error)
	Create(ctx context.Context, email string, req *dto.CreateMemoryRequest, personalUnlocked bool) (*dto.MemoryResponse, error)
	Update(ctx context.Context, email, id string, req *dto.UpdateMemoryRequest, personalUnlocked bool) (*dto.MemoryResponse, error)
	Delete(ctx context.Context, email, id string, personalUnlocked bool) (*entity.Memory, error)
}

type memoryService struct {
	memoryRepo contract.MemoryRepository
}

func NewMemoryService(memoryRepo contract.MemoryRepository) IMemoryService {
	return &memoryService{memoryRepo: memoryRepo}
}

func toMemoryResponse(m *entity.Memory) dto.MemoryResponse {
	return dto.MemoryResponse{
		Id:          m.Id,
		Title:       m.Title,
		Content:     m.Content,
		IsImportant: m.IsImportant,
		VaultType:   m.VaultType,
		Timestamp:   m.Timestamp,
		UserEmail:   m.UserEmail,
		IsFavorite:  m.IsFavorite,
	}
}

func (s *memoryService) List(ctx context.Context, email string, personalUnlocked bool) (*dto.MemoryListResponse, error) {
	memories, err := s.memoryRepo.FindAllByUserEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	res := &dto.MemoryListResponse{
		Memories:       make([]dto.MemoryResponse, 0, len(memories)),
		PersonalLocked: !personalUnlocked,
	}
	for _, m := range memories {
		if m.IsPersonal() && !personalUnlocked {
			continue
		}
		res.Memories = append(res.Memories, toMemoryResponse(m))
	}
	return res, nil
}

func (s *memoryService) Create(ctx context.Context, email string, req *dto.CreateMemoryRequest, personalUnlocked bool) (*dto.MemoryResponse, error) {
	if req.VaultType == entity.VaultTypePersonal && !personalUnlocked {
		return nil, NewServiceError(fiber.StatusForbidden, lockedVaultMessage)
	}

	memory := &entity.Memory{
		Id:          fmt.Sprintf("%d", time.Now().UnixMilli()),
		UserEmail:   email,
		Title:       req.Title,
		Content:     req.Content,
		IsImportant: req.IsImportant,
		VaultType:   req.VaultType,
		Timestamp:   time.Now(),
	}
	if err := s.memoryRepo.Create(ctx, memory); err != nil {
		return nil, err
	}

	res := toMemoryResponse(memory)
	return &res, nil
}

func (s *memoryService) Update(ctx context.Context, email, id string, req *dto.UpdateMemoryRequest, personalUnlocked bool) (*dto.MemoryResponse, error) {
	memory, err := s.memoryRepo.FindById(ctx, email, id)
	if err != nil {
		return nil, err
	}
	if memory == nil {
		return nil, NewServiceError(fiber.StatusNotFound, "Memory not found")
	}

	// Gate on both the current vault and the target vault.
	if memory.IsPersonal() && !personalUnlocked {
		return nil, NewServiceError(fiber.StatusForbidden, lockedVaultMessage)
	}
	if req.VaultType != nil && *req.VaultType == entity.VaultTypePersonal && !personalUnlocked {
		return nil, NewServiceError(fiber.StatusForbidden, lockedVaultMessage)
	}

	if req.Title != nil {
		memory.Title = *req.Title
	}
	if req.Content != nil {
		memory.Content = *req.Content
	}
	if req.IsImportant != nil {
		memory.IsImportant = *req.IsImportant
	}
	if req.VaultType != nil {
		memory.VaultType = *req.VaultType
	}
	if req.IsFavorite != nil {
		memory.IsFavorite = *req.IsFavorite
	}

	if err := s.memoryRepo.Update(ctx, memory); err != nil {
		return nil, err
	}

	res := toMemoryResponse(memory)
	return &res, nil
}

func (s *memoryService) Delete(ctx context.Context, email, id string, personalUnlocked bool) (*entity.Memory, error) {
	memory, err := s.memoryRepo.FindById(ctx, email, id)
	if err != nil {
		return nil, err
	}
	if memory == nil {
		return nil, NewServiceError(fiber.StatusNotFound, "Memory not found")
	}
	if memory.IsPersonal() && !personalUnlocked {
		return nil, NewServiceError(fiber.StatusForbidden, lockedVaultMessage)
	}

	if err := s.memoryRepo.Delete(ctx, email, id); err != nil {
		return nil, err
	}
	return memory, nil
}
