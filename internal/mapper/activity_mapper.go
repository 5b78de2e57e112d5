package mapper

import (
	"encoding/json"

	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/model"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.AdminActivity) *entity.AdminActivity {
	if a == nil {
		return nil
	}

	var details map[string]interface{}
	if len(a.Details) > 0 {
		// Details written by this service are always a JSON object; a
		// row that fails to decode keeps a nil map rather than failing
		// the whole listing.
		_ = json.Unmarshal(a.Details, &details)
	}

	return &entity.AdminActivity{
		Id:        a.Id,
		Timestamp: a.Timestamp,
		Action:    a.Action,
		Email:     a.Email,
		UserId:    a.UserId,
		Method:    a.Method,
		Path:      a.Path,
		Ip:        a.Ip,
		Details:   details,
	}
}

func (m *ActivityMapper) ToModel(a *entity.AdminActivity) *model.AdminActivity {
	if a == nil {
		return nil
	}

	var details []byte
	if a.Details != nil {
		details, _ = json.Marshal(a.Details)
	}

	return &model.AdminActivity{
		Id:        a.Id,
		Timestamp: a.Timestamp,
		Action:    a.Action,
		Email:     a.Email,
		UserId:    a.UserId,
		Method:    a.Method,
		Path:      a.Path,
		Ip:        a.Ip,
		Details:   details,
	}
}

func (m *ActivityMapper) ToEntities(activities []*model.AdminActivity) []*entity.AdminActivity {
	entities := make([]*entity.AdminActivity, len(activities))
	for i, a := range activities {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
