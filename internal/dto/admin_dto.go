package dto

import (
	"time"
)

type AdminMeResponse struct {
	IsAdmin      bool    `json:"isAdmin"`
	CurrentEmail *string `json:"currentEmail"`
	OwnerEmail   *string `json:"ownerEmail"`
}

type ActivityResponse struct {
	Id        string                 `json:"id"`
	Timestamp time.Time              `json:"timestamp"`
	Action    string                 `json:"action"`
	Email     *string                `json:"email"`
	UserId    *string                `json:"userId"`
	Method    string                 `json:"method"`
	Path      string                 `json:"path"`
	Ip        string                 `json:"ip"`
	Details   map[string]interface{} `json:"details"`
}

type ActivityListResponse struct {
	Count      int                `json:"count"`
	Activities []ActivityResponse `json:"activities"`
}

type AdminStatsResponse struct {
	TotalActivities int64          `json:"totalActivities"`
	TotalUsers      int64          `json:"totalUsers"`
	TotalMemories   int64          `json:"totalMemories"`
	ByAction        map[string]int `json:"byAction"`
	Latest          *time.Time     `json:"latest"`
}

type DebugConfigResponse struct {
	Server      string                 `json:"server"`
	Environment string                 `json:"environment"`
	Responder   DebugResponderConfig   `json:"responder"`
	Knowledge   DebugKnowledgeConfig   `json:"knowledge"`
	Admin       DebugAdminConfig       `json:"admin"`
	Endpoints   map[string]interface{} `json:"endpoints"`
}

type DebugResponderConfig struct {
	Provider   string `json:"provider"`
	Configured bool   `json:"configured"`
	Model      string `json:"model"`
}

type DebugKnowledgeConfig struct {
	Entries   int    `json:"entries"`
	UpdatedAt string `json:"updatedAt"`
}

type DebugAdminConfig struct {
	Configured      bool   `json:"configured"`
	OwnerConfigured bool   `json:"ownerConfigured"`
	StorageMode     string `json:"storageMode"`
}
