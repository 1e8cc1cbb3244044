package services

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

const auditLogLimit = 100

// AuditService appends before/after snapshots of admin edits.
type AuditService struct {
	st    *store.Stores
	clock utils.Clock
}

func NewAuditService(st *store.Stores, clock utils.Clock) *AuditService {
	return &AuditService{st: st, clock: clock}
}

// snapshot flattens a record to its JSON field names.
func snapshot(v any) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot")
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, errors.Wrap(err, "snapshot")
	}
	return m, nil
}

func (s *AuditService) Record(ctx context.Context, actor models.User, action, resourceType, resourceID string, before, after any, ip string) error {
	oldData, err := snapshot(before)
	if err != nil {
		return err
	}
	newData, err := snapshot(after)
	if err != nil {
		return err
	}
	return s.st.AuditLogs.Insert(ctx, models.AuditLog{
		ID:           models.NewID(),
		UserID:       actor.ID,
		UserEmail:    actor.Email,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    ip,
		Timestamp:    s.clock.Now(),
	})
}

// Logs returns a resource's history, newest first.
func (s *AuditService) Logs(ctx context.Context, actor models.User, resourceType, resourceID string) ([]dto.AuditLogView, error) {
	if err := requireRole(actor, "Only admins can view audit logs", models.RoleAdmin); err != nil {
		return nil, err
	}
	logs, err := s.st.AuditLogs.Find(ctx, store.Q().
		Eq("resource_type", resourceType).
		Eq("resource_id", resourceID).
		SortBy("timestamp", true).
		Limit(auditLogLimit))
	if err != nil {
		return nil, err
	}

	out := make([]dto.AuditLogView, 0, len(logs))
	for _, l := range logs {
		oldData, _ := plain(l.OldData).(map[string]any)
		newData, _ := plain(l.NewData).(map[string]any)
		v := dto.AuditLogView{
			ID:           l.ID,
			UserEmail:    l.UserEmail,
			Action:       l.Action,
			ResourceType: l.ResourceType,
			ResourceID:   l.ResourceID,
			Timestamp:    l.Timestamp,
		}
		if len(oldData) > 0 {
			v.OldData = oldData
		}
		if len(newData) > 0 {
			v.NewData = newData
		}
		if l.Action == models.ActionUpdate && len(oldData) > 0 && len(newData) > 0 {
			v.ChangesSummary = changesSummary(oldData, newData)
		}
		out = append(out, v)
	}
	return out, nil
}

// changesSummary lists top-level keys whose value differs, in key order.
func changesSummary(before, after map[string]any) string {
	keys := make([]string, 0, len(after))
	for k := range after {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var changes []string
	for _, k := range keys {
		old, ok := before[k]
		if !ok || reflect.DeepEqual(old, after[k]) {
			continue
		}
		changes = append(changes, fmt.Sprintf("%s: %v → %v", k, old, after[k]))
	}
	if len(changes) == 0 {
		return "No changes detected"
	}
	return strings.Join(changes, ", ")
}

// plain turns decoded BSON containers back into JSON-shaped values.
func plain(v any) any {
	switch t := v.(type) {
	case bson.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = plain(e.Value)
		}
		return m
	case bson.M:
		return plain(map[string]any(t))
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = plain(e)
		}
		return m
	case bson.A:
		return plain([]any(t))
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plain(e)
		}
		return out
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case int:
		return float64(t)
	}
	return v
}
