package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cotishq/cloudnest/pkg/configs"
	"github.com/cotishq/cloudnest/pkg/internal/model"
	"github.com/cotishq/cloudnest/pkg/internal/types"
)

// ComputeUsage sums the sizes of the owner's live files against the fixed
// quota. Folders and trashed nodes never count. The figure is recomputed on
// every call; nothing caches it.
func (s *NodeService) ComputeUsage(ctx context.Context, ownerID string) (*types.UsageSummary, error) {
	var used int64

	err := s.dbClient.WithContext(ctx).
		Model(&model.Node{}).
		Where("owner_id = ? AND is_folder = ? AND is_trash = ?", ownerID, false, false).
		Select("COALESCE(SUM(size), 0)").
		Scan(&used).Error
	if err != nil {
		return nil, fmt.Errorf("compute usage: %w", err)
	}

	quota := configs.GetConfig().Upload.QuotaBytes

	summary := &types.UsageSummary{
		UsedBytes:      used,
		QuotaBytes:     quota,
		RemainingBytes: quota - used,
	}
	if quota > 0 {
		summary.UsedPercent = float64(used) / float64(quota) * 100
	}

	return summary, nil
}

// UsageByType aggregates the owner's live files by content-type family
// (the part before the slash), for the dashboard storage bar.
func (s *NodeService) UsageByType(ctx context.Context, ownerID string) (*types.UsageBreakdown, error) {
	var rows []struct {
		ContentType string
		Count       int64
		Size        int64
	}

	err := s.dbClient.WithContext(ctx).
		Model(&model.Node{}).
		Where("owner_id = ? AND is_folder = ? AND is_trash = ?", ownerID, false, false).
		Select("content_type, COUNT(*) AS count, COALESCE(SUM(size), 0) AS size").
		Group("content_type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("usage by type: %w", err)
	}

	families := map[string]*types.UsageTypeItem{}

	for _, r := range rows {
		family := r.ContentType
		if i := strings.Index(family, "/"); i > 0 {
			family = family[:i]
		}

		if family == "" {
			family = "other"
		}

		item, ok := families[family]
		if !ok {
			item = &types.UsageTypeItem{Type: family}
			families[family] = item
		}

		item.Count += r.Count
		item.Size += r.Size
	}

	breakdown := &types.UsageBreakdown{Items: make([]types.UsageTypeItem, 0, len(families))}
	for _, item := range families {
		breakdown.Items = append(breakdown.Items, *item)
	}

	sort.Slice(breakdown.Items, func(i, j int) bool {
		return breakdown.Items[i].Size > breakdown.Items[j].Size
	})

	return breakdown, nil
}
