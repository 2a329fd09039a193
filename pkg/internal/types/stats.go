package types

// UsageSummary reports storage consumption against the fixed quota. Only
// live files count: folders and trashed nodes are excluded.
type UsageSummary struct {
	UsedBytes      int64   `json:"used_bytes"`
	QuotaBytes     int64   `json:"quota_bytes"`
	RemainingBytes int64   `json:"remaining_bytes"`
	UsedPercent    float64 `json:"used_percent"`
}

// UsageTypeItem aggregates live files by content-type family.
type UsageTypeItem struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
	Size  int64  `json:"size"`
}

// UsageBreakdown is the per-type usage listing for the dashboard.
type UsageBreakdown struct {
	Items []UsageTypeItem `json:"items"`
}
