package entity

import "time"

type TableCounts struct {
	Users    int64 `json:"users"`
	Posts    int64 `json:"posts"`
	Comments int64 `json:"comments"`
	Likes    int64 `json:"likes"`
}

type Dashboard struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalPosts    int64   `json:"totalPosts"`
	TotalComments int64   `json:"totalComments"`
	RecentPosts   []*Post `json:"recentPosts"`
	RecentUsers   []*User `json:"recentUsers"`
}

const (
	HealthOK    = "OK"
	HealthError = "ERROR"
)

type HealthReport struct {
	Status    string       `json:"status"`
	Database  string       `json:"database"`
	Tables    *TableCounts `json:"tables,omitempty"`
	Error     string       `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

func (r *HealthReport) Healthy() bool {
	return r.Status == HealthOK
}
