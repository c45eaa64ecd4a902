package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/bytedance/sonic"
	"github.com/workdesk/workdesk/internal/modules/model"
	"github.com/workdesk/workdesk/internal/modules/repo"
	"go.uber.org/zap"
)

const (
	RevenueMonths    = 6
	RecentActivities = 10

	UnknownClient = "Unknown Client"
)

const (
	ActivityTaskCompleted = "task_completed"
	ActivityProposalSent  = "proposal_sent"
	ActivityClientCreated = "client_created"
	ActivityInvoicePaid   = "invoice_paid"
)

type DashboardCounts struct {
	Clients           int     `json:"clients"`
	TasksToday        int     `json:"tasksToday"`
	OpenInvoices      int     `json:"openInvoices"`
	OpenInvoicesValue float64 `json:"openInvoicesValue"`
	ProposalsSent     int     `json:"proposalsSent"`
	ProposalsAccepted int     `json:"proposalsAccepted"`
}

type TaskStatusCounts struct {
	Backlog    int `json:"backlog"`
	InProgress int `json:"inProgress"`
	Testing    int `json:"testing"`
	Completed  int `json:"completed"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail,omitempty"`
	RecordID  uint      `json:"recordId"`
	Record    any       `json:"record" swaggertype:"object"`
}

type DashboardSnapshot struct {
	Counts           DashboardCounts  `json:"counts"`
	TaskStatusCounts TaskStatusCounts `json:"taskStatusCounts"`
	MonthlyRevenue   []float64        `json:"monthlyRevenue"`
	RevenueMonths    []string         `json:"revenueMonths"`
	RecentActivities []Activity       `json:"recentActivities"`
	GeneratedAt      time.Time        `json:"generatedAt"`
}

// SnapshotCache stores serialized snapshots. Get reports a miss as nil, nil.
type SnapshotCache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, data []byte, ttl time.Duration) error
}

type DashboardService interface {
	Snapshot(ctx context.Context) (*DashboardSnapshot, error)
}

type DashboardStores struct {
	Clients   repo.Store[model.Client]
	Tasks     repo.Store[model.Task]
	Invoices  repo.Store[model.Invoice]
	Proposals repo.Store[model.Proposal]
}

type dashboardService struct {
	s     DashboardStores
	now   func() time.Time
	log   *zap.Logger
	cache SnapshotCache
	ttl   time.Duration
}

// NewDashboardService builds the aggregation engine. cache may be nil; a
// non-positive ttl disables caching.
func NewDashboardService(s DashboardStores, now func() time.Time, log *zap.Logger, cache SnapshotCache, ttl time.Duration) DashboardService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	if ttl <= 0 {
		cache = nil
	}
	return &dashboardService{s: s, now: now, log: log, cache: cache, ttl: ttl}
}

func (d *dashboardService) Snapshot(ctx context.Context) (*DashboardSnapshot, error) {
	if d.cache != nil {
		if raw, err := d.cache.Get(ctx); err != nil {
			d.log.Sugar().Warnw("read cached dashboard snapshot", "err", err)
		} else if raw != nil {
			snap := &DashboardSnapshot{}
			if err := sonic.Unmarshal(raw, snap); err != nil {
				d.log.Sugar().Warnw("decode cached dashboard snapshot", "err", err)
			} else if sameDay(snap.GeneratedAt, d.now()) {
				// tasksToday is only valid on the day it was computed.
				return snap, nil
			}
		}
	}

	snap, err := d.compute(ctx)
	if err != nil {
		return nil, err
	}

	if d.cache != nil {
		if raw, err := sonic.Marshal(snap); err == nil {
			if err := d.cache.Set(ctx, raw, d.ttl); err != nil {
				d.log.Sugar().Warnw("cache dashboard snapshot", "err", err)
			}
		}
	}
	return snap, nil
}

func (d *dashboardService) compute(ctx context.Context) (*DashboardSnapshot, error) {
	now := d.now()

	clients, err := d.s.Clients.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	tasks, err := d.s.Tasks.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	invoices, err := d.s.Invoices.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	proposals, err := d.s.Proposals.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}

	names := make(map[uint]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.CompanyName
	}
	clientName := func(id uint) string {
		if n, ok := names[id]; ok {
			return n
		}
		return UnknownClient
	}

	monthly, labels := monthlyRevenue(invoices, now)
	return &DashboardSnapshot{
		Counts:           countAll(clients, tasks, invoices, proposals, now),
		TaskStatusCounts: taskHistogram(tasks),
		MonthlyRevenue:   monthly,
		RevenueMonths:    labels,
		RecentActivities: recentActivities(tasks, proposals, clients, invoices, clientName),
		GeneratedAt:      now,
	}, nil
}

func countAll(clients []model.Client, tasks []model.Task, invoices []model.Invoice, proposals []model.Proposal, now time.Time) DashboardCounts {
	c := DashboardCounts{
		Clients:       len(clients),
		ProposalsSent: len(proposals),
	}
	for _, t := range tasks {
		if t.DueDate != nil && sameDay(*t.DueDate, now) {
			c.TasksToday++
		}
	}
	for _, inv := range invoices {
		if inv.Status == model.InvoiceStatusPending {
			c.OpenInvoices++
			c.OpenInvoicesValue += inv.Value
		}
	}
	for _, p := range proposals {
		if p.Status == model.ProposalStatusAccepted {
			c.ProposalsAccepted++
		}
	}
	return c
}

// sameDay compares calendar days in now's location.
func sameDay(t, now time.Time) bool {
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// taskHistogram drops statuses outside the four known buckets.
func taskHistogram(tasks []model.Task) TaskStatusCounts {
	var h TaskStatusCounts
	for _, t := range tasks {
		switch t.Status {
		case model.TaskStatusBacklog:
			h.Backlog++
		case model.TaskStatusInProgress:
			h.InProgress++
		case model.TaskStatusTesting:
			h.Testing++
		case model.TaskStatusCompleted:
			h.Completed++
		}
	}
	return h
}

// monthlyRevenue buckets paid invoices into the current month and the five
// before it, oldest first. Payments outside the window are ignored.
func monthlyRevenue(invoices []model.Invoice, now time.Time) ([]float64, []string) {
	buckets := make([]float64, RevenueMonths)
	for _, inv := range invoices {
		if inv.Status != model.InvoiceStatusPaid || inv.PaidAt == nil {
			continue
		}
		paid := inv.PaidAt.In(now.Location())
		diff := (now.Year()-paid.Year())*12 + int(now.Month()) - int(paid.Month())
		if diff >= 0 && diff < RevenueMonths {
			buckets[RevenueMonths-1-diff] += inv.Value
		}
	}

	labels := make([]string, RevenueMonths)
	for i := range labels {
		first := time.Date(now.Year(), now.Month()-time.Month(RevenueMonths-1-i), 1, 0, 0, 0, 0, now.Location())
		labels[i] = first.Format("2006-01")
	}
	return buckets, labels
}

func recentActivities(tasks []model.Task, proposals []model.Proposal, clients []model.Client, invoices []model.Invoice, clientName func(uint) string) []Activity {
	var done, sent, created, paid []Activity

	for _, t := range tasks {
		if t.Status == model.TaskStatusCompleted && t.CompletedAt != nil {
			done = append(done, Activity{Type: ActivityTaskCompleted, Timestamp: *t.CompletedAt, Title: t.Name, RecordID: t.ID, Record: t})
		}
	}
	for _, p := range proposals {
		sent = append(sent, Activity{Type: ActivityProposalSent, Timestamp: p.CreatedAt, Title: p.Title, Detail: clientName(p.ClientID), RecordID: p.ID, Record: p})
	}
	for _, c := range clients {
		created = append(created, Activity{Type: ActivityClientCreated, Timestamp: c.CreatedAt, Title: c.CompanyName, RecordID: c.ID, Record: c})
	}
	for _, inv := range invoices {
		if inv.Status == model.InvoiceStatusPaid && inv.PaidAt != nil {
			paid = append(paid, Activity{Type: ActivityInvoicePaid, Timestamp: *inv.PaidAt, Title: invoiceTitle(inv), Detail: clientName(inv.ClientID), RecordID: inv.ID, Record: inv})
		}
	}

	return mergeActivities(RecentActivities, done, sent, created, paid)
}

func invoiceTitle(inv model.Invoice) string {
	if inv.Number != "" {
		return "Invoice " + inv.Number
	}
	return fmt.Sprintf("Invoice #%d", inv.ID)
}

// mergeActivities performs a k-way merge of the streams by descending
// timestamp and keeps at most limit entries. Equal timestamps resolve to the
// earlier stream, then to the higher record id.
func mergeActivities(limit int, streams ...[]Activity) []Activity {
	for _, s := range streams {
		slices.SortStableFunc(s, func(a, b Activity) int {
			if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
				return c
			}
			return cmp.Compare(b.RecordID, a.RecordID)
		})
	}

	out := make([]Activity, 0, limit)
	heads := make([]int, len(streams))
	for len(out) < limit {
		best := -1
		for i, s := range streams {
			if heads[i] >= len(s) {
				continue
			}
			if best < 0 || s[heads[i]].Timestamp.After(streams[best][heads[best]].Timestamp) {
				best = i
			}
		}
		if best < 0 {
			break
		}
		out = append(out, streams[best][heads[best]])
		heads[best]++
	}
	return out
}
