package repo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workdesk/workdesk/internal/modules/model"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func ptr[T any](v T) *T { return &v }

type backend struct {
	name     string
	tasks    func(Clock) Store[model.Task]
	users    func(Clock) Store[model.User]
	invoices func(Clock) Store[model.Invoice]
	tickets  func(Clock) Store[model.SupportTicket]
}

func runStoreSuite(t *testing.T, b backend) {
	ctx := context.Background()

	t.Run("ids are monotonic and never reused", func(t *testing.T) {
		s := b.tasks(newFakeClock().Now)
		a := &model.Task{Name: "a"}
		c := &model.Task{Name: "b"}
		require.NoError(t, s.Create(ctx, a))
		require.NoError(t, s.Create(ctx, c))
		assert.Less(t, a.ID, c.ID)

		ok, err := s.Delete(ctx, c.ID)
		require.NoError(t, err)
		require.True(t, ok)

		d := &model.Task{Name: "c"}
		require.NoError(t, s.Create(ctx, d))
		assert.Greater(t, d.ID, c.ID)
	})

	t.Run("create stamps createdAt and clears lifecycle fields", func(t *testing.T) {
		clk := newFakeClock()
		s := b.tasks(clk.Now)
		in := &model.Task{Name: "x", Status: model.TaskStatusCompleted, CompletedAt: ptr(time.Unix(1, 0))}
		require.NoError(t, s.Create(ctx, in))

		got, err := s.Get(ctx, in.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.CreatedAt.Equal(clk.Now()))
		assert.Nil(t, got.CompletedAt)
		assert.Equal(t, model.TaskPriorityMedium, got.Priority)
	})

	t.Run("get miss is not an error", func(t *testing.T) {
		s := b.tasks(nil)
		got, err := s.Get(ctx, 4242)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("create rejects missing required fields", func(t *testing.T) {
		s := b.tasks(nil)
		err := s.Create(ctx, &model.Task{})
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Fields[0].Field)
	})

	t.Run("completedAt is written once across leaving and re-entering completed", func(t *testing.T) {
		clk := newFakeClock()
		s := b.tasks(clk.Now)
		task := &model.Task{Name: "ship it"}
		require.NoError(t, s.Create(ctx, task))

		clk.Advance(time.Hour)
		first := clk.Now()
		got, err := s.Update(ctx, task.ID, model.TaskPatch{Status: ptr(model.TaskStatusCompleted)})
		require.NoError(t, err)
		require.NotNil(t, got.CompletedAt)
		assert.True(t, got.CompletedAt.Equal(first))

		clk.Advance(time.Hour)
		got, err = s.Update(ctx, task.ID, model.TaskPatch{Status: ptr(model.TaskStatusBacklog)})
		require.NoError(t, err)
		require.NotNil(t, got.CompletedAt, "leaving completed does not clear completedAt")
		assert.True(t, got.CompletedAt.Equal(first))

		// Re-entering completed keeps the first stamp. Whether it should
		// record the most recent completion instead is still undecided.
		clk.Advance(time.Hour)
		got, err = s.Update(ctx, task.ID, model.TaskPatch{Status: ptr(model.TaskStatusCompleted)})
		require.NoError(t, err)
		require.NotNil(t, got.CompletedAt)
		assert.True(t, got.CompletedAt.Equal(first), "re-entry moved completedAt to %v", got.CompletedAt)

		clk.Advance(time.Hour)
		got, err = s.Update(ctx, task.ID, model.TaskPatch{Status: ptr(model.TaskStatusCompleted)})
		require.NoError(t, err)
		assert.True(t, got.CompletedAt.Equal(first))
	})

	t.Run("patch without status keeps the lifecycle timestamp", func(t *testing.T) {
		clk := newFakeClock()
		s := b.invoices(clk.Now)
		inv := &model.Invoice{ClientID: 1, Value: 100, DueDate: clk.Now().AddDate(0, 0, 30)}
		require.NoError(t, s.Create(ctx, inv))
		assert.Equal(t, model.InvoiceStatusPending, inv.Status)

		got, err := s.Update(ctx, inv.ID, model.InvoicePatch{Status: ptr(model.InvoiceStatusPaid)})
		require.NoError(t, err)
		require.NotNil(t, got.PaidAt)
		paidAt := *got.PaidAt

		clk.Advance(time.Hour)
		got, err = s.Update(ctx, inv.ID, model.InvoicePatch{Value: ptr(250.0)})
		require.NoError(t, err)
		assert.Equal(t, 250.0, got.Value)
		assert.Equal(t, model.InvoiceStatusPaid, got.Status)
		assert.True(t, got.PaidAt.Equal(paidAt))
	})

	t.Run("closedAt follows the same rule", func(t *testing.T) {
		clk := newFakeClock()
		s := b.tickets(clk.Now)
		tk := &model.SupportTicket{ClientID: 9, Title: "printer on fire"}
		require.NoError(t, s.Create(ctx, tk))
		assert.Equal(t, model.TicketStatusOpen, tk.Status)

		got, err := s.Update(ctx, tk.ID, model.SupportTicketPatch{Status: ptr(model.TicketStatusInProgress)})
		require.NoError(t, err)
		assert.Nil(t, got.ClosedAt)

		got, err = s.Update(ctx, tk.ID, model.SupportTicketPatch{Status: ptr(model.TicketStatusClosed)})
		require.NoError(t, err)
		require.NotNil(t, got.ClosedAt)
		closedAt := clk.Now()
		assert.True(t, got.ClosedAt.Equal(closedAt))

		clk.Advance(time.Hour)
		_, err = s.Update(ctx, tk.ID, model.SupportTicketPatch{Status: ptr(model.TicketStatusOpen)})
		require.NoError(t, err)
		clk.Advance(time.Hour)
		got, err = s.Update(ctx, tk.ID, model.SupportTicketPatch{Status: ptr(model.TicketStatusClosed)})
		require.NoError(t, err)
		require.NotNil(t, got.ClosedAt)
		assert.True(t, got.ClosedAt.Equal(closedAt))
	})

	t.Run("update miss returns nil", func(t *testing.T) {
		s := b.tasks(nil)
		got, err := s.Update(ctx, 999, model.TaskPatch{Name: ptr("nope")})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update validates the merged record", func(t *testing.T) {
		s := b.tasks(nil)
		task := &model.Task{Name: "valid"}
		require.NoError(t, s.Create(ctx, task))

		_, err := s.Update(ctx, task.ID, model.TaskPatch{Name: ptr("")})
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)

		got, err := s.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "valid", got.Name)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := b.tasks(nil)
		task := &model.Task{Name: "gone"}
		require.NoError(t, s.Create(ctx, task))

		ok, err := s.Delete(ctx, task.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.Delete(ctx, task.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("list filters by foreign key in insertion order", func(t *testing.T) {
		s := b.tasks(nil)
		for _, tk := range []*model.Task{
			{Name: "p1-a", ProjectID: ptr(uint(1))},
			{Name: "p2-a", ProjectID: ptr(uint(2))},
			{Name: "none"},
			{Name: "p1-b", ProjectID: ptr(uint(1))},
		} {
			require.NoError(t, s.Create(ctx, tk))
		}

		all, err := s.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 4)

		p1, err := s.List(ctx, Filter{"project_id": uint(1)})
		require.NoError(t, err)
		require.Len(t, p1, 2)
		assert.Equal(t, "p1-a", p1[0].Name)
		assert.Equal(t, "p1-b", p1[1].Name)

		n, err := s.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 4, n)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		s := b.users(nil)
		require.NoError(t, s.Create(ctx, &model.User{Name: "Ada", Email: "ada@example.com", Username: "ada"}))

		err := s.Create(ctx, &model.User{Name: "Ada 2", Email: "ada2@example.com", Username: "ada"})
		assert.True(t, errors.Is(err, ErrDuplicateKey), "got %v", err)

		bob := &model.User{Name: "Bob", Email: "bob@example.com", Username: "bob"}
		require.NoError(t, s.Create(ctx, bob))
		_, err = s.Update(ctx, bob.ID, model.UserPatch{Email: ptr("ada@example.com")})
		assert.True(t, errors.Is(err, ErrDuplicateKey), "got %v", err)
	})

	t.Run("find one by unique field", func(t *testing.T) {
		s := b.users(nil)
		require.NoError(t, s.Create(ctx, &model.User{Name: "Cyd", Email: "cyd@example.com", Username: "cyd"}))

		got, err := s.FindOne(ctx, "username", "cyd")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "cyd@example.com", got.Email)

		got, err = s.FindOne(ctx, "email", "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
