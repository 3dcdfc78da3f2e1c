package assessment

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/garrettladley/wellscore/internal/wellness"
	"github.com/garrettladley/wellscore/internal/xerrors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

type memoryStore struct {
	mu   sync.Mutex
	rows []Assessment
}

func (m *memoryStore) Create(_ context.Context, a *Assessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, *a)
	return nil
}

func (m *memoryStore) Get(_ context.Context, userID string, id uuid.UUID) (*Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.rows {
		if a.ID == id && a.UserID == userID {
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryStore) List(_ context.Context, userID string) ([]Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Assessment{}
	for _, a := range slices.Backward(m.rows) {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryStore) Delete(_ context.Context, userID string, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.rows {
		if a.ID == id && a.UserID == userID {
			m.rows = slices.Delete(m.rows, i, i+1)
			return nil
		}
	}
	return ErrNotFound
}

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(store Store) *Service {
	return NewService(store, wellness.NewHolder(wellness.DefaultEngine()),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	healthy, _ := wellness.ScenarioByKey("healthyYoungMale")

	tests := []struct {
		name      string
		req       CreateRequest
		wantTitle string
		wantTotal int
		wantGrade string
	}{
		{
			name:      "explicit title",
			req:       CreateRequest{Title: "  Spring labs ", FormData: healthy.Input},
			wantTitle: "Spring labs",
			wantTotal: 98,
			wantGrade: "A+",
		},
		{
			name:      "default title",
			req:       CreateRequest{FormData: healthy.Input},
			wantTitle: "Assessment Jun 15, 2025",
			wantTotal: 98,
			wantGrade: "A+",
		},
		{
			name:      "empty form scores zero",
			req:       CreateRequest{Title: "blank"},
			wantTitle: "blank",
			wantTotal: 0,
			wantGrade: "F",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &memoryStore{}
			svc := newTestService(store)

			a, err := svc.Create(context.Background(), "user-1", tt.req)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if a.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", a.Title, tt.wantTitle)
			}
			if a.Scores.Total != tt.wantTotal || a.Grade.Grade != tt.wantGrade {
				t.Errorf("scored %d/%s, want %d/%s", a.Scores.Total, a.Grade.Grade, tt.wantTotal, tt.wantGrade)
			}
			if !a.CreatedAt.Equal(fixedNow) || !a.UpdatedAt.Equal(fixedNow) {
				t.Errorf("timestamps = %v/%v, want %v", a.CreatedAt, a.UpdatedAt, fixedNow)
			}

			stored, err := svc.Get(context.Background(), "user-1", a.ID)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if diff := cmp.Diff(a, stored); diff != "" {
				t.Errorf("stored mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestService_CreateValidation(t *testing.T) {
	t.Parallel()

	long := make([]rune, MaxTitleLength+1)
	for i := range long {
		long[i] = 'x'
	}

	tests := []struct {
		name       string
		req        CreateRequest
		wantFields map[string]string
	}{
		{
			name:       "title too long",
			req:        CreateRequest{Title: string(long)},
			wantFields: map[string]string{"title": "must be at most 200 characters"},
		},
		{
			name:       "bad sex",
			req:        CreateRequest{FormData: wellness.MetricInput{Sex: "other"}},
			wantFields: map[string]string{"formData.sex": "must be male or female"},
		},
		{
			name: "bad age and sex",
			req:  CreateRequest{FormData: wellness.MetricInput{Age: "thirty", Sex: "x"}},
			wantFields: map[string]string{
				"formData.sex": "must be male or female",
				"formData.age": "must be a number",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &memoryStore{}
			_, err := newTestService(store).Create(context.Background(), "user-1", tt.req)

			appErr := xerrors.As(err)
			if appErr == nil || appErr.StatusCode != http.StatusUnprocessableEntity {
				t.Fatalf("Create() error = %v, want 422", err)
			}
			if diff := cmp.Diff(tt.wantFields, appErr.Validation.Fields); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
			if len(store.rows) != 0 {
				t.Errorf("invalid request was stored")
			}
		})
	}
}

func TestCreateRequest_ValidateAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		age     string
		wantErr bool
	}{
		{age: "", wantErr: false},
		{age: "30", wantErr: false},
		{age: " 42.5 ", wantErr: false},
		{age: "thirty", wantErr: true},
		{age: "NaN", wantErr: true},
		{age: "Inf", wantErr: true},
		{age: "-Inf", wantErr: true},
		{age: "1e308", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.age, func(t *testing.T) {
			t.Parallel()

			fields := CreateRequest{FormData: wellness.MetricInput{Age: tt.age}}.Validate()
			_, gotErr := fields["formData.age"]
			if gotErr != tt.wantErr {
				t.Errorf("Validate() age %q fields = %v, wantErr %v", tt.age, fields, tt.wantErr)
			}
		})
	}
}

func TestService_UsesCurrentWeights(t *testing.T) {
	t.Parallel()

	holder := wellness.NewHolder(wellness.DefaultEngine())
	svc := NewService(&memoryStore{}, holder)

	s, _ := wellness.ScenarioByKey("healthyYoungMale")
	if err := holder.SetWeights(wellness.Weights{Metabolic: 1}); err != nil {
		t.Fatalf("SetWeights() error = %v", err)
	}

	a, err := svc.Create(context.Background(), "u", CreateRequest{FormData: s.Input})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if a.Scores.Total != a.Scores.Metabolic {
		t.Errorf("Total = %d, want metabolic-only %d", a.Scores.Total, a.Scores.Metabolic)
	}
}

func TestService_DeleteForeign(t *testing.T) {
	t.Parallel()

	svc := newTestService(&memoryStore{})
	a, err := svc.Create(context.Background(), "owner", CreateRequest{Title: "x"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := svc.Delete(context.Background(), "intruder", a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
	list, _ := svc.List(context.Background(), "owner")
	if len(list) != 1 {
		t.Errorf("List() len = %d, want 1", len(list))
	}
}

func TestDefaultTitle(t *testing.T) {
	t.Parallel()

	if got := DefaultTitle(time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)); got != "Assessment Jan 2, 2006" {
		t.Errorf("DefaultTitle() = %q", got)
	}
}
