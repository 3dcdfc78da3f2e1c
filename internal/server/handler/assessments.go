package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/garrettladley/wellscore/internal/assessment"
	"github.com/garrettladley/wellscore/internal/xcontext"
	"github.com/garrettladley/wellscore/internal/xerrors"
	"github.com/garrettladley/wellscore/internal/xhttp"
	"github.com/garrettladley/wellscore/internal/xslog"
	"github.com/google/uuid"
)

type AssessmentService interface {
	Create(ctx context.Context, userID string, req assessment.CreateRequest) (*assessment.Assessment, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (*assessment.Assessment, error)
	List(ctx context.Context, userID string) ([]assessment.Assessment, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type Assessments struct {
	service AssessmentService
}

func NewAssessments(service AssessmentService) *Assessments {
	return &Assessments{service: service}
}

type assessmentResponse struct {
	Assessment *assessment.Assessment `json:"assessment"`
}

type assessmentsResponse struct {
	Assessments []assessment.Assessment `json:"assessments"`
}

var errAssessmentNotFound = xerrors.NotFound(xerrors.WithMessage("assessment not found"))

// HandleCreate handles POST /api/assessments requests.
func (h *Assessments) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := xcontext.GetUserID(ctx)
	if !ok {
		xerrors.WriteError(ctx, w, xerrors.Unauthorized(xerrors.WithMessage("missing user context")))
		return
	}

	var req assessment.CreateRequest
	if err := decode(w, r, &req); err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}

	a, err := h.service.Create(ctx, userID, req)
	if err != nil {
		if xerrors.As(err) == nil {
			err = xerrors.Internal(xerrors.WithMessage("failed to save assessment"), xerrors.WithCause(err))
		}
		xerrors.WriteError(ctx, w, err)
		return
	}

	xslog.FromContext(ctx).InfoContext(ctx, "assessment saved",
		xslog.AssessmentID(a.ID.String()),
		xslog.ScoreGroup(a.Scores.Total, a.Grade.Grade),
	)

	xhttp.WriteCreated(w, assessmentResponse{Assessment: a})
}

// HandleList handles GET /api/assessments requests.
func (h *Assessments) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := xcontext.GetUserID(ctx)
	if !ok {
		xerrors.WriteError(ctx, w, xerrors.Unauthorized(xerrors.WithMessage("missing user context")))
		return
	}

	list, err := h.service.List(ctx, userID)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to fetch assessments"), xerrors.WithCause(err)))
		return
	}

	xslog.FromContext(ctx).DebugContext(ctx, "listed assessments", xslog.Count(len(list)))

	xhttp.WriteOK(w, assessmentsResponse{Assessments: list})
}

// HandleGet handles GET /api/assessments/{id} requests.
func (h *Assessments) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, id, ok := h.target(w, r)
	if !ok {
		return
	}

	a, err := h.service.Get(ctx, userID, id)
	if err != nil {
		xerrors.WriteError(ctx, w, mapStoreError(err, "failed to fetch assessment"))
		return
	}

	xhttp.WriteOK(w, assessmentResponse{Assessment: a})
}

// HandleDelete handles DELETE /api/assessments/{id} requests.
func (h *Assessments) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, id, ok := h.target(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		xerrors.WriteError(ctx, w, mapStoreError(err, "failed to delete assessment"))
		return
	}

	xslog.FromContext(ctx).InfoContext(ctx, "assessment deleted", xslog.AssessmentID(id.String()))

	xhttp.WriteNoContent(w)
}

// target resolves the caller and the {id} path value. A malformed id can
// never match a row, so it is reported as not found.
func (h *Assessments) target(w http.ResponseWriter, r *http.Request) (string, uuid.UUID, bool) {
	ctx := r.Context()

	userID, ok := xcontext.GetUserID(ctx)
	if !ok {
		xerrors.WriteError(ctx, w, xerrors.Unauthorized(xerrors.WithMessage("missing user context")))
		return "", uuid.Nil, false
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		xerrors.WriteError(ctx, w, errAssessmentNotFound)
		return "", uuid.Nil, false
	}

	return userID, id, true
}

func mapStoreError(err error, msg string) error {
	if errors.Is(err, assessment.ErrNotFound) {
		return errAssessmentNotFound
	}
	return xerrors.Internal(xerrors.WithMessage(msg), xerrors.WithCause(err))
}
