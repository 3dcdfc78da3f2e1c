package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/garrettladley/wellscore/internal/wellness"
	"github.com/garrettladley/wellscore/internal/xerrors"
	"github.com/garrettladley/wellscore/internal/xhttp"
	"github.com/garrettladley/wellscore/internal/xslog"
)

type Score struct {
	engines *wellness.Holder
}

func NewScore(engines *wellness.Holder) *Score {
	return &Score{engines: engines}
}

type ScoreResponse struct {
	Scores wellness.Scores `json:"scores"`
	Grade  wellness.Grade  `json:"grade"`
}

// HandleScore handles POST /api/score requests.
func (h *Score) HandleScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in wellness.MetricInput
	if err := decode(w, r, &in); err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}

	scores := h.engines.Engine().Calculate(in)
	grade := scores.Grade()

	xslog.FromContext(ctx).DebugContext(ctx, "scored metrics", xslog.ScoreGroup(scores.Total, grade.Grade))

	xhttp.WriteOK(w, ScoreResponse{Scores: scores, Grade: grade})
}

// HandleGrade handles GET /api/grade?score= requests.
func (h *Score) HandleGrade(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("score")
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		xerrors.WriteError(r.Context(), w, xerrors.BadRequest(xerrors.WithMessage("score must be a finite number")))
		return
	}
	xhttp.WriteOK(w, wellness.GradeFromScore(score))
}
