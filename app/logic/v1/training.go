package v1

import (
	"context"
	"net/http"

	"github.com/consulta-ai/consulta-ai/app/core"
	"github.com/consulta-ai/consulta-ai/pkg/errors"
	"github.com/consulta-ai/consulta-ai/pkg/i18n"
	"github.com/consulta-ai/consulta-ai/pkg/types"
)

type TrainingLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewTrainingLogic(ctx context.Context, core *core.Core) *TrainingLogic {
	return &TrainingLogic{
		ctx:  ctx,
		core: core,
	}
}

type TrainRequest struct {
	Kind     string `json:"kind" binding:"required"`
	Content  string `json:"content"`
	Question string `json:"question"`
	SQL      string `json:"sql"`
}

// Train inserts a single knowledge fragment of the requested kind and
// returns its id.
func (l *TrainingLogic) Train(req TrainRequest) (string, error) {
	kind := types.FragmentKind(req.Kind)
	if !kind.Valid() {
		return "", errors.New("TrainingLogic.Train.kind", i18n.ERROR_TRAINING_INVALID_KIND, nil).Code(http.StatusBadRequest)
	}

	knowledge := l.core.Engine().Knowledge()

	var (
		id string
		ok bool
	)
	switch kind {
	case types.FRAGMENT_KIND_SCHEMA, types.FRAGMENT_KIND_DOCUMENTATION:
		if req.Content == "" {
			return "", errors.New("TrainingLogic.Train.content", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
		}
		if kind == types.FRAGMENT_KIND_SCHEMA {
			id, ok = knowledge.AddSchema(l.ctx, req.Content)
		} else {
			id, ok = knowledge.AddDocumentation(l.ctx, req.Content)
		}
	case types.FRAGMENT_KIND_EXAMPLE:
		if req.Question == "" || req.SQL == "" {
			return "", errors.New("TrainingLogic.Train.example", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
		}
		id, ok = knowledge.AddExample(l.ctx, req.Question, req.SQL)
	}
	if !ok {
		return "", errors.New("TrainingLogic.Train.add", i18n.ERROR_TRAINING_FAILED, nil)
	}
	return id, nil
}

// ListAll returns trained fragments, optionally filtered by kind. An
// unknown kind is rejected rather than silently matching nothing.
func (l *TrainingLogic) ListAll(kind string) ([]types.Fragment, error) {
	fragmentKind := types.FragmentKind(kind)
	if kind != "" && !fragmentKind.Valid() {
		return nil, errors.New("TrainingLogic.ListAll.kind", i18n.ERROR_TRAINING_INVALID_KIND, nil).Code(http.StatusBadRequest)
	}
	return l.core.Engine().Knowledge().ListAll(l.ctx, fragmentKind), nil
}

func (l *TrainingLogic) Remove(id string) bool {
	return l.core.Engine().Knowledge().Remove(l.ctx, id)
}

type TrainingSummary struct {
	Total  int64             `json:"total"`
	Counts []types.KindCount `json:"counts"`
}

func (l *TrainingLogic) Summary() TrainingSummary {
	knowledge := l.core.Engine().Knowledge()
	return TrainingSummary{
		Total:  knowledge.Count(l.ctx),
		Counts: knowledge.CountByKind(l.ctx),
	}
}
