package service

import (
	"math"
	"testing"

	"unicourse_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    model.Vector
		b    model.Vector
		want float64
	}{
		{"identical direction", model.Vector{1, 2, 3}, model.Vector{2, 4, 6}, 1.0},
		{"orthogonal", model.Vector{1, 0, 0}, model.Vector{0, 1, 0}, 0.0},
		{"opposite", model.Vector{1, 0}, model.Vector{-1, 0}, -1.0},
		{"zero query", model.Vector{0, 0, 0}, model.Vector{1, 2, 3}, 0.0},
		{"zero candidate", model.Vector{1, 2, 3}, model.Vector{0, 0, 0}, 0.0},
		{"both zero", model.Vector{0, 0}, model.Vector{0, 0}, 0.0},
		{"length mismatch", model.Vector{1, 2}, model.Vector{1, 2, 3}, 0.0},
		{"empty", model.Vector{}, model.Vector{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			assert.False(t, math.IsNaN(got), "similarity must never be NaN")
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestRankTopK(t *testing.T) {
	query := model.Vector{1, 0}
	candidates := []Candidate{
		{ID: "low", Vector: model.Vector{0.5, math.Sqrt(0.75)}},
		{ID: "high", Vector: model.Vector{1, 0}},
		{ID: "mid", Vector: model.Vector{math.Sqrt(0.75), 0.5}},
	}

	matches := RankTopK(query, candidates, 5)

	assert.Len(t, matches, 3)
	assert.Equal(t, "high", matches[0].ID)
	assert.Equal(t, "mid", matches[1].ID)
	assert.Equal(t, "low", matches[2].ID)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-9)
}

func TestRankTopKCapsAtK(t *testing.T) {
	query := model.Vector{1, 0}
	candidates := make([]Candidate, 10)
	for i := range candidates {
		candidates[i] = Candidate{ID: string(rune('a' + i)), Vector: model.Vector{1, float64(i)}}
	}

	matches := RankTopK(query, candidates, 5)
	assert.Len(t, matches, 5)

	// 结果只来自输入候选
	ids := make(map[string]bool)
	for _, c := range candidates {
		ids[c.ID] = true
	}
	for _, m := range matches {
		assert.True(t, ids[m.ID])
	}
}

func TestRankTopKEmptyCandidates(t *testing.T) {
	matches := RankTopK(model.Vector{1, 0}, nil, 5)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestRankTopKStableTieBreak(t *testing.T) {
	query := model.Vector{1, 0}
	// 三个候选同分，保持先见顺序
	candidates := []Candidate{
		{ID: "first", Vector: model.Vector{2, 0}},
		{ID: "second", Vector: model.Vector{3, 0}},
		{ID: "third", Vector: model.Vector{0.5, 0}},
	}

	matches := RankTopK(query, candidates, 3)

	assert.Equal(t, "first", matches[0].ID)
	assert.Equal(t, "second", matches[1].ID)
	assert.Equal(t, "third", matches[2].ID)
}

func TestRankTopKZeroMagnitudeCandidate(t *testing.T) {
	query := model.Vector{1, 0}
	candidates := []Candidate{
		{ID: "zero", Vector: model.Vector{0, 0}},
		{ID: "real", Vector: model.Vector{1, 0}},
	}

	matches := RankTopK(query, candidates, 2)

	assert.Equal(t, "real", matches[0].ID)
	assert.Equal(t, "zero", matches[1].ID)
	assert.Equal(t, 0.0, matches[1].Score)
}
