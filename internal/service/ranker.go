package service

import (
	"math"
	"sort"

	"unicourse_backend/internal/model"
)

// Candidate 参与排序的课程向量
type Candidate struct {
	ID     string
	Vector model.Vector
}

// Match 单条匹配结果
type Match struct {
	ID    string
	Score float64
}

// CosineSimilarity 余弦相似度。零向量或维度不一致时返回0，绝不产生NaN
func CosineSimilarity(a, b model.Vector) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}

	if magA == 0 || magB == 0 {
		return 0
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// RankTopK 按相似度降序返回至多k条匹配。
// 相同分数保持候选的原始顺序，保证结果可复现
func RankTopK(query model.Vector, candidates []Candidate, k int) []Match {
	if k <= 0 || len(candidates) == 0 {
		return []Match{}
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		matches = append(matches, Match{
			ID:    c.ID,
			Score: CosineSimilarity(query, c.Vector),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}
