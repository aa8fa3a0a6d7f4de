package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"unicourse_backend/internal/model"
	"unicourse_backend/internal/repository"
	"unicourse_backend/internal/util"
	"unicourse_backend/pkg/logger"
	"unicourse_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TopK 每份提交保留的推荐条数
const TopK = 5

// FieldPlaceholder 未填写字段的占位文本，参与向量化以保持文本结构稳定
const FieldPlaceholder = "Not specified"

type StudentProfile struct {
	CurrentProgram    string `json:"currentProgram"`
	FavoriteSubjects  string `json:"favoriteSubjects"`
	DifficultSubjects string `json:"difficultSubjects"`
	Strengths         string `json:"strengths"`
	TaskPreference    string `json:"taskPreference"`
	CareerInterests   string `json:"careerInterests"`
}

type CourseMatch struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	University        string   `json:"university"`
	Field             string   `json:"field"`
	MatchPercentage   int      `json:"matchPercentage"`
	Duration          string   `json:"duration"`
	Location          string   `json:"location"`
	Description       string   `json:"description"`
	KeySubjects       []string `json:"keySubjects"`
	CareerProspects   []string `json:"careerProspects"`
	EntryRequirements string   `json:"entryRequirements"`
	AverageSalary     string   `json:"averageSalary"`
	EmploymentRate    string   `json:"employmentRate"`
	SimilarityScore   float64  `json:"similarityScore"`
}

type RecommendationResult struct {
	StudentResponseID string        `json:"studentResponseId"`
	Matches           []CourseMatch `json:"recommendations"`
}

type RecommendationService struct {
	embedder  Embedder
	courses   *repository.CourseRepository
	responses *repository.StudentResponseRepository
	recs      *repository.RecommendationRepository
}

func NewRecommendationService(
	embedder Embedder,
	courses *repository.CourseRepository,
	responses *repository.StudentResponseRepository,
	recs *repository.RecommendationRepository,
) *RecommendationService {
	return &RecommendationService{
		embedder:  embedder,
		courses:   courses,
		responses: responses,
		recs:      recs,
	}
}

// normalize 缺失字段替换为占位文本，不因缺字段而失败
func (p StudentProfile) normalize() StudentProfile {
	fill := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return FieldPlaceholder
		}
		return s
	}
	return StudentProfile{
		CurrentProgram:    fill(p.CurrentProgram),
		FavoriteSubjects:  fill(p.FavoriteSubjects),
		DifficultSubjects: fill(p.DifficultSubjects),
		Strengths:         fill(p.Strengths),
		TaskPreference:    fill(p.TaskPreference),
		CareerInterests:   fill(p.CareerInterests),
	}
}

// BuildProfileText 固定顺序、固定标签拼接画像文本。
// 顺序与标签不可改动，向量的可复现性依赖于此
func BuildProfileText(p StudentProfile) string {
	return strings.Join([]string{
		"Current Program: " + p.CurrentProgram,
		"Favorite Subjects: " + p.FavoriteSubjects,
		"Difficult Subjects: " + p.DifficultSubjects,
		"Strengths: " + p.Strengths,
		"Task Preference: " + p.TaskPreference,
		"Career Interests: " + p.CareerInterests,
	}, "\n")
}

// Recommend 完整推荐流水线：画像文本 → 向量 → 落库 → 候选排序 → 推荐落库。
// 推荐行写入失败仅记录日志，已落库的 StudentResponse 不回滚
func (s *RecommendationService) Recommend(ctx context.Context, profile StudentProfile) (*RecommendationResult, error) {
	normalized := profile.normalize()
	text := BuildProfileText(normalized)

	embedding, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	response := &model.StudentResponse{
		CurrentProgram:    normalized.CurrentProgram,
		FavoriteSubjects:  normalized.FavoriteSubjects,
		DifficultSubjects: normalized.DifficultSubjects,
		Strengths:         normalized.Strengths,
		TaskPreference:    normalized.TaskPreference,
		CareerInterests:   normalized.CareerInterests,
		Embedding:         embedding,
	}
	if err := s.responses.Create(response); err != nil {
		return nil, util.PersistenceError("save student response", err)
	}

	courses, err := s.courses.FindWithEmbeddings()
	if err != nil {
		return nil, util.PersistenceError("load candidate courses", err)
	}
	if len(courses) == 0 {
		return nil, util.ErrNoCandidatesAvailable
	}

	byID := make(map[string]*model.Course, len(courses))
	candidates := make([]Candidate, 0, len(courses))
	for i := range courses {
		byID[courses[i].ID] = &courses[i]
		candidates = append(candidates, Candidate{ID: courses[i].ID, Vector: courses[i].Embedding})
	}

	matches := RankTopK(embedding, candidates, TopK)

	rows := make([]model.Recommendation, 0, len(matches))
	for i, m := range matches {
		rows = append(rows, model.Recommendation{
			StudentResponseID: response.ID,
			CourseID:          m.ID,
			SimilarityScore:   m.Score,
			Rank:              i + 1,
		})
	}
	if err := s.recs.CreateBatch(rows); err != nil {
		// 推荐行只是审计记录，用户结果来自内存中的排序
		logger.Log.Error("Failed to persist recommendations",
			zap.String("studentResponseId", response.ID),
			zap.Error(err))
	}

	result := &RecommendationResult{
		StudentResponseID: response.ID,
		Matches:           make([]CourseMatch, 0, len(matches)),
	}
	for _, m := range matches {
		result.Matches = append(result.Matches, newCourseMatch(byID[m.ID], m.Score))
	}

	monitoring.RecommendationCounter.Inc()
	logger.Log.Info("Generated recommendations",
		zap.String("studentResponseId", response.ID),
		zap.Int("candidates", len(courses)),
		zap.Int("matches", len(matches)))

	return result, nil
}

// GetByStudentResponse 读取某次提交持久化的推荐集合
func (s *RecommendationService) GetByStudentResponse(responseID string) (*RecommendationResult, error) {
	if _, err := s.responses.FindByID(responseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResponseNotFound
		}
		return nil, util.PersistenceError("load student response", err)
	}

	rows, err := s.recs.FindByStudentResponse(responseID)
	if err != nil {
		return nil, util.PersistenceError("load recommendations", err)
	}

	result := &RecommendationResult{
		StudentResponseID: responseID,
		Matches:           make([]CourseMatch, 0, len(rows)),
	}
	for _, row := range rows {
		if row.Course == nil {
			continue
		}
		result.Matches = append(result.Matches, newCourseMatch(row.Course, row.SimilarityScore))
	}
	return result, nil
}

func newCourseMatch(c *model.Course, score float64) CourseMatch {
	if c == nil {
		return CourseMatch{SimilarityScore: score}
	}
	return CourseMatch{
		ID:                c.ID,
		Title:             c.Title,
		University:        c.University,
		Field:             c.Field,
		MatchPercentage:   int(math.Round(score * 100)),
		Duration:          c.Duration,
		Location:          c.Location,
		Description:       c.Description,
		KeySubjects:       c.KeySubjects,
		CareerProspects:   c.CareerProspects,
		EntryRequirements: c.EntryRequirements,
		AverageSalary:     c.AverageSalary,
		EmploymentRate:    c.EmploymentRate,
		SimilarityScore:   score,
	}
}
