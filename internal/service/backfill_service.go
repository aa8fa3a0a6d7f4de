package service

import (
	"context"
	"strings"

	"unicourse_backend/internal/config"
	"unicourse_backend/internal/model"
	"unicourse_backend/internal/repository"
	"unicourse_backend/internal/util"
	"unicourse_backend/pkg/logger"
	"unicourse_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// BackfillReport 回填任务的聚合结果
type BackfillReport struct {
	Processed int `json:"coursesProcessed"`
	Failed    int `json:"failures"`
}

// EmbeddingStatus 目录向量覆盖情况
type EmbeddingStatus struct {
	TotalCourses      int64 `json:"totalCourses"`
	MissingEmbeddings int64 `json:"missingEmbeddings"`
}

// BackfillService 为缺失向量的课程批量生成向量。
// 约定为 Course.Embedding 的唯一写入方
type BackfillService struct {
	embedder Embedder
	courses  *repository.CourseRepository
	cfg      config.EmbeddingConfig
}

func NewBackfillService(embedder Embedder, courses *repository.CourseRepository, cfg config.EmbeddingConfig) *BackfillService {
	return &BackfillService{
		embedder: embedder,
		courses:  courses,
		cfg:      cfg,
	}
}

// BuildCourseText 课程描述文本，字段顺序固定，列表以逗号拼接
func BuildCourseText(c *model.Course) string {
	return strings.Join([]string{
		"Title: " + c.Title,
		"University: " + c.University,
		"Field: " + c.Field,
		"Description: " + c.Description,
		"Key Subjects: " + strings.Join(c.KeySubjects, ", "),
		"Career Prospects: " + strings.Join(c.CareerProspects, ", "),
	}, "\n")
}

// BackfillAll 逐批处理缺失向量的课程。
// 单课程失败只计数不中断；批次之间固定停顿以避开限流。
// 仅在存储本身不可用时返回错误
func (s *BackfillService) BackfillAll(ctx context.Context) (*BackfillReport, error) {
	missing, err := s.courses.FindMissingEmbeddings()
	if err != nil {
		return nil, util.PersistenceError("list courses missing embeddings", err)
	}

	report := &BackfillReport{}
	if len(missing) == 0 {
		logger.Log.Info("All courses already have embeddings")
		return report, nil
	}

	batchSize := s.cfg.BatchSize
	totalBatches := (len(missing) + batchSize - 1) / batchSize

	logger.Log.Info("Starting embedding backfill",
		zap.Int("courses", len(missing)),
		zap.Int("batches", totalBatches))

	for start := 0; start < len(missing); start += batchSize {
		end := start + batchSize
		if end > len(missing) {
			end = len(missing)
		}
		batch := missing[start:end]

		logger.Log.Info("Processing backfill batch",
			zap.Int("batch", start/batchSize+1),
			zap.Int("totalBatches", totalBatches),
			zap.Int("size", len(batch)))

		for i := range batch {
			course := &batch[i]
			if err := s.backfillOne(ctx, course); err != nil {
				report.Failed++
				monitoring.BackfillFailedCounter.Inc()
				logger.Log.Error("Failed to generate course embedding",
					zap.String("courseId", course.ID),
					zap.String("title", course.Title),
					zap.Error(err))
				continue
			}
			report.Processed++
			monitoring.BackfillProcessedCounter.Inc()
		}

		// 批间停顿，独立于单次调用的重试退避
		if end < len(missing) {
			if err := sleepCtx(ctx, s.cfg.BatchPause); err != nil {
				return report, err
			}
		}
	}

	logger.Log.Info("Embedding backfill complete",
		zap.Int("processed", report.Processed),
		zap.Int("failed", report.Failed))

	return report, nil
}

func (s *BackfillService) backfillOne(ctx context.Context, course *model.Course) error {
	embedding, err := s.embedder.Embed(ctx, BuildCourseText(course))
	if err != nil {
		return err
	}
	return s.courses.UpdateEmbedding(course.ID, embedding)
}

// Status 目录总数与缺失向量数，供管理端展示
func (s *BackfillService) Status() (*EmbeddingStatus, error) {
	total, err := s.courses.Count()
	if err != nil {
		return nil, util.PersistenceError("count courses", err)
	}
	missing, err := s.courses.CountMissingEmbeddings()
	if err != nil {
		return nil, util.PersistenceError("count courses missing embeddings", err)
	}
	return &EmbeddingStatus{TotalCourses: total, MissingEmbeddings: missing}, nil
}
