package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"talentbridge/jobboard/internal/models"
)

// JobSearchService maintains a vector index of job postings for the
// "similar jobs" lookup. The disabled variant reports Enabled() == false and
// callers fall back to the SQL industry/job-type filter.
type JobSearchService interface {
	Enabled() bool
	InitCollection() error
	IndexJob(ctx context.Context, job *models.Job) error
	RemoveJob(ctx context.Context, jobID uuid.UUID) error
	SimilarJobs(ctx context.Context, job *models.Job, limit int) ([]uuid.UUID, error)
}

type qdrantJobSearch struct {
	client         *qdrant.Client
	gemini         GeminiService
	chunker        TextChunker
	collectionName string
	vectorSize     uint64
}

func NewJobSearchService(urlStr, apiKey, collectionName string, gemini GeminiService) (JobSearchService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port by default
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantJobSearch{
		client:         client,
		gemini:         gemini,
		chunker:        NewTextChunker(),
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// Enabled implements JobSearchService.
func (s *qdrantJobSearch) Enabled() bool {
	return true
}

// InitCollection implements JobSearchService.
func (s *qdrantJobSearch) InitCollection() error {
	ctx := context.Background()

	exists, err := s.client.CollectionExists(ctx, s.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Collection already exists")
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     s.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", s.collectionName)
	return nil
}

// IndexJob implements JobSearchService.
func (s *qdrantJobSearch) IndexJob(ctx context.Context, job *models.Job) error {
	embedding, err := s.gemini.GenerateEmbedding(ctx, s.embeddingText(job))
	if err != nil {
		return fmt.Errorf("failed to embed job: %w", err)
	}

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDUUID(job.ID.String()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"job_id":   job.ID.String(),
			"title":    job.Title,
			"industry": job.Industry,
		}),
	}

	_, err = s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// RemoveJob implements JobSearchService.
func (s *qdrantJobSearch) RemoveJob(ctx context.Context, jobID uuid.UUID) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("job_id", jobID.String()),
		},
	}

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete job from index: %w", err)
	}

	return nil
}

// SimilarJobs implements JobSearchService. Returns neighbour job IDs,
// excluding the job itself.
func (s *qdrantJobSearch) SimilarJobs(ctx context.Context, job *models.Job, limit int) ([]uuid.UUID, error) {
	embedding, err := s.gemini.GenerateEmbedding(ctx, s.embeddingText(job))
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	filter := &qdrant.Filter{
		MustNot: []*qdrant.Condition{
			qdrant.NewMatch("job_id", job.ID.String()),
		},
	}

	points, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(embedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var ids []uuid.UUID
	for _, point := range points {
		jobID, ok := point.Payload["job_id"]
		if !ok {
			continue
		}
		val, ok := jobID.GetKind().(*qdrant.Value_StringValue)
		if !ok {
			continue
		}
		id, err := uuid.Parse(val.StringValue)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (s *qdrantJobSearch) embeddingText(job *models.Job) string {
	chunks := s.chunker.ChunkText(job.Description, 1000)
	description := ""
	if len(chunks) > 0 {
		description = chunks[0]
	}
	return strings.TrimSpace(job.Title + "\n" + description)
}

type disabledJobSearch struct{}

func NewDisabledJobSearchService() JobSearchService {
	return &disabledJobSearch{}
}

// Enabled implements JobSearchService.
func (s *disabledJobSearch) Enabled() bool { return false }

// InitCollection implements JobSearchService.
func (s *disabledJobSearch) InitCollection() error { return nil }

// IndexJob implements JobSearchService.
func (s *disabledJobSearch) IndexJob(ctx context.Context, job *models.Job) error { return nil }

// RemoveJob implements JobSearchService.
func (s *disabledJobSearch) RemoveJob(ctx context.Context, jobID uuid.UUID) error { return nil }

// SimilarJobs implements JobSearchService.
func (s *disabledJobSearch) SimilarJobs(ctx context.Context, job *models.Job, limit int) ([]uuid.UUID, error) {
	return nil, nil
}
