package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/deckforge/deckforge/pkg/errors"
)

// Redis key prefixes. Jobs and artifacts live in separate keyspaces so a
// status poll never loads artifact bytes.
const (
	redisJobPrefix      = "deckforge:job:"
	redisArtifactPrefix = "deckforge:artifact:"
)

// RedisJobs is a redis-backed job store for multi-instance deployments.
// Jobs and artifacts expire after ArtifactTTL.
type RedisJobs struct {
	client *redis.Client
}

// RedisConfig holds connection settings for the redis job store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisJobs connects to redis and verifies the connection with a ping.
func NewRedisJobs(ctx context.Context, cfg RedisConfig) (*RedisJobs, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to redis at %s", cfg.Addr)
	}
	return &RedisJobs{client: client}, nil
}

// Create stores a new job with the artifact TTL.
func (r *RedisJobs) Create(ctx context.Context, job *Job) error {
	return r.write(ctx, job)
}

// Get returns the job or a JOB_NOT_FOUND error.
func (r *RedisJobs) Get(ctx context.Context, id string) (*Job, error) {
	data, err := r.client.Get(ctx, redisJobPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, errors.New(errors.ErrCodeJobNotFound, "job %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load job %s", id)
	}
	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode job %s", id)
	}
	return &job, nil
}

// Update replaces the stored job state.
func (r *RedisJobs) Update(ctx context.Context, job *Job) error {
	return r.write(ctx, job)
}

func (r *RedisJobs) write(ctx context.Context, job *Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode job %s", job.ID)
	}
	if err := r.client.Set(ctx, redisJobPrefix+job.ID, data, ArtifactTTL).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "store job %s", job.ID)
	}
	return nil
}

// PutArtifact stores the rendered bytes with the artifact TTL.
func (r *RedisJobs) PutArtifact(ctx context.Context, jobID string, data []byte) error {
	if err := r.client.Set(ctx, redisArtifactPrefix+jobID, data, ArtifactTTL).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "store artifact for job %s", jobID)
	}
	return nil
}

// Artifact returns the stored bytes or a JOB_NOT_FOUND error.
func (r *RedisJobs) Artifact(ctx context.Context, jobID string) ([]byte, error) {
	data, err := r.client.Get(ctx, redisArtifactPrefix+jobID).Bytes()
	if err == redis.Nil {
		return nil, errors.New(errors.ErrCodeJobNotFound, "no artifact for job %s", jobID)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load artifact for job %s", jobID)
	}
	return data, nil
}

// Close releases the redis connection.
func (r *RedisJobs) Close() error {
	return r.client.Close()
}

var _ JobStore = (*RedisJobs)(nil)
