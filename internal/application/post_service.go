package application

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/kert-club/community-api/internal/domain/entity"
	repo "github.com/kert-club/community-api/internal/domain/repository"
)

// PostService owns post CRUD and the Elasticsearch search index. Indexing is
// best-effort: a failed index write never fails the request.
type PostService struct {
	Posts        repo.PostRepository
	Users        repo.UserRepository
	ES           *elasticsearch.Client
	ESPostsIndex string
	Logger       *logrus.Logger
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, es *elasticsearch.Client, esPostsIndex string, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Users: users, ES: es, ESPostsIndex: esPostsIndex, Logger: logger}
}

func (s *PostService) List(ctx context.Context) ([]entity.Post, error) {
	return s.Posts.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id int64) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

type CreatePostInput struct {
	Title       string
	Tag         string
	Description string
	Content     string
	StudentID   int64
}

// Create persists a post after resolving the owning user. An unknown owner is
// ErrInvalidReference, checked up front and backstopped by the FK constraint.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*entity.Post, error) {
	exists, err := s.Users.Exists(ctx, in.StudentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrInvalidReference
	}

	p := &entity.Post{
		Title:       in.Title,
		Tag:         in.Tag,
		Description: in.Description,
		Content:     in.Content,
		StudentID:   in.StudentID,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		if errors.Is(err, repo.ErrReferenced) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}

	s.indexPost(ctx, p)
	return p, nil
}

type UpdatePostInput struct {
	Title       string
	Tag         string
	Description string
	Content     string
}

// Update overwrites the mutable fields. Owner and created_at never change.
func (s *PostService) Update(ctx context.Context, id int64, in UpdatePostInput) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p.Title = in.Title
	p.Tag = in.Tag
	p.Description = in.Description
	p.Content = in.Content
	if err := s.Posts.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.indexPost(ctx, p)
	return p, nil
}

// Delete is idempotent; deleting an absent id succeeds.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.Posts.Delete(ctx, id); err != nil {
		return err
	}
	s.deleteFromIndex(ctx, id)
	return nil
}

// PostDoc is the Elasticsearch document shape for a post.
type PostDoc struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
	Content     string `json:"content"`
	StudentID   int64  `json:"student_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (s *PostService) indexPost(ctx context.Context, p *entity.Post) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	doc := PostDoc{
		ID:          p.ID,
		Title:       p.Title,
		Tag:         p.Tag,
		Description: p.Description,
		Content:     p.Content,
		StudentID:   p.StudentID,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESPostsIndex,
		DocumentID: strconv.FormatInt(p.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("post_id", p.ID).WithField("status", res.StatusCode).Warn("es index failed")
	}
}

func (s *PostService) deleteFromIndex(ctx context.Context, id int64) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESPostsIndex, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search runs a multi_match over the indexed posts.
func (s *PostService) Search(ctx context.Context, query string) ([]PostDoc, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []PostDoc{}, nil
	}
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"title^3", "tag^2", "description", "content"},
			},
		},
		"size": 50,
	}
	b, _ := json.Marshal(body)
	req := esapi.SearchRequest{
		Index: []string{s.ESPostsIndex},
		Body:  strings.NewReader(string(b)),
	}
	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, errors.New("search failed: " + res.Status())
	}

	var out struct {
		Hits struct {
			Hits []struct {
				Source PostDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	docs := make([]PostDoc, 0, len(out.Hits.Hits))
	for _, h := range out.Hits.Hits {
		docs = append(docs, h.Source)
	}
	return docs, nil
}
