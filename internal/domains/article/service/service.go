package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/antoniomp17/WebPsicolog-a/config"
	"github.com/antoniomp17/WebPsicolog-a/infras/otel"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/article/model"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/article/model/dto"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/article/repository"
	"github.com/antoniomp17/WebPsicolog-a/shared"
	"github.com/antoniomp17/WebPsicolog-a/shared/cache"
	"github.com/antoniomp17/WebPsicolog-a/shared/constant"
	gDto "github.com/antoniomp17/WebPsicolog-a/shared/dto"
	"github.com/antoniomp17/WebPsicolog-a/shared/failure"
)

const (
	cacheGetArticle    = "article:get"
	cacheGetAllArticle = "article:gets"
	cacheCountArticle  = "article:count"
)

const (
	msgArticleNotFound = "Artículo no encontrado"
	msgSlugTaken       = "Ya existe un artículo con esa URL"
)

type Article interface {
	Create(ctx context.Context, req dto.CreateArticleRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetArticlesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, idOrSlug string) (dto.ArticleResponse, error)
	Update(ctx context.Context, req dto.UpdateArticleRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Article
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Article, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Article {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateArticleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	article := req.ToModel(user)

	taken, err := s.repo.Exist(ctx, filterBySlug(article.Slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to check article slug")

		return fmt.Errorf("failed to check article slug: %w", err)
	}

	if taken {
		return failure.BadRequestFromString(msgSlugTaken) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, article); err != nil {
		log.Error().Err(err).Msg("failed to create article")

		return fmt.Errorf("failed to create article: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllArticle)
		shared.InvalidateCaches(c, s.cache, cacheCountArticle)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetArticlesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllArticle, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for articles")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count articles")

		return res, fmt.Errorf("failed to count articles: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get articles")

		return res, fmt.Errorf("failed to get articles: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save articles to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountArticle, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for article count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count articles")

		return res, fmt.Errorf("failed to count articles: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save article count to cache")
		}
	}()

	return res, nil
}

// Get resolves an article by its ID, falling back to the slug.
func (s *serviceImpl) Get(ctx context.Context, idOrSlug string) (res dto.ArticleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetArticle, idOrSlug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for article")

		return res, nil
	}

	article, err := s.repo.Get(ctx, shared.FilterByID(idOrSlug, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get article")

		return res, fmt.Errorf("failed to get article: %w", err)
	}

	if article.ID == constant.Empty {
		article, err = s.repo.Get(ctx, filterBySlug(idOrSlug))
		if err != nil {
			log.Error().Err(err).Msg("failed to get article by slug")

			return res, fmt.Errorf("failed to get article by slug: %w", err)
		}
	}

	if article.ID == constant.Empty {
		return res, failure.NotFound(msgArticleNotFound) // nolint:wrapcheck
	}

	res.FromModel(article)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save article to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateArticleRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check article existence")

		return fmt.Errorf("failed to check article existence: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Str("id", id).Msg("article not found")

		return failure.NotFound(msgArticleNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update article")

		return fmt.Errorf("failed to update article: %w", err)
	}

	s.dropArticleCaches(ctx, current.ID, current.Slug)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check article existence")

		return fmt.Errorf("failed to check article existence: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Str("id", id).Msg("article not found")

		return failure.NotFound(msgArticleNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete article")

		return fmt.Errorf("failed to delete article: %w", err)
	}

	s.dropArticleCaches(ctx, current.ID, current.Slug)

	return nil
}

func (s *serviceImpl) dropArticleCaches(ctx context.Context, id, slug string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetArticle, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete article from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetArticle, slug)); err != nil {
			log.Error().Err(err).Msg("failed to delete article slug cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllArticle)
		shared.InvalidateCaches(c, s.cache, cacheCountArticle)
	}()
}

func filterBySlug(slug string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSlug,
				Value:    slug,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
