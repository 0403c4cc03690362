package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/antoniomp17/WebPsicolog-a/config"
	"github.com/antoniomp17/WebPsicolog-a/infras/otel"
	"github.com/antoniomp17/WebPsicolog-a/infras/s3"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/course/model"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/course/model/dto"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/course/repository"
	"github.com/antoniomp17/WebPsicolog-a/shared"
	"github.com/antoniomp17/WebPsicolog-a/shared/cache"
	"github.com/antoniomp17/WebPsicolog-a/shared/constant"
	gDto "github.com/antoniomp17/WebPsicolog-a/shared/dto"
	"github.com/antoniomp17/WebPsicolog-a/shared/failure"
)

const (
	cacheGetCourse    = "course:get"
	cacheGetAllCourse = "course:gets"
	cacheCountCourse  = "course:count"
)

const (
	msgCourseNotFound = "Curso no encontrado"
	msgSlugTaken      = "Ya existe un curso con esa URL"
)

type Course interface {
	Create(ctx context.Context, req dto.CreateCourseRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCoursesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, idOrSlug string) (dto.CourseResponse, error)
	Update(ctx context.Context, req dto.UpdateCourseRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Course
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Course, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Course {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCourseRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	course := req.ToModel(user, constant.Empty)

	taken, err := s.repo.Exist(ctx, filterBySlug(course.Slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to check course slug")

		return fmt.Errorf("failed to check course slug: %w", err)
	}

	if taken {
		return failure.BadRequestFromString(msgSlugTaken) // nolint:wrapcheck
	}

	var uploadedObjectName string

	if req.Image != nil {
		url, objectName, uploadErr := s.uploadImage(ctx, req.ImageFile, req.Image)
		if uploadErr != nil {
			return uploadErr
		}

		course.Image = url
		uploadedObjectName = objectName
	}

	if err = s.repo.Insert(ctx, course); err != nil {
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, uploadedObjectName)
		}

		log.Error().Err(err).Msg("failed to create course")

		return fmt.Errorf("failed to create course: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCourse)
		shared.InvalidateCaches(c, s.cache, cacheCountCourse)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCoursesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCourse, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for courses")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count courses")

		return res, fmt.Errorf("failed to count courses: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get courses")

		return res, fmt.Errorf("failed to get courses: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save courses to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCourse, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for course count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count courses")

		return res, fmt.Errorf("failed to count courses: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save course count to cache")
		}
	}()

	return res, nil
}

// Get resolves a course by its ID, falling back to the slug so public
// pages can link by either.
func (s *serviceImpl) Get(ctx context.Context, idOrSlug string) (res dto.CourseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCourse, idOrSlug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for course")

		return res, nil
	}

	course, err := s.repo.Get(ctx, shared.FilterByID(idOrSlug, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get course")

		return res, fmt.Errorf("failed to get course: %w", err)
	}

	if course.ID == constant.Empty {
		course, err = s.repo.Get(ctx, filterBySlug(idOrSlug))
		if err != nil {
			log.Error().Err(err).Msg("failed to get course by slug")

			return res, fmt.Errorf("failed to get course by slug: %w", err)
		}
	}

	if course.ID == constant.Empty {
		return res, failure.NotFound(msgCourseNotFound) // nolint:wrapcheck
	}

	res.FromModel(course)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save course to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCourseRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check course existence")

		return fmt.Errorf("failed to check course existence: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Str("id", id).Msg("course not found")

		return failure.NotFound(msgCourseNotFound) // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName

	imageURL := constant.Empty

	var uploadedObjectName string

	if req.Image != nil {
		imageURL, uploadedObjectName, err = s.uploadImage(ctx, req.ImageFile, req.Image)
		if err != nil {
			return err
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if imageURL != constant.Empty {
		updatedFields[model.FieldImage] = imageURL
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update course")

		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to update course: %w", err)
	}

	// The replaced image is orphaned once the row points at the new one.
	if imageURL != constant.Empty && current.Image != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, current.Image)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	s.dropCourseCaches(ctx, current.ID, current.Slug)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check course existence")

		return fmt.Errorf("failed to check course existence: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Str("id", id).Msg("course not found")

		return failure.NotFound(msgCourseNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete course")

		return fmt.Errorf("failed to delete course: %w", err)
	}

	if current.Image != constant.Empty {
		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, current.Image)
		if objectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName)
		}
	}

	s.dropCourseCaches(ctx, current.ID, current.Slug)

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (url, objectName string, err error) {
	objectName = imageFilename(header.Filename)

	url, err = s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, file, header, objectName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload course image")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, objectName, nil
}

func (s *serviceImpl) dropCourseCaches(ctx context.Context, id, slug string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCourse, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete course from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCourse, slug)); err != nil {
			log.Error().Err(err).Msg("failed to delete course slug cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCourse)
		shared.InvalidateCaches(c, s.cache, cacheCountCourse)
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

func imageFilename(original string) string {
	filename := uuid.NewString()

	parts := strings.Split(original, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	return filename
}
