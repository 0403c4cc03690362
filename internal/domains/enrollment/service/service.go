package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/antoniomp17/WebPsicolog-a/config"
	"github.com/antoniomp17/WebPsicolog-a/infras/otel"
	"github.com/antoniomp17/WebPsicolog-a/infras/payment"
	courseModel "github.com/antoniomp17/WebPsicolog-a/internal/domains/course/model"
	courseRepo "github.com/antoniomp17/WebPsicolog-a/internal/domains/course/repository"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/enrollment/model"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/enrollment/model/dto"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/enrollment/repository"
	userModel "github.com/antoniomp17/WebPsicolog-a/internal/domains/user/model"
	userRepo "github.com/antoniomp17/WebPsicolog-a/internal/domains/user/repository"
	"github.com/antoniomp17/WebPsicolog-a/internal/notification"
	"github.com/antoniomp17/WebPsicolog-a/shared"
	"github.com/antoniomp17/WebPsicolog-a/shared/cache"
	"github.com/antoniomp17/WebPsicolog-a/shared/constant"
	gDto "github.com/antoniomp17/WebPsicolog-a/shared/dto"
	"github.com/antoniomp17/WebPsicolog-a/shared/failure"
	gModel "github.com/antoniomp17/WebPsicolog-a/shared/model"
	"github.com/antoniomp17/WebPsicolog-a/shared/timezone"
)

const (
	cacheGetEnrollment    = "enrollment:get"
	cacheGetAllEnrollment = "enrollment:gets"
	cacheCountEnrollment  = "enrollment:count"
)

const (
	msgCourseNotFound      = "Curso no encontrado"
	msgCourseUnavailable   = "Este curso no está disponible"
	msgAlreadyEnrolled     = "Ya estás inscrito en este curso"
	msgEnrollmentNotFound  = "Inscripción no encontrada"
	checkoutCurrency       = "eur"
	checkoutMetaCourseID   = "course_id"
	checkoutMetaUserID     = "user_id"
	checkoutMetaCourseName = "course_name"
)

type Enrollment interface {
	Create(ctx context.Context, req dto.CreateEnrollmentRequest) (dto.CreateEnrollmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEnrollmentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetMy(ctx context.Context, req gDto.QueryParams) (dto.GetEnrollmentsResponse, error)
	Get(ctx context.Context, id string) (dto.EnrollmentResponse, error)
	MarkPaid(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Enrollment
	courses   courseRepo.Course
	users     userRepo.User
	cfg       *config.Config
	cache     cache.RedisCache
	gateway   payment.Gateway
	publisher notification.Publisher
	otel      otel.Otel
}

func New(
	repo repository.Enrollment,
	courses courseRepo.Course,
	users userRepo.User,
	cfg *config.Config,
	cache cache.RedisCache,
	gateway payment.Gateway,
	publisher notification.Publisher,
	otel otel.Otel,
) Enrollment {
	return &serviceImpl{
		repo:      repo,
		courses:   courses,
		users:     users,
		cfg:       cfg,
		cache:     cache,
		gateway:   gateway,
		publisher: publisher,
		otel:      otel,
	}
}

// Create opens a Stripe checkout session for the course and records the
// enrollment. Free courses skip checkout and are paid immediately.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEnrollmentRequest) (res dto.CreateEnrollmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	userEmail, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	course, err := s.courses.Get(ctx, shared.FilterByID(req.CourseID, courseModel.FieldID, courseModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get course for enrollment")

		return res, fmt.Errorf("failed to get course for enrollment: %w", err)
	}

	if course.ID == constant.Empty {
		return res, failure.NotFound(msgCourseNotFound) // nolint:wrapcheck
	}

	if !course.Active {
		return res, failure.BadRequestFromString(msgCourseUnavailable) // nolint:wrapcheck
	}

	enrolled, err := s.repo.Exist(ctx, filterPaidEnrollment(userID, course.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing enrollment")

		return res, fmt.Errorf("failed to check existing enrollment: %w", err)
	}

	if enrolled {
		return res, failure.BadRequestFromString(msgAlreadyEnrolled) // nolint:wrapcheck
	}

	enrollment := model.Enrollment{
		ID:          uuid.NewString(),
		UserID:      userID,
		CourseID:    course.ID,
		Status:      model.StatusCreated,
		AmountCents: course.PriceCents,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	checkoutURL := constant.Empty

	if course.PriceCents == 0 {
		enrollment.Status = model.StatusPaid
	} else {
		session, sessionErr := s.gateway.CreateCheckoutSession(ctx, payment.CheckoutRequest{
			Reference:     enrollment.ID,
			Description:   course.Title,
			CustomerEmail: userEmail,
			AmountCents:   course.PriceCents,
			Currency:      checkoutCurrency,
			Metadata: map[string]string{
				checkoutMetaCourseID:   course.ID,
				checkoutMetaUserID:     userID,
				checkoutMetaCourseName: course.Title,
			},
		})
		if sessionErr != nil {
			log.Error().Err(sessionErr).Msg("failed to create checkout session")

			return res, fmt.Errorf("failed to create checkout session: %w", sessionErr)
		}

		enrollment.StripeSessionID = session.ID
		checkoutURL = session.URL
	}

	if err = s.repo.Insert(ctx, enrollment); err != nil {
		log.Error().Err(err).Msg("failed to create enrollment")

		return res, fmt.Errorf("failed to create enrollment: %w", err)
	}

	if enrollment.Status == model.StatusPaid {
		s.publishPaymentConfirmation(ctx, enrollment, course)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEnrollment)
		shared.InvalidateCaches(c, s.cache, cacheCountEnrollment)
	}()

	res = dto.CreateEnrollmentResponse{
		EnrollmentID: enrollment.ID,
		Status:       enrollment.Status,
		CheckoutURL:  checkoutURL,
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEnrollmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEnrollment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for enrollments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count enrollments")

		return res, fmt.Errorf("failed to count enrollments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get enrollments")

		return res, fmt.Errorf("failed to get enrollments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save enrollments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountEnrollment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for enrollment count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count enrollments")

		return res, fmt.Errorf("failed to count enrollments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save enrollment count to cache")
		}
	}()

	return res, nil
}

// GetMy lists the enrollments of the authenticated user.
func (s *serviceImpl) GetMy(ctx context.Context, req gDto.QueryParams) (res dto.GetEnrollmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMy")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.GetAll(ctx, req, filterByUser(userID))
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EnrollmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	enrollment, err := s.getEnrollment(ctx, id)
	if err != nil {
		return res, err
	}

	// Owners and admins only, others get the same not found as a
	// missing row.
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if enrollment.UserID != userID && role != constant.RoleAdmin && role != constant.RoleSuperAdmin {
		return res, failure.NotFound(msgEnrollmentNotFound) // nolint:wrapcheck
	}

	res.FromModel(enrollment)

	return res, nil
}

// MarkPaid confirms the payment of an enrollment. Confirming an already
// paid enrollment is a no-op.
func (s *serviceImpl) MarkPaid(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	enrollment, err := s.getEnrollment(ctx, id)
	if err != nil {
		return err
	}

	if enrollment.Status == model.StatusPaid {
		return nil
	}

	if err = s.updateStatus(ctx, enrollment, model.StatusPaid); err != nil {
		return err
	}

	course, err := s.courses.Get(ctx, shared.FilterByID(enrollment.CourseID, courseModel.FieldID, courseModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get course for payment notification")

		return nil
	}

	enrollment.Status = model.StatusPaid
	s.publishPaymentConfirmation(ctx, enrollment, course)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	enrollment, err := s.getEnrollment(ctx, id)
	if err != nil {
		return err
	}

	if enrollment.Status == model.StatusCancelled {
		return nil
	}

	return s.updateStatus(ctx, enrollment, model.StatusCancelled)
}

func (s *serviceImpl) getEnrollment(ctx context.Context, id string) (model.Enrollment, error) {
	enrollment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get enrollment")

		return enrollment, fmt.Errorf("failed to get enrollment: %w", err)
	}

	if enrollment.ID == constant.Empty {
		return enrollment, failure.NotFound(msgEnrollmentNotFound) // nolint:wrapcheck
	}

	return enrollment, nil
}

func (s *serviceImpl) updateStatus(ctx context.Context, enrollment model.Enrollment, status string) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(enrollment.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update enrollment")

		return fmt.Errorf("failed to update enrollment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEnrollment, enrollment.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete enrollment from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEnrollment)
		shared.InvalidateCaches(c, s.cache, cacheCountEnrollment)
	}()

	return nil
}

func (s *serviceImpl) publishPaymentConfirmation(ctx context.Context, enrollment model.Enrollment, course courseModel.Course) {
	go func() {
		c := context.WithoutCancel(ctx)

		user, err := s.users.Get(c, shared.FilterByID(enrollment.UserID, userModel.FieldID, userModel.TableName))
		if err != nil || user.ID == constant.Empty {
			log.Error().Err(err).Str("user_id", enrollment.UserID).Msg("failed to get user for payment notification")

			return
		}

		name := user.Email
		if user.FullName != nil && *user.FullName != constant.Empty {
			name = *user.FullName
		}

		event := notification.Event{
			Type:           notification.EventTypePaymentConfirmation,
			RecipientName:  name,
			RecipientEmail: user.Email,
			CourseName:     course.Title,
			AmountCents:    enrollment.AmountCents,
			PaymentDate:    timezone.Now().Format("2006-01-02"),
		}

		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Msg("failed to publish payment notification")
		}
	}()
}

func filterPaidEnrollment(userID, courseID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCourseID,
				Value:    courseID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusPaid,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func filterByUser(userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
