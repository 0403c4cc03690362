package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/antoniomp17/WebPsicolog-a/config"
	"github.com/antoniomp17/WebPsicolog-a/infras/otel/mocks"
	"github.com/antoniomp17/WebPsicolog-a/infras/payment"
	paymentMocks "github.com/antoniomp17/WebPsicolog-a/infras/payment/mocks"
	courseMocks "github.com/antoniomp17/WebPsicolog-a/internal/domains/course/mocks"
	courseModel "github.com/antoniomp17/WebPsicolog-a/internal/domains/course/model"
	enrollmentMocks "github.com/antoniomp17/WebPsicolog-a/internal/domains/enrollment/mocks"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/enrollment/model"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/enrollment/model/dto"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/enrollment/service"
	userMocks "github.com/antoniomp17/WebPsicolog-a/internal/domains/user/mocks"
	userModel "github.com/antoniomp17/WebPsicolog-a/internal/domains/user/model"
	notificationMocks "github.com/antoniomp17/WebPsicolog-a/internal/notification/mocks"
	cacheMocks "github.com/antoniomp17/WebPsicolog-a/shared/cache/mocks"
	"github.com/antoniomp17/WebPsicolog-a/shared/constant"
)

type enrollmentMockSet struct {
	repo      *enrollmentMocks.MockEnrollment
	courses   *courseMocks.MockCourse
	users     *userMocks.MockUser
	cache     *cacheMocks.MockRedisCache
	gateway   *paymentMocks.MockGateway
	publisher *notificationMocks.MockPublisher
}

func newEnrollmentService(ctrl *gomock.Controller) (service.Enrollment, enrollmentMockSet) {
	m := enrollmentMockSet{
		repo:      enrollmentMocks.NewMockEnrollment(ctrl),
		courses:   courseMocks.NewMockCourse(ctrl),
		users:     userMocks.NewMockUser(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		gateway:   paymentMocks.NewMockGateway(ctrl),
		publisher: notificationMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.courses, m.users, cfg, m.cache, m.gateway, m.publisher, mocks.NewOtel())

	// Notification and cache work happens in goroutines
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{
		ID:    "user-id-123",
		Email: "laura@example.com",
	}, nil).AnyTimes()
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, m
}

func enrollmentCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")

	return context.WithValue(ctx, constant.ContextKeyUserEmail, "laura@example.com")
}

func TestEnrollmentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEnrollmentService(ctrl)

	paidCourse := courseModel.Course{
		ID:         "course-id-123",
		Title:      "Gestión de la Ansiedad",
		Slug:       "gestion-de-la-ansiedad",
		PriceCents: 12000,
		Active:     true,
	}

	freeCourse := paidCourse
	freeCourse.PriceCents = 0

	inactiveCourse := paidCourse
	inactiveCourse.Active = false

	req := dto.CreateEnrollmentRequest{CourseID: "course-id-123"}

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantStatus string
		wantURL    string
	}{
		{
			name: "paid course opens a checkout session",
			setupMock: func() {
				m.courses.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paidCourse, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.gateway.EXPECT().
					CreateCheckoutSession(gomock.Any(), gomock.Any()).
					Return(payment.CheckoutSession{
						ID:  "cs_test_123",
						URL: "https://checkout.stripe.com/pay/cs_test_123",
					}, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: model.StatusCreated,
			wantURL:    "https://checkout.stripe.com/pay/cs_test_123",
		},
		{
			name: "free course is paid immediately without checkout",
			setupMock: func() {
				m.courses.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(freeCourse, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: model.StatusPaid,
			wantURL:    "",
		},
		{
			name: "course not found",
			setupMock: func() {
				m.courses.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(courseModel.Course{}, nil)
			},
			wantErr: true,
		},
		{
			name: "inactive course is not purchasable",
			setupMock: func() {
				m.courses.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactiveCourse, nil)
			},
			wantErr: true,
		},
		{
			name: "already enrolled",
			setupMock: func() {
				m.courses.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paidCourse, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "checkout session error",
			setupMock: func() {
				m.courses.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paidCourse, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.gateway.EXPECT().
					CreateCheckoutSession(gomock.Any(), gomock.Any()).
					Return(payment.CheckoutSession{}, errors.New("stripe error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				m.courses.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(freeCourse, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Create(enrollmentCtx(), req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, result.EnrollmentID)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantURL, result.CheckoutURL)
		})
	}
}

func TestEnrollmentService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEnrollmentService(ctrl)

	enrollment := model.Enrollment{
		ID:       "enrollment-id-123",
		UserID:   "user-id-123",
		CourseID: "course-id-123",
		Status:   model.StatusPaid,
	}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
	}{
		{
			name: "owner can read their enrollment",
			ctx:  enrollmentCtx(),
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(enrollment, nil)
			},
			wantErr: false,
		},
		{
			name: "admin can read any enrollment",
			ctx: context.WithValue(
				context.WithValue(context.Background(), constant.ContextKeyUserID, "other-admin"),
				constant.ContextKeyUserRole, constant.RoleAdmin,
			),
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(enrollment, nil)
			},
			wantErr: false,
		},
		{
			name: "another user gets not found",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "stranger"),
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(enrollment, nil)
			},
			wantErr: true,
		},
		{
			name: "missing enrollment",
			ctx:  enrollmentCtx(),
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Enrollment{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(tt.ctx, "enrollment-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, enrollment.ID, result.ID)
			}
		})
	}
}

func TestEnrollmentService_MarkPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEnrollmentService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "marks a pending enrollment as paid",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Enrollment{
						ID:       "enrollment-id-123",
						UserID:   "user-id-123",
						CourseID: "course-id-123",
						Status:   model.StatusCreated,
					}, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.courses.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(courseModel.Course{ID: "course-id-123", Title: "Gestión de la Ansiedad"}, nil)
			},
			wantErr: false,
		},
		{
			name: "already paid is a no-op",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Enrollment{
						ID:     "enrollment-id-123",
						UserID: "user-id-123",
						Status: model.StatusPaid,
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "enrollment not found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Enrollment{}, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Enrollment{
						ID:     "enrollment-id-123",
						UserID: "user-id-123",
						Status: model.StatusCreated,
					}, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.MarkPaid(ctx, "enrollment-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnrollmentService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEnrollmentService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cancels a pending enrollment",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Enrollment{
						ID:     "enrollment-id-123",
						UserID: "user-id-123",
						Status: model.StatusCreated,
					}, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "already cancelled is a no-op",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Enrollment{
						ID:     "enrollment-id-123",
						UserID: "user-id-123",
						Status: model.StatusCancelled,
					}, nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.Cancel(ctx, "enrollment-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
