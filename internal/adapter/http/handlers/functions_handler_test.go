package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"wascrap/internal/adapter/http/handlers/mocks"
	"wascrap/internal/adapter/persistence/repository"
	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase"
	mock_interfaces "wascrap/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOTPHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IOTPUseCase) *gin.Engine {
		r := gin.New()
		h := NewOTPHandler(uc)
		r.POST("/v1/functions/send-otp-email", h.SendOTPEmail)
		r.POST("/v1/functions/verify-otp", h.VerifyOTP)
		return r
	}

	t.Run("send defaults to customer purpose", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOTPUseCase(ctrl)
		uc.EXPECT().SendOTP(gomock.Any(), "asha@example.com", entities.OTPPurposeCustomer).Return(nil)

		w := doJSON(build(uc), http.MethodPost, "/v1/functions/send-otp-email", `{"email":"asha@example.com"}`)
		if w.Code != http.StatusOK || w.Body.String() != `{"success":true,"message":"OTP sent successfully"}` {
			t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("send buyer code and provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOTPUseCase(ctrl)
		uc.EXPECT().SendOTP(gomock.Any(), "ravi@example.com", entities.OTPPurposeBuyer).
			Return(fmt.Errorf("%w: resend: 500", usecase.ErrEmailDeliveryFailed))

		w := doJSON(build(uc), http.MethodPost, "/v1/functions/send-otp-email", `{"email":"ravi@example.com","type":"buyer"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("malformed email is a client error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := usecase.NewOTPUseCase(
			repository.NewOTPMemoryStore(),
			mock_interfaces.NewMockIEmailSender(ctrl),
			mocks.NewMockIAccountUseCase(ctrl),
			10*time.Minute, 5, "support@wascrap.com",
		)

		w := doJSON(build(uc), http.MethodPost, "/v1/functions/send-otp-email", `{"email":"not-an-email"}`)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_EMAIL" {
			t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
		}
	})

	otpErrors := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "format", err: usecase.ErrInvalidOTPFormat, wantCode: http.StatusBadRequest, wantErr: "INVALID_OTP_FORMAT"},
		{name: "expired", err: usecase.ErrOTPExpired, wantCode: http.StatusBadRequest, wantErr: "INVALID_OTP"},
		{name: "mismatch", err: usecase.ErrOTPMismatch, wantCode: http.StatusBadRequest, wantErr: "INVALID_OTP"},
		{name: "too many attempts", err: usecase.ErrOTPTooManyAttempts, wantCode: http.StatusTooManyRequests, wantErr: "TOO_MANY_ATTEMPTS"},
		{name: "username taken", err: usecase.ErrUsernameTaken, wantCode: http.StatusConflict, wantErr: "USERNAME_TAKEN"},
	}
	for _, tt := range otpErrors {
		t.Run("verify "+tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIOTPUseCase(ctrl)
			uc.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).Return(entities.Account{}, tt.err)

			w := doJSON(build(uc), http.MethodPost, "/v1/functions/verify-otp", `{"email":"a@b.co","otp":"123456","username":"asha","password":"secret1"}`)
			if w.Code != tt.wantCode || decodeBody(t, w)["code"] != tt.wantErr {
				t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
			}
		})
	}

	t.Run("verify creates account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOTPUseCase(ctrl)
		uc.EXPECT().VerifyOTP(gomock.Any(), usecase.VerifyOTPInput{
			Email: "a@b.co", OTP: "123456", Username: "asha", Password: "secret1",
		}).Return(entities.Account{ID: "u-1"}, nil)

		w := doJSON(build(uc), http.MethodPost, "/v1/functions/verify-otp", `{"email":"a@b.co","otp":"123456","username":"asha","password":"secret1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["userId"] != "u-1" || body["message"] != "Account created successfully" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPartnerInquiryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IPartnerInquiryUseCase) *gin.Engine {
		r := gin.New()
		h := NewPartnerInquiryHandler(uc)
		r.POST("/v1/functions/submit-partner-inquiry", h.SubmitPartnerInquiry)
		r.GET("/v1/partner-inquiries", h.ListPartnerInquiries)
		return r
	}

	t.Run("submit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPartnerInquiryUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), usecase.PartnerInquiryInput{
			Name: "Meera", Email: "meera@recycle.in", Phone: "9000000000", Company: "GreenLoop", PartnerType: "recyclers", Message: "hi",
		}).Return(entities.PartnerInquiry{ID: "pi-1"}, nil)

		w := doJSON(build(uc), http.MethodPost, "/v1/functions/submit-partner-inquiry",
			`{"name":"Meera","email":"meera@recycle.in","phone":"9000000000","company":"GreenLoop","partnerType":"recyclers","message":"hi"}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["inquiryId"] != "pi-1" {
			t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown partner type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPartnerInquiryUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.PartnerInquiry{}, usecase.ErrUnknownPartnerType)

		w := doJSON(build(uc), http.MethodPost, "/v1/functions/submit-partner-inquiry", `{"partnerType":"banks"}`)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "UNKNOWN_PARTNER_TYPE" {
			t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPartnerInquiryUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return([]entities.PartnerInquiry{{ID: "pi-1", PartnerType: entities.PartnerTypeNGO, Status: "new"}}, nil)

		w := doJSON(build(uc), http.MethodGet, "/v1/partner-inquiries", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestScrapSellerHandler_FirebaseAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IScrapSellerUseCase, chain ...gin.HandlerFunc) *gin.Engine {
		r := gin.New()
		r.POST("/v1/functions/firebase-auth", append(chain, NewScrapSellerHandler(uc).FirebaseAuth)...)
		return r
	}
	seller := func(uid string) gin.HandlerFunc {
		return withIdentity(uid, uid+"@gmail.com", entities.RoleCustomer)
	}

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIScrapSellerUseCase(ctrl)
		uc.EXPECT().Handle(gomock.Any(), usecase.SellerActionCreate, gomock.Any(), "").DoAndReturn(
			func(_ context.Context, _ usecase.SellerAction, in usecase.SellerInput, _ string) (*entities.ScrapSeller, error) {
				if in.UID != "g-1" || in.DisplayName != "Kiran" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return &entities.ScrapSeller{UID: "g-1", DisplayName: "Kiran"}, nil
			})

		w := doJSON(build(uc), http.MethodPost, "/v1/functions/firebase-auth",
			`{"action":"CREATE","userData":{"uid":"g-1","email":"kiran@example.com","displayName":"Kiran"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if decodeBody(t, w)["message"] != "Scrap seller created successfully" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get unknown uid returns null data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIScrapSellerUseCase(ctrl)
		uc.EXPECT().Handle(gomock.Any(), usecase.SellerActionGet, gomock.Any(), "g-404").Return(nil, nil)

		w := doJSON(build(uc, seller("g-404")), http.MethodPost, "/v1/functions/firebase-auth", `{"action":"get","uid":"g-404"}`)
		if w.Code != http.StatusOK || w.Body.String() != `{"success":true,"data":null}` {
			t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIScrapSellerUseCase(ctrl)
		uc.EXPECT().Handle(gomock.Any(), usecase.SellerAction("delete"), gomock.Any(), "").Return(nil, usecase.ErrInvalidAction)

		w := doJSON(build(uc), http.MethodPost, "/v1/functions/firebase-auth", `{"action":"delete"}`)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["error"] != "Invalid action" {
			t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("anonymous update is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := doJSON(build(mocks.NewMockIScrapSellerUseCase(ctrl)), http.MethodPost, "/v1/functions/firebase-auth",
			`{"action":"update","userData":{"uid":"victim","email":"evil@x.com","verified":true,"createdAt":"2024-01-01T00:00:00Z"}}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("anonymous get is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := doJSON(build(mocks.NewMockIScrapSellerUseCase(ctrl)), http.MethodPost, "/v1/functions/firebase-auth", `{"action":"get","uid":"victim"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("another seller's uid is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := build(mocks.NewMockIScrapSellerUseCase(ctrl), seller("g-1"))

		for _, body := range []string{
			`{"action":"update","userData":{"uid":"victim","email":"evil@x.com"}}`,
			`{"action":"update","uid":"victim","userData":{"email":"evil@x.com"}}`,
			`{"action":"get","uid":"victim"}`,
			`{"action":"create","userData":{"uid":"victim","email":"evil@x.com"}}`,
		} {
			w := doJSON(r, http.MethodPost, "/v1/functions/firebase-auth", body)
			if w.Code != http.StatusForbidden || decodeBody(t, w)["code"] != "FORBIDDEN" {
				t.Fatalf("%s: unexpected %d %s", body, w.Code, w.Body.String())
			}
		}
	})

	t.Run("staff may read any profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIScrapSellerUseCase(ctrl)
		uc.EXPECT().Handle(gomock.Any(), usecase.SellerActionGet, gomock.Any(), "g-9").Return(&entities.ScrapSeller{UID: "g-9"}, nil)

		staff := withIdentity("staff-1", "admin@wascrap.com", entities.RoleAdmin)
		w := doJSON(build(uc, staff), http.MethodPost, "/v1/functions/firebase-auth", `{"action":"get","uid":"g-9"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("owner update cannot self-verify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIScrapSellerRepository(ctrl)
		repo.EXPECT().GetByUID(gomock.Any(), "g-1").Return(entities.ScrapSeller{UID: "g-1", Email: "g-1@gmail.com"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.ScrapSeller) (entities.ScrapSeller, error) {
				if s.Verified {
					t.Fatalf("verified flag taken from the request")
				}
				return s, nil
			})

		w := doJSON(build(usecase.NewScrapSellerUseCase(repo), seller("g-1")), http.MethodPost, "/v1/functions/firebase-auth",
			`{"action":"update","userData":{"uid":"g-1","email":"g-1@gmail.com","verified":true}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		data, _ := decodeBody(t, w)["data"].(map[string]any)
		if data["verified"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestNotificationHandler_SendNotificationEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.INotificationUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/functions/send-notification-email", NewNotificationHandler(uc).SendNotificationEmail)
		return r
	}

	t.Run("order completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockINotificationUseCase(ctrl)
		uc.EXPECT().Send(gomock.Any(), usecase.NotificationRequest{
			To: "asha@example.com", Type: entities.NotificationOrderCompleted, BookingID: "b-1",
		}).Return(entities.Notification{ID: "n-1", Type: entities.NotificationOrderCompleted, EmailSent: true, ProviderMessageID: "re_1"}, nil)

		w := doJSON(build(uc), http.MethodPost, "/v1/functions/send-notification-email",
			`{"to":"asha@example.com","type":"order_completed","bookingId":"b-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != true || body["provider_message_id"] != "re_1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "bad recipient", err: usecase.ErrInvalidRecipient, wantCode: http.StatusBadRequest},
		{name: "unknown type", err: usecase.ErrUnknownNotificationType, wantCode: http.StatusBadRequest},
		{name: "cancel without reason", err: usecase.ErrCancellationReasonRequired, wantCode: http.StatusBadRequest},
		{name: "provider down", err: usecase.ErrEmailDeliveryFailed, wantCode: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockINotificationUseCase(ctrl)
			uc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(entities.Notification{}, tt.err)

			w := doJSON(build(uc), http.MethodPost, "/v1/functions/send-notification-email", `{"to":"x","type":"order_cancelled"}`)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}
