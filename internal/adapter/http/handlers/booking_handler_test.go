package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wascrap/internal/adapter/http/handlers/mocks"
	"wascrap/internal/adapter/http/middleware"
	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func withIdentity(userID, email string, role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, userID, email, role)
	}
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const validBody = `{
		"full_name":"Asha Rao","email":"asha@example.com","phone":"9876543210",
		"house_number":"12","village":"Baner","city":"Pune","district":"Pune","state":"Maharashtra","pincode":"411045",
		"scrap_items":[{"type":" Paper ","weight":10}],
		"own_transport":true,"pickup_date":"2026-03-12","pickup_time":"morning"
	}`

	build := func(uc usecase.IBookingUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/bookings", withIdentity("u-1", "asha@example.com", entities.RoleCustomer), NewBookingHandler(uc).CreateBooking)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)

		w := doJSON(build(uc), http.MethodPost, "/v1/bookings", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error message is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), "u-1", gomock.Any()).
			Return(entities.Booking{}, fmt.Errorf("%w: pincode must be 6 digits", usecase.ErrInvalidBookingInput))

		w := doJSON(build(uc), http.MethodPost, "/v1/bookings", validBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["error"] != "Pincode must be 6 digits" || body["code"] != "INVALID_BOOKING" || body["success"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing email falls back to the signed-in account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), "u-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.BookingInput) (entities.Booking, error) {
				if in.Email != "asha@example.com" {
					t.Fatalf("expected caller email, got %q", in.Email)
				}
				return entities.Booking{ID: "b-2", UserID: "u-1", Email: in.Email, Status: entities.BookingStatusPending}, nil
			})

		body := strings.Replace(validBody, `"email":"asha@example.com",`, `"email":"  ",`, 1)
		w := doJSON(build(uc), http.MethodPost, "/v1/bookings", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("explicit email is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), "u-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.BookingInput) (entities.Booking, error) {
				if in.Email != "family@example.com" {
					t.Fatalf("expected form email, got %q", in.Email)
				}
				return entities.Booking{ID: "b-3", UserID: "u-1", Status: entities.BookingStatusPending}, nil
			})

		body := strings.Replace(validBody, `"email":"asha@example.com"`, `"email":"family@example.com"`, 1)
		if w := doJSON(build(uc), http.MethodPost, "/v1/bookings", body); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

		uc.EXPECT().Create(gomock.Any(), "u-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.BookingInput) (entities.Booking, error) {
				if len(in.ScrapItems) != 1 || in.ScrapItems[0].Type != entities.ScrapTypePaper {
					t.Fatalf("expected normalized paper item, got %+v", in.ScrapItems)
				}
				if !in.OwnTransport || in.HouseNumber != "12" || in.Village != "Baner" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Booking{ID: "b-1", UserID: "u-1", Status: entities.BookingStatusPending, CreatedAt: now, UpdatedAt: now}, nil
			})

		w := doJSON(build(uc), http.MethodPost, "/v1/bookings", validBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["id"] != "b-1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBookingHandler_ListBookings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IBookingUseCase) *gin.Engine {
		r := gin.New()
		h := NewBookingHandler(uc)
		r.GET("/v1/bookings", h.ListBookings)
		r.GET("/v1/bookings/pending", h.ListPendingBookings)
		r.GET("/v1/bookings/mine", withIdentity("u-9", "", entities.RoleCustomer), h.ListMyBookings)
		return r
	}

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := doJSON(build(mocks.NewMockIBookingUseCase(ctrl)), http.MethodGet, "/v1/bookings?status=archived", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("status filter is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), entities.BookingFilter{Status: entities.BookingStatusPending}).
			Return([]entities.Booking{{ID: "b-2"}, {ID: "b-1"}}, nil)

		w := doJSON(build(uc), http.MethodGet, "/v1/bookings?status=Pending", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["id"] != "b-2" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("mine uses caller id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		uc.EXPECT().ListByUser(gomock.Any(), "u-9").Return(nil, nil)

		w := doJSON(build(uc), http.MethodGet, "/v1/bookings/mine", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("pending queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		uc.EXPECT().ListPending(gomock.Any()).Return([]entities.Booking{{ID: "b-3", Status: entities.BookingStatusPending}}, nil)

		w := doJSON(build(uc), http.MethodGet, "/v1/bookings/pending", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("repository failure is a 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), entities.BookingFilter{}).Return(nil, errors.New("dynamodb down"))

		w := doJSON(build(uc), http.MethodGet, "/v1/bookings", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if decodeBody(t, w)["error"] != "An internal error occurred" {
			t.Fatalf("internal error detail must not leak: %s", w.Body.String())
		}
	})
}

func TestBookingHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IBookingUseCase) *gin.Engine {
		r := gin.New()
		h := NewBookingHandler(uc)
		staff := withIdentity("staff-1", "admin@wascrap.com", entities.RoleAdmin)
		r.GET("/v1/bookings/:id", h.GetBooking)
		r.PATCH("/v1/bookings/:id/confirm", staff, h.ConfirmBooking)
		r.PATCH("/v1/bookings/:id/start", staff, h.StartBooking)
		r.PATCH("/v1/bookings/:id/complete", staff, h.CompleteBooking)
		r.PATCH("/v1/bookings/:id/cancel", staff, h.CancelBooking)
		return r
	}

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Booking{}, usecase.ErrBookingNotFound)

		w := doJSON(build(uc), http.MethodGet, "/v1/bookings/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("confirm and start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		uc.EXPECT().Confirm(gomock.Any(), "b-1").Return(entities.Booking{ID: "b-1", Status: entities.BookingStatusConfirmed}, nil)
		uc.EXPECT().StartProgress(gomock.Any(), "b-1").Return(entities.Booking{ID: "b-1", Status: entities.BookingStatusInProgress}, nil)
		r := build(uc)

		if w := doJSON(r, http.MethodPatch, "/v1/bookings/b-1/confirm", ""); w.Code != http.StatusOK {
			t.Fatalf("confirm: expected 200, got %d", w.Code)
		}
		w := doJSON(r, http.MethodPatch, "/v1/bookings/b-1/start", "")
		if w.Code != http.StatusOK || decodeBody(t, w)["status"] != "in_progress" {
			t.Fatalf("start: unexpected %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("complete records staff id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		done := time.Date(2026, 3, 12, 11, 0, 0, 0, time.UTC)
		uc.EXPECT().Complete(gomock.Any(), "b-1", "staff-1").Return(entities.Booking{
			ID: "b-1", Status: entities.BookingStatusCompleted, CompletedBy: "staff-1", CompletedAt: &done,
		}, nil)

		w := doJSON(build(uc), http.MethodPatch, "/v1/bookings/b-1/complete", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["completed_at"] != "2026-03-12T11:00:00Z" || body["completed_by"] != "staff-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("second completion conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		uc.EXPECT().Complete(gomock.Any(), "b-1", "staff-1").Return(entities.Booking{}, usecase.ErrInvalidTransition)

		w := doJSON(build(uc), http.MethodPatch, "/v1/bookings/b-1/complete", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel requires json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := doJSON(build(mocks.NewMockIBookingUseCase(ctrl)), http.MethodPatch, "/v1/bookings/b-1/cancel", "not json")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cancel without reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		uc.EXPECT().Cancel(gomock.Any(), "b-1", "  ").Return(entities.Booking{}, usecase.ErrCancellationReasonRequired)

		w := doJSON(build(uc), http.MethodPatch, "/v1/bookings/b-1/cancel", `{"reason":"  "}`)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "CANCELLATION_REASON_REQUIRED" {
			t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("cancel with empty body asks for a reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		uc.EXPECT().Cancel(gomock.Any(), "b-1", "").Return(entities.Booking{}, usecase.ErrCancellationReasonRequired)

		w := doJSON(build(uc), http.MethodPatch, "/v1/bookings/b-1/cancel", "")
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "CANCELLATION_REASON_REQUIRED" {
			t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		uc.EXPECT().Cancel(gomock.Any(), "b-1", "customer unavailable").Return(entities.Booking{
			ID: "b-1", Status: entities.BookingStatusCancelled, CancellationReason: "customer unavailable",
		}, nil)

		w := doJSON(build(uc), http.MethodPatch, "/v1/bookings/b-1/cancel", `{"reason":"customer unavailable"}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["cancellation_reason"] != "customer unavailable" {
			t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
		}
	})
}
