package repository

import (
	"reflect"
	"testing"
	"time"

	"wascrap/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestBookingItemMapping(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	completed := created.Add(48 * time.Hour)

	items := []entities.ScrapItem{
		{Type: entities.ScrapTypePaper, Weight: 10},
		{Type: entities.ScrapTypeMetal, Weight: 2.5},
	}
	in := entities.Booking{
		ID:             "b-1",
		UserID:         "u-1",
		FullName:       "Asha Rao",
		Email:          "asha@example.com",
		Phone:          "9876543210",
		Address:        "12, Baner",
		City:           "Pune",
		District:       "Pune",
		State:          "Maharashtra",
		Pincode:        "411045",
		ScrapTypes:     items,
		TotalWeight:    12.5,
		EstimatedValue: 145,
		PickupDate:     "2026-03-12",
		PickupTime:     entities.PickupSlotMorning,
		Status:         entities.BookingStatusCompleted,
		CompletedBy:    "staff-1",
		CreatedAt:      created,
		UpdatedAt:      completed,
		CompletedAt:    &completed,
	}

	t.Run("round trip through attribute values", func(t *testing.T) {
		av, err := attributevalue.MarshalMap(toBookingItem(in))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if _, ok := av["cancelled_at"]; ok {
			t.Fatalf("expected empty cancelled_at to be omitted")
		}
		if s, ok := av["status"].(*types.AttributeValueMemberS); !ok || s.Value != "completed" {
			t.Fatalf("expected status attribute completed, got %#v", av["status"])
		}

		var it bookingItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		out := fromBookingItem(it)
		if !reflect.DeepEqual(out, in) {
			t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", out, in)
		}
	})

	t.Run("open booking has no terminal timestamps", func(t *testing.T) {
		open := in
		open.Status = entities.BookingStatusPending
		open.CompletedAt = nil
		open.CompletedBy = ""

		out := fromBookingItem(toBookingItem(open))
		if out.CompletedAt != nil || out.CancelledAt != nil {
			t.Fatalf("expected nil terminal timestamps, got %v %v", out.CompletedAt, out.CancelledAt)
		}
	})
}

func TestScrapBuyerItemMapping(t *testing.T) {
	reviewed := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)
	in := entities.ScrapBuyer{
		ID:              "sb-1",
		FullName:        "Kiran Patil",
		Email:           "kiran@example.com",
		PanCard:         "ABCDE1234F",
		Verified:        false,
		RejectionReason: "blurry documents",
		ReviewedAt:      &reviewed,
		CreatedAt:       reviewed.Add(-24 * time.Hour),
		UpdatedAt:       reviewed,
	}

	out := fromScrapBuyerItem(toScrapBuyerItem(in))
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestAccountItemMapping(t *testing.T) {
	in := entities.Account{
		ID:             "acc-1",
		Username:       "asha",
		Email:          "asha@example.com",
		PasswordHash:   "$2a$04$hash",
		Role:           entities.RoleAdmin,
		EmailConfirmed: true,
		CreatedAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	out := fromAccountItem(toAccountItem(in))
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestMergeNames(t *testing.T) {
	got := mergeNames(map[string]string{"#a": "a"}, map[string]string{"#b": "b"})
	want := map[string]string{"#a": "a", "#b": "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := mergeNames(nil, want); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected passthrough, got %v", got)
	}
}
