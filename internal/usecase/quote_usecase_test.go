package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"arborlove_quote/internal/domain/entities"
	mock_interfaces "arborlove_quote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 5, 12, 15, 4, 5, 0, time.UTC)

func newTestQuoteUseCase(repo *mock_interfaces.MockIQuoteRepository, notifier *mock_interfaces.MockIQuoteNotifier) *QuoteUseCase {
	uc := NewQuoteUseCase(repo, notifier, zap.NewNop())
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func tierRemoval() entities.ServiceRequest {
	// Raw 2744.5, snapped to 2800.
	return entities.ServiceRequest{
		ServiceType:  entities.ServiceTypeTreeRemoval,
		NumOfTrees:   1,
		TreeType:     "Oak",
		TreeHeight:   "46-60",
		TreeLocation: entities.TreeLocationBackYard,
	}
}

func plainRemoval() entities.ServiceRequest {
	// 250 base plus commission.
	return entities.ServiceRequest{
		ServiceType:     entities.ServiceTypeTreeRemoval,
		TreeType:        "Oak",
		TreeHeight:      "100ft",
		EquipmentAccess: true,
	}
}

var testClient = entities.ClientDetails{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-0100"}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("no services", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.CreateQuote(context.Background(), testClient, nil)
		if !errors.Is(err, ErrNoServices) {
			t.Fatalf("expected ErrNoServices, got %v", err)
		}
	})

	t.Run("invalid service type", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		svc := plainRemoval()
		svc.ServiceType = "Stump Grinding"
		_, err := uc.CreateQuote(context.Background(), testClient, []entities.ServiceRequest{plainRemoval(), svc})
		if !errors.Is(err, ErrInvalidServiceType) {
			t.Fatalf("expected ErrInvalidServiceType, got %v", err)
		}
	})

	t.Run("total is the sum of snapped line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockIQuoteNotifier(ctrl)
		uc := newTestQuoteUseCase(repo, notifier)

		services := []entities.ServiceRequest{tierRemoval(), tierRemoval(), plainRemoval()}

		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
				func(_ context.Context, q entities.Quote) (entities.Quote, error) {
					if q.ID == "" {
						t.Fatalf("expected generated id")
					}
					// 2800 + 2800 + 275; snapping the total would give 5600.
					if q.Amount != 5875 {
						t.Fatalf("expected amount 5875, got %v", q.Amount)
					}
					if !q.DateCreated.Equal(fixedNow) || len(q.Services) != 3 || q.ClientDetails != testClient {
						t.Fatalf("unexpected quote: %+v", q)
					}
					return q, nil
				},
			),
			notifier.EXPECT().SendQuoteConfirmation(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).Return(nil),
		)

		res, err := uc.CreateQuote(context.Background(), testClient, services)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Notified || res.Quote.Amount != 5875 || res.Quote.ID == "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("each call gets a fresh id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockIQuoteNotifier(ctrl)
		uc := newTestQuoteUseCase(repo, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		).Times(2)
		notifier.EXPECT().SendQuoteConfirmation(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		first, err := uc.CreateQuote(context.Background(), testClient, []entities.ServiceRequest{plainRemoval()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.CreateQuote(context.Background(), testClient, []entities.ServiceRequest{plainRemoval()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Quote.ID == second.Quote.ID {
			t.Fatalf("expected distinct ids, got %q twice", first.Quote.ID)
		}
	})

	t.Run("persist error skips notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockIQuoteNotifier(ctrl)
		uc := newTestQuoteUseCase(repo, notifier)

		dbErr := errors.New("db")
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, dbErr)

		_, err := uc.CreateQuote(context.Background(), testClient, []entities.ServiceRequest{plainRemoval()})
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("notification failure keeps the quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockIQuoteNotifier(ctrl)
		uc := newTestQuoteUseCase(repo, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		notifier.EXPECT().SendQuoteConfirmation(gomock.Any(), gomock.Any()).Return(errors.New("ses throttled"))

		res, err := uc.CreateQuote(context.Background(), testClient, []entities.ServiceRequest{plainRemoval()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Notified || res.Quote.ID == "" || res.Quote.Amount != 275 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), " q-1 ")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "q-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		stored := entities.Quote{ID: "q-1", Amount: 1787.5, ClientDetails: testClient}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)

		q, err := uc.GetByID(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID != "q-1" || q.Amount != 1787.5 {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}

func TestQuoteUseCase_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo, nil, nil)

	repo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

	quotes, err := uc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quotes == nil || len(quotes) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", quotes)
	}
}

func TestQuoteUseCase_DeleteAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().DeleteAll(gomock.Any()).Return(3, nil)

		n, err := uc.DeleteAll(context.Background())
		if err != nil || n != 3 {
			t.Fatalf("expected 3 deleted, got %d (%v)", n, err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().DeleteAll(gomock.Any()).Return(0, errors.New("db"))

		if _, err := uc.DeleteAll(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
