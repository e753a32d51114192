package service

import (
	"context"
	"errors"
	"strings"

	"github.com/zanda/offday-portal/internal/directus"
	"github.com/zanda/offday-portal/internal/model"
	"github.com/zanda/offday-portal/internal/queue"
)

// Service bundles the dispatcher dependencies: the data platform client
// and an optional event publisher.
type Service struct {
	store directus.Store
	pub   queue.Publisher
}

// New builds a Service. pub may be nil to disable eventing.
func New(store directus.Store, pub queue.Publisher) *Service {
	return &Service{store: store, pub: pub}
}

// Login checks the submitted credentials against the Employees collection
// and returns the matched identity. Verification of the PIN is delegated
// entirely to the platform.
func (s *Service) Login(ctx context.Context, creds model.Credentials) LoginResult {
	name := strings.TrimSpace(creds.Name)
	if name == "" || creds.Password == "" {
		return LoginResult{Result: failure(ErrorParse)}
	}

	emp, err := s.store.EmployeeByUsername(ctx, name)
	if err != nil {
		if errors.Is(err, directus.ErrNotFound) {
			return LoginResult{Result: failure(ErrorNoUser)}
		}
		return LoginResult{Result: failure(ErrorServer)}
	}

	ok, err := s.store.VerifyPin(ctx, creds.Password, emp.PinHash)
	if err != nil {
		return LoginResult{Result: failure(ErrorServer)}
	}
	if !ok {
		return LoginResult{Result: failure(ErrorBadPassword)}
	}

	return LoginResult{
		Result:   success(MsgLoginOK),
		Identity: &model.Identity{ID: emp.ID, Username: emp.FirstName},
	}
}
