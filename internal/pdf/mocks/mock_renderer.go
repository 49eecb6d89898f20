package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"formpdf/internal/model"
)

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, form model.DocumentForm) ([]byte, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
