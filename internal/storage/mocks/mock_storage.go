package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(code string, content []byte) {
	m.Called(code, content)
}

func (m *MockStorage) Insert(code string, content []byte) bool {
	args := m.Called(code, content)
	return args.Bool(0)
}

func (m *MockStorage) Get(code string) ([]byte, bool) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]byte), args.Bool(1)
}

func (m *MockStorage) GetEncoded(code string) (string, bool) {
	args := m.Called(code)
	return args.String(0), args.Bool(1)
}

func (m *MockStorage) Clear() {
	m.Called()
}

func (m *MockStorage) Len() int {
	args := m.Called()
	return args.Int(0)
}
