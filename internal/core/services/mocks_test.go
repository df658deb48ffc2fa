package services

import (
	"context"
	"fmt"
	"html"

	"github.com/stretchr/testify/mock"

	"github.com/custodia-labs/textfmt/internal/core/domain"
)

// MockLanguageResolver is a mock implementation of driven.LanguageResolver.
type MockLanguageResolver struct {
	mock.Mock
}

func (m *MockLanguageResolver) Resolve(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockMarkupRenderer is a mock implementation of driven.MarkupRenderer.
type MockMarkupRenderer struct {
	mock.Mock
}

func (m *MockMarkupRenderer) Render(fragment string) (string, error) {
	args := m.Called(fragment)
	return args.String(0), args.Error(1)
}

// MockConfigStore is a mock implementation of driven.ConfigStore.
type MockConfigStore struct {
	mock.Mock
}

func (m *MockConfigStore) Get(key string) (any, bool) {
	args := m.Called(key)
	return args.Get(0), args.Bool(1)
}

func (m *MockConfigStore) GetString(key string) string {
	return m.Called(key).String(0)
}

func (m *MockConfigStore) GetInt(key string) int {
	return m.Called(key).Int(0)
}

func (m *MockConfigStore) GetBool(key string) bool {
	return m.Called(key).Bool(0)
}

func (m *MockConfigStore) Set(key string, value any) error {
	return m.Called(key, value).Error(0)
}

func (m *MockConfigStore) Save() error {
	return m.Called().Error(0)
}

func (m *MockConfigStore) Load() error {
	return m.Called().Error(0)
}

func (m *MockConfigStore) Path() string {
	return m.Called().String(0)
}

// renderFunc adapts a function to driven.MarkupRenderer.
type renderFunc func(string) string

func (f renderFunc) Render(fragment string) (string, error) {
	return f(fragment), nil
}

// unescapeRenderer decodes entities and leaves everything else alone.
var unescapeRenderer = renderFunc(html.UnescapeString)

// fakeTranslator serves English labels and a "{size} {unit}" template.
type fakeTranslator struct {
	messages map[string]string
}

func newFakeTranslator() *fakeTranslator {
	return &fakeTranslator{messages: map[string]string{
		domain.MsgNotApplicable: "n/a",
		domain.MsgSizeB:         "bytes",
		domain.MsgSizeKB:        "KB",
		domain.MsgSizeMB:        "MB",
		domain.MsgSizeGB:        "GB",
		domain.MsgSizeTB:        "TB",
	}}
}

func (t *fakeTranslator) Translate(key string, data map[string]any) string {
	if key == domain.MsgHumanReadableSize {
		return fmt.Sprintf("%v %v", data["Size"], data["Unit"])
	}
	if msg, ok := t.messages[key]; ok {
		return msg
	}
	return key
}

func (t *fakeTranslator) TranslateAll(keys ...string) map[string]string {
	result := make(map[string]string, len(keys))
	for _, key := range keys {
		result[key] = t.Translate(key, nil)
	}
	return result
}

// newTestFormatter returns a formatter with a mocked language resolver
// expecting lang, the fake translator and the entity-decoding renderer.
func newTestFormatter(lang string) (*Formatter, *MockLanguageResolver) {
	resolver := new(MockLanguageResolver)
	resolver.On("Resolve", mock.Anything).Return(lang, nil)
	return NewFormatter(resolver, newFakeTranslator(), unescapeRenderer), resolver
}
